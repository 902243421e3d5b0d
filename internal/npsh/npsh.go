// Package npsh computes net positive suction head and classifies the margin
// against a pump's requirement.
package npsh

import "fmt"

type Level string

const (
	LevelOK         Level = "ok"
	LevelModerate   Level = "moderate_margin"
	LevelLow        Level = "low_margin"
	LevelCavitation Level = "cavitation"
)

const (
	LowMargin      = 0.5 // m
	ModerateMargin = 1.0 // m
)

// Suction describes the supply side of a pump.
type Suction struct {
	SurfacePressure float64
	VaporPressure   float64
	Rho             float64
	G               float64
	// HeadLoss is the friction loss of the suction line.
	HeadLoss float64
	// Lift is the pump elevation above the free surface; negative when flooded.
	Lift float64
}

// Available is (P_surface − P_vap)/ρg − h_L,suction − z_suction.
func Available(s Suction) float64 {
	return (s.SurfacePressure-s.VaporPressure)/(s.Rho*s.G) - s.HeadLoss - s.Lift
}

// MaxSuctionLift is the greatest pump elevation that still meets required.
func MaxSuctionLift(s Suction, required float64) float64 {
	return (s.SurfacePressure-s.VaporPressure)/(s.Rho*s.G) - s.HeadLoss - required
}

type Check struct {
	Available float64
	Required  float64
	Margin    float64
	Cavitates bool
	Level     Level
	Warnings  []string
}

// CheckCavitation compares available and required NPSH.
func CheckCavitation(available, required float64) Check {
	c := Check{
		Available: available,
		Required:  required,
		Margin:    available - required,
		Level:     LevelOK,
	}
	switch {
	case c.Margin < 0:
		c.Cavitates = true
		c.Level = LevelCavitation
		c.Warnings = []string{fmt.Sprintf("cavitation will occur: NPSH_A (%.2f m) < NPSH_R (%.2f m)", available, required)}
	case c.Margin < LowMargin:
		c.Level = LevelLow
		c.Warnings = []string{fmt.Sprintf("low NPSH margin (%.2f m): cavitation risk", c.Margin)}
	case c.Margin < ModerateMargin:
		c.Level = LevelModerate
		c.Warnings = []string{fmt.Sprintf("moderate NPSH margin (%.2f m): monitor conditions", c.Margin)}
	}
	return c
}
