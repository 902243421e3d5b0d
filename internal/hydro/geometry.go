package hydro

import (
	"fmt"
	"math"
)

type Shape string

const (
	Circular    Shape = "circular"
	Rectangular Shape = "rectangular"
	Annular     Shape = "annular"
)

// Geometry holds shape-specific dimensions. Absent dimensions are nil.
type Geometry struct {
	Shape  Shape    `yaml:"shape,omitempty" json:"shape,omitempty"`
	D      *float64 `yaml:"d,omitempty" json:"d,omitempty" validate:"omitempty,gt=0"`
	RectA  *float64 `yaml:"a,omitempty" json:"a,omitempty" validate:"omitempty,gt=0"`
	RectB  *float64 `yaml:"b,omitempty" json:"b,omitempty" validate:"omitempty,gt=0"`
	DOuter *float64 `yaml:"d_outer,omitempty" json:"d_outer,omitempty" validate:"omitempty,gt=0"`
	DInner *float64 `yaml:"d_inner,omitempty" json:"d_inner,omitempty" validate:"omitempty,gt=0"`
}

// Section is the derived flow cross-section.
type Section struct {
	Shape     Shape
	Dh        float64
	Area      float64
	Perimeter float64
}

func CircularGeometry(d float64) Geometry {
	return Geometry{Shape: Circular, D: &d}
}

func RectangularGeometry(a, b float64) Geometry {
	return Geometry{Shape: Rectangular, RectA: &a, RectB: &b}
}

func AnnularGeometry(outer, inner float64) Geometry {
	return Geometry{Shape: Annular, DOuter: &outer, DInner: &inner}
}

func (g Geometry) shape() Shape {
	if g.Shape == "" {
		return Circular
	}
	return g.Shape
}

// Section derives hydraulic diameter, area and wetted perimeter. Dimensions
// that do not give D_h > 0 and A > 0 fail with ErrInvalidGeometry.
func (g Geometry) Section() (Section, error) {
	sec, err := g.section()
	if err != nil {
		return Section{}, err
	}
	if !(sec.Dh > 0) || !(sec.Area > 0) {
		return Section{}, fmt.Errorf("%w: %s section has D_h=%g, A=%g", ErrInvalidGeometry, sec.Shape, sec.Dh, sec.Area)
	}
	return sec, nil
}

func (g Geometry) section() (Section, error) {
	shape := g.shape()

	switch shape {
	case Circular:
		if g.D == nil {
			return Section{}, &MissingDimensionError{Shape: shape, Missing: []Dimension{
				{Name: "D", Description: "Pipe diameter"},
			}}
		}
		d := *g.D
		return Section{Shape: shape, Dh: d, Area: CircularArea(d), Perimeter: math.Pi * d}, nil

	case Rectangular:
		var missing []Dimension
		if g.RectA == nil {
			missing = append(missing, Dimension{Name: "a", Description: "Rectangle side length a"})
		}
		if g.RectB == nil {
			missing = append(missing, Dimension{Name: "b", Description: "Rectangle side length b"})
		}
		if len(missing) > 0 {
			return Section{}, &MissingDimensionError{Shape: shape, Missing: missing}
		}
		a, b := *g.RectA, *g.RectB
		area := a * b
		perimeter := 2 * (a + b)
		return Section{Shape: shape, Dh: 4 * area / perimeter, Area: area, Perimeter: perimeter}, nil

	case Annular:
		var missing []Dimension
		if g.DOuter == nil {
			missing = append(missing, Dimension{Name: "D_outer", Description: "Outer diameter"})
		}
		if g.DInner == nil {
			missing = append(missing, Dimension{Name: "D_inner", Description: "Inner diameter"})
		}
		if len(missing) > 0 {
			return Section{}, &MissingDimensionError{Shape: shape, Missing: missing}
		}
		do, di := *g.DOuter, *g.DInner
		if di >= do {
			return Section{}, fmt.Errorf("%w: inner diameter %g must be smaller than outer diameter %g", ErrInvalidGeometry, di, do)
		}
		return Section{
			Shape:     shape,
			Dh:        do - di,
			Area:      math.Pi / 4 * (do*do - di*di),
			Perimeter: math.Pi * (do + di),
		}, nil
	}

	return Section{}, fmt.Errorf("%w: %q (use circular, rectangular or annular)", ErrUnknownShape, shape)
}

// CircularArea is πD²/4.
func CircularArea(d float64) float64 {
	return math.Pi * (d / 2) * (d / 2)
}

// Velocity returns Q/A, or 0 for a non-positive area.
func Velocity(q, area float64) float64 {
	if area <= 0 {
		return 0
	}
	return q / area
}

func FlowFromVelocity(v, area float64) float64 {
	return v * area
}
