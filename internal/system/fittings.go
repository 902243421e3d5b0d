package system

import "sort"

// Loss coefficients for common fittings, velocity-head basis.
var fittingK = map[string]float64{
	"elbow_90_flanged":              0.3,
	"elbow_90_threaded":             1.5,
	"elbow_90_long_radius_flanged":  0.2,
	"elbow_90_long_radius_threaded": 0.7,
	"elbow_45_flanged":              0.2,
	"elbow_45_threaded":             0.4,
	"return_bend_180_flanged":       0.2,
	"return_bend_180_threaded":      1.5,
	"tee_line_flow_flanged":         0.2,
	"tee_line_flow_threaded":        0.9,
	"tee_branch_flow_flanged":       1.0,
	"tee_branch_flow_threaded":      2.0,
	"valve_globe_open":              10.0,
	"valve_globe_half_open":         20.0,
	"valve_angle_open":              2.0,
	"valve_gate_open":               0.15,
	"valve_gate_1/4_closed":         0.26,
	"valve_gate_1/2_closed":         2.1,
	"valve_gate_3/4_closed":         17.0,
	"valve_ball_open":               0.05,
	"valve_check_swing":             2.0,
	"entrance_square":               0.5,
	"entrance_rounded":              0.04,
	"entrance_reentrant":            0.8,
	"exit":                          1.0,
	"union_threaded":                0.08,
}

func FittingK(name string) (float64, bool) {
	k, ok := fittingK[name]
	return k, ok
}

func FittingNames() []string {
	names := make([]string, 0, len(fittingK))
	for name := range fittingK {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
