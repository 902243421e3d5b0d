package result

type Reason string

const (
	ReasonReverseFlow           Reason = "reverse_flow"
	ReasonNegativeKineticEnergy Reason = "negative_kinetic_energy"
	ReasonNegativeMajorLoss     Reason = "negative_major_loss"
	ReasonPumpInsufficient      Reason = "pump_insufficient"
	ReasonNoPositiveSolution    Reason = "no_positive_solution"
	ReasonIterationFailed       Reason = "iteration_failed"
	ReasonNegativeDiameter      Reason = "negative_diameter"
	ReasonNegativeFlow          Reason = "negative_flow"
	ReasonUnknownSolveFor       Reason = "unknown_solve_for"
	ReasonUnknownShape          Reason = "unknown_shape"
	ReasonInvalidGeometry       Reason = "invalid_geometry"
	ReasonUnknownMode           Reason = "unknown_mode"
)

// Quantity names an output value. Names follow the usual hydraulic notation.
type Quantity string

const (
	Q          Quantity = "Q"
	V          Quantity = "v"
	Re         Quantity = "Re"
	F          Quantity = "f"
	HA         Quantity = "h_a"
	HL         Quantity = "h_L"
	HLMajor    Quantity = "h_L_major"
	HLMinor    Quantity = "h_L_minor"
	HLTotal    Quantity = "h_L_total"
	P1         Quantity = "P1"
	P2         Quantity = "P2"
	Z1         Quantity = "z1"
	Z2         Quantity = "z2"
	V1         Quantity = "v1"
	V2         Quantity = "v2"
	D          Quantity = "D"
	L          Quantity = "L"
	Dh         Quantity = "D_h"
	Area       Quantity = "A"
	Residual   Quantity = "residual"
	LHS        Quantity = "LHS"
	RHS        Quantity = "RHS"
	PHydraulic Quantity = "P_hydraulic"
	PShaft     Quantity = "P_shaft"
	WShaft     Quantity = "W_shaft"
	Efficiency Quantity = "efficiency"
	NPSHA      Quantity = "NPSH_A"
	NPSHR      Quantity = "NPSH_R"
	Margin     Quantity = "margin"

	HLTotalAvailable Quantity = "h_L_total_available"
	Shortfall        Quantity = "shortfall"

	HSystemAtQMin Quantity = "h_system_at_Q_min"
	HPumpAtQMin   Quantity = "h_pump_at_Q_min"
	HSystemAtQMax Quantity = "h_system_at_Q_max"
	HPumpAtQMax   Quantity = "h_pump_at_Q_max"
)

const (
	FlagBalanced  = "balanced"
	FlagCavitates = "cavitates"
)
