package result

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/pipeflow/internal/hydro"
)

type Status string

const (
	StatusSuccess       Status = "success"
	StatusWarning       Status = "warning"
	StatusMissingInputs Status = "missing_inputs"
	StatusNoSolution    Status = "no_solution"
)

// Result is implemented only by the variants in this package.
type Result interface {
	Status() Status
	sealed()
}

// Values holds named scalar outputs.
type Values map[Quantity]float64

// Keys returns the quantity names in sorted order.
func (v Values) Keys() []Quantity {
	keys := make([]Quantity, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Diagnostics describes the hydraulic state at the solved point.
type Diagnostics struct {
	Re             float64              `json:"re"`
	Regime         hydro.Regime         `json:"regime"`
	F              float64              `json:"f"`
	FrictionMethod hydro.FrictionMethod `json:"f_method"`
}

func DiagnosticsOf(s hydro.State) *Diagnostics {
	return &Diagnostics{Re: s.Re, Regime: s.Regime, F: s.F, FrictionMethod: s.Method}
}

// CurvePoint is one sample of a system curve.
type CurvePoint struct {
	hydro.State
	HA float64
}

type Payload struct {
	Values      Values
	Flags       map[string]bool
	Diagnostics *Diagnostics
	Curve       []CurvePoint
}

type Success struct {
	Payload
}

type Warning struct {
	Payload
	Warnings []string
}

// Missing names one absent input.
type Missing struct {
	Param       string `json:"param"`
	Description string `json:"description"`
}

type MissingInputs struct {
	Missing []Missing
}

type NoSolution struct {
	Reason  Reason
	Detail  string
	Partial Values
}

func (*Success) Status() Status       { return StatusSuccess }
func (*Warning) Status() Status       { return StatusWarning }
func (*MissingInputs) Status() Status { return StatusMissingInputs }
func (*NoSolution) Status() Status    { return StatusNoSolution }

func (*Success) sealed()       {}
func (*Warning) sealed()       {}
func (*MissingInputs) sealed() {}
func (*NoSolution) sealed()    {}

// Done returns a Success, or a Warning when warnings is non-empty.
func Done(p Payload, warnings []string) Result {
	if len(warnings) > 0 {
		return &Warning{Payload: p, Warnings: warnings}
	}
	return &Success{Payload: p}
}

func Fail(reason Reason, format string, args ...any) *NoSolution {
	return &NoSolution{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// PayloadOf extracts the payload of a Success or Warning.
func PayloadOf(r Result) (Payload, bool) {
	switch v := r.(type) {
	case *Success:
		return v.Payload, true
	case *Warning:
		return v.Payload, true
	}
	return Payload{}, false
}

// WarningsOf returns the caveats attached to r, if any.
func WarningsOf(r Result) []string {
	if w, ok := r.(*Warning); ok {
		return w.Warnings
	}
	return nil
}

func (m *MissingInputs) Params() []string {
	names := make([]string, len(m.Missing))
	for i, p := range m.Missing {
		names[i] = p.Param
	}
	return names
}

func (m *MissingInputs) Error() string {
	return "missing inputs: " + strings.Join(m.Params(), ", ")
}

func (n *NoSolution) Error() string {
	if n.Detail == "" {
		return "no solution: " + string(n.Reason)
	}
	return fmt.Sprintf("no solution (%s): %s", n.Reason, n.Detail)
}

// Merge returns the union of two missing-input lists, keeping first occurrences.
func Merge(a, b *MissingInputs) *MissingInputs {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	seen := make(map[string]bool, len(a.Missing))
	out := &MissingInputs{Missing: append([]Missing(nil), a.Missing...)}
	for _, m := range a.Missing {
		seen[m.Param] = true
	}
	for _, m := range b.Missing {
		if !seen[m.Param] {
			out.Missing = append(out.Missing, m)
		}
	}
	return out
}
