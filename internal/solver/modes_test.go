package solver_test

import (
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/meb"
	"github.com/san-kum/pipeflow/internal/pump"
	"github.com/san-kum/pipeflow/internal/result"
	"github.com/san-kum/pipeflow/internal/solver"
	"github.com/san-kum/pipeflow/internal/system"
)

func ptr(v float64) *float64 { return &v }

// drain is the reference line: 100 m of 0.1 m commercial steel between two
// open tanks 10 m apart.
func drain() *system.PipeSystem {
	return &system.PipeSystem{
		Fluid:     system.Fluid{Density: ptr(1000), Viscosity: ptr(0.001), VaporPressure: ptr(2337)},
		Geometry:  hydro.CircularGeometry(0.1),
		Length:    ptr(100),
		Roughness: 0.00015,
		P1:        ptr(101325),
		P2:        ptr(101325),
		Z1:        ptr(10),
		Z2:        ptr(0),
		KTotal:    2.0,
	}
}

func uphill(z2 float64) *system.PipeSystem {
	sys := drain()
	sys.Z1 = ptr(0)
	sys.Z2 = ptr(z2)
	return sys
}

var testPump = pump.Curve{
	{Q: 0.001, Value: 50}, {Q: 0.01, Value: 48}, {Q: 0.02, Value: 44}, {Q: 0.03, Value: 38},
	{Q: 0.04, Value: 30}, {Q: 0.05, Value: 20}, {Q: 0.06, Value: 8},
}

const gravityQ = 0.021776876991482955

func payload(r result.Result) result.Payload {
	GinkgoHelper()
	p, ok := result.PayloadOf(r)
	Expect(ok).To(BeTrue(), "expected a solved result, got %#v", r)
	return p
}

func noSolution(r result.Result) *result.NoSolution {
	GinkgoHelper()
	ns, ok := r.(*result.NoSolution)
	Expect(ok).To(BeTrue(), "expected NoSolution, got %#v", r)
	return ns
}

var _ = Describe("Solve modes", func() {
	var s *solver.Solver

	BeforeEach(func() {
		s = solver.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	Describe("gravity_flow", func() {
		It("drains downhill at a positive turbulent flow with no pump head", func() {
			r := s.Run(solver.ModeGravityFlow, drain(), solver.Params{})
			Expect(r).To(BeAssignableToTypeOf(&result.Success{}))

			p := payload(r)
			Expect(p.Values[result.Q]).To(BeNumerically("~", gravityQ, 1e-6))
			Expect(p.Values[result.HA]).To(BeZero())
			Expect(p.Values[result.HLTotal]).To(BeNumerically("~", 9.6081567, 1e-5))
			Expect(p.Diagnostics.Regime).To(Equal(hydro.Turbulent))
			Expect(p.Diagnostics.FrictionMethod).To(Equal(hydro.MethodColebrook))
		})

		It("is deterministic", func() {
			a := s.Run(solver.ModeGravityFlow, drain(), solver.Params{})
			b := s.Run(solver.ModeGravityFlow, drain(), solver.Params{})
			Expect(a).To(Equal(b))
		})

		It("reports reverse flow when the outlet is higher at equal pressure", func() {
			r := s.Run(solver.ModeGravityFlow, uphill(10), solver.Params{})
			Expect(noSolution(r).Reason).To(Equal(result.ReasonReverseFlow))
		})

		It("finds no positive flow on a level line", func() {
			ns := noSolution(s.Run(solver.ModeGravityFlow, uphill(0), solver.Params{}))
			Expect(ns.Reason).To(Equal(result.ReasonNoPositiveSolution))
		})

		It("only calls it reverse flow when the inlet pressure is not higher", func() {
			sys := uphill(10)
			sys.P1 = ptr(101325 + 1000)

			ns := noSolution(s.Run(solver.ModeGravityFlow, sys, solver.Params{}))
			Expect(ns.Reason).NotTo(Equal(result.ReasonReverseFlow))
			Expect(ns.Reason).To(BeElementOf(result.ReasonNoPositiveSolution, result.ReasonIterationFailed))
		})

		It("rejects an annulus whose core is wider than the pipe", func() {
			sys := drain()
			sys.Z1 = ptr(0)
			sys.Geometry = hydro.AnnularGeometry(0.1, 0.2)

			ns := noSolution(s.Run(solver.ModeGravityFlow, sys, solver.Params{}))
			Expect(ns.Reason).To(Equal(result.ReasonInvalidGeometry))
		})

		It("lists missing inputs when only density is known", func() {
			sys := &system.PipeSystem{Fluid: system.Fluid{Density: ptr(1000)}}
			r := s.Run(solver.ModeGravityFlow, sys, solver.Params{})

			m, ok := r.(*result.MissingInputs)
			Expect(ok).To(BeTrue())
			Expect(m.Params()).To(ContainElements("mu", "L", "P1", "P2", "z1", "z2"))
		})

		It("warns about unknown fittings without changing the answer", func() {
			sys := drain()
			sys.Fittings = []string{"mystery_valve"}

			r := s.Run(solver.ModeGravityFlow, sys, solver.Params{})
			Expect(r).To(BeAssignableToTypeOf(&result.Warning{}))
			Expect(result.WarningsOf(r)[0]).To(ContainSubstring("mystery_valve"))
			Expect(payload(r).Values[result.Q]).To(BeNumerically("~", gravityQ, 1e-6))
		})
	})

	Describe("given_pump_head", func() {
		It("delivers the same flow as a gravity drain with the same net head", func() {
			r := s.Run(solver.ModeGivenPumpHead, uphill(20), solver.Params{HA: 30})
			p := payload(r)
			Expect(p.Values[result.Q]).To(BeNumerically("~", gravityQ, 1e-6))
			Expect(p.Values[result.PHydraulic]).To(BeNumerically("~", 1000*9.81*p.Values[result.Q]*30, 1e-6))
		})
	})

	Describe("given_pump_power", func() {
		It("recovers the pump head from shaft power", func() {
			w := 1000 * 9.81 * gravityQ * 30 / 0.7
			r := s.Run(solver.ModeGivenPumpPower, uphill(20), solver.Params{WShaft: w, Efficiency: ptr(0.7)})

			p := payload(r)
			Expect(p.Values[result.Q]).To(BeNumerically("~", gravityQ, 1e-6))
			Expect(p.Values[result.HA]).To(BeNumerically("~", 30, 1e-3))
			Expect(p.Values[result.WShaft]).To(Equal(w))
		})

		It("fails when the fallback search runs out of iterations", func() {
			// the pump head exceeds the losses across the whole bracket
			s.Options.MaxIter = 3
			r := s.Run(solver.ModeGivenPumpPower, uphill(20), solver.Params{WShaft: 1e9, Efficiency: ptr(1)})
			Expect(noSolution(r).Reason).To(Equal(result.ReasonIterationFailed))
		})
	})

	Describe("given_Q_and_power", func() {
		It("solves the unknown outlet pressure in closed form", func() {
			sys := uphill(20)
			sys.P2 = nil
			w := 1000 * 9.81 * gravityQ * 30 / 0.7

			r := s.Run(solver.ModeGivenQAndPower, sys, solver.Params{
				Q: gravityQ, WShaft: w, Efficiency: ptr(0.7), SolveFor: string(meb.P2),
			})
			Expect(payload(r).Values[result.P2]).To(BeNumerically("~", 101325, 0.1))
		})

		It("warns in the transitional regime", func() {
			sys := drain()
			sys.P2 = nil
			q := 3000 * 3.141592653589793 * 0.1 * 0.001 / 4000

			r := s.GivenQAndPower(sys, q, 10, 1, meb.P2)
			Expect(r).To(BeAssignableToTypeOf(&result.Warning{}))
			Expect(result.WarningsOf(r)).To(ContainElement(ContainSubstring("transitional")))
		})

		It("rejects a non-positive flow", func() {
			r := s.GivenQAndPower(drain(), 0, 10, 1, meb.P2)
			Expect(noSolution(r).Reason).To(Equal(result.ReasonNegativeFlow))
		})

		It("passes through an unknown target", func() {
			r := s.GivenQAndPower(drain(), 0.01, 10, 1, meb.Target("Q"))
			Expect(noSolution(r).Reason).To(Equal(result.ReasonUnknownSolveFor))
		})
	})

	Describe("operating_point", func() {
		It("intersects the pump and system curves", func() {
			sys := uphill(20)
			sys.Pump.Head = testPump

			r := s.Run(solver.ModeOperatingPoint, sys, solver.Params{})
			Expect(r).To(BeAssignableToTypeOf(&result.Success{}))

			p := payload(r)
			Expect(p.Values[result.Q]).To(BeNumerically("~", 0.0295506247, 1e-6))
			Expect(p.Values[result.HA]).To(BeNumerically("~", 38.2696252, 1e-4))
			Expect(p.Values[result.Efficiency]).To(Equal(pump.DefaultEfficiency))
			Expect(p.Values[result.PShaft]).To(BeNumerically("~", p.Values[result.PHydraulic]/0.75, 1e-9))
		})

		It("runs the cavitation check when NPSH required is given", func() {
			sys := uphill(20)
			sys.Pump.Head = testPump
			sys.Pump.NPSHRequired = pump.Curve{{Q: 0.001, Value: 2}, {Q: 0.06, Value: 6}}
			sys.ZSuction = 5
			sys.HLSuction = 0.5

			r := s.Run(solver.ModeOperatingPoint, sys, solver.Params{})
			Expect(r).To(BeAssignableToTypeOf(&result.Warning{}))

			p := payload(r)
			Expect(p.Values[result.NPSHA]).To(BeNumerically("~", 4.5905, 1e-3))
			Expect(p.Values[result.Margin]).To(BeNumerically(">", 0.5))
			Expect(p.Flags[result.FlagCavitates]).To(BeFalse())
			Expect(result.WarningsOf(r)).To(ContainElement(ContainSubstring("moderate NPSH margin")))
		})

		It("fails fast when the pump is below the system curve", func() {
			sys := uphill(60)
			sys.Pump.Head = testPump

			ns := noSolution(s.Run(solver.ModeOperatingPoint, sys, solver.Params{}))
			Expect(ns.Reason).To(Equal(result.ReasonPumpInsufficient))
			Expect(ns.Partial).To(HaveKeyWithValue(result.HPumpAtQMin, 50.0))
			Expect(ns.Partial).To(HaveKeyWithValue(result.HPumpAtQMax, 8.0))
			Expect(ns.Partial[result.HSystemAtQMin]).To(BeNumerically("~", 60.0285, 1e-3))
			Expect(ns.Partial[result.HSystemAtQMax]).To(BeNumerically("~", 134.4418, 1e-3))
		})

		It("requires a pump curve", func() {
			m, ok := s.Run(solver.ModeOperatingPoint, drain(), solver.Params{}).(*result.MissingInputs)
			Expect(ok).To(BeTrue())
			Expect(m.Params()).To(Equal([]string{"pump_curve"}))
		})
	})

	Describe("system_curve", func() {
		It("samples the required pump head", func() {
			r := s.Run(solver.ModeSystemCurve, uphill(20), solver.Params{QMin: 0.001, QMax: 0.06, Points: 5})
			p := payload(r)

			Expect(p.Curve).To(HaveLen(5))
			Expect(p.Curve[0].Q).To(Equal(0.001))
			Expect(p.Curve[0].HA).To(BeNumerically("~", 20.0285, 1e-3))
			Expect(p.Curve[4].HA).To(BeNumerically("~", 94.4418, 1e-3))
			for i := 1; i < len(p.Curve); i++ {
				Expect(p.Curve[i].HA).To(BeNumerically(">", p.Curve[i-1].HA))
			}
		})

		It("defaults the flow range to the pipe area", func() {
			p := payload(s.SystemCurve(drain(), 0, 0, 0))
			Expect(p.Curve).To(HaveLen(solver.DefaultPoints))
			Expect(p.Curve[len(p.Curve)-1].Q).To(BeNumerically("~", 10*p.Values[result.Area], 1e-12))
		})
	})

	Describe("inverse_diameter", func() {
		It("recovers the diameter of the gravity drain", func() {
			r := s.Run(solver.ModeInverseDiameter, drain(), solver.Params{Q: gravityQ})
			Expect(payload(r).Values[result.D]).To(BeNumerically("~", 0.1, 1e-6))
		})

		It("fails when no diameter can absorb a negative pump head", func() {
			r := s.Run(solver.ModeInverseDiameter, drain(), solver.Params{Q: 0.02, HA: -50})
			Expect(noSolution(r).Reason).To(Equal(result.ReasonIterationFailed))
		})

		It("reports a non-positive diameter from the fallback search", func() {
			ns := noSolution(s.InverseDiameter(drain(), 0.02, -50, -0.05))
			Expect(ns.Reason).To(Equal(result.ReasonNegativeDiameter))
		})
	})

	Describe("inverse_length", func() {
		smooth := func() *system.PipeSystem {
			sys := uphill(0)
			sys.Geometry = hydro.CircularGeometry(0.05)
			sys.Roughness = 0
			sys.KTotal = 0
			sys.Length = nil
			return sys
		}

		It("inverts the major loss in closed form", func() {
			r := s.Run(solver.ModeInverseLength, smooth(), solver.Params{Q: 0.005, HA: 10})
			p := payload(r)
			Expect(p.Values[result.L]).To(BeNumerically("~", 87.334033, 1e-5))
			Expect(p.Diagnostics.FrictionMethod).To(Equal(hydro.MethodBlasius))

			sys := smooth()
			sys.Length = ptr(p.Values[result.L])
			curve := payload(s.SystemCurve(sys, 0.005, 0.005, 1))
			Expect(curve.Curve[0].HA).To(BeNumerically("~", 10, 1e-9))
		})

		It("reports the shortfall when fittings use up the head", func() {
			sys := smooth()
			sys.KTotal = 100

			ns := noSolution(s.Run(solver.ModeInverseLength, sys, solver.Params{Q: 0.005, HA: 10}))
			Expect(ns.Reason).To(Equal(result.ReasonNegativeMajorLoss))
			Expect(ns.Partial[result.Shortfall]).To(BeNumerically("~", 23.38125, 1e-4))
		})
	})

	It("rejects an unknown mode", func() {
		ns := noSolution(s.Run(solver.Mode("network"), drain(), solver.Params{}))
		Expect(ns.Reason).To(Equal(result.ReasonUnknownMode))
	})

	It("registers all eight modes", func() {
		Expect(s.Modes()).To(HaveLen(8))
	})
})
