package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/npsh"
	"github.com/san-kum/pipeflow/internal/pump"
	"github.com/san-kum/pipeflow/internal/solver"
	"github.com/san-kum/pipeflow/internal/system"
	"github.com/san-kum/pipeflow/internal/viz"
)

var (
	fluidName string
	rho       float64
	mu        float64
	pVap      float64

	pSurface float64
	hLoss    float64
	lift     float64
	npshR    float64

	ratio  float64
	n1, n2 float64
	d1, d2 float64
	dutyQ  float64
	dutyH  float64
	dutyP  float64

	count       int
	arrangement string

	length    float64
	diameter  float64
	flow      float64
	roughness float64
	kTotal    float64

	p1, p2 float64
	z1, z2 float64
	v1, v2 float64
)

func toolCommands() []*cobra.Command {
	npshCmd := &cobra.Command{
		Use:   "npsh",
		Short: "net positive suction head available and cavitation check",
		RunE:  runNPSH,
	}
	addFluidFlags(npshCmd)
	npshCmd.Flags().Float64Var(&pVap, "p-vap", 0, "vapor pressure override (Pa)")
	npshCmd.Flags().Float64Var(&pSurface, "p-surface", 101325, "pressure on the supply surface (Pa)")
	npshCmd.Flags().Float64Var(&hLoss, "h-loss", 0, "suction line head loss (m)")
	npshCmd.Flags().Float64Var(&lift, "lift", 0, "pump height above the surface (m), negative when flooded")
	npshCmd.Flags().Float64Var(&npshR, "npsh-r", 0, "pump NPSH required (m)")

	affinityCmd := &cobra.Command{
		Use:   "affinity",
		Short: "scale a duty point or pump curve to a new speed or impeller",
		RunE:  runAffinity,
	}
	addScenarioFlags(affinityCmd)
	affinityCmd.Flags().Float64Var(&ratio, "ratio", 0, "speed or diameter ratio")
	affinityCmd.Flags().Float64Var(&n1, "n1", 0, "rated speed")
	affinityCmd.Flags().Float64Var(&n2, "n2", 0, "new speed")
	affinityCmd.Flags().Float64Var(&d1, "d1", 0, "rated impeller diameter")
	affinityCmd.Flags().Float64Var(&d2, "d2", 0, "trimmed impeller diameter")
	affinityCmd.Flags().Float64Var(&dutyQ, "q", 0, "duty flow (m³/s)")
	affinityCmd.Flags().Float64Var(&dutyH, "h", 0, "duty head (m)")
	affinityCmd.Flags().Float64Var(&dutyP, "power", 0, "duty power (W)")

	combineCmd := &cobra.Command{
		Use:   "combine",
		Short: "combine identical pumps in series or parallel",
		RunE:  runCombine,
	}
	addScenarioFlags(combineCmd)
	combineCmd.Flags().IntVar(&count, "count", 2, "number of pumps")
	combineCmd.Flags().StringVar(&arrangement, "arrangement", "parallel", "series or parallel")

	headLossCmd := &cobra.Command{
		Use:   "headloss",
		Short: "head loss of a circular pipe at a given flow",
		RunE:  runHeadLoss,
	}
	addFluidFlags(headLossCmd)
	headLossCmd.Flags().Float64Var(&length, "L", 0, "pipe length (m)")
	headLossCmd.Flags().Float64Var(&diameter, "D", 0, "pipe diameter (m)")
	headLossCmd.Flags().Float64Var(&flow, "Q", 0, "flow rate (m³/s)")
	headLossCmd.Flags().Float64Var(&roughness, "roughness", 0, "absolute roughness (m)")
	headLossCmd.Flags().Float64Var(&kTotal, "K", 0, "total minor loss coefficient")
	for _, name := range []string{"L", "D", "Q"} {
		_ = headLossCmd.MarkFlagRequired(name)
	}

	pumpHeadCmd := &cobra.Command{
		Use:   "pumphead",
		Short: "pump head needed between two points",
		RunE:  runPumpHead,
	}
	addFluidFlags(pumpHeadCmd)
	pumpHeadCmd.Flags().Float64Var(&p1, "P1", 101325, "pressure at point 1 (Pa)")
	pumpHeadCmd.Flags().Float64Var(&p2, "P2", 101325, "pressure at point 2 (Pa)")
	pumpHeadCmd.Flags().Float64Var(&z1, "z1", 0, "elevation of point 1 (m)")
	pumpHeadCmd.Flags().Float64Var(&z2, "z2", 0, "elevation of point 2 (m)")
	pumpHeadCmd.Flags().Float64Var(&v1, "v1", 0, "velocity at point 1 (m/s)")
	pumpHeadCmd.Flags().Float64Var(&v2, "v2", 0, "velocity at point 2 (m/s)")
	pumpHeadCmd.Flags().Float64Var(&hLoss, "h-loss", 0, "head loss between the points (m)")

	return []*cobra.Command{npshCmd, affinityCmd, combineCmd, headLossCmd, pumpHeadCmd}
}

func addFluidFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&fluidName, "fluid", "water_20C", "fluid preset")
	cmd.Flags().Float64Var(&rho, "rho", 0, "density override (kg/m³)")
	cmd.Flags().Float64Var(&mu, "mu", 0, "viscosity override (Pa·s)")
}

// fluidFromFlags resolves the preset then applies any explicit overrides.
func fluidFromFlags(cmd *cobra.Command) (system.Fluid, error) {
	f := system.Fluid{Preset: fluidName}
	if cmd.Flags().Changed("rho") {
		f.Density = &rho
	}
	if cmd.Flags().Changed("mu") {
		f.Viscosity = &mu
	}
	if cmd.Flags().Lookup("p-vap") != nil && cmd.Flags().Changed("p-vap") {
		f.VaporPressure = &pVap
	}
	return f.Resolve()
}

func printValues(rows [][2]string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", viz.Label.Render(r[0]), viz.Value.Render(r[1]))
	}
	return w.Flush()
}

func runNPSH(cmd *cobra.Command, args []string) error {
	f, err := fluidFromFlags(cmd)
	if err != nil {
		return err
	}

	s := npsh.Suction{
		SurfacePressure: pSurface,
		VaporPressure:   f.PVap(),
		Rho:             f.Rho(),
		G:               hydro.G,
		HeadLoss:        hLoss,
		Lift:            lift,
	}
	available := npsh.Available(s)

	rows := [][2]string{{"NPSH_A", fmt.Sprintf("%.4f m", available)}}
	if cmd.Flags().Changed("npsh-r") {
		c := npsh.CheckCavitation(available, npshR)
		rows = append(rows,
			[2]string{"NPSH_R", fmt.Sprintf("%.4f m", c.Required)},
			[2]string{"margin", fmt.Sprintf("%.4f m", c.Margin)},
			[2]string{"level", string(c.Level)},
			[2]string{"max lift", fmt.Sprintf("%.4f m", npsh.MaxSuctionLift(s, npshR))},
		)
		if err := printValues(rows); err != nil {
			return err
		}
		for _, w := range c.Warnings {
			fmt.Println(viz.StatusWarn.Render("! " + w))
		}
		return nil
	}
	return printValues(rows)
}

func affinityRatio() (float64, error) {
	switch {
	case ratio > 0:
		return ratio, nil
	case n1 > 0 && n2 > 0:
		return pump.SpeedRatio(n1, n2), nil
	case d1 > 0 && d2 > 0:
		return pump.DiameterRatio(d1, d2), nil
	}
	return 0, fmt.Errorf("give --ratio, --n1/--n2 or --d1/--d2")
}

func runAffinity(cmd *cobra.Command, args []string) error {
	r, err := affinityRatio()
	if err != nil {
		return err
	}

	if preset != "" || configFile != "" {
		cfg, err := loadScenario()
		if err != nil {
			return err
		}
		head := cfg.System.Pump.Head
		if len(head) == 0 {
			return fmt.Errorf("scenario %q has no pump head curve", cfg.Name)
		}
		scaled := cfg.System.Pump.Scale(r)
		fmt.Println(viz.PlotPumps([]pump.Curve{head, scaled.Head},
			[]string{"rated", fmt.Sprintf("×%.3g", r)}, viz.PlotOptions{}))
		if len(scaled.Efficiency) > 0 {
			q, eta := pump.BEP(scaled.Efficiency)
			return printValues([][2]string{{"BEP", fmt.Sprintf("Q %.4g m³/s at %.1f%%", q, eta*100)}})
		}
		return nil
	}

	s := pump.Affinity(r, dutyQ, dutyH, dutyP)
	return printValues([][2]string{
		{"ratio", fmt.Sprintf("%.4g", s.Ratio)},
		{"Q", fmt.Sprintf("%.6g m³/s", s.Q)},
		{"H", fmt.Sprintf("%.6g m", s.H)},
		{"P", fmt.Sprintf("%.6g W", s.P)},
	})
}

func runCombine(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	head := cfg.System.Pump.Head
	if len(head) == 0 {
		return fmt.Errorf("scenario %q has no pump head curve", cfg.Name)
	}
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	curves := make([]pump.Curve, count)
	for i := range curves {
		curves[i] = head
	}

	var combined pump.Curve
	switch arrangement {
	case "series":
		combined = pump.Series(curves, nil)
	case "parallel":
		combined = pump.Parallel(curves, nil)
	default:
		return fmt.Errorf("unknown arrangement %q (series|parallel)", arrangement)
	}

	fmt.Println(viz.PlotPumps([]pump.Curve{head, combined},
		[]string{"single", fmt.Sprintf("%d in %s", count, arrangement)}, viz.PlotOptions{}))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Q (m³/s)\tH (m)")
	for _, p := range combined {
		fmt.Fprintf(w, "%.6g\t%.6g\n", p.Q, p.Value)
	}
	return w.Flush()
}

func runHeadLoss(cmd *cobra.Command, args []string) error {
	f, err := fluidFromFlags(cmd)
	if err != nil {
		return err
	}

	st := solver.QuickHeadLoss(length, diameter, flow, f.Rho(), f.Mu(), roughness, kTotal)
	return printValues([][2]string{
		{"v", fmt.Sprintf("%.6g m/s", st.V)},
		{"Re", fmt.Sprintf("%.6g (%s)", st.Re, st.Regime)},
		{"f", fmt.Sprintf("%.6g (%s)", st.F, st.Method)},
		{"h_L_major", fmt.Sprintf("%.6g m", st.MajorLoss)},
		{"h_L_minor", fmt.Sprintf("%.6g m", st.MinorLoss)},
		{"h_L_total", fmt.Sprintf("%.6g m", st.TotalLoss)},
	})
}

func runPumpHead(cmd *cobra.Command, args []string) error {
	f, err := fluidFromFlags(cmd)
	if err != nil {
		return err
	}

	ha := solver.QuickPumpHead(p1, p2, z1, z2, hLoss, f.Rho(), v1, v2)
	return printValues([][2]string{{"h_a", fmt.Sprintf("%.6g m", ha)}})
}
