package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/pipeflow/internal/batch"
	"github.com/san-kum/pipeflow/internal/config"
	"github.com/san-kum/pipeflow/internal/solver"
	"github.com/san-kum/pipeflow/internal/system"
)

func catalogCommands() []*cobra.Command {
	presetsCmd := &cobra.Command{
		Use:   "presets [mode]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := config.PresetModes()
			if len(args) > 0 {
				modes = args
			}
			for _, mode := range modes {
				presets := config.ListPresets(mode)
				if len(presets) == 0 {
					fmt.Printf("no presets for mode: %s\n", mode)
					continue
				}
				fmt.Printf("%s:\n", mode)
				for _, p := range presets {
					fmt.Printf("  %s/%s\n", mode, p)
				}
			}
			return nil
		},
	}

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "list solve modes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range solver.New(logger).Modes() {
				fmt.Println(m)
			}
		},
	}

	fluidsCmd := &cobra.Command{
		Use:   "fluids",
		Short: "list fluid presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRHO (kg/m³)\tMU (Pa·s)\tP_VAP (Pa)")
			for _, name := range system.FluidNames() {
				p, _ := system.LookupFluid(name)
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\n", name, p.Density, p.Viscosity, p.VaporPressure)
			}
			return w.Flush()
		},
	}

	fittingsCmd := &cobra.Command{
		Use:   "fittings",
		Short: "list fitting loss coefficients",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FITTING\tK")
			for _, name := range system.FittingNames() {
				k, _ := system.FittingK(name)
				fmt.Fprintf(w, "%s\t%g\n", name, k)
			}
			return w.Flush()
		},
	}

	sweepsCmd := &cobra.Command{
		Use:   "sweep-params",
		Short: "list parameters a batch sweep can vary",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range batch.SweepParams() {
				fmt.Println(p)
			}
		},
	}

	return []*cobra.Command{presetsCmd, modesCmd, fluidsCmd, fittingsCmd, sweepsCmd}
}
