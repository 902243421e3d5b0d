package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/pipeflow/internal/batch"
	"github.com/san-kum/pipeflow/internal/config"
	"github.com/san-kum/pipeflow/internal/result"
	"github.com/san-kum/pipeflow/internal/solver"
	"github.com/san-kum/pipeflow/internal/storage"
	"github.com/san-kum/pipeflow/internal/viz"
)

func title(cfg *config.Config) string {
	if cfg.Name != "" {
		return fmt.Sprintf("%s (%s)", cfg.Name, cfg.Mode)
	}
	return cfg.Mode
}

func saveRun(cfg *config.Config, r result.Result) (string, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return "", err
	}
	return st.Save(cfg, r)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	if modeFlag != "" {
		cfg.Mode = modeFlag
	}

	r := cfg.Solver(logger).Run(solver.Mode(cfg.Mode), &cfg.System, cfg.Params)

	if jsonOut {
		if err := storage.ExportJSON("-", storage.Summarize(cfg, r)); err != nil {
			return err
		}
	} else {
		fmt.Println(viz.RenderResult(title(cfg), r))
		if p, ok := result.PayloadOf(r); ok && plot && len(p.Curve) > 0 {
			fmt.Println(viz.PlotCurve(p.Curve, cfg.System.Pump.Head, viz.PlotOptions{}))
		}
	}

	if save {
		runID, err := saveRun(cfg, r)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "run id: %s\n", runID)
	}
	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	cfg.Mode = string(solver.ModeSystemCurve)
	if cmd.Flags().Changed("q-min") {
		cfg.Params.QMin = qMin
	}
	if cmd.Flags().Changed("q-max") {
		cfg.Params.QMax = qMax
	}
	if cmd.Flags().Changed("points") {
		cfg.Params.Points = points
	}

	r := cfg.Solver(logger).Run(solver.ModeSystemCurve, &cfg.System, cfg.Params)
	p, ok := result.PayloadOf(r)
	if !ok {
		fmt.Println(viz.RenderResult(title(cfg), r))
		return nil
	}

	fmt.Println(viz.PlotCurve(p.Curve, cfg.System.Pump.Head, viz.PlotOptions{}))
	for _, w := range result.WarningsOf(r) {
		fmt.Println(viz.StatusWarn.Render("! " + w))
	}

	if save {
		runID, err := saveRun(cfg, r)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "run id: %s\n", runID)
	}
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	if len(cfg.System.Pump.Head) == 0 {
		return fmt.Errorf("scenario %q has no pump head curve to explore", cfg.Name)
	}
	return viz.RunExplorer(cfg.Solver(logger), cfg.Name, cfg.System)
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := batch.LoadScenario(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcomes, err := batch.RunScenario(ctx, scenario, limit, logger)
	if err != nil {
		return err
	}
	if len(outcomes) > 0 {
		if err := printOutcomes(outcomes); err != nil {
			return err
		}
	}

	if scenario.Grid != nil {
		best, all, err := scenario.Grid.Search(ctx, limit, logger)
		if err != nil {
			return err
		}
		if save {
			for _, o := range all {
				if _, err := saveRun(o.Config, o.Result); err != nil {
					return err
				}
			}
		}
		if best == nil {
			fmt.Printf("\ngrid: none of %d cases reported %s\n", len(all), scenario.Grid.Objective)
			return nil
		}
		fmt.Println()
		fmt.Println(viz.RenderResult(fmt.Sprintf("best of %d: %s", len(all), best.Name), best.Result))
	}
	return nil
}

func printOutcomes(outcomes []batch.Outcome) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CASE\tMODE\tSTATUS\tQ\th_a\tDETAIL")
	for _, o := range outcomes {
		q, ha, detail := "-", "-", ""
		switch v := o.Result.(type) {
		case *result.NoSolution:
			detail = string(v.Reason)
		case *result.MissingInputs:
			detail = v.Error()
		}
		if p, ok := result.PayloadOf(o.Result); ok {
			if x, ok := p.Values[result.Q]; ok {
				q = fmt.Sprintf("%.6g", x)
			}
			if x, ok := p.Values[result.HA]; ok {
				ha = fmt.Sprintf("%.6g", x)
			}
			detail = fmt.Sprintf("%d warnings", len(result.WarningsOf(o.Result)))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", o.Name, o.Mode, o.Result.Status(), q, ha, detail)

		if save {
			if _, err := saveRun(o.Config, o.Result); err != nil {
				return err
			}
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	counts := batch.Counts(outcomes)
	fmt.Printf("\n%d cases: %d success, %d warning, %d missing inputs, %d no solution\n",
		len(outcomes),
		counts[result.StatusSuccess],
		counts[result.StatusWarning],
		counts[result.StatusMissingInputs],
		counts[result.StatusNoSolution],
	)
	return nil
}
