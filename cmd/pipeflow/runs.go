package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/pipeflow/internal/export"
	"github.com/san-kum/pipeflow/internal/pump"
	"github.com/san-kum/pipeflow/internal/result"
	"github.com/san-kum/pipeflow/internal/storage"
	"github.com/san-kum/pipeflow/internal/viz"
)

func runCommands() []*cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&plot, "plot", false, "plot the saved curve")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved curve to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "chart a saved run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	return []*cobra.Command{listCmd, showCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMODE\tTIME\tSTATUS\tQ")

	for _, run := range runs {
		q := "-"
		if v, ok := run.Values[result.Q]; ok {
			q = fmt.Sprintf("%.6g", v)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Name,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Status,
			q,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	r := meta.Result()
	var curve []result.CurvePoint
	if meta.CurvePoints > 0 {
		if curve, err = st.LoadCurve(meta.ID); err != nil {
			return err
		}
		switch v := r.(type) {
		case *result.Success:
			v.Curve = curve
		case *result.Warning:
			v.Curve = curve
		}
	}

	fmt.Println(viz.Subtle.Render(meta.ID + " · " + meta.Timestamp.Format("2006-01-02 15:04:05")))
	fmt.Println(viz.RenderResult(meta.Name+" ("+meta.Mode+")", r))
	if plot && len(curve) > 0 {
		var head pump.Curve
		if meta.Config != nil {
			head = meta.Config.System.Pump.Head
		}
		fmt.Println(viz.PlotCurve(curve, head, viz.PlotOptions{}))
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	curve, err := st.LoadCurve(args[0])
	if err != nil {
		return fmt.Errorf("run %s has no curve: %w", args[0], err)
	}

	if outPath == "" {
		return storage.WriteCurveCSV(os.Stdout, curve)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := storage.WriteCurveCSV(f, curve); err != nil {
		return err
	}
	fmt.Printf("exported %d points to %s\n", len(curve), outPath)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(outPath, *meta)
}

// exportSVG charts a run's system curve. Runs saved without a curve have one
// sampled from their scenario over the pump's flow range.
func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if meta.Config == nil {
		return fmt.Errorf("run %s has no saved scenario", meta.ID)
	}
	sys := meta.Config.System

	var curve []result.CurvePoint
	if meta.CurvePoints > 0 {
		if curve, err = st.LoadCurve(meta.ID); err != nil {
			return err
		}
	} else {
		qLo, qHi := sys.Pump.Head.Bounds()
		r := meta.Config.Solver(logger).SystemCurve(&sys, qLo, qHi, 0)
		p, ok := result.PayloadOf(r)
		if !ok {
			return fmt.Errorf("run %s: cannot sample a system curve: %v", meta.ID, r)
		}
		curve = p.Curve
	}

	var op *export.XY
	q, okQ := meta.Values[result.Q]
	ha, okH := meta.Values[result.HA]
	if okQ && okH {
		op = &export.XY{X: q, Y: ha}
	}

	svg := export.OperatingPointSVG(curve, sys.Pump.Head, op, 0, 0)
	if outPath == "" {
		_, err = fmt.Print(svg)
		return err
	}
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}
