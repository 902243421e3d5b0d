package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/pipeflow/internal/config"
	"github.com/san-kum/pipeflow/internal/viz"
)

var (
	dataDir  string
	logLevel string
	theme    string

	configFile string
	preset     string
	modeFlag   string
	save       bool
	jsonOut    bool
	plot       bool

	qMin   float64
	qMax   float64
	points int

	outPath string
	limit   int
)

var logger = slog.Default()

func main() {
	rootCmd := &cobra.Command{
		Use:           "pipeflow",
		Short:         "pipe flow and pump system solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			viz.SetTheme(theme)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pipeflow", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "steel", "color theme ("+strings.Join(viz.ThemeNames(), "|")+")")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve a scenario",
		RunE:  runSolve,
	}
	addScenarioFlags(solveCmd)
	solveCmd.Flags().StringVar(&modeFlag, "mode", "", "override the scenario mode")
	solveCmd.Flags().BoolVar(&save, "save", false, "save the run")
	solveCmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
	solveCmd.Flags().BoolVar(&plot, "plot", false, "plot curve results")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "plot the system curve of a scenario",
		RunE:  runCurve,
	}
	addScenarioFlags(curveCmd)
	curveCmd.Flags().Float64Var(&qMin, "q-min", 0, "lowest flow (m³/s)")
	curveCmd.Flags().Float64Var(&qMax, "q-max", 0, "highest flow (m³/s)")
	curveCmd.Flags().IntVar(&points, "points", 0, "number of samples")
	curveCmd.Flags().BoolVar(&save, "save", false, "save the run")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "vary pump speed interactively",
		RunE:  runExplore,
	}
	addScenarioFlags(exploreCmd)

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "solve every case of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&limit, "limit", 0, "concurrent solves (0 = default)")
	batchCmd.Flags().BoolVar(&save, "save", false, "save each run")

	rootCmd.AddCommand(solveCmd, curveCmd, exploreCmd, batchCmd)
	rootCmd.AddCommand(runCommands()...)
	rootCmd.AddCommand(toolCommands()...)
	rootCmd.AddCommand(catalogCommands()...)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario file (yaml)")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "preset as mode/name")
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// loadScenario returns a private copy of the preset, or the parsed file.
func loadScenario() (*config.Config, error) {
	switch {
	case preset != "":
		mode, name, ok := strings.Cut(preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset must be mode/name, got %q", preset)
		}
		p := config.GetPreset(mode, name)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mode))
		}
		cfg := *p
		return &cfg, nil
	case configFile != "":
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	return nil, fmt.Errorf("one of --config or --preset is required")
}
