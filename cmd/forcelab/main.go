package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/forcelab/internal/automation"
	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/experiment"
	"github.com/san-kum/forcelab/internal/export"
	"github.com/san-kum/forcelab/internal/force"
	"github.com/san-kum/forcelab/internal/storage"
	"github.com/san-kum/forcelab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	logLevel string
	logger   = slog.Default()

	// Domain overrides
	start   float64
	stop    float64
	samples int
	params  []string

	configFile string
	preset     string
	noSave     bool

	// Chart output
	outDir      string
	format      string
	chartWidth  float64
	chartHeight float64

	xlsxPath     string
	workbookPath string

	// Sweeps
	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
)

// main registers the forcelab commands and executes the root command,
// exiting with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "forcelab",
		Short:         "towed vehicle force curve lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "run store directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	curvesCmd := &cobra.Command{
		Use:   "curves",
		Short: "list available force curves",
		Args:  cobra.NoArgs,
		RunE:  listCurves,
	}

	runCmd := &cobra.Command{
		Use:   "run [curve]",
		Short: "evaluate a force curve",
		Args:  cobra.ExactArgs(1),
		RunE:  runCurve,
	}
	addCurveFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	chartCmd := &cobra.Command{
		Use:   "chart [curve|all]",
		Short: "render force curves to image files",
		Args:  cobra.ExactArgs(1),
		RunE:  chartCurves,
	}
	addCurveFlags(chartCmd)
	chartCmd.Flags().StringVar(&outDir, "out", config.DefaultOutputDir, "output directory")
	chartCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "image format (png, svg)")
	chartCmd.Flags().Float64Var(&chartWidth, "width", config.DefaultWidth, "chart width in inches")
	chartCmd.Flags().Float64Var(&chartHeight, "height", config.DefaultHeight, "chart height in inches")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportXLSXCmd := &cobra.Command{
		Use:   "export-xlsx [run_id]...",
		Short: "export runs to an Excel workbook",
		Args:  cobra.MinimumNArgs(1),
		RunE:  exportXLSX,
	}
	exportXLSXCmd.Flags().StringVar(&xlsxPath, "out", "forcelab.xlsx", "workbook path")

	presetsCmd := &cobra.Command{
		Use:   "presets [curve]",
		Short: "list available presets for a curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for curve: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "interactive curve browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunBrowser(experiment.NewRegistry())
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().StringVar(&workbookPath, "xlsx", "", "also write the results to a workbook")
	scenarioCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the runs")

	sweepCmd := &cobra.Command{
		Use:   "sweep [curve]",
		Short: "evaluate a curve across a range of one constant",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addCurveFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "vary", "", "constant to sweep")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of values")
	sweepCmd.Flags().StringVar(&workbookPath, "xlsx", "", "also write the results to a workbook")
	sweepCmd.MarkFlagRequired("vary")

	rootCmd.AddCommand(curvesCmd, runCmd, chartCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportXLSXCmd, presetsCmd, browseCmd, scenarioCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addCurveFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&start, "start", 0, "domain start")
	cmd.Flags().Float64Var(&stop, "stop", 0, "domain stop")
	cmd.Flags().IntVar(&samples, "samples", 0, "number of samples")
	cmd.Flags().StringArrayVar(&params, "param", nil, "override a constant (name=value), repeatable")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func listCurves(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDOMAIN\tSAMPLES\tTITLE")
	for _, name := range registry.ListCurves() {
		c, err := registry.GetCurve(name)
		if err != nil {
			return err
		}
		d := c.Domain()
		fmt.Fprintf(w, "%s\t%g..%g\t%d\t%s\n", name, d.Start, d.Stop, d.Samples, c.Chart().Title)
	}
	return w.Flush()
}

// loadConfig reads --config when given. Without it the defaults apply.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// resolve layers preset, config file and command-line overrides for one
// curve, later layers winning.
func resolve(cmd *cobra.Command, cfg *config.Config, curve string, c force.Curve) (experiment.Config, error) {
	var layered config.CurveConfig
	if preset != "" {
		p := config.GetPreset(curve, preset)
		if p == nil {
			return experiment.Config{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(curve))
		}
		layered = *p
	}

	fromFile := cfg.ExperimentConfig(curve)
	layered = config.Merge(layered, config.CurveConfig{Domain: fromFile.Domain, Params: fromFile.Params})

	flags := config.CurveConfig{Params: map[string]float64{}}
	if cmd.Flags().Changed("start") || cmd.Flags().Changed("stop") || cmd.Flags().Changed("samples") {
		d := c.Domain()
		if layered.Domain != nil {
			d = *layered.Domain
		}
		if cmd.Flags().Changed("start") {
			d.Start = start
		}
		if cmd.Flags().Changed("stop") {
			d.Stop = stop
		}
		if cmd.Flags().Changed("samples") {
			d.Samples = samples
		}
		flags.Domain = &d
	}
	for _, kv := range params {
		name, value, err := parseParam(kv)
		if err != nil {
			return experiment.Config{}, err
		}
		flags.Params[name] = value
	}
	layered = config.Merge(layered, flags)

	return experiment.Config{Curve: curve, Domain: layered.Domain, Params: layered.Params}, nil
}

func parseParam(kv string) (string, float64, error) {
	name, raw, ok := strings.Cut(kv, "=")
	if !ok || name == "" {
		return "", 0, fmt.Errorf("invalid --param %q, expected name=value", kv)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid --param %q: %w", kv, err)
	}
	return strings.TrimSpace(name), v, nil
}

// evaluate builds, configures and samples one curve.
func evaluate(cmd *cobra.Command, cfg *config.Config, registry *experiment.Registry, curve string) (*experiment.Result, error) {
	c, err := registry.GetCurve(curve)
	if err != nil {
		return nil, err
	}
	expCfg, err := resolve(cmd, cfg, curve, c)
	if err != nil {
		return nil, err
	}

	exp := experiment.New(expCfg)
	if err := exp.Setup(c); err != nil {
		return nil, err
	}
	result, err := exp.Run(context.Background())
	if err != nil {
		return nil, err
	}
	for _, w := range result.Warnings {
		logger.Warn(w, "curve", curve)
	}
	return result, nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	result, err := evaluate(cmd, cfg, registry, args[0])
	if err != nil {
		return err
	}

	fmt.Print(viz.RenderResult(result, viz.DefaultPlotOptions()))

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(result)
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", runID, "samples", result.Series.Len())
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func chartCurves(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := export.ChartOptions{Width: cfg.Width, Height: cfg.Height, Format: cfg.Format}
	dir := cfg.OutputDir
	if cmd.Flags().Changed("out") || dir == "" {
		dir = outDir
	}
	if cmd.Flags().Changed("format") {
		opts.Format = format
	}
	if cmd.Flags().Changed("width") {
		opts.Width = chartWidth
	}
	if cmd.Flags().Changed("height") {
		opts.Height = chartHeight
	}

	registry := experiment.NewRegistry()
	curves := []string{args[0]}
	if args[0] == "all" {
		curves = registry.ListCurves()
	}

	for _, curve := range curves {
		result, err := evaluate(cmd, cfg, registry, curve)
		if err != nil {
			return err
		}
		path, err := export.SaveChart(dir, result.Series, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", curve, err)
		}
		logger.Info("chart saved", "curve", curve, "path", path)
		fmt.Printf("%s\n", curve)
		fmt.Print(viz.RenderDiagnostics(result.Diagnostics))
	}
	return nil
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
	fmt.Fprintln(w, "ID\tCURVE\tTIME\tDOMAIN\tSAMPLES\tMIN\tMAX")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g..%g\t%d\t%.2f\t%.2f\n",
			run.ID,
			run.Curve,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Domain.Start,
			run.Domain.Stop,
			run.Domain.Samples,
			run.Summary.Min,
			run.Summary.Max,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*experiment.Result, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return nil, err
	}
	return meta.Result(series), nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	result, err := loadRun(args[0])
	if err != nil {
		return err
	}
	fmt.Print(viz.RenderResult(result, viz.DefaultPlotOptions()))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, series)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, series)
}

func exportXLSX(cmd *cobra.Command, args []string) error {
	results := make([]*experiment.Result, 0, len(args))
	for _, id := range args {
		r, err := loadRun(id)
		if err != nil {
			return err
		}
		results = append(results, r)
	}
	if err := export.SaveXLSX(xlsxPath, results); err != nil {
		return err
	}
	logger.Info("workbook saved", "path", xlsxPath, "runs", len(results))
	return nil
}

// runScenario keeps the steps that completed even when a later step fails,
// then reports the failure.
func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	results, runErr := automation.RunScenario(context.Background(), scenario, experiment.NewRegistry())
	if err := keepResults(results); err != nil {
		return err
	}
	if runErr != nil {
		logger.Error("scenario stopped", "name", scenario.Name, "completed", len(results), "of", len(scenario.Steps))
		return runErr
	}
	logger.Info("scenario complete", "name", scenario.Name, "steps", len(results))
	return nil
}

// keepResults prints, stores and optionally exports scenario results.
func keepResults(results []*experiment.Result) error {
	if len(results) == 0 {
		return nil
	}

	st := storage.New(dataDir)
	if !noSave {
		if err := st.Init(); err != nil {
			return err
		}
	}
	for _, r := range results {
		for _, w := range r.Warnings {
			logger.Warn(w, "curve", r.Curve)
		}
		fmt.Print(viz.RenderResult(r, viz.DefaultPlotOptions()))
		if noSave {
			continue
		}
		runID, err := st.Save(r)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	if workbookPath != "" {
		if err := export.SaveXLSX(workbookPath, results); err != nil {
			return err
		}
		logger.Info("workbook saved", "path", workbookPath)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	curve := args[0]
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	c, err := registry.GetCurve(curve)
	if err != nil {
		return err
	}
	base, err := resolve(cmd, cfg, curve, c)
	if err != nil {
		return err
	}

	results, err := automation.RunSweep(context.Background(), &automation.ParameterSweep{
		Curve:  curve,
		Param:  sweepParam,
		Min:    sweepFrom,
		Max:    sweepTo,
		Steps:  sweepSteps,
		Domain: base.Domain,
		Params: base.Params,
	}, registry)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tMIN\tMAX\tMEAN\tF=0 AT\tSHAPE\n", strings.ToUpper(sweepParam))
	for _, r := range results {
		sum := r.Result.Summary
		crossings := "-"
		if len(sum.Crossings) > 0 {
			parts := make([]string, len(sum.Crossings))
			for i, x := range sum.Crossings {
				parts[i] = strconv.FormatFloat(x, 'g', 5, 64)
			}
			crossings = strings.Join(parts, ",")
		}
		fmt.Fprintf(w, "%g\t%.2f\t%.2f\t%.2f\t%s\t%s\n",
			r.ParamValue, sum.Min, sum.Max, sum.Mean, crossings, viz.Sparkline(r.Result.Series.Y, 24))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if workbookPath != "" {
		reports := make([]*experiment.Result, len(results))
		for i, r := range results {
			reports[i] = r.Result
		}
		if err := export.SaveXLSX(workbookPath, reports); err != nil {
			return err
		}
		logger.Info("workbook saved", "path", workbookPath, "steps", len(reports))
	}
	return nil
}
