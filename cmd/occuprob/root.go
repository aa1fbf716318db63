package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/occuprob/config"
	"github.com/katalvlaran/occuprob/extxyz"
	"github.com/katalvlaran/occuprob/internal/logging"
	"github.com/katalvlaran/occuprob/results"
	"github.com/katalvlaran/occuprob/superposition"
)

// flag names; the single-letter forms follow the classic occuprob CLI.
const (
	flagElectronic = "electronic"
	flagSpin       = "spin"
	flagClassical  = "classical"
	flagQuantum    = "quantum"
	flagRotational = "rotational"
	flagMinTemp    = "min_temp"
	flagMaxTemp    = "max_temp"
	flagStep       = "step"
	flagOutFile    = "out_file"
	flagPlot       = "plot"
	flagPlotFormat = "plot_format"
	flagSize       = "size"
	flagConfig     = "config"
	flagLogLevel   = "log-level"
	flagQuiet      = "quiet"
	flagSaveConfig = "save_config"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "occuprob [flags] input.xyz",
		Short: "Occupation probabilities and heat capacity in the superposition approximation",
		Long: `occuprob reads an Extended XYZ isomer database and combines the selected
partition-function contributions into temperature-dependent occupation
probabilities (<prefix>_p.dat) and the canonical heat capacity (<prefix>_c.dat).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	f := cmd.Flags()
	f.BoolP(flagElectronic, "e", false, "Electronic partition function")
	f.BoolP(flagSpin, "s", false, "Electronic partition function including spin")
	f.BoolP(flagClassical, "v", false, "Classical harmonic vibrational partition function")
	f.BoolP(flagQuantum, "q", false, "Quantum harmonic vibrational partition function")
	f.BoolP(flagRotational, "r", false, "Rotational partition function")
	f.Float64(flagMinTemp, 0, "Minimum temperature in K")
	f.Float64(flagMaxTemp, 500, "Maximum temperature in K")
	f.Float64(flagStep, 1, "Temperature step in K")
	f.String(flagOutFile, "", "Output filename prefix (default: input path without extension)")
	f.Bool(flagPlot, false, "Plot the results and save them as image files")
	f.String(flagPlotFormat, "pdf", "Image format: "+strings.Join(results.Formats, ", "))
	f.Float64Slice(flagSize, []float64{8, 6}, "Width and height of the output image, in inches")
	f.String(flagConfig, "", "YAML configuration file; explicit flags override it")
	f.String(flagLogLevel, "info", "Log level: debug, info, warn, error")
	f.Bool(flagQuiet, false, "Discard all log output")
	f.String(flagSaveConfig, "", "Write the effective configuration to this YAML file")

	cmd.MarkFlagsMutuallyExclusive(flagElectronic, flagSpin)
	cmd.MarkFlagsMutuallyExclusive(flagClassical, flagQuantum)

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	levelName, _ := cmd.Flags().GetString(flagLogLevel)
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	log := logging.NewWriter(cmd.ErrOrStderr(), level)
	if quiet, _ := cmd.Flags().GetBool(flagQuiet); quiet {
		log = logging.NewNop()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if path, _ := cmd.Flags().GetString(flagSaveConfig); path != "" {
		if err = cfg.Save(path); err != nil {
			return err
		}
		log.Debug("saved configuration", "path", path)
	}

	return run(log, cfg, args[0])
}

// loadConfig starts from the file given by --config (or the defaults) and
// applies every flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	f := cmd.Flags()
	cfg := config.Default()
	if path, _ := f.GetString(flagConfig); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	bools := map[string]*bool{
		flagElectronic: &cfg.Contributions.Electronic,
		flagSpin:       &cfg.Contributions.Spin,
		flagClassical:  &cfg.Contributions.Classical,
		flagQuantum:    &cfg.Contributions.Quantum,
		flagRotational: &cfg.Contributions.Rotational,
		flagPlot:       &cfg.Output.Plot,
	}
	for name, dst := range bools {
		if f.Changed(name) {
			*dst, _ = f.GetBool(name)
		}
	}
	floats := map[string]*float64{
		flagMinTemp: &cfg.Temperature.Min,
		flagMaxTemp: &cfg.Temperature.Max,
		flagStep:    &cfg.Temperature.Step,
	}
	for name, dst := range floats {
		if f.Changed(name) {
			*dst, _ = f.GetFloat64(name)
		}
	}
	if f.Changed(flagOutFile) {
		cfg.Output.Prefix, _ = f.GetString(flagOutFile)
	}
	if f.Changed(flagPlotFormat) {
		cfg.Output.Format, _ = f.GetString(flagPlotFormat)
	}
	if f.Changed(flagSize) {
		size, _ := f.GetFloat64Slice(flagSize)
		if len(size) != 2 {
			return nil, fmt.Errorf("--%s takes exactly two values, got %d", flagSize, len(size))
		}
		cfg.Output.Width, cfg.Output.Height = size[0], size[1]
	}

	return cfg, nil
}

// run loads the isomers, evaluates the engine and writes every output.
func run(log *slog.Logger, cfg *config.Config, input string) error {
	start := time.Now()
	set, err := extxyz.Load(input)
	if err != nil {
		return err
	}
	contribs, err := cfg.Contributions.Build()
	if err != nil {
		return err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return err
	}
	eng, err := superposition.New(set, contribs)
	if err != nil {
		return err
	}
	log.Info("evaluating",
		"input", input,
		"isomers", set.Len(),
		"selection", cfg.Contributions.String(),
		"contributions", eng.Name(),
		"t_min", grid.At(0),
		"t_max", grid.At(grid.Len()-1),
		"points", grid.Len(),
	)

	res, err := eng.Evaluate(grid)
	if err != nil {
		return err
	}
	log.Debug("evaluated", "elapsed", time.Since(start))

	prefix := cfg.Output.Prefix
	if prefix == "" {
		prefix = strings.TrimSuffix(input, filepath.Ext(input))
	}
	probability, err := results.Rows(res.Probability)
	if err != nil {
		return err
	}

	pPath, cPath := prefix+"_p.dat", prefix+"_c.dat"
	if err = results.WriteFile(pPath, grid, probability...); err != nil {
		return err
	}
	if err = results.WriteFile(cPath, grid, res.HeatCapacity); err != nil {
		return err
	}
	log.Info("wrote results", "probability", pPath, "heat_capacity", cPath)

	if !cfg.Output.Plot {
		return nil
	}
	ext := "." + strings.ToLower(cfg.Output.Format)
	pOpts := results.ProbabilityOptions(set.Len())
	cOpts := results.HeatCapacityOptions()
	for _, o := range []*results.PlotOptions{&pOpts, &cOpts} {
		o.Width, o.Height = cfg.Output.Width, cfg.Output.Height
	}
	if err = results.Plot(prefix+"_p"+ext, grid, probability, pOpts); err != nil {
		return err
	}
	if err = results.Plot(prefix+"_c"+ext, grid, [][]float64{res.HeatCapacity}, cOpts); err != nil {
		return err
	}
	log.Info("wrote plots", "probability", prefix+"_p"+ext, "heat_capacity", prefix+"_c"+ext)

	return nil
}
