package cli

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/voronoi/internal/config"
	"github.com/jmylchreest/voronoi/internal/image"
	"github.com/jmylchreest/voronoi/internal/seed"
	"github.com/jmylchreest/voronoi/internal/theme"
	"github.com/jmylchreest/voronoi/internal/voronoi"
)

// maxPreviewWidth caps the terminal preview in columns.
const maxPreviewWidth = 80

var _ pflag.Value = (*voronoi.Metric)(nil)

type generateOptions struct {
	width      int
	height     int
	points     int
	themeName  string
	metric     voronoi.Metric
	configPath string
	output     string
	format     string
	seed       int64
	seedText   string
	workers    int
	quality    int
	preview    bool
	stats      bool
	noProgress bool
}

// output is where rendered rows end up.
type output interface {
	image.RowWriter
	Abort() error
}

// streamOutput writes to a stream that is not ours to remove.
type streamOutput struct {
	image.RowWriter
}

func (streamOutput) Abort() error { return nil }

func newGenerateCmd() *cobra.Command {
	defaults := config.Default()
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Voronoi diagram image",
		Long: `Generate scatters --points random seeds over a --width x --height image and
colours each pixel after its nearest seed, cycling through the colours of the
chosen theme in seed order.

Defaults for most flags can also be set through VORONOI_* environment
variables or a .env file in the working directory. Flags take priority.

Use --theme list to print the available themes.`,
		Example: `  # 500x500 PPM with the standard theme
  voronoi generate

  # Reproducible PNG with Manhattan distance
  voronoi generate -W 800 -H 600 -n 120 -m manhattan -t autumn --seed 42 -o cells.png

  # Same image every time for the same phrase
  voronoi generate --seed-text "hello world" -t blues -o hello.ppm

  # Stream raw PPM to another program
  voronoi generate -f ppm-raw -o - | convert ppm:- out.webp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.applyConfig(cmd); err != nil {
				return err
			}
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.width, "width", "W", defaults.Width, "image width in pixels")
	f.IntVarP(&opts.height, "height", "H", defaults.Height, "image height in pixels")
	f.IntVarP(&opts.points, "points", "n", defaults.Points, "number of seed points")
	f.StringVarP(&opts.themeName, "theme", "t", defaults.Theme, `colour theme ("list" to show all)`)
	f.VarP(&opts.metric, "metric", "m", "distance metric (euclidean, manhattan, chebyshev)")
	f.StringVarP(&opts.configPath, "config", "c", "", "theme file (default $XDG_CONFIG_HOME/voronoi/themes.conf if present)")
	f.StringVarP(&opts.output, "output", "o", defaults.Output, `output file ("-" for stdout)`)
	f.StringVarP(&opts.format, "format", "f", "", "image format: ppm, ppm-raw, png, jpeg, gif, bmp, tiff (default from output extension)")
	f.Int64Var(&opts.seed, "seed", 0, "random seed for reproducible output")
	f.StringVar(&opts.seedText, "seed-text", "", "phrase hashed into the random seed")
	f.IntVarP(&opts.workers, "workers", "j", defaults.Workers, "rows rendered concurrently")
	f.IntVar(&opts.quality, "quality", 95, "JPEG quality (1-100)")
	f.BoolVar(&opts.preview, "preview", false, "print a preview of the image to the terminal")
	f.BoolVar(&opts.stats, "stats", false, "log per-seed area statistics")
	f.BoolVar(&opts.noProgress, "no-progress", false, "hide the progress indicator")

	cmd.MarkFlagsMutuallyExclusive("seed", "seed-text")

	return cmd
}

// applyConfig fills every flag the user did not set from the environment.
func (o *generateOptions) applyConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	set := func(name string, apply func()) {
		if !f.Changed(name) {
			apply()
		}
	}
	set("width", func() { o.width = cfg.Width })
	set("height", func() { o.height = cfg.Height })
	set("points", func() { o.points = cfg.Points })
	set("theme", func() { o.themeName = cfg.Theme })
	set("config", func() { o.configPath = cfg.ThemeConfig })
	set("output", func() { o.output = cfg.Output })
	set("workers", func() { o.workers = cfg.Workers })

	if !f.Changed("metric") {
		m, err := voronoi.ParseMetric(cfg.Metric)
		if err != nil {
			return fmt.Errorf("%s: %w", config.EnvMetric, err)
		}
		o.metric = m
	}
	return nil
}

func (o *generateOptions) seedConfig(cmd *cobra.Command) seed.Config {
	switch {
	case cmd.Flags().Changed("seed"):
		return seed.Config{Mode: seed.ModeManual, Value: &o.seed}
	case cmd.Flags().Changed("seed-text"):
		return seed.Config{Mode: seed.ModeText, Text: o.seedText}
	default:
		return seed.Config{Mode: seed.ModeRandom}
	}
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	logger := loggerFor(cmd)
	quiet, _ := cmd.Flags().GetBool("quiet")

	themes, err := loadThemes(opts.configPath, logger)
	if err != nil {
		return err
	}
	selected, err := themes.Lookup(opts.themeName)
	if errors.Is(err, theme.ErrListRequested) {
		printThemes(cmd.OutOrStdout(), themes, false)
		return nil
	}
	if err != nil {
		return err
	}

	if err := voronoi.ValidateDimensions(opts.width, opts.height, opts.points); err != nil {
		return err
	}

	seedValue, err := seed.Calculate(opts.seedConfig(cmd))
	if err != nil {
		return err
	}
	seeds := voronoi.Sample(seed.NewRand(seedValue), opts.points, opts.width, opts.height)
	if logger.IsDebug() {
		for i, p := range seeds {
			logger.Debug("seed point", "index", i, "point", p.String())
		}
	}

	engine := &voronoi.Engine{
		Width:   opts.width,
		Height:  opts.height,
		Seeds:   seeds,
		Theme:   selected,
		Metric:  opts.metric,
		Workers: opts.workers,
	}
	if err := engine.Validate(); err != nil {
		return err
	}

	out, err := opts.openOutput(cmd)
	if err != nil {
		return err
	}

	var sink image.RowSink = out
	var canvas *image.Canvas
	if opts.preview {
		canvas = image.NewCanvas(opts.width, opts.height)
		sink = image.MultiSink(out, canvas)
	}
	var collector *voronoi.StatsCollector
	if opts.stats {
		collector = voronoi.NewStatsCollector(sink, len(seeds))
		sink = collector
	}

	logger.Debug("rendering",
		"width", opts.width, "height", opts.height, "points", opts.points,
		"theme", selected.Name, "metric", opts.metric.String(),
		"workers", opts.workers, "seed", seedValue)

	var progress voronoi.ProgressFunc
	var bar *progressPrinter
	if !quiet && !opts.noProgress && isTerminal(cmd.ErrOrStderr()) {
		bar = newProgressPrinter(cmd.ErrOrStderr(), "Rendering")
		progress = bar.Update
	}

	err = engine.Render(cmd.Context(), sink, progress)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		if aerr := out.Abort(); aerr != nil {
			logger.Warn("failed to remove partial output", "error", aerr)
		}
		return fmt.Errorf("render failed: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	logger.Info("image written",
		"output", opts.output,
		"size", fmt.Sprintf("%dx%d", opts.width, opts.height),
		"theme", selected.Name,
		"metric", opts.metric.String(),
		"seed", seedValue)

	if collector != nil {
		logStats(logger, collector.Stats())
	}
	if canvas != nil {
		cols := min(terminalWidth(cmd.OutOrStdout(), maxPreviewWidth), maxPreviewWidth)
		fmt.Fprint(cmd.OutOrStdout(), image.Preview(canvas.Image(), cols))
	}
	return nil
}

// openOutput resolves the format and opens the destination. "-" writes to
// the command's standard output.
func (o *generateOptions) openOutput(cmd *cobra.Command) (output, error) {
	format, err := o.resolveFormat()
	if err != nil {
		return nil, err
	}
	encodeOpts := image.Options{JPEGQuality: o.quality}

	if o.output == "-" {
		if o.preview {
			return nil, errors.New("--preview cannot be combined with --output -")
		}
		w, err := image.NewWriter(cmd.OutOrStdout(), format, o.width, o.height, encodeOpts)
		if err != nil {
			return nil, err
		}
		return streamOutput{w}, nil
	}
	return image.Create(o.output, format, o.width, o.height, encodeOpts)
}

func (o *generateOptions) resolveFormat() (image.Format, error) {
	if o.format != "" {
		return image.ParseFormat(o.format)
	}
	if o.output == "-" {
		return image.FormatPPM, nil
	}
	return image.FormatFromPath(o.output)
}

func logStats(logger hclog.Logger, s voronoi.Stats) {
	logger.Info("cell statistics",
		"mean", fmt.Sprintf("%.1f", s.Mean),
		"stddev", fmt.Sprintf("%.1f", s.StdDev),
		"smallest", s.Smallest,
		"largest", s.Largest,
		"empty", s.Empty)
	for i, area := range s.Areas {
		logger.Debug("cell area", "seed", i, "pixels", area)
	}
}
