package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/config"
	imageloader "github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/output"
	"github.com/jmylchreest/tonal/internal/shade"
)

var (
	errNoPrimary       = errors.New("a colour argument or --image is required")
	errAmbiguousSource = errors.New("specify either a colour argument or --image, not both")
)

type generateOptions struct {
	mode    shade.BlendMode
	factor  float64
	format  string
	name    string
	accent  bool
	image   string
	noCache bool
	output  string
	preview string
}

func newGenerateCmd(global *globalOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [colour]",
		Short: "Generate a tonal swatch from a colour or an image",
		Long: `Generate a ten-step tonal swatch from a primary colour.

The primary colour is either given as an argument (#rgb, #rrggbb,
#rrggbbaa, 0xAARRGGBB, rgb(r, g, b) or rgba(r, g, b, a)) or taken as the
dominant colour of an image file or HTTP(S) URL. Images may be gzip, xz
or bzip2 compressed; downloaded images are cached under the user cache
directory.

The meaning of --factor depends on the mode:
  range    total width of the lighten/darken range (default 200)
  shade    opacity multiplier for the white and black overlays (default 1)
  opacity  lightness delta applied before the ramp (default 0)

Defaults for mode, factor, format, name and preview are read from the
config file and TONAL_* environment variables; flags override both.`,
		Example: `  # Translucent ramp of a brand colour
  tonal generate '#6496c8'

  # Lighten/darken by up to 60 per channel, as CSS custom properties
  tonal generate '#6496c8' --mode range --factor 120 --format css --name brand

  # Dominant colour of a wallpaper, accent keys only, as a tailwind theme
  tonal generate --image ~/wallpaper.jpg --mode shade --accent --format tailwind`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, global, opts, args)
		},
	}

	cmd.Flags().VarP(&opts.mode, "mode", "m", "blend mode (range, shade, opacity)")
	cmd.Flags().Float64Var(&opts.factor, "factor", 0, "mode-specific factor (see above)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, json, yaml, toml, css, tailwind)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", output.DefaultName, "palette name used by css and tailwind output")
	cmd.Flags().BoolVar(&opts.accent, "accent", false, "emit only the accent keys (50, 100, 200, 400, 700)")
	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "derive the primary colour from an image file or URL")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always download --image URLs instead of reusing the local cache")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&opts.preview, "preview", config.PreviewAuto, "colour blocks in text output (auto, always, never)")

	return cmd
}

func runGenerate(cmd *cobra.Command, global *globalOptions, opts *generateOptions, args []string) error {
	logger := global.logger.Named("generate")

	cfg, err := config.Load(global.configPath, global.logger)
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg, opts)

	switch opts.preview {
	case config.PreviewAuto, config.PreviewAlways, config.PreviewNever:
	default:
		return fmt.Errorf("invalid --preview %q (valid: auto, always, never)", opts.preview)
	}

	var factor *float64
	switch {
	case cmd.Flags().Changed("factor"):
		factor = shade.Factor(opts.factor)
	case cfg.Factor != nil:
		factor = cfg.Factor
	}
	if factor != nil && (math.IsNaN(*factor) || math.IsInf(*factor, 0)) {
		return fmt.Errorf("invalid factor %g: must be a finite number", *factor)
	}

	primary, err := resolvePrimary(cmd, global.logger, opts, args)
	if err != nil {
		return err
	}
	logger.Debug("primary colour", "hex", primary.Hex(), "mode", opts.mode, "factor", formatFactor(factor))

	palette := shade.BuildTonalPalette(primary, opts.mode, factor)
	if opts.accent {
		palette.Swatch = palette.Swatch.Subset(shade.AccentShadeKeys[:])
	}

	registry := output.NewDefaultRegistry()
	if profile, ok := previewProfile(cmd.OutOrStdout(), opts); ok {
		logger.Debug("terminal preview enabled", "profile", profile)
		registry.Register(&output.TextFormatter{Preview: colour.NewPreviewer(profile)})
	}

	formatter, err := registry.Get(opts.format)
	if err != nil {
		return err
	}

	data, err := formatter.Format(output.Document{
		Name:    opts.name,
		Mode:    opts.mode,
		Factor:  factor,
		Palette: palette,
	})
	if err != nil {
		return fmt.Errorf("failed to render %s output: %w", formatter.Name(), err)
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil { // #nosec G306 - generated theme files are meant to be readable
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("wrote swatch", "path", opts.output, "format", formatter.Name(), "shades", palette.Swatch.Len())
	return nil
}

// applyConfig fills every option the user did not set on the command line.
func applyConfig(cmd *cobra.Command, cfg *config.Config, opts *generateOptions) {
	flags := cmd.Flags()
	if !flags.Changed("mode") {
		opts.mode = cfg.Mode
	}
	if !flags.Changed("format") {
		opts.format = cfg.Format
	}
	if !flags.Changed("name") {
		opts.name = cfg.Name
	}
	if !flags.Changed("preview") {
		opts.preview = cfg.Preview
	}
}

func resolvePrimary(cmd *cobra.Command, logger hclog.Logger, opts *generateOptions, args []string) (colour.Colour, error) {
	switch {
	case opts.image != "" && len(args) > 0:
		return colour.Colour{}, errAmbiguousSource
	case len(args) == 1:
		c, err := colour.ParseColour(args[0])
		if err != nil {
			return colour.Colour{}, fmt.Errorf("invalid colour %q: %w", args[0], err)
		}
		return c, nil
	case opts.image != "":
		loader := imageloader.NewSmartLoader(logger)
		if !opts.noCache {
			if dir, err := imageloader.DefaultCacheDir(); err == nil {
				loader.CacheDir = dir
			} else {
				logger.Warn("image cache disabled", "error", err)
			}
		}
		img, err := loader.Load(cmd.Context(), opts.image)
		if err != nil {
			return colour.Colour{}, fmt.Errorf("failed to load image: %w", err)
		}
		c, err := colour.Dominant(img)
		if err != nil {
			return colour.Colour{}, fmt.Errorf("failed to extract dominant colour: %w", err)
		}
		return c, nil
	default:
		return colour.Colour{}, errNoPrimary
	}
}

// previewProfile decides whether text output gets colour blocks.
// Previews are only drawn for the text format written to stdout.
func previewProfile(w io.Writer, opts *generateOptions) (termenv.Profile, bool) {
	if opts.format != "text" || opts.output != "" {
		return termenv.Ascii, false
	}

	switch opts.preview {
	case config.PreviewNever:
		return termenv.Ascii, false
	case config.PreviewAlways:
		if profile := termenv.EnvColorProfile(); profile != termenv.Ascii {
			return profile, true
		}
		return termenv.TrueColor, true
	}

	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii, false
	}
	profile := termenv.EnvColorProfile()
	return profile, profile != termenv.Ascii
}

func formatFactor(factor *float64) string {
	if factor == nil {
		return "default"
	}
	return fmt.Sprintf("%g", *factor)
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List blend modes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			tbl := newTable("MODE", "DESCRIPTION")
			tbl.wrapColumn(1, 60)
			for _, mode := range shade.BlendModes() {
				name := mode.String()
				if mode == shade.BlendOpacity {
					name += " (default)"
				}
				tbl.addRow(name, mode.Description())
			}
			fmt.Fprint(cmd.OutOrStdout(), tbl.render())
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			registry := output.NewDefaultRegistry()
			tbl := newTable("FORMAT", "DESCRIPTION")
			for _, name := range registry.List() {
				f, err := registry.Get(name)
				if err != nil {
					continue
				}
				tbl.addRow(name, f.Description())
			}
			fmt.Fprint(cmd.OutOrStdout(), tbl.render())
		},
	}
}
