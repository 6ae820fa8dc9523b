package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"honnef.co/go/glyphweave"
	"honnef.co/go/glyphweave/preview"
)

type rootOptions struct {
	verbose  bool
	settings string
	flags    settingsFlags
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "glyphweave",
		Short:         "Weave repeating glyphs along noise-modulated guides",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every pass")
	pf.StringVar(&opts.settings, "settings", "", "settings snapshot (.json or .toml)")
	opts.flags.register(pf)

	cmd.AddCommand(
		newSeedCmd(),
		newRenderCmd(opts),
		newWatchCmd(opts),
		newAnimateCmd(opts),
		newDefaultsCmd(),
	)
	return cmd
}

// loadSettings reads the snapshot named by --settings, if any, and applies
// the flags that were set on the command line.
func (opts *rootOptions) loadSettings(fs *pflag.FlagSet) (glyphweave.Settings, error) {
	s := glyphweave.DefaultSettings()
	if opts.settings != "" {
		var err error
		s, err = glyphweave.LoadSettingsFile(opts.settings)
		if err != nil {
			return glyphweave.Settings{}, err
		}
	}
	if err := opts.flags.apply(fs, &s); err != nil {
		return glyphweave.Settings{}, err
	}
	return s, nil
}

// settingsFlags are the settings that can be overridden on the command
// line. Only flags that were set are applied.
type settingsFlags struct {
	seed    string
	layout  string
	motif   string
	rows    int
	shift   string
	drift   float64
	inverse bool
	opacity bool
}

func (f *settingsFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.seed, "seed", "", "seed token")
	fs.StringVar(&f.layout, "layout", "", "layout family: arc, circle or line")
	fs.StringVar(&f.motif, "motif", "", "text repeated along every row")
	fs.IntVar(&f.rows, "rows", 0, "number of rows")
	fs.StringVar(&f.shift, "shift", "", "row shift: none, forward, backward or random")
	fs.Float64Var(&f.drift, "drift", 0, "noise drift per second of animation")
	fs.BoolVar(&f.inverse, "inverse", false, "map high noise to narrow glyphs")
	fs.BoolVar(&f.opacity, "transparency", false, "classify glyph opacity")
}

func (f *settingsFlags) apply(fs *pflag.FlagSet, s *glyphweave.Settings) error {
	if fs.Changed("seed") {
		s.Seed = f.seed
	}
	if fs.Changed("layout") {
		l, err := glyphweave.ParseFamily(f.layout)
		if err != nil {
			return err
		}
		s.Layout = l
	}
	if fs.Changed("motif") {
		s.Motif = f.motif
	}
	if fs.Changed("rows") {
		s.Rows = f.rows
	}
	if fs.Changed("shift") {
		m, err := glyphweave.ParseShiftMode(f.shift)
		if err != nil {
			return err
		}
		s.Shift = m
	}
	if fs.Changed("drift") {
		s.Drift = f.drift
	}
	if fs.Changed("inverse") {
		s.InverseWidth = f.inverse
	}
	if fs.Changed("transparency") {
		s.Transparency = f.opacity
	}
	return nil
}

// output writes artworks as SVG or, for paths ending in .png, as PNG
// previews. An empty path or "-" writes to stdout.
type output struct {
	path   string
	doc    glyphweave.DocumentOptions
	raster preview.Options
}

func (o output) encode(w io.Writer, art *glyphweave.Artwork, png bool) error {
	if png {
		raster := o.raster
		raster.Guides = o.doc.ShowGuides
		return preview.WritePNG(w, art, raster)
	}
	return glyphweave.WriteDocument(w, art, o.doc)
}

func (o output) write(stdout io.Writer, path string, art *glyphweave.Artwork) (err error) {
	if path == "" || path == "-" {
		return o.encode(stdout, art, false)
	}
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	if err := o.encode(fd, art, strings.EqualFold(filepath.Ext(path), ".png")); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (o *output) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.path, "output", "o", "", "output file, .svg or .png (default stdout)")
	fs.StringVar(&o.doc.FontFamily, "font", "", "variable font family of the SVG document")
	fs.BoolVar(&o.doc.ShowGuides, "guides", false, "draw guide paths")
	fs.Float64Var(&o.raster.Scale, "scale", 1, "PNG pixels per document pixel")
}

func logWarnings(log *slog.Logger, art *glyphweave.Artwork) {
	for _, w := range art.Warnings {
		log.Warn(w)
	}
}
