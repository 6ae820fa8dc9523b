package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"honnef.co/go/glyphweave"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [token]",
		Short: "Generate a seed token, or check one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, glyphweave.NewSeed().Token())
				return nil
			}
			seed, err := glyphweave.ParseSeed(args[0])
			if err != nil {
				return err
			}
			st := seed.State()
			fmt.Fprintf(out, "%s %08x %08x %08x %08x\n", seed.Token(), st[0], st[1], st[2], st[3])
			return nil
		},
	}
}

func newDefaultsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default settings as a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := glyphweave.ParseFormat(format)
			if err != nil {
				return err
			}
			return glyphweave.SaveSettings(cmd.OutOrStdout(), glyphweave.DefaultSettings(), f)
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "snapshot format: json or toml")
	return cmd
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		out  output
		save string
		at   float64
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Run one layout pass and write it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			ctrl := glyphweave.NewController(s, opts.log)
			art := ctrl.RenderAt(at)
			logWarnings(opts.log, art)
			if save != "" {
				// The saved snapshot carries the resolved seed, so the pass
				// can be reproduced.
				if err := glyphweave.SaveSettingsFile(save, ctrl.Settings()); err != nil {
					return err
				}
			}
			if err := out.write(cmd.OutOrStdout(), out.path, art); err != nil {
				return err
			}
			opts.log.Info("rendered", "seed", art.Seed, "rows", art.Plan.Count(), "glyphs", art.Glyphs())
			return nil
		},
	}
	out.register(cmd.Flags())
	cmd.Flags().StringVar(&save, "save", "", "also write the settings used, with the resolved seed")
	cmd.Flags().Float64Var(&at, "time", 0, "animation time in seconds")
	return cmd
}

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var out output
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render again whenever the settings snapshot changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.settings == "" {
				return fmt.Errorf("watch requires --settings")
			}
			if out.path == "" || out.path == "-" {
				return fmt.Errorf("watch requires --output")
			}
			s, err := opts.loadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch(ctx, opts, cmd, glyphweave.NewController(s, opts.log), out)
		},
	}
	out.register(cmd.Flags())
	return cmd
}

func watch(ctx context.Context, opts *rootOptions, cmd *cobra.Command, ctrl *glyphweave.Controller, out output) error {
	render := func() {
		art := ctrl.Render()
		logWarnings(opts.log, art)
		if err := out.write(cmd.OutOrStdout(), out.path, art); err != nil {
			opts.log.Error("writing artwork", "err", err)
			return
		}
		opts.log.Info("rendered", "seed", art.Seed, "rows", art.Plan.Count(), "output", out.path)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// Editors often replace files instead of writing them, so watch the
	// directory and filter by name.
	path := filepath.Clean(opts.settings)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			s, err := opts.loadSettings(cmd.Flags())
			if err != nil {
				// Keep the previous settings until the file is valid again.
				opts.log.Warn("reloading settings", "err", err)
				continue
			}
			ctrl.Replace(s)
			render()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			opts.log.Error("watching settings", "err", err)
		}
	}
}

func newAnimateCmd(opts *rootOptions) *cobra.Command {
	var (
		out    output
		frames int
		fps    float64
	)
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Write a sequence of frames with drifting noise",
		Long: `Animate runs the frame scheduler on a synthetic clock and writes one file
per frame. The output name is a format string receiving the frame index,
for example frame-%03d.svg.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strings.Contains(out.path, "%") {
				return fmt.Errorf("animate requires --output with a frame index verb, such as frame-%%03d.svg")
			}
			s, err := opts.loadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fps") {
				s.FrameRate = fps
			}
			ctrl := glyphweave.NewController(s, opts.log)
			interval := glyphweave.FrameInterval(ctrl.Settings().FrameRate)
			if interval <= 0 {
				interval = glyphweave.FrameInterval(glyphweave.DefaultSettings().FrameRate)
			}
			return animate(cmd.Context(), opts, cmd, ctrl, out, frames, interval)
		},
	}
	out.register(cmd.Flags())
	cmd.Flags().IntVar(&frames, "frames", 30, "number of frames")
	cmd.Flags().Float64Var(&fps, "fps", 0, "frame rate (default from settings)")
	return cmd
}

func animate(ctx context.Context, opts *rootOptions, cmd *cobra.Command, r glyphweave.Renderer, out output, frames int, interval time.Duration) error {
	frames = max(frames, 0)
	ticks := make(chan time.Time, frames)
	start := time.Unix(0, 0)
	for i := range frames {
		ticks <- start.Add(time.Duration(i) * interval)
	}
	close(ticks)

	sched := glyphweave.NewScheduler(r, interval)
	err := sched.Run(ctx, ticks, func(f *glyphweave.Frame) error {
		name := fmt.Sprintf(out.path, f.Index)
		opts.log.Debug("frame", "index", f.Index, "t", f.Artwork.Time, "output", name)
		return out.write(cmd.OutOrStdout(), name, f.Artwork)
	})
	n, dropped := sched.Stats()
	opts.log.Info("animated", "frames", n, "dropped", dropped)
	return err
}
