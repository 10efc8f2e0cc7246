package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"rectlab/internal/config"
	"rectlab/internal/counter"
	"rectlab/internal/geom"
	"rectlab/internal/logging"
	"rectlab/internal/semi"
	"rectlab/internal/tui"
)

// app carries state shared by the root command's hooks and subcommands.
type app struct {
	cfg         config.Config
	closeLogger func() error
}

func newApp() *cli.Command {
	a := &app{cfg: config.Defaults()}
	return &cli.Command{
		Name:      "rectlab",
		Usage:     "inspect and view integer rectangle sets",
		Version:   version,
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to config.yaml",
				Sources: cli.EnvVars(config.EnvConfig),
			},
		},
		Before: a.before,
		After:  a.after,
		Action: a.runView,
		Commands: []*cli.Command{
			{
				Name:      "view",
				Usage:     "open the terminal viewer",
				ArgsUsage: "[file]",
				Action:    a.runView,
			},
			{
				Name:      "inspect",
				Usage:     "print rectangles, the largest one and every intersecting pair",
				ArgsUsage: "<file>",
				Action:    a.runInspect,
			},
			{
				Name:  "semi",
				Usage: "simulate the weight of a semi-trailer",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "tare", Usage: "tare weight in pounds", Required: true},
					&cli.IntFlag{Name: "cargo", Usage: "initial cargo weight in pounds"},
					&cli.IntFlag{Name: "load", Usage: "cargo to load"},
					&cli.IntFlag{Name: "unload", Usage: "cargo to unload"},
				},
				Action: a.runSemi,
			},
			{
				Name:   "counter",
				Usage:  "show a button that counts clicks",
				Action: a.runCounter,
			},
		},
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return ctx, err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return ctx, err
	}
	a.cfg = cfg
	closeLogger, err := logging.Init(cfg.Logging, logging.InitOptions{App: "rectlab", Version: version})
	if err != nil {
		return ctx, fmt.Errorf("init logging: %w", err)
	}
	a.closeLogger = closeLogger
	slog.Debug("config loaded", "path", path)
	return ctx, nil
}

func (a *app) after(ctx context.Context, cmd *cli.Command) error {
	if a.closeLogger == nil {
		return nil
	}
	return a.closeLogger()
}

func (a *app) runView(ctx context.Context, cmd *cli.Command) error {
	v := a.cfg.View
	opts := tui.DefaultOptions()
	if v.Zoom > 0 {
		opts.Zoom = v.Zoom
	}
	opts.HelpVisible = v.HelpVisible()
	opts.ShowSidebar = v.ShowSidebar
	opts.FillOverlap = v.FillOverlap()
	var m tea.Model
	if cmd.Args().Len() > 0 {
		m = tui.NewWithPath(cmd.Args().First(), opts)
	} else {
		m = tui.New(opts)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx)).Run()
	return err
}

func (a *app) runCounter(ctx context.Context, cmd *cli.Command) error {
	_, err := tea.NewProgram(counter.New(), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run()
	return err
}

func (a *app) runInspect(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("inspect: expected exactly one file")
	}
	path := cmd.Args().First()
	set, err := geom.LoadFile(path)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", path, err)
	}
	slog.Info("inspect", "path", path, "count", len(set.Rects))
	return writeReport(cmd.Root().Writer, set)
}

func writeReport(w io.Writer, set geom.Set) error {
	for i, r := range set.Rects {
		minX, maxX, minY, maxY := r.Bounds()
		if _, err := fmt.Fprintf(w, "#%d %s bounds=(%d,%d,%d,%d) area=%d\n", i+1, r, minX, maxX, minY, maxY, r.Area()); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "envelope: %s\n", set.Envelope)
	i, err := geom.LargestIndex(set.Rects)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "largest: #%d %s area=%d\n", i+1, set.Rects[i], set.Rects[i].Area())
	ovs := geom.Intersections(set.Rects)
	fmt.Fprintf(w, "intersections: %d\n", len(ovs))
	for _, ov := range ovs {
		fmt.Fprintf(w, "  #%d x #%d: %s area=%d\n", ov.I+1, ov.J+1, ov.Rect, ov.Rect.Area())
	}
	return nil
}

func (a *app) runSemi(ctx context.Context, cmd *cli.Command) error {
	s := semi.New(cmd.Int("tare"), cmd.Int("cargo"))
	if n := cmd.Int("load"); n > 0 {
		s.Load(n)
	}
	if n := cmd.Int("unload"); n > 0 {
		s.Unload(n)
	}
	w := cmd.Root().Writer
	fmt.Fprintf(w, "tare: %d\ncargo: %d\ngross: %d\nremaining capacity: %d\nlegal: %v\n",
		s.Tare(), s.Cargo(), s.GrossWeight(), s.RemainingCapacity(), s.Legal())
	return nil
}
