package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	log "github.com/inconshreveable/log15/v3"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/shortway/builder"
	"github.com/katalvlaran/shortway/events"
	"github.com/katalvlaran/shortway/route"
	"github.com/katalvlaran/shortway/scene"
)

var (
	errNoScene        = errors.New("no scene file (use --scene or SHORTWAY_SCENE)")
	errBadThreshold   = errors.New("thresholds must be finite and >= 0")
	errBadMaxDistance = errors.New("max-distance must be >= 0")
	errBadMaxLink     = errors.New("max-link must be > 0")
)

// app carries what every command shares: output streams, the root logger and
// the event bus.
type app struct {
	out    io.Writer
	errOut io.Writer
	logger log.Logger
	bus    *events.Bus
}

func newApp(out, errOut io.Writer) *app {
	l := log.New()
	l.SetHandler(log.DiscardHandler())

	return &app{out: out, errOut: errOut, logger: l, bus: events.NewBus()}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      AppName,
		Usage:     "shortest routes across proximity-linked waypoints",
		Version:   Version,
		Writer:    a.out,
		ErrWriter: a.errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "scene",
				Aliases: []string{"s"},
				Usage:   "scene YAML file",
				Sources: cli.EnvVars("SHORTWAY_SCENE"),
			},
			&cli.FloatFlag{
				Name:    "x-threshold",
				Usage:   "max horizontal gap between linked waypoints (overrides the scene)",
				Sources: cli.EnvVars("SHORTWAY_X_THRESHOLD"),
			},
			&cli.FloatFlag{
				Name:    "y-threshold",
				Usage:   "max vertical gap between linked waypoints (overrides the scene)",
				Sources: cli.EnvVars("SHORTWAY_Y_THRESHOLD"),
			},
			&cli.FloatFlag{
				Name:  "max-distance",
				Usage: "report no route when the shortest one is longer",
			},
			&cli.FloatFlag{
				Name:  "max-link",
				Usage: "treat links this long or longer as impassable",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "crit, eror, warn, info or dbug",
				Value:   "warn",
				Sources: cli.EnvVars("SHORTWAY_LOG_LEVEL"),
			},
		},
		Before: a.setupLogging,
		Commands: []*cli.Command{
			a.routeCommand(),
			a.watchCommand(),
			a.serveCommand(),
			a.fmtCommand(),
		},
	}
}

// setupLogging routes log records at or above --log-level to errOut as logfmt.
func (a *app) setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	lvl, err := log.LvlFromString(strings.ToLower(cmd.String("log-level")))
	if err != nil {
		return ctx, fmt.Errorf("--log-level: %w", err)
	}
	a.logger = log.New("app", AppName)
	a.logger.SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(a.errOut, log.LogfmtFormat())))

	return ctx, nil
}

// loadScene reads the --scene file.
func (a *app) loadScene(cmd *cli.Command) (string, *scene.Scene, error) {
	path := cmd.String("scene")
	if path == "" {
		path = cmd.Args().First()
	}
	if path == "" {
		return "", nil, errNoScene
	}
	s, err := scene.Load(path)
	if err != nil {
		return path, nil, err
	}

	return path, s, nil
}

// thresholds resolves each axis as flag/env, then scene, then default.
func thresholds(cmd *cli.Command, s *scene.Scene) (x, y float64, err error) {
	x, y = builder.DefaultXThreshold, builder.DefaultYThreshold
	if s.Thresholds != nil {
		x, y = s.Thresholds.X, s.Thresholds.Y
	}
	if cmd.IsSet("x-threshold") {
		x = cmd.Float("x-threshold")
	}
	if cmd.IsSet("y-threshold") {
		y = cmd.Float("y-threshold")
	}
	for _, t := range []float64{x, y} {
		if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, 0, fmt.Errorf("%w: x=%g y=%g", errBadThreshold, x, y)
		}
	}

	return x, y, nil
}

// newPlanner builds a planner for s wired to the app's bus and logger.
func (a *app) newPlanner(cmd *cli.Command, s *scene.Scene) (*route.Planner, error) {
	x, y, err := thresholds(cmd, s)
	if err != nil {
		return nil, err
	}
	opts := []route.Option{
		route.WithThresholds(x, y),
		route.WithBus(a.bus),
		route.WithLogger(a.logger),
	}
	if cmd.IsSet("max-distance") {
		d := cmd.Float("max-distance")
		if d < 0 || math.IsNaN(d) {
			return nil, fmt.Errorf("%w: %g", errBadMaxDistance, d)
		}
		opts = append(opts, route.WithMaxDistance(d))
	}
	if cmd.IsSet("max-link") {
		w := cmd.Float("max-link")
		if w <= 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: %g", errBadMaxLink, w)
		}
		opts = append(opts, route.WithMaxLink(w))
	}

	return route.NewPlanner(s, opts...)
}

// printRoute writes r as indented JSON or as a short text report.
func printRoute(w io.Writer, r route.Route, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if !r.Found {
		_, err := fmt.Fprintf(w, "%s: no route (%d waypoints reachable from start)\n", r.Scene, r.Reachable)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s: %d hops, distance %.3f\n", r.Scene, r.Hops, r.Distance); err != nil {
		return err
	}
	for _, p := range r.Points() {
		if _, err := fmt.Fprintf(w, "  %v\n", p); err != nil {
			return err
		}
	}

	return nil
}
