package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/shortway/route"
	"github.com/katalvlaran/shortway/scene"
)

func (a *app) routeCommand() *cli.Command {
	return &cli.Command{
		Name:      "route",
		Usage:     "plan the scene's route once and print it",
		ArgsUsage: "[scene.yaml]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the route as JSON"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, s, err := a.loadScene(cmd)
			if err != nil {
				return err
			}
			p, err := a.newPlanner(cmd, s)
			if err != nil {
				return err
			}
			r, err := p.Plan(ctx)
			if err != nil {
				return err
			}

			return printRoute(a.out, r, cmd.Bool("json"))
		},
	}
}

func (a *app) watchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "re-plan and print the route whenever the scene file changes",
		ArgsUsage: "[scene.yaml]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print routes as JSON"},
			&cli.DurationFlag{Name: "debounce", Value: scene.DefaultDebounce, Usage: "quiet period before reloading"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, s, err := a.loadScene(cmd)
			if err != nil {
				return err
			}
			w, err := scene.NewWatcher(path,
				scene.WithDebounce(cmd.Duration("debounce")),
				scene.WithWatchLogger(a.logger),
			)
			if err != nil {
				return err
			}
			defer w.Close()

			plannerFor := func(s *scene.Scene) (*route.Planner, error) { return a.newPlanner(cmd, s) }

			return a.watch(ctx, s, w.Scenes, w.Errors, plannerFor, cmd.Bool("json"))
		},
	}
}

// watch plans first and then once per scene received, until ctx ends or the
// scene stream closes. A scene that fails to plan is logged and skipped.
func (a *app) watch(
	ctx context.Context,
	first *scene.Scene,
	scenes <-chan *scene.Scene,
	errs <-chan error,
	plannerFor func(*scene.Scene) (*route.Planner, error),
	asJSON bool,
) error {
	plan := func(s *scene.Scene) error {
		p, err := plannerFor(s)
		if err != nil {
			a.logger.Warn("scene rejected", "scene", s.Name, "err", err)
			return nil
		}
		r, err := p.Plan(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		return printRoute(a.out, r, asJSON)
	}

	if err := plan(first); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case s, ok := <-scenes:
			if !ok {
				return nil
			}
			if err := plan(s); err != nil {
				return err
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			a.logger.Debug("keeping previous route", "err", err)
		}
	}
}

func (a *app) fmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "print a scene in canonical form",
		ArgsUsage: "[scene.yaml]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "write", Aliases: []string{"w"}, Usage: "rewrite the file in place"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, s, err := a.loadScene(cmd)
			if err != nil {
				return err
			}
			if cmd.Bool("write") {
				if err := scene.Save(path, s); err != nil {
					return err
				}
				a.logger.Info("scene formatted", "path", path)
				return nil
			}
			data, err := scene.Marshal(s)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.out, string(data))

			return err
		},
	}
}
