package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/stepvis/stepvis/internal/report"
	"github.com/stepvis/stepvis/internal/script"
	"github.com/stepvis/stepvis/internal/sim"
	"github.com/stepvis/stepvis/internal/types"
)

func mapCmd() *cli.Command {
	return &cli.Command{
		Name:      "map",
		Usage:     "Map a walkthrough script's steps onto the simulation pool",
		ArgsUsage: "[step ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "script",
				Aliases: []string{"s"},
				Usage:   "Walkthrough script (TOML) to map",
			},
			&cli.StringFlag{
				Name:  "context",
				Usage: "Free-text request context for domain matching",
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Directory of simulation JSON assets",
			},
			&cli.Float64Flag{
				Name:  "threshold",
				Usage: "Minimum adjusted relevance score",
			},
			&cli.IntFlag{
				Name:  "max-reuse",
				Usage: "Reuse cap per image within one run",
			},
			&cli.Float64Flag{
				Name:  "diversity-penalty",
				Usage: "Score deduction per prior reuse of an image",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Include ranked candidate traces in the report",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Re-run the mapping whenever the data directory changes",
			},
		},
		Action: runMap,
	}
}

func runMap(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	steps, requestContext, err := resolveSteps(c)
	if err != nil {
		return err
	}
	if c.IsSet("context") {
		requestContext = c.String("context")
	}

	eng := buildEngine(cfg)

	runOnce := func() error {
		pool, err := sim.Load(c.Context, cfg.DataDir)
		if err != nil {
			return err
		}
		for _, skip := range pool.Skipped {
			fmt.Fprintf(os.Stderr, "warning: %v\n", skip)
		}

		run, err := eng.MapSteps(steps, pool.Items, cfg.Scoring, requestContext)
		if err != nil {
			return err
		}

		if cfg.Scoring.Debug {
			fmt.Print(report.RenderDebug(run))
		} else {
			fmt.Print(report.Render(run))
		}
		return nil
	}

	if err := runOnce(); err != nil {
		return err
	}

	if !c.Bool("watch") {
		return nil
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "watching %s for changes (ctrl-c to stop)\n", cfg.DataDir)
	err = sim.Watch(ctx, cfg.DataDir, sim.DefaultWatchDebounce, func() {
		if err := runOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "remap failed: %v\n", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// resolveSteps builds the step sequence from --script or positional args.
func resolveSteps(c *cli.Context) ([]types.Step, string, error) {
	if path := c.String("script"); path != "" {
		s, err := script.LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		return s.ToSteps(), s.Context, nil
	}

	if c.NArg() == 0 {
		return nil, "", errors.New("usage: stepvis map --script walkthrough.toml | stepvis map \"Click Save\" ...")
	}

	steps := make([]types.Step, c.NArg())
	for i, text := range c.Args().Slice() {
		steps[i] = types.Step{Text: text}
	}
	return steps, "", nil
}
