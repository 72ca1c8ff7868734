package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/stepvis/stepvis/internal/diagnose"
	"github.com/stepvis/stepvis/internal/lexicon"
	"github.com/stepvis/stepvis/internal/sim"
)

func diagnoseCmd() *cli.Command {
	return &cli.Command{
		Name:      "diagnose",
		Usage:     "Check whether the pool has vocabulary coverage for a request",
		ArgsUsage: "<request text>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Directory of simulation JSON assets",
			},
		},
		Action: runDiagnose,
	}
}

func runDiagnose(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("usage: stepvis diagnose \"I want to update my payment method\"")
	}
	request := strings.Join(c.Args().Slice(), " ")

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	pool, err := sim.Load(c.Context, cfg.DataDir)
	if err != nil {
		return err
	}
	for _, skip := range pool.Skipped {
		fmt.Fprintf(os.Stderr, "warning: %v\n", skip)
	}

	lex := lexicon.Default().WithOverlay(cfg.Lexicon)
	fmt.Print(diagnose.Render(diagnose.Analyze(lex, pool, request)))
	return nil
}
