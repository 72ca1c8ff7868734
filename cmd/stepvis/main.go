package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/stepvis/stepvis/internal/config"
	"github.com/stepvis/stepvis/internal/debug"
	"github.com/stepvis/stepvis/internal/engine"
	"github.com/stepvis/stepvis/internal/lexicon"
	"github.com/stepvis/stepvis/internal/version"
)

func main() {
	app := &cli.App{
		Name:                   "stepvis",
		Usage:                  "Map instruction steps onto UI screenshots and hotspots",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Project root containing " + config.ConfigFileName,
				Value:   ".",
			},
			&cli.BoolFlag{
				Name:  "debug-log",
				Usage: "Write debug output to a log file",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("debug-log") {
				path, err := debug.InitDebugLogFile()
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "debug log: %s\n", path)
			}
			return nil
		},
		After: func(c *cli.Context) error {
			return debug.CloseDebugLog()
		},
		Commands: []*cli.Command{
			mapCmd(),
			diagnoseCmd(),
			mcpCmd(),
			{
				Name:  "version",
				Usage: "Print detailed version information",
				Action: func(c *cli.Context) error {
					fmt.Println(version.FullInfo())
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfigWithOverrides loads project configuration and applies CLI flag
// overrides on top.
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("root"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("data") {
		cfg.DataDir = c.String("data")
	}
	if c.IsSet("threshold") {
		cfg.Scoring.Threshold = c.Float64("threshold")
	}
	if c.IsSet("max-reuse") {
		cfg.Scoring.MaxImageReuse = c.Int("max-reuse")
	}
	if c.IsSet("diversity-penalty") {
		cfg.Scoring.DiversityPenalty = c.Float64("diversity-penalty")
	}
	if c.IsSet("debug") {
		cfg.Scoring.Debug = c.Bool("debug")
	}

	return cfg, nil
}

// buildEngine assembles the engine over the configured lexicon overlay.
func buildEngine(cfg *config.Config) *engine.Engine {
	lex := lexicon.Default().WithOverlay(cfg.Lexicon)
	return engine.NewWithLexicon(lex, cfg.Scoring.FuzzyAlgorithm)
}
