package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/stepvis/stepvis/internal/debug"
	"github.com/stepvis/stepvis/internal/mcp"
	"github.com/stepvis/stepvis/internal/sim"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the mapping engine over MCP stdio",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Directory of simulation JSON assets",
			},
		},
		Action: runMCP,
	}
}

func runMCP(c *cli.Context) error {
	// stdio carries the protocol; nothing else may write to it.
	debug.SetMCPMode(true)

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

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcp.NewServer(buildEngine(cfg), pool, cfg.Scoring)
	return server.Run(ctx)
}
