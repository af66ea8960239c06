// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diffgap/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio mode)",
	Long: `Start the Model Context Protocol server for AI agent integration.

Tools: spectral_gaps and sigma_sweep. Logs go to stderr; stdout carries
the protocol.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	addComputeFlags(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, logger := globalConfig, globalLogger
	if err := applyComputeFlags(cmd, cfg); err != nil {
		return err
	}
	opts, err := calculiOptions(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := mcpserver.NewServer(version,
		mcpserver.WithDefaults(inputFrom(cfg)),
		mcpserver.WithSweepSigmas(cfg.Sweep.Sigmas),
		mcpserver.WithMaxPoints(cfg.Serve.MaxPoints),
		mcpserver.WithMaxSigmas(cfg.Serve.MaxSigmas),
		mcpserver.WithCalculiOptions(opts...),
		mcpserver.WithSamplerOptions(samplerOptions(cfg)...),
	)

	return srv.Serve(ctx)
}
