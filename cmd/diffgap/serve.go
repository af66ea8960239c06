// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diffgap/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the gap computation over HTTP",
	Long:  "Start an HTTP server with /v1/gaps, /v1/sweep, /metrics and /healthz.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	addComputeFlags(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger := globalConfig, globalLogger
	if err := applyComputeFlags(cmd, cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Serve.Addr = serveAddr
	}
	opts, err := calculiOptions(cfg, logger)
	if err != nil {
		return err
	}

	srv := server.NewServer(cfg.Serve.Addr,
		server.WithLogger(logger),
		server.WithDefaults(inputFrom(cfg)),
		server.WithSweepSigmas(cfg.Sweep.Sigmas),
		server.WithMaxPoints(cfg.Serve.MaxPoints),
		server.WithMaxSigmas(cfg.Serve.MaxSigmas),
		server.WithCalculiOptions(opts...),
		server.WithSamplerOptions(samplerOptions(cfg)...),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return <-errCh
}
