// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diffgap/calculi"
	"github.com/katalvlaran/diffgap/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute per-embedding and effective spectral gaps",
	Long:  "Sample one point set and report the spectral gap under every embedding plus the effective gap.",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

var (
	runFormat     string
	runWithPoints bool
)

func init() {
	rootCmd.AddCommand(runCmd)
	addComputeFlags(runCmd)
	runCmd.Flags().StringVar(&runFormat, "format", "table", "Output format: table or json")
	runCmd.Flags().BoolVar(&runWithPoints, "with-points", false, "Include sampled points in JSON output")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, logger := globalConfig, globalLogger
	if err := applyComputeFlags(cmd, cfg); err != nil {
		return err
	}
	opts, err := calculiOptions(cfg, logger)
	if err != nil {
		return err
	}

	in := inputFrom(cfg)
	out, err := calculi.Run(in, opts...)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), runFormat, report.NewResponse(in, out, runWithPoints), func() string {
		return report.GapsTable(out)
	})
}

// writeOutput prints v as indented JSON or the rendered table.
func writeOutput(w io.Writer, format string, v any, table func() string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "table":
		_, err := io.WriteString(w, table())
		return err
	}

	return fmt.Errorf("unknown format %q (want table or json)", format)
}
