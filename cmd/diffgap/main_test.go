// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diffgap/calculi"
	"github.com/katalvlaran/diffgap/config"
	"github.com/katalvlaran/diffgap/report"
)

// execute runs the root command with args and returns stdout. Flag values
// persist across calls, so every test passes the flags it depends on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func TestRunCommand_JSON(t *testing.T) {
	out, err := execute(t, "run", "--seed", "42", "--points", "80", "--sigma", "0.3", "--method", "heuristic", "--format", "json")
	require.NoError(t, err)

	var got report.Response
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, calculi.Input{Seed: 42, PointCount: 80, Sigma: 0.3}, got.Input)
	require.Len(t, got.Gaps, 4)
	require.Equal(t, "17.0", got.ImprovementPct)
	require.Empty(t, got.Points)
}

func TestRunCommand_Table(t *testing.T) {
	out, err := execute(t, "run", "--seed", "1", "--points", "20", "--sigma", "0.4", "--method", "composed", "--format", "table")
	require.NoError(t, err)
	require.Contains(t, out, "curvature")
	require.Contains(t, out, "composed")
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", "--seed", "1", "--points", "20", "--sigma", "0.3", "--sigmas", "0.2,0.5", "--format", "json")
	require.NoError(t, err)

	var sw calculi.SweepResult
	require.NoError(t, json.Unmarshal([]byte(out), &sw))
	require.Len(t, sw, 2)
	require.Equal(t, 0.5, sw[1].Sigma)
}

func TestRunCommand_Errors(t *testing.T) {
	_, err := execute(t, "run", "--points", "20", "--sigma", "-1")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "run", "--points", "20", "--sigma", "0.3", "--format", "xml")
	require.Error(t, err)

	_, err = execute(t, "run", "--points", "20", "--sigma", "0.3", "--format", "json", "--method", "magic")
	require.Error(t, err)
}
