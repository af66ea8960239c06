// SPDX-License-Identifier: MIT

// Package report formats calculi results for humans and JSON clients.
// The core returns raw numbers; rounding and percentage strings happen here.
package report

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/diffgap/calculi"
	"github.com/katalvlaran/diffgap/simplex"
)

// PctDigits is the number of decimals in ImprovementPct strings.
const PctDigits = 1

// Response is the JSON shape served by `diffgap run`, the HTTP API and the
// MCP tool.
type Response struct {
	RequestID         string              `json:"requestId,omitempty"`
	Input             calculi.Input       `json:"input"`
	Points            simplex.PointSet    `json:"points,omitempty"`
	Gaps              []calculi.GapResult `json:"gaps"`
	EffectiveGap      float64             `json:"effectiveGap"`
	MaxSingleGap      float64             `json:"maxSingleGap"`
	ImprovementPct    string              `json:"improvementPct"`
	Method            calculi.Method      `json:"method"`
	ExactEffectiveGap *float64            `json:"exactEffectiveGap,omitempty"`
}

// NewResponse converts an Output. withPoints controls whether the sampled
// points are included.
func NewResponse(in calculi.Input, out calculi.Output, withPoints bool) Response {
	r := Response{
		Input:             in,
		Gaps:              out.Gaps,
		EffectiveGap:      out.EffectiveGap,
		MaxSingleGap:      out.MaxSingleGap,
		ImprovementPct:    FormatPct(out.ImprovementPct),
		Method:            out.Method,
		ExactEffectiveGap: out.Exact,
	}
	if withPoints {
		r.Points = out.Points
	}

	return r
}

// FormatPct renders a percentage with PctDigits decimals, e.g. "17.0".
func FormatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', PctDigits, 64)
}

// formatGap renders a gap with four decimals.
func formatGap(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
