// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/diffgap/builder"
	"github.com/katalvlaran/diffgap/calculi"
	"github.com/katalvlaran/diffgap/report"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "spectral_gaps",
		Description: "Sample points on the 2-simplex and report the diffusion spectral gap under the classical, log, power and curvature embeddings, plus the effective gap of the combined process.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"seed": {"type": "integer", "description": "Sampler seed (default 42)"},
				"points": {"type": "integer", "description": "Number of points (default 80)"},
				"sigma": {"type": "number", "description": "Gaussian kernel width, > 0 (default 0.3)"},
				"method": {"type": "string", "enum": ["heuristic", "composed"], "description": "Effective-gap method (default heuristic)"},
				"exact": {"type": "boolean", "description": "Also compute reference gaps by full eigen-decomposition"}
			}
		}`),
	}, s.handleSpectralGaps)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "sigma_sweep",
		Description: "Report per-embedding and effective spectral gaps across a list of kernel widths over one fixed point set.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"seed": {"type": "integer", "description": "Sampler seed (default 42)"},
				"points": {"type": "integer", "description": "Number of points (default 80)"},
				"sigmas": {"type": "array", "items": {"type": "number"}, "description": "Kernel widths, each > 0 (at most 16 by default)"},
				"method": {"type": "string", "enum": ["heuristic", "composed"], "description": "Effective-gap method (default heuristic)"}
			}
		}`),
	}, s.handleSigmaSweep)
}

// toolArgs is the union of both tools' arguments.
type toolArgs struct {
	Seed   *int64    `json:"seed"`
	Points *int      `json:"points"`
	Sigma  *float64  `json:"sigma"`
	Sigmas []float64 `json:"sigmas"`
	Method string    `json:"method"`
	Exact  bool      `json:"exact"`
}

func (s *Server) parseArgs(raw json.RawMessage) (toolArgs, calculi.Input, []calculi.Option, error) {
	var args toolArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return args, calculi.Input{}, nil, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	in := s.defaults
	if args.Seed != nil {
		in.Seed = *args.Seed
	}
	if args.Points != nil {
		in.PointCount = *args.Points
	}
	if args.Sigma != nil {
		in.Sigma = *args.Sigma
	}
	if in.PointCount > s.maxPoints {
		return args, in, nil, fmt.Errorf("points=%d exceeds %d", in.PointCount, s.maxPoints)
	}
	if err := in.Validate(); err != nil {
		return args, in, nil, err
	}
	method, err := calculi.ParseMethod(args.Method)
	if err != nil {
		return args, in, nil, err
	}

	opts := append([]calculi.Option(nil), s.opts...)
	opts = append(opts, calculi.WithSamplerOptions(s.sampler...), calculi.WithMethod(method), calculi.WithExact(args.Exact))

	return args, in, opts, nil
}

func (s *Server) handleSpectralGaps(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	_, in, opts, err := s.parseArgs(req.Params.Arguments)
	if err != nil {
		return toolError("%v", err), nil
	}
	out, err := calculi.Run(in, opts...)
	if err != nil {
		return toolError("computation failed: %v", err), nil
	}

	return toolJSON(report.NewResponse(in, out, false))
}

func (s *Server) handleSigmaSweep(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	args, in, opts, err := s.parseArgs(req.Params.Arguments)
	if err != nil {
		return toolError("%v", err), nil
	}
	if args.Exact {
		return toolError("exact is not supported on sweeps"), nil
	}
	sigmas := args.Sigmas
	if len(sigmas) == 0 {
		sigmas = s.sigmas
	}
	if len(sigmas) > s.maxSigmas {
		return toolError("%d sigmas exceeds %d", len(sigmas), s.maxSigmas), nil
	}
	points, err := builder.BuildSimplex(in.PointCount, in.Seed, s.sampler...)
	if err != nil {
		return toolError("sampling failed: %v", err), nil
	}
	sw, err := calculi.Sweep(points, sigmas, opts...)
	if err != nil {
		return toolError("sweep failed: %v", err), nil
	}

	return toolJSON(map[string]any{"input": in, "sweep": sw})
}

func toolJSON(v any) (*gomcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: string(data)}},
	}, nil
}

func toolError(format string, args ...any) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
