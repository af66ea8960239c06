// SPDX-License-Identifier: MIT

// Package mcpserver exposes the diffgap computation as Model Context
// Protocol tools over stdio.
package mcpserver

import (
	"context"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/diffgap/builder"
	"github.com/katalvlaran/diffgap/calculi"
)

// Server wraps the MCP server and the computation defaults.
type Server struct {
	mcp       *gomcp.Server
	defaults  calculi.Input
	sigmas    []float64
	maxPoints int
	maxSigmas int
	opts      []calculi.Option
	sampler   []builder.BuilderOption
}

// ServerOption configures optional Server settings.
type ServerOption func(*Server)

// WithDefaults sets the parameters used when a tool call omits them.
func WithDefaults(in calculi.Input) ServerOption {
	return func(s *Server) { s.defaults = in }
}

// WithSweepSigmas sets the default σ list of sigma_sweep.
func WithSweepSigmas(sigmas []float64) ServerOption {
	return func(s *Server) { s.sigmas = append([]float64(nil), sigmas...) }
}

// WithMaxPoints caps the point count of a tool call.
func WithMaxPoints(n int) ServerOption {
	return func(s *Server) { s.maxPoints = n }
}

// WithMaxSigmas caps the number of σ values of one sigma_sweep call.
func WithMaxSigmas(n int) ServerOption {
	return func(s *Server) { s.maxSigmas = n }
}

// WithCalculiOptions applies opts to every computation.
func WithCalculiOptions(opts ...calculi.Option) ServerOption {
	return func(s *Server) { s.opts = append(s.opts, opts...) }
}

// WithSamplerOptions applies opts to the point sampler.
func WithSamplerOptions(opts ...builder.BuilderOption) ServerOption {
	return func(s *Server) { s.sampler = append(s.sampler, opts...) }
}

// NewServer creates an MCP server with the diffgap tools registered.
func NewServer(version string, opts ...ServerOption) *Server {
	s := &Server{
		mcp: gomcp.NewServer(
			&gomcp.Implementation{
				Name:    "diffgap",
				Version: version,
			},
			nil,
		),
		defaults:  calculi.Input{Seed: 42, PointCount: 80, Sigma: 0.3},
		sigmas:    []float64{0.1, 0.2, 0.3, 0.5, 0.8, 1.0},
		maxPoints: 500,
		maxSigmas: 16,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()

	return s
}

// Serve runs the MCP server in stdio mode until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}
