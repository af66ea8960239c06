// SPDX-License-Identifier: MIT

package calculi

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/diffgap/builder"
	"github.com/katalvlaran/diffgap/embedding"
	"github.com/katalvlaran/diffgap/spectral"
)

// Method selects how the effective gap is produced.
type Method string

const (
	// EffectiveHeuristic is min(HeuristicCap, HeuristicMaxWeight·max + HeuristicMeanWeight·mean).
	EffectiveHeuristic Method = "heuristic"

	// EffectiveComposed estimates the gap of the product of all operators.
	EffectiveComposed Method = "composed"
)

// Heuristic coefficients.
const (
	HeuristicCap        = 0.95
	HeuristicMaxWeight  = 1.15
	HeuristicMeanWeight = 0.05
)

// ParseMethod maps a name to a Method; "" selects the default.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "", EffectiveHeuristic:
		return EffectiveHeuristic, nil
	case EffectiveComposed:
		return EffectiveComposed, nil
	}

	return "", fmt.Errorf("calculi: unknown method %q", s)
}

// Option customizes Aggregate, Run and Sweep.
type Option func(*config)

type config struct {
	method   Method
	registry *embedding.Registry
	spectral []spectral.Option
	sampler  []builder.BuilderOption
	exact    bool
	logger   *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		method: EffectiveHeuristic,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// embeddings returns the active embeddings in application order.
func (c config) embeddings() []embedding.Embedding {
	if c.registry == nil {
		return embedding.Defaults()
	}

	return c.registry.All()
}

// WithMethod selects the effective-gap method. Panics on an unknown method.
func WithMethod(m Method) Option {
	if _, err := ParseMethod(string(m)); err != nil || m == "" {
		panic(fmt.Sprintf("calculi: WithMethod(%q): unknown method", m))
	}

	return func(c *config) { c.method = m }
}

// WithRegistry replaces the four default embeddings.
func WithRegistry(r *embedding.Registry) Option {
	if r == nil {
		panic("calculi: WithRegistry(nil)")
	}

	return func(c *config) { c.registry = r }
}

// WithIterations sets the power-iteration count for every estimate.
func WithIterations(n int) Option {
	o := spectral.WithIterations(n)

	return func(c *config) { c.spectral = append(c.spectral, o) }
}

// WithSpectralOptions forwards options to every spectral estimate.
func WithSpectralOptions(opts ...spectral.Option) Option {
	return func(c *config) { c.spectral = append(c.spectral, opts...) }
}

// WithSamplerOptions forwards options to the point sampler used by Run.
func WithSamplerOptions(opts ...builder.BuilderOption) Option {
	return func(c *config) { c.sampler = append(c.sampler, opts...) }
}

// WithExact additionally computes reference gaps from a full
// eigen-decomposition (O(n³) per operator).
func WithExact(on bool) Option {
	return func(c *config) { c.exact = on }
}

// WithLogger attaches a logger for per-embedding debug records.
// The default discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("calculi: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}
