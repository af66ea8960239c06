// SPDX-License-Identifier: MIT

// Package diffgap estimates how fast diffusion mixes on a point cloud sampled
// from the 2-simplex, seen through several embeddings at once.
//
// Pipeline:
//
//	builder/    — deterministic clustered sampler on the 2-simplex (LCG stream)
//	simplex/    — Point and PointSet types with on-simplex validation
//	embedding/  — classical, log, power and curvature embeddings plus a Registry
//	diffusion/  — Gaussian affinity kernel and row-normalized Markov operator
//	spectral/   — deflated power iteration for the spectral gap, exact references
//	calculi/    — per-embedding gaps, effective gap (heuristic or composed), σ sweeps
//	matrix/     — dense kernels: Mul, MatVecInto, RowSums, NormalizeRowsL1, DiagScale, EigenSym
//
// Outer surfaces:
//
//	config/     — YAML configuration with defaults and validation
//	metrics/    — Prometheus collectors for runs and HTTP traffic
//	report/     — JSON responses and terminal tables
//	server/     — HTTP API (/v1/gaps, /v1/sweep, /metrics, /healthz)
//	mcpserver/  — Model Context Protocol tools over stdio
//	cmd/diffgap — the CLI tying it all together
//
// Quick start:
//
//	out, err := calculi.Run(calculi.Input{Seed: 42, PointCount: 80, Sigma: 0.3})
//	if err != nil {
//		return err
//	}
//	for _, g := range out.Ranked() {
//		fmt.Printf("%-10s %.3f\n", g.Kind, g.Gap)
//	}
//
// Every stage is deterministic for a given (seed, n, σ, options) tuple.
package diffgap
