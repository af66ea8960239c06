// SPDX-License-Identifier: MIT

// Package calculi runs the diffusion pipeline under every registered
// embedding ("calculus") and summarizes the composed multi-operator process.
//
// Pipeline per call:
//
//	sample → embed × k → diffusion operator × k → gap × k → effective gap
//
// Two effective-gap methods exist:
//
//   - EffectiveHeuristic (default): min(0.95, 1.15·max + 0.05·mean) over the
//     single-embedding gaps. It reproduces the figures of the interactive demo
//     and is not an eigenvalue computation.
//   - EffectiveComposed: the gap of P_eff = P_k · … · P_1, the operators
//     multiplied in registry order, estimated with the same power iteration.
//
// Every call is independent: no state survives between calls, so concurrent
// calls need no coordination.
package calculi
