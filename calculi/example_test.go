// SPDX-License-Identifier: MIT

package calculi_test

import (
	"fmt"

	"github.com/katalvlaran/diffgap/calculi"
)

// ExampleRun reproduces the interactive demo with its default parameters.
func ExampleRun() {
	out, err := calculi.Run(calculi.Input{Seed: 42, PointCount: 80, Sigma: 0.3})
	if err != nil {
		panic(err)
	}
	for _, g := range out.Ranked() {
		fmt.Printf("%-9s %.3f\n", g.Kind, g.Gap)
	}
	fmt.Printf("effective %.3f (%+.1f%%)\n", out.EffectiveGap, out.ImprovementPct)
	// Output:
	// power     0.220
	// classical 0.124
	// curvature 0.005
	// log       0.002
	// effective 0.257 (+17.0%)
}
