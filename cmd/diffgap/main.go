// SPDX-License-Identifier: MIT

// Command diffgap computes diffusion spectral gaps of simplex point clouds
// under several coordinate embeddings.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
