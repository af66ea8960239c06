// SPDX-License-Identifier: MIT

// Package simplex holds the data model shared by every stage of the pipeline:
// points on the 2-simplex and ordered point sets.
//
// A Point is three non-negative coordinates summing to 1. Points are values
// (arrays), so a PointSet handed to a downstream stage cannot be mutated
// through an alias of its elements.
package simplex
