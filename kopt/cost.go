// Package kopt — cost stabilization shared by the improver and tests.
package kopt

import "math"

// roundScale controls final cost stabilization precision (1e-9). Avoids
// tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
