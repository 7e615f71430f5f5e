// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geoline

import "math"

const (
	// RelTolerance is the relative tolerance used by IsClose.
	RelTolerance = 1e-5
	// AbsTolerance is the absolute tolerance used by IsClose.
	AbsTolerance = 1e-8
)

// IsClose returns whether a is within the closeness tolerance of the
// reference value b, i.e. |a-b| <= AbsTolerance + RelTolerance*|b|.
//
// The comparison is asymmetric, the relative part scales with b only.
// Infinities are close only to an infinity of the same sign and NaN is close
// to nothing.
func IsClose(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= AbsTolerance+RelTolerance*math.Abs(b)
}
