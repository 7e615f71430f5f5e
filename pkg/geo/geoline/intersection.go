// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geoline

import (
	"context"

	"github.com/cockroachdb/geoline/pkg/util/log"
	"github.com/twpayne/go-geom"
)

// LineIntersection computes the intersection point of two lines. It holds
// copies of the slopes and intercepts of the lines it was built from and
// keeps no reference to them.
type LineIntersection struct {
	m1, q1 float64
	m2, q2 float64
}

// NewLineIntersection returns a LineIntersection for l1 and l2. Parallel
// lines are accepted; they are only detected by Intersection.
func NewLineIntersection(l1, l2 Line) LineIntersection {
	return LineIntersection{
		m1: l1.m, q1: l1.q,
		m2: l2.m, q2: l2.q,
	}
}

// Slopes returns the slopes of the first and second line.
func (li LineIntersection) Slopes() (float64, float64) {
	return li.m1, li.m2
}

// Intercepts returns the intercepts of the first and second line.
func (li LineIntersection) Intercepts() (float64, float64) {
	return li.q1, li.q2
}

// Intersection returns the point where both lines cross and true.
//
// If the slopes are exactly equal the lines are parallel (or the same line)
// and there is no single intersection point: a notice is logged and
// (nil, false) is returned. Callers must check the boolean before using the
// coordinate. Two vertical lines drawn in the same direction share an
// infinite slope and count as parallel; any other combination involving a
// vertical line yields NaN ordinates.
func (li LineIntersection) Intersection(ctx context.Context) (geom.Coord, bool) {
	if li.m1 == li.m2 {
		log.Infof(ctx, "lines are parallel: slopes %v and %v", li.m1, li.m2)
		return nil, false
	}
	x := (li.q2 - li.q1) / (li.m1 - li.m2)
	return geom.Coord{x, li.m1*x + li.q1}, true
}
