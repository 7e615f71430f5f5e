// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geoline contains planar line primitives: a Line through two
// points, its evaluation in either coordinate, and the intersection of two
// such lines.
//
// Lines are unbounded. Degenerate numeric results follow IEEE-754: a
// vertical line has an infinite slope, solving a horizontal line for x
// yields +Inf, and parallel lines have no intersection. The only condition
// reported as an error is a line built from two identical points.
package geoline

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// ErrInvalidInput marks errors caused by points which cannot define a line.
var ErrInvalidInput = errors.New("invalid input")

// Line is the unbounded line passing through two distinct points. The slope
// and intercept are derived once at construction and the value is immutable
// afterwards.
type Line struct {
	x1, y1 float64
	x2, y2 float64
	// m and q are the slope and the intercept of y = m*x + q.
	m, q float64
}

// NewLine returns the line passing through (x1, y1) and (x2, y2). An error
// marked with ErrInvalidInput is returned if the points coincide.
//
// A vertical line (x1 == x2) is not rejected: its slope is ±Inf and its
// intercept is whatever the floating point arithmetic produces.
func NewLine(x1, y1, x2, y2 float64) (Line, error) {
	if x1 == x2 && y1 == y2 {
		return Line{}, errors.WithHint(
			errors.Mark(
				errors.Newf("input points (%g %g) and (%g %g) are the same", x1, y1, x2, y2),
				ErrInvalidInput,
			),
			"a line cannot be defined by a single point",
		)
	}
	m := (y2 - y1) / (x2 - x1)
	return Line{
		x1: x1, y1: y1,
		x2: x2, y2: y2,
		m: m,
		q: y1 - m*x1,
	}, nil
}

// NewLineFromCoords returns the line passing through two coordinates. Only
// the first two ordinates of each coordinate are used.
func NewLineFromCoords(a, b geom.Coord) (Line, error) {
	if len(a) < 2 || len(b) < 2 {
		return Line{}, errors.Mark(
			errors.Newf("coordinates must have at least 2 dimensions, got %d and %d", len(a), len(b)),
			ErrInvalidInput,
		)
	}
	return NewLine(a.X(), a.Y(), b.X(), b.Y())
}

// NewLineFromLineString returns the line passing through the two points of
// a two-point LineString.
func NewLineFromLineString(ls *geom.LineString) (Line, error) {
	if ls == nil {
		return Line{}, errors.Mark(errors.New("nil LineString"), ErrInvalidInput)
	}
	if n := ls.NumCoords(); n != 2 {
		return Line{}, errors.Mark(
			errors.Newf("LineString must have exactly 2 points, got %d", n),
			ErrInvalidInput,
		)
	}
	return NewLineFromCoords(ls.Coord(0), ls.Coord(1))
}

// YVal returns the y coordinate of the line at x.
func (l Line) YVal(x float64) float64 {
	return l.m*x + l.q
}

// YVals returns the y coordinate of the line at each of xs.
func (l Line) YVals(xs []float64) []float64 {
	if xs == nil {
		return nil
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = l.YVal(x)
	}
	return ys
}

// XVal returns the x coordinate of the line at y. A horizontal line has no
// unique solution and +Inf is returned.
func (l Line) XVal(y float64) float64 {
	if l.m == 0 {
		return math.Inf(1)
	}
	return (y - l.q) / l.m
}

// XVals returns the x coordinate of the line at each of ys.
func (l Line) XVals(ys []float64) []float64 {
	if ys == nil {
		return nil
	}
	xs := make([]float64, len(ys))
	for i, y := range ys {
		xs[i] = l.XVal(y)
	}
	return xs
}

// Slope returns m in y = m*x + q.
func (l Line) Slope() float64 {
	return l.m
}

// Intercept returns q in y = m*x + q.
func (l Line) Intercept() float64 {
	return l.q
}

// IsVertical returns whether the defining points share the same x
// coordinate, in which case the slope is infinite.
func (l Line) IsVertical() bool {
	return math.IsInf(l.m, 0)
}

// Distance returns the euclidean distance between the defining points.
func (l Line) Distance() float64 {
	d := l.p2().Sub(l.p1())
	return math.Sqrt(d.Dot(d))
}

// Midpoint returns the point halfway between the defining points.
func (l Line) Midpoint() geom.Coord {
	mid := l.p1().Add(l.p2()).Mul(0.5)
	return geom.Coord{mid.X, mid.Y}
}

// Points returns the two points the line was defined by.
func (l Line) Points() (geom.Coord, geom.Coord) {
	return geom.Coord{l.x1, l.y1}, geom.Coord{l.x2, l.y2}
}

// IsParallelTo returns whether both lines have the same slope, within the
// closeness tolerance of IsClose.
func (l Line) IsParallelTo(other Line) bool {
	return IsClose(l.m, other.m)
}

// IsPerpendicularTo returns whether the product of the slopes of both lines
// is -1, within the closeness tolerance of IsClose.
func (l Line) IsPerpendicularTo(other Line) bool {
	return IsClose(-1, l.m*other.m)
}

// AsLineString returns the defining points as a two-point LineString.
func (l Line) AsLineString() *geom.LineString {
	return geom.NewLineStringFlat(geom.XY, []float64{l.x1, l.y1, l.x2, l.y2})
}

// String returns the WKT representation of the defining points.
func (l Line) String() string {
	s, err := wkt.Marshal(l.AsLineString())
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "marshaling line to WKT"))
	}
	return s
}

// SafeFormat implements the redact.SafeFormatter interface.
func (l Line) SafeFormat(s redact.SafePrinter, _ rune) {
	s.Print(redact.Safe(l.String()))
}

func (l Line) p1() r2.Point {
	return r2.Point{X: l.x1, Y: l.y1}
}

func (l Line) p2() r2.Point {
	return r2.Point{X: l.x2, Y: l.y2}
}
