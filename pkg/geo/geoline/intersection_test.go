// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geoline

import (
	"context"
	"math"
	"testing"

	"github.com/cockroachdb/geoline/pkg/util/log"
	"github.com/cockroachdb/logtags"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestIntersection(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		desc     string
		l1, l2   [4]float64
		expected geom.Coord
	}{
		{desc: "diagonals", l1: [4]float64{0, 0, 2, 2}, l2: [4]float64{0, 2, 2, 0}, expected: geom.Coord{1, 1}},
		{desc: "outside the segments", l1: [4]float64{0, 1, 2, 2}, l2: [4]float64{0, 4, 1, 3}, expected: geom.Coord{2, 2}},
		{desc: "horizontal", l1: [4]float64{-1, 3, 1, 3}, l2: [4]float64{0, 0, 1, 1}, expected: geom.Coord{3, 3}},
		{desc: "at the origin", l1: [4]float64{-1, -1, 1, 1}, l2: [4]float64{-1, 2, 1, -2}, expected: geom.Coord{0, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			l1 := mustNewLine(t, tc.l1[0], tc.l1[1], tc.l1[2], tc.l1[3])
			l2 := mustNewLine(t, tc.l2[0], tc.l2[1], tc.l2[2], tc.l2[3])

			pt, ok := NewLineIntersection(l1, l2).Intersection(ctx)
			require.True(t, ok)
			require.Equal(t, tc.expected, pt)

			// The point lies on both lines.
			require.Equal(t, pt.Y(), l1.YVal(pt.X()))
			require.Equal(t, pt.Y(), l2.YVal(pt.X()))
		})
	}
}

func TestIntersectionParallel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	defer log.TestingSetLogger(zap.New(core), 0)()

	ctx := logtags.AddTag(context.Background(), "intersect", nil)
	l1 := mustNewLine(t, 0, 0, 1, 1)
	for _, l2 := range []Line{
		mustNewLine(t, 0, 1, 1, 2),
		// The same line.
		mustNewLine(t, 2, 2, 3, 3),
	} {
		pt, ok := NewLineIntersection(l1, l2).Intersection(ctx)
		require.False(t, ok)
		require.Nil(t, pt)
	}

	entries := logs.FilterMessageSnippet("lines are parallel").All()
	require.Len(t, entries, 2)
	require.Equal(t, "[intersect] lines are parallel: slopes 1 and 1", entries[0].Message)
}

func TestIntersectionVertical(t *testing.T) {
	ctx := context.Background()
	horizontal := mustNewLine(t, 0, 0, 1, 0)
	vertical := mustNewLine(t, 2, -1, 2, 5)

	pt, ok := NewLineIntersection(horizontal, vertical).Intersection(ctx)
	require.True(t, ok)
	require.True(t, math.IsNaN(pt.X()))
	require.True(t, math.IsNaN(pt.Y()))

	_, ok = NewLineIntersection(vertical, mustNewLine(t, 3, 0, 3, 5)).Intersection(ctx)
	require.False(t, ok)
}

func TestLineIntersectionCopiesLines(t *testing.T) {
	l1 := mustNewLine(t, 0, 0, 2, 2)
	l2 := mustNewLine(t, 0, 2, 2, 0)
	li := NewLineIntersection(l1, l2)

	l1 = mustNewLine(t, 0, 5, 1, 5)
	l2 = mustNewLine(t, 0, 7, 1, 7)

	m1, m2 := li.Slopes()
	require.Equal(t, 1.0, m1)
	require.Equal(t, -1.0, m2)
	q1, q2 := li.Intercepts()
	require.Equal(t, 0.0, q1)
	require.Equal(t, 2.0, q2)

	pt, ok := li.Intersection(context.Background())
	require.True(t, ok)
	require.Equal(t, geom.Coord{1, 1}, pt)
}
