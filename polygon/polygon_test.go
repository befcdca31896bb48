package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikenye/voronoi/geometry"
	"github.com/mikenye/voronoi/point"
)

func square(x1, y1, x2, y2 float64) []point.Point {
	return []point.Point{
		point.New(x1, y1),
		point.New(x2, y1),
		point.New(x2, y2),
		point.New(x1, y2),
	}
}

func TestSignedArea(t *testing.T) {
	tests := map[string]struct {
		points   []point.Point
		expected float64
	}{
		"ccw unit square":    {square(0, 0, 1, 1), 2},
		"cw unit square":     {[]point.Point{point.New(0, 0), point.New(0, 1), point.New(1, 1), point.New(1, 0)}, -2},
		"degenerate segment": {[]point.Point{point.New(0, 0), point.New(1, 1)}, 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, SignedArea(tc.points), 1e-12)
		})
	}
}

func TestWinding(t *testing.T) {
	assert.Equal(t, geometry.WindingCounterClockwise, Winding(square(0, 0, 1, 1)))
	assert.Equal(t, geometry.WindingClockwise, Winding([]point.Point{point.New(0, 0), point.New(0, 1), point.New(1, 1), point.New(1, 0)}))
	assert.Equal(t, geometry.WindingCollinear, Winding([]point.Point{point.New(0, 0), point.New(1, 1), point.New(2, 2)}))
}

func TestIntersectConvex(t *testing.T) {
	containsApprox := func(t *testing.T, got []point.Point, want point.Point) {
		t.Helper()
		for _, p := range got {
			if p.Eq(want) {
				return
			}
		}
		t.Errorf("clipped polygon %v missing vertex %s", got, want.String())
	}

	t.Run("subject inside clip is unchanged", func(t *testing.T) {
		subject := square(1, 1, 2, 2)
		clip := square(0, 0, 10, 10)
		result := IntersectConvex(subject, clip)
		require.Len(t, result, 4)
		for _, p := range subject {
			containsApprox(t, result, p)
		}
	})

	t.Run("overlapping squares", func(t *testing.T) {
		result := IntersectConvex(square(0, 0, 2, 2), square(1, 1, 3, 3))
		require.Len(t, result, 4)
		for _, want := range square(1, 1, 2, 2) {
			containsApprox(t, result, want)
		}
	})

	t.Run("disjoint squares intersect to nothing", func(t *testing.T) {
		result := IntersectConvex(square(0, 0, 1, 1), square(5, 5, 6, 6))
		assert.Empty(t, result)
	})

	t.Run("clockwise clip region is normalized", func(t *testing.T) {
		cwClip := []point.Point{point.New(1, 1), point.New(1, 3), point.New(3, 3), point.New(3, 1)}
		result := IntersectConvex(square(0, 0, 2, 2), cwClip)
		require.Len(t, result, 4)
		for _, want := range square(1, 1, 2, 2) {
			containsApprox(t, result, want)
		}
	})

	t.Run("triangle across half plane boundary", func(t *testing.T) {
		subject := []point.Point{point.New(-1, 0), point.New(1, 0), point.New(0, 2)}
		clip := square(0, -5, 5, 5)
		result := IntersectConvex(subject, clip)
		require.NotEmpty(t, result)
		containsApprox(t, result, point.New(1, 0))
		containsApprox(t, result, point.New(0, 2))
		containsApprox(t, result, point.New(0, 0))
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		assert.Nil(t, IntersectConvex(nil, square(0, 0, 1, 1)))
		assert.Nil(t, IntersectConvex(square(0, 0, 1, 1), nil))
	})
}
