package point

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikenye/voronoi/numeric"
)

func TestPoint_Coordinates(t *testing.T) {
	tests := map[string]struct {
		point Point
		wantX float64
		wantY float64
	}{
		"origin":          {New(0, 0), 0, 0},
		"positive values": {New(3, 4), 3, 4},
		"negative values": {New(-5, -10), -5, -10},
		"mixed values":    {New(-7, 9), -7, 9},
		"large values":    {New(1000000, -999999), 1000000, -999999},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			x, y := tc.point.Coordinates()
			assert.Equal(t, tc.wantX, x, "X coordinate mismatch")
			assert.Equal(t, tc.wantY, y, "Y coordinate mismatch")
			assert.Equal(t, tc.wantX, tc.point.X())
			assert.Equal(t, tc.wantY, tc.point.Y())
		})
	}
}

func TestPoint_AddSub(t *testing.T) {
	tests := map[string]struct {
		p, q     Point
		wantAdd  Point
		wantSub  Point
	}{
		"positive":      {New(1, 2), New(3, 4), New(4, 6), New(-2, -2)},
		"with negative": {New(-1, -2), New(1, 2), New(0, 0), New(-2, -4)},
		"zero":          {New(5, 7), New(0, 0), New(5, 7), New(5, 7)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.wantAdd, tc.p.Add(tc.q))
			assert.Equal(t, tc.wantSub, tc.p.Sub(tc.q))
		})
	}
}

func TestPoint_CrossProduct(t *testing.T) {
	tests := map[string]struct {
		a, b     Point
		expected float64
	}{
		"perpendicular ccw": {New(1, 0), New(0, 1), 1},
		"perpendicular cw":  {New(0, 1), New(1, 0), -1},
		"collinear":         {New(2, 2), New(4, 4), 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, tc.a.CrossProduct(tc.b), numeric.GetEpsilon())
		})
	}
}

func TestPoint_DotProduct(t *testing.T) {
	assert.Equal(t, 11.0, New(1, 2).DotProduct(New(3, 4)))
	assert.Equal(t, 0.0, New(1, 0).DotProduct(New(0, 1)), "perpendicular vectors")
}

func TestPoint_Distances(t *testing.T) {
	p := New(0, 0)
	q := New(3, 4)
	assert.Equal(t, 25.0, p.DistanceSquaredToPoint(q))
	assert.Equal(t, 5.0, p.DistanceToPoint(q))
}

func TestPoint_Eq(t *testing.T) {
	tests := map[string]struct {
		p, q     Point
		expected bool
	}{
		"identical":       {New(1, 2), New(1, 2), true},
		"within epsilon":  {New(1, 2), New(1+1e-12, 2-1e-12), true},
		"outside epsilon": {New(1, 2), New(1+1e-6, 2), false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.Eq(tc.q))
		})
	}
}

func TestPoint_Magnitude_Normalize(t *testing.T) {
	tests := map[string]struct {
		p             Point
		wantMagnitude float64
	}{
		"unit x":    {New(1, 0), 1},
		"3-4-5":     {New(3, 4), 5},
		"negative":  {New(-3, -4), 5},
		"zero":      {New(0, 0), 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.wantMagnitude, tc.p.Magnitude(), numeric.GetEpsilon())
			n := tc.p.Normalize()
			if tc.wantMagnitude == 0 {
				assert.Equal(t, tc.p, n, "zero vector normalizes to itself")
			} else {
				assert.InDelta(t, 1.0, n.Magnitude(), numeric.GetEpsilon())
			}
		})
	}
}

func TestPoint_Perpendicular(t *testing.T) {
	p := New(3, 4)
	perp := p.Perpendicular()
	assert.Equal(t, New(-4, 3), perp)
	assert.InDelta(t, 0, p.DotProduct(perp), numeric.GetEpsilon(), "perpendicular vectors have zero dot product")
}

func TestPoint_NegateScale(t *testing.T) {
	assert.Equal(t, New(-1, 2), New(1, -2).Negate())
	assert.Equal(t, New(2, -4), New(1, -2).Scale(2))
	assert.Equal(t, New(0, 0), New(1, -2).Scale(0))
}

func TestMidpoint(t *testing.T) {
	tests := map[string]struct {
		p, q     Point
		expected Point
	}{
		"axis aligned": {New(0, 0), New(2, 0), New(1, 0)},
		"diagonal":     {New(-1, -1), New(1, 1), New(0, 0)},
		"same point":   {New(3, 3), New(3, 3), New(3, 3)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Midpoint(tc.p, tc.q))
		})
	}
}

func TestPoint_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(New(1.5, -2.5))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1.5,"y":-2.5}`, string(data))
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1, 2)", New(1, 2).String())
	assert.Equal(t, "(0.5, -0.25)", New(0.5, -0.25).String())
}

func TestOrigin(t *testing.T) {
	assert.Equal(t, New(0, 0), Origin())
}
