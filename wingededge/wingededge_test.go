package wingededge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikenye/voronoi/point"
)

func TestEdge_AttachVertex(t *testing.T) {
	w := New()
	a := w.AddPolygon(point.New(0, 0), 0)
	b := w.AddPolygon(point.New(2, 0), 1)
	e := w.AddEdge(a, b)

	require.Nil(t, e.Start())
	require.Nil(t, e.End())

	v1 := w.AddVertex(point.New(1, 1))
	v2 := w.AddVertex(point.New(1, -1))

	e.AttachVertex(v1)
	assert.Same(t, v1, e.Start(), "first attachment fills the start")
	assert.Nil(t, e.End())
	assert.Equal(t, []*Edge{e}, v1.Edges())

	e.AttachVertex(v2)
	assert.Same(t, v2, e.End(), "second attachment fills the end")
	assert.Equal(t, []*Edge{e}, v2.Edges())
}

func TestEdge_ZeroLength(t *testing.T) {
	w := New()
	a := w.AddPolygon(point.New(0, 0), 0)
	b := w.AddPolygon(point.New(2, 0), 1)

	t.Run("coincident finite endpoints", func(t *testing.T) {
		e := w.AddEdge(a, b)
		e.AttachVertex(w.AddVertex(point.New(1, 1)))
		e.AttachVertex(w.AddVertex(point.New(1, 1)))
		assert.True(t, e.ZeroLength())
	})

	t.Run("distinct endpoints", func(t *testing.T) {
		e := w.AddEdge(a, b)
		e.AttachVertex(w.AddVertex(point.New(1, 1)))
		e.AttachVertex(w.AddVertex(point.New(1, 2)))
		assert.False(t, e.ZeroLength())
	})

	t.Run("open edge", func(t *testing.T) {
		e := w.AddEdge(a, b)
		assert.False(t, e.ZeroLength())
	})

	t.Run("infinite end", func(t *testing.T) {
		e := w.AddEdge(a, b)
		e.AttachVertex(w.AddVertex(point.New(0, 0)))
		e.AttachVertex(w.AddVertexAtInfinity(point.New(0, 0).Add(point.New(0, 1))))
		assert.False(t, e.ZeroLength())
	})
}

func TestEdge_SharedVertexAndOtherPoly(t *testing.T) {
	w := New()
	a := w.AddPolygon(point.New(0, 0), 0)
	b := w.AddPolygon(point.New(2, 0), 1)
	c := w.AddPolygon(point.New(1, 2), 2)

	v := w.AddVertex(point.New(1, 1))
	e1 := w.AddEdge(a, b)
	e2 := w.AddEdge(b, c)
	e1.AttachVertex(v)
	e2.AttachVertex(v)

	assert.Same(t, v, e1.sharedVertex(e2))
	assert.Same(t, b, e1.otherPoly(a))
	assert.Same(t, a, e1.otherPoly(b))
	assert.Nil(t, e1.otherPoly(c))
}

func TestAddVertexAtInfinity_Normalizes(t *testing.T) {
	w := New()
	v := w.AddVertexAtInfinity(point.New(3, 4))
	assert.True(t, v.AtInfinity())
	assert.InDelta(t, 1.0, v.Point().Magnitude(), 1e-12)
}

func TestPolygon_EdgeListSurgery(t *testing.T) {
	w := New()
	a := w.AddPolygon(point.New(0, 0), 0)
	b := w.AddPolygon(point.New(2, 0), 1)

	e1 := w.AddEdge(a, b)
	e2 := w.AddEdge(a, b)
	e3 := w.AddEdge(a, b)
	require.Equal(t, []*Edge{e1, e2, e3}, a.Edges())

	a.removeEdge(e2)
	assert.Equal(t, []*Edge{e1, e3}, a.Edges())

	a.insertEdgeAt(e2, 1)
	assert.Equal(t, []*Edge{e1, e2, e3}, a.Edges())

	a.insertEdgeAt(e2, len(a.edges))
	assert.Equal(t, []*Edge{e1, e2, e3, e2}, a.Edges(), "insert at end appends")
}

// bigon builds the smallest valid winged-edge by hand: two cells separated
// by two edges between two shared vertices.
func bigon() (*WingedEdge, *Polygon, *Polygon, *Edge, *Edge) {
	v1 := &Vertex{pt: point.New(0, 0)}
	v2 := &Vertex{pt: point.New(1, 0)}
	pa := &Polygon{site: point.New(0.5, 1), hasSite: true, index: 0}
	pb := &Polygon{site: point.New(0.5, -1), hasSite: true, index: 1}
	e1 := &Edge{start: v1, end: v2, polyLeft: pa, polyRight: pb}
	e2 := &Edge{start: v2, end: v1, polyLeft: pb, polyRight: pa}
	v1.edges = []*Edge{e1, e2}
	v2.edges = []*Edge{e1, e2}
	pa.edges = []*Edge{e1, e2}
	pb.edges = []*Edge{e1, e2}
	w := &WingedEdge{
		polygons: []*Polygon{pa, pb},
		edges:    []*Edge{e1, e2},
		vertices: []*Vertex{v1, v2},
	}
	return w, pa, pb, e1, e2
}

func TestValidate(t *testing.T) {
	t.Run("valid structure", func(t *testing.T) {
		w, _, _, _, _ := bigon()
		assert.NoError(t, w.Validate())
	})

	t.Run("edge missing from vertex ring", func(t *testing.T) {
		w, _, _, e1, _ := bigon()
		e1.start.edges = e1.start.edges[1:]
		err := w.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidWingedEdge)
	})

	t.Run("same cell on both sides", func(t *testing.T) {
		w, pa, _, e1, _ := bigon()
		e1.polyRight = pa
		err := w.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidWingedEdge)
	})

	t.Run("edge missing from a cell", func(t *testing.T) {
		w, _, pb, e1, _ := bigon()
		pb.edges = []*Edge{e1.cwSucc} // drop everything real
		err := w.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidWingedEdge)
	})

	t.Run("open endpoint", func(t *testing.T) {
		w, _, _, e1, _ := bigon()
		e1.end = nil
		err := w.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidWingedEdge)
	})
}

func TestCWSpanContains(t *testing.T) {
	deg := func(d float64) float64 { return d * math.Pi / 180 }
	tests := map[string]struct {
		from, to, q float64
		expected    bool
	}{
		"simple descent contains":     {deg(90), deg(0), deg(45), true},
		"simple descent excludes":     {deg(90), deg(0), deg(135), false},
		"wrapping span contains":      {deg(-135), deg(135), deg(180), true},
		"wrapping span excludes":      {deg(-135), deg(135), deg(0), false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, cwSpanContains(tc.from, tc.to, tc.q))
		})
	}
}
