package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSphereCounts(t *testing.T) {
	g := NewSphere(8, 32, 16)

	assert.Len(t, g.Vertices, 33*17)
	// Two triangles per quad, minus one per quad on each pole row.
	assert.Equal(t, 32*16*2-2*32, g.TriangleCount())
	for _, idx := range g.Indices {
		require.Less(t, int(idx), len(g.Vertices))
	}
}

func TestNewSphereNormalsAndRadius(t *testing.T) {
	const radius = 8
	g := NewSphere(radius, 32, 16)

	for i, v := range g.Vertices {
		assert.InDelta(t, 1, v.Normal.Len(), 1e-5, "vertex %d normal", i)
		assert.InDelta(t, radius, v.Position.Len(), 1e-4, "vertex %d radius", i)
	}

	assert.InDelta(t, radius, g.Bounds.Max.Y(), 1e-4)
	assert.InDelta(t, -radius, g.Bounds.Min.Y(), 1e-4)
	assert.InDelta(t, 2*radius, g.Bounds.Size().X(), 1e-3)
	assert.InDelta(t, 0, g.Bounds.Center().Len(), 1e-3)
}

func TestNewSphereWindingFacesOutward(t *testing.T) {
	g := NewSphere(1, 12, 6)

	for i := 0; i < len(g.Indices); i += 3 {
		a := g.Vertices[g.Indices[i]].Position
		b := g.Vertices[g.Indices[i+1]].Position
		c := g.Vertices[g.Indices[i+2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		assert.Greater(t, n.Dot(centroid), float32(0), "triangle %d faces inward", i/3)
	}
}

func TestNewSphereClampsSegments(t *testing.T) {
	g := NewSphere(1, 0, 0)
	assert.Len(t, g.Vertices, 4*3)
	assert.NotZero(t, g.TriangleCount())
}

func TestBox(t *testing.T) {
	b := EmptyBox()
	assert.True(t, b.Empty())
	assert.Equal(t, mgl32.Vec3{}, b.Size())

	b.Extend(mgl32.Vec3{-1, 2, 3})
	b.Extend(mgl32.Vec3{4, -2, 5})
	assert.False(t, b.Empty())
	assert.Equal(t, mgl32.Vec3{-1, -2, 3}, b.Min)
	assert.Equal(t, mgl32.Vec3{4, 2, 5}, b.Max)
	assert.Equal(t, mgl32.Vec3{5, 4, 2}, b.Size())
	assert.Equal(t, mgl32.Vec3{1.5, 0, 4}, b.Center())
}

func TestInterleave(t *testing.T) {
	g := &Geometry{Vertices: []Vertex{
		{Position: mgl32.Vec3{1, 2, 3}, Normal: mgl32.Vec3{0, 0, 1}},
		{Position: mgl32.Vec3{4, 5, 6}, Normal: mgl32.Vec3{0, 1, 0}},
	}}
	assert.Equal(t, []float32{1, 2, 3, 0, 0, 1, 4, 5, 6, 0, 1, 0}, g.Interleave())
}
