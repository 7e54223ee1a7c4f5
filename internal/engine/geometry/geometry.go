// Package geometry provides CPU-side mesh data: vertices, indices and bounds.
package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a mesh vertex as uploaded to the GPU.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// FloatsPerVertex is the interleaved vertex stride in float32s (position + normal).
const FloatsPerVertex = 6

// Geometry holds indexed triangle data ready for GPU upload.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Box
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyBox returns an inverted box that any Extend call will overwrite.
func EmptyBox() Box {
	return Box{
		Min: mgl32.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: mgl32.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
}

// Empty reports whether the box contains no point.
func (b Box) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Extend grows the box to contain p.
func (b *Box) Extend(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
}

// Size returns the box extent along each axis.
func (b Box) Size() mgl32.Vec3 {
	if b.Empty() {
		return mgl32.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint.
func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// ComputeBoundingBox recomputes and stores Bounds from the vertices.
func (g *Geometry) ComputeBoundingBox() Box {
	g.Bounds = EmptyBox()
	for _, v := range g.Vertices {
		g.Bounds.Extend(v.Position)
	}
	return g.Bounds
}

// Interleave flattens vertices as [px py pz nx ny nz ...].
func (g *Geometry) Interleave() []float32 {
	out := make([]float32, 0, len(g.Vertices)*FloatsPerVertex)
	for _, v := range g.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2], v.Normal[0], v.Normal[1], v.Normal[2])
	}
	return out
}

// TriangleCount returns the number of indexed triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}
