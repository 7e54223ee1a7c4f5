package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// NewSphere builds a UV sphere centred at the origin. Rows run from the +Y
// pole (row 0) to the -Y pole; each row has widthSegments+1 vertices so the
// seam is duplicated. Degenerate pole triangles are skipped.
func NewSphere(radius float32, widthSegments, heightSegments int) *Geometry {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	g := &Geometry{
		Vertices: make([]Vertex, 0, (widthSegments+1)*(heightSegments+1)),
	}

	grid := make([][]uint32, heightSegments+1)
	var index uint32
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		sinTheta, cosTheta := math32.Sincos(v * math32.Pi)

		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			sinPhi, cosPhi := math32.Sincos(u * 2 * math32.Pi)

			n := mgl32.Vec3{-cosPhi * sinTheta, cosTheta, sinPhi * sinTheta}
			g.Vertices = append(g.Vertices, Vertex{
				Position: n.Mul(radius),
				Normal:   n,
			})
			row[ix] = index
			index++
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}

	g.ComputeBoundingBox()
	return g
}
