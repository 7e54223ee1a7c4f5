package text

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/tetsuo/internal/engine/geometry"
)

// Extrude turns flat shapes into a solid: a back cap at z = 0 facing -Z,
// a front cap at z = depth facing +Z and flat-shaded side walls.
func Extrude(shapes []Shape, depth float32) *geometry.Geometry {
	g := &geometry.Geometry{}
	for _, s := range shapes {
		poly, tris := triangulate(s)
		addCaps(g, poly, tris, depth)

		addWalls(g, s.Outer, depth)
		for _, h := range s.Holes {
			addWalls(g, h, depth)
		}
	}
	g.ComputeBoundingBox()
	return g
}

func vec2f(p mgl64.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{float32(p[0]), float32(p[1])}
}

func addCaps(g *geometry.Geometry, poly []mgl64.Vec2, tris []int, depth float32) {
	front := mgl32.Vec3{0, 0, 1}
	back := mgl32.Vec3{0, 0, -1}

	base := uint32(len(g.Vertices))
	for _, p := range poly {
		q := vec2f(p)
		g.Vertices = append(g.Vertices, geometry.Vertex{Position: q.Vec3(depth), Normal: front})
	}
	for _, p := range poly {
		q := vec2f(p)
		g.Vertices = append(g.Vertices, geometry.Vertex{Position: q.Vec3(0), Normal: back})
	}

	n := uint32(len(poly))
	for t := 0; t+2 < len(tris); t += 3 {
		a, b, c := tris[t], tris[t+1], tris[t+2]
		// Slivers can collapse once narrowed to float32.
		pa, pb, pc := vec2f(poly[a]), vec2f(poly[b]), vec2f(poly[c])
		if pb.Sub(pa).Vec3(0).Cross(pc.Sub(pa).Vec3(0)).Z() <= 0 {
			continue
		}
		ia, ib, ic := base+uint32(a), base+uint32(b), base+uint32(c)
		g.Indices = append(g.Indices, ia, ib, ic)
		g.Indices = append(g.Indices, ia+n, ic+n, ib+n)
	}
}

// addWalls adds one quad per contour edge. The outward normal of edge a->b
// is (dy, -dx): outer boundaries run counter-clockwise and holes clockwise,
// so it always points away from the filled region.
func addWalls(g *geometry.Geometry, contour []mgl64.Vec2, depth float32) {
	for i := range contour {
		a, b := vec2f(contour[i]), vec2f(contour[(i+1)%len(contour)])
		d := b.Sub(a)
		if d.Len() == 0 {
			continue
		}
		normal := mgl32.Vec3{d[1], -d[0], 0}.Normalize()

		base := uint32(len(g.Vertices))
		g.Vertices = append(g.Vertices,
			geometry.Vertex{Position: a.Vec3(0), Normal: normal},
			geometry.Vertex{Position: b.Vec3(0), Normal: normal},
			geometry.Vertex{Position: b.Vec3(depth), Normal: normal},
			geometry.Vertex{Position: a.Vec3(depth), Normal: normal},
		)
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
}
