package text

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/freetype/truetype"
)

const flagOnCurve = 1

func onCurve(p truetype.Point) bool { return p.Flags&flagOnCurve != 0 }

func pointVec(p truetype.Point) mgl64.Vec2 {
	return mgl64.Vec2{float64(p.X), float64(p.Y)}
}

func midpoint(a, b mgl64.Vec2) mgl64.Vec2 {
	return a.Add(b).Mul(0.5)
}

type outlinePoint struct {
	v  mgl64.Vec2
	on bool
}

// flatten converts one TrueType contour of on-curve points and quadratic
// control points into a closed polygon. Each curve becomes segments lines.
// Two consecutive control points imply an on-curve point halfway between them.
func flatten(points []truetype.Point, segments int) []mgl64.Vec2 {
	n := len(points)
	if n == 0 {
		return nil
	}
	if segments < 1 {
		segments = 1
	}

	// Walk from an on-curve point. A contour made only of control points
	// starts at the implied point between the last and the first.
	start := -1
	for i, p := range points {
		if onCurve(p) {
			start = i
			break
		}
	}
	var first mgl64.Vec2
	seq := make([]outlinePoint, 0, n+1)
	if start >= 0 {
		first = pointVec(points[start])
		for k := 1; k <= n; k++ {
			p := points[(start+k)%n]
			seq = append(seq, outlinePoint{pointVec(p), onCurve(p)})
		}
	} else {
		first = midpoint(pointVec(points[n-1]), pointVec(points[0]))
		for _, p := range points {
			seq = append(seq, outlinePoint{pointVec(p), false})
		}
		seq = append(seq, outlinePoint{first, true})
	}

	out := []mgl64.Vec2{first}
	cur := first
	var ctrl mgl64.Vec2
	hasCtrl := false
	for _, p := range seq {
		if p.on {
			if hasCtrl {
				out = appendQuad(out, cur, ctrl, p.v, segments)
				hasCtrl = false
			} else {
				out = append(out, p.v)
			}
			cur = p.v
			continue
		}
		if hasCtrl {
			m := midpoint(ctrl, p.v)
			out = appendQuad(out, cur, ctrl, m, segments)
			cur = m
		}
		ctrl, hasCtrl = p.v, true
	}

	return dedupe(out)
}

// appendQuad appends the points of a quadratic Bezier after p0, ending at p2.
func appendQuad(out []mgl64.Vec2, p0, p1, p2 mgl64.Vec2, segments int) []mgl64.Vec2 {
	for s := 1; s <= segments; s++ {
		t := float64(s) / float64(segments)
		u := 1 - t
		out = append(out, p0.Mul(u*u).Add(p1.Mul(2*u*t)).Add(p2.Mul(t*t)))
	}
	return out
}

// dedupe drops repeated consecutive points, including the closing point
// when it repeats the first.
func dedupe(pts []mgl64.Vec2) []mgl64.Vec2 {
	out := pts[:0]
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// signedArea is positive for counter-clockwise polygons.
func signedArea(poly []mgl64.Vec2) float64 {
	var sum float64
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		sum += a[0]*b[1] - b[0]*a[1]
	}
	return sum / 2
}

// withWinding returns poly in counter-clockwise order when ccw is true and
// clockwise order otherwise. The input is never modified.
func withWinding(poly []mgl64.Vec2, ccw bool) []mgl64.Vec2 {
	out := append([]mgl64.Vec2(nil), poly...)
	if (signedArea(out) > 0) != ccw {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// pointInPolygon uses the even-odd rule.
func pointInPolygon(p mgl64.Vec2, poly []mgl64.Vec2) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a[1] > p[1]) != (b[1] > p[1]) &&
			p[0] < (b[0]-a[0])*(p[1]-a[1])/(b[1]-a[1])+a[0] {
			inside = !inside
		}
	}
	return inside
}

// Shape is a filled region: one outer boundary, counter-clockwise, and the
// holes cut out of it, clockwise.
type Shape struct {
	Outer []mgl64.Vec2
	Holes [][]mgl64.Vec2
}

// groupContours sorts a glyph's contours into shapes by nesting depth:
// contours inside an even number of others are filled, the rest are holes
// of the smallest filled contour around them. Font winding conventions are
// not relied on.
func groupContours(contours [][]mgl64.Vec2) []Shape {
	n := len(contours)
	depth := make([]int, n)
	for i := range contours {
		for j := range contours {
			if i != j && pointInPolygon(contours[i][0], contours[j]) {
				depth[i]++
			}
		}
	}

	shapeOf := make(map[int]int)
	var shapes []Shape
	for i, c := range contours {
		if depth[i]%2 == 0 {
			shapeOf[i] = len(shapes)
			shapes = append(shapes, Shape{Outer: withWinding(c, true)})
		}
	}

	for i, c := range contours {
		if depth[i]%2 == 0 {
			continue
		}
		parent, parentArea := -1, 0.0
		for j := range contours {
			if depth[j] != depth[i]-1 || !pointInPolygon(c[0], contours[j]) {
				continue
			}
			area := abs(signedArea(contours[j]))
			if parent < 0 || area < parentArea {
				parent, parentArea = j, area
			}
		}
		if parent < 0 {
			continue
		}
		s := &shapes[shapeOf[parent]]
		s.Holes = append(s.Holes, withWinding(c, false))
	}
	return shapes
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
