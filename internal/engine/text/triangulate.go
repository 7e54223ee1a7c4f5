package text

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// triangulate returns the outline of s with its holes bridged in, and the
// counter-clockwise triangles covering it as index triples into that outline.
func triangulate(s Shape) ([]mgl64.Vec2, []int) {
	poly := mergeHoles(s.Outer, s.Holes)
	return poly, earClip(poly)
}

func cross(o, a, b mgl64.Vec2) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

func distSq(a, b mgl64.Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

func maxX(poly []mgl64.Vec2) float64 {
	m := math.Inf(-1)
	for _, p := range poly {
		m = math.Max(m, p[0])
	}
	return m
}

// mergeHoles joins every hole to the outer boundary with a zero-width bridge,
// producing one simple polygon. Holes are joined rightmost first; each
// bridge runs from the hole's rightmost vertex to the nearest visible
// vertex of the polygon built so far.
func mergeHoles(outer []mgl64.Vec2, holes [][]mgl64.Vec2) []mgl64.Vec2 {
	poly := append([]mgl64.Vec2(nil), outer...)
	pending := append([][]mgl64.Vec2(nil), holes...)
	sort.SliceStable(pending, func(a, b int) bool {
		return maxX(pending[a]) > maxX(pending[b])
	})

	for len(pending) > 0 {
		hole := pending[0]
		pending = pending[1:]
		if len(hole) < 3 {
			continue
		}

		m := 0
		for i, p := range hole {
			if p[0] > hole[m][0] {
				m = i
			}
		}
		v := bridgeVertex(poly, hole, m, pending)
		if v < 0 {
			continue
		}

		merged := make([]mgl64.Vec2, 0, len(poly)+len(hole)+2)
		merged = append(merged, poly[:v+1]...)
		for k := 0; k <= len(hole); k++ {
			merged = append(merged, hole[(m+k)%len(hole)])
		}
		merged = append(merged, poly[v])
		merged = append(merged, poly[v+1:]...)
		poly = merged
	}
	return poly
}

// bridgeVertex returns the index of the poly vertex closest to hole[m] that
// can be joined to it without crossing any boundary, or -1 if none can.
func bridgeVertex(poly, hole []mgl64.Vec2, m int, others [][]mgl64.Vec2) int {
	from := hole[m]
	order := make([]int, len(poly))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return distSq(from, poly[order[a]]) < distSq(from, poly[order[b]])
	})

	for _, i := range order {
		to := poly[i]
		if to == from || crossesAny(from, to, poly) || crossesAny(from, to, hole) {
			continue
		}
		blocked := false
		for _, o := range others {
			if crossesAny(from, to, o) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		mid := midpoint(from, to)
		if pointInPolygon(mid, hole) || !pointInPolygon(mid, poly) {
			continue
		}
		return i
	}
	return -1
}

// crossesAny reports whether segment pq properly crosses an edge of poly.
// Touching at an endpoint does not count.
func crossesAny(p, q mgl64.Vec2, poly []mgl64.Vec2) bool {
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		d1, d2 := cross(p, q, a), cross(p, q, b)
		d3, d4 := cross(a, b, p), cross(a, b, q)
		if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
			((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
			return true
		}
	}
	return false
}

// earClip triangulates a counter-clockwise simple polygon, which may contain
// the repeated vertices of hole bridges. Only convex ears are emitted; when
// no ear exists the flattest remaining vertex is dropped.
func earClip(poly []mgl64.Vec2) []int {
	if len(poly) < 3 {
		return nil
	}
	idx := make([]int, len(poly))
	for i := range idx {
		idx[i] = i
	}

	tris := make([]int, 0, (len(poly)-2)*3)
	i, misses := 0, 0
	for len(idx) > 3 {
		n := len(idx)
		i %= n
		a, b, c := idx[(i+n-1)%n], idx[i], idx[(i+1)%n]
		if isEar(poly, idx, a, b, c) {
			tris = append(tris, a, b, c)
			idx = append(idx[:i], idx[i+1:]...)
			misses = 0
			continue
		}
		i++
		misses++
		if misses >= n {
			idx = dropFlattest(poly, idx)
			misses = 0
		}
	}
	if cross(poly[idx[0]], poly[idx[1]], poly[idx[2]]) > 0 {
		tris = append(tris, idx...)
	}
	return tris
}

func isEar(poly []mgl64.Vec2, idx []int, a, b, c int) bool {
	pa, pb, pc := poly[a], poly[b], poly[c]
	if cross(pa, pb, pc) <= 0 {
		return false
	}
	for _, k := range idx {
		if k == a || k == b || k == c {
			continue
		}
		p := poly[k]
		if p == pa || p == pb || p == pc {
			continue
		}
		if cross(pa, pb, p) >= 0 && cross(pb, pc, p) >= 0 && cross(pc, pa, p) >= 0 {
			return false
		}
	}
	return true
}

func dropFlattest(poly []mgl64.Vec2, idx []int) []int {
	n := len(idx)
	best, bestArea := 0, math.Inf(1)
	for i := range idx {
		area := math.Abs(cross(poly[idx[(i+n-1)%n]], poly[idx[i]], poly[idx[(i+1)%n]]))
		if area < bestArea {
			best, bestArea = i, area
		}
	}
	return append(idx[:best], idx[best+1:]...)
}
