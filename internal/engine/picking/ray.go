// Package picking provides ray casting against scene objects.
package picking

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tetsuo/internal/engine/geometry"
)

// Ray is a half-line in world space. Direction is unit length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// FromNDC casts a ray through a point in normalised device coordinates
// (x and y in [-1, 1], +y up). invViewProj is the inverse of projection * view.
func FromNDC(ndc mgl32.Vec2, invViewProj mgl32.Mat4) Ray {
	near := unproject(invViewProj, mgl32.Vec4{ndc.X(), ndc.Y(), -1, 1})
	far := unproject(invViewProj, mgl32.Vec4{ndc.X(), ndc.Y(), 1, 1})

	dir := far.Sub(near)
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	return Ray{Origin: near, Direction: dir}
}

func unproject(inv mgl32.Mat4, clip mgl32.Vec4) mgl32.Vec3 {
	p := inv.Mul4x1(clip)
	if p.W() != 0 {
		return p.Vec3().Mul(1 / p.W())
	}
	return p.Vec3()
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectSphere returns the distance to the nearest hit in front of the
// origin. If the origin is inside the sphere the exit distance is returned.
func (r Ray) IntersectSphere(center mgl32.Vec3, radius float32) (t float32, hit bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	s := math32.Sqrt(disc)
	if t = -b - s; t >= 0 {
		return t, true
	}
	if t = -b + s; t >= 0 {
		return t, true
	}
	return 0, false
}

// IntersectBox is the slab test against an axis-aligned box. If the origin
// is inside the box the exit distance is returned.
func (r Ray) IntersectBox(box geometry.Box) (t float32, hit bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	for i := 0; i < 3; i++ {
		if r.Direction[i] == 0 {
			if r.Origin[i] < box.Min[i] || r.Origin[i] > box.Max[i] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[i] - r.Origin[i]) / r.Direction[i]
		t2 := (box.Max[i] - r.Origin[i]) / r.Direction[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
