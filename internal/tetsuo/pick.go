package tetsuo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tetsuo/internal/engine/geometry"
	"github.com/Faultbox/tetsuo/internal/engine/picking"
)

// Pick returns the sphere under a pointer given in normalised device
// coordinates, or nil. Glow shells are ignored.
func (c *Composition) Pick(ndc mgl32.Vec2) *Sphere {
	s, _ := c.pickSphere(c.ray(ndc))
	return s
}

// Hover names the nearest object under the pointer: a sphere name, the
// title node's name, or "" when nothing is hit.
func (c *Composition) Hover(ndc mgl32.Vec2) string {
	ray := c.ray(ndc)
	name := ""
	s, best := c.pickSphere(ray)
	if s != nil {
		name = s.Name
	}
	if c.Title != nil {
		t, hit := ray.IntersectBox(c.titleBox())
		if hit && (s == nil || t < best) {
			name = c.Title.Name
		}
	}
	return name
}

func (c *Composition) ray(ndc mgl32.Vec2) picking.Ray {
	inv := c.Camera.Projection().Mul4(c.Camera.ViewMatrix()).Inv()
	return picking.FromNDC(ndc, inv)
}

func (c *Composition) pickSphere(ray picking.Ray) (*Sphere, float32) {
	var (
		best  *Sphere
		bestT float32
	)
	for _, s := range c.Spheres {
		t, hit := ray.IntersectSphere(s.Node.WorldPosition(), SphereRadius)
		if hit && (best == nil || t < bestT) {
			best, bestT = s, t
		}
	}
	return best, bestT
}

// titleBox is the title's bounds in world space. The title node is only
// ever translated.
func (c *Composition) titleBox() geometry.Box {
	b := c.Title.Mesh.Geometry.Bounds
	p := c.Title.WorldPosition()
	return geometry.Box{Min: b.Min.Add(p), Max: b.Max.Add(p)}
}
