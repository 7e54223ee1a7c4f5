// Package camera provides the perspective camera and orbit controls.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Perspective is a perspective-projection camera looking at a target.
type Perspective struct {
	FOV    float32 // vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	projection mgl32.Mat4
}

// NewPerspective creates a camera at the origin looking down -Z.
func NewPerspective(fov, aspect, near, far float32) *Perspective {
	c := &Perspective{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: mgl32.Vec3{0, 0, -1},
		Up:     mgl32.Vec3{0, 1, 0},
	}
	c.UpdateProjection()
	return c
}

// SetAspect changes the aspect ratio and refreshes the projection.
func (c *Perspective) SetAspect(aspect float32) {
	c.Aspect = aspect
	c.UpdateProjection()
}

// UpdateProjection recomputes the projection matrix. Call it after changing
// FOV, Aspect, Near or Far directly.
func (c *Perspective) UpdateProjection() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Projection returns the projection matrix as of the last update.
func (c *Perspective) Projection() mgl32.Mat4 {
	return c.projection
}

// LookAt points the camera at target.
func (c *Perspective) LookAt(target mgl32.Vec3) {
	c.Target = target
}

// ViewMatrix returns the world-to-view transform.
func (c *Perspective) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// WorldPosition reports the camera position; glow materials read it every frame.
func (c *Perspective) WorldPosition() mgl32.Vec3 {
	return c.Position
}

// SkyInverse inverts projection * view with the view translation removed.
// It maps a clip-space point to a world-space view direction, so a
// background looked up with it turns with the camera but never moves.
func (c *Perspective) SkyInverse() mgl32.Mat4 {
	rot := c.ViewMatrix().Mat3().Mat4()
	return c.projection.Mul4(rot).Inv()
}
