package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitControls moves a camera over a sphere around a target in response to
// mouse drags. Input is accumulated and applied once per frame by Update.
type OrbitControls struct {
	Camera *Perspective
	Target mgl32.Vec3

	EnableRotate bool
	EnablePan    bool
	EnableZoom   bool

	// Radians per pixel of drag.
	DragSensitivity float32
	ZoomSensitivity float32
	PanSensitivity  float32

	MinDistance float32
	MaxDistance float32
	MaxPitch    float32 // elevation limit either side of the horizon

	dYaw, dPitch float32
	zoom         float32
	pan          mgl32.Vec2
}

// NewOrbitControls creates controls orbiting cam around the origin with
// rotation enabled and pan and zoom disabled.
func NewOrbitControls(cam *Perspective) *OrbitControls {
	return &OrbitControls{
		Camera:          cam,
		EnableRotate:    true,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		PanSensitivity:  0.002,
		MinDistance:     1,
		MaxDistance:     5000,
		MaxPitch:        math32.Pi/2 - 0.01,
	}
}

// HandleDrag queues a rotation for a mouse drag of dx, dy pixels.
func (o *OrbitControls) HandleDrag(dx, dy float32) {
	if !o.EnableRotate {
		return
	}
	o.dYaw -= dx * o.DragSensitivity
	o.dPitch += dy * o.DragSensitivity
}

// HandleZoom queues a dolly for a scroll of delta notches.
func (o *OrbitControls) HandleZoom(delta float32) {
	if !o.EnableZoom {
		return
	}
	o.zoom += delta
}

// HandlePan queues a sideways move of the target for a drag of dx, dy pixels.
func (o *OrbitControls) HandlePan(dx, dy float32) {
	if !o.EnablePan {
		return
	}
	o.pan = o.pan.Add(mgl32.Vec2{dx, dy})
}

// Update applies queued input to the camera and aims it at the target.
// It reports whether the camera moved.
func (o *OrbitControls) Update() bool {
	moved := o.dYaw != 0 || o.dPitch != 0 || o.zoom != 0 || o.pan != (mgl32.Vec2{})

	offset := o.Camera.Position.Sub(o.Target)
	distance := offset.Len()
	if distance == 0 {
		distance = o.MinDistance
		offset = mgl32.Vec3{0, 0, distance}
	}
	yaw := math32.Atan2(offset.X(), offset.Z())
	pitch := math32.Asin(mgl32.Clamp(offset.Y()/distance, -1, 1))

	yaw += o.dYaw
	pitch = mgl32.Clamp(pitch+o.dPitch, -o.MaxPitch, o.MaxPitch)
	distance = mgl32.Clamp(distance-o.zoom*distance*o.ZoomSensitivity, o.MinDistance, o.MaxDistance)

	if o.pan != (mgl32.Vec2{}) {
		right := mgl32.Vec3{math32.Cos(yaw), 0, -math32.Sin(yaw)}
		up := mgl32.Vec3{0, 1, 0}
		speed := distance * o.PanSensitivity
		o.Target = o.Target.Add(right.Mul(-o.pan.X() * speed)).Add(up.Mul(o.pan.Y() * speed))
	}

	o.Camera.Position = o.Target.Add(mgl32.Vec3{
		distance * math32.Cos(pitch) * math32.Sin(yaw),
		distance * math32.Sin(pitch),
		distance * math32.Cos(pitch) * math32.Cos(yaw),
	})
	o.Camera.LookAt(o.Target)

	o.dYaw, o.dPitch, o.zoom = 0, 0, 0
	o.pan = mgl32.Vec2{}
	return moved
}
