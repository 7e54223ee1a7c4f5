package tetsuo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tetsuo/internal/engine/camera"
)

// Surface is the render target resized alongside the camera.
type Surface interface {
	SetSize(width, height int)
}

// Viewport keeps the camera and render surface in step with the window.
type Viewport struct {
	Camera   *camera.Perspective
	Surface  Surface
	Controls *camera.OrbitControls // nil unless orbit controls are enabled

	width, height int
}

// NewViewport creates a viewport. Orbit controls are created when orbit is true.
func NewViewport(cam *camera.Perspective, surface Surface, orbit bool) *Viewport {
	v := &Viewport{Camera: cam, Surface: surface}
	if orbit {
		v.Controls = camera.NewOrbitControls(cam)
	}
	return v
}

// Resize applies a new drawable size. Non-positive sizes, as reported for a
// minimised window, are ignored and Resize returns false.
func (v *Viewport) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	v.width, v.height = width, height
	v.Camera.SetAspect(float32(width) / float32(height))
	if v.Surface != nil {
		v.Surface.SetSize(width, height)
	}
	return true
}

// Size returns the last applied size.
func (v *Viewport) Size() (int, int) {
	return v.width, v.height
}

// Drag forwards a pointer drag to the orbit controls.
func (v *Viewport) Drag(dx, dy float32) {
	if v.Controls != nil {
		v.Controls.HandleDrag(dx, dy)
	}
}

// Zoom forwards a wheel movement to the orbit controls.
func (v *Viewport) Zoom(delta float32) {
	if v.Controls != nil {
		v.Controls.HandleZoom(delta)
	}
}

// Pan forwards a pointer drag that moves the orbit target. The controls
// ignore it unless panning has been enabled.
func (v *Viewport) Pan(dx, dy float32) {
	if v.Controls != nil {
		v.Controls.HandlePan(dx, dy)
	}
}

// Update applies pending control input. Call once per frame before rendering.
func (v *Viewport) Update() {
	if v.Controls != nil {
		v.Controls.Update()
	}
}

// NormalizePointer converts window coordinates in a w x h window to
// normalised device coordinates, x and y in [-1, 1] with +y up.
func NormalizePointer(x, y, w, h int) mgl32.Vec2 {
	if w <= 0 || h <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{float32(x)/float32(w)*2 - 1, 1 - float32(y)/float32(h)*2}
}
