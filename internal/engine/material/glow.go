package material

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Glow shading constants shared by the GLSL program and the CPU reference.
const (
	GlowRimBias  = 0.7
	GlowRimPower = 12.0
	GlowStrength = 0.3
)

// Glow is the atmosphere shell material. Light and camera positions are read
// every frame, so the glow follows a moving camera. Its colour is linear but
// written to the framebuffer without encoding.
type Glow struct {
	Color       mgl32.Vec3
	LightSource PositionSource
	Camera      PositionSource
}

// NewGlow returns a glow material lit by light and viewed from camera.
func NewGlow(color uint32, light, camera PositionSource) *Glow {
	return &Glow{Color: Color(color), LightSource: light, Camera: camera}
}

// WithColor returns a copy of g with a different glow colour.
func (g *Glow) WithColor(color uint32) *Glow {
	c := *g
	c.Color = Color(color)
	return &c
}

// State implements Material. Only back faces are drawn so the glow shows as
// a rim past the silhouette of the sphere it surrounds.
func (g *Glow) State() State {
	return State{Side: BackSide, Blending: AdditiveBlending, Transparent: true}
}

// GlowLighting is 0 when the surface faces directly away from the light and
// 1 once it faces the light at all. lightDir points from the surface to the light.
func GlowLighting(lightDir, normal mgl32.Vec3) float32 {
	return mgl32.Clamp(lightDir.Dot(normal)+1, 0, 1)
}

// GlowRim peaks at silhouette edges. camDir points from the surface to the
// camera. The base is clamped at zero, so surfaces turned toward the camera
// past the rim bias contribute nothing.
func GlowRim(normal, camDir mgl32.Vec3) float32 {
	base := math32.Max(GlowRimBias-normal.Dot(camDir), 0)
	return math32.Pow(base, GlowRimPower)
}

// GlowIntensity combines the rim and lighting terms.
func GlowIntensity(normal, camDir, lightDir mgl32.Vec3) float32 {
	return GlowRim(normal, camDir) * GlowLighting(lightDir, normal)
}

// GlowFragment is the output colour for a given intensity. Alpha is always 1;
// additive blending makes black contribute nothing.
func GlowFragment(color mgl32.Vec3, intensity float32) mgl32.Vec4 {
	return color.Mul(intensity * GlowStrength).Vec4(1)
}

// GlowVertexIntensity evaluates the vertex stage for one vertex: normal and
// positions are moved into view space before the terms are computed.
func GlowVertexIntensity(model, view mgl32.Mat4, position, normal, lightWorld, cameraWorld mgl32.Vec3) float32 {
	modelView := view.Mul4(model)
	normalMatrix := modelView.Mat3().Inv().Transpose()

	n := normalMatrix.Mul3x1(normal).Normalize()
	p := modelView.Mul4x1(position.Vec4(1)).Vec3()
	light := view.Mul4x1(lightWorld.Vec4(1)).Vec3()
	cam := view.Mul4x1(cameraWorld.Vec4(1)).Vec3()

	return GlowIntensity(n, cam.Sub(p).Normalize(), light.Sub(p).Normalize())
}
