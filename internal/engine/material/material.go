// Package material describes surface appearance: Phong lighting for solid
// meshes and an additive rim glow for atmosphere shells.
package material

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Side selects which triangle faces are rasterized.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Blending selects how fragments combine with the framebuffer.
type Blending int

const (
	NormalBlending Blending = iota
	AdditiveBlending
)

// State is the fixed-function state a material needs from the renderer.
type State struct {
	Side        Side
	Blending    Blending
	Transparent bool // drawn after opaque meshes, without depth writes
	Wireframe   bool
}

// Material is implemented by every material the renderer knows how to draw.
type Material interface {
	State() State
}

// PositionSource supplies a world-space position that may change between frames.
type PositionSource interface {
	WorldPosition() mgl32.Vec3
}

// FixedPosition is a PositionSource that never moves.
type FixedPosition mgl32.Vec3

// WorldPosition implements PositionSource.
func (p FixedPosition) WorldPosition() mgl32.Vec3 { return mgl32.Vec3(p) }

// Hex splits a 0xRRGGBB colour into its sRGB-encoded components in [0, 1].
func Hex(rgb uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32((rgb>>16)&0xff) / 255,
		float32((rgb>>8)&0xff) / 255,
		float32(rgb&0xff) / 255,
	}
}

// Color converts a 0xRRGGBB sRGB colour to linear components. Lighting is
// computed on these; the fragment shaders encode the result back to sRGB.
func Color(rgb uint32) mgl32.Vec3 {
	return SRGBToLinear(Hex(rgb))
}

// SRGBToLinear decodes each component with the sRGB transfer function.
func SRGBToLinear(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{srgbDecode(c[0]), srgbDecode(c[1]), srgbDecode(c[2])}
}

func srgbDecode(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}
