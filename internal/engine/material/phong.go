package material

import "github.com/go-gl/mathgl/mgl32"

// DefaultSpecular matches the dim grey highlight of a classic Phong material.
var DefaultSpecular = Color(0x111111)

// Phong is a Blinn-Phong lit material with an emissive term.
type Phong struct {
	Color             mgl32.Vec3
	Emissive          mgl32.Vec3
	EmissiveIntensity float32
	Specular          mgl32.Vec3
	Shininess         float32
	Wireframe         bool
}

// NewPhong returns a solid Phong material with the default specular colour.
// Colours are given in sRGB and stored linear.
func NewPhong(color, emissive uint32, emissiveIntensity, shininess float32) *Phong {
	return &Phong{
		Color:             Color(color),
		Emissive:          Color(emissive),
		EmissiveIntensity: emissiveIntensity,
		Specular:          DefaultSpecular,
		Shininess:         shininess,
	}
}

// EmissiveRadiance is the emissive colour scaled by its intensity, as uploaded.
func (m *Phong) EmissiveRadiance() mgl32.Vec3 {
	return m.Emissive.Mul(m.EmissiveIntensity)
}

// State implements Material.
func (m *Phong) State() State {
	return State{Side: FrontSide, Blending: NormalBlending, Wireframe: m.Wireframe}
}
