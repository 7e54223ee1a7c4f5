// Package lighting provides the light sources of a scene and packs them
// into flat arrays for shader upload.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// Shader array sizes; must match MAX_DIR_LIGHTS / MAX_POINT_LIGHTS in phong.frag.
const (
	MaxDirectionalLights = 4
	MaxPointLights       = 4
)

// Ambient light lights every surface equally.
type Ambient struct {
	Color     mgl32.Vec3
	Intensity float32
}

// Radiance returns the colour scaled by intensity.
func (a Ambient) Radiance() mgl32.Vec3 {
	return a.Color.Mul(a.Intensity)
}

// Directional light shines from Position toward Target; only the direction matters.
type Directional struct {
	Color     mgl32.Vec3
	Intensity float32
	Position  mgl32.Vec3
	Target    mgl32.Vec3
}

// Direction returns the unit vector from the lit surface toward the light.
func (d *Directional) Direction() mgl32.Vec3 {
	return d.Position.Sub(d.Target).Normalize()
}

// Radiance returns the colour scaled by intensity.
func (d *Directional) Radiance() mgl32.Vec3 {
	return d.Color.Mul(d.Intensity)
}

// WorldPosition reports the light's placement, used by glow materials.
func (d *Directional) WorldPosition() mgl32.Vec3 {
	return d.Position
}

// Point light radiates from Position in all directions. The phong shader
// scales its radiance by 1/(d*d), bounded near the light.
type Point struct {
	Color     mgl32.Vec3
	Intensity float32
	Position  mgl32.Vec3
}

// Radiance returns the colour scaled by intensity.
func (p *Point) Radiance() mgl32.Vec3 {
	return p.Color.Mul(p.Intensity)
}

// WorldPosition implements material.PositionSource.
func (p *Point) WorldPosition() mgl32.Vec3 {
	return p.Position
}

// Rig holds every light of a scene.
type Rig struct {
	Ambient     Ambient
	Directional []*Directional
	Points      []*Point
}

// AddDirectional adds a directional light. Returns false if the rig is full.
func (r *Rig) AddDirectional(d *Directional) bool {
	if len(r.Directional) >= MaxDirectionalLights {
		return false
	}
	r.Directional = append(r.Directional, d)
	return true
}

// AddPoint adds a point light. Returns false if the rig is full.
func (r *Rig) AddPoint(p *Point) bool {
	if len(r.Points) >= MaxPointLights {
		return false
	}
	r.Points = append(r.Points, p)
	return true
}

// Uniforms is the rig flattened for GPU upload.
// Arrays are always full length; entries past the count are zero.
type Uniforms struct {
	Ambient               mgl32.Vec3
	DirectionalCount      int32
	DirectionalDirections []float32 // [x0, y0, z0, x1, ...]
	DirectionalColors     []float32
	PointCount            int32
	PointPositions        []float32
	PointColors           []float32
}

// Pack flattens the rig into dst, reusing its slices when they are large enough.
func (r *Rig) Pack(dst *Uniforms) {
	dst.Ambient = r.Ambient.Radiance()

	dst.DirectionalDirections = resetFloats(dst.DirectionalDirections, MaxDirectionalLights*3)
	dst.DirectionalColors = resetFloats(dst.DirectionalColors, MaxDirectionalLights*3)
	dst.DirectionalCount = int32(len(r.Directional))
	for i, d := range r.Directional {
		putVec3(dst.DirectionalDirections, i, d.Direction())
		putVec3(dst.DirectionalColors, i, d.Radiance())
	}

	dst.PointPositions = resetFloats(dst.PointPositions, MaxPointLights*3)
	dst.PointColors = resetFloats(dst.PointColors, MaxPointLights*3)
	dst.PointCount = int32(len(r.Points))
	for i, p := range r.Points {
		putVec3(dst.PointPositions, i, p.Position)
		putVec3(dst.PointColors, i, p.Radiance())
	}
}

func resetFloats(s []float32, n int) []float32 {
	if cap(s) < n {
		return make([]float32, n)
	}
	s = s[:n]
	clear(s)
	return s
}

func putVec3(dst []float32, i int, v mgl32.Vec3) {
	dst[i*3+0] = v[0]
	dst[i*3+1] = v[1]
	dst[i*3+2] = v[2]
}
