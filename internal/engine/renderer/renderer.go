// Package renderer draws a scene graph with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/tetsuo/internal/engine/camera"
	"github.com/Faultbox/tetsuo/internal/engine/geometry"
	"github.com/Faultbox/tetsuo/internal/engine/lighting"
	"github.com/Faultbox/tetsuo/internal/engine/material"
	"github.com/Faultbox/tetsuo/internal/engine/material/shaders"
	"github.com/Faultbox/tetsuo/internal/engine/scene"
	"github.com/Faultbox/tetsuo/internal/engine/shader"
	"github.com/Faultbox/tetsuo/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor mgl32.Vec3
}

// Renderer draws scenes. All methods must be called on the thread that owns
// the GL context.
type Renderer struct {
	config Config

	phong      *shader.Program
	glow       *shader.Program
	background *shader.Program

	meshes map[*geometry.Geometry]*gpuMesh

	bgVAO      uint32
	bgTexture  uint32
	bgRevision int

	items   []scene.Item
	lights  lighting.Uniforms
	skipped map[string]bool
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:  cfg,
		meshes:  make(map[*geometry.Geometry]*gpuMesh),
		skipped: make(map[string]bool),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.FrontFace(gl.CCW)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1)

	var err error
	if r.phong, err = shader.Compile("phong", shaders.PhongVertexShader, shaders.PhongFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.glow, err = shader.Compile("glow", shaders.GlowVertexShader, shaders.GlowFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.background, err = shader.Compile("background", shaders.BackgroundVertexShader, shaders.BackgroundFragmentShader); err != nil {
		r.Close()
		return nil, err
	}

	// The background triangle is generated from gl_VertexID, but core
	// profiles still need a VAO bound to draw.
	gl.GenVertexArrays(1, &r.bgVAO)

	r.SetSize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases every GL resource the renderer owns.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for g, m := range r.meshes {
		m.delete()
		delete(r.meshes, g)
	}
	deleteTexture(r.bgTexture)
	r.bgTexture = 0
	if r.bgVAO != 0 {
		gl.DeleteVertexArrays(1, &r.bgVAO)
		r.bgVAO = 0
	}
	for _, p := range []*shader.Program{r.phong, r.glow, r.background} {
		if p != nil {
			p.Delete()
		}
	}
}

// SetSize resizes the render surface.
func (r *Renderer) SetSize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current render surface size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// ReadPixels returns the back buffer as RGBA rows, bottom row first.
// Call it after Render and before the buffers are swapped.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Render draws one frame: background, opaque meshes, then transparent meshes.
func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := cam.ViewMatrix()
	proj := cam.Projection()

	r.drawBackground(s, cam)

	r.items = s.Collect(r.items[:0])
	opaque, transparent := scene.SortForDraw(r.items, cam.Position)

	s.Lights.Pack(&r.lights)
	r.phong.Use()
	r.phong.SetMat4("uView", view)
	r.phong.SetMat4("uProjection", proj)
	r.phong.SetVec3("uCameraPos", cam.Position)
	r.phong.SetVec3("uAmbient", r.lights.Ambient)
	r.phong.SetInt("uDirLightCount", r.lights.DirectionalCount)
	r.phong.SetVec3Array("uDirLightDirections", r.lights.DirectionalDirections)
	r.phong.SetVec3Array("uDirLightColors", r.lights.DirectionalColors)
	r.phong.SetInt("uPointLightCount", r.lights.PointCount)
	r.phong.SetVec3Array("uPointLightPositions", r.lights.PointPositions)
	r.phong.SetVec3Array("uPointLightColors", r.lights.PointColors)

	for _, it := range opaque {
		r.draw(it, view, proj)
	}

	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
	for _, it := range transparent {
		r.draw(it, view, proj)
	}
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (r *Renderer) draw(it scene.Item, view, proj mgl32.Mat4) {
	mesh, err := r.mesh(it.Mesh.Geometry)
	if err != nil {
		r.skip(it.Node.Name, err.Error())
		return
	}

	switch m := it.Mesh.Material.(type) {
	case *material.Phong:
		r.phong.Use()
		r.phong.SetMat4("uModel", it.World)
		r.phong.SetMat3("uNormalMatrix", scene.NormalMatrix(it.World))
		r.phong.SetVec3("uColor", m.Color)
		r.phong.SetVec3("uEmissive", m.EmissiveRadiance())
		r.phong.SetVec3("uSpecular", m.Specular)
		r.phong.SetFloat("uShininess", m.Shininess)
	case *material.Glow:
		r.glow.Use()
		r.glow.SetMat4("uModel", it.World)
		r.glow.SetMat4("uView", view)
		r.glow.SetMat4("uProjection", proj)
		r.glow.SetMat3("uNormalMatrix", scene.NormalMatrix(view.Mul4(it.World)))
		r.glow.SetVec3("uLightSourcePos", m.LightSource.WorldPosition())
		r.glow.SetVec3("uCamPos", m.Camera.WorldPosition())
		r.glow.SetVec3("uGlowColor", m.Color)
	default:
		r.skip(it.Node.Name, fmt.Sprintf("unsupported material %T", m))
		return
	}

	applyState(it.Mesh.Material.State())
	mesh.draw()
}

// skip logs a mesh that cannot be drawn, once per node name.
func (r *Renderer) skip(name, reason string) {
	if r.skipped[name] {
		return
	}
	r.skipped[name] = true
	logger.Warn("skipping mesh", zap.String("node", name), zap.String("reason", reason))
}

func applyState(s material.State) {
	switch s.Side {
	case material.FrontSide:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case material.BackSide:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}

	if s.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	if s.Transparent {
		src, dst := blendFactors(s.Blending)
		gl.BlendFunc(src, dst)
	}
}

func blendFactors(b material.Blending) (uint32, uint32) {
	if b == material.AdditiveBlending {
		return gl.SRC_ALPHA, gl.ONE
	}
	return gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA
}

func (r *Renderer) drawBackground(s *scene.Scene, cam *camera.Perspective) {
	bg, rev := s.Background()
	if rev != r.bgRevision {
		deleteTexture(r.bgTexture)
		r.bgTexture = 0
		r.bgRevision = rev
		if bg != nil {
			tex, err := uploadTexture(bg.Image)
			if err != nil {
				logger.Warn("background upload failed", zap.Error(err))
			} else {
				r.bgTexture = tex
				logger.Debug("background uploaded",
					zap.Int("width", bg.Image.Width),
					zap.Int("height", bg.Image.Height))
			}
		}
	}
	if bg == nil || r.bgTexture == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.DepthMask(false)

	r.background.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.bgTexture)
	r.background.SetInt("uTexture", 0)
	r.background.SetInt("uMode", backgroundMode(bg.Mode))
	r.background.SetMat4("uInvViewProj", cam.SkyInverse())

	gl.BindVertexArray(r.bgVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)
}

// backgroundMode maps to the MODE_* constants of background.frag.
func backgroundMode(m scene.BackgroundMode) int32 {
	if m == scene.BackgroundEquirect {
		return 1
	}
	return 0
}
