// Package tetsuo assembles the landing scene: three spinning pivots carrying
// six coloured spheres and two glow shells, a light rig, a camera and the
// extruded title that arrives once its font has loaded.
package tetsuo

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/tetsuo/internal/config"
	"github.com/Faultbox/tetsuo/internal/engine/camera"
	"github.com/Faultbox/tetsuo/internal/engine/geometry"
	"github.com/Faultbox/tetsuo/internal/engine/lighting"
	"github.com/Faultbox/tetsuo/internal/engine/material"
	"github.com/Faultbox/tetsuo/internal/engine/scene"
	"github.com/Faultbox/tetsuo/internal/engine/texture"
	"github.com/Faultbox/tetsuo/internal/logger"
)

// Sphere and glow parameters.
const (
	SphereRadius         = 8
	SphereWidthSegments  = 32
	SphereHeightSegments = 16
	SphereEmissive       = 0.2
	SphereShininess      = 0.7
	GlowScale            = 1.15
)

// Camera parameters.
const (
	CameraFOV  = 75
	CameraNear = 0.1
	CameraFar  = 1000
)

var (
	CameraPosition = mgl32.Vec3{0, 0, 150}
	CameraTarget   = mgl32.Vec3{0, -1, 0}
)

// Layout selects where each sphere pair sits relative to its pivot.
type Layout int

const (
	// LayoutAxial offsets each pair along its pivot's rotation axis.
	LayoutAxial Layout = iota
	// LayoutOrbital offsets each pair perpendicular to the rotation axis,
	// so the spheres sweep circles around the origin.
	LayoutOrbital
)

// ParseLayout maps a config layout name to a Layout. Unknown names are axial.
func ParseLayout(name string) Layout {
	if name == config.LayoutOrbital {
		return LayoutOrbital
	}
	return LayoutAxial
}

// pivotAxes lists the pivots in animation order.
var pivotAxes = [3]Axis{AxisZ, AxisX, AxisY}

// sphereSpec is one row of the sphere table.
type sphereSpec struct {
	name     string
	axis     Axis // offset axis
	sign     float32
	color    uint32
	emissive uint32
	glow     uint32 // 0 means no glow shell
}

var sphereTable = []sphereSpec{
	{"blue", AxisX, +1, 0x2a47b0, 0x220038, 0x7993db},
	{"red", AxisX, -1, 0xa13927, 0xa24816, 0xd68b74},
	{"purple", AxisY, +1, 0x521da1, 0x7c40d6, 0},
	{"yellow", AxisY, -1, 0xccc72b, 0xe0dc63, 0},
	{"green", AxisZ, -1, 0x3a9421, 0x7bd962, 0},
	{"orange", AxisZ, +1, 0xbd6a22, 0xe09a5c, 0},
}

// pivotFor returns the index of the pivot that carries spheres offset along axis.
func pivotFor(layout Layout, axis Axis) int {
	if layout == LayoutOrbital {
		// Z pivot -> X offsets, X pivot -> Y offsets, Y pivot -> Z offsets.
		return int(axis)
	}
	for i, a := range pivotAxes {
		if a == axis {
			return i
		}
	}
	return 0
}

// Options controls composition.
type Options struct {
	Layout       Layout
	Wireframe    bool
	SphereOffset float32
	TitleText    string
}

// DefaultOptions returns the landing page composition.
func DefaultOptions() Options {
	return Options{Layout: LayoutAxial, SphereOffset: 80, TitleText: "Tetsuo"}
}

// OptionsFromConfig reads composition options from the scene config.
func OptionsFromConfig(cfg config.SceneConfig) Options {
	return Options{
		Layout:       ParseLayout(cfg.Layout),
		Wireframe:    cfg.Wireframe,
		SphereOffset: cfg.SphereOffset,
		TitleText:    cfg.TitleText,
	}
}

// Sphere is a coloured sphere owned by one pivot.
type Sphere struct {
	Name  string
	Node  *scene.Node
	Pivot *Pivot
	Glow  *scene.Node // nil when the sphere has no glow shell
}

// Composition owns the scene and everything the frame loop needs from it.
type Composition struct {
	Scene   *scene.Scene
	Camera  *camera.Perspective
	Pivots  [3]*Pivot
	Spheres []*Sphere
	Title   *scene.Node // nil until the title has attached

	// GlowLight is the light whose position the glow shells are lit from.
	GlowLight *lighting.Directional

	opts    Options
	loads   Loads
	bgMode  scene.BackgroundMode
	ready   chan struct{}
	log     *zap.Logger
	pending int
}

// Loads carries the background work the composition waits on.
// Nil futures are treated as already resolved.
type Loads struct {
	Title          *TitleFuture
	Background     *Future[*texture.Image]
	BackgroundMode scene.BackgroundMode
}

// Compose builds the scene. It never blocks on loads; call Poll once per
// frame to attach their results.
func Compose(opts Options, aspect float32, loads Loads) *Composition {
	c := &Composition{
		Scene: scene.New(),
		opts:  opts,
		loads: loads,
		ready: make(chan struct{}),
		log:   logger.Named("tetsuo"),
	}

	c.Camera = camera.NewPerspective(CameraFOV, aspect, CameraNear, CameraFar)
	c.Camera.Position = CameraPosition
	c.Camera.LookAt(CameraTarget)

	c.addLights()
	c.addSpheres()

	if loads.Title != nil {
		c.pending++
	}
	if loads.Background != nil {
		c.pending++
	}
	if c.pending == 0 {
		close(c.ready)
	}

	c.log.Info("scene composed",
		zap.Int("spheres", len(c.Spheres)),
		zap.Stringer("layout", opts.Layout),
		zap.Bool("wireframe", opts.Wireframe),
		zap.Int("pending", c.pending))
	return c
}

func (c *Composition) addLights() {
	rig := &c.Scene.Lights
	rig.Ambient = lighting.Ambient{Color: material.Color(0xbbbbbb), Intensity: 0.7}
	rig.AddDirectional(&lighting.Directional{
		Color: material.Color(0xffffff), Intensity: 1,
		Position: mgl32.Vec3{-800, 2000, 400},
	})
	c.GlowLight = &lighting.Directional{
		Color: material.Color(0x7982f6), Intensity: 2,
		Position: mgl32.Vec3{-200, 500, 200},
	}
	rig.AddDirectional(c.GlowLight)
	rig.AddPoint(&lighting.Point{
		Color: material.Color(0x8566cc), Intensity: 0.5,
		Position: mgl32.Vec3{-200, 500, 200},
	})
}

func (c *Composition) addSpheres() {
	for i, axis := range pivotAxes {
		c.Pivots[i] = newPivot("pivot-"+axis.String(), axis)
		c.Scene.Add(c.Pivots[i].Node)
	}

	geom := geometry.NewSphere(SphereRadius, SphereWidthSegments, SphereHeightSegments)
	glowBase := material.NewGlow(0xffffff, c.GlowLight, c.Camera)

	for _, row := range sphereTable {
		pivot := c.Pivots[pivotFor(c.opts.Layout, row.axis)]

		mat := material.NewPhong(row.color, row.emissive, SphereEmissive, SphereShininess)
		mat.Wireframe = c.opts.Wireframe

		node := scene.NewMeshNode(row.name, geom, mat)
		node.Position = row.axis.Vec().Mul(row.sign * c.opts.SphereOffset)
		pivot.Node.Add(node)

		s := &Sphere{Name: row.name, Node: node, Pivot: pivot}
		if row.glow != 0 {
			s.Glow = scene.NewMeshNode(row.name+"-glow", geom, glowBase.WithColor(row.glow))
			s.Glow.Position = node.Position
			s.Glow.SetScalar(GlowScale)
			pivot.Node.Add(s.Glow)
		}
		c.Spheres = append(c.Spheres, s)
	}
}

// Options returns the options the composition was built with.
func (c *Composition) Options() Options {
	return c.opts
}

// Ready is closed once every load has either attached or failed.
func (c *Composition) Ready() <-chan struct{} {
	return c.ready
}

// Poll attaches any load that finished since the last call. It must run on
// the thread that renders the scene.
func (c *Composition) Poll() {
	if res, ok := c.loads.Title.Poll(); ok {
		if res.Err != nil {
			c.log.Warn("title unavailable", zap.Error(res.Err))
		} else {
			c.attachTitle(res.Value)
		}
		c.resolve()
	}
	if res, ok := c.loads.Background.Poll(); ok {
		if res.Err != nil {
			c.log.Warn("background unavailable", zap.Error(res.Err))
		} else {
			c.Scene.SetBackground(&scene.Background{Image: res.Value, Mode: c.loads.BackgroundMode})
			c.log.Info("background attached",
				zap.Int("width", res.Value.Width), zap.Int("height", res.Value.Height))
		}
		c.resolve()
	}
}

func (c *Composition) resolve() {
	c.pending--
	if c.pending == 0 {
		close(c.ready)
	}
}

func (c *Composition) attachTitle(g *geometry.Geometry) {
	mat := material.NewPhong(0xffffff, 0xffffff, 0.3, 50)
	node := scene.NewMeshNode("title", g, mat)
	node.Position = mgl32.Vec3{CenterOffset(g.Bounds), 0, 0}
	c.Scene.Add(node)
	c.Title = node
	c.log.Info("title attached",
		zap.Int("triangles", g.TriangleCount()),
		zap.Float32("width", g.Bounds.Size().X()))
}

// CenterOffset is the x translation that puts the box's left and right
// edges at equal distance from x = 0.
func CenterOffset(b geometry.Box) float32 {
	if b.Empty() {
		return 0
	}
	return -b.Center().X()
}

func (l Layout) String() string {
	if l == LayoutOrbital {
		return config.LayoutOrbital
	}
	return config.LayoutAxial
}
