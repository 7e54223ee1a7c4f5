// Package scene provides the scene graph: nodes, meshes, lights and the
// background shown behind them.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tetsuo/internal/engine/lighting"
	"github.com/Faultbox/tetsuo/internal/engine/texture"
)

// BackgroundMode selects how the background image is mapped.
type BackgroundMode int

const (
	// BackgroundScreen stretches the image over the viewport.
	BackgroundScreen BackgroundMode = iota
	// BackgroundEquirect treats the image as an equirectangular panorama
	// looked up by view direction.
	BackgroundEquirect
)

// Background is the image drawn behind every mesh.
type Background struct {
	Image *texture.Image
	Mode  BackgroundMode
}

// Scene is the root of everything rendered.
type Scene struct {
	Root   *Node
	Lights lighting.Rig

	background *Background
	revision   int
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{Root: NewNode("root")}
}

// Add attaches nodes to the scene root.
func (s *Scene) Add(nodes ...*Node) {
	s.Root.Add(nodes...)
}

// SetBackground replaces the background. A nil background clears it.
func (s *Scene) SetBackground(bg *Background) {
	s.background = bg
	s.revision++
}

// Background returns the current background and a revision number that
// changes on every SetBackground call.
func (s *Scene) Background() (*Background, int) {
	return s.background, s.revision
}

// Item is a mesh ready to draw.
type Item struct {
	Node  *Node
	Mesh  *Mesh
	World mgl32.Mat4
}

// Collect appends every visible mesh in the scene to dst and returns it.
func (s *Scene) Collect(dst []Item) []Item {
	s.Root.Traverse(func(n *Node, world mgl32.Mat4) {
		if n.Mesh != nil && n.Mesh.Geometry != nil && n.Mesh.Material != nil {
			dst = append(dst, Item{Node: n, Mesh: n.Mesh, World: world})
		}
	})
	return dst
}
