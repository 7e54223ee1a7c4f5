package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tetsuo/internal/engine/geometry"
	"github.com/Faultbox/tetsuo/internal/engine/material"
)

// Mesh pairs geometry with the material it is drawn with.
type Mesh struct {
	Geometry *geometry.Geometry
	Material material.Material
}

// Node is an element of the scene graph. A node without a mesh is a pure
// transform, such as a pivot.
type Node struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Visible  bool
	Mesh     *Mesh

	parent   *Node
	children []*Node
}

// NewNode creates an empty, visible node with an identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:     name,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
		Visible:  true,
	}
}

// NewMeshNode creates a node drawing g with m.
func NewMeshNode(name string, g *geometry.Geometry, m material.Material) *Node {
	n := NewNode(name)
	n.Mesh = &Mesh{Geometry: g, Material: m}
	return n
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Add attaches children to n, detaching each from its previous parent.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Remove detaches child from n. Returns false if child was not attached to n.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// RotateOnAxis rotates the node by angle radians about axis, expressed in
// the node's own (local) frame.
func (n *Node) RotateOnAxis(axis mgl32.Vec3, angle float32) {
	q := mgl32.QuatRotate(angle, axis.Normalize())
	n.Rotation = n.Rotation.Mul(q).Normalize()
}

// SetScalar sets a uniform scale.
func (n *Node) SetScalar(s float32) {
	n.Scale = mgl32.Vec3{s, s, s}
}

// LocalMatrix returns translate * rotate * scale.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	s := mgl32.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(n.Rotation.Mat4()).Mul4(s)
}

// WorldMatrix returns the node's transform composed with all its ancestors.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() mgl32.Vec3 {
	return mgl32.TransformCoordinate(mgl32.Vec3{}, n.WorldMatrix())
}

// Traverse calls fn for n and every visible descendant, depth first, with
// each node's world matrix. Invisible nodes are skipped with their subtrees.
func (n *Node) Traverse(fn func(node *Node, world mgl32.Mat4)) {
	var parentWorld mgl32.Mat4
	if n.parent != nil {
		parentWorld = n.parent.WorldMatrix()
	} else {
		parentWorld = mgl32.Ident4()
	}
	n.traverse(parentWorld, fn)
}

func (n *Node) traverse(parentWorld mgl32.Mat4, fn func(*Node, mgl32.Mat4)) {
	if !n.Visible {
		return
	}
	world := parentWorld.Mul4(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.children {
		c.traverse(world, fn)
	}
}

// Find returns the first descendant (or n itself) with the given name.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}
