package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/tetsuo/internal/engine/geometry"
	"github.com/Faultbox/tetsuo/internal/engine/material"
	"github.com/Faultbox/tetsuo/internal/engine/texture"
)

// assertVec compares with an absolute tolerance; a relative one fails on
// zero components that carry float32 rounding.
func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, 0, want.Sub(got).Len(), 1e-4, "want %v, got %v", want, got)
}

func TestRotateOnAxisAccumulates(t *testing.T) {
	n := NewNode("pivot")
	for i := 0; i < 100; i++ {
		n.RotateOnAxis(mgl32.Vec3{0, 0, 1}, 0.01)
	}
	want := mgl32.QuatRotate(1, mgl32.Vec3{0, 0, 1})
	assert.True(t, n.Rotation.ApproxEqualThreshold(want, 1e-5), "got %v", n.Rotation)
}

func TestRotateOnAxisIsLocal(t *testing.T) {
	n := NewNode("n")
	n.RotateOnAxis(mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(90))
	n.RotateOnAxis(mgl32.Vec3{1, 0, 0}, mgl32.DegToRad(90))

	// Local X after the Y turn is world -Z: +Y goes to +Z, then to +X.
	assertVec(t, mgl32.Vec3{1, 0, 0}, n.Rotation.Rotate(mgl32.Vec3{0, 1, 0}))
}

func TestWorldMatrixComposesParents(t *testing.T) {
	pivot := NewNode("pivot")
	child := NewNode("child")
	child.Position = mgl32.Vec3{80, 0, 0}
	pivot.Add(child)

	pivot.RotateOnAxis(mgl32.Vec3{0, 0, 1}, mgl32.DegToRad(90))
	assertVec(t, mgl32.Vec3{0, 80, 0}, child.WorldPosition())

	root := NewNode("root")
	root.Position = mgl32.Vec3{0, 0, -10}
	root.Add(pivot)
	assertVec(t, mgl32.Vec3{0, 80, -10}, child.WorldPosition())
}

func TestAssertVecToleratesRoundingNearZero(t *testing.T) {
	q := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1})
	got := q.Rotate(mgl32.Vec3{80, 0, 0})
	assertVec(t, mgl32.Vec3{0, 80, 0}, got)
}

func TestLocalMatrixScale(t *testing.T) {
	n := NewNode("n")
	n.SetScalar(1.15)
	n.Position = mgl32.Vec3{1, 2, 3}
	p := mgl32.TransformCoordinate(mgl32.Vec3{8, 0, 0}, n.LocalMatrix())
	assertVec(t, mgl32.Vec3{1 + 8*1.15, 2, 3}, p)
}

func TestAddReparents(t *testing.T) {
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	a.Add(c)
	require.Equal(t, a, c.Parent())

	b.Add(c)
	assert.Equal(t, b, c.Parent())
	assert.Empty(t, a.Children())
	assert.Equal(t, []*Node{c}, b.Children())

	assert.True(t, b.Remove(c))
	assert.False(t, b.Remove(c))
	assert.Nil(t, c.Parent())

	a.Add(a, nil)
	assert.Empty(t, a.Children())
}

func TestFind(t *testing.T) {
	root := NewNode("root")
	p := NewNode("pivot")
	s := NewNode("sphere")
	root.Add(p)
	p.Add(s)
	assert.Equal(t, s, root.Find("sphere"))
	assert.Equal(t, root, root.Find("root"))
	assert.Nil(t, root.Find("missing"))
}

func TestCollectSkipsHiddenSubtrees(t *testing.T) {
	g := geometry.NewSphere(1, 8, 4)
	m := material.NewPhong(0xffffff, 0, 0, 1)

	s := New()
	visible := NewNode("visible")
	hidden := NewNode("hidden")
	hidden.Visible = false
	s.Add(visible, hidden)

	visible.Add(NewMeshNode("a", g, m), NewNode("empty"))
	hidden.Add(NewMeshNode("b", g, m))

	items := s.Collect(nil)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].Node.Name)
	assert.Equal(t, mgl32.Ident4(), items[0].World)
}

func TestBackgroundRevision(t *testing.T) {
	s := New()
	bg, rev := s.Background()
	assert.Nil(t, bg)
	assert.Zero(t, rev)

	want := &Background{Image: &texture.Image{Width: 1, Height: 1, Pix: make([]uint8, 4)}, Mode: BackgroundEquirect}
	s.SetBackground(want)
	bg, rev = s.Background()
	assert.Same(t, want, bg)
	assert.Equal(t, 1, rev)
}
