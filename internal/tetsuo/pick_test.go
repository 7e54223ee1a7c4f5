package tetsuo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/tetsuo/internal/assets"
	"github.com/Faultbox/tetsuo/internal/engine/text"
)

func project(c *Composition, p mgl32.Vec3) mgl32.Vec2 {
	clip := c.Camera.Projection().Mul4(c.Camera.ViewMatrix()).Mul4x1(p.Vec4(1))
	return mgl32.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}
}

func TestPickSphereUnderPointer(t *testing.T) {
	c := Compose(DefaultOptions(), 16.0/9, Loads{})

	for _, name := range []string{"blue", "red", "purple", "yellow"} {
		var target *Sphere
		for _, s := range c.Spheres {
			if s.Name == name {
				target = s
			}
		}
		require.NotNil(t, target)

		got := c.Pick(project(c, target.Node.WorldPosition()))
		require.NotNil(t, got, name)
		assert.Equal(t, name, got.Name)
	}
}

func TestPickNearestWins(t *testing.T) {
	c := Compose(DefaultOptions(), 16.0/9, Loads{})

	// Green and orange share the view axis; orange is nearer the camera.
	got := c.Pick(project(c, mgl32.Vec3{0, 0, 80}))
	require.NotNil(t, got)
	assert.Equal(t, "orange", got.Name)
}

func TestPickMiss(t *testing.T) {
	c := Compose(DefaultOptions(), 16.0/9, Loads{})
	assert.Nil(t, c.Pick(mgl32.Vec2{0.95, 0.95}))
}

func TestPickFollowsRotation(t *testing.T) {
	opts := DefaultOptions()
	opts.Layout = LayoutOrbital
	c := Compose(opts, 16.0/9, Loads{})

	a := NewAnimator(c, 0.3)
	for i := 0; i < 3; i++ {
		a.Step()
	}
	for _, s := range c.Spheres {
		if s.Name != "purple" {
			continue
		}
		got := c.Pick(project(c, s.Node.WorldPosition()))
		require.NotNil(t, got)
		assert.Equal(t, "purple", got.Name)
	}
}

func composeWithTitle(t *testing.T) *Composition {
	t.Helper()
	f, err := text.Default()
	require.NoError(t, err)
	fonts := make(chan assets.Result[*text.Font], 1)
	fonts <- assets.Result[*text.Font]{Value: f}

	c := Compose(DefaultOptions(), 16.0/9, Loads{Title: BuildTitle(fonts, "Tetsuo", text.DefaultOptions())})
	pollUntilReady(t, c)
	require.NotNil(t, c.Title)
	return c
}

func TestHoverTitle(t *testing.T) {
	c := composeWithTitle(t)

	// Left part of the title's front face, clear of the sphere on the view axis.
	b := c.titleBox()
	target := mgl32.Vec3{b.Min.X() * 0.75, b.Center().Y(), b.Max.Z()}
	assert.Equal(t, "title", c.Hover(project(c, target)))

	// The orange sphere sits between the camera and the title.
	assert.Equal(t, "orange", c.Hover(project(c, mgl32.Vec3{0, 0, 80})))
	assert.Equal(t, "", c.Hover(mgl32.Vec2{0.95, 0.95}))
}

func TestHoverWithoutTitle(t *testing.T) {
	c := Compose(DefaultOptions(), 16.0/9, Loads{})
	assert.Equal(t, "blue", c.Hover(project(c, mgl32.Vec3{80, 0, 0})))
	assert.Equal(t, "", c.Hover(project(c, mgl32.Vec3{-20, 10, 5})))
}

func TestTitleBoxFollowsCentering(t *testing.T) {
	c := composeWithTitle(t)
	b := c.titleBox()
	assert.InDelta(t, 0, b.Center().X(), 1e-3)
	assert.InDelta(t, -b.Min.X(), b.Max.X(), 1e-3)
}
