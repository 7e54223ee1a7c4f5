package tetsuo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tetsuo/internal/engine/scene"
)

// Axis is one of the three world axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Vec returns the unit vector along a.
func (a Axis) Vec() mgl32.Vec3 {
	var v mgl32.Vec3
	v[a] = 1
	return v
}

func (a Axis) String() string {
	return [...]string{"x", "y", "z"}[a]
}

// Pivot is an invisible node that spins about one fixed local axis.
type Pivot struct {
	Node *scene.Node
	Axis Axis

	angle float64
}

func newPivot(name string, axis Axis) *Pivot {
	return &Pivot{Node: scene.NewNode(name), Axis: axis}
}

// Rotate turns the pivot by delta radians about its axis.
func (p *Pivot) Rotate(delta float32) {
	p.Node.RotateOnAxis(p.Axis.Vec(), delta)
	p.angle = math.Mod(p.angle+float64(delta), 2*math.Pi)
}

// Angle returns the accumulated rotation in [0, 2pi).
func (p *Pivot) Angle() float64 {
	return p.angle
}
