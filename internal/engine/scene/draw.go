package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// SortForDraw orders items for rendering and splits them into opaque meshes,
// in scene order, and transparent meshes sorted back to front from eye.
// Both returned slices alias items.
func SortForDraw(items []Item, eye mgl32.Vec3) (opaque, transparent []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return !items[i].transparent() && items[j].transparent()
	})
	split := sort.Search(len(items), func(i int) bool {
		return items[i].transparent()
	})
	opaque, transparent = items[:split], items[split:]

	sort.SliceStable(transparent, func(i, j int) bool {
		return transparent[i].distSq(eye) > transparent[j].distSq(eye)
	})
	return opaque, transparent
}

func (it Item) transparent() bool {
	return it.Mesh.Material.State().Transparent
}

func (it Item) distSq(eye mgl32.Vec3) float32 {
	d := it.World.Col(3).Vec3().Sub(eye)
	return d.Dot(d)
}

// NormalMatrix returns the inverse transpose of m's upper 3x3, which keeps
// normals perpendicular to surfaces under non-uniform scale.
func NormalMatrix(m mgl32.Mat4) mgl32.Mat3 {
	return m.Mat3().Inv().Transpose()
}
