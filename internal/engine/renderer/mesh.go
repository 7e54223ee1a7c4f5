package renderer

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tetsuo/internal/engine/geometry"
	"github.com/Faultbox/tetsuo/internal/logger"
)

type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// mesh returns the uploaded form of g, uploading it on first use.
// Geometry is treated as immutable once drawn.
func (r *Renderer) mesh(g *geometry.Geometry) (*gpuMesh, error) {
	if m, ok := r.meshes[g]; ok {
		return m, nil
	}
	if len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return nil, errors.New("empty geometry")
	}

	m := &gpuMesh{count: int32(len(g.Indices))}
	data := g.Interleave()

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	stride := int32(geometry.FloatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.meshes[g] = m
	logger.Debug("mesh uploaded",
		zap.Uint32("vao", m.vao),
		zap.Int("vertices", len(g.Vertices)),
		zap.Int("triangles", g.TriangleCount()),
	)
	return m, nil
}

func (m *gpuMesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *gpuMesh) delete() {
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
