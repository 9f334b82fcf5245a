package glbackend

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/hoglib/engine/core"
)

var errMeshType = errors.New("glbackend: mesh was not created by this renderer")

type mesh struct {
	vao, vbo, ebo uint32
	count         int32
	vcap, icap    int // buffer capacity in elements
}

func (m *mesh) ID() uint32 { return m.vao }

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	m := &mesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, glPtr(desc.Vertices), gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, glPtr(desc.Indices), gl.DYNAMIC_DRAW)

	for _, a := range desc.Layout.Attributes {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, desc.Layout.Stride, uintptr(a.Offset))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	m.vcap, m.icap = len(desc.Vertices), len(desc.Indices)
	m.count = int32(len(desc.Indices))
	r.meshes[m] = struct{}{}
	return m, nil
}

// UpdateMesh replaces the mesh contents, growing the buffers when needed.
func (r *RendererGL) UpdateMesh(cm core.Mesh, vertices []float32, indices []uint32) error {
	m, ok := cm.(*mesh)
	if !ok {
		return errMeshType
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(vertices) > m.vcap {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, glPtr(vertices), gl.DYNAMIC_DRAW)
		m.vcap = len(vertices)
	} else if len(vertices) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, glPtr(vertices))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	// the element buffer binding is VAO state
	gl.BindVertexArray(m.vao)
	if len(indices) > m.icap {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, glPtr(indices), gl.DYNAMIC_DRAW)
		m.icap = len(indices)
	} else if len(indices) > 0 {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*4, glPtr(indices))
	}
	gl.BindVertexArray(0)

	m.count = int32(len(indices))
	return nil
}

func (r *RendererGL) deleteMesh(m *mesh) {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
	delete(r.meshes, m)
}

func glPtr[T float32 | uint32](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return gl.Ptr(&s[0])
}
