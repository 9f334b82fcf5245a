package gllegacy

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/hubastard/hoglib/engine/core"
)

var errForeignMesh = errors.New("gllegacy: mesh was not created by this renderer")

// mesh keeps its layout since GL 2.1 has no vertex array objects; the
// attribute pointers are set up again on every draw.
type mesh struct {
	vbo, ebo   uint32
	count      int32
	vcap, icap int
	layout     core.VertexLayout
}

func (m *mesh) ID() uint32 { return m.vbo }

func (r *Renderer) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	m := &mesh{layout: desc.Layout}
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, ptr(desc.Vertices), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, ptr(desc.Indices), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	m.vcap, m.icap = len(desc.Vertices), len(desc.Indices)
	m.count = int32(len(desc.Indices))
	r.meshes[m] = struct{}{}
	return m, nil
}

func (r *Renderer) UpdateMesh(cm core.Mesh, vertices []float32, indices []uint32) error {
	m, ok := cm.(*mesh)
	if !ok {
		return errForeignMesh
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(vertices) > m.vcap {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, ptr(vertices), gl.DYNAMIC_DRAW)
		m.vcap = len(vertices)
	} else if len(vertices) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, ptr(vertices))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if len(indices) > m.icap {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, ptr(indices), gl.DYNAMIC_DRAW)
		m.icap = len(indices)
	} else if len(indices) > 0 {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*4, ptr(indices))
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	m.count = int32(len(indices))
	return nil
}

func (m *mesh) bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	for _, a := range m.layout.Attributes {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, m.layout.Stride, uintptr(a.Offset))
	}
}

func (m *mesh) unbind() {
	for _, a := range m.layout.Attributes {
		gl.DisableVertexAttribArray(a.Location)
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func ptr[T float32 | uint32](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return gl.Ptr(&s[0])
}
