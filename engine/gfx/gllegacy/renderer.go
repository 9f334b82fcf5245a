// Package gllegacy is the OpenGL 2.1 renderer backend for machines without
// a 3.3 core context. It binds a single texture per draw.
package gllegacy

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/hubastard/hoglib/engine/core"
)

type Renderer struct {
	win core.Window

	vendor, renderer, version string

	programs map[*program]struct{}
	textures map[*texture]struct{}
	meshes   map[*mesh]struct{}
}

func New(win core.Window) (*Renderer, error) {
	win.MakeContextCurrent()
	if err := gl.InitWithProcAddrFunc(win.GetProcAddress); err != nil {
		return nil, fmt.Errorf("gl 2.1 init: %w", err)
	}
	r := &Renderer{
		win:      win,
		programs: make(map[*program]struct{}),
		textures: make(map[*texture]struct{}),
		meshes:   make(map[*mesh]struct{}),
	}
	r.vendor = gl.GoStr(gl.GetString(gl.VENDOR))
	r.renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	r.version = gl.GoStr(gl.GetString(gl.VERSION))

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.Resize(win.FramebufferSize())

	core.Logger().Info("legacy opengl renderer ready",
		"vendor", r.vendor, "renderer", r.renderer, "version", r.version)
	return r, nil
}

func (r *Renderer) Type() core.RendererType { return core.RendererOpenGLLegacy }
func (r *Renderer) MaxTextureSlots() int    { return 1 }
func (r *Renderer) GPUVendor() string       { return r.vendor }
func (r *Renderer) GPURenderer() string     { return r.renderer }
func (r *Renderer) GPUVersion() string      { return r.version }

func (r *Renderer) Resize(w, h int) { gl.Viewport(0, 0, int32(w), int32(h)) }

func (r *Renderer) Clear(c [4]float32) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *Renderer) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	id, err := link(desc.VertexSource, desc.FragmentSource, desc.AttribNames)
	if err != nil {
		return nil, err
	}
	p := &program{id: id, depth: desc.DepthTest, blend: desc.Blend, locs: make(map[string]int32)}
	r.programs[p] = struct{}{}
	return p, nil
}

func (r *Renderer) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*program)
	if !ok {
		core.Logger().Warn("legacy draw with foreign pipeline")
		return
	}
	m, ok := cmd.Mesh.(*mesh)
	if !ok {
		core.Logger().Warn("legacy draw with foreign mesh")
		return
	}
	if p.depth {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if p.blend {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}

	gl.UseProgram(p.id)
	for name, v := range cmd.Uniforms {
		r.uniform(p.uniform(name), v)
	}
	bound := false
	for name, t := range cmd.Samplers {
		tex, ok := t.(*texture)
		if !ok {
			continue
		}
		if bound {
			core.Logger().Warn("legacy renderer binds one texture per draw", "dropped", name)
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
		gl.Uniform1i(p.uniform(name), 0)
		bound = true
	}

	m.bind()
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	m.unbind()
	gl.UseProgram(0)
}

func (r *Renderer) uniform(loc int32, v any) {
	if loc < 0 {
		return
	}
	switch v := v.(type) {
	case float32:
		gl.Uniform1f(loc, v)
	case int32:
		gl.Uniform1i(loc, v)
	case int:
		gl.Uniform1i(loc, int32(v))
	case [2]float32:
		gl.Uniform2f(loc, v[0], v[1])
	case [4]float32:
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	case [16]float32:
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	default:
		core.Logger().Warn("unsupported uniform type", "type", fmt.Sprintf("%T", v))
	}
}

func (r *Renderer) Shutdown() {
	for m := range r.meshes {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		delete(r.meshes, m)
	}
	for t := range r.textures {
		r.DeleteTexture(t)
	}
	for p := range r.programs {
		gl.DeleteProgram(p.id)
		delete(r.programs, p)
	}
	core.Logger().Info("legacy opengl renderer shut down")
}
