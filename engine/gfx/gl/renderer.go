package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/hoglib/engine/core"
)

// maxSlots caps sampler units per draw; the 2D shaders declare 16.
const maxSlots = 16

// RendererGL is the OpenGL 3.3 core backend.
type RendererGL struct {
	win   core.Window
	slots int

	vendor, renderer, version string

	pipelines map[*pipeline]struct{}
	textures  map[*texture]struct{}
	meshes    map[*mesh]struct{}
}

// NewRendererGL loads GL entry points through win's context and sets the
// default 2D state. win must have a current 3.3+ context.
func NewRendererGL(win core.Window) (*RendererGL, error) {
	win.MakeContextCurrent()
	if err := gl.InitWithProcAddrFunc(win.GetProcAddress); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	r := &RendererGL{
		win:       win,
		pipelines: make(map[*pipeline]struct{}),
		textures:  make(map[*texture]struct{}),
		meshes:    make(map[*mesh]struct{}),
	}
	r.vendor = gl.GoStr(gl.GetString(gl.VENDOR))
	r.renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	r.version = gl.GoStr(gl.GetString(gl.VERSION))

	var units int32
	gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &units)
	r.slots = min(int(units), maxSlots)
	if r.slots < 1 {
		r.slots = 1
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	w, h := win.FramebufferSize()
	r.Resize(w, h)

	core.Logger().Info("opengl renderer ready",
		"vendor", r.vendor, "renderer", r.renderer, "version", r.version, "slots", r.slots)
	return r, nil
}

func (r *RendererGL) Type() core.RendererType { return core.RendererOpenGLModern }
func (r *RendererGL) MaxTextureSlots() int    { return r.slots }
func (r *RendererGL) GPUVendor() string       { return r.vendor }
func (r *RendererGL) GPURenderer() string     { return r.renderer }
func (r *RendererGL) GPUVersion() string      { return r.version }

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(c [4]float32) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(desc.VertexSource, desc.FragmentSource, desc.AttribNames)
	if err != nil {
		return nil, err
	}
	p := &pipeline{id: prog, depth: desc.DepthTest, blend: desc.Blend, locs: make(map[string]int32)}
	r.pipelines[p] = struct{}{}
	return p, nil
}

func (r *RendererGL) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*pipeline)
	if !ok {
		core.Logger().Warn("draw with foreign pipeline")
		return
	}
	m, ok := cmd.Mesh.(*mesh)
	if !ok {
		core.Logger().Warn("draw with foreign mesh")
		return
	}

	setEnabled(gl.DEPTH_TEST, p.depth)
	setEnabled(gl.BLEND, p.blend)

	gl.UseProgram(p.id)
	for name, v := range cmd.Uniforms {
		setUniform(p.uniform(name), v)
	}
	unit := 0
	for name, t := range cmd.Samplers {
		tex, ok := t.(*texture)
		if !ok || unit >= r.slots {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
		gl.Uniform1i(p.uniform(name), int32(unit))
		unit++
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func setEnabled(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

func setUniform(loc int32, v any) {
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

// Shutdown frees every GPU object the renderer still owns.
func (r *RendererGL) Shutdown() {
	for m := range r.meshes {
		r.deleteMesh(m)
	}
	for t := range r.textures {
		r.DeleteTexture(t)
	}
	for p := range r.pipelines {
		gl.DeleteProgram(p.id)
		delete(r.pipelines, p)
	}
	core.Logger().Info("opengl renderer shut down")
}
