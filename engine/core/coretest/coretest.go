// Package coretest provides in-memory core.Renderer and core.Window
// implementations for tests that cannot open a display.
package coretest

import (
	"errors"
	"unsafe"

	"github.com/hubastard/hoglib/engine/core"
)

type Texture struct {
	id   uint32
	W, H int
	Desc core.TextureDesc
}

func (t *Texture) ID() uint32       { return t.id }
func (t *Texture) Size() (int, int) { return t.W, t.H }

type handle uint32

func (h handle) ID() uint32 { return uint32(h) }

// Draw is a recorded DrawCmd with its mesh contents at draw time.
type Draw struct {
	Vertices []float32
	Indices  []uint32
	Uniforms map[string]any
	Samplers map[string]core.Texture
}

// Renderer records every call made to it.
type Renderer struct {
	Kind  core.RendererType
	Slots int

	Pipelines []core.PipelineDesc
	Textures  []*Texture
	Deleted   []core.Texture
	Draws     []Draw
	Clears    [][4]float32
	W, H      int
	Closed    bool

	FailTextures bool

	nextID   uint32
	vertices []float32
	indices  []uint32
}

var ErrFake = errors.New("coretest: forced failure")

func NewRenderer(kind core.RendererType, slots int) *Renderer {
	return &Renderer{Kind: kind, Slots: slots}
}

func (r *Renderer) id() uint32 {
	r.nextID++
	return r.nextID
}

func (r *Renderer) Type() core.RendererType { return r.Kind }
func (r *Renderer) Resize(w, h int)         { r.W, r.H = w, h }
func (r *Renderer) Clear(c [4]float32)      { r.Clears = append(r.Clears, c) }
func (r *Renderer) MaxTextureSlots() int    { return r.Slots }
func (r *Renderer) GPUVendor() string       { return "coretest" }
func (r *Renderer) GPURenderer() string     { return "fake" }
func (r *Renderer) GPUVersion() string      { return "0" }
func (r *Renderer) Shutdown()               { r.Closed = true }

func (r *Renderer) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	r.Pipelines = append(r.Pipelines, desc)
	return handle(r.id()), nil
}

func (r *Renderer) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if r.FailTextures {
		return nil, ErrFake
	}
	t := &Texture{id: r.id(), W: desc.Width, H: desc.Height, Desc: desc}
	r.Textures = append(r.Textures, t)
	return t, nil
}

func (r *Renderer) DeleteTexture(t core.Texture) { r.Deleted = append(r.Deleted, t) }

// IsDeleted reports whether t was passed to DeleteTexture.
func (r *Renderer) IsDeleted(t core.Texture) bool {
	for _, d := range r.Deleted {
		if d == t {
			return true
		}
	}
	return false
}

func (r *Renderer) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	return handle(r.id()), nil
}

func (r *Renderer) UpdateMesh(_ core.Mesh, vertices []float32, indices []uint32) error {
	r.vertices = append(r.vertices[:0], vertices...)
	r.indices = append(r.indices[:0], indices...)
	return nil
}

func (r *Renderer) Draw(cmd core.DrawCmd) {
	d := Draw{
		Vertices: append([]float32(nil), r.vertices...),
		Indices:  append([]uint32(nil), r.indices...),
		Uniforms: make(map[string]any, len(cmd.Uniforms)),
		Samplers: make(map[string]core.Texture, len(cmd.Samplers)),
	}
	for k, v := range cmd.Uniforms {
		d.Uniforms[k] = v
	}
	for k, v := range cmd.Samplers {
		d.Samplers[k] = v
	}
	r.Draws = append(r.Draws, d)
}

// Window is a scriptable core.Window.
type Window struct {
	Title        string
	X, Y         int
	W, H         int
	FBW, FBH     int
	MouseX       float64
	MouseY       float64
	Inside       bool
	Quit         bool
	Closed       bool
	Swaps        int
	Current      int
	Interval     int
	PendingPolls []core.Event

	cb func(core.Event)
}

func NewWindow(w, h int) *Window {
	return &Window{W: w, H: h, FBW: w, FBH: h}
}

// PollEvents delivers queued events to the callback.
func (w *Window) PollEvents() {
	evs := w.PendingPolls
	w.PendingPolls = nil
	for _, ev := range evs {
		w.Emit(ev)
	}
}

// Emit sends ev to the event callback right away.
func (w *Window) Emit(ev core.Event) {
	if w.cb != nil {
		w.cb(ev)
	}
}

func (w *Window) SwapBuffers()                              { w.Swaps++ }
func (w *Window) ShouldClose() bool                         { return w.Quit }
func (w *Window) SetShouldClose(v bool)                     { w.Quit = v }
func (w *Window) Position() (int, int)                      { return w.X, w.Y }
func (w *Window) Size() (int, int)                          { return w.W, w.H }
func (w *Window) FramebufferSize() (int, int)               { return w.FBW, w.FBH }
func (w *Window) CursorPos() (float64, float64, bool)       { return w.MouseX, w.MouseY, w.Inside }
func (w *Window) SetTitle(t string)                         { w.Title = t }
func (w *Window) SetEventCallback(cb func(core.Event))      { w.cb = cb }
func (w *Window) MakeContextCurrent()                       { w.Current++ }
func (w *Window) SwapInterval(n int)                        { w.Interval = n }
func (w *Window) GetProcAddress(name string) unsafe.Pointer { return nil }
func (w *Window) Close()                                    { w.Closed = true }
