package hoglib

import (
	"fmt"

	"github.com/hubastard/hoglib/engine/core"
	"github.com/hubastard/hoglib/engine/gfx/renderer2d"
	"github.com/hubastard/hoglib/engine/scene"
)

// Renderer draws batched 2D primitives into its window. World units are
// window pixels with (0,0) at the top-left.
type Renderer struct {
	win     *Window
	typ     RendererType
	backend core.Renderer
	r2d     *renderer2d.Renderer2D
	cam     *scene.OrthoCamera2D
	font    *Font
	inFrame bool
}

// InitRenderer attaches a renderer of type t to w, replacing any existing one.
// w needs a GL context: a renderer flag or WindowOpenGL at creation.
func InitRenderer(t RendererType, w *Window) (*Renderer, error) {
	if w == nil || w.win == nil {
		return nil, fmt.Errorf("init renderer: %w", core.ErrNotInitialized)
	}
	if !w.flags.WantsContext() {
		return nil, fmt.Errorf("init renderer: window has no GL context: %w", core.ErrNotInitialized)
	}
	if w.renderer != nil {
		w.renderer.Free()
	}
	backend, err := newBackend(t, w.win)
	if err != nil {
		return nil, fmt.Errorf("init %s renderer: %w", t, err)
	}
	r2d, err := renderer2d.NewDefault(backend)
	if err != nil {
		backend.Shutdown()
		return nil, fmt.Errorf("init %s renderer: %w", t, err)
	}

	ww, wh := w.win.Size()
	r := &Renderer{
		win:     w,
		typ:     t,
		backend: backend,
		r2d:     r2d,
		cam:     scene.NewOrtho2D(ww, wh),
	}
	r.resize(w.win.FramebufferSize())
	w.renderer = r
	return r, nil
}

// Free releases the GPU state. Textures and fonts loaded through the
// renderer become invalid.
func (r *Renderer) Free() {
	if r == nil || r.backend == nil {
		return
	}
	r.r2d.Shutdown()
	r.backend.Shutdown()
	r.backend = nil
	if r.win != nil && r.win.renderer == r {
		r.win.renderer = nil
	}
}

func (r *Renderer) Type() RendererType { return r.typ }

// Stats reports the batches submitted in the current frame.
func (r *Renderer) Stats() renderer2d.Statistics { return r.r2d.Stats() }

// GPU returns the driver's vendor, renderer and version strings.
func (r *Renderer) GPU() (vendor, renderer, version string) {
	return r.backend.GPUVendor(), r.backend.GPURenderer(), r.backend.GPUVersion()
}

// resize follows the framebuffer for the viewport and the window size for
// the projection, so coordinates stay in window pixels on HiDPI screens.
// The viewport belongs to the window's context, so it is made current.
func (r *Renderer) resize(fbw, fbh int) {
	if fbw < 1 || fbh < 1 {
		return
	}
	r.win.win.MakeContextCurrent()
	r.backend.Resize(fbw, fbh)
	ww, wh := r.win.win.Size()
	r.cam.Fit(ww, wh)
}

func (r *Renderer) begin() {
	if !r.inFrame {
		r.r2d.BeginScene(r.cam.VP())
		r.inFrame = true
	}
}

// StartFrame makes the context current and opens a batch.
func (r *Renderer) StartFrame() {
	r.win.win.MakeContextCurrent()
	r.inFrame = false
	r.begin()
}

// FinishFrame submits the batch and presents.
func (r *Renderer) FinishFrame() {
	r.begin()
	r.r2d.EndScene()
	r.inFrame = false
	r.win.win.SwapBuffers()
}

// rend returns the window's renderer, or nil after logging that op was
// skipped.
func (w *Window) rend(op string) *Renderer {
	if w == nil || w.renderer == nil || w.renderer.backend == nil {
		core.Logger().Warn("call skipped: window has no renderer", "op", op)
		return nil
	}
	return w.renderer
}

func (w *Window) StartFrame() {
	if r := w.rend("StartFrame"); r != nil {
		r.StartFrame()
	}
}

func (w *Window) FinishFrame() {
	if r := w.rend("FinishFrame"); r != nil {
		r.FinishFrame()
	}
}

// Clear fills the framebuffer; quads drawn earlier this frame are flushed
// first so they are cleared too.
func (w *Window) Clear(c Color) {
	if r := w.rend("Clear"); r != nil {
		r.begin()
		r.r2d.Flush()
		r.backend.Clear(c.Normalized())
	}
}

func (w *Window) SetColor(c Color) {
	if r := w.rend("SetColor"); r != nil {
		r.r2d.SetColor(c)
	}
}

func (w *Window) DrawRect(rect Rect) {
	if r := w.rend("DrawRect"); r != nil {
		r.begin()
		r.r2d.DrawRect(rect)
	}
}

// DrawLine draws a one pixel wide line.
func (w *Window) DrawLine(a, b Vec2) {
	if r := w.rend("DrawLine"); r != nil {
		r.begin()
		r.r2d.DrawLine(a, b, 1)
	}
}

// Camera is the screen projection. Moving or zooming it pans the scene.
func (r *Renderer) Camera() *scene.OrthoCamera2D { return r.cam }
