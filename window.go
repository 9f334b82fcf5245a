package hoglib

import (
	"fmt"
	"unsafe"

	"github.com/hubastard/hoglib/engine/core"
	glbackend "github.com/hubastard/hoglib/engine/gfx/gl"
	"github.com/hubastard/hoglib/engine/gfx/gllegacy"
	"github.com/hubastard/hoglib/engine/platform"
)

// Swapped out by tests that run without a display.
var (
	newPlatformWindow = func(cfg core.Config, onEvent func(core.Event)) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg, onEvent)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	newBackend = func(t core.RendererType, win core.Window) (core.Renderer, error) {
		switch t {
		case core.RendererOpenGLModern:
			r, err := glbackend.NewRendererGL(win)
			if err != nil {
				return nil, err
			}
			return r, nil
		case core.RendererOpenGLLegacy:
			r, err := gllegacy.New(win)
			if err != nil {
				return nil, err
			}
			return r, nil
		}
		return nil, fmt.Errorf("renderer type %s: %w", t, core.ErrNoRenderer)
	}
)

// Window is a platform window with an optional renderer attached.
type Window struct {
	win      core.Window
	flags    WindowFlags
	renderer *Renderer
	onEvent  func(Event)
}

// CreateWindow opens a centred window. WindowGLLegacy or WindowGLModern
// attach a renderer; legacy wins when both are set. WindowOpenGL creates a
// context without a renderer, for a later InitRenderer.
func CreateWindow(name string, width, height int, flags WindowFlags) (*Window, error) {
	return openWindow(core.Config{
		Title:  name,
		Width:  width,
		Height: height,
		Flags:  flags | core.WindowCenter,
	})
}

func openWindow(cfg core.Config) (*Window, error) {
	w := &Window{flags: cfg.Flags}
	pw, err := newPlatformWindow(cfg, w.handleEvent)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	w.win = pw

	if t := core.RendererFromFlags(cfg.Flags); t != core.RendererNone {
		if _, err := InitRenderer(t, w); err != nil {
			pw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Window) handleEvent(ev core.Event) {
	input.Handle(ev)
	if r, ok := ev.(core.EventResize); ok && w.renderer != nil {
		w.renderer.resize(r.W, r.H)
	}
	if w.onEvent != nil {
		w.onEvent(ev)
	}
}

// Close frees the attached renderer, then the window.
func (w *Window) Close() {
	if w == nil || w.win == nil {
		return
	}
	if w.renderer != nil {
		w.renderer.Free()
	}
	w.win.Close()
	w.win = nil
}

func (w *Window) ShouldClose() bool  { return w.win == nil || w.win.ShouldClose() }
func (w *Window) Flags() WindowFlags { return w.flags }

// The calls below do nothing once the window is closed.

func (w *Window) SetShouldClose(v bool) {
	if w.win != nil {
		w.win.SetShouldClose(v)
	}
}

func (w *Window) Size() (int, int) {
	if w.win == nil {
		return 0, 0
	}
	return w.win.Size()
}

func (w *Window) SetTitle(title string) {
	if w.win != nil {
		w.win.SetTitle(title)
	}
}

// Renderer returns the attached renderer or nil.
func (w *Window) Renderer() *Renderer { return w.renderer }

// Mouse returns the cursor position and whether it is inside the window.
func (w *Window) Mouse() (x, y int, inside bool) {
	if w.win == nil {
		return 0, 0, false
	}
	fx, fy, in := w.win.CursorPos()
	return int(fx), int(fy), in
}

// Native exposes the platform window; nil after Close.
func (w *Window) Native() core.Window { return w.win }

func (w *Window) MakeContextCurrent() {
	if w.win != nil {
		w.win.MakeContextCurrent()
	}
}

func (w *Window) SwapBuffers() {
	if w.win != nil {
		w.win.SwapBuffers()
	}
}

// SwapInterval sets vsync for the window's context.
func (w *Window) SwapInterval(n int) {
	if w.win != nil {
		w.win.SwapInterval(n)
	}
}

func (w *Window) GetProcAddress(name string) unsafe.Pointer {
	if w.win == nil {
		return nil
	}
	return w.win.GetProcAddress(name)
}
