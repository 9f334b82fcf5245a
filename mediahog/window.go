package mediahog

import (
	"fmt"
	"slices"

	"github.com/hubastard/hoglib/engine/core"
	"github.com/hubastard/hoglib/engine/gfx/renderer2d"
	"github.com/hubastard/hoglib/engine/platform"
	"github.com/hubastard/hoglib/engine/scene"
)

// Window is an open window with its own input state and event queue.
type Window struct {
	win core.Window
	gw  *platform.GLFWWindow
	// flags as requested; runtime changes go through SetFlags
	flags WindowFlags

	input    *core.Input
	queue    *core.EventQueue
	queueing bool // CheckEvent was used on this window
	polled   bool // CheckEvent polled for the current frame
	exitKey  Key
	userPtr  any

	// set when the graphics subsystem is up
	backend core.Renderer
	r2d     *renderer2d.Renderer2D
	cam     *scene.OrthoCamera2D
	blitTex core.Texture
}

// NewWindow opens a window with no flags.
func NewWindow(name string, x, y, w, h int) (*Window, error) {
	return CreateWindow(name, x, y, w, h, 0)
}

// CreateWindow opens a window at (x,y). With the graphics subsystem up the
// window also gets a GL context and a renderer for BlitSurface.
func CreateWindow(name string, x, y, w, h int, flags WindowFlags) (*Window, error) {
	if err := requireWindowing("create window"); err != nil {
		return nil, err
	}
	graphics := initialized&SubsystemGraphics != 0
	cf := flags.Core()
	if graphics {
		cf |= core.WindowOpenGL
	}

	win := &Window{
		flags:   flags,
		input:   core.NewInput(),
		queue:   core.NewEventQueue(core.DefaultQueueSize),
		exitKey: core.KeyEscape,
	}
	pw, gw, err := newPlatformWindow(core.Config{
		Title:  name,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Flags:  cf,
		GL:     windowHints(graphics),
	}, win.dispatch)
	if err != nil {
		sendError(ErrWindowing, err)
		return nil, fmt.Errorf("create window %q: %w", name, err)
	}
	win.win, win.gw = pw, gw

	if graphics {
		if err := win.initGraphics(); err != nil {
			pw.Close()
			sendError(ErrOpenGLContext, err)
			return nil, err
		}
	}
	windows = append(windows, win)
	sendInfo(InfoWindow, fmt.Sprintf("window %q created", name))
	return win, nil
}

func (w *Window) initGraphics() error {
	w.makeCurrent()
	backend, err := newBackend(w.win)
	if err != nil {
		return fmt.Errorf("window graphics: %w", err)
	}
	r2d, err := renderer2d.NewDefault(backend)
	if err != nil {
		backend.Shutdown()
		return fmt.Errorf("window graphics: %w", err)
	}
	ww, wh := w.win.Size()
	w.backend, w.r2d, w.cam = backend, r2d, scene.NewOrtho2D(ww, wh)
	w.backend.Resize(w.win.FramebufferSize())
	return nil
}

// Free closes the window. Safe to call twice.
func (w *Window) Free() {
	if w.win == nil {
		return
	}
	if w.backend != nil {
		if w.blitTex != nil {
			w.backend.DeleteTexture(w.blitTex)
			w.blitTex = nil
		}
		w.r2d.Shutdown()
		w.backend.Shutdown()
		w.backend, w.r2d = nil, nil
	}
	w.win.Close()
	w.win, w.gw = nil, nil
	if i := slices.Index(windows, w); i >= 0 {
		windows = slices.Delete(windows, i, i+1)
	}
	if lastMouse == w {
		lastMouse = nil
	}
	if currentWindow == w {
		currentWindow = nil
	}
}

// dispatch routes one platform event through input state, the exit key,
// the queue and the callbacks. Input state and the viewport follow every
// event; disabled events are neither queued nor passed to callbacks.
func (w *Window) dispatch(ev core.Event) {
	w.input.Handle(ev)
	globalInput.Handle(ev)

	switch e := ev.(type) {
	case core.EventMouseMove:
		lastMouse = w
	case core.EventResize:
		if w.backend != nil && e.W > 0 && e.H > 0 {
			w.makeCurrent()
			w.backend.Resize(e.W, e.H)
			w.cam.Fit(w.win.Size())
		}
	}

	if !w.queue.Enabled().Allows(ev.Type()) {
		return
	}
	if e, ok := ev.(core.EventKey); ok && e.Down && w.exitKey != core.KeyNull && e.Key == w.exitKey {
		w.win.SetShouldClose(true)
	}

	if queueEvents || w.queueing {
		dropped := w.queue.Dropped()
		if !w.queue.Push(ev) {
			sendWarning(ErrEventQueue, "event not queued")
		} else if w.queue.Dropped() > dropped {
			sendWarning(ErrEventQueue, "event queue full, oldest event dropped")
		}
	}
	callbacks.fire(w, ev)
}

// Native exposes the platform window; nil after Free.
func (w *Window) Native() *platform.GLFWWindow { return w.gw }

func (w *Window) Flags() WindowFlags { return w.flags }

// Position, Size, SetName, SetShouldClose, Mouse and the context calls do
// nothing once the window is freed.

func (w *Window) Position() (x, y int) {
	if w.win == nil {
		return 0, 0
	}
	return w.win.Position()
}

func (w *Window) Size() (width, height int) {
	if w.win == nil {
		return 0, 0
	}
	return w.win.Size()
}

// SetFlags applies the flags that can change after creation.
func (w *Window) SetFlags(flags WindowFlags) {
	w.gw.SetFlags(flags.Core())
	w.flags = flags
}

// ExitKey is the key that requests close; Escape by default, KeyNull for none.
func (w *Window) ExitKey() Key       { return w.exitKey }
func (w *Window) SetExitKey(k Key)   { w.exitKey = k }
func (w *Window) UserPtr() any       { return w.userPtr }
func (w *Window) SetUserPtr(ptr any) { w.userPtr = ptr }

func (w *Window) SetName(name string) {
	if w.win != nil {
		w.win.SetTitle(name)
	}
}

func (w *Window) ShouldClose() bool { return w.win == nil || w.win.ShouldClose() }

func (w *Window) SetShouldClose(v bool) {
	if w.win != nil {
		w.win.SetShouldClose(v)
	}
}

// Mouse returns the cursor position relative to the window.
func (w *Window) Mouse() (x, y int, inside bool) {
	if w.win == nil {
		return 0, 0, false
	}
	fx, fy, in := w.win.CursorPos()
	return int(fx), int(fy), in
}

func (w *Window) Move(x, y int)                { w.gw.Move(x, y) }
func (w *Window) Resize(width, height int)     { w.gw.Resize(width, height) }
func (w *Window) SetAspectRatio(num, den int)  { w.gw.SetAspectRatio(num, den) }
func (w *Window) SetMinSize(width, height int) { w.gw.SetMinSize(width, height) }
func (w *Window) SetMaxSize(width, height int) { w.gw.SetMaxSize(width, height) }

func (w *Window) Focus()          { w.gw.Focus() }
func (w *Window) IsInFocus() bool { return w.gw.IsFocused() }
func (w *Window) Raise()          { w.gw.Raise() }
func (w *Window) Maximize()       { w.gw.Maximize() }
func (w *Window) Minimize()       { w.gw.Minimize() }
func (w *Window) Restore()        { w.gw.Restore() }
func (w *Window) Center()         { w.gw.Center() }
func (w *Window) Hide()           { w.gw.Hide() }
func (w *Window) Show()           { w.gw.Show() }

func (w *Window) SetFullscreen(on bool) { w.gw.SetFullscreen(on) }
func (w *Window) SetFloating(on bool)   { w.gw.SetFloating(on) }
func (w *Window) SetBorder(on bool)     { w.gw.SetBorder(on) }
func (w *Window) SetDND(allow bool)     { w.gw.SetDND(allow) }
func (w *Window) SetOpacity(a uint8)    { w.gw.SetOpacity(a) }

func (w *Window) Borderless() bool   { return w.gw.Borderless() }
func (w *Window) AllowsDND() bool    { return w.gw.AllowsDND() }
func (w *Window) IsFullscreen() bool { return w.gw.IsFullscreen() }
func (w *Window) IsHidden() bool     { return w.gw.IsHidden() }
func (w *Window) IsMinimized() bool  { return w.gw.IsMinimized() }
func (w *Window) IsMaximized() bool  { return w.gw.IsMaximized() }
func (w *Window) IsFloating() bool   { return w.gw.IsFloating() }

func (w *Window) ShowMouse(show bool)  { w.gw.ShowMouse(show) }
func (w *Window) IsMouseHidden() bool  { return w.gw.IsMouseHidden() }
func (w *Window) MoveMouse(x, y int)   { w.gw.MoveMouse(x, y) }
func (w *Window) HoldMouse()           { w.gw.HoldMouse() }
func (w *Window) UnholdMouse()         { w.gw.UnholdMouse() }
func (w *Window) IsHoldingMouse() bool { return w.gw.IsHoldingMouse() }

// SetMouse shows m over the window; nil restores the default cursor.
func (w *Window) SetMouse(m *Mouse) {
	if m == nil {
		w.gw.SetCursor(nil)
		return
	}
	w.gw.SetCursor(m.c)
}

func (w *Window) SetMouseStandard(c Cursor) bool { return w.gw.SetStandardCursor(c) }

func (w *Window) SetMouseDefault() bool {
	w.gw.ResetCursor()
	return true
}

// MakeCurrent binds the window's GL context to the calling thread.
func (w *Window) MakeCurrent() {
	if w.win != nil {
		w.makeCurrent()
	}
}

func (w *Window) SwapBuffers() {
	if w.win != nil {
		w.win.SwapBuffers()
	}
}

// SwapInterval sets vsync; the window's context becomes current.
func (w *Window) SwapInterval(n int) {
	if w.win != nil {
		w.win.SwapInterval(n)
		currentWindow = w
	}
}

func (w *Window) Renderer() core.Renderer { return w.backend }
