package platform

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/hoglib/engine/core"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w      *glfw.Window
	onEv   func(core.Event)
	flags  core.WindowFlags
	hasCtx bool

	lastX, lastY float64
	havePos      bool

	dnd         bool
	mouseHidden bool
	holding     bool
	cursor      *glfw.Cursor

	minW, minH int
	maxW, maxH int

	// windowed geometry restored when leaving fullscreen
	winX, winY, winW, winH int
}

// NewGLFWWindow creates a window from cfg. Must be called on the main thread
// before any GL calls.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	if err := Init(); err != nil {
		return nil, err
	}

	hints := cfg.GL
	if hints == (core.GLHints{}) {
		hints = core.DefaultGLHints()
	}
	glfw.DefaultWindowHints()
	applyHints(windowHints(cfg.Flags))
	applyHints(contextHints(cfg.Flags, hints))

	width, height := cfg.Width, cfg.Height
	var mon *glfw.Monitor
	if cfg.Flags&core.WindowFullscreen != 0 {
		mon = glfw.GetPrimaryMonitor()
		if vm := mon.GetVideoMode(); vm != nil {
			width, height = vm.Width, vm.Height
		}
	}

	win, err := glfw.CreateWindow(width, height, cfg.Title, mon, nil)
	if err != nil {
		Terminate()
		return nil, fmt.Errorf("create window %q: %w", cfg.Title, err)
	}

	gw := &GLFWWindow{
		w:      win,
		onEv:   onEvent,
		flags:  cfg.Flags,
		hasCtx: cfg.Flags.WantsContext(),
		minW:   glfw.DontCare,
		minH:   glfw.DontCare,
		maxW:   glfw.DontCare,
		maxH:   glfw.DontCare,
		winX:   cfg.X,
		winY:   cfg.Y,
		winW:   cfg.Width,
		winH:   cfg.Height,
	}

	if gw.hasCtx {
		win.MakeContextCurrent()
		if cfg.VSync {
			glfw.SwapInterval(1)
		} else {
			glfw.SwapInterval(0)
		}
	}

	switch {
	case mon != nil:
	case cfg.Flags&core.WindowCenter != 0:
		gw.Center()
	default:
		win.SetPos(cfg.X, cfg.Y)
	}
	if cfg.Flags&core.WindowHideMouse != 0 {
		gw.ShowMouse(false)
	}
	if cfg.Flags&core.WindowMinimize != 0 {
		win.Iconify()
	}
	gw.dnd = cfg.Flags&core.WindowAllowDND != 0
	win.SetInputMode(glfw.LockKeyMods, glfw.True)

	gw.installCallbacks()

	core.Logger().Info("window created",
		"title", cfg.Title, "width", width, "height", height,
		"flags", fmt.Sprintf("%#x", uint32(cfg.Flags)))
	return gw, nil
}

func (g *GLFWWindow) installCallbacks() {
	win := g.w
	win.SetCloseCallback(func(*glfw.Window) { g.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.emit(core.EventResize{W: w, H: h})
	})
	win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		g.emit(core.EventMove{X: x, Y: y})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		var vx, vy float64
		if g.havePos {
			vx, vy = x-g.lastX, y-g.lastY
		}
		g.lastX, g.lastY, g.havePos = x, y, true
		g.emit(core.EventMouseMove{X: x, Y: y, VecX: vx, VecY: vy})
	})
	win.SetCursorEnterCallback(func(w *glfw.Window, entered bool) {
		x, y := w.GetCursorPos()
		g.emit(core.EventMouseNotify{X: x, Y: y, Inside: entered})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyNull {
			return
		}
		m := translateMods(mods)
		g.emit(core.EventKey{
			Key:    k,
			Sym:    keySym(k, m),
			Mods:   m,
			Repeat: action == glfw.Repeat,
			Down:   action != glfw.Release,
		})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := translateButton(button)
		if !ok {
			return
		}
		g.emit(core.EventMouseButton{Button: b, Down: action == glfw.Press})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		g.emit(core.EventScroll{X: xoff, Y: yoff})
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		g.emit(core.EventFocus{Focused: focused})
	})
	win.SetRefreshCallback(func(*glfw.Window) { g.emit(core.EventRefresh{}) })
	win.SetMaximizeCallback(func(w *glfw.Window, maximized bool) {
		g.emitState(w, maximized, core.EventWindowMaximized)
	})
	win.SetIconifyCallback(func(w *glfw.Window, iconified bool) {
		g.emitState(w, iconified, core.EventWindowMinimized)
	})
	win.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		g.emit(core.EventScale{X: x, Y: y})
	})
	win.SetDropCallback(func(w *glfw.Window, names []string) {
		if !g.dnd {
			return
		}
		x, y := w.GetCursorPos()
		files := append([]string(nil), names...)
		g.emit(core.EventDrop{X: x, Y: y, Files: files})
	})
}

func (g *GLFWWindow) emitState(w *glfw.Window, on bool, state core.EventType) {
	if !on {
		state = core.EventWindowRestored
	}
	x, y := w.GetPos()
	width, height := w.GetSize()
	g.emit(core.EventWindowState{State: state, X: x, Y: y, W: width, H: height})
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) SetShouldClose(v bool)                { g.w.SetShouldClose(v) }
func (g *GLFWWindow) Size() (int, int)                     { return g.w.GetSize() }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }
func (g *GLFWWindow) MakeContextCurrent()                  { g.w.MakeContextCurrent() }

func (g *GLFWWindow) CursorPos() (float64, float64, bool) {
	x, y := g.w.GetCursorPos()
	return x, y, g.w.GetAttrib(glfw.Hovered) == glfw.True
}

func (g *GLFWWindow) SwapInterval(n int) {
	g.w.MakeContextCurrent()
	glfw.SwapInterval(n)
}

func (g *GLFWWindow) GetProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// Close destroys the window and releases its GLFW reference. Safe to call twice.
func (g *GLFWWindow) Close() {
	if g.w == nil {
		return
	}
	if g.cursor != nil {
		g.cursor.Destroy()
		g.cursor = nil
	}
	g.w.Destroy()
	g.w = nil
	Terminate()
}

// Native returns the underlying GLFW window.
func (g *GLFWWindow) Native() *glfw.Window { return g.w }

func (g *GLFWWindow) Flags() core.WindowFlags { return g.flags }

// SetFlags applies the runtime-changeable subset of flags.
func (g *GLFWWindow) SetFlags(flags core.WindowFlags) {
	changed := g.flags ^ flags
	if changed&core.WindowNoBorder != 0 {
		g.SetBorder(flags&core.WindowNoBorder == 0)
	}
	if changed&core.WindowNoResize != 0 {
		g.w.SetAttrib(glfw.Resizable, boolHint(flags&core.WindowNoResize == 0))
	}
	if changed&core.WindowFloating != 0 {
		g.SetFloating(flags&core.WindowFloating != 0)
	}
	if changed&core.WindowHideMouse != 0 {
		g.ShowMouse(flags&core.WindowHideMouse == 0)
	}
	if changed&core.WindowAllowDND != 0 {
		g.dnd = flags&core.WindowAllowDND != 0
	}
	if changed&core.WindowFullscreen != 0 {
		g.SetFullscreen(flags&core.WindowFullscreen != 0)
	}
	if changed&core.WindowHide != 0 {
		if flags&core.WindowHide != 0 {
			g.Hide()
		} else {
			g.Show()
		}
	}
	if flags&core.WindowMaximize != 0 && changed&core.WindowMaximize != 0 {
		g.Maximize()
	}
	if flags&core.WindowMinimize != 0 && changed&core.WindowMinimize != 0 {
		g.Minimize()
	}
	if flags&core.WindowCenter != 0 {
		g.Center()
	}
	g.flags = flags
}

func (g *GLFWWindow) Position() (int, int) { return g.w.GetPos() }
func (g *GLFWWindow) Move(x, y int)        { g.w.SetPos(x, y) }
func (g *GLFWWindow) Resize(w, h int)      { g.w.SetSize(w, h) }

func (g *GLFWWindow) SetAspectRatio(w, h int) {
	if w <= 0 || h <= 0 {
		g.w.SetAspectRatio(glfw.DontCare, glfw.DontCare)
		return
	}
	g.w.SetAspectRatio(w, h)
}

// SetMinSize limits the window size; a zero size removes the limit.
func (g *GLFWWindow) SetMinSize(w, h int) {
	g.minW, g.minH = dontCareIfZero(w), dontCareIfZero(h)
	g.w.SetSizeLimits(g.minW, g.minH, g.maxW, g.maxH)
}

func (g *GLFWWindow) SetMaxSize(w, h int) {
	g.maxW, g.maxH = dontCareIfZero(w), dontCareIfZero(h)
	g.w.SetSizeLimits(g.minW, g.minH, g.maxW, g.maxH)
}

func dontCareIfZero(v int) int {
	if v <= 0 {
		return glfw.DontCare
	}
	return v
}

func (g *GLFWWindow) Focus()          { g.w.Focus() }
func (g *GLFWWindow) IsFocused() bool { return g.w.GetAttrib(glfw.Focused) == glfw.True }

// Raise brings the window to the front and asks for the user's attention.
func (g *GLFWWindow) Raise() {
	g.w.Show()
	g.w.Focus()
	g.w.RequestAttention()
}

func (g *GLFWWindow) Maximize()          { g.w.Maximize() }
func (g *GLFWWindow) Minimize()          { g.w.Iconify() }
func (g *GLFWWindow) Restore()           { g.w.Restore() }
func (g *GLFWWindow) Hide()              { g.w.Hide() }
func (g *GLFWWindow) Show()              { g.w.Show() }
func (g *GLFWWindow) IsHidden() bool     { return g.w.GetAttrib(glfw.Visible) == glfw.False }
func (g *GLFWWindow) IsMinimized() bool  { return g.w.GetAttrib(glfw.Iconified) == glfw.True }
func (g *GLFWWindow) IsMaximized() bool  { return g.w.GetAttrib(glfw.Maximized) == glfw.True }
func (g *GLFWWindow) IsFloating() bool   { return g.w.GetAttrib(glfw.Floating) == glfw.True }
func (g *GLFWWindow) IsFullscreen() bool { return g.w.GetMonitor() != nil }
func (g *GLFWWindow) Borderless() bool   { return g.w.GetAttrib(glfw.Decorated) == glfw.False }

func (g *GLFWWindow) SetFloating(on bool) { g.w.SetAttrib(glfw.Floating, boolHint(on)) }
func (g *GLFWWindow) SetBorder(on bool)   { g.w.SetAttrib(glfw.Decorated, boolHint(on)) }

func (g *GLFWWindow) SetOpacity(alpha uint8) { g.w.SetOpacity(float32(alpha) / 255) }

func (g *GLFWWindow) SetDND(allow bool) { g.dnd = allow }
func (g *GLFWWindow) AllowsDND() bool   { return g.dnd }

// SetFullscreen moves the window onto its current monitor at the monitor's
// video mode, or back to the remembered windowed geometry.
func (g *GLFWWindow) SetFullscreen(on bool) {
	if on == g.IsFullscreen() {
		return
	}
	if on {
		g.winX, g.winY = g.w.GetPos()
		g.winW, g.winH = g.w.GetSize()
		mon := g.currentMonitor()
		vm := mon.GetVideoMode()
		g.w.SetMonitor(mon, 0, 0, vm.Width, vm.Height, vm.RefreshRate)
		return
	}
	g.w.SetMonitor(nil, g.winX, g.winY, g.winW, g.winH, 0)
}

// Center places the window in the middle of its monitor's work area.
func (g *GLFWWindow) Center() {
	mon := g.currentMonitor()
	if mon == nil {
		return
	}
	mx, my, mw, mh := mon.GetWorkarea()
	w, h := g.w.GetSize()
	g.w.SetPos(mx+(mw-w)/2, my+(mh-h)/2)
}

// SetIcon sets the window icon; no images restores the default.
func (g *GLFWWindow) SetIcon(images ...image.Image) {
	g.w.SetIcon(images)
}

func (g *GLFWWindow) SetCursor(c *Cursor) {
	if c == nil {
		g.w.SetCursor(nil)
		return
	}
	g.w.SetCursor(c.c)
}

func (g *GLFWWindow) SetStandardCursor(kind core.Cursor) bool {
	if kind >= core.CursorCount {
		return false
	}
	c := glfw.CreateStandardCursor(standardCursors[kind])
	if c == nil {
		return false
	}
	if g.cursor != nil {
		g.cursor.Destroy()
	}
	g.cursor = c
	g.w.SetCursor(c)
	return true
}

func (g *GLFWWindow) ResetCursor() {
	g.w.SetCursor(nil)
	if g.cursor != nil {
		g.cursor.Destroy()
		g.cursor = nil
	}
}

func (g *GLFWWindow) ShowMouse(show bool) {
	g.mouseHidden = !show
	g.applyCursorMode()
}

func (g *GLFWWindow) IsMouseHidden() bool { return g.mouseHidden }

// HoldMouse captures the cursor for raw relative motion.
func (g *GLFWWindow) HoldMouse() {
	g.holding = true
	g.applyCursorMode()
	if glfw.RawMouseMotionSupported() {
		g.w.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
}

func (g *GLFWWindow) UnholdMouse() {
	g.holding = false
	if glfw.RawMouseMotionSupported() {
		g.w.SetInputMode(glfw.RawMouseMotion, glfw.False)
	}
	g.applyCursorMode()
}

func (g *GLFWWindow) IsHoldingMouse() bool { return g.holding }

func (g *GLFWWindow) applyCursorMode() {
	switch {
	case g.holding:
		g.w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	case g.mouseHidden:
		g.w.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	default:
		g.w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (g *GLFWWindow) MoveMouse(x, y int) { g.w.SetCursorPos(float64(x), float64(y)) }

func (g *GLFWWindow) ContentScale() (float32, float32) { return g.w.GetContentScale() }

// IsKeyDown queries the live key state, bypassing event tracking.
func (g *GLFWWindow) IsKeyDown(k core.Key) bool {
	gk, ok := reverseKeyTable[k]
	if !ok {
		return false
	}
	return g.w.GetKey(gk) != glfw.Release
}
