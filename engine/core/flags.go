package core

// WindowFlags are creation flags for a window.
type WindowFlags uint32

const (
	WindowNoBorder       WindowFlags = 1 << 0  // no decorations
	WindowNoResize       WindowFlags = 1 << 1  // user cannot resize
	WindowAllowDND       WindowFlags = 1 << 2  // accept drag and drop
	WindowHideMouse      WindowFlags = 1 << 3  // hide the cursor over the window
	WindowFullscreen     WindowFlags = 1 << 4  // start fullscreen
	WindowTransparent    WindowFlags = 1 << 5  // transparent framebuffer
	WindowCenter         WindowFlags = 1 << 6  // center on the primary monitor
	WindowScaleToMonitor WindowFlags = 1 << 7  // scale content to the monitor
	WindowHide           WindowFlags = 1 << 8  // start hidden
	WindowMaximize       WindowFlags = 1 << 9  // start maximized
	WindowCenterCursor   WindowFlags = 1 << 10 // center the cursor on fullscreen windows
	WindowFloating       WindowFlags = 1 << 11 // always on top
	WindowFocusOnShow    WindowFlags = 1 << 12 // take focus when shown
	WindowMinimize       WindowFlags = 1 << 13 // start minimized
	WindowFocus          WindowFlags = 1 << 14 // take focus on creation

	WindowGLLegacy WindowFlags = 1 << 15 // attach the legacy OpenGL renderer
	WindowGLModern WindowFlags = 1 << 16 // attach the modern OpenGL renderer

	WindowOpenGL WindowFlags = 1 << 17 // create a GL context without a renderer
	WindowEGL    WindowFlags = 1 << 18 // create the context through EGL
)

// Has reports whether all bits of f2 are set.
func (f WindowFlags) Has(f2 WindowFlags) bool { return f&f2 == f2 }

// RendererType selects the OpenGL backend.
type RendererType uint8

const (
	RendererNone RendererType = iota
	RendererOpenGLModern
	RendererOpenGLLegacy
)

func (t RendererType) String() string {
	switch t {
	case RendererOpenGLModern:
		return "opengl-modern"
	case RendererOpenGLLegacy:
		return "opengl-legacy"
	default:
		return "none"
	}
}

// RendererFromFlags picks the renderer requested by flags. Legacy wins
// when both renderer bits are set.
func RendererFromFlags(f WindowFlags) RendererType {
	switch {
	case f.Has(WindowGLLegacy):
		return RendererOpenGLLegacy
	case f.Has(WindowGLModern):
		return RendererOpenGLModern
	default:
		return RendererNone
	}
}

// WantsContext reports whether a window with these flags needs a GL context.
func (f WindowFlags) WantsContext() bool {
	return f&(WindowGLLegacy|WindowGLModern|WindowOpenGL|WindowEGL) != 0
}
