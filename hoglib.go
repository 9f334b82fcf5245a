// Package hoglib is a small multimedia facade: windows and input over GLFW,
// a batched 2D OpenGL renderer, glyph-atlas text and image loading, all
// behind one flat API.
//
// Every function must be called from the main goroutine; GLFW and OpenGL
// contexts are bound to the thread that created them.
package hoglib

import (
	"github.com/hubastard/hoglib/engine/colors"
	"github.com/hubastard/hoglib/engine/core"
)

type (
	Key         = core.Key
	MouseButton = core.MouseButton
	WindowFlags = core.WindowFlags
	Event       = core.Event

	RendererType = core.RendererType

	Color       = colors.Color
	Rect        = core.Rect
	Vec2        = core.Vec2
	TextureBlob = core.TextureBlob
)

const (
	RendererOpenGLModern = core.RendererOpenGLModern
	RendererOpenGLLegacy = core.RendererOpenGLLegacy
)

const (
	WindowNoBorder       = core.WindowNoBorder
	WindowNoResize       = core.WindowNoResize
	WindowAllowDND       = core.WindowAllowDND
	WindowHideMouse      = core.WindowHideMouse
	WindowFullscreen     = core.WindowFullscreen
	WindowTransparent    = core.WindowTransparent
	WindowScaleToMonitor = core.WindowScaleToMonitor
	WindowHide           = core.WindowHide
	WindowMaximize       = core.WindowMaximize
	WindowFloating       = core.WindowFloating
	WindowFocusOnShow    = core.WindowFocusOnShow
	WindowMinimize       = core.WindowMinimize
	WindowFocus          = core.WindowFocus
	WindowGLLegacy       = core.WindowGLLegacy
	WindowGLModern       = core.WindowGLModern
	WindowOpenGL         = core.WindowOpenGL
)

// RGBA and RGB build colours for the draw calls.
func RGBA(r, g, b, a uint8) Color { return colors.RGBA(r, g, b, a) }
func RGB(r, g, b uint8) Color     { return colors.RGB(r, g, b) }

// GetTime returns seconds from a monotonic clock.
func GetTime() float64 { return core.GetTime() }

// Sleep blocks the calling goroutine.
func Sleep(seconds float64) { core.Sleep(seconds) }
