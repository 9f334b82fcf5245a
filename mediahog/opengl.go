package mediahog

import (
	"unsafe"

	"github.com/hubastard/hoglib/engine/core"
)

type (
	GLHints           = core.GLHints
	GLProfile         = core.GLProfile
	GLReleaseBehavior = core.GLReleaseBehavior
	GLRendererKind    = core.GLRendererKind
)

const (
	GLCore          = core.GLCore
	GLCompatibility = core.GLCompatibility
	GLES            = core.GLES

	GLReleaseFlush = core.GLReleaseFlush
	GLReleaseNone  = core.GLReleaseNone

	GLAccelerated = core.GLAccelerated
	GLSoftware    = core.GLSoftware
)

var (
	globalHints   = core.DefaultGLHints()
	currentWindow *Window
)

// SetGlobalHints sets the context hints used by windows created afterwards.
func SetGlobalHints(h GLHints) { globalHints = h }

func GlobalHints() GLHints { return globalHints }

// ResetGlobalHints restores DefaultGLHints.
func ResetGlobalHints() { globalHints = core.DefaultGLHints() }

// windowHints returns the context hints for a new window. Graphics windows
// are drawn by the 3.3 core renderer and get at least that version.
func windowHints(graphics bool) GLHints {
	if graphics {
		return globalHints.ForRenderer(core.RendererOpenGLModern)
	}
	return globalHints
}

// CurrentWindow returns the window whose context was made current last, or
// nil.
func CurrentWindow() *Window { return currentWindow }

func (w *Window) makeCurrent() {
	w.win.MakeContextCurrent()
	currentWindow = w
}

// GetProcAddress looks up a GL function in the current context. It returns
// nil without one.
func GetProcAddress(name string) unsafe.Pointer {
	if !contextReady("get proc address") {
		return nil
	}
	return procAddress(name)
}

// ExtensionSupported reports whether the current context supports ext.
func ExtensionSupported(ext string) bool {
	if !contextReady("extension supported") {
		return false
	}
	return extensionSupported(ext)
}

func contextReady(op string) bool {
	if err := requireWindowing(op); err != nil {
		sendError(ErrOpenGLContext, err)
		return false
	}
	if currentWindow == nil {
		sendWarning(WarningOpenGL, op+": no current context")
		return false
	}
	return true
}
