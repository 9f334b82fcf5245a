package platform

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/hoglib/engine/core"
)

var (
	initMu   sync.Mutex
	initRefs int
)

// Init initializes GLFW. Calls are reference counted; each successful Init
// needs a matching Terminate. Must run on the main thread.
func Init() error {
	initMu.Lock()
	defer initMu.Unlock()
	if initRefs == 0 {
		runtime.LockOSThread()
		if err := glfw.Init(); err != nil {
			return fmt.Errorf("glfw init: %w", err)
		}
		major, minor, rev := glfw.GetVersion()
		core.Logger().Info("glfw initialized", "version", fmt.Sprintf("%d.%d.%d", major, minor, rev))
	}
	initRefs++
	return nil
}

// Terminate releases one Init reference and shuts GLFW down on the last.
func Terminate() {
	initMu.Lock()
	defer initMu.Unlock()
	if initRefs == 0 {
		return
	}
	initRefs--
	if initRefs == 0 {
		glfw.Terminate()
		core.Logger().Info("glfw terminated")
	}
}

// Initialized reports whether GLFW is currently up.
func Initialized() bool {
	initMu.Lock()
	defer initMu.Unlock()
	return initRefs > 0
}

// PollEvents processes pending events for every window. Without a live
// GLFW there is nothing to poll.
func PollEvents() {
	if Initialized() {
		glfw.PollEvents()
	}
}

// WaitEvents blocks until an event arrives. A negative timeout waits
// forever, zero only polls. Returns at once when GLFW is not up.
func WaitEvents(timeout float64) {
	if !Initialized() {
		return
	}
	switch {
	case timeout < 0:
		glfw.WaitEvents()
	case timeout == 0:
		glfw.PollEvents()
	default:
		glfw.WaitEventsTimeout(timeout)
	}
}

// PostEmptyEvent wakes a thread blocked in WaitEvents.
func PostEmptyEvent() {
	if Initialized() {
		glfw.PostEmptyEvent()
	}
}

func ReadClipboard() string {
	if !Initialized() {
		return ""
	}
	return glfw.GetClipboardString()
}

func WriteClipboard(s string) {
	if Initialized() {
		glfw.SetClipboardString(s)
	}
}

// SwapInterval sets the swap interval of the current context.
func SwapInterval(n int) {
	if Initialized() {
		glfw.SwapInterval(n)
	}
}

// ExtensionSupported reports whether the current context supports ext.
func ExtensionSupported(ext string) bool {
	if !Initialized() || glfw.GetCurrentContext() == nil {
		return false
	}
	return glfw.ExtensionSupported(ext)
}

// GetProcAddress looks name up in the current context.
func GetProcAddress(name string) unsafe.Pointer {
	if !Initialized() || glfw.GetCurrentContext() == nil {
		return nil
	}
	return glfw.GetProcAddress(name)
}
