package mediahog

import (
	"github.com/hubastard/hoglib/engine/core"
	"github.com/hubastard/hoglib/engine/platform"
)

// Monitors lists connected monitors, primary first. Empty before Init.
func Monitors() []Monitor {
	if requireWindowing("monitors") != nil {
		return nil
	}
	return platform.Monitors()
}

func PrimaryMonitor() Monitor {
	if requireWindowing("primary monitor") != nil {
		return Monitor{}
	}
	return platform.PrimaryMonitor()
}

// MonitorModeCompare reports whether a and b agree on the requested fields.
func MonitorModeCompare(a, b MonitorMode, req ModeRequest) bool {
	return core.CompareModes(a, b, req)
}

// Monitor returns the monitor the window is on.
func (w *Window) Monitor() Monitor { return w.gw.Monitor() }

func (w *Window) MoveToMonitor(m Monitor) bool { return w.gw.MoveToMonitor(m) }

// ScaleToMonitor resizes the window to its monitor's work area.
func (w *Window) ScaleToMonitor() { w.gw.ScaleToMonitor() }

// RequestMonitorMode switches the window's monitor to mode, making the
// window fullscreen on it.
func (w *Window) RequestMonitorMode(mode MonitorMode, req ModeRequest) bool {
	ok := w.gw.RequestMonitorMode(w.gw.Monitor(), mode, req)
	if !ok {
		sendWarning(InfoMonitor, "monitor mode request failed")
	}
	return ok
}

func ReadClipboard() string {
	if err := requireWindowing("read clipboard"); err != nil {
		sendError(ErrClipboard, err)
		return ""
	}
	return platform.ReadClipboard()
}

func WriteClipboard(s string) {
	if err := requireWindowing("write clipboard"); err != nil {
		sendError(ErrClipboard, err)
		return
	}
	platform.WriteClipboard(s)
}
