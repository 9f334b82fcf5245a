package mediahog

import "github.com/hubastard/hoglib/engine/core"

// WindowFlags uses this draft's bit layout, which differs from
// core.WindowFlags from bit 7 upward.
type WindowFlags uint32

const (
	WindowNoBorder       WindowFlags = 1 << 0
	WindowNoResize       WindowFlags = 1 << 1
	WindowAllowDND       WindowFlags = 1 << 2
	WindowHideMouse      WindowFlags = 1 << 3
	WindowFullscreen     WindowFlags = 1 << 4
	WindowTransparent    WindowFlags = 1 << 5
	WindowCenter         WindowFlags = 1 << 6
	WindowScaleToMonitor WindowFlags = 1 << 8
	WindowHide           WindowFlags = 1 << 9
	WindowMaximize       WindowFlags = 1 << 10
	WindowCenterCursor   WindowFlags = 1 << 11
	WindowFloating       WindowFlags = 1 << 12
	WindowFocusOnShow    WindowFlags = 1 << 13
	WindowMinimize       WindowFlags = 1 << 14
	WindowFocus          WindowFlags = 1 << 15
	WindowOpenGL         WindowFlags = 1 << 17 // create a GL context
	WindowEGL            WindowFlags = 1 << 18 // create the GL context through EGL

	WindowedFullscreen = WindowNoBorder | WindowMaximize
)

var flagTable = [...]struct {
	mh WindowFlags
	hl core.WindowFlags
}{
	{WindowNoBorder, core.WindowNoBorder},
	{WindowNoResize, core.WindowNoResize},
	{WindowAllowDND, core.WindowAllowDND},
	{WindowHideMouse, core.WindowHideMouse},
	{WindowFullscreen, core.WindowFullscreen},
	{WindowTransparent, core.WindowTransparent},
	{WindowCenter, core.WindowCenter},
	{WindowScaleToMonitor, core.WindowScaleToMonitor},
	{WindowHide, core.WindowHide},
	{WindowMaximize, core.WindowMaximize},
	{WindowCenterCursor, core.WindowCenterCursor},
	{WindowFloating, core.WindowFloating},
	{WindowFocusOnShow, core.WindowFocusOnShow},
	{WindowMinimize, core.WindowMinimize},
	{WindowFocus, core.WindowFocus},
	{WindowOpenGL, core.WindowOpenGL},
	{WindowEGL, core.WindowEGL},
}

// Core translates f into the platform layer's flags. Unknown bits are
// dropped.
func (f WindowFlags) Core() core.WindowFlags {
	var out core.WindowFlags
	for _, e := range flagTable {
		if f&e.mh != 0 {
			out |= e.hl
		}
	}
	return out
}

func flagsFromCore(f core.WindowFlags) WindowFlags {
	var out WindowFlags
	for _, e := range flagTable {
		if f&e.hl != 0 {
			out |= e.mh
		}
	}
	return out
}
