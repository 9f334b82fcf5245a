package mediahog

import "github.com/hubastard/hoglib/engine/core"

type (
	WindowMovedFunc     func(w *Window, x, y int)
	WindowResizedFunc   func(w *Window, width, height int)
	WindowRestoredFunc  func(w *Window, x, y, width, height int)
	WindowMaximizedFunc func(w *Window, x, y, width, height int)
	WindowMinimizedFunc func(w *Window)
	WindowQuitFunc      func(w *Window)
	FocusFunc           func(w *Window, inFocus bool)
	MouseNotifyFunc     func(w *Window, x, y int, inside bool)
	MousePosFunc        func(w *Window, x, y int, vecX, vecY float32)
	DataDragFunc        func(w *Window, x, y int)
	WindowRefreshFunc   func(w *Window)
	KeyFunc             func(w *Window, key Key, sym rune, mods Mod, repeat, pressed bool)
	MouseButtonFunc     func(w *Window, button MouseButton, pressed bool)
	MouseScrollFunc     func(w *Window, x, y float32)
	DataDropFunc        func(w *Window, files []string)
	ScaleUpdatedFunc    func(w *Window, scaleX, scaleY float32)
)

// callbackSet holds the process-wide callbacks, shared by every window.
type callbackSet struct {
	moved       WindowMovedFunc
	resized     WindowResizedFunc
	restored    WindowRestoredFunc
	maximized   WindowMaximizedFunc
	minimized   WindowMinimizedFunc
	quit        WindowQuitFunc
	focus       FocusFunc
	mouseNotify MouseNotifyFunc
	mousePos    MousePosFunc
	dataDrag    DataDragFunc
	refresh     WindowRefreshFunc
	key         KeyFunc
	mouseButton MouseButtonFunc
	scroll      MouseScrollFunc
	dataDrop    DataDropFunc
	scale       ScaleUpdatedFunc
}

var callbacks callbackSet

func swap[F any](slot *F, fn F) F {
	prev := *slot
	*slot = fn
	return prev
}

// Each setter installs fn and returns the previous callback.

func SetWindowMovedCallback(fn WindowMovedFunc) WindowMovedFunc {
	return swap(&callbacks.moved, fn)
}

func SetWindowResizedCallback(fn WindowResizedFunc) WindowResizedFunc {
	return swap(&callbacks.resized, fn)
}

func SetWindowRestoredCallback(fn WindowRestoredFunc) WindowRestoredFunc {
	return swap(&callbacks.restored, fn)
}

func SetWindowMaximizedCallback(fn WindowMaximizedFunc) WindowMaximizedFunc {
	return swap(&callbacks.maximized, fn)
}

func SetWindowMinimizedCallback(fn WindowMinimizedFunc) WindowMinimizedFunc {
	return swap(&callbacks.minimized, fn)
}

func SetWindowQuitCallback(fn WindowQuitFunc) WindowQuitFunc {
	return swap(&callbacks.quit, fn)
}

func SetFocusCallback(fn FocusFunc) FocusFunc {
	return swap(&callbacks.focus, fn)
}

func SetMouseNotifyCallback(fn MouseNotifyFunc) MouseNotifyFunc {
	return swap(&callbacks.mouseNotify, fn)
}

func SetMousePosCallback(fn MousePosFunc) MousePosFunc {
	return swap(&callbacks.mousePos, fn)
}

func SetDataDragCallback(fn DataDragFunc) DataDragFunc {
	return swap(&callbacks.dataDrag, fn)
}

func SetWindowRefreshCallback(fn WindowRefreshFunc) WindowRefreshFunc {
	return swap(&callbacks.refresh, fn)
}

func SetKeyCallback(fn KeyFunc) KeyFunc {
	return swap(&callbacks.key, fn)
}

func SetMouseButtonCallback(fn MouseButtonFunc) MouseButtonFunc {
	return swap(&callbacks.mouseButton, fn)
}

func SetMouseScrollCallback(fn MouseScrollFunc) MouseScrollFunc {
	return swap(&callbacks.scroll, fn)
}

func SetDataDropCallback(fn DataDropFunc) DataDropFunc {
	return swap(&callbacks.dataDrop, fn)
}

func SetScaleUpdatedCallback(fn ScaleUpdatedFunc) ScaleUpdatedFunc {
	return swap(&callbacks.scale, fn)
}

func (cs *callbackSet) fire(w *Window, ev core.Event) {
	switch e := ev.(type) {
	case core.EventMove:
		if cs.moved != nil {
			cs.moved(w, e.X, e.Y)
		}
	case core.EventResize:
		if cs.resized != nil {
			cs.resized(w, e.W, e.H)
		}
	case core.EventWindowState:
		switch e.State {
		case core.EventWindowRestored:
			if cs.restored != nil {
				cs.restored(w, e.X, e.Y, e.W, e.H)
			}
		case core.EventWindowMaximized:
			if cs.maximized != nil {
				cs.maximized(w, e.X, e.Y, e.W, e.H)
			}
		case core.EventWindowMinimized:
			if cs.minimized != nil {
				cs.minimized(w)
			}
		}
	case core.EventCloseRequested:
		if cs.quit != nil {
			cs.quit(w)
		}
	case core.EventFocus:
		if cs.focus != nil {
			cs.focus(w, e.Focused)
		}
	case core.EventMouseNotify:
		if cs.mouseNotify != nil {
			cs.mouseNotify(w, int(e.X), int(e.Y), e.Inside)
		}
	case core.EventMouseMove:
		if cs.mousePos != nil {
			cs.mousePos(w, int(e.X), int(e.Y), float32(e.VecX), float32(e.VecY))
		}
	case core.EventDrag:
		if cs.dataDrag != nil {
			cs.dataDrag(w, int(e.X), int(e.Y))
		}
	case core.EventRefresh:
		if cs.refresh != nil {
			cs.refresh(w)
		}
	case core.EventKey:
		if cs.key != nil {
			cs.key(w, e.Key, e.Sym, e.Mods, e.Repeat, e.Down)
		}
	case core.EventMouseButton:
		if cs.mouseButton != nil {
			cs.mouseButton(w, e.Button, e.Down)
		}
	case core.EventScroll:
		if cs.scroll != nil {
			cs.scroll(w, float32(e.X), float32(e.Y))
		}
	case core.EventDrop:
		if cs.dataDrop != nil {
			cs.dataDrop(w, e.Files)
		}
	case core.EventScale:
		if cs.scale != nil {
			cs.scale(w, e.X, e.Y)
		}
	}
}
