package mediahog

import (
	"sync/atomic"

	"github.com/hubastard/hoglib/engine/core"
)

// WaitForEvent timeouts.
const (
	EventNoWait   = 0
	EventWaitNext = -1
)

var (
	globalInput = core.NewInput()
	queueEvents bool
	stopWait    atomic.Bool
	// frameOpen is set when WaitForEvent already started the current frame.
	frameOpen bool
	lastMouse *Window
)

func beginFrame() {
	globalInput.BeginFrame()
	for _, w := range windows {
		w.input.BeginFrame()
	}
}

// PollEvents processes pending events of every window, starting a new
// input frame unless WaitForEvent just did.
func PollEvents() {
	if !frameOpen {
		beginFrame()
	}
	frameOpen = false
	pollPlatform()
}

// WaitForEvent sleeps until an event arrives, for at most waitMS
// milliseconds. EventNoWait returns at once; EventWaitNext waits without a
// limit. Events that arrive are processed and count toward the next
// PollEvents frame.
func WaitForEvent(waitMS int) {
	if stopWait.Swap(false) {
		return
	}
	if !frameOpen {
		beginFrame()
		frameOpen = true
	}
	switch {
	case waitMS == EventNoWait:
		pollPlatform()
	case waitMS < 0:
		waitPlatform(-1)
	default:
		waitPlatform(float64(waitMS) / 1000)
	}
}

// StopCheckEvents wakes a blocked WaitForEvent and makes the next one
// return immediately. Safe from any goroutine.
func StopCheckEvents() {
	stopWait.Store(true)
	wakePlatform()
}

// SetQueueEvents makes every window queue its events for CheckQueuedEvent.
func SetQueueEvents(on bool) { queueEvents = on }

// CheckEvent returns the window's next event. When the queue is empty it
// polls once per frame; the false return after the last event ends the
// frame. Using CheckEvent turns on queueing for the window.
//
//	for ev, ok := win.CheckEvent(); ok; ev, ok = win.CheckEvent() { ... }
func (w *Window) CheckEvent() (Event, bool) {
	w.queueing = true
	if w.queue.Len() == 0 {
		if w.polled {
			w.polled = false
			return nil, false
		}
		PollEvents()
		w.polled = true
	}
	ev, ok := w.queue.Next()
	if !ok {
		w.polled = false
	}
	return ev, ok
}

// CheckQueuedEvent pops the window's next queued event without polling.
func (w *Window) CheckQueuedEvent() (Event, bool) { return w.queue.Next() }

// SetEnabledEvents replaces the set of events the window reports.
func (w *Window) SetEnabledEvents(f EventFlag) { w.queue.SetEnabled(f) }
func (w *Window) EnabledEvents() EventFlag     { return w.queue.Enabled() }

// SetDisabledEvents enables every event except f.
func (w *Window) SetDisabledEvents(f EventFlag) { w.queue.SetEnabled(core.AllEventFlags &^ f) }

func (w *Window) SetEventState(f EventFlag, on bool) { w.queue.SetState(f, on) }

func (w *Window) IsKeyPressed(k Key) bool  { return w.input.IsKeyPressed(k) }
func (w *Window) IsKeyDown(k Key) bool     { return w.input.IsKeyDown(k) }
func (w *Window) IsKeyReleased(k Key) bool { return w.input.IsKeyReleased(k) }

func (w *Window) IsMousePressed(b MouseButton) bool  { return w.input.IsMousePressed(b) }
func (w *Window) IsMouseDown(b MouseButton) bool     { return w.input.IsMouseDown(b) }
func (w *Window) IsMouseReleased(b MouseButton) bool { return w.input.IsMouseReleased(b) }

func (w *Window) DidMouseLeave() bool { return w.input.DidMouseLeave() }
func (w *Window) DidMouseEnter() bool { return w.input.DidMouseEnter() }
func (w *Window) IsMouseInside() bool { return w.input.IsMouseInside() }

func (w *Window) IsDataDragging() bool { return w.input.IsDataDragging() }

// DataDrag returns the drag position while data is dragged over the window.
func (w *Window) DataDrag() (x, y int, ok bool) {
	fx, fy, ok := w.input.DataDrag()
	return int(fx), int(fy), ok
}

func (w *Window) DidDataDrop() bool { return w.input.DidDataDrop() }

// DataDrop returns the files dropped this frame.
func (w *Window) DataDrop() ([]string, bool) { return w.input.DataDrop() }

func IsKeyPressed(k Key) bool  { return globalInput.IsKeyPressed(k) }
func IsKeyDown(k Key) bool     { return globalInput.IsKeyDown(k) }
func IsKeyReleased(k Key) bool { return globalInput.IsKeyReleased(k) }

func IsMousePressed(b MouseButton) bool  { return globalInput.IsMousePressed(b) }
func IsMouseDown(b MouseButton) bool     { return globalInput.IsMouseDown(b) }
func IsMouseReleased(b MouseButton) bool { return globalInput.IsMouseReleased(b) }

// MouseScroll returns the scroll of the current frame.
func MouseScroll() (x, y float64) { return globalInput.MouseScroll() }

// MouseVector returns the raw mouse motion of the current frame.
func MouseVector() (x, y float64) { return globalInput.MouseVector() }

// GlobalMouse returns the cursor position in screen coordinates, derived
// from the last window the mouse moved over.
func GlobalMouse() (x, y int, ok bool) {
	if lastMouse == nil || lastMouse.win == nil {
		return 0, 0, false
	}
	wx, wy := lastMouse.win.Position()
	mx, my, _ := lastMouse.win.CursorPos()
	return wx + int(mx), wy + int(my), true
}
