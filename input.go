package hoglib

import (
	"github.com/hubastard/hoglib/engine/core"
	"github.com/hubastard/hoglib/engine/platform"
)

// input is fed by every window's events.
var input = core.NewInput()

var pollPlatform = platform.PollEvents

// PollEvents processes pending events for all windows. Pressed and
// released states describe the changes seen by this call.
func PollEvents() {
	input.BeginFrame()
	pollPlatform()
}

func IsKeyPressed(k Key) bool  { return input.IsKeyPressed(k) }
func IsKeyReleased(k Key) bool { return input.IsKeyReleased(k) }
func IsKeyDown(k Key) bool     { return input.IsKeyDown(k) }

func IsMousePressed(b MouseButton) bool  { return input.IsMousePressed(b) }
func IsMouseReleased(b MouseButton) bool { return input.IsMouseReleased(b) }
func IsMouseDown(b MouseButton) bool     { return input.IsMouseDown(b) }

// MouseScroll returns the scroll offset accumulated since the last poll.
func MouseScroll() (x, y float64) { return input.MouseScroll() }

// MouseVector returns the raw mouse motion since the last poll.
func MouseVector() (x, y float64) { return input.MouseVector() }
