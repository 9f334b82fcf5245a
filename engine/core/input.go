package core

// Input accumulates keyboard and mouse state from events. Pressed and
// released are edges relative to the previous BeginFrame.
type Input struct {
	keys, prevKeys       [KeyLast]bool
	buttons, prevButtons [MouseFinal]bool

	mouseX, mouseY   float64
	scrollX, scrollY float64
	vecX, vecY       float64
	mods             Mod

	inside        bool
	entered, left bool
	dragging      bool
	dragX, dragY  float64
	dropped       bool
	dropFiles     []string
}

func NewInput() *Input { return &Input{} }

// BeginFrame rolls current state into previous and clears per-frame data.
// Call it right before polling events.
func (in *Input) BeginFrame() {
	in.prevKeys = in.keys
	in.prevButtons = in.buttons
	in.scrollX, in.scrollY = 0, 0
	in.vecX, in.vecY = 0, 0
	in.entered, in.left = false, false
	in.dropped = false
	in.dropFiles = nil
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Key < KeyLast {
			in.keys[e.Key] = e.Down
		}
		in.mods = e.Mods
	case EventMouseButton:
		if e.Button < MouseFinal {
			in.buttons[e.Button] = e.Down
		}
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
		in.vecX += e.VecX
		in.vecY += e.VecY
	case EventScroll:
		in.scrollX += e.X
		in.scrollY += e.Y
	case EventMouseNotify:
		in.inside = e.Inside
		if e.Inside {
			in.entered = true
		} else {
			in.left = true
		}
	case EventDrag:
		in.dragging = true
		in.dragX, in.dragY = e.X, e.Y
	case EventDrop:
		in.dragging = false
		in.dropped = true
		in.dropFiles = e.Files
		in.dragX, in.dragY = e.X, e.Y
	case EventFocus:
		if !e.Focused {
			// Releases are not reported for keys held while focus leaves.
			in.keys = [KeyLast]bool{}
			in.buttons = [MouseFinal]bool{}
		}
	}
}

func (in *Input) IsKeyDown(k Key) bool     { return k < KeyLast && in.keys[k] }
func (in *Input) IsKeyPressed(k Key) bool  { return k < KeyLast && in.keys[k] && !in.prevKeys[k] }
func (in *Input) IsKeyReleased(k Key) bool { return k < KeyLast && !in.keys[k] && in.prevKeys[k] }

func (in *Input) IsMouseDown(b MouseButton) bool { return b < MouseFinal && in.buttons[b] }
func (in *Input) IsMousePressed(b MouseButton) bool {
	return b < MouseFinal && in.buttons[b] && !in.prevButtons[b]
}
func (in *Input) IsMouseReleased(b MouseButton) bool {
	return b < MouseFinal && !in.buttons[b] && in.prevButtons[b]
}

func (in *Input) Mouse() (float64, float64)       { return in.mouseX, in.mouseY }
func (in *Input) MouseScroll() (float64, float64) { return in.scrollX, in.scrollY }
func (in *Input) MouseVector() (float64, float64) { return in.vecX, in.vecY }
func (in *Input) Mods() Mod                       { return in.mods }

func (in *Input) IsMouseInside() bool { return in.inside }
func (in *Input) DidMouseEnter() bool { return in.entered }
func (in *Input) DidMouseLeave() bool { return in.left }

func (in *Input) IsDataDragging() bool { return in.dragging }

// DataDrag returns the drag position while a drag is in progress.
func (in *Input) DataDrag() (x, y float64, ok bool) {
	return in.dragX, in.dragY, in.dragging
}

func (in *Input) DidDataDrop() bool { return in.dropped }

// DataDrop returns the files dropped during the current frame.
func (in *Input) DataDrop() ([]string, bool) { return in.dropFiles, in.dropped }
