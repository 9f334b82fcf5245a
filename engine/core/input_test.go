package core

import "testing"

func TestInputKeyEdges(t *testing.T) {
	in := NewInput()

	in.BeginFrame()
	in.Handle(EventKey{Key: KeyA, Down: true})
	if !in.IsKeyPressed(KeyA) || !in.IsKeyDown(KeyA) || in.IsKeyReleased(KeyA) {
		t.Fatal("first frame: want pressed and down")
	}

	in.BeginFrame()
	if in.IsKeyPressed(KeyA) {
		t.Fatal("held key reported pressed on second frame")
	}
	if !in.IsKeyDown(KeyA) {
		t.Fatal("held key not down")
	}

	in.BeginFrame()
	in.Handle(EventKey{Key: KeyA, Down: false})
	if !in.IsKeyReleased(KeyA) || in.IsKeyDown(KeyA) {
		t.Fatal("want released and not down")
	}

	in.BeginFrame()
	if in.IsKeyReleased(KeyA) {
		t.Fatal("release edge lasted more than one frame")
	}
}

func TestInputMouse(t *testing.T) {
	in := NewInput()
	in.BeginFrame()
	in.Handle(EventMouseButton{Button: MouseRight, Down: true})
	in.Handle(EventMouseMove{X: 10, Y: 20, VecX: 1, VecY: 2})
	in.Handle(EventMouseMove{X: 12, Y: 25, VecX: 2, VecY: 5})
	in.Handle(EventScroll{X: 0, Y: 1})
	in.Handle(EventScroll{X: 0, Y: 2})

	if !in.IsMousePressed(MouseRight) || in.IsMousePressed(MouseLeft) {
		t.Fatal("unexpected button state")
	}
	if x, y := in.Mouse(); x != 12 || y != 25 {
		t.Fatalf("Mouse() = %v,%v", x, y)
	}
	if x, y := in.MouseVector(); x != 3 || y != 7 {
		t.Fatalf("MouseVector() = %v,%v", x, y)
	}
	if _, y := in.MouseScroll(); y != 3 {
		t.Fatalf("scroll y = %v, want 3", y)
	}

	in.BeginFrame()
	if x, y := in.MouseVector(); x != 0 || y != 0 {
		t.Fatal("vector not reset by BeginFrame")
	}
	if _, y := in.MouseScroll(); y != 0 {
		t.Fatal("scroll not reset by BeginFrame")
	}
	in.Handle(EventMouseButton{Button: MouseRight, Down: false})
	if !in.IsMouseReleased(MouseRight) {
		t.Fatal("want released")
	}
}

func TestInputOutOfRange(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyLast + 5, Down: true})
	in.Handle(EventMouseButton{Button: MouseFinal, Down: true})
	if in.IsKeyDown(KeyLast+5) || in.IsMouseDown(MouseFinal) {
		t.Fatal("out of range codes must be ignored")
	}
}

func TestInputFocusLossClearsKeys(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyW, Down: true})
	in.Handle(EventFocus{Focused: false})
	if in.IsKeyDown(KeyW) {
		t.Fatal("key still down after focus loss")
	}
}

func TestInputDragDrop(t *testing.T) {
	in := NewInput()
	in.BeginFrame()
	in.Handle(EventMouseNotify{Inside: true})
	in.Handle(EventDrag{X: 4, Y: 5})
	if !in.IsDataDragging() || !in.DidMouseEnter() || !in.IsMouseInside() {
		t.Fatal("drag/enter not tracked")
	}
	if x, y, ok := in.DataDrag(); !ok || x != 4 || y != 5 {
		t.Fatalf("DataDrag() = %v,%v,%v", x, y, ok)
	}
	in.Handle(EventDrop{Files: []string{"a.png", "b.png"}})
	files, ok := in.DataDrop()
	if !ok || len(files) != 2 || in.IsDataDragging() {
		t.Fatalf("DataDrop() = %v,%v", files, ok)
	}
	in.BeginFrame()
	if in.DidDataDrop() || in.DidMouseEnter() {
		t.Fatal("per-frame flags survived BeginFrame")
	}
	if !in.IsMouseInside() {
		t.Fatal("inside state must persist")
	}
}
