package core

import "testing"

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue(4)
	q.Push(EventResize{W: 1})
	q.Push(EventResize{W: 2})
	for _, want := range []int{1, 2} {
		ev, ok := q.Next()
		if !ok {
			t.Fatal("queue empty too early")
		}
		if got := ev.(EventResize).W; got != want {
			t.Fatalf("got W=%d, want %d", got, want)
		}
	}
	if _, ok := q.Next(); ok {
		t.Fatal("queue should be empty")
	}
}

func TestEventQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue(2)
	for i := 1; i <= 3; i++ {
		q.Push(EventMove{X: i})
	}
	if q.Len() != 2 || q.Dropped() != 1 {
		t.Fatalf("Len=%d Dropped=%d", q.Len(), q.Dropped())
	}
	ev, _ := q.Next()
	if ev.(EventMove).X != 2 {
		t.Fatalf("oldest survivor = %d, want 2", ev.(EventMove).X)
	}
}

func TestEventQueueMask(t *testing.T) {
	q := NewEventQueue(0)
	q.SetState(MouseEventsFlag, false)
	if q.Push(EventMouseMove{X: 1}) {
		t.Fatal("disabled event was queued")
	}
	if !q.Push(EventKey{Key: KeyA, Down: true}) {
		t.Fatal("enabled event rejected")
	}
	q.SetEnabled(KeyReleasedFlag)
	if q.Push(EventKey{Key: KeyA, Down: true}) {
		t.Fatal("key press passed a release-only mask")
	}
	if q.Push(nil) {
		t.Fatal("nil event queued")
	}
	q.Clear()
	if q.Len() != 0 {
		t.Fatal("Clear left events behind")
	}
}

func TestEventTypeFlags(t *testing.T) {
	tests := []struct {
		ev   Event
		want EventType
	}{
		{EventKey{Down: true}, EventKeyPressed},
		{EventKey{}, EventKeyReleased},
		{EventMouseButton{Down: true}, EventMouseButtonPressed},
		{EventFocus{Focused: false}, EventFocusOut},
		{EventMouseNotify{Inside: true}, EventMouseEnter},
		{EventWindowState{State: EventWindowMaximized}, EventWindowMaximized},
		{EventCloseRequested{}, EventQuit},
		{EventScale{}, EventScaleUpdated},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := tt.ev.Type(); got != tt.want {
				t.Fatalf("Type() = %v, want %v", got, tt.want)
			}
			if !AllEventFlags.Allows(tt.ev.Type()) {
				t.Fatalf("AllEventFlags does not cover %v", tt.want)
			}
		})
	}
	if AllEventFlags.Allows(EventNone) {
		t.Fatal("AllEventFlags must not include EventNone")
	}
}
