package core

// EventType identifies the kind of an Event.
type EventType uint8

const (
	EventNone EventType = iota
	EventKeyPressed
	EventKeyReleased
	EventMouseButtonPressed
	EventMouseButtonReleased
	EventMouseScroll
	EventMousePosChanged
	EventWindowMoved
	EventWindowResized
	EventFocusIn
	EventFocusOut
	EventMouseEnter
	EventMouseLeave
	EventWindowRefresh
	EventQuit
	EventDataDrop
	EventDataDrag
	EventWindowMaximized
	EventWindowMinimized
	EventWindowRestored
	EventScaleUpdated
	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"none", "key-pressed", "key-released", "mouse-button-pressed", "mouse-button-released",
	"mouse-scroll", "mouse-pos-changed", "window-moved", "window-resized", "focus-in",
	"focus-out", "mouse-enter", "mouse-leave", "window-refresh", "quit", "data-drop",
	"data-drag", "window-maximized", "window-minimized", "window-restored", "scale-updated",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Flag returns the EventFlag bit for t.
func (t EventType) Flag() EventFlag { return EventFlag(1) << t }

// EventFlag is a set of event types.
type EventFlag uint32

const (
	KeyPressedFlag          = EventFlag(1) << EventKeyPressed
	KeyReleasedFlag         = EventFlag(1) << EventKeyReleased
	MouseScrollFlag         = EventFlag(1) << EventMouseScroll
	MouseButtonPressedFlag  = EventFlag(1) << EventMouseButtonPressed
	MouseButtonReleasedFlag = EventFlag(1) << EventMouseButtonReleased
	MousePosChangedFlag     = EventFlag(1) << EventMousePosChanged
	MouseEnterFlag          = EventFlag(1) << EventMouseEnter
	MouseLeaveFlag          = EventFlag(1) << EventMouseLeave
	WindowMovedFlag         = EventFlag(1) << EventWindowMoved
	WindowResizedFlag       = EventFlag(1) << EventWindowResized
	FocusInFlag             = EventFlag(1) << EventFocusIn
	FocusOutFlag            = EventFlag(1) << EventFocusOut
	WindowRefreshFlag       = EventFlag(1) << EventWindowRefresh
	WindowMaximizedFlag     = EventFlag(1) << EventWindowMaximized
	WindowMinimizedFlag     = EventFlag(1) << EventWindowMinimized
	WindowRestoredFlag      = EventFlag(1) << EventWindowRestored
	ScaleUpdatedFlag        = EventFlag(1) << EventScaleUpdated
	QuitFlag                = EventFlag(1) << EventQuit
	DataDropFlag            = EventFlag(1) << EventDataDrop
	DataDragFlag            = EventFlag(1) << EventDataDrag

	KeyEventsFlag      = KeyPressedFlag | KeyReleasedFlag
	MouseEventsFlag    = MouseButtonPressedFlag | MouseButtonReleasedFlag | MousePosChangedFlag | MouseEnterFlag | MouseLeaveFlag | MouseScrollFlag
	WindowEventsFlag   = WindowMovedFlag | WindowResizedFlag | WindowRefreshFlag | WindowMaximizedFlag | WindowMinimizedFlag | WindowRestoredFlag | ScaleUpdatedFlag
	FocusEventsFlag    = FocusInFlag | FocusOutFlag
	DataDropEventsFlag = DataDropFlag | DataDragFlag
	AllEventFlags      = KeyEventsFlag | MouseEventsFlag | WindowEventsFlag | FocusEventsFlag | DataDropEventsFlag | QuitFlag
)

// Allows reports whether events of type t pass the set.
func (f EventFlag) Allows(t EventType) bool { return f&t.Flag() != 0 }

// Event is anything a platform window reports.
type Event interface {
	Type() EventType
}

type EventKey struct {
	Key    Key
	Sym    rune // mapped character, 0 when the key has none
	Mods   Mod
	Repeat bool
	Down   bool
}

func (e EventKey) Type() EventType {
	if e.Down {
		return EventKeyPressed
	}
	return EventKeyReleased
}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

func (e EventMouseButton) Type() EventType {
	if e.Down {
		return EventMouseButtonPressed
	}
	return EventMouseButtonReleased
}

type EventScroll struct{ X, Y float64 }

func (EventScroll) Type() EventType { return EventMouseScroll }

// EventMouseMove carries the cursor position and the raw movement since
// the previous position.
type EventMouseMove struct {
	X, Y       float64
	VecX, VecY float64
}

func (EventMouseMove) Type() EventType { return EventMousePosChanged }

type EventMove struct{ X, Y int }

func (EventMove) Type() EventType { return EventWindowMoved }

type EventResize struct{ W, H int }

func (EventResize) Type() EventType { return EventWindowResized }

type EventFocus struct{ Focused bool }

func (e EventFocus) Type() EventType {
	if e.Focused {
		return EventFocusIn
	}
	return EventFocusOut
}

type EventMouseNotify struct {
	X, Y   float64
	Inside bool
}

func (e EventMouseNotify) Type() EventType {
	if e.Inside {
		return EventMouseEnter
	}
	return EventMouseLeave
}

type EventRefresh struct{}

func (EventRefresh) Type() EventType { return EventWindowRefresh }

type EventCloseRequested struct{}

func (EventCloseRequested) Type() EventType { return EventQuit }

type EventDrop struct {
	X, Y  float64
	Files []string
}

func (EventDrop) Type() EventType { return EventDataDrop }

type EventDrag struct{ X, Y float64 }

func (EventDrag) Type() EventType { return EventDataDrag }

// EventWindowState reports a maximize, minimize or restore transition
// together with the resulting geometry.
type EventWindowState struct {
	State      EventType
	X, Y, W, H int
}

func (e EventWindowState) Type() EventType { return e.State }

type EventScale struct{ X, Y float32 }

func (EventScale) Type() EventType { return EventScaleUpdated }
