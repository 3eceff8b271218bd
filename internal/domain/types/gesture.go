package types

import "time"

// ScreenGeometry is the live display size in pixels. It is queried per
// invocation and never persisted.
type ScreenGeometry struct {
	Width  int
	Height int
}

// Point is a screen coordinate in pixels.
type Point struct {
	X int
	Y int
}

// InputEventKind selects how an InputEvent is injected.
type InputEventKind int

const (
	// EventKey presses a single key code.
	EventKey InputEventKind = iota
	// EventText types a string into the focused field.
	EventText
	// EventSwipe drags through Points in order.
	EventSwipe
	// EventStayAwake keeps the screen on while powered.
	EventStayAwake
)

// String returns a short name for logs.
func (k InputEventKind) String() string {
	switch k {
	case EventKey:
		return "key"
	case EventText:
		return "text"
	case EventSwipe:
		return "swipe"
	case EventStayAwake:
		return "stay-awake"
	}
	return "unknown"
}

// Android key codes used by the unlock and call flows.
const (
	KeyWakeUp     = "KEYCODE_WAKEUP"
	KeyEnter      = "KEYCODE_ENTER"
	KeyDPadCenter = "KEYCODE_DPAD_CENTER"
	KeyEndCall    = "KEYCODE_ENDCALL"
)

// InputEvent is one abstract gesture dispatched to the device.
//
// Duration is the timing hint of a swipe: for two points the whole drag, for
// more points the time spent on each segment. Settle is how long the caller
// should wait after injecting the event before sending the next one.
type InputEvent struct {
	Kind     InputEventKind
	KeyCode  string
	Text     string
	Points   []Point
	Duration time.Duration
	Settle   time.Duration
}
