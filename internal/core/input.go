package core

// Button is one of the physical buttons of the handheld the games were
// designed for. The platform maps keyboard keys onto this fixed set.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonA    // primary
	ButtonB    // secondary
	ButtonMenu // menu / exit
	ButtonLB   // left shoulder
	ButtonRB   // right shoulder
	buttonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonMenu:
		return "Menu"
	case ButtonLB:
		return "LB"
	case ButtonRB:
		return "RB"
	default:
		return "Unknown"
	}
}

type buttonMask uint16

func (m buttonMask) has(b Button) bool { return m&(1<<b) != 0 }

// InputFrame is the button snapshot for a single simulation tick.
// Games query it the way a handheld exposes its buttons: held, just pressed
// this tick, or just released this tick.
type InputFrame struct {
	held     buttonMask
	pressed  buttonMask
	released buttonMask
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Tap returns a frame in which every given button was just pressed.
func Tap(buttons ...Button) InputFrame {
	var f InputFrame
	for _, b := range buttons {
		f.Press(b)
	}
	return f
}

// Press marks a button as held and just pressed.
func (f *InputFrame) Press(b Button) {
	f.held |= 1 << b
	f.pressed |= 1 << b
}

// Hold marks a button as held without a fresh press.
func (f *InputFrame) Hold(b Button) {
	f.held |= 1 << b
}

// Release marks a button as just released.
func (f *InputFrame) Release(b Button) {
	f.held &^= 1 << b
	f.pressed &^= 1 << b
	f.released |= 1 << b
}

// IsPressed reports whether the button is currently held down.
func (f InputFrame) IsPressed(b Button) bool { return f.held.has(b) }

// IsJustPressed reports whether the button went down this tick.
func (f InputFrame) IsJustPressed(b Button) bool { return f.pressed.has(b) }

// IsJustReleased reports whether the button came up this tick.
func (f InputFrame) IsJustReleased(b Button) bool { return f.released.has(b) }

// Empty reports whether nothing is held, pressed or released.
func (f InputFrame) Empty() bool {
	return f.held == 0 && f.pressed == 0 && f.released == 0
}

// InputTracker turns a stream of key events into per-tick InputFrames.
//
// Terminals deliver key presses (and auto-repeats) but no key-up events, so a
// button counts as held for holdTicks ticks after its most recent event. Every
// event is reported as a fresh press, which makes auto-repeat behave like
// repeated taps.
type InputTracker struct {
	holdTicks int
	remaining [buttonCount]int
	hits      buttonMask
	last      buttonMask
}

// NewInputTracker creates a tracker. holdTicks below 1 is treated as 1.
func NewInputTracker(holdTicks int) *InputTracker {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &InputTracker{holdTicks: holdTicks}
}

// Hit records a key event for the button.
func (t *InputTracker) Hit(b Button) {
	if b >= buttonCount {
		return
	}
	t.hits |= 1 << b
	t.remaining[b] = t.holdTicks
}

// Next produces the frame for the coming tick and ages held buttons.
func (t *InputTracker) Next() InputFrame {
	var held buttonMask
	for b := Button(0); b < buttonCount; b++ {
		if t.remaining[b] > 0 {
			held |= 1 << b
			t.remaining[b]--
		}
	}

	f := InputFrame{
		held:     held,
		pressed:  t.hits,
		released: t.last &^ held,
	}
	t.last = held
	t.hits = 0
	return f
}

// Reset forgets all pending and held buttons.
func (t *InputTracker) Reset() {
	t.remaining = [buttonCount]int{}
	t.hits = 0
	t.last = 0
}
