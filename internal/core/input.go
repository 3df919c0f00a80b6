package core

// Intent represents a discrete player intent, abstracted from physical input.
// Front ends decode keys, mouse clicks or SSH keystrokes into intents; the game
// never sees raw input events.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeftStart
	IntentMoveLeftStop
	IntentMoveRightStart
	IntentMoveRightStop
	IntentFire
	IntentStart // Start button activated
	IntentQuit
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveLeftStart:
		return "MoveLeftStart"
	case IntentMoveLeftStop:
		return "MoveLeftStop"
	case IntentMoveRightStart:
		return "MoveRightStart"
	case IntentMoveRightStop:
		return "MoveRightStop"
	case IntentFire:
		return "Fire"
	case IntentStart:
		return "Start"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the intents received during one simulation tick.
// Intents are kept in arrival order: a stop followed by a start within the
// same tick must not be reordered.
type InputFrame struct {
	Intents []Intent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Intents: make([]Intent, 0, 4)}
}

// Add appends an intent to the frame. IntentNone is dropped.
func (f *InputFrame) Add(i Intent) {
	if i == IntentNone {
		return
	}
	f.Intents = append(f.Intents, i)
}

// Has returns true if the given intent was received this frame.
func (f InputFrame) Has(i Intent) bool {
	for _, got := range f.Intents {
		if got == i {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Intents = f.Intents[:0]
}
