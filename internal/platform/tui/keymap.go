package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldTicks is how long a direction stays held after its last key
// event, in ticks.
const DefaultHoldTicks = 12

// KeyMapper translates Bubble Tea key messages to game intents.
//
// Terminals report key presses and auto-repeats but never releases. A
// direction key therefore starts movement and keeps it alive for holdTicks;
// each repeat refreshes the window and Tick emits the stop once it runs out.
// Pressing the opposite direction stops the current one immediately.
type KeyMapper struct {
	holdTicks int
	left      int // Ticks left in the emulated left hold, 0 when released
	right     int
}

// NewKeyMapper creates a key mapper. Non-positive holdTicks uses DefaultHoldTicks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{holdTicks: holdTicks}
}

// MapKey adds the intents for a key press to frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, frame *core.InputFrame) (isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		frame.Add(core.IntentQuit)
		return true
	case "left", "a", "h":
		km.pressLeft(frame)
	case "right", "d", "l":
		km.pressRight(frame)
	case "down", "s", "j":
		km.Release(frame)
	case " ", "up", "w", "k":
		frame.Add(core.IntentFire)
	case "enter", "p":
		frame.Add(core.IntentStart)
	}
	return false
}

func (km *KeyMapper) pressLeft(frame *core.InputFrame) {
	if km.right > 0 {
		km.right = 0
		frame.Add(core.IntentMoveRightStop)
	}
	if km.left == 0 {
		frame.Add(core.IntentMoveLeftStart)
	}
	km.left = km.holdTicks
}

func (km *KeyMapper) pressRight(frame *core.InputFrame) {
	if km.left > 0 {
		km.left = 0
		frame.Add(core.IntentMoveLeftStop)
	}
	if km.right == 0 {
		frame.Add(core.IntentMoveRightStart)
	}
	km.right = km.holdTicks
}

// Tick advances the hold windows by one tick and adds a stop intent for each
// direction whose window ran out. Call it once per tick before stepping.
func (km *KeyMapper) Tick(frame *core.InputFrame) {
	if km.left > 0 {
		km.left--
		if km.left == 0 {
			frame.Add(core.IntentMoveLeftStop)
		}
	}
	if km.right > 0 {
		km.right--
		if km.right == 0 {
			frame.Add(core.IntentMoveRightStop)
		}
	}
}

// Release stops any held direction right away.
func (km *KeyMapper) Release(frame *core.InputFrame) {
	if km.left > 0 {
		km.left = 0
		frame.Add(core.IntentMoveLeftStop)
	}
	if km.right > 0 {
		km.right = 0
		frame.Add(core.IntentMoveRightStop)
	}
}

// Holding reports which directions are currently held.
func (km *KeyMapper) Holding() (left, right bool) {
	return km.left > 0, km.right > 0
}
