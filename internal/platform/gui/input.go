package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// buttons is the set of logical controls held down during one frame.
type buttons uint8

const (
	btnLeft buttons = 1 << iota
	btnRight
	btnFire
	btnStart
	btnQuit
	btnClick
)

func (b buttons) has(x buttons) bool { return b&x != 0 }

// keyBindings maps each control to the physical keys that drive it.
var keyBindings = []struct {
	button buttons
	keys   []ebiten.Key
}{
	{btnLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{btnRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{btnFire, []ebiten.Key{ebiten.KeySpace}},
	{btnStart, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyP}},
	{btnQuit, []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}},
}

// sampleButtons reads the keyboard and mouse.
func sampleButtons() buttons {
	var cur buttons
	for _, kb := range keyBindings {
		for _, k := range kb.keys {
			if ebiten.IsKeyPressed(k) {
				cur |= kb.button
				break
			}
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		cur |= btnClick
	}
	return cur
}

// decodeIntents compares two consecutive samples and adds the resulting
// intents to frame. Movement follows real press and release edges; the other
// controls fire once per press. It reports whether quit was pressed and
// whether the mouse button went down this frame.
func decodeIntents(prev, cur buttons, frame *core.InputFrame) (quit, clicked bool) {
	pressed := cur &^ prev
	released := prev &^ cur

	if released.has(btnLeft) {
		frame.Add(core.IntentMoveLeftStop)
	}
	if released.has(btnRight) {
		frame.Add(core.IntentMoveRightStop)
	}
	if pressed.has(btnLeft) {
		frame.Add(core.IntentMoveLeftStart)
	}
	if pressed.has(btnRight) {
		frame.Add(core.IntentMoveRightStart)
	}
	if pressed.has(btnFire) {
		frame.Add(core.IntentFire)
	}
	if pressed.has(btnStart) {
		frame.Add(core.IntentStart)
	}
	if pressed.has(btnQuit) {
		frame.Add(core.IntentQuit)
		quit = true
	}
	return quit, pressed.has(btnClick)
}
