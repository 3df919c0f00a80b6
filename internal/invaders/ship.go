package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Ship is the player-controlled unit at the bottom of the screen.
type Ship struct {
	X, Y float64
	W, H int

	movingLeft  bool
	movingRight bool

	arsenal *Arsenal
	screenW int
	screenH int
}

// NewShip creates a ship centered at the bottom of the screen.
// The ship owns the arsenal and updates it with itself.
func NewShip(w, h, screenW, screenH int, arsenal *Arsenal) *Ship {
	s := &Ship{
		W:       w,
		H:       h,
		arsenal: arsenal,
		screenW: screenW,
		screenH: screenH,
	}
	s.Center()
	return s
}

// Bounds returns the ship's bounding box.
func (s *Ship) Bounds() core.Rect {
	return core.RectAt(s.X, s.Y, s.W, s.H)
}

// Center puts the ship back at the bottom middle of the screen.
func (s *Ship) Center() {
	s.X = float64(s.screenW/2 - s.W/2)
	s.Y = float64(s.screenH - s.H)
}

// SetMovingLeft sets the left movement flag.
func (s *Ship) SetMovingLeft(on bool) { s.movingLeft = on }

// SetMovingRight sets the right movement flag.
func (s *Ship) SetMovingRight(on bool) { s.movingRight = on }

// Moving reports the current movement flags.
func (s *Ship) Moving() (left, right bool) {
	return s.movingLeft, s.movingRight
}

// Stop clears both movement flags.
func (s *Ship) Stop() {
	s.movingLeft = false
	s.movingRight = false
}

// Update moves the ship by speed according to its flags and advances the
// arsenal. Holding both directions cancels out. The ship never leaves
// [0, screenW-W].
func (s *Ship) Update(speed float64) {
	r := s.Bounds()
	var dx float64
	if s.movingRight && r.Right() < s.screenW {
		dx += speed
	}
	if s.movingLeft && r.X > 0 {
		dx -= speed
	}
	s.X = core.ClampF(s.X+dx, 0, float64(max(s.screenW-s.W, 0)))

	s.arsenal.Update()
}

// Fire asks the arsenal for a new projectile at the ship's nose.
func (s *Ship) Fire(speed float64) bool {
	return s.arsenal.Fire(s.Bounds(), speed)
}

// CheckCollision reports whether any unit of the fleet overlaps the ship.
// On a hit the ship is re-centered.
func (s *Ship) CheckCollision(f *Fleet) bool {
	if core.FirstOverlap(s, f.Units()) < 0 {
		return false
	}
	s.Center()
	return true
}

// Arsenal returns the ship's arsenal.
func (s *Ship) Arsenal() *Arsenal {
	return s.arsenal
}
