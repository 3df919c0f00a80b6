package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Projectile is a player shot travelling straight up at a fixed speed.
type Projectile struct {
	X, Y  float64
	W, H  int
	Speed float64
}

// Bounds returns the projectile's bounding box.
func (p Projectile) Bounds() core.Rect {
	return core.RectAt(p.X, p.Y, p.W, p.H)
}

// Arsenal holds the in-flight projectiles, bounded by a capacity.
type Arsenal struct {
	projectiles []Projectile
	capacity    int
	w, h        int
}

// NewArsenal creates an empty arsenal.
func NewArsenal(capacity, projectileW, projectileH int) *Arsenal {
	return &Arsenal{
		projectiles: make([]Projectile, 0, max(capacity, 0)),
		capacity:    capacity,
		w:           projectileW,
		h:           projectileH,
	}
}

// Fire spawns a projectile at the middle of the top edge of from.
// It returns false and spawns nothing when the arsenal is full.
func (a *Arsenal) Fire(from core.Rect, speed float64) bool {
	if len(a.projectiles) >= a.capacity {
		return false
	}
	a.projectiles = append(a.projectiles, Projectile{
		X:     float64(from.CenterX() - a.w/2),
		Y:     float64(from.Y),
		W:     a.w,
		H:     a.h,
		Speed: speed,
	})
	return true
}

// Update moves every projectile up and drops those whose bottom edge left
// the top of the screen.
func (a *Arsenal) Update() {
	kept := a.projectiles[:0]
	for _, p := range a.projectiles {
		p.Y -= p.Speed
		if p.Bounds().Bottom() <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	a.projectiles = kept
}

// Clear removes every projectile.
func (a *Arsenal) Clear() {
	a.projectiles = a.projectiles[:0]
}

// Projectiles returns the in-flight projectiles. The slice must not be modified.
func (a *Arsenal) Projectiles() []Projectile {
	return a.projectiles
}

// Len returns the number of in-flight projectiles.
func (a *Arsenal) Len() int {
	return len(a.projectiles)
}

// Capacity returns the maximum number of projectiles in flight.
func (a *Arsenal) Capacity() int {
	return a.capacity
}

// removeClaimed drops projectiles whose index is marked in claimed.
func (a *Arsenal) removeClaimed(claimed []bool) {
	kept := a.projectiles[:0]
	for i, p := range a.projectiles {
		if i < len(claimed) && claimed[i] {
			continue
		}
		kept = append(kept, p)
	}
	a.projectiles = kept
}
