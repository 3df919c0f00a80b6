package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Unit is a single enemy. Its position is kept as floats so slow fleets can
// accumulate sub-pixel motion; the bounding box snaps to whole pixels.
type Unit struct {
	X, Y float64
	W, H int
}

// Bounds returns the unit's bounding box.
func (u Unit) Bounds() core.Rect {
	return core.RectAt(u.X, u.Y, u.W, u.H)
}

// step advances the unit horizontally. Direction is owned by the fleet and
// passed in; units hold no reference back to it.
func (u *Unit) step(speed float64, direction int) {
	u.X += speed * float64(direction)
}

// Hit records one unit destroyed by one projectile.
type Hit struct {
	Unit       Unit
	Projectile Projectile
}

// Fleet owns every enemy unit and the shared motion state.
type Fleet struct {
	units     []Unit
	direction int
	spawned   int

	initialDirection int
	dropSpeed        float64
	screenW          int
	screenH          int
}

// NewFleet creates a fleet for the given world and builds its first formation.
func NewFleet(screenW, screenH int, dropSpeed float64, direction, unitW, unitH int) *Fleet {
	if direction != -1 {
		direction = 1
	}
	f := &Fleet{
		initialDirection: direction,
		dropSpeed:        dropSpeed,
		screenW:          screenW,
		screenH:          screenH,
	}
	f.Rebuild(unitW, unitH)
	return f
}

// Rebuild discards all units and lays out a fresh trapezoid formation with
// the given unit size. The direction returns to its initial value.
//
// Row r spans columns [r, cols-r): row 0 is full width and every row below
// the top one is inset by one unit per side. Rows that would be empty are
// skipped.
func (f *Fleet) Rebuild(unitW, unitH int) {
	f.units = f.units[:0]
	f.direction = f.initialDirection

	cols, rows := CalcFleetSize(unitW, unitH, f.screenW, f.screenH)
	if cols > 0 && rows > 0 {
		xOffset, yOffset := CalcOffsets(unitW, unitH, f.screenW, f.screenH, cols, rows)
		for row := range rows {
			for col := row; col < cols-row; col++ {
				f.units = append(f.units, Unit{
					X: float64(unitW*col + xOffset),
					Y: float64(unitH*row + yOffset),
					W: unitW,
					H: unitH,
				})
			}
		}
	}
	f.spawned = len(f.units)
}

// Clear removes every unit.
func (f *Fleet) Clear() {
	f.units = f.units[:0]
}

// Units returns the live units. The slice must not be modified.
func (f *Fleet) Units() []Unit {
	return f.units
}

// Len returns the number of live units.
func (f *Fleet) Len() int {
	return len(f.units)
}

// Spawned returns how many units the last Rebuild created.
func (f *Fleet) Spawned() int {
	return f.spawned
}

// Direction returns the shared horizontal direction, +1 or -1.
func (f *Fleet) Direction() int {
	return f.direction
}

// CheckEdges reports whether a unit touches the left or right screen edge.
func (f *Fleet) CheckEdges(u Unit) bool {
	r := u.Bounds()
	return r.Right() >= f.screenW || r.X <= 0
}

// Update moves the fleet one frame.
//
// The first unit found at an edge drops the whole fleet and flips its
// direction; scanning stops there, so at most one drop and one flip happen
// per frame. Then every unit advances by speed in the shared direction.
func (f *Fleet) Update(speed float64) {
	for i := range f.units {
		if f.CheckEdges(f.units[i]) {
			f.drop()
			f.direction = -f.direction
			break
		}
	}
	for i := range f.units {
		f.units[i].step(speed, f.direction)
	}
}

func (f *Fleet) drop() {
	for i := range f.units {
		f.units[i].Y += f.dropSpeed
	}
}

// CheckBottom reports whether any unit's bottom edge reached screenH.
func (f *Fleet) CheckBottom(screenH int) bool {
	for i := range f.units {
		if f.units[i].Bounds().Bottom() >= screenH {
			return true
		}
	}
	return false
}

// Destroyed reports whether the fleet has no units left.
func (f *Fleet) Destroyed() bool {
	return len(f.units) == 0
}

// ResolveCollisions removes every overlapping unit/projectile pair from the
// fleet and the arsenal and returns the pairs.
//
// Units are scanned in order and each claims the first unclaimed projectile
// overlapping it, so a projectile is credited to at most one unit and a unit
// is destroyed by at most one projectile.
func (f *Fleet) ResolveCollisions(a *Arsenal) []Hit {
	if len(f.units) == 0 || len(a.projectiles) == 0 {
		return nil
	}

	shots := a.projectiles
	claimed := make([]bool, len(shots))
	var hits []Hit

	kept := f.units[:0]
	for _, u := range f.units {
		ub := u.Bounds()
		shot := -1
		for j := range shots {
			if !claimed[j] && ub.Intersects(shots[j].Bounds()) {
				shot = j
				break
			}
		}
		if shot < 0 {
			kept = append(kept, u)
			continue
		}
		claimed[shot] = true
		hits = append(hits, Hit{Unit: u, Projectile: shots[shot]})
	}
	f.units = kept

	if len(hits) > 0 {
		a.removeClaimed(claimed)
	}
	return hits
}
