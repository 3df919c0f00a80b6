package config

// hardMinUnitSize is the absolute unit size floor, whatever the config says.
const hardMinUnitSize = 1

// Difficulty holds the mutable per-session tuning values. It starts from the
// base values of an InvadersConfig and is rescaled on every level-up.
type Difficulty struct {
	ShipSpeed       float64
	ProjectileSpeed float64
	FleetSpeed      float64
	UnitWidth       int
	UnitHeight      int

	cfg *InvadersConfig
}

// NewDifficulty creates difficulty state at the base values of cfg.
func NewDifficulty(cfg *InvadersConfig) *Difficulty {
	d := &Difficulty{cfg: cfg}
	d.Reset()
	return d
}

// Reset restores the base values.
func (d *Difficulty) Reset() {
	d.ShipSpeed = d.cfg.Ship.Speed
	d.ProjectileSpeed = d.cfg.Projectile.Speed
	d.FleetSpeed = d.cfg.Fleet.Speed
	d.UnitWidth = d.cfg.Fleet.UnitWidth
	d.UnitHeight = d.cfg.Fleet.UnitHeight
}

// Increase scales the speeds by the configured factor and shrinks the unit
// size by the configured decrement. Units never shrink below the configured
// minimum; a unit already below the floor (tiny base size) is left alone.
func (d *Difficulty) Increase() {
	scale := d.cfg.Difficulty.Scale
	d.ShipSpeed *= scale
	d.ProjectileSpeed *= scale
	d.FleetSpeed *= scale

	shrink := d.cfg.Difficulty.UnitShrink
	if shrink <= 0 {
		return
	}
	floor := max(d.cfg.Difficulty.MinUnitSize, hardMinUnitSize)
	d.UnitWidth = shrinkTo(d.UnitWidth, shrink, floor)
	d.UnitHeight = shrinkTo(d.UnitHeight, shrink, floor)
}

func shrinkTo(size, by, floor int) int {
	if size <= floor {
		return size
	}
	return max(size-by, floor)
}
