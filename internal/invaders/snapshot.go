package invaders

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot captures the complete game state for replay checks and debugging.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64 `msgpack:"tick"`
	State     string `msgpack:"state"`
	Pause     int    `msgpack:"pause"`
	Score     int    `msgpack:"score"`
	MaxScore  int    `msgpack:"max_score"`
	HiScore   int    `msgpack:"hi_score"`
	Level     int    `msgpack:"level"`
	ShipsLeft int    `msgpack:"ships_left"`

	// Difficulty, speeds in thousandths of a pixel per frame
	ShipSpeed       int `msgpack:"ship_speed"`
	ProjectileSpeed int `msgpack:"projectile_speed"`
	FleetSpeed      int `msgpack:"fleet_speed"`
	UnitWidth       int `msgpack:"unit_width"`
	UnitHeight      int `msgpack:"unit_height"`

	ShipX           int  `msgpack:"ship_x"`
	ShipY           int  `msgpack:"ship_y"`
	ShipMovingLeft  bool `msgpack:"ship_left"`
	ShipMovingRight bool `msgpack:"ship_right"`

	FleetDirection int `msgpack:"fleet_dir"`

	// Each unit is 2 ints: X, Y (bounding box corner)
	UnitData []int `msgpack:"units"`

	// Each projectile is 2 ints: X, Y (bounding box corner)
	ProjectileData []int `msgpack:"projectiles"`
}

func milli(v float64) int {
	return int(v * 1000)
}

// Snapshot returns the current game state.
func (c *Controller) Snapshot() Snapshot {
	units := c.fleet.Units()
	unitData := make([]int, 0, len(units)*2)
	for _, u := range units {
		r := u.Bounds()
		unitData = append(unitData, r.X, r.Y)
	}

	shots := c.arsenal.Projectiles()
	shotData := make([]int, 0, len(shots)*2)
	for _, p := range shots {
		r := p.Bounds()
		shotData = append(shotData, r.X, r.Y)
	}

	d := c.stats.Difficulty
	ship := c.ship.Bounds()
	left, right := c.ship.Moving()

	return Snapshot{
		Tick:            c.tick,
		State:           c.state.String(),
		Pause:           c.pause,
		Score:           c.stats.Score,
		MaxScore:        c.stats.MaxScore,
		HiScore:         c.stats.HiScore,
		Level:           c.stats.Level,
		ShipsLeft:       c.stats.ShipsLeft,
		ShipSpeed:       milli(d.ShipSpeed),
		ProjectileSpeed: milli(d.ProjectileSpeed),
		FleetSpeed:      milli(d.FleetSpeed),
		UnitWidth:       d.UnitWidth,
		UnitHeight:      d.UnitHeight,
		ShipX:           ship.X,
		ShipY:           ship.Y,
		ShipMovingLeft:  left,
		ShipMovingRight: right,
		FleetDirection:  c.fleet.Direction(),
		UnitData:        unitData,
		ProjectileData:  shotData,
	}
}

// Encode serializes the snapshot with MessagePack.
func (snap *Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("invaders: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("invaders: decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns an FNV-1a hash of the encoded snapshot for determinism testing.
func (snap *Snapshot) Hash() (uint64, error) {
	data, err := snap.Encode()
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64(), nil
}
