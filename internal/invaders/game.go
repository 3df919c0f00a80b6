// Package invaders implements the Alien Invasion game rules: a player ship at
// the bottom of the screen shoots upward at a descending fleet.
//
// The package is front-end agnostic. A Controller is driven one frame at a
// time with Step and exposes its state for drawing; terminal and window front
// ends live in internal/platform.
package invaders

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// State is the top-level game mode.
type State int

const (
	// StateInactive shows the start button and waits for a start request.
	StateInactive State = iota
	// StateActive runs the simulation.
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "inactive"
}

// GameState is a read-only summary of the session for HUDs.
type GameState struct {
	State     State
	Score     int
	MaxScore  int
	HiScore   int
	Level     int
	ShipsLeft int
	Paused    bool
	Tick      uint64
}

// StepResult is returned by Step.
type StepResult struct {
	State  GameState
	Events []Event
}

// Controller owns every game component and runs the frame loop logic.
type Controller struct {
	cfg     *config.InvadersConfig
	stats   *Stats
	ship    *Ship
	arsenal *Arsenal
	fleet   *Fleet
	logger  *log.Logger

	state     State
	pause     int    // Frames left in the life-lost freeze
	tick      uint64 // Simulated frames in the current game
	lastScore int    // Score of the most recently finished game
	played    bool   // At least one game has finished

	events []Event
}

type options struct {
	store  ScoreStore
	logger *log.Logger
}

// Option configures a Controller.
type Option func(*options)

// WithScoreStore persists the high score through store.
func WithScoreStore(store ScoreStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithLogger sets the controller's logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a controller in the inactive state with a freshly built fleet.
// cfg is shared by every component and must not change afterwards.
func New(cfg *config.InvadersConfig, opts ...Option) *Controller {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	c := &Controller{
		cfg:    cfg,
		stats:  NewStats(cfg, o.store, o.logger),
		logger: o.logger,
		state:  StateInactive,
	}

	c.arsenal = NewArsenal(cfg.Projectile.Capacity, cfg.Projectile.Width, cfg.Projectile.Height)
	c.ship = NewShip(cfg.Ship.Width, cfg.Ship.Height, cfg.Screen.Width, cfg.Screen.Height, c.arsenal)
	c.fleet = NewFleet(cfg.Screen.Width, cfg.Screen.Height, cfg.Fleet.DropSpeed, cfg.Fleet.Direction,
		c.stats.Difficulty.UnitWidth, c.stats.Difficulty.UnitHeight)

	if err := cfg.Validate(); err != nil {
		c.logger.Warn("configuration is not playable", "err", err)
	}
	return c
}

// Step applies one frame of input and, when a game is running, advances the
// simulation by one frame.
//
// Intents are applied in order. Movement flags are tracked in every state so
// a release is never lost. Firing only works while the game runs and is not
// frozen. Quit is left to the caller.
func (c *Controller) Step(in core.InputFrame) StepResult {
	c.events = c.events[:0]

	for _, intent := range in.Intents {
		c.handleIntent(intent)
	}

	if c.state == StateActive {
		c.update()
	}

	return StepResult{State: c.GameState(), Events: c.drainEvents()}
}

func (c *Controller) handleIntent(intent core.Intent) {
	switch intent {
	case core.IntentMoveLeftStart:
		c.ship.SetMovingLeft(true)
	case core.IntentMoveLeftStop:
		c.ship.SetMovingLeft(false)
	case core.IntentMoveRightStart:
		c.ship.SetMovingRight(true)
	case core.IntentMoveRightStop:
		c.ship.SetMovingRight(false)
	case core.IntentFire:
		if c.state == StateActive && c.pause == 0 {
			if c.ship.Fire(c.stats.Difficulty.ProjectileSpeed) {
				c.emit(EventFired)
			}
		}
	case core.IntentStart:
		if c.state == StateInactive {
			c.Start()
		}
	}
}

// update runs one simulated frame. A life loss or level clear ends the frame
// early; the rebuilt world is first checked on the next frame.
func (c *Controller) update() {
	if c.pause > 0 {
		c.pause--
		return
	}
	c.tick++

	d := c.stats.Difficulty
	c.ship.Update(d.ShipSpeed)
	c.fleet.Update(d.FleetSpeed)

	if c.ship.CheckCollision(c.fleet) {
		c.loseLife("ship hit")
		return
	}
	if c.fleet.CheckBottom(c.cfg.Screen.Height) {
		c.loseLife("fleet landed")
		return
	}

	if hits := c.fleet.ResolveCollisions(c.arsenal); len(hits) > 0 {
		c.stats.RecordCollisions(hits)
		c.events = append(c.events, Event{
			Kind:  EventUnitsDestroyed,
			Count: len(hits),
			Score: c.stats.Score,
			Level: c.stats.Level,
		})
	}

	// A fleet that spawned empty never counts as cleared.
	if c.fleet.Destroyed() && c.fleet.Spawned() > 0 {
		c.clearLevel()
	}
}

// Start begins a new game from the inactive state.
func (c *Controller) Start() {
	c.stats.ResetDifficulty()
	c.stats.Reset()
	c.resetLevel()
	c.ship.Center()
	c.ship.Stop()
	c.pause = 0
	c.tick = 0
	c.state = StateActive

	c.logger.Debug("game started", "ships", c.stats.ShipsLeft, "units", c.fleet.Len())
	c.emit(EventGameStarted)
}

func (c *Controller) loseLife(reason string) {
	left := c.stats.LoseLife()
	c.logger.Debug("life lost", "reason", reason, "ships_left", left, "level", c.stats.Level)
	c.emit(EventLifeLost)

	if left > 0 {
		c.resetLevel()
		c.ship.Center()
		c.pause = max(c.cfg.Gameplay.PauseFrames, 0)
		return
	}
	c.gameOver()
}

func (c *Controller) gameOver() {
	c.state = StateInactive
	c.pause = 0
	c.ship.Stop()
	c.arsenal.Clear()
	c.lastScore = c.stats.Score
	c.played = true

	c.logger.Info("game over", "score", c.stats.Score, "level", c.stats.Level, "hi_score", c.stats.HiScore)
	c.emit(EventGameOver)

	if err := c.stats.Save(); err != nil {
		c.logger.Warn("failed to save high score", "err", err)
	}
}

func (c *Controller) clearLevel() {
	c.stats.AdvanceLevel()
	c.stats.IncreaseDifficulty()
	c.resetLevel()

	d := c.stats.Difficulty
	c.logger.Debug("level cleared", "level", c.stats.Level,
		"unit_size", d.UnitWidth, "fleet_speed", d.FleetSpeed, "units", c.fleet.Len())
	c.emit(EventLevelAdvanced)
}

// resetLevel clears projectiles and rebuilds the fleet at the current unit size.
func (c *Controller) resetLevel() {
	c.arsenal.Clear()
	d := c.stats.Difficulty
	c.fleet.Rebuild(d.UnitWidth, d.UnitHeight)
}

func (c *Controller) emit(kind EventKind) {
	c.events = append(c.events, Event{Kind: kind, Score: c.stats.Score, Level: c.stats.Level})
}

func (c *Controller) drainEvents() []Event {
	if len(c.events) == 0 {
		return nil
	}
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Shutdown persists the high score. Call it once when the player quits.
func (c *Controller) Shutdown() error {
	if err := c.stats.Save(); err != nil {
		c.logger.Error("failed to save high score", "err", err)
		return err
	}
	return nil
}

// GameState returns the current session summary.
func (c *Controller) GameState() GameState {
	return GameState{
		State:     c.state,
		Score:     c.stats.Score,
		MaxScore:  c.stats.MaxScore,
		HiScore:   c.stats.HiScore,
		Level:     c.stats.Level,
		ShipsLeft: c.stats.ShipsLeft,
		Paused:    c.pause > 0,
		Tick:      c.tick,
	}
}

// Active reports whether a game is running.
func (c *Controller) Active() bool {
	return c.state == StateActive
}

// LastScore returns the final score of the last finished game and whether
// any game has finished yet.
func (c *Controller) LastScore() (int, bool) {
	return c.lastScore, c.played
}

// Stats exposes the session state.
func (c *Controller) Stats() *Stats {
	return c.stats
}

// Ship exposes the player ship.
func (c *Controller) Ship() *Ship {
	return c.ship
}

// Fleet exposes the enemy fleet.
func (c *Controller) Fleet() *Fleet {
	return c.fleet
}

// Arsenal exposes the in-flight projectiles.
func (c *Controller) Arsenal() *Arsenal {
	return c.arsenal
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() *config.InvadersConfig {
	return c.cfg
}

// StartButton returns the start button's rectangle, centered on the screen.
func (c *Controller) StartButton() core.Rect {
	w, h := c.cfg.Button.Width, c.cfg.Button.Height
	return core.NewRect(c.cfg.Screen.Width/2-w/2, c.cfg.Screen.Height/2-h/2, w, h)
}

// OnStartButton reports whether a pointer press at world coordinates (x, y)
// hits the start button while no game is running. Front ends answer a true
// result by sending IntentStart.
func (c *Controller) OnStartButton(x, y int) bool {
	return c.state == StateInactive && c.StartButton().Contains(x, y)
}
