package invaders

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// memStore is an in-memory ScoreStore.
type memStore struct {
	score   int
	saved   bool
	loadErr error
	saves   int
}

func (m *memStore) LoadHighScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	if !m.saved {
		return 0, core.ErrNoHighScore
	}
	return m.score, nil
}

func (m *memStore) SaveHighScore(score int) error {
	m.score = score
	m.saved = true
	m.saves++
	return nil
}

func frame(intents ...core.Intent) core.InputFrame {
	in := core.NewInputFrame()
	for _, i := range intents {
		in.Add(i)
	}
	return in
}

func newTestController(t *testing.T, mutate func(*config.InvadersConfig), opts ...Option) *Controller {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(&cfg, opts...)
}

func mustHash(t *testing.T, snap Snapshot) uint64 {
	t.Helper()
	h, err := snap.Hash()
	if err != nil {
		t.Fatalf("Hash() failed: %v", err)
	}
	return h
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// crashIntoShip puts a single unit on top of the ship.
func crashIntoShip(c *Controller) {
	c.fleet.units = []Unit{{X: c.ship.X, Y: c.ship.Y, W: 56, H: 56}}
}

func TestControllerStartsInactive(t *testing.T) {
	c := newTestController(t, nil)

	if c.Active() {
		t.Fatal("new controller should be inactive")
	}
	if c.Fleet().Len() != 75 {
		t.Errorf("initial fleet has %d units, expected 75", c.Fleet().Len())
	}

	// Frames without a start request change nothing.
	before := c.Snapshot()
	for range 10 {
		c.Step(frame(core.IntentFire))
	}
	after := c.Snapshot()
	if mustHash(t, before) != mustHash(t, after) {
		t.Error("inactive controller should not simulate")
	}
	if c.Arsenal().Len() != 0 {
		t.Error("firing while inactive should do nothing")
	}
}

func TestControllerStart(t *testing.T) {
	c := newTestController(t, nil)

	res := c.Step(frame(core.IntentStart))

	if !c.Active() || res.State.State != StateActive {
		t.Fatal("start intent should activate the game")
	}
	if !hasEvent(res.Events, EventGameStarted) {
		t.Error("expected a GameStarted event")
	}
	if res.State.ShipsLeft != 3 || res.State.Score != 0 || res.State.Level != 1 {
		t.Errorf("unexpected state after start: %+v", res.State)
	}
	if res.State.Tick != 1 {
		t.Errorf("tick = %d, expected the start frame to simulate", res.State.Tick)
	}
}

func TestControllerFireCapacity(t *testing.T) {
	c := newTestController(t, nil)
	c.Step(frame(core.IntentStart))

	res := c.Step(frame(core.IntentFire, core.IntentFire, core.IntentFire,
		core.IntentFire, core.IntentFire, core.IntentFire, core.IntentFire))

	fired := 0
	for _, e := range res.Events {
		if e.Kind == EventFired {
			fired++
		}
	}
	if fired != 5 || c.Arsenal().Len() != 5 {
		t.Errorf("fired %d, in flight %d, expected 5 and 5", fired, c.Arsenal().Len())
	}

	res = c.Step(frame(core.IntentFire))
	if hasEvent(res.Events, EventFired) {
		t.Error("fire at capacity should not emit a Fired event")
	}
	if c.Arsenal().Len() != 5 {
		t.Errorf("in flight = %d after rejected fire, expected 5", c.Arsenal().Len())
	}
}

func TestControllerGameOverAfterAllShips(t *testing.T) {
	store := &memStore{saved: true}
	c := newTestController(t, func(cfg *config.InvadersConfig) {
		cfg.Gameplay.PauseFrames = 0
	}, WithScoreStore(store))
	c.Step(frame(core.IntentStart))

	for i := range 3 {
		crashIntoShip(c)
		res := c.Step(frame())

		if !hasEvent(res.Events, EventLifeLost) {
			t.Fatalf("collision %d: expected LifeLost", i+1)
		}
		wantLeft := 2 - i
		if res.State.ShipsLeft != wantLeft {
			t.Errorf("collision %d: ships left = %d, expected %d", i+1, res.State.ShipsLeft, wantLeft)
		}
		if i < 2 {
			if !c.Active() {
				t.Fatalf("collision %d: game ended early", i+1)
			}
			if c.Fleet().Len() != 75 {
				t.Errorf("collision %d: fleet not rebuilt, %d units", i+1, c.Fleet().Len())
			}
			if c.Ship().X != 568 {
				t.Errorf("collision %d: ship not re-centered, x=%v", i+1, c.Ship().X)
			}
		}
	}

	if c.Active() {
		t.Fatal("game should be over after the last ship")
	}
	if c.Stats().ShipsLeft != 0 {
		t.Errorf("ships left = %d, expected 0", c.Stats().ShipsLeft)
	}
	if store.saves != 1 {
		t.Errorf("high score saved %d times, expected once at game over", store.saves)
	}
	if _, ok := c.LastScore(); !ok {
		t.Error("LastScore should report a finished game")
	}
}

func TestControllerFleetLanding(t *testing.T) {
	c := newTestController(t, func(cfg *config.InvadersConfig) {
		cfg.Gameplay.PauseFrames = 0
	})
	c.Step(frame(core.IntentStart))

	// Far from the ship but at the bottom edge.
	c.fleet.units = []Unit{{X: 100, Y: 800 - 56, W: 56, H: 56}}
	res := c.Step(frame())

	if !hasEvent(res.Events, EventLifeLost) {
		t.Fatal("fleet reaching the bottom should cost a life")
	}
	if res.State.ShipsLeft != 2 {
		t.Errorf("ships left = %d, expected 2", res.State.ShipsLeft)
	}
}

func TestControllerPauseAfterLifeLost(t *testing.T) {
	c := newTestController(t, func(cfg *config.InvadersConfig) {
		cfg.Gameplay.PauseFrames = 3
	})
	c.Step(frame(core.IntentStart))
	crashIntoShip(c)
	c.Step(frame())

	frozen := c.Snapshot()
	for i := range 3 {
		res := c.Step(frame(core.IntentFire))
		if !res.State.Paused && i < 2 {
			t.Errorf("frame %d: expected paused", i)
		}
	}
	if c.Arsenal().Len() != 0 {
		t.Error("fire during the freeze should be ignored")
	}
	after := c.Snapshot()
	if after.Tick != frozen.Tick {
		t.Errorf("tick advanced during freeze: %d -> %d", frozen.Tick, after.Tick)
	}
	if after.UnitData[0] != frozen.UnitData[0] {
		t.Error("fleet moved during freeze")
	}

	c.Step(frame())
	if c.Snapshot().Tick != frozen.Tick+1 {
		t.Error("simulation should resume after the freeze")
	}
}

func TestControllerScoring(t *testing.T) {
	c := newTestController(t, nil)
	c.Step(frame(core.IntentStart))

	// Place two projectiles on two different units for the next frame.
	units := c.fleet.Units()
	u0, u1 := units[0].Bounds(), units[1].Bounds()
	c.arsenal.projectiles = []Projectile{
		{X: float64(u0.X + 10), Y: float64(u0.Y + 20), W: 24, H: 24},
		{X: float64(u1.X + 10), Y: float64(u1.Y + 20), W: 24, H: 24},
	}

	res := c.Step(frame())

	if res.State.Score != 100 {
		t.Errorf("score = %d, expected 100", res.State.Score)
	}
	if res.State.MaxScore != 100 || res.State.HiScore != 100 {
		t.Errorf("max/hi = %d/%d, expected 100/100", res.State.MaxScore, res.State.HiScore)
	}
	var destroyed int
	for _, e := range res.Events {
		if e.Kind == EventUnitsDestroyed {
			destroyed += e.Count
		}
	}
	if destroyed != 2 {
		t.Errorf("UnitsDestroyed count = %d, expected 2", destroyed)
	}
	if c.Fleet().Len() != 73 {
		t.Errorf("fleet has %d units, expected 73", c.Fleet().Len())
	}
}

func TestControllerLevelClear(t *testing.T) {
	c := newTestController(t, nil)
	c.Step(frame(core.IntentStart))

	c.fleet.Clear()
	res := c.Step(frame())

	if !hasEvent(res.Events, EventLevelAdvanced) {
		t.Fatal("expected LevelAdvanced")
	}
	if res.State.Level != 2 {
		t.Errorf("level = %d, expected 2", res.State.Level)
	}
	d := c.Stats().Difficulty
	if d.UnitWidth != 54 {
		t.Errorf("unit width = %d, expected 54", d.UnitWidth)
	}
	// Fleet is rebuilt with the shrunken units.
	if c.Fleet().Len() != 85 {
		t.Errorf("fleet has %d units, expected 85", c.Fleet().Len())
	}
	if c.Fleet().Units()[0].W != 54 {
		t.Errorf("unit width in fleet = %d, expected 54", c.Fleet().Units()[0].W)
	}
}

func TestControllerEmptyFleetNeverClears(t *testing.T) {
	c := newTestController(t, func(cfg *config.InvadersConfig) {
		cfg.Fleet.UnitWidth = 2000
		cfg.Fleet.UnitHeight = 2000
	})
	c.Step(frame(core.IntentStart))

	for range 20 {
		res := c.Step(frame())
		if hasEvent(res.Events, EventLevelAdvanced) {
			t.Fatal("a fleet that spawned empty must not advance the level")
		}
	}
	if c.Stats().Level != 1 {
		t.Errorf("level = %d, expected 1", c.Stats().Level)
	}
}

func TestControllerRestartResetsSession(t *testing.T) {
	c := newTestController(t, func(cfg *config.InvadersConfig) {
		cfg.Gameplay.PauseFrames = 0
		cfg.Gameplay.StartingShips = 1
	})
	c.Step(frame(core.IntentStart))
	c.fleet.Clear()
	c.Step(frame()) // level 2
	c.stats.Score = 500
	c.stats.updateMax()

	crashIntoShip(c)
	c.Step(frame())
	if c.Active() {
		t.Fatal("expected game over with one ship")
	}

	c.Step(frame(core.IntentStart))
	st := c.GameState()
	if st.Level != 1 || st.Score != 0 || st.ShipsLeft != 1 {
		t.Errorf("restart did not reset session: %+v", st)
	}
	if st.HiScore != 500 {
		t.Errorf("hi score = %d, expected 500 to survive restart", st.HiScore)
	}
	if st.MaxScore != 500 {
		t.Errorf("max score = %d, expected 500 to survive restart", st.MaxScore)
	}
	if c.Stats().Difficulty.UnitWidth != 56 {
		t.Errorf("unit width = %d, expected base 56", c.Stats().Difficulty.UnitWidth)
	}
}

func TestControllerMovementIntents(t *testing.T) {
	c := newTestController(t, nil)
	c.Step(frame(core.IntentStart))
	x0 := c.Ship().X

	c.Step(frame(core.IntentMoveRightStart))
	c.Step(frame())
	if c.Ship().X != x0+10 {
		t.Errorf("x = %v, expected %v after two frames right", c.Ship().X, x0+10)
	}

	c.Step(frame(core.IntentMoveLeftStart))
	if c.Ship().X != x0+10 {
		t.Errorf("both directions held should not move, x = %v", c.Ship().X)
	}

	c.Step(frame(core.IntentMoveRightStop))
	if c.Ship().X != x0+5 {
		t.Errorf("x = %v, expected %v after one frame left", c.Ship().X, x0+5)
	}

	c.Step(frame(core.IntentMoveLeftStop))
	if left, right := c.Ship().Moving(); left || right {
		t.Error("ship should be idle after both stops")
	}
}

func TestHighScorePersistence(t *testing.T) {
	store := &memStore{score: 1200, saved: true}
	c := newTestController(t, nil, WithScoreStore(store))
	if c.GameState().HiScore != 1200 {
		t.Errorf("hi score = %d, expected 1200 loaded from store", c.GameState().HiScore)
	}

	c.stats.Score = 1500
	c.stats.updateMax()
	if err := c.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if store.score != 1500 {
		t.Errorf("stored hi score = %d, expected 1500", store.score)
	}

	broken := &memStore{loadErr: errors.New("disk on fire")}
	c = newTestController(t, nil, WithScoreStore(broken))
	if c.GameState().HiScore != 0 {
		t.Errorf("hi score = %d, expected 0 on load failure", c.GameState().HiScore)
	}
	if broken.saves != 1 || broken.score != 0 {
		t.Errorf("unreadable record not rewritten: saves=%d score=%d", broken.saves, broken.score)
	}

	fresh := &memStore{}
	newTestController(t, nil, WithScoreStore(fresh))
	if !fresh.saved || fresh.score != 0 {
		t.Error("missing record should be created with zero")
	}
}

func TestStartButton(t *testing.T) {
	c := newTestController(t, nil)
	btn := c.StartButton()
	if btn != core.NewRect(500, 375, 200, 50) {
		t.Errorf("StartButton() = %+v", btn)
	}
	if !c.OnStartButton(600, 400) {
		t.Error("press in the middle of the button should hit it")
	}
	if c.OnStartButton(10, 10) {
		t.Error("press outside the button should miss")
	}
	c.Step(frame(core.IntentStart))
	if c.OnStartButton(600, 400) {
		t.Error("button is inert while a game runs")
	}
}

func TestDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		switch {
		case i == 0:
			inputs[i] = frame(core.IntentStart)
		case i%40 == 5:
			inputs[i] = frame(core.IntentMoveLeftStart, core.IntentMoveRightStop)
		case i%40 == 25:
			inputs[i] = frame(core.IntentMoveRightStart, core.IntentMoveLeftStop)
		case i%7 == 0:
			inputs[i] = frame(core.IntentFire)
		default:
			inputs[i] = frame()
		}
	}

	run := func() Snapshot {
		c := newTestController(t, nil)
		for _, in := range inputs {
			c.Step(in)
		}
		return c.Snapshot()
	}

	s1, s2 := run(), run()
	h1, h2 := mustHash(t, s1), mustHash(t, s2)
	if h1 != h2 {
		t.Errorf("hashes differ: %d vs %d", h1, h2)
	}
	if s1.Score != s2.Score || s1.Tick != s2.Tick {
		t.Errorf("runs diverged: %+v vs %+v", s1, s2)
	}

	data, err := s1.Encode()
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	back, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot() failed: %v", err)
	}
	if mustHash(t, back) != h1 {
		t.Error("decoded snapshot hashes differently")
	}
}

func TestRender(t *testing.T) {
	c := newTestController(t, nil)
	screen := core.NewScreen(80, 24)

	c.Render(screen)
	out := screen.String()
	for _, want := range []string{"ALIEN INVASION", "Play", "SCORE 0", "LEVEL 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("inactive render missing %q", want)
		}
	}

	c.Step(frame(core.IntentStart))
	c.Render(screen)
	out = screen.String()
	if strings.Contains(out, "ALIEN INVASION") {
		t.Error("title should disappear once the game starts")
	}
	if !strings.ContainsRune(out, unitChar) || !strings.ContainsRune(out, shipChar) {
		t.Error("active render should draw units and the ship")
	}

	small := core.NewScreen(20, 5)
	c.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("expected a too-small notice")
	}
}

func TestHUD(t *testing.T) {
	got := HUD(GameState{Score: 12500, HiScore: 1000000, MaxScore: 12500, Level: 3, ShipsLeft: 2})
	for _, want := range []string{"SCORE 12,500", "HI 1,000,000", "LEVEL 3", "▲▲"} {
		if !strings.Contains(got, want) {
			t.Errorf("HUD %q missing %q", got, want)
		}
	}
}
