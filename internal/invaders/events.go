package invaders

// EventKind identifies something noteworthy that happened during a frame.
// Front ends use events for sound and persistence; the game never waits on them.
type EventKind int

const (
	EventFired EventKind = iota
	EventUnitsDestroyed
	EventLifeLost
	EventLevelAdvanced
	EventGameStarted
	EventGameOver
)

var eventNames = [...]string{
	EventFired:          "fired",
	EventUnitsDestroyed: "units_destroyed",
	EventLifeLost:       "life_lost",
	EventLevelAdvanced:  "level_advanced",
	EventGameStarted:    "game_started",
	EventGameOver:       "game_over",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is emitted by Controller.Step.
// Count is set for EventUnitsDestroyed; Score and Level describe the session
// at the moment the event was raised.
type Event struct {
	Kind  EventKind
	Count int
	Score int
	Level int
}
