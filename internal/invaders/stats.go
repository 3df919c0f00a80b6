package invaders

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ScoreStore persists the all-time high score between sessions.
// LoadHighScore returns core.ErrNoHighScore (possibly wrapped) when nothing
// has been saved yet.
type ScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Stats is the session state: lives, score, level and difficulty.
// MaxScore and HiScore survive resets; everything else starts over on Reset.
type Stats struct {
	ShipsLeft int
	Score     int
	MaxScore  int // Best score this process
	HiScore   int // Best score ever, loaded from the store
	Level     int

	Difficulty *config.Difficulty

	cfg    *config.InvadersConfig
	store  ScoreStore
	logger *log.Logger
}

// NewStats creates session state and loads the high score from store.
// A nil store keeps the high score in memory only. A missing or unreadable
// saved value starts the high score at zero and is rewritten right away.
func NewStats(cfg *config.InvadersConfig, store ScoreStore, logger *log.Logger) *Stats {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Stats{
		Difficulty: config.NewDifficulty(cfg),
		cfg:        cfg,
		store:      store,
		logger:     logger,
	}
	s.HiScore = s.loadHighScore()
	s.Reset()
	return s
}

func (s *Stats) loadHighScore() int {
	if s.store == nil {
		return 0
	}
	score, err := s.store.LoadHighScore()
	if err != nil {
		if !errors.Is(err, core.ErrNoHighScore) {
			s.logger.Warn("failed to load high score", "err", err)
		}
		if saveErr := s.store.SaveHighScore(0); saveErr != nil {
			s.logger.Warn("failed to create high score record", "err", saveErr)
		}
		return 0
	}
	return max(score, 0)
}

// Reset starts a new game: full lives, zero score, level one.
func (s *Stats) Reset() {
	s.ShipsLeft = s.cfg.Gameplay.StartingShips
	s.Score = 0
	s.Level = 1
}

// RecordCollisions awards points for every destroyed unit. Points scale with
// the number of hits, not with how many projectiles were involved.
func (s *Stats) RecordCollisions(hits []Hit) {
	if len(hits) == 0 {
		return
	}
	s.Score += len(hits) * s.cfg.Gameplay.UnitPoints
	s.updateMax()
}

func (s *Stats) updateMax() {
	s.MaxScore = max(s.MaxScore, s.Score)
	s.HiScore = max(s.HiScore, s.Score)
}

// LoseLife takes one ship away and reports how many remain.
func (s *Stats) LoseLife() int {
	if s.ShipsLeft > 0 {
		s.ShipsLeft--
	}
	return s.ShipsLeft
}

// AdvanceLevel moves to the next level.
func (s *Stats) AdvanceLevel() {
	s.Level++
}

// IncreaseDifficulty rescales speeds and shrinks units for the next level.
func (s *Stats) IncreaseDifficulty() {
	s.Difficulty.Increase()
}

// ResetDifficulty restores the base speeds and unit size.
func (s *Stats) ResetDifficulty() {
	s.Difficulty.Reset()
}

// Save writes the high score to the store. Without a store it is a no-op.
func (s *Stats) Save() error {
	if s.store == nil {
		return nil
	}
	return s.store.SaveHighScore(s.HiScore)
}
