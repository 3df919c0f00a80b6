package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagMute      bool
	flagVolume    float64
	flagScoreFile string
	flagHoldTicks int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Alien Invasion in the terminal.

Controls:
  Left/Right, A/D, H/L  - Move (keeps moving briefly after the last repeat)
  Down/S/J              - Stop moving
  Space/Up/W/K          - Fire
  Enter/P or click Play - Start a game
  Ctrl+S                - Save a text screenshot
  Q/Ctrl+C              - Quit

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --mute
  invaders play --score-file ~/.invaders/hi_score.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addSessionFlags(playCmd)
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a direction stays held after its last key repeat")
}

// addSessionFlags registers flags shared by the interactive commands.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", 1, "Sound effect volume (0-1)")
	cmd.Flags().StringVar(&flagScoreFile, "score-file", "", "Keep the high score in this YAML file instead of the database")
}

// session holds everything an interactive command needs for one game.
type session struct {
	ctrl     *invaders.Controller
	store    *storage.Store
	recorder *storage.ProfileStore
	sound    audio.Player
	logger   *log.Logger
	closeLog func()
}

func (s *session) close() {
	if s.store != nil {
		s.store.Close()
	}
	s.closeLog()
}

// newSession loads configuration, opens persistence and sound, and builds
// the controller.
func newSession(prefix string) (*session, error) {
	logger, closeLog := newFileLogger(prefix)
	s := &session{logger: logger, closeLog: closeLog, sound: audio.Mute{}}

	cfg, err := loadGameConfig(logger)
	if err != nil {
		closeLog()
		return nil, err
	}

	opts := []invaders.Option{invaders.WithLogger(logger)}

	s.store = openStore(logger)
	if s.store != nil {
		s.recorder = s.store.ForProfile(storage.LocalProfile)
	}

	switch {
	case flagScoreFile != "":
		fileStore, fsErr := storage.NewFileStore(flagScoreFile)
		if fsErr != nil {
			s.close()
			return nil, fsErr
		}
		opts = append(opts, invaders.WithScoreStore(fileStore))
	case s.recorder != nil:
		opts = append(opts, invaders.WithScoreStore(s.recorder))
	}

	if !flagMute {
		sm := audio.NewSoundManager(flagVolume)
		if initErr := sm.Initialize(); initErr != nil {
			logger.Warn("sound disabled", "err", initErr)
		} else {
			s.sound = sm
		}
	}

	s.ctrl = invaders.New(cfg, opts...)
	return s, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newSession("invaders")
	if err != nil {
		return err
	}
	defer s.close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		HoldTicks: flagHoldTicks,
		Sound:     s.sound,
		Logger:    s.logger,
	}
	if s.recorder != nil {
		opts.Recorder = s.recorder
	}
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		opts.ScreenshotDir = filepath.Join(home, ".invaders", "screenshots")
	}

	if err := tui.Run(s.ctrl, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
