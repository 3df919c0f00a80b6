package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open Alien Invasion in a window at the configured world size.

Controls:
  Left/Right, A/D  - Move while held
  Space            - Fire
  Enter/P or click Play - Start a game
  Q/Esc            - Quit

Examples:
  invaders gui
  invaders gui --difficulty hard --fps 30`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	addSessionFlags(guiCmd)
}

func runGUI(_ *cobra.Command, _ []string) error {
	s, err := newSession("invaders-gui")
	if err != nil {
		return err
	}
	defer s.close()

	opts := gui.Options{
		TickRate: flagFPS,
		Sound:    s.sound,
		Logger:   s.logger,
	}
	if s.recorder != nil {
		opts.Recorder = s.recorder
	}

	if err := gui.Run(s.ctrl, opts); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
