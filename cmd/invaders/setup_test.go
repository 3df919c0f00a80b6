package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func withFlags(t *testing.T, cfgPath, difficulty string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	oldCfg, oldDiff := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = cfgPath, difficulty
	t.Cleanup(func() { flagConfig, flagDifficulty = oldCfg, oldDiff })
}

func TestLoadGameConfigPresets(t *testing.T) {
	tests := []struct {
		difficulty string
		wantShips  int
		wantErr    bool
	}{
		{"", config.DefaultInvadersConfig().Gameplay.StartingShips, false},
		{"easy", 5, false},
		{"hard", 2, false},
		{"nightmare", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			withFlags(t, "", tt.difficulty)

			cfg, err := loadGameConfig(log.New(io.Discard))
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadGameConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg.Gameplay.StartingShips != tt.wantShips {
				t.Errorf("starting ships = %d, want %d", cfg.Gameplay.StartingShips, tt.wantShips)
			}
		})
	}
}

func TestWriteConfigRoundTrips(t *testing.T) {
	withFlags(t, "", "hard")

	var buf bytes.Buffer
	if err := writeConfig(&buf); err != nil {
		t.Fatalf("writeConfig() error = %v", err)
	}

	cfg, err := config.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Gameplay.StartingShips != 2 {
		t.Errorf("dumped config lost the preset: ships = %d", cfg.Gameplay.StartingShips)
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	if got := expandHome("~/x/y.log"); got != "/home/tester/x/y.log" {
		t.Errorf("expandHome() = %q", got)
	}
	if got := expandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}
