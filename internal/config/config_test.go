package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseSnake(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults differ from DefaultSnakeConfig():\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultConstants(t *testing.T) {
	cfg := DefaultSnakeConfig()

	if cfg.Board.CellSize != 20 || cfg.Board.Size != 20 {
		t.Errorf("board = %+v, expected 20x20 cells of 20px", cfg.Board)
	}
	if cfg.Display.FontSize != 20 {
		t.Errorf("font size = %d, expected 20", cfg.Display.FontSize)
	}
	if cfg.Timing.InitialPeriod() != 300*time.Millisecond {
		t.Errorf("initial period = %v, expected 300ms", cfg.Timing.InitialPeriod())
	}
	if cfg.Timing.ShrinkFactor != 0.95 {
		t.Errorf("shrink factor = %g, expected 0.95", cfg.Timing.ShrinkFactor)
	}
	if cfg.Timing.TargetFPS != 60 {
		t.Errorf("target fps = %d, expected 60", cfg.Timing.TargetFPS)
	}
	if cfg.WindowSize() != 400 {
		t.Errorf("WindowSize() = %d, expected 400", cfg.WindowSize())
	}
}

func TestPalette(t *testing.T) {
	p, err := DefaultSnakeConfig().Palette()
	if err != nil {
		t.Fatalf("Palette() failed: %v", err)
	}
	want := Palette{
		Background: core.ColorWhite,
		Text:       core.ColorBlack,
		Food:       core.ColorRed,
		Snake:      core.ColorBlue,
	}
	if p != want {
		t.Errorf("Palette() = %+v, expected %+v", p, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Snake)
		wantErr string
	}{
		{"defaults", func(*Snake) {}, ""},
		{"tiny board", func(c *Snake) { c.Board.Size = 1 }, "board.size"},
		{"zero cell", func(c *Snake) { c.Board.CellSize = 0 }, "board.cell_size"},
		{"zero period", func(c *Snake) { c.Timing.InitialPeriodMs = 0 }, "initial_period_ms"},
		{"factor above one", func(c *Snake) { c.Timing.ShrinkFactor = 1.2 }, "shrink_factor"},
		{"factor zero", func(c *Snake) { c.Timing.ShrinkFactor = 0 }, "shrink_factor"},
		{"negative floor", func(c *Snake) { c.Timing.MinPeriodMs = -1 }, "min_period_ms"},
		{"zero fps", func(c *Snake) { c.Timing.TargetFPS = 0 }, "target_fps"},
		{"zero font", func(c *Snake) { c.Display.FontSize = 0 }, "font_size"},
		{"bad color", func(c *Snake) { c.Colors.Food = "chartreuse" }, "colors.food"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestNextPeriod(t *testing.T) {
	timing := DefaultSnakeConfig().Timing

	if got := timing.NextPeriod(300 * time.Millisecond); got != 285*time.Millisecond {
		t.Errorf("NextPeriod(300ms) = %v, expected 285ms", got)
	}

	// Without a floor the period keeps shrinking
	p := timing.InitialPeriod()
	for i := 0; i < 200; i++ {
		p = timing.NextPeriod(p)
	}
	if p >= time.Millisecond {
		t.Errorf("unclamped period should approach zero, got %v", p)
	}

	timing.MinPeriodMs = 50
	p = timing.InitialPeriod()
	for i := 0; i < 200; i++ {
		p = timing.NextPeriod(p)
	}
	if p != 50*time.Millisecond {
		t.Errorf("clamped period = %v, expected 50ms", p)
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		wantPeriod int
		wantFactor float64
	}{
		{"", 300, 0.95},
		{DifficultyEasy, 400, 0.97},
		{DifficultyNormal, 300, 0.95},
		{DifficultyHard, 200, 0.93},
		{DifficultyFixed, 300, 1.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			if err := ApplySnakePreset(&cfg, tc.preset); err != nil {
				t.Fatalf("ApplySnakePreset() failed: %v", err)
			}
			if cfg.Timing.InitialPeriodMs != tc.wantPeriod || cfg.Timing.ShrinkFactor != tc.wantFactor {
				t.Errorf("timing = %+v, expected %dms x%g", cfg.Timing, tc.wantPeriod, tc.wantFactor)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	cfg := DefaultSnakeConfig()
	if err := ApplySnakePreset(&cfg, "nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  size: 12\ntiming:\n  min_period_ms: 80\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Size != 12 {
		t.Errorf("board.size = %d, expected 12", cfg.Board.Size)
	}
	if cfg.Timing.MinPeriod() != 80*time.Millisecond {
		t.Errorf("min period = %v, expected 80ms", cfg.Timing.MinPeriod())
	}
	// Untouched fields keep their defaults
	if cfg.Board.CellSize != 20 || cfg.Colors.Snake != "blue" {
		t.Errorf("missing fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  shrink_factor: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(invalid)
	if err == nil || !strings.Contains(err.Error(), "shrink_factor") {
		t.Errorf("invalid config error = %v, expected mention of shrink_factor", err)
	}
}

func TestLoadSnakeUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Error("without config files LoadSnake should return the defaults")
	}

	dir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "snake.yaml"), []byte("board:\n  size: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Size != 30 {
		t.Errorf("user config not picked up, board.size = %d", cfg.Board.Size)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Board.Size = 15
	cfg.Rules.FoodAvoidsSnake = false

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "food_avoids_snake: false") {
		t.Errorf("marshalled YAML missing rules section:\n%s", data)
	}

	back, err := ParseSnake(data)
	if err != nil {
		t.Fatalf("ParseSnake() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch:\n%+v\n%+v", back, cfg)
	}
}

func TestOnlyFixedPresetKeepsPeriod(t *testing.T) {
	presets := []DifficultyPreset{"", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

	for _, p := range presets {
		cfg := DefaultSnakeConfig()
		if err := ApplySnakePreset(&cfg, p); err != nil {
			t.Fatalf("ApplySnakePreset(%q) failed: %v", p, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q does not validate: %v", p, err)
		}

		f := cfg.Timing.ShrinkFactor
		if p == DifficultyFixed {
			if f != 1 {
				t.Errorf("fixed preset factor = %g, expected 1", f)
			}
			continue
		}
		if f >= 1 {
			t.Errorf("preset %q factor = %g, expected below 1", p, f)
		}
	}
}
