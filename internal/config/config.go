// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake contains all configuration for the snake game.
type Snake struct {
	Board   SnakeBoard   `yaml:"board"`
	Timing  SnakeTiming  `yaml:"timing"`
	Display SnakeDisplay `yaml:"display"`
	Rules   SnakeRules   `yaml:"rules"`
	Colors  SnakeColors  `yaml:"colors"`
}

// SnakeBoard defines the grid geometry.
type SnakeBoard struct {
	Size     int `yaml:"size"`      // Cells per side (the board is Size×Size)
	CellSize int `yaml:"cell_size"` // Pixels per cell
}

// SnakeTiming defines the tick period and its speed-up.
type SnakeTiming struct {
	InitialPeriodMs int     `yaml:"initial_period_ms"`
	ShrinkFactor    float64 `yaml:"shrink_factor"` // Applied to the period on every meal
	MinPeriodMs     int     `yaml:"min_period_ms"` // 0 disables the floor
	TargetFPS       int     `yaml:"target_fps"`
}

// SnakeDisplay defines HUD text placement.
type SnakeDisplay struct {
	Title    string `yaml:"title"`
	FontSize int    `yaml:"font_size"`
	TextX    int    `yaml:"text_x"`
	FPSY     int    `yaml:"fps_y"`
	ScoreY   int    `yaml:"score_y"`
}

// SnakeRules toggles gameplay variants.
type SnakeRules struct {
	// FoodAvoidsSnake keeps relocated food off the snake's body.
	FoodAvoidsSnake bool `yaml:"food_avoids_snake"`
}

// SnakeColors names palette entries for each element.
type SnakeColors struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Food       string `yaml:"food"`
	Snake      string `yaml:"snake"`
}

// Palette is SnakeColors resolved to core colors.
type Palette struct {
	Background core.Color
	Text       core.Color
	Food       core.Color
	Snake      core.Color
}

// InitialPeriod returns the starting tick period.
func (t SnakeTiming) InitialPeriod() time.Duration {
	return time.Duration(t.InitialPeriodMs) * time.Millisecond
}

// MinPeriod returns the period floor, or 0 when there is none.
func (t SnakeTiming) MinPeriod() time.Duration {
	return time.Duration(t.MinPeriodMs) * time.Millisecond
}

// WindowSize returns the side length of the board in pixels.
func (c Snake) WindowSize() int {
	return c.Board.Size * c.Board.CellSize
}

// Palette resolves the configured color names.
func (c Snake) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"colors.background", c.Colors.Background, &p.Background},
		{"colors.text", c.Colors.Text, &p.Text},
		{"colors.food", c.Colors.Food, &p.Food},
		{"colors.snake", c.Colors.Snake, &p.Snake},
	}
	for _, f := range fields {
		col, err := core.ParseColor(f.src)
		if err != nil {
			return p, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// Validate checks that the configuration describes a playable game.
func (c Snake) Validate() error {
	var errs []error
	if c.Board.Size < 2 {
		errs = append(errs, fmt.Errorf("board.size must be at least 2, got %d", c.Board.Size))
	}
	if c.Board.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("board.cell_size must be positive, got %d", c.Board.CellSize))
	}
	if c.Timing.InitialPeriodMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.initial_period_ms must be positive, got %d", c.Timing.InitialPeriodMs))
	}
	if c.Timing.ShrinkFactor <= 0 || c.Timing.ShrinkFactor > 1 {
		errs = append(errs, fmt.Errorf("timing.shrink_factor must be in (0, 1], got %g", c.Timing.ShrinkFactor))
	}
	if c.Timing.MinPeriodMs < 0 {
		errs = append(errs, fmt.Errorf("timing.min_period_ms must not be negative, got %d", c.Timing.MinPeriodMs))
	}
	if c.Timing.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("timing.target_fps must be positive, got %d", c.Timing.TargetFPS))
	}
	if c.Display.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("display.font_size must be positive, got %d", c.Display.FontSize))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
