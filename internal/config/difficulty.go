package config

import (
	"fmt"
	"math"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplySnakePreset adjusts timing for a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySnakePreset(cfg *Snake, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyEasy:
		cfg.Timing.InitialPeriodMs = 400
		cfg.Timing.ShrinkFactor = 0.97
	case DifficultyNormal:
		cfg.Timing.InitialPeriodMs = 300
		cfg.Timing.ShrinkFactor = 0.95
	case DifficultyHard:
		cfg.Timing.InitialPeriodMs = 200
		cfg.Timing.ShrinkFactor = 0.93
		cfg.Timing.MinPeriodMs = 40
	case DifficultyFixed:
		cfg.Timing.ShrinkFactor = 1.0
	default:
		return fmt.Errorf("unknown difficulty preset %q", preset)
	}
	return nil
}

// NextPeriod returns the period that follows p after a meal:
// p scaled by the shrink factor, never below the configured floor.
func (t SnakeTiming) NextPeriod(p time.Duration) time.Duration {
	next := time.Duration(math.Round(float64(p) * t.ShrinkFactor))
	if floor := t.MinPeriod(); floor > 0 && next < floor {
		return floor
	}
	return next
}
