package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file fails to parse.
func DefaultSnakeConfig() Snake {
	return Snake{
		Board: SnakeBoard{
			Size:     20,
			CellSize: 20,
		},
		Timing: SnakeTiming{
			InitialPeriodMs: 300,
			ShrinkFactor:    0.95,
			MinPeriodMs:     0,
			TargetFPS:       60,
		},
		Display: SnakeDisplay{
			Title:    "Snake",
			FontSize: 20,
			TextX:    12,
			FPSY:     12,
			ScoreY:   30,
		},
		Rules: SnakeRules{
			FoodAvoidsSnake: true,
		},
		Colors: SnakeColors{
			Background: "white",
			Text:       "black",
			Food:       "red",
			Snake:      "blue",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
