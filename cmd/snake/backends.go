package main

// Import renderers to register them
import (
	_ "github.com/vovakirdan/tui-snake/internal/platform/console"
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
)
