//go:build raylib

package main

import (
	_ "github.com/vovakirdan/tui-snake/internal/platform/raywin"
)
