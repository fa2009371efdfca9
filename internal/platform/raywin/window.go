//go:build raylib

// Package raywin hosts snake in a raylib window. It is built only with the
// raylib tag because raylib and Ebitengine both link GLFW.
package raywin

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// keys lists the raylib key codes for each action.
var keys = map[core.Action][]int32{
	core.ActionUp:      {rl.KeyUp, rl.KeyW},
	core.ActionDown:    {rl.KeyDown, rl.KeyS},
	core.ActionLeft:    {rl.KeyLeft, rl.KeyA},
	core.ActionRight:   {rl.KeyRight, rl.KeyD},
	core.ActionRestart: {rl.KeyR},
	core.ActionQuit:    {rl.KeyQ},
}

// window implements core.Window on the raylib immediate-mode API.
// Esc closes the window through raylib's default exit key.
type window struct{}

func (w window) ShouldClose() bool {
	return rl.WindowShouldClose() || w.Held(core.ActionQuit)
}

func (window) BeginFrame() { rl.BeginDrawing() }
func (window) EndFrame()   { rl.EndDrawing() }

func (window) Held(a core.Action) bool {
	for _, k := range keys[a] {
		if rl.IsKeyDown(k) {
			return true
		}
	}
	return false
}

func (window) FPS() int {
	return int(rl.GetFPS())
}

func (window) Clear(c core.Color) {
	rl.ClearBackground(rlColor(c))
}

func (window) FillSquare(x, y, size int, c core.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(size), int32(size), rlColor(c))
}

func (window) DrawText(text string, x, y, fontSize int, c core.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(fontSize), rlColor(c))
}

func rlColor(c core.Color) rl.Color {
	rgba := c.RGBA()
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}
