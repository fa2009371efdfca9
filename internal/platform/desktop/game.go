//go:build !raylib

// Package desktop hosts snake in a native window through Ebitengine.
// Update runs one session frame into a recorded canvas; Draw replays it.
package desktop

import (
	"bytes"
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// keys lists the physical keys for each action.
var keys = map[core.Action][]ebiten.Key{
	core.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ, ebiten.KeyEscape},
}

// game adapts a snake session to ebiten.Game.
type game struct {
	ctx     context.Context
	session *snake.Session
	canvas  *core.Canvas
	face    *text.GoTextFaceSource
	size    int
}

func newGame(ctx context.Context, s *snake.Session, cfg config.Snake) (*game, error) {
	face, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	return &game{
		ctx:     ctx,
		session: s,
		canvas:  core.NewCanvas(),
		face:    face,
		size:    cfg.WindowSize(),
	}, nil
}

// Update runs one session frame. The close request is checked first.
func (g *game) Update() error {
	if g.ctx.Err() != nil || g.Held(core.ActionQuit) {
		return ebiten.Termination
	}
	return g.session.Frame(g)
}

// Draw replays the last recorded frame.
func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.Replay(&imageSurface{dst: screen, face: g.face})
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.size, g.size
}

// Held implements core.Input.
func (g *game) Held(a core.Action) bool {
	for _, k := range keys[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// FPS returns ebiten's measured frame rate.
func (g *game) FPS() int {
	return int(ebiten.ActualFPS() + 0.5)
}

func (g *game) Clear(c core.Color) {
	g.canvas.Clear(c)
}

func (g *game) FillSquare(x, y, size int, c core.Color) {
	g.canvas.FillSquare(x, y, size, c)
}

func (g *game) DrawText(s string, x, y, fontSize int, c core.Color) {
	g.canvas.DrawText(s, x, y, fontSize, c)
}

// imageSurface draws onto an ebiten image.
type imageSurface struct {
	dst  *ebiten.Image
	face *text.GoTextFaceSource
}

func (s *imageSurface) Clear(c core.Color) {
	s.dst.Fill(c.RGBA())
}

func (s *imageSurface) FillSquare(x, y, size int, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(size), float32(size), c.RGBA(), false)
}

func (s *imageSurface) DrawText(str string, x, y, fontSize int, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(s.dst, str, &text.GoTextFace{
		Source: s.face,
		Size:   float64(fontSize),
	}, op)
}
