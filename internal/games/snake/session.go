package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Session owns the current game and replaces it when the player restarts
// after game over. A finished Game never resumes.
type Session struct {
	opts  Options
	game  *Game
	games int
}

// NewSession starts the first game.
func NewSession(opts Options) (*Session, error) {
	g, err := NewGame(opts)
	if err != nil {
		return nil, err
	}
	opts.Seed = g.Seed()
	return &Session{opts: opts, game: g, games: 1}, nil
}

// Game returns the current game.
func (s *Session) Game() *Game {
	return s.game
}

// Games returns how many games have been started.
func (s *Session) Games() int {
	return s.games
}

// Restart replaces the current game. The new seed is drawn from the old
// game's generator so a seeded session stays reproducible.
func (s *Session) Restart() error {
	seed := s.game.rng.Int63()
	if seed == 0 {
		seed = 1
	}
	s.opts.Seed = seed

	g, err := NewGame(s.opts)
	if err != nil {
		return err
	}
	s.game = g
	s.games++
	g.logger.Info("game restarted", "game", s.games, "seed", seed)
	return nil
}

// Frame runs one frame of the current game, restarting first when the game
// is over and the restart action is held.
func (s *Session) Frame(h core.Host) error {
	if s.game.GameOver() && h.Held(core.ActionRestart) {
		if err := s.Restart(); err != nil {
			return err
		}
	}
	s.game.Frame(h)
	return nil
}
