package snake

import (
	"context"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// RunLoop drives a session on a polled window, one frame per iteration.
// The close request is checked before any other work in each frame; a
// cancelled context ends the loop at the next frame boundary.
func RunLoop(ctx context.Context, w core.Window, s *Session) error {
	for {
		if w.ShouldClose() {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		w.BeginFrame()
		err := s.Frame(w)
		w.EndFrame()
		if err != nil {
			return err
		}
	}
}
