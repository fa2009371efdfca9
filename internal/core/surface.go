package core

// Surface is the drawing half of a host. Coordinates and sizes are in
// render units (pixels for windowed hosts).
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c Color)
	// FillSquare draws a filled size×size square with its top-left at (x, y).
	FillSquare(x, y, size int, c Color)
	// DrawText draws text with its top-left at (x, y).
	DrawText(text string, x, y, fontSize int, c Color)
}

// Input reports which actions are held during the current frame.
type Input interface {
	Held(a Action) bool
}

// Host is everything a game needs from the platform for a single frame.
type Host interface {
	Surface
	Input
	// FPS returns the measured frame rate.
	FPS() int
}

// Window is a Host that owns a polled frame loop.
type Window interface {
	Host
	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool
	BeginFrame()
	EndFrame()
}
