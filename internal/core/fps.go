package core

import "time"

// FPSMeter counts frames over one-second windows.
type FPSMeter struct {
	windowStart time.Time
	frames      int
	fps         int
}

// Frame records a frame at now and returns the latest full-window rate.
func (m *FPSMeter) Frame(now time.Time) int {
	if m.windowStart.IsZero() {
		m.windowStart = now
	}
	m.frames++
	if elapsed := now.Sub(m.windowStart); elapsed >= time.Second {
		m.fps = int(float64(m.frames) / elapsed.Seconds())
		m.frames = 0
		m.windowStart = now
	}
	return m.fps
}

// FPS returns the rate measured over the last completed window.
func (m *FPSMeter) FPS() int {
	return m.fps
}
