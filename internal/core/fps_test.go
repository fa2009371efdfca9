package core

import (
	"testing"
	"time"
)

func TestFPSMeter(t *testing.T) {
	var m FPSMeter
	start := time.Unix(100, 0)

	// 30 frames spaced 1/30s apart fill the first window
	for i := 0; i < 30; i++ {
		m.Frame(start.Add(time.Duration(i) * time.Second / 30))
	}
	if m.FPS() != 0 {
		t.Errorf("FPS before a full window = %d, expected 0", m.FPS())
	}

	got := m.Frame(start.Add(time.Second))
	if got != 31 {
		t.Errorf("FPS after one second = %d, expected 31", got)
	}
	if m.FPS() != got {
		t.Error("FPS() should report the last measured rate")
	}
}
