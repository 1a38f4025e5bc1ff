package core

import "time"

// FpsCounter measures frames per second over a sliding 60-sample window.
// The reported value only updates once per window wrap, which slows it
// down enough to be readable in a window title.
type FpsCounter struct {
	dt       [60]float32
	snapshot float32
	cursor   int
}

func NewFpsCounter() *FpsCounter {
	return &FpsCounter{}
}

func (f *FpsCounter) Add(deltaTime time.Duration) {
	f.dt[f.cursor] = float32(deltaTime.Seconds())
	if f.cursor == 0 {
		f.takeSnapshot()
	}
	f.cursor = (f.cursor + 1) % len(f.dt)
}

func (f *FpsCounter) takeSnapshot() {
	var sum float32
	for _, dt := range f.dt {
		sum += dt
	}
	avg := sum / float32(len(f.dt))
	// Approximately not zero
	if avg > 1e-9 {
		f.snapshot = 1.0 / avg
	}
}

func (f *FpsCounter) Fps() float32 {
	return f.snapshot
}
