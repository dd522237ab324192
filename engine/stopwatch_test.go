package engine

import (
	"testing"
	"time"
)

func TestStopwatchNotStarted(t *testing.T) {
	var w Stopwatch
	if w.Started() || w.Running() {
		t.Error("Expected zero stopwatch to be idle")
	}
	if got := w.Elapsed(epoch.Add(time.Hour)); got != 0 {
		t.Errorf("Expected 0 elapsed before start, got %v", got)
	}
	w.Stop(epoch)
	if w.Started() {
		t.Error("Stop before Start must not start the stopwatch")
	}
}

func TestStopwatchMeasuresFromFirstStart(t *testing.T) {
	var w Stopwatch
	w.Start(epoch)
	w.Start(epoch.Add(time.Second))

	if got := w.Elapsed(epoch.Add(1500 * time.Millisecond)); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s elapsed, got %v", got)
	}
	if got := w.Elapsed(epoch.Add(-time.Second)); got != 0 {
		t.Errorf("Expected clamped 0 for time before start, got %v", got)
	}
}

func TestStopwatchFreezesOnStop(t *testing.T) {
	var w Stopwatch
	w.Start(epoch)
	w.Stop(epoch.Add(2 * time.Second))
	w.Stop(epoch.Add(5 * time.Second))

	if w.Running() {
		t.Error("Expected stopped stopwatch not running")
	}
	for _, now := range []time.Time{epoch.Add(3 * time.Second), epoch.Add(time.Hour)} {
		if got := w.Elapsed(now); got != 2*time.Second {
			t.Errorf("Expected frozen 2s, got %v", got)
		}
	}
}

func TestStopwatchFinal(t *testing.T) {
	var w Stopwatch
	if _, ok := w.Final(); ok {
		t.Error("Expected no final duration before stop")
	}
	w.Start(epoch)
	if _, ok := w.Final(); ok {
		t.Error("Expected no final duration while running")
	}
	w.Stop(epoch.Add(1234 * time.Millisecond))
	if d, ok := w.Final(); !ok || d != 1234*time.Millisecond {
		t.Errorf("Expected final 1.234s, got %v %v", d, ok)
	}
}
