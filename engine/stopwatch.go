package engine

import "time"

// Stopwatch measures a play-through from the first interaction until it is stopped
// Zero value is a stopwatch that has not started
type Stopwatch struct {
	started   bool
	stopped   bool
	startTime time.Time
	stopTime  time.Time
}

// Start begins timing at at, later calls are ignored
func (w *Stopwatch) Start(at time.Time) {
	if w.started {
		return
	}
	w.started = true
	w.startTime = at
}

// Stop freezes elapsed time at at, ignored before Start or after a previous Stop
func (w *Stopwatch) Stop(at time.Time) {
	if !w.started || w.stopped {
		return
	}
	if at.Before(w.startTime) {
		at = w.startTime
	}
	w.stopped = true
	w.stopTime = at
}

// Started reports whether Start has been called
func (w *Stopwatch) Started() bool {
	return w.started
}

// Running reports whether the stopwatch is started and not yet stopped
func (w *Stopwatch) Running() bool {
	return w.started && !w.stopped
}

// Elapsed returns time measured as of now, frozen once stopped and never negative
func (w *Stopwatch) Elapsed(now time.Time) time.Duration {
	switch {
	case !w.started:
		return 0
	case w.stopped:
		return w.stopTime.Sub(w.startTime)
	}
	d := now.Sub(w.startTime)
	if d < 0 {
		return 0
	}
	return d
}

// Final returns the frozen duration, false while the stopwatch has not been stopped
func (w *Stopwatch) Final() (time.Duration, bool) {
	if !w.stopped {
		return 0, false
	}
	return w.stopTime.Sub(w.startTime), true
}
