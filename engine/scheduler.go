package engine

import (
	"time"
)

// TaskID identifies a scheduled transition, zero is never issued
type TaskID uint64

// TaskFunc runs a deferred transition, at is the task's due time rather than the wall time of the Run call
type TaskFunc func(at time.Time)

type task struct {
	id       TaskID
	due      time.Time
	interval time.Duration // zero for one-shot
	fn       TaskFunc
}

// Scheduler holds the deferred and recurring transitions of one session
// It never spawns goroutines: tasks fire only from Run, on the caller's loop
// Closing the owning session must call CancelAll so no callback outlives it
type Scheduler struct {
	nextID TaskID
	tasks  []*task
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn once, d after at
func (s *Scheduler) After(at time.Time, d time.Duration, fn TaskFunc) TaskID {
	return s.add(at.Add(d), 0, fn)
}

// Every schedules fn at at+d, at+2d, ... until cancelled
// Non-positive intervals are rejected with a zero id
func (s *Scheduler) Every(at time.Time, d time.Duration, fn TaskFunc) TaskID {
	if d <= 0 {
		return 0
	}
	return s.add(at.Add(d), d, fn)
}

func (s *Scheduler) add(due time.Time, interval time.Duration, fn TaskFunc) TaskID {
	s.nextID++
	s.tasks = append(s.tasks, &task{
		id:       s.nextID,
		due:      due,
		interval: interval,
		fn:       fn,
	})
	return s.nextID
}

// Cancel removes a pending task, reports whether it was pending
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending task and returns how many were dropped
func (s *Scheduler) CancelAll() int {
	n := len(s.tasks)
	s.tasks = nil
	return n
}

// Pending returns the number of armed tasks
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Scheduled reports whether id is still armed
func (s *Scheduler) Scheduled(id TaskID) bool {
	for _, t := range s.tasks {
		if t.id == id {
			return true
		}
	}
	return false
}

// Run fires every task due at or before now in (due, id) order and returns the number fired
// Tasks armed by callbacks are eligible in the same Run when already due
// Recurring tasks catch up one interval at a time so each missed tick is observed
func (s *Scheduler) Run(now time.Time) int {
	fired := 0
	for {
		idx := s.earliest()
		if idx < 0 || s.tasks[idx].due.After(now) {
			return fired
		}

		t := s.tasks[idx]
		due := t.due
		if t.interval > 0 {
			t.due = t.due.Add(t.interval)
		} else {
			s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
		}

		t.fn(due)
		fired++
	}
}

// earliest returns the index of the next task to fire, -1 when empty
func (s *Scheduler) earliest() int {
	best := -1
	for i, t := range s.tasks {
		if best < 0 {
			best = i
			continue
		}
		b := s.tasks[best]
		if t.due.Before(b.due) || (t.due.Equal(b.due) && t.id < b.id) {
			best = i
		}
	}
	return best
}
