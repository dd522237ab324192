package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/brain-trainer/board"
	"github.com/lixenwraith/brain-trainer/engine"
)

// HuntPhase is the lifecycle of a number hunt
type HuntPhase int

const (
	HuntNotStarted HuntPhase = iota
	HuntRunning
	HuntFinished
)

func (p HuntPhase) String() string {
	switch p {
	case HuntRunning:
		return "running"
	case HuntFinished:
		return "finished"
	default:
		return "not_started"
	}
}

// NumberHuntState is a render snapshot of a number hunt
// Cells holds the grid row-major, a cell is found when its value is below Next
type NumberHuntState struct {
	Size      int
	Cells     []int
	Next      int
	Phase     HuntPhase
	ElapsedMs int64
}

// Found reports whether value has already been tapped in order
func (st NumberHuntState) Found(value int) bool {
	return value < st.Next
}

// NumberHuntSession times tapping 1..n² in order on a shuffled grid
type NumberHuntSession struct {
	id     string
	size   int
	cells  []int
	next   int
	phase  HuntPhase
	clock  engine.Stopwatch
	sched  *engine.Scheduler
	events eventQueue
	logger zerolog.Logger
}

// NewNumberHuntSession generates the grid, the clock starts on the first tap
func NewNumberHuntSession(src board.Source, size int, logger zerolog.Logger) (*NumberHuntSession, error) {
	cells, err := board.NewNumberGrid(src, size)
	if err != nil {
		return nil, fmt.Errorf("number hunt grid: %w", err)
	}

	s := &NumberHuntSession{
		id:    uuid.NewString(),
		size:  size,
		cells: cells,
		next:  1,
		sched: engine.NewScheduler(),
	}
	s.logger = logger.With().Str("session", s.id).Str("game", string(NumberHunt)).Logger()
	s.logger.Debug().Int("size", size).Msg("session created")
	return s, nil
}

func (s *NumberHuntSession) ID() string     { return s.id }
func (s *NumberHuntSession) Type() GameType { return NumberHunt }

// Update has no deferred transitions to fire, elapsed time is derived from the clock on demand
func (s *NumberHuntSession) Update(now time.Time) {
	s.sched.Run(now)
}

// Tap selects a value, reports whether it was the current target
// Out-of-range values are ignored, wrong in-range values start the clock but do not advance
func (s *NumberHuntSession) Tap(now time.Time, value int) bool {
	if s.phase == HuntFinished || value < 1 || value > s.size*s.size {
		return false
	}

	if s.phase == HuntNotStarted {
		s.phase = HuntRunning
		s.clock.Start(now)
		s.events.push(EventStarted)
		s.logger.Debug().Msg("clock started")
	}

	if value != s.next {
		s.events.push(EventIncorrect)
		return false
	}

	s.next++
	s.events.push(EventCorrect)
	if s.next > s.size*s.size {
		s.clock.Stop(now)
		s.phase = HuntFinished
		s.sched.CancelAll()
		s.events.push(EventFinished)
		s.logger.Info().Int64("elapsed_ms", s.clock.Elapsed(now).Milliseconds()).Msg("session finished")
	}
	return true
}

// TapCell taps the value at a row-major grid index
func (s *NumberHuntSession) TapCell(now time.Time, index int) bool {
	if index < 0 || index >= len(s.cells) {
		return false
	}
	return s.Tap(now, s.cells[index])
}

// Result returns the elapsed milliseconds once every number was found
func (s *NumberHuntSession) Result() (Result, bool) {
	if s.phase != HuntFinished {
		return Result{}, false
	}
	d, _ := s.clock.Final()
	return Result{GameType: NumberHunt, Value: d.Milliseconds()}, true
}

// Snapshot returns the current state with elapsed time as of now
func (s *NumberHuntSession) Snapshot(now time.Time) NumberHuntState {
	return NumberHuntState{
		Size:      s.size,
		Cells:     append([]int(nil), s.cells...),
		Next:      s.next,
		Phase:     s.phase,
		ElapsedMs: s.clock.Elapsed(now).Milliseconds(),
	}
}

func (s *NumberHuntSession) DrainEvents() []Event { return s.events.drain() }

func (s *NumberHuntSession) Close() {
	s.sched.CancelAll()
}
