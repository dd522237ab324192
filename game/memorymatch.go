package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/brain-trainer/board"
	"github.com/lixenwraith/brain-trainer/engine"
)

// MemoryPhase is the lifecycle of a memory match
type MemoryPhase int

const (
	MemoryNotStarted MemoryPhase = iota
	MemoryRunning
	// MemoryChecking holds two revealed cards until the reveal delay elapses
	MemoryChecking
	// MemoryCompleting follows the last match, the clock is already stopped
	MemoryCompleting
	MemoryFinished
)

func (p MemoryPhase) String() string {
	switch p {
	case MemoryRunning:
		return "running"
	case MemoryChecking:
		return "checking"
	case MemoryCompleting:
		return "completing"
	case MemoryFinished:
		return "finished"
	default:
		return "not_started"
	}
}

// Card is one tile, matched cards stay face up
type Card struct {
	Icon    board.Icon
	FaceUp  bool
	Matched bool
}

// MemoryMatchState is a render snapshot of a memory match
type MemoryMatchState struct {
	Cards     []Card
	Pending   []int
	Moves     int
	Phase     MemoryPhase
	ElapsedMs int64
}

// MemoryMatchSession times revealing every pair of a shuffled board
type MemoryMatchSession struct {
	id      string
	cards   []Card
	pending []int
	moves   int
	matched int
	phase   MemoryPhase
	timing  Timing
	clock   engine.Stopwatch
	sched   *engine.Scheduler
	events  eventQueue
	logger  zerolog.Logger
}

// NewMemoryMatchSession deals the board face down, the clock starts on the first flip
func NewMemoryMatchSession(src board.Source, icons []board.Icon, timing Timing, logger zerolog.Logger) (*MemoryMatchSession, error) {
	if err := timing.Validate(); err != nil {
		return nil, err
	}
	faces, err := board.NewMemoryBoard(src, icons)
	if err != nil {
		return nil, fmt.Errorf("memory board: %w", err)
	}

	cards := make([]Card, len(faces))
	for i, f := range faces {
		cards[i] = Card{Icon: f}
	}

	s := &MemoryMatchSession{
		id:     uuid.NewString(),
		cards:  cards,
		timing: timing,
		sched:  engine.NewScheduler(),
	}
	s.logger = logger.With().Str("session", s.id).Str("game", string(MemoryMatch)).Logger()
	s.logger.Debug().Int("cards", len(cards)).Msg("session created")
	return s, nil
}

func (s *MemoryMatchSession) ID() string     { return s.id }
func (s *MemoryMatchSession) Type() GameType { return MemoryMatch }

// Update fires pending pair resolution and completion due by now
func (s *MemoryMatchSession) Update(now time.Time) {
	s.sched.Run(now)
}

// Flip turns a card face up, reports whether the flip was accepted
// Rejected for out-of-range, face-up or matched cards, while a pair is pending, and once all pairs are found
func (s *MemoryMatchSession) Flip(now time.Time, index int) bool {
	s.sched.Run(now)

	switch s.phase {
	case MemoryChecking, MemoryCompleting, MemoryFinished:
		return false
	}
	if index < 0 || index >= len(s.cards) || len(s.pending) >= 2 {
		return false
	}
	card := &s.cards[index]
	if card.FaceUp || card.Matched {
		return false
	}

	if s.phase == MemoryNotStarted {
		s.phase = MemoryRunning
		s.clock.Start(now)
		s.events.push(EventStarted)
	}

	card.FaceUp = true
	s.pending = append(s.pending, index)

	if len(s.pending) == 2 {
		s.phase = MemoryChecking
		s.moves++
		s.events.push(EventPairChecking)

		a, b := s.cards[s.pending[0]], s.cards[s.pending[1]]
		if a.Icon.Name == b.Icon.Name {
			s.sched.After(now, s.timing.MatchDelay, s.resolveMatch)
		} else {
			s.sched.After(now, s.timing.MismatchDelay, s.resolveMismatch)
		}
	}
	return true
}

// Result returns the elapsed milliseconds once the completion delay has passed
func (s *MemoryMatchSession) Result() (Result, bool) {
	if s.phase != MemoryFinished {
		return Result{}, false
	}
	d, _ := s.clock.Final()
	return Result{GameType: MemoryMatch, Value: d.Milliseconds()}, true
}

// Snapshot returns the current state with elapsed time as of now
func (s *MemoryMatchSession) Snapshot(now time.Time) MemoryMatchState {
	return MemoryMatchState{
		Cards:     append([]Card(nil), s.cards...),
		Pending:   append([]int(nil), s.pending...),
		Moves:     s.moves,
		Phase:     s.phase,
		ElapsedMs: s.clock.Elapsed(now).Milliseconds(),
	}
}

// PendingTimers reports armed tasks, zero once finished or closed
func (s *MemoryMatchSession) PendingTimers() int { return s.sched.Pending() }

func (s *MemoryMatchSession) DrainEvents() []Event { return s.events.drain() }

func (s *MemoryMatchSession) Close() {
	if n := s.sched.CancelAll(); n > 0 {
		s.logger.Debug().Int("cancelled", n).Msg("session closed")
	}
}

func (s *MemoryMatchSession) resolveMatch(at time.Time) {
	for _, i := range s.pending {
		s.cards[i].Matched = true
	}
	s.pending = nil
	s.matched += 2
	s.events.push(EventMatch)

	if s.matched < len(s.cards) {
		s.phase = MemoryRunning
		return
	}

	s.clock.Stop(at)
	s.phase = MemoryCompleting
	s.logger.Debug().Int64("elapsed_ms", s.clock.Elapsed(at).Milliseconds()).Int("moves", s.moves).Msg("all pairs found")
	s.sched.After(at, s.timing.CompletionDelay, s.finish)
}

func (s *MemoryMatchSession) resolveMismatch(time.Time) {
	for _, i := range s.pending {
		s.cards[i].FaceUp = false
	}
	s.pending = nil
	s.phase = MemoryRunning
	s.events.push(EventMismatch)
}

func (s *MemoryMatchSession) finish(time.Time) {
	s.phase = MemoryFinished
	s.sched.CancelAll()
	s.events.push(EventFinished)
	d, _ := s.clock.Final()
	s.logger.Info().Int64("elapsed_ms", d.Milliseconds()).Int("moves", s.moves).Msg("session finished")
}
