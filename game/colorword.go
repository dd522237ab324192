package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/brain-trainer/board"
	"github.com/lixenwraith/brain-trainer/engine"
)

// Feedback marks the most recent answer until the next problem is drawn
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// ColorWordState is a render snapshot of a color/word session
type ColorWordState struct {
	Word     board.Color
	Ink      board.Color
	Options  []board.Color
	TimeLeft int // whole ticks remaining
	Score    int
	Feedback Feedback
	Finished bool
}

// ColorWordSession asks for the ink color of a color name drawn in a different color
type ColorWordSession struct {
	id      string
	src     board.Source
	palette []board.Color
	timing  Timing
	sched   *engine.Scheduler
	events  eventQueue
	logger  zerolog.Logger

	problem  board.Problem
	timeLeft int
	score    int
	feedback Feedback
	finished bool
}

// NewColorWordSession starts a running round at now with a first problem already drawn
func NewColorWordSession(now time.Time, src board.Source, palette []board.Color, timing Timing, logger zerolog.Logger) (*ColorWordSession, error) {
	if err := board.ValidatePalette(palette); err != nil {
		return nil, fmt.Errorf("color word palette: %w", err)
	}
	if err := timing.Validate(); err != nil {
		return nil, err
	}

	s := &ColorWordSession{
		id:       uuid.NewString(),
		src:      src,
		palette:  append([]board.Color(nil), palette...),
		timing:   timing,
		sched:    engine.NewScheduler(),
		timeLeft: timing.countdownTicks(),
	}
	s.logger = logger.With().Str("session", s.id).Str("game", string(ColorWord)).Logger()

	s.nextProblem()
	s.sched.Every(now, timing.ColorWordTick, s.tick)
	s.events.push(EventStarted)
	s.logger.Debug().Int("time_left", s.timeLeft).Msg("session started")
	return s, nil
}

func (s *ColorWordSession) ID() string     { return s.id }
func (s *ColorWordSession) Type() GameType { return ColorWord }

// Update fires the countdown and any pending feedback resolution due by now
func (s *ColorWordSession) Update(now time.Time) {
	s.sched.Run(now)
}

// SubmitAnswer answers with a color identity, reports whether the answer was accepted
// Ignored while feedback is pending, after the round ended, or for a name that is not an option
func (s *ColorWordSession) SubmitAnswer(now time.Time, name string) bool {
	s.sched.Run(now)
	if s.finished || s.feedback != FeedbackNone || !s.isOption(name) {
		return false
	}

	if name == s.problem.Ink.Name {
		s.score++
		s.feedback = FeedbackCorrect
		s.events.push(EventCorrect)
		s.sched.After(now, s.timing.CorrectDelay, s.resolveFeedback)
	} else {
		s.feedback = FeedbackIncorrect
		s.events.push(EventIncorrect)
		s.sched.After(now, s.timing.IncorrectDelay, s.resolveFeedback)
	}
	s.logger.Debug().Str("answer", name).Str("ink", s.problem.Ink.Name).Stringer("feedback", s.feedback).Int("score", s.score).Msg("answer")
	return true
}

// SubmitOption answers with the option at index in the current option order
func (s *ColorWordSession) SubmitOption(now time.Time, index int) bool {
	s.sched.Run(now)
	if index < 0 || index >= len(s.problem.Options) {
		return false
	}
	return s.SubmitAnswer(now, s.problem.Options[index].Name)
}

// Result returns the point count once the countdown has run out
func (s *ColorWordSession) Result() (Result, bool) {
	if !s.finished {
		return Result{}, false
	}
	return Result{GameType: ColorWord, Value: int64(s.score)}, true
}

// Snapshot returns the current state for rendering
func (s *ColorWordSession) Snapshot() ColorWordState {
	return ColorWordState{
		Word:     s.problem.Word,
		Ink:      s.problem.Ink,
		Options:  append([]board.Color(nil), s.problem.Options...),
		TimeLeft: s.timeLeft,
		Score:    s.score,
		Feedback: s.feedback,
		Finished: s.finished,
	}
}

// PendingTimers reports armed tasks, zero once finished or closed
func (s *ColorWordSession) PendingTimers() int { return s.sched.Pending() }

func (s *ColorWordSession) DrainEvents() []Event { return s.events.drain() }

// Close cancels the countdown and any pending feedback
func (s *ColorWordSession) Close() {
	if n := s.sched.CancelAll(); n > 0 {
		s.logger.Debug().Int("cancelled", n).Msg("session closed")
	}
}

func (s *ColorWordSession) tick(at time.Time) {
	if s.finished {
		return
	}
	s.timeLeft--
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.finish()
	}
}

func (s *ColorWordSession) finish() {
	s.finished = true
	s.feedback = FeedbackNone
	s.sched.CancelAll()
	s.events.push(EventFinished)
	s.logger.Info().Int("score", s.score).Msg("session finished")
}

func (s *ColorWordSession) resolveFeedback(time.Time) {
	if s.finished {
		return
	}
	s.nextProblem()
}

func (s *ColorWordSession) nextProblem() {
	p, err := board.NewColorWordProblem(s.src, s.palette)
	if err != nil {
		// palette was validated at construction
		panic(fmt.Errorf("color word problem: %w", err))
	}
	s.problem = p
	s.feedback = FeedbackNone
}

func (s *ColorWordSession) isOption(name string) bool {
	for _, o := range s.problem.Options {
		if o.Name == name {
			return true
		}
	}
	return false
}
