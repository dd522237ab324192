package game

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/brain-trainer/board"
)

var epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestColorWord(t *testing.T, seed uint64) *ColorWordSession {
	t.Helper()
	s, err := NewColorWordSession(epoch, board.NewSource(seed), board.DefaultPalette, DefaultTiming(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewColorWordSession: %v", err)
	}
	return s
}

func wrongOption(st ColorWordState) string {
	for _, o := range st.Options {
		if o.Name != st.Ink.Name {
			return o.Name
		}
	}
	return ""
}

func TestColorWordInitialState(t *testing.T) {
	s := newTestColorWord(t, 1)
	st := s.Snapshot()

	if st.TimeLeft != 60 {
		t.Errorf("Expected 60 ticks left, got %d", st.TimeLeft)
	}
	if st.Score != 0 || st.Feedback != FeedbackNone || st.Finished {
		t.Errorf("Unexpected initial state %+v", st)
	}
	if st.Word.Name == st.Ink.Name {
		t.Error("Word and ink must differ")
	}
	if len(st.Options) != board.OptionCount {
		t.Errorf("Expected %d options, got %d", board.OptionCount, len(st.Options))
	}
	if s.PendingTimers() != 1 {
		t.Errorf("Expected exactly the countdown timer, got %d", s.PendingTimers())
	}
}

func TestColorWordRejectsBadConfig(t *testing.T) {
	_, err := NewColorWordSession(epoch, board.NewSource(1), board.DefaultPalette[:1], DefaultTiming(), zerolog.Nop())
	if !errors.Is(err, board.ErrPaletteTooSmall) {
		t.Errorf("Expected ErrPaletteTooSmall, got %v", err)
	}

	timing := DefaultTiming()
	timing.ColorWordDuration = 0
	_, err = NewColorWordSession(epoch, board.NewSource(1), board.DefaultPalette, timing, zerolog.Nop())
	if !errors.Is(err, ErrInvalidTiming) {
		t.Errorf("Expected ErrInvalidTiming, got %v", err)
	}
}

func TestColorWordCountdown(t *testing.T) {
	s := newTestColorWord(t, 2)

	s.Update(epoch.Add(999 * time.Millisecond))
	if got := s.Snapshot().TimeLeft; got != 60 {
		t.Errorf("Expected 60 before first second, got %d", got)
	}
	s.Update(epoch.Add(10 * time.Second))
	if got := s.Snapshot().TimeLeft; got != 50 {
		t.Errorf("Expected 50 after 10s, got %d", got)
	}
	if _, ok := s.Result(); ok {
		t.Fatal("Expected no result while running")
	}

	s.Update(epoch.Add(60 * time.Second))
	res, ok := s.Result()
	if !ok {
		t.Fatal("Expected result after 60s")
	}
	if res.GameType != ColorWord || res.Value != 0 {
		t.Errorf("Expected zero-point color word result, got %+v", res)
	}
	if s.PendingTimers() != 0 {
		t.Errorf("Expected no timers after finish, got %d", s.PendingTimers())
	}

	s.Update(epoch.Add(2 * time.Minute))
	if got := s.Snapshot().TimeLeft; got != 0 {
		t.Errorf("Expected countdown to stay at 0, got %d", got)
	}
}

func TestColorWordCorrectAnswer(t *testing.T) {
	s := newTestColorWord(t, 3)
	now := epoch.Add(100 * time.Millisecond)
	before := s.Snapshot()

	if !s.SubmitAnswer(now, before.Ink.Name) {
		t.Fatal("Expected correct answer to be accepted")
	}
	st := s.Snapshot()
	if st.Score != 1 || st.Feedback != FeedbackCorrect {
		t.Errorf("Expected score 1 with correct feedback, got %+v", st)
	}

	// input is blocked until the feedback clears
	if s.SubmitAnswer(now.Add(100*time.Millisecond), st.Ink.Name) {
		t.Error("Expected answer during pending feedback to be ignored")
	}
	if s.Snapshot().Score != 1 {
		t.Error("Score must not change during pending feedback")
	}

	s.Update(now.Add(DefaultTiming().CorrectDelay))
	if got := s.Snapshot().Feedback; got != FeedbackNone {
		t.Errorf("Expected feedback cleared after correct delay, got %v", got)
	}

	events := s.DrainEvents()
	if len(events) != 2 || events[0].Type != EventStarted || events[1].Type != EventCorrect {
		t.Errorf("Expected started+correct events, got %v", events)
	}
}

func TestColorWordIncorrectAnswer(t *testing.T) {
	s := newTestColorWord(t, 4)
	now := epoch.Add(200 * time.Millisecond)

	if !s.SubmitAnswer(now, wrongOption(s.Snapshot())) {
		t.Fatal("Expected incorrect answer to be accepted")
	}
	st := s.Snapshot()
	if st.Score != 0 || st.Feedback != FeedbackIncorrect {
		t.Errorf("Expected score 0 with incorrect feedback, got %+v", st)
	}

	s.Update(now.Add(DefaultTiming().CorrectDelay))
	if s.Snapshot().Feedback != FeedbackIncorrect {
		t.Error("Expected incorrect feedback to outlast the correct delay")
	}
	s.Update(now.Add(DefaultTiming().IncorrectDelay))
	if s.Snapshot().Feedback != FeedbackNone {
		t.Error("Expected feedback cleared after incorrect delay")
	}
}

func TestColorWordIgnoresUnknownAnswer(t *testing.T) {
	s := newTestColorWord(t, 5)
	if s.SubmitAnswer(epoch, "Svart") {
		t.Error("Expected unknown color to be ignored")
	}
	if s.SubmitOption(epoch, board.OptionCount) || s.SubmitOption(epoch, -1) {
		t.Error("Expected out-of-range option index to be ignored")
	}
	if s.Snapshot().Feedback != FeedbackNone {
		t.Error("Ignored input must not set feedback")
	}
}

func TestColorWordSubmitOption(t *testing.T) {
	s := newTestColorWord(t, 6)
	st := s.Snapshot()
	for i, o := range st.Options {
		if o.Name == st.Ink.Name {
			if !s.SubmitOption(epoch, i) {
				t.Fatal("Expected option submit to be accepted")
			}
		}
	}
	if s.Snapshot().Score != 1 {
		t.Errorf("Expected score 1, got %d", s.Snapshot().Score)
	}
}

// TestColorWordScenario plays 10 correct and 2 incorrect answers inside one minute
func TestColorWordScenario(t *testing.T) {
	s := newTestColorWord(t, 7)
	now := epoch
	timing := DefaultTiming()

	answer := func(correct bool) {
		now = now.Add(time.Second)
		s.Update(now)
		st := s.Snapshot()
		name := st.Ink.Name
		delay := timing.CorrectDelay
		if !correct {
			name = wrongOption(st)
			delay = timing.IncorrectDelay
		}
		if !s.SubmitAnswer(now, name) {
			t.Fatalf("Answer at %v rejected", now.Sub(epoch))
		}
		now = now.Add(delay)
		s.Update(now)
	}

	for i := 0; i < 5; i++ {
		answer(true)
	}
	answer(false)
	for i := 0; i < 5; i++ {
		answer(true)
	}
	answer(false)

	if _, ok := s.Result(); ok {
		t.Fatal("Session must still be running before the minute is up")
	}

	s.Update(epoch.Add(60 * time.Second))
	res, ok := s.Result()
	if !ok {
		t.Fatal("Expected finished session after 60s")
	}
	if res.Value != 10 {
		t.Errorf("Expected final score 10, got %d", res.Value)
	}
	if s.SubmitAnswer(epoch.Add(61*time.Second), s.Snapshot().Ink.Name) {
		t.Error("Expected answers after finish to be ignored")
	}
}

func TestColorWordFinishDuringFeedback(t *testing.T) {
	s := newTestColorWord(t, 8)
	now := epoch.Add(59*time.Second + 900*time.Millisecond)
	s.Update(now)
	s.SubmitAnswer(now, s.Snapshot().Ink.Name)

	s.Update(epoch.Add(61 * time.Second))
	res, ok := s.Result()
	if !ok || res.Value != 1 {
		t.Errorf("Expected finished with 1 point, got %+v %v", res, ok)
	}
	if s.PendingTimers() != 0 {
		t.Errorf("Expected pending feedback cancelled on finish, got %d timers", s.PendingTimers())
	}
}

func TestColorWordCloseCancelsTimers(t *testing.T) {
	s := newTestColorWord(t, 9)
	s.SubmitAnswer(epoch, s.Snapshot().Ink.Name)
	if s.PendingTimers() != 2 {
		t.Fatalf("Expected countdown and feedback timers, got %d", s.PendingTimers())
	}

	s.Close()
	s.Update(epoch.Add(5 * time.Minute))

	if s.PendingTimers() != 0 {
		t.Errorf("Expected no timers after close, got %d", s.PendingTimers())
	}
	if got := s.Snapshot().TimeLeft; got != 60 {
		t.Errorf("Closed session countdown must not advance, got %d", got)
	}
	if _, ok := s.Result(); ok {
		t.Error("Closed session must not produce a result")
	}
}
