package game

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/brain-trainer/board"
)

func newTestMemory(t *testing.T, icons []board.Icon) *MemoryMatchSession {
	t.Helper()
	s, err := NewMemoryMatchSession(board.NewSource(21), icons, DefaultTiming(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewMemoryMatchSession: %v", err)
	}
	return s
}

// pairs groups card indices by icon identity
func pairs(st MemoryMatchState) map[string][]int {
	out := map[string][]int{}
	for i, c := range st.Cards {
		out[c.Icon.Name] = append(out[c.Icon.Name], i)
	}
	return out
}

// mismatch returns two indices holding different icons
func mismatch(st MemoryMatchState) (int, int) {
	for i := 1; i < len(st.Cards); i++ {
		if st.Cards[i].Icon.Name != st.Cards[0].Icon.Name {
			return 0, i
		}
	}
	return -1, -1
}

func TestMemoryMatchRejectsBadIcons(t *testing.T) {
	if _, err := NewMemoryMatchSession(board.NewSource(1), nil, DefaultTiming(), zerolog.Nop()); !errors.Is(err, board.ErrNoIcons) {
		t.Errorf("Expected ErrNoIcons, got %v", err)
	}
}

func TestMemoryMatchInitialBoard(t *testing.T) {
	s := newTestMemory(t, board.DefaultIcons)
	st := s.Snapshot(epoch)

	if len(st.Cards) != 16 {
		t.Fatalf("Expected 16 cards, got %d", len(st.Cards))
	}
	for _, idx := range pairs(st) {
		if len(idx) != 2 {
			t.Errorf("Expected every icon twice, got %v", idx)
		}
	}
	for _, c := range st.Cards {
		if c.FaceUp || c.Matched {
			t.Fatal("Expected all cards face down")
		}
	}
	if st.Phase != MemoryNotStarted || st.ElapsedMs != 0 {
		t.Errorf("Unexpected initial state %+v", st)
	}
}

func TestMemoryMatchPairLocksAfterMatchDelay(t *testing.T) {
	s := newTestMemory(t, board.DefaultIcons)
	p := pairs(s.Snapshot(epoch))["star"]

	s.Flip(epoch, p[0])
	s.Flip(epoch.Add(100*time.Millisecond), p[1])

	st := s.Snapshot(epoch.Add(100 * time.Millisecond))
	if st.Phase != MemoryChecking || st.Moves != 1 || len(st.Pending) != 2 {
		t.Fatalf("Expected checking after second flip, got %+v", st)
	}

	s.Update(epoch.Add(100*time.Millisecond + DefaultTiming().MatchDelay - time.Millisecond))
	if s.Snapshot(epoch).Cards[p[0]].Matched {
		t.Error("Pair must not lock before the match delay")
	}

	s.Update(epoch.Add(100*time.Millisecond + DefaultTiming().MatchDelay))
	st = s.Snapshot(epoch)
	if !st.Cards[p[0]].Matched || !st.Cards[p[1]].Matched {
		t.Error("Expected both cards matched after the match delay")
	}
	if st.Phase != MemoryRunning || len(st.Pending) != 0 {
		t.Errorf("Expected running with no pending cards, got %+v", st)
	}
	if s.Flip(epoch.Add(time.Second), p[0]) {
		t.Error("Matched card must not flip")
	}
}

func TestMemoryMatchMismatchFlipsBack(t *testing.T) {
	s := newTestMemory(t, board.DefaultIcons)
	a, b := mismatch(s.Snapshot(epoch))

	s.Flip(epoch, a)
	s.Flip(epoch, b)

	s.Update(epoch.Add(DefaultTiming().MatchDelay))
	st := s.Snapshot(epoch)
	if !st.Cards[a].FaceUp || !st.Cards[b].FaceUp {
		t.Error("Mismatched cards must stay visible past the match delay")
	}

	s.Update(epoch.Add(DefaultTiming().MismatchDelay))
	st = s.Snapshot(epoch)
	if st.Cards[a].FaceUp || st.Cards[b].FaceUp || st.Cards[a].Matched || st.Cards[b].Matched {
		t.Error("Expected both cards face down and unmatched after the mismatch delay")
	}
	if st.Phase != MemoryRunning || st.Moves != 1 {
		t.Errorf("Expected running with 1 move, got %+v", st)
	}
}

func TestMemoryMatchGuards(t *testing.T) {
	s := newTestMemory(t, board.DefaultIcons)
	a, b := mismatch(s.Snapshot(epoch))

	if s.Flip(epoch, -1) || s.Flip(epoch, 16) {
		t.Error("Out-of-range flip accepted")
	}
	if s.Snapshot(epoch).Phase != MemoryNotStarted {
		t.Error("Rejected flip must not start the clock")
	}

	s.Flip(epoch, a)
	if s.Flip(epoch, a) {
		t.Error("Face-up card flip accepted")
	}
	s.Flip(epoch, b)

	for i := range s.Snapshot(epoch).Cards {
		if i != a && i != b && s.Flip(epoch, i) {
			t.Fatalf("Third flip accepted while a pair is pending")
		}
	}
	if up := countFaceUp(s.Snapshot(epoch)); up != 2 {
		t.Errorf("Expected at most 2 unresolved face-up cards, got %d", up)
	}
}

func countFaceUp(st MemoryMatchState) int {
	n := 0
	for _, c := range st.Cards {
		if c.FaceUp && !c.Matched {
			n++
		}
	}
	return n
}

func TestMemoryMatchFullGame(t *testing.T) {
	icons := board.DefaultIcons[:3]
	s := newTestMemory(t, icons)
	timing := DefaultTiming()

	start := epoch.Add(time.Minute) // idle time before the first flip does not count
	now := start

	// one wasted move first
	a, b := mismatch(s.Snapshot(now))
	s.Flip(now, a)
	s.Flip(now, b)
	now = now.Add(timing.MismatchDelay)
	s.Update(now)

	for name, idx := range pairs(s.Snapshot(now)) {
		if _, ok := s.Result(); ok {
			t.Fatalf("Finished before pair %s", name)
		}
		s.Flip(now, idx[0])
		s.Flip(now, idx[1])
		now = now.Add(timing.MatchDelay)
		s.Update(now)
	}

	st := s.Snapshot(now)
	if st.Phase != MemoryCompleting {
		t.Fatalf("Expected completing after last match, got %v", st.Phase)
	}
	if _, ok := s.Result(); ok {
		t.Fatal("Result must wait for the completion delay")
	}

	stoppedAt := now.Sub(start).Milliseconds()
	s.Update(now.Add(timing.CompletionDelay))

	res, ok := s.Result()
	if !ok {
		t.Fatal("Expected finished after completion delay")
	}
	if res.GameType != MemoryMatch || res.Value != stoppedAt {
		t.Errorf("Expected %dms, got %+v", stoppedAt, res)
	}
	if got := s.Snapshot(now).Moves; got != 4 {
		t.Errorf("Expected 4 moves, got %d", got)
	}
	if s.PendingTimers() != 0 {
		t.Errorf("Expected no timers after finish, got %d", s.PendingTimers())
	}
	if s.Flip(now.Add(time.Hour), 0) {
		t.Error("Flip after finish accepted")
	}
}

func TestMemoryMatchNotFinishedWhileUnmatched(t *testing.T) {
	s := newTestMemory(t, board.DefaultIcons[:2])
	p := pairs(s.Snapshot(epoch))["star"]
	s.Flip(epoch, p[0])
	s.Flip(epoch, p[1])
	s.Update(epoch.Add(time.Hour))

	if _, ok := s.Result(); ok {
		t.Error("Session finished with an unmatched pair left")
	}
}

func TestMemoryMatchCloseCancelsResolution(t *testing.T) {
	s := newTestMemory(t, board.DefaultIcons)
	a, b := mismatch(s.Snapshot(epoch))
	s.Flip(epoch, a)
	s.Flip(epoch, b)

	s.Close()
	s.Update(epoch.Add(time.Hour))

	if s.PendingTimers() != 0 {
		t.Errorf("Expected no timers after close, got %d", s.PendingTimers())
	}
	if st := s.Snapshot(epoch); st.Phase != MemoryChecking {
		t.Errorf("Closed session must not resolve its pair, phase=%v", st.Phase)
	}
}
