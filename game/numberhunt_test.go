package game

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/brain-trainer/board"
)

func newTestHunt(t *testing.T, size int) *NumberHuntSession {
	t.Helper()
	s, err := NewNumberHuntSession(board.NewSource(11), size, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewNumberHuntSession: %v", err)
	}
	return s
}

func TestNumberHuntRejectsBadSize(t *testing.T) {
	if _, err := NewNumberHuntSession(board.NewSource(1), 0, zerolog.Nop()); !errors.Is(err, board.ErrInvalidGridSize) {
		t.Errorf("Expected ErrInvalidGridSize, got %v", err)
	}
}

func TestNumberHuntClockStartsOnFirstTap(t *testing.T) {
	s := newTestHunt(t, 3)

	idle := epoch.Add(time.Hour)
	if st := s.Snapshot(idle); st.Phase != HuntNotStarted || st.ElapsedMs != 0 {
		t.Errorf("Expected idle session with zero clock, got %+v", st)
	}

	first := epoch.Add(time.Hour)
	s.Tap(first, 5) // wrong but in range, still starts the clock
	if st := s.Snapshot(first.Add(250 * time.Millisecond)); st.Phase != HuntRunning || st.ElapsedMs != 250 {
		t.Errorf("Expected running with 250ms, got %+v", st)
	}
	if got := s.Snapshot(first).Next; got != 1 {
		t.Errorf("Wrong tap must not advance, next=%d", got)
	}
}

func TestNumberHuntOutOfRangeTapIsNoop(t *testing.T) {
	s := newTestHunt(t, 3)
	for _, v := range []int{0, -1, 10, 100} {
		if s.Tap(epoch, v) {
			t.Errorf("Tap(%d) accepted", v)
		}
	}
	if s.TapCell(epoch, 9) || s.TapCell(epoch, -1) {
		t.Error("Out-of-range cell accepted")
	}
	if st := s.Snapshot(epoch); st.Phase != HuntNotStarted {
		t.Errorf("Out-of-range taps must not start the clock, phase=%v", st.Phase)
	}
}

func TestNumberHuntInOrderFinishesOnce(t *testing.T) {
	const size = 4
	s := newTestHunt(t, size)
	now := epoch

	for v := 1; v <= size*size; v++ {
		now = now.Add(100 * time.Millisecond)
		if _, ok := s.Result(); ok {
			t.Fatalf("Finished early before tapping %d", v)
		}
		// an out-of-order tap first never advances
		if v < size*size && s.Tap(now, v+1) {
			t.Fatalf("Out-of-order tap %d accepted", v+1)
		}
		if !s.Tap(now, v) {
			t.Fatalf("Tap(%d) rejected", v)
		}
	}

	res, ok := s.Result()
	if !ok {
		t.Fatal("Expected finished after tapping all numbers")
	}
	// clock started at the first tap, 15 more taps 100ms apart
	if res.GameType != NumberHunt || res.Value != 1500 {
		t.Errorf("Expected 1500ms number hunt result, got %+v", res)
	}

	finished := 0
	for _, e := range s.DrainEvents() {
		if e.Type == EventFinished {
			finished++
		}
	}
	if finished != 1 {
		t.Errorf("Expected exactly one finished event, got %d", finished)
	}

	if s.Tap(now.Add(time.Second), 1) {
		t.Error("Taps after finish must be ignored")
	}
	if st := s.Snapshot(now.Add(time.Hour)); st.ElapsedMs != 1500 {
		t.Errorf("Expected clock frozen at 1500ms, got %d", st.ElapsedMs)
	}
}

func TestNumberHuntTapCell(t *testing.T) {
	s := newTestHunt(t, 2)
	st := s.Snapshot(epoch)

	index := -1
	for i, v := range st.Cells {
		if v == 1 {
			index = i
		}
	}
	if !s.TapCell(epoch, index) {
		t.Fatal("Expected cell holding 1 to be accepted")
	}
	st = s.Snapshot(epoch)
	if !st.Found(1) || st.Found(2) {
		t.Errorf("Expected only 1 found, next=%d", st.Next)
	}
}

func TestNumberHuntSingleCell(t *testing.T) {
	s := newTestHunt(t, 1)
	if !s.Tap(epoch, 1) {
		t.Fatal("Expected tap accepted")
	}
	res, ok := s.Result()
	if !ok || res.Value != 0 {
		t.Errorf("Expected instant finish with 0ms, got %+v %v", res, ok)
	}
}
