package blockfall

import (
	"math/rand"
	"testing"
	"time"
)

// newTestEngine returns an engine that only ever spawns the given kind.
func newTestEngine(k Kind) *Engine {
	e := New(DefaultRules(), 1)
	e.next = func() Kind { return k }
	return e
}

func TestNewEngineIsIdle(t *testing.T) {
	e := New(DefaultRules(), 7)
	s := e.Snapshot()

	if s.Status != StatusIdle || s.IsPlaying || s.IsGameOver {
		t.Errorf("Expected idle, got %s", s.Status)
	}
	if s.HasPiece {
		t.Errorf("Idle engine should have no piece")
	}
	if s.Score != 0 || s.Lines != 0 || s.Level != 1 {
		t.Errorf("Unexpected counters: score=%d lines=%d level=%d", s.Score, s.Lines, s.Level)
	}
	if s.Board.FilledCount() != 0 {
		t.Errorf("Expected empty board")
	}
}

func TestStart(t *testing.T) {
	e := newTestEngine(KindT)
	res := e.Start()

	if !res.Changed {
		t.Errorf("Start should report a change")
	}
	s := res.State
	if !s.IsPlaying || s.IsGameOver {
		t.Fatalf("Expected playing, got %s", s.Status)
	}
	if !s.HasPiece || s.Piece.Kind != KindT || s.Piece.Rotation != 0 {
		t.Errorf("Expected fresh T piece, got %+v", s.Piece)
	}
	if s.Position != SpawnPosition {
		t.Errorf("Expected spawn at %v, got %v", SpawnPosition, s.Position)
	}
}

func TestStartWhilePlayingIsNoop(t *testing.T) {
	e := newTestEngine(KindO)
	e.Start()
	e.Move(DirLeft)
	e.Tick()
	before := e.Snapshot()

	res := e.Start()
	if res.Changed {
		t.Errorf("Start while playing should not change state")
	}
	if res.State != before {
		t.Errorf("State changed: %+v -> %+v", before, res.State)
	}
}

func TestStartAfterGameOverStartsFresh(t *testing.T) {
	e := newTestEngine(KindO)
	e.Start()
	e.status = StatusGameOver
	e.score = 500
	e.lines = 12
	e.level = 2
	fillRow(&e.board, 19, 0)

	s := e.Start().State
	if !s.IsPlaying {
		t.Fatalf("Expected playing, got %s", s.Status)
	}
	if s.Score != 0 || s.Lines != 0 || s.Level != 1 || s.Locks != 0 {
		t.Errorf("Counters not reset: %+v", s)
	}
	if s.Board.FilledCount() != 0 {
		t.Errorf("Board not cleared")
	}
}

func TestReset(t *testing.T) {
	e := newTestEngine(KindO)
	e.Start()
	e.score = 300
	e.lines = 3
	fillRow(&e.board, 19, 0)

	s := e.Reset().State
	if s.Status != StatusIdle {
		t.Errorf("Expected idle, got %s", s.Status)
	}
	if s.HasPiece {
		t.Errorf("Expected no piece after reset")
	}
	if s.Board.FilledCount() != 0 {
		t.Errorf("Expected empty board after reset")
	}
	if s.Score != 300 || s.Lines != 3 {
		t.Errorf("Counters should survive reset until next start, got score=%d lines=%d", s.Score, s.Lines)
	}

	if e.Move(DirLeft).Changed || e.Rotate().Changed || e.Tick().Changed {
		t.Errorf("Commands should be ignored while idle")
	}
}

func TestMoveSideways(t *testing.T) {
	e := newTestEngine(KindO)
	e.Start()

	e.Move(DirLeft)
	if got := e.Snapshot().Position; got != (Position{X: 3, Y: 0}) {
		t.Errorf("Expected (3,0), got %v", got)
	}

	for i := 0; i < 10; i++ {
		e.Move(DirLeft)
	}
	if got := e.Snapshot().Position.X; got != 0 {
		t.Errorf("Expected to stop at left wall, got x=%d", got)
	}
	if e.Move(DirLeft).Changed {
		t.Errorf("Blocked move should not report a change")
	}

	for i := 0; i < 20; i++ {
		e.Move(DirRight)
	}
	if got := e.Snapshot().Position.X; got != BoardWidth-2 {
		t.Errorf("Expected to stop at right wall, got x=%d", got)
	}
	if e.Snapshot().Locks != 0 {
		t.Errorf("Sideways moves must never lock")
	}
}

func TestDropToFloorLocks(t *testing.T) {
	e := newTestEngine(KindO)
	e.Start()

	for i := 0; i < 18; i++ {
		res := e.Move(DirDown)
		if res.Locked {
			t.Fatalf("Locked early at move %d", i+1)
		}
	}
	res := e.Move(DirDown)
	if !res.Locked {
		t.Fatalf("Expected lock on 19th move")
	}

	s := res.State
	for _, p := range []Position{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		if !s.Board[p.Y][p.X].Filled {
			t.Errorf("Expected locked cell at %v", p)
		}
	}
	if s.Board.FilledCount() != 4 {
		t.Errorf("Expected 4 cells, got %d", s.Board.FilledCount())
	}
	if !s.HasPiece || s.Position != SpawnPosition {
		t.Errorf("Expected new piece at spawn, got %v", s.Position)
	}
	if s.Locks != 1 || !s.IsPlaying {
		t.Errorf("Expected 1 lock while playing, got %d (%s)", s.Locks, s.Status)
	}
}

func TestTickMatchesMoveDown(t *testing.T) {
	a := newTestEngine(KindT)
	b := newTestEngine(KindT)
	a.Start()
	b.Start()

	for i := 0; i < 30; i++ {
		ra := a.Tick()
		rb := b.Move(DirDown)
		if ra.State != rb.State {
			t.Fatalf("Diverged at step %d", i)
		}
	}
}

func TestLineClearScoring(t *testing.T) {
	e := newTestEngine(KindO)
	e.Start()
	fillRow(&e.board, 19, 4, 5)

	var res Result
	for !res.Locked {
		res = e.Tick()
	}

	if res.Lines != 1 || res.Points != 100 {
		t.Errorf("Expected 1 line for 100 points, got %d for %d", res.Lines, res.Points)
	}
	s := res.State
	if s.Score != 100 || s.Lines != 1 {
		t.Errorf("Expected score 100 lines 1, got %d %d", s.Score, s.Lines)
	}
	// Top half of the O drops into the cleared row.
	if !s.Board[19][4].Filled || !s.Board[19][5].Filled || s.Board.FilledCount() != 2 {
		t.Errorf("Unexpected board after clear, %d cells", s.Board.FilledCount())
	}
	for y := range BoardHeight {
		if len(s.Board[y]) != BoardWidth {
			t.Fatalf("Row %d has width %d", y, len(s.Board[y]))
		}
	}
}

func TestScoreUsesLevelBeforeClear(t *testing.T) {
	e := newTestEngine(KindI)
	e.Start()
	e.lines = 9
	e.level = 1
	e.Rotate() // vertical
	for y := 16; y < BoardHeight; y++ {
		fillRow(&e.board, y, 4)
	}

	var res Result
	for !res.Locked {
		res = e.Tick()
	}

	if res.Lines != 4 {
		t.Fatalf("Expected 4 lines, got %d", res.Lines)
	}
	if res.Points != 400 {
		t.Errorf("Expected 400 points at level 1, got %d", res.Points)
	}
	if res.State.Lines != 13 || res.State.Level != 2 {
		t.Errorf("Expected lines 13 level 2, got %d %d", res.State.Lines, res.State.Level)
	}
	if res.State.Board.FilledCount() != 0 {
		t.Errorf("Expected empty board, got %d cells", res.State.Board.FilledCount())
	}
}

func TestScoreAtHigherLevel(t *testing.T) {
	e := newTestEngine(KindO)
	e.Start()
	e.lines = 10
	e.level = 2
	fillRow(&e.board, 19, 4, 5)

	var res Result
	for !res.Locked {
		res = e.Tick()
	}

	if res.Lines != 1 || res.Points != 200 {
		t.Errorf("Expected 1 line for 200 points at level 2, got %d for %d", res.Lines, res.Points)
	}
	s := res.State
	if s.Score != 200 || s.Lines != 11 || s.Level != 2 {
		t.Errorf("Expected score 200 lines 11 level 2, got %d %d %d", s.Score, s.Lines, s.Level)
	}
	if s.DropInterval != 450*time.Millisecond {
		t.Errorf("Expected 450ms at level 2, got %v", s.DropInterval)
	}
}

func TestFinalLockScoresBeforeGameOver(t *testing.T) {
	e := newTestEngine(KindO)
	e.Start()
	fillRow(&e.board, 1, 4, 5)
	e.board[2][4] = Cell{Filled: true}

	res := e.Tick()
	if !res.GameOver {
		t.Fatalf("Expected game over, got %+v", res)
	}
	if res.Lines != 1 || res.Points != 100 || res.State.Score != 100 {
		t.Errorf("Final lock should clear and score, got lines=%d points=%d score=%d",
			res.Lines, res.Points, res.State.Score)
	}
	if !res.State.Board[1][4].Filled || !res.State.Board[1][5].Filled {
		t.Errorf("Top half of the O should drop into the cleared row")
	}
}

func TestNewWithSequence(t *testing.T) {
	e := NewWithSequence(DefaultRules(), KindI, KindO)
	want := []Kind{KindI, KindO, KindI}

	e.Start()
	for i, k := range want {
		s := e.Snapshot()
		if s.Piece.Kind != k {
			t.Fatalf("Piece %d: expected %s, got %s", i, k, s.Piece.Kind)
		}
		for !e.Tick().Locked {
		}
	}
}

func TestRotate(t *testing.T) {
	e := newTestEngine(KindT)
	e.Start()

	res := e.Rotate()
	if !res.Changed || res.State.Piece.Rotation != 1 {
		t.Errorf("Expected rotation 1, got %d", res.State.Piece.Rotation)
	}
	for i := 0; i < 3; i++ {
		e.Rotate()
	}
	if got := e.Snapshot().Piece.Rotation; got != 0 {
		t.Errorf("Expected full cycle back to 0, got %d", got)
	}
}

func TestRotateO(t *testing.T) {
	e := newTestEngine(KindO)
	e.Start()
	before := e.Snapshot()

	res := e.Rotate()
	if res.Changed || res.State != before {
		t.Errorf("Rotating O should be a no-op")
	}
}

func TestRotateBlockedByWall(t *testing.T) {
	e := newTestEngine(KindI)
	e.Start()
	e.Rotate() // vertical, one column wide
	for i := 0; i < 10; i++ {
		e.Move(DirRight)
	}
	before := e.Snapshot()
	if before.Position.X != BoardWidth-1 {
		t.Fatalf("Expected vertical I flush right, got x=%d", before.Position.X)
	}

	res := e.Rotate()
	if res.Changed {
		t.Errorf("Rotation into the wall should be rejected")
	}
	if res.State.Piece != before.Piece || res.State.Position != before.Position {
		t.Errorf("Rejected rotation changed the piece")
	}
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	e := newTestEngine(KindO)
	e.Start()
	// Stop the first piece right at the spawn point.
	e.board[2][4] = Cell{Filled: true}

	res := e.Tick()
	if !res.Locked || !res.GameOver {
		t.Fatalf("Expected lock and game over, got %+v", res)
	}
	s := res.State
	if !s.IsGameOver || s.IsPlaying {
		t.Errorf("Expected game over status, got %s", s.Status)
	}
	if s.HasPiece {
		t.Errorf("Expected no piece after game over")
	}
	if !s.Board[0][4].Filled || !s.Board[1][5].Filled {
		t.Errorf("Final piece should be committed to the board")
	}

	if e.Tick().Changed || e.Move(DirLeft).Changed || e.Rotate().Changed || e.TogglePause().Changed {
		t.Errorf("Commands should be ignored after game over")
	}
}

func TestPause(t *testing.T) {
	e := newTestEngine(KindT)
	e.Start()

	if !e.TogglePause().State.Paused {
		t.Fatalf("Expected paused")
	}
	before := e.Snapshot()
	if e.Tick().Changed || e.Move(DirLeft).Changed || e.Rotate().Changed {
		t.Errorf("Paused engine should ignore commands")
	}
	if e.Snapshot() != before {
		t.Errorf("Paused state changed")
	}

	if e.TogglePause().State.Paused {
		t.Errorf("Expected resumed")
	}
	if !e.Tick().Changed {
		t.Errorf("Resumed engine should accept ticks")
	}
}

func TestPauseIgnoredWhenIdle(t *testing.T) {
	e := New(DefaultRules(), 1)
	if e.TogglePause().Changed || e.Paused() {
		t.Errorf("Pause should be ignored while idle")
	}
}

func TestDropInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 450 * time.Millisecond},
		{5, 300 * time.Millisecond},
		{9, 100 * time.Millisecond},
		{10, 50 * time.Millisecond},
		{11, 50 * time.Millisecond},
		{20, 50 * time.Millisecond},
	}
	e := New(DefaultRules(), 1)
	for _, tt := range tests {
		e.level = tt.level
		if got := e.DropInterval(); got != tt.want {
			t.Errorf("level %d: expected %v, got %v", tt.level, tt.want, got)
		}
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	e := newTestEngine(KindO)
	e.Start()
	snap := e.Snapshot()

	for i := 0; i < 19; i++ {
		e.Tick()
	}
	if snap.Board.FilledCount() != 0 {
		t.Errorf("Snapshot board changed after later commands")
	}
	if e.Snapshot().Board.FilledCount() != 4 {
		t.Errorf("Engine board should have the locked piece")
	}
}

func TestOverlay(t *testing.T) {
	e := newTestEngine(KindO)
	e.Start()
	s := e.Snapshot()

	over := s.Overlay()
	if over.FilledCount() != 4 || !over[0][4].Filled {
		t.Errorf("Overlay should include the falling piece")
	}
	if s.Board.FilledCount() != 0 {
		t.Errorf("Overlay must not modify the snapshot board")
	}
}

func TestDeterminism(t *testing.T) {
	play := func() Snapshot {
		e := New(DefaultRules(), 12345)
		e.Start()
		for i := 0; i < 500; i++ {
			switch i % 5 {
			case 0:
				e.Move(DirLeft)
			case 2:
				e.Rotate()
			case 3:
				e.Move(DirRight)
			}
			e.Tick()
		}
		return e.Snapshot()
	}

	a, b := play(), play()
	if a != b {
		t.Errorf("Same seed produced different games: score %d vs %d, locks %d vs %d",
			a.Score, b.Score, a.Locks, b.Locks)
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		e := New(DefaultRules(), seed)
		e.Start()
		input := rand.New(rand.NewSource(seed * 31))
		prev := e.Snapshot()

		for step := 0; step < 2000 && !prev.IsGameOver; step++ {
			var res Result
			switch input.Intn(5) {
			case 0:
				res = e.Move(DirLeft)
			case 1:
				res = e.Move(DirRight)
			case 2:
				res = e.Rotate()
			default:
				res = e.Tick()
			}
			s := res.State

			if s.IsPlaying == s.IsGameOver {
				t.Fatalf("seed %d: playing and game over both %v", seed, s.IsPlaying)
			}
			if s.Level != s.Lines/10+1 {
				t.Fatalf("seed %d: level %d for %d lines", seed, s.Level, s.Lines)
			}
			if s.Level < prev.Level || s.Score < prev.Score {
				t.Fatalf("seed %d: level or score decreased", seed)
			}
			if res.Lines < 0 || res.Lines > 4 {
				t.Fatalf("seed %d: cleared %d lines at once", seed, res.Lines)
			}
			if res.Locked {
				want := prev.Board.FilledCount() + 4 - res.Lines*BoardWidth
				if got := s.Board.FilledCount(); got > want {
					t.Fatalf("seed %d: filled %d, expected at most %d", seed, got, want)
				}
			} else if s.Board != prev.Board {
				t.Fatalf("seed %d: board changed without a lock", seed)
			}
			if s.HasPiece && !IsValidPosition(s.Board, s.Piece, s.Position) {
				t.Fatalf("seed %d: falling piece overlaps at %v", seed, s.Position)
			}
			prev = s
		}
	}
}
