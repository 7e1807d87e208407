package blockfall

import "time"

// Snapshot is an immutable copy of the engine state for rendering and tests.
// Board is an array value, so later engine commands never alter it.
type Snapshot struct {
	Status     Status
	IsPlaying  bool
	IsGameOver bool
	Paused     bool

	Board    Board
	Piece    Piece
	HasPiece bool
	Position Position

	Score int
	Lines int
	Level int
	Locks int // Pieces locked this game

	DropInterval time.Duration
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Status:       e.status,
		IsPlaying:    e.status == StatusPlaying,
		IsGameOver:   e.status == StatusGameOver,
		Paused:       e.paused,
		Board:        e.board,
		Piece:        e.piece,
		HasPiece:     e.hasPiece,
		Position:     e.pos,
		Score:        e.score,
		Lines:        e.lines,
		Level:        e.level,
		Locks:        e.locks,
		DropInterval: e.DropInterval(),
	}
}

// Overlay returns the board with the falling piece drawn in.
func (s Snapshot) Overlay() Board {
	if !s.HasPiece {
		return s.Board
	}
	return PlacePiece(s.Board, s.Piece, s.Position)
}
