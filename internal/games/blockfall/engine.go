// Package blockfall implements the falling-block game engine: a 10x20 board,
// one falling piece, line clears, scoring and level-based fall speed.
//
// The engine is driven entirely by its commands (Start, Reset, Move, Rotate,
// Tick, TogglePause). It owns no timer; the host asks DropInterval for the
// current cadence and calls Tick on schedule.
package blockfall

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
)

// Status is the engine's lifecycle state.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
)

// Direction is a translation the player can request.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// delta returns the board offset for the direction.
func (d Direction) delta() Position {
	switch d {
	case DirLeft:
		return Position{X: -1}
	case DirRight:
		return Position{X: 1}
	case DirDown:
		return Position{Y: 1}
	default:
		return Position{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Rules holds the tunable constants of a game.
type Rules struct {
	LinePoints    int
	LinesPerLevel int
	Timing        config.TimingConfig
}

// DefaultRules returns the classic rules: 100 points per line times level,
// a level every 10 lines, 500ms falling 50ms faster per level down to 50ms.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultBlockfallConfig())
}

// RulesFromConfig builds rules from a loaded configuration.
func RulesFromConfig(cfg config.BlockfallConfig) Rules {
	return Rules{
		LinePoints:    cfg.Scoring.LinePoints,
		LinesPerLevel: cfg.Scoring.LinesPerLevel,
		Timing:        cfg.Timing,
	}
}

// Result describes what a single command did.
type Result struct {
	Changed  bool // Position, rotation, board or status changed
	Locked   bool // The piece was fused into the board
	Lines    int  // Rows cleared by the lock
	Points   int  // Score gained by the lock
	GameOver bool // The game ended during this command
	State    Snapshot
}

// Engine is the falling-block state machine.
// It is not safe for concurrent use; the host serializes commands.
type Engine struct {
	rules Rules
	rng   *rand.Rand
	next  func() Kind // piece source, uniform over Kinds by default

	status   Status
	paused   bool
	board    Board
	piece    Piece
	hasPiece bool
	pos      Position

	score int
	lines int
	level int
	locks int
}

// New creates an idle engine. The seed fixes the piece sequence.
func New(rules Rules, seed int64) *Engine {
	e := &Engine{
		rules:  rules,
		rng:    rand.New(rand.NewSource(seed)),
		status: StatusIdle,
		pos:    SpawnPosition,
		level:  1,
	}
	e.next = e.randomKind
	return e
}

// NewWithSequence creates an idle engine that deals the given kinds in
// order, starting over when the list runs out. An empty list falls back to
// a zero-seeded random source.
func NewWithSequence(rules Rules, kinds ...Kind) *Engine {
	e := New(rules, 0)
	if len(kinds) == 0 {
		return e
	}
	seq := slices.Clone(kinds)
	i := 0
	e.next = func() Kind {
		k := seq[i%len(seq)]
		i++
		return k
	}
	return e
}

// randomKind picks a kind uniformly at random.
func (e *Engine) randomKind() Kind {
	return Kinds[e.rng.Intn(KindCount)]
}

// Start begins a new game from Idle or GameOver.
// It is a no-op while a game is already playing.
func (e *Engine) Start() Result {
	if e.status == StatusPlaying {
		return e.result(false)
	}

	e.board = Board{}
	e.score = 0
	e.lines = 0
	e.level = 1
	e.locks = 0
	e.paused = false
	e.status = StatusPlaying

	// An empty board always has room for a spawn.
	e.spawn()
	return e.result(true)
}

// Reset returns to Idle from any state, clearing the board and piece.
// Score, lines and level keep their last values until the next Start.
func (e *Engine) Reset() Result {
	e.status = StatusIdle
	e.paused = false
	e.board = Board{}
	e.piece = Piece{}
	e.hasPiece = false
	e.pos = SpawnPosition
	return e.result(true)
}

// TogglePause freezes or resumes a playing game.
func (e *Engine) TogglePause() Result {
	if e.status != StatusPlaying {
		return e.result(false)
	}
	e.paused = !e.paused
	return e.result(true)
}

// Tick advances the falling piece by one row. Same as Move(DirDown).
func (e *Engine) Tick() Result {
	return e.Move(DirDown)
}

// Move translates the falling piece. A blocked downward move locks the
// piece; blocked sideways moves are ignored.
func (e *Engine) Move(dir Direction) Result {
	if !e.active() {
		return e.result(false)
	}

	target := e.pos.Add(dir.delta())
	if IsValidPosition(e.board, e.piece, target) {
		e.pos = target
		return e.result(true)
	}

	if dir != DirDown {
		return e.result(false)
	}
	return e.lock()
}

// Rotate advances the piece to its next rotation state if it fits in place.
// There are no wall kicks.
func (e *Engine) Rotate() Result {
	if !e.active() {
		return e.result(false)
	}

	rotated := e.piece.Rotated()
	if rotated == e.piece || !IsValidPosition(e.board, rotated, e.pos) {
		return e.result(false)
	}
	e.piece = rotated
	return e.result(true)
}

// DropInterval returns how long the host should wait between ticks at the
// current level.
func (e *Engine) DropInterval() time.Duration {
	return e.rules.Timing.Interval(e.level)
}

// Status returns the lifecycle state.
func (e *Engine) Status() Status {
	return e.status
}

// Paused reports whether a playing game is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// active reports whether commands may change the piece.
func (e *Engine) active() bool {
	return e.status == StatusPlaying && !e.paused && e.hasPiece
}

// lock fuses the piece, clears lines, scores and spawns the next piece.
func (e *Engine) lock() Result {
	board := PlacePiece(e.board, e.piece, e.pos)
	board, cleared := ClearLines(board)

	points := cleared * e.rules.LinePoints * e.level
	e.board = board
	e.score += points
	e.lines += cleared
	e.level = e.lines/e.rules.LinesPerLevel + 1
	e.locks++

	res := Result{Changed: true, Locked: true, Lines: cleared, Points: points}
	// The final lock counts: its cells, cleared rows and points stay in the
	// game-over state and in the saved score.
	if !e.spawn() {
		e.status = StatusGameOver
		e.hasPiece = false
		res.GameOver = true
	}
	res.State = e.Snapshot()
	return res
}

// spawn places a new random piece at the spawn position.
// Returns false when the spawn position is blocked.
func (e *Engine) spawn() bool {
	piece := NewPiece(e.next())
	if !IsValidPosition(e.board, piece, SpawnPosition) {
		return false
	}
	e.piece = piece
	e.hasPiece = true
	e.pos = SpawnPosition
	return true
}

func (e *Engine) result(changed bool) Result {
	return Result{Changed: changed, State: e.Snapshot()}
}
