package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Board dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// SpawnPosition is where every new piece appears.
var SpawnPosition = Position{X: 4, Y: 0}

// Position is an integer offset from the board's top-left corner.
// Y grows downward.
type Position struct {
	X, Y int
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Cell is one board square.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Board is the playfield, indexed [row][column].
// It is a value type: assigning or passing a Board copies it, so every
// transition works on its own grid.
type Board [BoardHeight][BoardWidth]Cell

// IsValidPosition reports whether the piece fits on the board at pos.
// Cells above the board (y < 0) are allowed; they only collide with walls.
func IsValidPosition(board Board, piece Piece, pos Position) bool {
	for dy, row := range piece.Shape() {
		for dx, filled := range row {
			if !filled {
				continue
			}
			x := pos.X + dx
			y := pos.Y + dy
			if x < 0 || x >= BoardWidth || y >= BoardHeight {
				return false
			}
			if y >= 0 && board[y][x].Filled {
				return false
			}
		}
	}
	return true
}

// PlacePiece returns a copy of the board with the piece fused in at pos.
// Cells above the top edge are dropped.
func PlacePiece(board Board, piece Piece, pos Position) Board {
	color := piece.Color()
	for _, c := range piece.Cells() {
		x := pos.X + c.X
		y := pos.Y + c.Y
		if y < 0 || y >= BoardHeight || x < 0 || x >= BoardWidth {
			continue
		}
		board[y][x] = Cell{Filled: true, Color: color}
	}
	return board
}

// rowFull reports whether every cell of the row is filled.
func rowFull(row [BoardWidth]Cell) bool {
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}

// ClearLines removes full rows, shifts the rows above down and refills the
// top with empty rows. Returns the new board and the number of rows removed.
func ClearLines(board Board) (Board, int) {
	var result Board
	write := BoardHeight - 1
	cleared := 0

	for y := BoardHeight - 1; y >= 0; y-- {
		if rowFull(board[y]) {
			cleared++
			continue
		}
		result[write] = board[y]
		write--
	}

	return result, cleared
}

// FilledCount returns the number of filled cells.
func (b Board) FilledCount() int {
	n := 0
	for y := range BoardHeight {
		for x := range BoardWidth {
			if b[y][x].Filled {
				n++
			}
		}
	}
	return n
}
