package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of piece kinds.
const KindCount = 7

// Kinds lists every piece kind in spawn-table order.
var Kinds = [KindCount]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// Shape is one rotation state: rows of occupied flags.
type Shape [][]bool

// shape builds a Shape from rows of '1' and '0'.
func shape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '1'
		}
	}
	return s
}

// rotations holds the fixed rotation cycle of every kind.
// Cycles are 1 (O), 2 (I, S, Z) or 4 (T, J, L) states long.
var rotations = [KindCount][]Shape{
	KindI: {
		shape("1111"),
		shape("1", "1", "1", "1"),
	},
	KindO: {
		shape("11", "11"),
	},
	KindT: {
		shape("010", "111"),
		shape("10", "11", "10"),
		shape("111", "010"),
		shape("01", "11", "01"),
	},
	KindS: {
		shape("011", "110"),
		shape("10", "11", "01"),
	},
	KindZ: {
		shape("110", "011"),
		shape("01", "11", "10"),
	},
	KindJ: {
		shape("100", "111"),
		shape("11", "10", "10"),
		shape("111", "001"),
		shape("01", "01", "11"),
	},
	KindL: {
		shape("001", "111"),
		shape("10", "10", "11"),
		shape("111", "100"),
		shape("11", "01", "01"),
	},
}

var kindColors = [KindCount]core.Color{
	KindI: core.ColorCyan,
	KindO: core.ColorYellow,
	KindT: core.ColorMagenta,
	KindS: core.ColorGreen,
	KindZ: core.ColorRed,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
}

// String returns the one-letter name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return string("IOTSZJL"[k])
}

// Color returns the fixed color tag of the kind.
func (k Kind) Color() core.Color {
	return kindColors[k]
}

// RotationCount returns the length of the kind's rotation cycle.
func (k Kind) RotationCount() int {
	return len(rotations[k])
}

// Piece is a falling piece: an immutable kind plus a rotation index.
type Piece struct {
	Kind     Kind
	Rotation int
}

// NewPiece returns a piece of the given kind in its spawn rotation.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k}
}

// Shape returns the occupancy matrix for the current rotation.
func (p Piece) Shape() Shape {
	return rotations[p.Kind][p.Rotation]
}

// Color returns the piece's color tag.
func (p Piece) Color() core.Color {
	return p.Kind.Color()
}

// Rotated returns the piece advanced to the next state of its rotation cycle.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % p.Kind.RotationCount()
	return p
}

// Cells returns the offsets of the occupied cells relative to the piece origin.
func (p Piece) Cells() []Position {
	var cells []Position
	for dy, row := range p.Shape() {
		for dx, filled := range row {
			if filled {
				cells = append(cells, Position{X: dx, Y: dy})
			}
		}
	}
	return cells
}
