package chess

// A Square is one of the 64 cells of the board, indexed rank*8 + file.
type Square int8

// NoSquare represents an invalid square.
const NoSquare Square = -1

const numOfSquaresInBoard = 64

const numOfSquaresInRow = 8

// NewSquare creates a new Square from a File and a Rank.
func NewSquare(f File, r Rank) Square {
	return Square(int(r)*numOfSquaresInRow + int(f))
}

// File returns the square's file.
func (sq Square) File() File {
	return File(int(sq) % numOfSquaresInRow)
}

// Rank returns the square's rank.
func (sq Square) Rank() Rank {
	return Rank(int(sq) / numOfSquaresInRow)
}

// String returns the square's name, e.g. "e4".
func (sq Square) String() string {
	if sq < 0 || sq >= numOfSquaresInBoard {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// offset returns the square df files and dr ranks away from sq,
// or false when that leaves the board.
func (sq Square) offset(df, dr int) (Square, bool) {
	f := int(sq.File()) + df
	r := int(sq.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return Square(r*numOfSquaresInRow + f), true
}

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// A Rank is the rank of a square.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func (r Rank) String() string {
	return string(rune('1' + r))
}

// A File is the file of a square.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func (f File) String() string {
	return string(rune('a' + f))
}

// parseSquare converts a square name (e.g., "e4") into a Square.
func parseSquare(s string) Square {
	const squareLen = 2
	if len(s) != squareLen {
		return NoSquare
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}

	return Square(rank*8 + file)
}
