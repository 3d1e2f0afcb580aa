package chess

import "strings"

// A Board holds the piece placement: 64 cells indexed rank*8 + file,
// rank 0 being White's back rank. Board is a value type; assigning it
// copies every cell, so copies never alias each other.
//
// No invariant is enforced on the number of kings. Callers supplying
// boards are expected to keep them well formed.
type Board struct {
	cells [numOfSquaresInBoard]Piece
}

// NewBoard returns a board populated from the given square to piece map.
func NewBoard(m map[Square]Piece) Board {
	var b Board
	for sq, p := range m {
		b.SetPiece(sq, p)
	}
	return b
}

// Piece returns the piece on sq, or NoPiece for an empty or invalid square.
func (b Board) Piece(sq Square) Piece {
	if sq < 0 || sq >= numOfSquaresInBoard {
		return NoPiece
	}
	return b.cells[sq]
}

// SetPiece places p on sq, replacing whatever was there. Setting NoPiece
// clears the square.
func (b *Board) SetPiece(sq Square, p Piece) {
	if sq < 0 || sq >= numOfSquaresInBoard {
		return
	}
	b.cells[sq] = p
}

// SquareMap returns a mapping of occupied squares to their pieces.
func (b Board) SquareMap() map[Square]Piece {
	m := map[Square]Piece{}
	for sq, p := range b.cells {
		if !p.IsEmpty() {
			m[Square(sq)] = p
		}
	}
	return m
}

// kingSquare returns the first square holding c's king.
func (b Board) kingSquare(c Color) (Square, bool) {
	king := Piece{Type: King, Color: c}
	for sq, p := range b.cells {
		if p == king {
			return Square(sq), true
		}
	}
	return NoSquare, false
}

// Draw returns a visual representation of the board, far rank first.
// Each square is one character followed by a space; uppercase pieces
// are White, lowercase are Black and '.' is an empty square.
//
// Example:
//
//	r n b q k b n r
//	p p p p p p p p
//	. . . . . . . .
//	. . . . . . . .
//	. . . . . . . .
//	. . . . . . . .
//	P P P P P P P P
//	R N B Q K B N R
func (b Board) Draw() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < numOfSquaresInRow; f++ {
			sb.WriteString(b.cells[r*numOfSquaresInRow+f].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// startingBoard is the standard initial placement.
func startingBoard() Board {
	var b Board
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f, t := range back {
		b.cells[f] = Piece{Type: t, Color: White}
		b.cells[8+f] = Piece{Type: Pawn, Color: White}
		b.cells[48+f] = Piece{Type: Pawn, Color: Black}
		b.cells[56+f] = Piece{Type: t, Color: Black}
	}
	return b
}
