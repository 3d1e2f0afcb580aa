package chess

// A Move is the movement of a piece from one square to another. Promo is
// set only for pawn moves onto the far rank. A Move carries no capture,
// castling or en passant metadata; it is a pure value.
type Move struct {
	s1    Square
	s2    Square
	promo PieceType
}

// NewMove returns a move from s1 to s2 with an optional promotion type.
func NewMove(s1, s2 Square, promo PieceType) Move {
	return Move{s1: s1, s2: s2, promo: promo}
}

// S1 returns the origin square of the move.
func (m Move) S1() Square {
	return m.s1
}

// S2 returns the destination square of the move.
func (m Move) S2() Square {
	return m.s2
}

// Promo returns the promotion piece type of the move.
func (m Move) Promo() PieceType {
	return m.promo
}

// String returns the squares of the move followed by the promotion
// letter if any, e.g. "e2e4" or "e7e8q". It is meant for diagnostics.
func (m Move) String() string {
	return m.s1.String() + m.s2.String() + m.promo.String()
}
