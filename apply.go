package chess

import "fmt"

// Apply plays m on pos in place. The piece on m.S1() moves to m.S2(),
// replacing any piece there, and is promoted when m.Promo() is set. The
// half move clock is reset by a pawn move, a capture or a promotion and
// incremented otherwise.
//
// Apply does not pass the turn or advance the full move number; that is
// left to the caller (see Game). Castling and en passant side effects are
// not part of the rules model.
//
// Apply panics if m.S1() is empty. Moves produced by PseudoMoves or
// LegalMoves for the same position never trigger it.
func (pos *Position) Apply(m Move) {
	p := pos.board.Piece(m.s1)
	if p.IsEmpty() {
		panic(fmt.Sprintf("chess: no piece at source square %s", m.s1))
	}

	reset := p.Type == Pawn || !pos.board.Piece(m.s2).IsEmpty()
	if m.promo != NoPieceType {
		p.Type = m.promo
		reset = true
	}

	pos.board.SetPiece(m.s2, p)
	pos.board.SetPiece(m.s1, NoPiece)

	if reset {
		pos.halfMoveClock = 0
	} else {
		pos.halfMoveClock++
	}
}
