package chess

// InCheck reports whether c's king is attacked on b, that is whether any
// pseudo-legal move of the opponent lands on the king's square. A board
// without a king of color c is never in check.
//
// Attacks are taken from pseudo-legal moves on purpose: legality is
// defined in terms of check, so check cannot depend on legality.
func InCheck(b Board, c Color) bool {
	kingSq, ok := b.kingSquare(c)
	if !ok {
		return false
	}
	for _, m := range PseudoMoves(b, c.Other()) {
		if m.s2 == kingSq {
			return true
		}
	}
	return false
}
