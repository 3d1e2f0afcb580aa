package chess

// Perft counts the leaf nodes of the legal move tree of the given depth.
// pos is left untouched.
func Perft(pos *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(child(pos, m), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move.
func PerftDivide(pos *Position, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range LegalMoves(pos) {
		div[m] = Perft(child(pos, m), depth-1)
	}
	return div
}

// child returns a copy of pos with m applied and the turn passed.
func child(pos *Position, m Move) *Position {
	next := pos.Copy()
	next.Apply(m)
	next.passTurn()
	return next
}
