package chess

// LegalMoves returns the pseudo-legal moves of the side to move that do
// not leave its own king attacked. Each candidate is applied to a copy of
// pos and the copy is checked with InCheck; pos itself is never modified.
// The result keeps the order of PseudoMoves.
func LegalMoves(pos *Position) []Move {
	pseudo := PseudoMoves(pos.board, pos.turn)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if isLegal(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal reports whether m, applied to a copy of pos, leaves the mover's
// king unattacked.
func isLegal(pos *Position, m Move) bool {
	trial := pos.Copy()
	trial.Apply(m)
	return !InCheck(trial.board, pos.turn)
}
