package chess

// direction is a (file, rank) step.
type direction struct {
	df, dr int
}

var (
	knightSteps = [8]direction{
		{-1, -2}, {1, -2},
		{-2, -1}, {2, -1},
		{-2, 1}, {2, 1},
		{-1, 2}, {1, 2},
	}
	kingSteps = [8]direction{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	bishopDirs = []direction{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	rookDirs   = []direction{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	queenDirs  = append(append([]direction{}, bishopDirs...), rookDirs...)
)

// PseudoMoves returns every pseudo-legal move for c on b: the moves each
// piece's movement rules allow, without regard to whether they leave c's
// own king attacked. Squares are visited in ascending order and each
// square's moves follow the order of PieceMoves.
func PseudoMoves(b Board, c Color) []Move {
	moves := make([]Move, 0, 48)
	for sq := Square(0); sq < numOfSquaresInBoard; sq++ {
		if p := b.cells[sq]; !p.IsEmpty() && p.Color == c {
			moves = appendPieceMoves(moves, b, sq, p)
		}
	}
	return moves
}

// PieceMoves returns the pseudo-legal moves of whatever occupies sq.
// An empty square yields no moves.
func PieceMoves(b Board, sq Square) []Move {
	p := b.Piece(sq)
	if p.IsEmpty() {
		return nil
	}
	return appendPieceMoves(nil, b, sq, p)
}

func appendPieceMoves(moves []Move, b Board, sq Square, p Piece) []Move {
	switch p.Type {
	case Pawn:
		return appendPawnMoves(moves, b, sq, p.Color)
	case Knight:
		return appendStepMoves(moves, b, sq, p.Color, knightSteps[:])
	case Bishop:
		return appendSlidingMoves(moves, b, sq, p.Color, bishopDirs)
	case Rook:
		return appendSlidingMoves(moves, b, sq, p.Color, rookDirs)
	case Queen:
		return appendSlidingMoves(moves, b, sq, p.Color, queenDirs)
	case King:
		// castling is not part of the rules model
		return appendStepMoves(moves, b, sq, p.Color, kingSteps[:])
	}
	return moves
}

// pawnRanks returns the forward rank step, the home rank and the
// promotion rank for pawns of color c.
func pawnRanks(c Color) (forward int, home, promo Rank) {
	if c == Black {
		return -1, Rank7, Rank1
	}
	return 1, Rank2, Rank8
}

func appendPawnMoves(moves []Move, b Board, sq Square, c Color) []Move {
	forward, home, _ := pawnRanks(c)

	if to, ok := sq.offset(0, forward); ok && b.cells[to].IsEmpty() {
		moves = appendPawnMove(moves, sq, to, c)
		// the double push is only reached once the single push square
		// was found empty
		if sq.Rank() == home {
			if to2, ok := sq.offset(0, 2*forward); ok && b.cells[to2].IsEmpty() {
				moves = append(moves, Move{s1: sq, s2: to2})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := sq.offset(df, forward)
		if !ok {
			continue
		}
		if target := b.cells[to]; !target.IsEmpty() && target.Color != c {
			moves = appendPawnMove(moves, sq, to, c)
		}
	}
	// en passant is not part of the rules model
	return moves
}

// appendPawnMove appends the move from s1 to s2, expanded into the four
// promotion variants when s2 is on the promotion rank.
func appendPawnMove(moves []Move, s1, s2 Square, c Color) []Move {
	if _, _, promo := pawnRanks(c); s2.Rank() != promo {
		return append(moves, Move{s1: s1, s2: s2})
	}
	for _, t := range promoTypes {
		moves = append(moves, Move{s1: s1, s2: s2, promo: t})
	}
	return moves
}

func appendStepMoves(moves []Move, b Board, sq Square, c Color, steps []direction) []Move {
	for _, d := range steps {
		to, ok := sq.offset(d.df, d.dr)
		if !ok {
			continue
		}
		if target := b.cells[to]; target.IsEmpty() || target.Color != c {
			moves = append(moves, Move{s1: sq, s2: to})
		}
	}
	return moves
}

func appendSlidingMoves(moves []Move, b Board, sq Square, c Color, dirs []direction) []Move {
	for _, d := range dirs {
		for to, ok := sq.offset(d.df, d.dr); ok; to, ok = to.offset(d.df, d.dr) {
			target := b.cells[to]
			if target.IsEmpty() {
				moves = append(moves, Move{s1: sq, s2: to})
				continue
			}
			if target.Color != c {
				moves = append(moves, Move{s1: sq, s2: to})
			}
			break
		}
	}
	return moves
}
