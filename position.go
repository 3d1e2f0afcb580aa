package chess

// Position represents the state of the game without regard to its outcome:
// the board, the side to move, the half move clock and the full move number.
//
// A Position is mutated in place by Apply. Copy returns an independent
// duplicate that can be mutated without affecting the original.
type Position struct {
	board         Board
	turn          Color
	halfMoveClock int
	moveCount     int
}

// StartingPosition returns the starting position with White to move.
func StartingPosition() *Position {
	return &Position{
		board:     startingBoard(),
		turn:      White,
		moveCount: 1,
	}
}

// NewPosition returns a position from its parts. A moveCount below 1 is
// treated as 1.
func NewPosition(b Board, turn Color, halfMoveClock, moveCount int) *Position {
	if moveCount < 1 {
		moveCount = 1
	}
	return &Position{
		board:         b,
		turn:          turn,
		halfMoveClock: halfMoveClock,
		moveCount:     moveCount,
	}
}

// Board returns a copy of the position's board.
func (pos *Position) Board() Board {
	return pos.board
}

// Turn returns the color to move next.
func (pos *Position) Turn() Color {
	return pos.turn
}

// HalfMoveClock returns the number of plies since the last pawn move,
// capture or promotion.
func (pos *Position) HalfMoveClock() int {
	return pos.halfMoveClock
}

// MoveCount returns the full move number. It starts at 1 and is
// incremented after Black's move.
func (pos *Position) MoveCount() int {
	return pos.moveCount
}

// InCheck reports whether the side to move is in check.
func (pos *Position) InCheck() bool {
	return InCheck(pos.board, pos.turn)
}

// ValidMoves returns the legal moves of the side to move.
func (pos *Position) ValidMoves() []Move {
	return LegalMoves(pos)
}

// Status returns Checkmate or Stalemate when the side to move has no
// legal moves, and NoMethod otherwise.
func (pos *Position) Status() Method {
	if len(pos.ValidMoves()) > 0 {
		return NoMethod
	}
	if pos.InCheck() {
		return Checkmate
	}
	return Stalemate
}

// Draw returns the text rendering of the position's board.
func (pos *Position) Draw() string {
	return pos.board.Draw()
}

// Copy returns a deep, independent copy of the position.
func (pos *Position) Copy() *Position {
	cp := *pos
	return &cp
}

// passTurn hands the move to the other side, advancing the full move
// number after Black's move.
func (pos *Position) passTurn() {
	if pos.turn == Black {
		pos.moveCount++
	}
	pos.turn = pos.turn.Other()
}
