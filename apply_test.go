package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyHalfMoveClock(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move Move
		want int
	}{
		{
			name: "quiet piece move increments",
			fen:  "4k3/8/8/8/8/8/8/4K1N1 w - - 5 10",
			move: NewMove(G1, F3, NoPieceType),
			want: 6,
		},
		{
			name: "pawn move resets",
			fen:  "4k3/8/8/8/8/8/4P3/4K3 w - - 5 10",
			move: NewMove(E2, E4, NoPieceType),
			want: 0,
		},
		{
			name: "capture resets",
			fen:  "4k3/8/8/8/8/8/8/r2R2K1 w - - 5 10",
			move: NewMove(D1, A1, NoPieceType),
			want: 0,
		},
		{
			name: "promotion resets",
			fen:  "4k3/P7/8/8/8/8/8/4K3 w - - 5 10",
			move: NewMove(A7, A8, Queen),
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			pos.Apply(tt.move)
			assert.Equal(t, tt.want, pos.HalfMoveClock())
		})
	}
}

func TestApplyMovesPiece(t *testing.T) {
	pos := StartingPosition()
	pos.Apply(NewMove(G1, F3, NoPieceType))

	b := pos.Board()
	assert.Equal(t, NoPiece, b.Piece(G1))
	assert.Equal(t, NewPiece(Knight, White), b.Piece(F3))
	// the driver owns turn passing
	assert.Equal(t, White, pos.Turn())
	assert.Equal(t, 1, pos.MoveCount())
}

func TestApplyCaptureOverwrites(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/r2R2K1 w - - 0 1")
	pos.Apply(NewMove(D1, A1, NoPieceType))

	b := pos.Board()
	assert.Equal(t, NewPiece(Rook, White), b.Piece(A1))
	assert.True(t, b.Piece(D1).IsEmpty())
}

func TestApplyPromotion(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/1p6/4K3 b - - 0 1")
	pos.Apply(NewMove(B2, B1, Knight))

	b := pos.Board()
	assert.Equal(t, NewPiece(Knight, Black), b.Piece(B1))
	assert.True(t, b.Piece(B2).IsEmpty())
}

func TestApplyEmptySourcePanics(t *testing.T) {
	pos := StartingPosition()
	require.PanicsWithValue(t, "chess: no piece at source square e4", func() {
		pos.Apply(NewMove(E4, E5, NoPieceType))
	})
}

func TestCopyIsIndependent(t *testing.T) {
	pos := StartingPosition()
	cp := pos.Copy()
	cp.Apply(NewMove(E2, E4, NoPieceType))
	cp.passTurn()

	assert.Equal(t, NewPiece(Pawn, White), pos.Board().Piece(E2))
	assert.True(t, pos.Board().Piece(E4).IsEmpty())
	assert.Equal(t, White, pos.Turn())
	assert.Equal(t, Black, cp.Turn())
}

func TestPassTurn(t *testing.T) {
	pos := StartingPosition()
	pos.passTurn()
	assert.Equal(t, Black, pos.Turn())
	assert.Equal(t, 1, pos.MoveCount())
	pos.passTurn()
	assert.Equal(t, White, pos.Turn())
	assert.Equal(t, 2, pos.MoveCount())
}
