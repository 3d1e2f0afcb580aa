package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPosition(t testing.TB, fen string) *Position {
	t.Helper()
	pos, err := DecodeFEN(fen)
	require.NoError(t, err)
	return pos
}

func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func TestInitialNumOfPseudoMoves(t *testing.T) {
	pos := StartingPosition()
	assert.Len(t, PseudoMoves(pos.Board(), White), 20)
	assert.Len(t, PseudoMoves(pos.Board(), Black), 20)
}

func TestPseudoMovesOrder(t *testing.T) {
	moves := moveStrings(PseudoMoves(StartingPosition().Board(), White))
	require.Len(t, moves, 20)
	assert.Equal(t, []string{"b1a3", "b1c3", "g1f3", "g1h3", "a2a3", "a2a4"}, moves[:6])
	assert.Equal(t, []string{"h2h3", "h2h4"}, moves[18:])
}

func TestEmptyBoardHasNoMoves(t *testing.T) {
	var b Board
	for sq := A1; sq <= H8; sq++ {
		assert.Empty(t, PieceMoves(b, sq), "square %s", sq)
	}
	assert.Empty(t, PseudoMoves(b, White))
	assert.Empty(t, PseudoMoves(b, Black))
}

func TestPieceMovesEmptySquare(t *testing.T) {
	assert.Empty(t, PieceMoves(StartingPosition().Board(), E4))
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		sq   Square
		want []string
	}{
		{
			name: "white pawn on home rank pushes one or two",
			fen:  "8/8/8/8/8/8/4P3/8 w - - 0 1",
			sq:   E2,
			want: []string{"e2e3", "e2e4"},
		},
		{
			name: "black pawn on home rank pushes toward rank 1",
			fen:  "8/4p3/8/8/8/8/8/8 b - - 0 1",
			sq:   E7,
			want: []string{"e7e6", "e7e5"},
		},
		{
			name: "blocked pawn has no push",
			fen:  "8/8/8/8/8/4n3/4P3/8 w - - 0 1",
			sq:   E2,
			want: []string{},
		},
		{
			name: "double push needs an empty destination",
			fen:  "8/8/8/8/4n3/8/4P3/8 w - - 0 1",
			sq:   E2,
			want: []string{"e2e3"},
		},
		{
			name: "no double push off the home rank",
			fen:  "8/8/8/8/8/4P3/8/8 w - - 0 1",
			sq:   E3,
			want: []string{"e3e4"},
		},
		{
			name: "captures diagonally only on opponent pieces",
			fen:  "8/8/8/3n1N2/4P3/8/8/8 w - - 0 1",
			sq:   E4,
			want: []string{"e4e5", "e4d5"},
		},
		{
			name: "edge file pawn captures on one side",
			fen:  "8/8/8/1p6/P7/8/8/8 w - - 0 1",
			sq:   A4,
			want: []string{"a4a5", "a4b5"},
		},
		{
			name: "pawn on the far rank has no moves",
			fen:  "4P3/8/8/8/8/8/8/8 w - - 0 1",
			sq:   E8,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			got := moveStrings(PieceMoves(pos.Board(), tt.sq))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPawnPromotionVariants(t *testing.T) {
	pos := mustPosition(t, "8/P7/8/8/8/8/1p6/8 w - - 0 1")

	white := PieceMoves(pos.Board(), A7)
	require.Len(t, white, 4)
	for i, want := range []PieceType{Queen, Rook, Bishop, Knight} {
		assert.Equal(t, A7, white[i].S1())
		assert.Equal(t, A8, white[i].S2())
		assert.Equal(t, want, white[i].Promo())
	}

	black := PieceMoves(pos.Board(), B2)
	assert.Equal(t, []string{"b2b1q", "b2b1r", "b2b1b", "b2b1n"}, moveStrings(black))
}

func TestPawnCapturePromotion(t *testing.T) {
	pos := mustPosition(t, "6nr/6P1/8/8/8/8/8/8 w - - 0 1")
	got := moveStrings(PieceMoves(pos.Board(), G7))
	assert.Equal(t, []string{"g7h8q", "g7h8r", "g7h8b", "g7h8n"}, got)
}

func TestKnightMoves(t *testing.T) {
	pos := mustPosition(t, "8/8/8/8/8/8/2P5/N7 w - - 0 1")
	assert.Equal(t, []string{"a1b3"}, moveStrings(PieceMoves(pos.Board(), A1)))

	pos = mustPosition(t, "8/8/8/8/3N4/8/8/8 w - - 0 1")
	assert.Len(t, PieceMoves(pos.Board(), D4), 8)
}

func TestKingMoves(t *testing.T) {
	pos := mustPosition(t, "8/8/8/8/8/8/3p4/4K3 w - - 0 1")
	got := moveStrings(PieceMoves(pos.Board(), E1))
	assert.Equal(t, []string{"e1d1", "e1f1", "e1d2", "e1e2", "e1f2"}, got)
}

func TestKingHasNoCastlingMoves(t *testing.T) {
	pos := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	for _, m := range PieceMoves(pos.Board(), E1) {
		assert.NotEqual(t, G1, m.S2())
		assert.NotEqual(t, C1, m.S2())
	}
}

func TestSlidingMovesStopAtOwnPiece(t *testing.T) {
	pos := mustPosition(t, "8/8/8/8/8/P7/8/R7 w - - 0 1")
	got := moveStrings(PieceMoves(pos.Board(), A1))
	assert.Equal(t, []string{"a1a2", "a1b1", "a1c1", "a1d1", "a1e1", "a1f1", "a1g1", "a1h1"}, got)
}

func TestSlidingMovesCaptureAndStop(t *testing.T) {
	pos := mustPosition(t, "8/8/8/8/8/p7/8/R7 w - - 0 1")
	got := moveStrings(PieceMoves(pos.Board(), A1))
	assert.Contains(t, got, "a1a3")
	assert.NotContains(t, got, "a1a4")
	assert.Len(t, got, 9)
}

func TestBishopAndQueenMoves(t *testing.T) {
	pos := mustPosition(t, "8/8/8/8/3B4/8/8/8 w - - 0 1")
	assert.Len(t, PieceMoves(pos.Board(), D4), 13)

	pos = mustPosition(t, "8/8/8/8/3Q4/8/8/8 w - - 0 1")
	assert.Len(t, PieceMoves(pos.Board(), D4), 27)
}

func TestNeverMovesOntoOwnPiece(t *testing.T) {
	b := StartingPosition().Board()
	for _, c := range []Color{White, Black} {
		for _, m := range PseudoMoves(b, c) {
			target := b.Piece(m.S2())
			assert.False(t, !target.IsEmpty() && target.Color == c, "move %s lands on own piece", m)
		}
	}
}

func BenchmarkPseudoMoves(b *testing.B) {
	board := StartingPosition().Board()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		PseudoMoves(board, White)
	}
}
