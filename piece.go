package chess

import "strings"

// Color represents the color of a chess piece.
type Color int8

const (
	// NoColor represents no color.
	NoColor Color = iota
	// White represents the color white.
	White
	// Black represents the color black.
	Black
)

// Other returns the opposite color of the receiver.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// String implements the fmt.Stringer interface and returns
// the color's FEN compatible notation.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// Name returns a display friendly name.
func (c Color) Name() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "No Color"
}

// PieceType is the type of a piece.
type PieceType int8

const (
	// NoPieceType represents a lack of piece type.
	NoPieceType PieceType = iota
	// King represents a king.
	King
	// Queen represents a queen.
	Queen
	// Rook represents a rook.
	Rook
	// Bishop represents a bishop.
	Bishop
	// Knight represents a knight.
	Knight
	// Pawn represents a pawn.
	Pawn
)

// promoTypes is the order promotion variants are emitted in.
var promoTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func (p PieceType) String() string {
	switch p {
	case King:
		return "k"
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	}
	return ""
}

// Piece is a piece type with a color. The zero value is NoPiece and
// marks an empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece is the value held by an empty square.
var NoPiece = Piece{}

// NewPiece returns the piece matching the PieceType and Color.
func NewPiece(t PieceType, c Color) Piece {
	return Piece{Type: t, Color: c}
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// String returns the single character board symbol for the piece:
// uppercase for White, lowercase for Black and "." for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	s := p.Type.String()
	if p.Color == White {
		return strings.ToUpper(s)
	}
	return s
}

var pieceUnicodes = map[Piece]string{
	{King, White}:   "♔",
	{Queen, White}:  "♕",
	{Rook, White}:   "♖",
	{Bishop, White}: "♗",
	{Knight, White}: "♘",
	{Pawn, White}:   "♙",
	{King, Black}:   "♚",
	{Queen, Black}:  "♛",
	{Rook, Black}:   "♜",
	{Bishop, Black}: "♝",
	{Knight, Black}: "♞",
	{Pawn, Black}:   "♟",
}

// Unicode returns the figurine for the piece, or "" for NoPiece.
func (p Piece) Unicode() string {
	return pieceUnicodes[p]
}
