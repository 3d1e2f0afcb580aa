package chess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFEN is returned (wrapped) when a FEN string can't be decoded.
var ErrInvalidFEN = errors.New("chess: invalid FEN")

var fenPieces = map[byte]Piece{
	'K': {King, White}, 'Q': {Queen, White}, 'R': {Rook, White},
	'B': {Bishop, White}, 'N': {Knight, White}, 'P': {Pawn, White},
	'k': {King, Black}, 'q': {Queen, Black}, 'r': {Rook, Black},
	'b': {Bishop, Black}, 'n': {Knight, Black}, 'p': {Pawn, Black},
}

// DecodeFEN parses a FEN string into a Position. The castling and en
// passant fields must be well formed but are otherwise ignored, since the
// rules model tracks neither. The move clocks may be omitted.
func DecodeFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) != 4 && len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 4 or 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	b, err := decodeFENBoard(fields[0])
	if err != nil {
		return nil, err
	}

	var turn Color
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return nil, fmt.Errorf("%w: invalid turn %q", ErrInvalidFEN, fields[1])
	}

	if strings.Trim(fields[2], "KQkq") != "" && fields[2] != "-" {
		return nil, fmt.Errorf("%w: invalid castling rights %q", ErrInvalidFEN, fields[2])
	}
	if fields[3] != "-" && parseSquare(fields[3]) == NoSquare {
		return nil, fmt.Errorf("%w: invalid en passant square %q", ErrInvalidFEN, fields[3])
	}

	halfMoveClock, moveCount := 0, 1
	if len(fields) == 6 {
		if halfMoveClock, err = strconv.Atoi(fields[4]); err != nil || halfMoveClock < 0 {
			return nil, fmt.Errorf("%w: invalid half move clock %q", ErrInvalidFEN, fields[4])
		}
		if moveCount, err = strconv.Atoi(fields[5]); err != nil || moveCount < 1 {
			return nil, fmt.Errorf("%w: invalid move count %q", ErrInvalidFEN, fields[5])
		}
	}

	return NewPosition(b, turn, halfMoveClock, moveCount), nil
}

func decodeFENBoard(s string) (Board, error) {
	var b Board
	rows := strings.Split(s, "/")
	if len(rows) != numOfSquaresInRow {
		return b, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(rows))
	}
	for i, row := range rows {
		r := Rank(7 - i)
		f := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				f += int(c - '0')
				continue
			}
			p, ok := fenPieces[c]
			if !ok {
				return b, fmt.Errorf("%w: invalid piece %q", ErrInvalidFEN, c)
			}
			if f >= numOfSquaresInRow {
				return b, fmt.Errorf("%w: rank %s has more than 8 files", ErrInvalidFEN, r)
			}
			b.SetPiece(NewSquare(File(f), r), p)
			f++
		}
		if f != numOfSquaresInRow {
			return b, fmt.Errorf("%w: rank %s does not have 8 files", ErrInvalidFEN, r)
		}
	}
	return b, nil
}

// String implements the fmt.Stringer interface and returns a FEN string
// for the position. Castling and en passant fields are always "-".
func (pos *Position) String() string {
	return fmt.Sprintf("%s %s - - %d %d", pos.board.fenPlacement(), pos.turn, pos.halfMoveClock, pos.moveCount)
}

func (b Board) fenPlacement() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < numOfSquaresInRow; f++ {
			p := b.cells[r*numOfSquaresInRow+f]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
