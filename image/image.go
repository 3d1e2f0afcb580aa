// Package image renders chess boards as SVG.
package image

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/mway1/chesscore"
)

const (
	sqWidth  = 45
	sqHeight = 45
	boardLen = 8 * sqWidth
)

// SVG writes the board SVG representation into the writer.
// An error is returned if there is an error writing data.
// SVG also takes options which can customize the image output.
func SVG(w io.Writer, b chess.Board, opts ...func(*encoder)) error {
	e := newEncoder(w, opts)
	return e.encode(b)
}

// SquareColors is designed to be used as an optional argument
// to the SVG function.  It changes the default light and
// dark square colors to the colors given.
func SquareColors(light, dark string) func(*encoder) {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// MarkSquares is designed to be used as an optional argument
// to the SVG function.  It marks the given squares with the
// color.  A possible usage includes marking squares of the
// previous move.
func MarkSquares(color string, sqs ...chess.Square) func(*encoder) {
	return func(e *encoder) {
		for _, sq := range sqs {
			e.marks[sq] = color
		}
	}
}

// Perspective is designed to be used as an optional argument
// to the SVG function.  It draws the board from the perspective
// of the given color.  White is the default.
func Perspective(c chess.Color) func(*encoder) {
	return func(e *encoder) {
		e.perspective = c
	}
}

// An encoder encodes chess boards into images.
type encoder struct {
	w           io.Writer
	light       string
	dark        string
	perspective chess.Color
	marks       map[chess.Square]string
}

func newEncoder(w io.Writer, options []func(*encoder)) *encoder {
	e := &encoder{
		w:           w,
		light:       "#f0d9b5",
		dark:        "#b58863",
		perspective: chess.White,
		marks:       map[chess.Square]string{},
	}
	for _, op := range options {
		op(e)
	}
	return e
}

// errWriter remembers the first write error so the svgo calls, which
// don't report errors, can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func (e *encoder) encode(b chess.Board) error {
	ew := &errWriter{w: e.w}
	canvas := svg.New(ew)
	canvas.Start(boardLen, boardLen)
	for i := 0; i < 64; i++ {
		sq := chess.Square(i)
		x, y := e.xy(sq)

		fill := e.colorForSquare(sq)
		if mark, ok := e.marks[sq]; ok {
			fill = mark
		}
		canvas.Rect(x, y, sqWidth, sqHeight, "fill: "+fill)

		if p := b.Piece(sq); !p.IsEmpty() {
			canvas.Text(x+sqWidth/2, y+sqHeight*3/4, p.Unicode(),
				"text-anchor:middle;font-size:36px;fill:#000")
		}

		// coordinates along the bottom and left edges
		txtColor := e.colorForText(sq)
		if y == boardLen-sqHeight {
			canvas.Text(x+sqWidth-4, y+sqHeight-3, sq.File().String(),
				fmt.Sprintf("text-anchor:end;font-size:10px;fill:%s", txtColor))
		}
		if x == 0 {
			canvas.Text(x+3, y+11, sq.Rank().String(),
				fmt.Sprintf("font-size:10px;fill:%s", txtColor))
		}
	}
	canvas.End()
	return ew.err
}

// xy returns the top left corner of sq as seen from the perspective.
func (e *encoder) xy(sq chess.Square) (int, int) {
	file, rank := int(sq.File()), int(sq.Rank())
	if e.perspective == chess.Black {
		return (7 - file) * sqWidth, rank * sqHeight
	}
	return file * sqWidth, (7 - rank) * sqHeight
}

func (e *encoder) colorForSquare(sq chess.Square) string {
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return e.dark
	}
	return e.light
}

func (e *encoder) colorForText(sq chess.Square) string {
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return e.light
	}
	return e.dark
}
