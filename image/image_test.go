package image_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mway1/chesscore"
	"github.com/mway1/chesscore/image"
)

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, image.SVG(&buf, chess.StartingPosition().Board()))

	out := buf.String()
	assert.True(t, strings.Contains(out, "<svg"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	assert.Equal(t, 64, strings.Count(out, "<rect"))
	assert.Equal(t, 8, strings.Count(out, "♙"))
	assert.Equal(t, 1, strings.Count(out, "♚"))
}

func TestSVGOptions(t *testing.T) {
	var buf bytes.Buffer
	err := image.SVG(&buf, chess.StartingPosition().Board(),
		image.SquareColors("white", "gray"),
		image.MarkSquares("yellow", chess.E2, chess.E4),
		image.Perspective(chess.Black),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "fill: yellow"))
	assert.Equal(t, 30, strings.Count(out, "fill: white"))
	assert.Equal(t, 32, strings.Count(out, "fill: gray"))
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestSVGWriteError(t *testing.T) {
	err := image.SVG(failingWriter{}, chess.StartingPosition().Board())
	assert.ErrorIs(t, err, errWrite)
}
