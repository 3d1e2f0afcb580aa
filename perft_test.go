package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerftInitialPosition(t *testing.T) {
	pos := StartingPosition()
	assert.Equal(t, uint64(1), Perft(pos, 0))
	assert.Equal(t, uint64(20), Perft(pos, 1))
	assert.Equal(t, uint64(400), Perft(pos, 2))
	assert.Equal(t, uint64(8902), Perft(pos, 3))
	assert.Equal(t, StartingPosition().String(), pos.String())
}

func TestPerftInitialPositionDepth4(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping perft depth 4 in short mode")
	}
	assert.Equal(t, uint64(197281), Perft(StartingPosition(), 4))
}

func TestPerftDivide(t *testing.T) {
	pos := StartingPosition()
	div := PerftDivide(pos, 2)
	assert.Len(t, div, 20)

	var sum uint64
	for m, n := range div {
		assert.Equal(t, uint64(20), n, "move %s", m)
		sum += n
	}
	assert.Equal(t, uint64(400), sum)
	assert.Empty(t, PerftDivide(pos, 0))
}

func BenchmarkPerft3(b *testing.B) {
	pos := StartingPosition()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Perft(pos, 3)
	}
}
