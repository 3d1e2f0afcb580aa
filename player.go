package chess

import "math/rand/v2"

// A Player chooses the next move from the legal moves of a position.
// moves is never empty.
type Player interface {
	ChooseMove(pos *Position, moves []Move) Move
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(pos *Position, moves []Move) Move

// ChooseMove calls f(pos, moves).
func (f PlayerFunc) ChooseMove(pos *Position, moves []Move) Move {
	return f(pos, moves)
}

// RandomPlayer picks uniformly among the legal moves. Two players created
// with the same seed make the same choices.
type RandomPlayer struct {
	rng *rand.Rand
}

// NewRandomPlayer returns a RandomPlayer seeded with seed.
func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// ChooseMove implements Player.
func (p *RandomPlayer) ChooseMove(_ *Position, moves []Move) Move {
	return moves[p.rng.IntN(len(moves))]
}

// Play alternates white and black on g until the game has an outcome or
// maxPlies moves were committed; maxPlies <= 0 means no limit. observe, if
// not nil, is called before every move and once more at the end.
func Play(g *Game, white, black Player, maxPlies int, observe func(*Game)) {
	for plies := 0; g.Outcome() == NoOutcome && (maxPlies <= 0 || plies < maxPlies); plies++ {
		if observe != nil {
			observe(g)
		}
		player := white
		if g.Position().Turn() == Black {
			player = black
		}
		moves := g.ValidMoves()
		if len(moves) == 0 {
			break
		}
		if err := g.UnsafeMove(player.ChooseMove(g.Position(), moves)); err != nil {
			break
		}
	}
	if observe != nil {
		observe(g)
	}
}
