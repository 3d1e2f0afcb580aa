package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/mway1/chesscore"
	"github.com/mway1/chesscore/image"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the random players")
	fen := flag.String("fen", "", "Start from this FEN instead of the initial position")
	maxPlies := flag.Int("max-plies", 0, "Stop after this many plies (0 = until the game ends)")
	quiet := flag.Bool("quiet", false, "Only print the final position")
	svgOut := flag.String("svg", "", "Write the final board as SVG to this file")
	flag.Parse()

	var opts []func(*chess.Game)
	if *fen != "" {
		fromFEN, err := chess.FEN(*fen)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, fromFEN)
	}
	game := chess.NewGame(opts...)

	ply := 0
	observe := func(g *chess.Game) {
		if *quiet || g.Outcome() != chess.NoOutcome {
			return
		}
		pos := g.Position()
		ply++
		fmt.Printf("Move %d: %s's turn (Halfmove clock: %d)\n", ply, pos.Turn().Name(), pos.HalfMoveClock())
		fmt.Print(pos.Draw())
	}
	chess.Play(game, chess.NewRandomPlayer(*seed), chess.NewRandomPlayer(*seed+1), *maxPlies, observe)

	switch game.Method() {
	case chess.Checkmate:
		fmt.Printf("%s is checkmated!\n", game.Position().Turn().Name())
	case chess.Stalemate:
		fmt.Println("Stalemate!")
	case chess.FiftyMoveRule:
		fmt.Println("Draw by fifty-move rule.")
	}
	fmt.Printf("Game over after %d moves.\n", len(game.Moves()))
	fmt.Print(game.Position().Draw())

	if *svgOut != "" {
		f, err := os.Create(*svgOut)
		if err != nil {
			log.Fatal(err)
		}
		if err := writeSVG(f, game); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

// writeSVG draws the current board, marking the last move if any.
func writeSVG(w io.Writer, g *chess.Game) error {
	moves := g.Moves()
	if len(moves) == 0 {
		return image.SVG(w, g.Position().Board())
	}
	last := moves[len(moves)-1]
	return image.SVG(w, g.Position().Board(), image.MarkSquares("#cdd26a", last.S1(), last.S2()))
}
