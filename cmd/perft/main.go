package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/mway1/chesscore"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

func main() {
	fen := flag.String("fen", startFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := chess.DecodeFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DecodeFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := chess.PerftDivide(pos, *depth)
		type kv struct {
			m chess.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m, x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := chess.Perft(pos, *depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("depth=%d nodes=%d time=%s nps=%.0f\n", *depth, nodes, elapsed.Round(time.Millisecond), nps)
}
