package main

import (
	"flag"
	"log"

	"github.com/mway1/chesscore/internal/tui"
)

func main() {
	seed := flag.Uint64("seed", 1, "Seed for the random players")
	flag.Parse()

	if err := tui.Run(*seed); err != nil {
		log.Fatal(err)
	}
}
