package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	gm "chessbot/chessmg"
	"chessbot/engine"
	"chessbot/notation"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 4, "Search depth in plies")
	flag.Parse()

	board, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}
	if err := board.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid position: %v\n", err)
		os.Exit(2)
	}

	side := board.SideToMove()
	start := time.Now()
	result := engine.FindBestMove(board, side, *depth)
	elapsed := time.Since(start)

	if !result.HasMove {
		if board.InCheck(side) {
			fmt.Printf("no legal moves: %s is checkmated\n", side)
		} else {
			fmt.Printf("no legal moves: %s is stalemated\n", side)
		}
		return
	}

	san, err := notation.ToSAN(board, result.Move)
	if err != nil {
		// The search only returns legal moves; coordinate form still works.
		san = result.Move.String()
	}
	fmt.Printf("bestmove %s (%s) score %d cp depth %d time %s\n",
		result.Move, san, result.Score, *depth, elapsed)
}
