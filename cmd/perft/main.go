package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	gm "chessbot/chessmg"

	"github.com/dylhunn/dragontoothmg"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Cross-check node counts against dragontoothmg")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}
	if err := board.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid position: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := gm.PerftDivide(board, *depth)
		type kv struct {
			m gm.Move
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
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := gm.Perft(board, *depth)
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %s\n", *depth, nodes, elapsed)

	if *verify {
		ref := dragontoothmg.ParseFen(*fen)
		want := referencePerft(&ref, *depth)
		if nodes != want {
			fmt.Fprintf(os.Stderr, "MISMATCH: got %d, dragontoothmg says %d\n", nodes, want)
			os.Exit(1)
		}
		fmt.Printf("verified against dragontoothmg: %d nodes\n", want)
	}
}

// referencePerft walks dragontoothmg's own move tree for an independent count.
func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}
