// perft counts the leaf nodes of the legal move tree from a position, the
// standard check of a move generator, and can compare the counts with the
// dragontoothmg generator.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/hashing"
	"github.com/lgbarn/minimax-chess-go/internal/notation"
)

var (
	fen     = flag.String("fen", engine.InitialFEN, "Position to count from")
	depth   = flag.Int("depth", 3, "Depth in plies")
	divide  = flag.Bool("divide", false, "Print the count below each root move")
	compare = flag.Bool("compare", false, "Compare the counts with dragontoothmg")
	useHash = flag.Bool("hash", false, "Cache the counts of transposed positions")
	hashCap = flag.Int("hash-capacity", 0, "Maximum cached positions (0 = unlimited)")
)

func main() {
	flag.Parse()

	board, err := notation.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if *depth < 1 {
		fmt.Fprintf(os.Stderr, "Error: depth must be at least 1, got %d\n", *depth)
		os.Exit(2)
	}

	var cache *hashing.PerftCache
	if *useHash {
		cache = hashing.NewPerftCache(*hashCap)
	}

	ok := run(os.Stdout, board, *depth, *divide, *compare, cache)
	if !ok {
		os.Exit(1)
	}
}

// run prints the requested counts and reports whether every comparison
// agreed. A non-nil cache speeds up the plain count.
func run(w io.Writer, board *chess.Board, depth int, divide, compare bool, cache *hashing.PerftCache) bool {
	if compare && divide {
		return writeDiff(w, notation.DivideDiff(board, depth))
	}

	if divide {
		var total uint64
		for _, e := range engine.Divide(board, depth) {
			fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes)
			total += e.Nodes
		}
		fmt.Fprintf(w, "\nNodes searched: %d\n", total)
		return true
	}

	start := time.Now()
	nodes := hashing.Perft(board, depth, cache)
	elapsed := time.Since(start)
	fmt.Fprintf(w, "perft(%d) = %d (%v)\n", depth, nodes, elapsed.Round(time.Millisecond))
	if cache != nil {
		fmt.Fprintf(w, "hash entries %d, hits %d\n", cache.Len(), cache.Hits())
	}

	if !compare {
		return true
	}
	ref := notation.ReferencePerft(board, depth)
	fmt.Fprintf(w, "dragontoothmg perft(%d) = %d\n", depth, ref)
	if ref != nodes {
		fmt.Fprintln(w, "MISMATCH (rerun with -divide -compare to find the move)")
		return false
	}
	return true
}

// writeDiff prints the moves whose counts differ, sorted by move.
func writeDiff(w io.Writer, diff map[string][2]uint64) bool {
	if len(diff) == 0 {
		fmt.Fprintln(w, "All root moves agree with dragontoothmg.")
		return true
	}
	moves := maps.Keys(diff)
	slices.Sort(moves)
	for _, mv := range moves {
		fmt.Fprintf(w, "%s: engine %d, dragontoothmg %d\n", mv, diff[mv][0], diff[mv][1])
	}
	return false
}
