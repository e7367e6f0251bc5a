package engine

import (
	"testing"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// Reference counts from the chessprogramming wiki. None of these trees
// reaches a promotion, so queen-only promotion does not change them.
var perftCases = []struct {
	name  string
	fen   string
	depth int
	nodes uint64
}{
	{"initial d1", InitialFEN, 1, 20},
	{"initial d2", InitialFEN, 2, 400},
	{"initial d3", InitialFEN, 3, 8902},
	{"kiwipete d1", kiwipeteFEN, 1, 48},
	{"kiwipete d2", kiwipeteFEN, 2, 2039},
	{"position 3 d1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
	{"position 3 d2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
	{"position 3 d3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
}

func TestPerft(t *testing.T) {
	for _, tt := range perftCases {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.depth > 2 {
				t.Skip("deep perft in -short mode")
			}
			b := mustFEN(t, tt.fen)
			before := b.SaveState()
			if got := Perft(b, tt.depth); got != tt.nodes {
				t.Errorf("Perft(%d) = %d; want %d", tt.depth, got, tt.nodes)
			}
			if b.SaveState() != before {
				t.Error("Perft modified the board")
			}
		})
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	b := mustFEN(t, kiwipeteFEN)
	entries := Divide(b, 2)
	if len(entries) != 48 {
		t.Fatalf("len(Divide) = %d; want 48", len(entries))
	}
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	if total != 2039 {
		t.Errorf("sum of Divide(2) = %d; want 2039", total)
	}
	if Divide(b, 0) != nil {
		t.Error("Divide(0) should be nil")
	}
}

func BenchmarkPerft(b *testing.B) {
	for _, tt := range perftCases[:4] {
		b.Run(tt.name, func(b *testing.B) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Perft(board, tt.depth)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	board, _ := NewBoardFromFEN(kiwipeteFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BoardToFEN(board)
	}
}
