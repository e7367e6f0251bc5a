// Package search picks moves with a depth-limited minimax search and
// alpha-beta pruning over a material evaluation.
package search

import (
	"fmt"
	"sort"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/eval"
	"github.com/lgbarn/minimax-chess-go/internal/worker"
)

const (
	// MateScore is the base score of a checkmate. The remaining depth is
	// added so that quicker mates score higher.
	MateScore = 100000

	// DrawScore is the score of a stalemate.
	DrawScore = 0

	// Infinity bounds every reachable score.
	Infinity = 1 << 30
)

// Result is the move chosen by a search and its score for the side the
// search was run for.
type Result struct {
	From  chess.Square
	To    chess.Square
	Score int
	Nodes uint64
}

// Pair returns the chosen move as a from/to pair.
func (r Result) Pair() chess.MovePair {
	return chess.MovePair{From: r.From, To: r.To}
}

// Searcher runs searches with one configuration. A Searcher is not safe
// for concurrent use; the parallel root gives each worker its own.
type Searcher struct {
	cfg   config.SearchConfig
	nodes uint64
}

// New creates a Searcher. A nil cfg uses the defaults.
func New(cfg *config.SearchConfig) *Searcher {
	if cfg == nil {
		cfg = config.NewSearchConfig()
	}
	return &Searcher{cfg: *cfg}
}

// BestMove searches to the configured depth with a full window for side.
func (s *Searcher) BestMove(board *chess.Board, side chess.Side) (Result, error) {
	return s.SearchForSide(board, s.cfg.Depth, -Infinity, Infinity, true, side)
}

// BestMoveForWhite searches depth plies with default settings for White.
func BestMoveForWhite(board *chess.Board, depth int) (Result, error) {
	return New(nil).SearchForSide(board, depth, -Infinity, Infinity, true, chess.White)
}

// BestMoveForBlack searches depth plies with default settings for Black.
func BestMoveForBlack(board *chess.Board, depth int) (Result, error) {
	return New(nil).SearchForSide(board, depth, -Infinity, Infinity, true, chess.Black)
}

// SearchForSide runs minimax from the current position. side is the side
// being optimised: scores are material from its point of view. When
// maximizing, side moves first, otherwise its opponent does. The board is
// restored before returning.
//
// At depth 0 no move is chosen and the static score is returned with
// NoSquare for From and To. A root without legal moves is an error.
func (s *Searcher) SearchForSide(board *chess.Board, depth, alpha, beta int, maximizing bool, side chess.Side) (Result, error) {
	s.nodes = 0
	if depth <= 0 {
		s.nodes++
		return Result{
			From:  chess.NoSquare,
			To:    chess.NoSquare,
			Score: eval.Evaluate(board, side.Opponent()),
			Nodes: s.nodes,
		}, nil
	}

	mover := moverAt(maximizing, side)
	if !engine.HasLegalMoves(board, mover) {
		return Result{}, fmt.Errorf("%s to move: %w", mover, errors.ErrNoLegalMoves)
	}

	if s.cfg.Workers > 1 && maximizing {
		return s.parallelRoot(board, depth, alpha, beta, side)
	}

	score, best := s.minimax(board, depth, alpha, beta, maximizing, side)
	return Result{From: best.From, To: best.To, Score: score, Nodes: s.nodes}, nil
}

// moverAt returns who moves at a node: side on maximizing nodes, its
// opponent on minimizing ones.
func moverAt(maximizing bool, side chess.Side) chess.Side {
	if maximizing {
		return side
	}
	return side.Opponent()
}

// minimax returns the score of the position and the best move found.
// Ties keep the first move in scan order.
func (s *Searcher) minimax(board *chess.Board, depth, alpha, beta int, maximizing bool, side chess.Side) (int, chess.Move) {
	s.nodes++
	if depth <= 0 {
		return eval.Evaluate(board, side.Opponent()), chess.Move{}
	}

	mover := moverAt(maximizing, side)
	moves := engine.LegalMoves(board, mover)
	if len(moves) == 0 {
		return terminalScore(board, mover, side, depth), chess.Move{}
	}
	s.order(moves)

	var best chess.Move
	if maximizing {
		bestScore := -Infinity
		for _, m := range moves {
			engine.Apply(board, m.From, m.To)
			score, _ := s.minimax(board, depth-1, alpha, beta, false, side)
			engine.UndoMove(board)

			if score > bestScore {
				bestScore, best = score, m
			}
			alpha = max(alpha, bestScore)
			if beta <= alpha {
				break
			}
		}
		return bestScore, best
	}

	bestScore := Infinity
	for _, m := range moves {
		engine.Apply(board, m.From, m.To)
		score, _ := s.minimax(board, depth-1, alpha, beta, true, side)
		engine.UndoMove(board)

		if score < bestScore {
			bestScore, best = score, m
		}
		beta = min(beta, bestScore)
		if beta <= alpha {
			break
		}
	}
	return bestScore, best
}

// terminalScore scores a node where mover has no legal move.
func terminalScore(board *chess.Board, mover, side chess.Side, depth int) int {
	if !engine.IsInCheck(board, mover) {
		return DrawScore
	}
	if mover == side {
		return -(MateScore + depth)
	}
	return MateScore + depth
}

// order puts captures first, most valuable victim first, keeping the scan
// order otherwise. It does nothing unless CaptureFirst is set.
func (s *Searcher) order(moves []chess.Move) {
	if !s.cfg.CaptureFirst {
		return
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return eval.DefaultValues[moves[i].Captured.Kind] > eval.DefaultValues[moves[j].Captured.Kind]
	})
}

// parallelRoot searches every root move on its own board copy. Each
// subtree gets the caller's window, so with a full window the scores are
// exact and the first maximum matches the sequential choice.
func (s *Searcher) parallelRoot(board *chess.Board, depth, alpha, beta int, side chess.Side) (Result, error) {
	moves := engine.LegalMoves(board, side)
	s.order(moves)

	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Board: board.Copy(), Move: m, Index: i}
	}

	cfg := s.cfg
	pool := worker.NewPool(func(item worker.WorkItem) worker.Result {
		sub := &Searcher{cfg: cfg}
		engine.Apply(item.Board, item.Move.From, item.Move.To)
		score, _ := sub.minimax(item.Board, depth-1, alpha, beta, false, side)
		return worker.Result{Index: item.Index, Move: item.Move, Score: score, Nodes: sub.nodes}
	}, worker.WithWorkers(s.cfg.Workers), worker.WithBufferSize(len(items)))

	best := Result{Score: -Infinity, Nodes: 1}
	for _, r := range pool.Run(items) {
		if r.Err != nil {
			return Result{}, r.Err
		}
		best.Nodes += r.Nodes
		if r.Score > best.Score {
			best.From, best.To, best.Score = r.Move.From, r.Move.To, r.Score
		}
	}
	s.nodes = best.Nodes
	return best, nil
}
