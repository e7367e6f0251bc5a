// Package worker provides a worker pool for searching root moves in
// parallel.
package worker

import (
	"sync"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// WorkItem is one root move to search. Board is owned by the item: the
// worker mutates it freely and nobody else may touch it.
type WorkItem struct {
	Board *chess.Board
	Move  chess.Move
	Index int // Position of the move in root scan order
}

// Result is the outcome of searching one root move.
type Result struct {
	Index int
	Move  chess.Move
	Score int
	Nodes uint64
	Err   error
}

// ProcessFunc searches a work item.
type ProcessFunc func(item WorkItem) Result

// Pool manages a pool of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 64, enough for
// the root moves of nearly any position.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  64,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.workChan {
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Close closes the work channel and waits for all workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run submits every item, waits for all results and returns them ordered
// by Index. Items must carry Index values 0..len(items)-1.
func (p *Pool) Run(items []WorkItem) []Result {
	p.Start()
	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]Result, len(items))
	for r := range p.Results() {
		results[r.Index] = r
	}
	return results
}
