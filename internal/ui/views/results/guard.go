package results

import (
	"context"
	"sync"
)

// Guard lets only the newest fetch apply its result. Begin cancels the fetch
// before it; a result is applied only while its generation is still live.
type Guard struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// Begin supersedes any in-flight fetch and returns the context and
// generation for the new one.
func (g *Guard) Begin(parent context.Context) (context.Context, uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	g.cancel = cancel
	g.gen++
	return ctx, g.gen
}

// Live reports whether gen is the newest generation and has not been stopped.
func (g *Guard) Live(gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return gen == g.gen && g.cancel != nil
}

// Finish releases the context of gen once its result has been applied.
func (g *Guard) Finish(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen == g.gen && g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// Stop cancels the in-flight fetch, if any, so that no pending result applies.
func (g *Guard) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.gen++
}
