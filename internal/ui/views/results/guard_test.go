package results_test

import (
	"context"
	"sync"
	"testing"

	"lotus/internal/ui/views/results"
)

func TestGuardSupersedesPreviousFetch(t *testing.T) {
	t.Parallel()
	var g results.Guard
	first, gen1 := g.Begin(context.Background())
	second, gen2 := g.Begin(context.Background())

	if first.Err() == nil {
		t.Fatalf("first context not cancelled by second Begin")
	}
	if second.Err() != nil {
		t.Fatalf("second context cancelled early")
	}
	if g.Live(gen1) || !g.Live(gen2) {
		t.Fatalf("live: gen1=%v gen2=%v", g.Live(gen1), g.Live(gen2))
	}
	g.Finish(gen2)
	if g.Live(gen2) || second.Err() == nil {
		t.Fatalf("finished generation still live")
	}
}

func TestGuardStopDropsInFlight(t *testing.T) {
	t.Parallel()
	var g results.Guard
	ctx, gen := g.Begin(context.Background())
	g.Stop()
	if g.Live(gen) || ctx.Err() == nil {
		t.Fatalf("stopped generation still live")
	}
}

func TestGuardConcurrentUse(t *testing.T) {
	t.Parallel()
	var g results.Guard
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, gen := g.Begin(context.Background())
				_ = g.Live(gen)
				g.Finish(gen)
			}
		}()
	}
	wg.Wait()
	_, last := g.Begin(context.Background())
	if !g.Live(last) {
		t.Fatalf("newest generation not live")
	}
	g.Stop()
}
