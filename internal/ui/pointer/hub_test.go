package pointer_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	layout "lotus/internal/modules/layout/domain"
	"lotus/internal/ui/pointer"
)

type recorder struct {
	moves []float64
	ups   int
	onUp  func()
}

func (r *recorder) PointerMove(x float64) { r.moves = append(r.moves, x) }
func (r *recorder) PointerUp() {
	r.ups++
	if r.onUp != nil {
		r.onUp()
	}
}

func TestHubDeliversUntilReleased(t *testing.T) {
	t.Parallel()
	hub := pointer.NewHub()
	rec := &recorder{}
	release := hub.Subscribe(rec)

	hub.Move(10)
	release()
	release()
	hub.Move(20)

	if len(rec.moves) != 1 || rec.moves[0] != 10 {
		t.Fatalf("moves = %v, want [10]", rec.moves)
	}
	if hub.Active() != 0 {
		t.Fatalf("active = %d after release", hub.Active())
	}
}

func TestHandlerMayReleaseDuringDispatch(t *testing.T) {
	t.Parallel()
	hub := pointer.NewHub()
	rec := &recorder{}
	var release func()
	rec.onUp = func() { release() }
	release = hub.Subscribe(rec)

	if !hub.Dispatch(tea.MouseMsg{X: 42, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}) {
		t.Fatalf("release event not delivered")
	}
	if rec.ups != 1 || hub.Active() != 0 {
		t.Fatalf("ups=%d active=%d", rec.ups, hub.Active())
	}
	if hub.Dispatch(tea.MouseMsg{X: 50, Action: tea.MouseActionMotion}) {
		t.Fatalf("event delivered with no subscribers")
	}
}

func TestEngineDragThroughHubReleasesEveryCycle(t *testing.T) {
	t.Parallel()
	hub := pointer.NewHub()
	engine := layout.NewEngine([]float64{20, 35, 45}, 24, hub)
	engine.SetContainerWidth(200)

	for i := 0; i < 4; i++ {
		engine.BeginDrag(0, engine.Widths()[0])
		if hub.Active() != 1 {
			t.Fatalf("cycle %d: active = %d during drag", i, hub.Active())
		}
		hub.Dispatch(tea.MouseMsg{X: 50, Action: tea.MouseActionMotion})
		hub.Dispatch(tea.MouseMsg{X: 50, Action: tea.MouseActionRelease})
		if hub.Active() != 0 || engine.State() != layout.Idle {
			t.Fatalf("cycle %d: active=%d state=%v after release", i, hub.Active(), engine.State())
		}
	}
	widths := engine.Widths()
	if widths[0] != 50 {
		t.Fatalf("pane 0 = %v, want 50", widths[0])
	}
}

func TestCloseMidDragReleases(t *testing.T) {
	t.Parallel()
	hub := pointer.NewHub()
	engine := layout.NewEngine([]float64{20, 35, 45}, 24, hub)
	engine.SetContainerWidth(200)
	engine.BeginDrag(1, 110)
	engine.Close()
	if hub.Active() != 0 {
		t.Fatalf("active = %d after close", hub.Active())
	}
}
