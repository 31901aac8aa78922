// Package pointer turns terminal mouse events into the global pointer
// move/up stream that drag sessions subscribe to.
package pointer

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	layout "lotus/internal/modules/layout/domain"
)

// Hub fans pointer events out to the current subscribers.
type Hub struct {
	mu       sync.Mutex
	next     int
	handlers map[int]layout.PointerHandler
	order    []int
}

func NewHub() *Hub {
	return &Hub{handlers: map[int]layout.PointerHandler{}}
}

// Subscribe attaches h until the returned release func is called. Calling
// release more than once has no further effect.
func (h *Hub) Subscribe(handler layout.PointerHandler) func() {
	h.mu.Lock()
	id := h.next
	h.next++
	h.handlers[id] = handler
	h.order = append(h.order, id)
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

// Active is the number of attached handlers.
func (h *Hub) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handlers)
}

func (h *Hub) Move(x float64) {
	for _, handler := range h.snapshot() {
		handler.PointerMove(x)
	}
}

func (h *Hub) Up() {
	for _, handler := range h.snapshot() {
		handler.PointerUp()
	}
}

// Dispatch forwards a mouse event. Motion becomes a move and a release
// becomes an up; anything else is ignored. It reports whether the event was
// delivered to at least one handler.
func (h *Hub) Dispatch(msg tea.MouseMsg) bool {
	if h.Active() == 0 {
		return false
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		h.Move(float64(msg.X))
	case tea.MouseActionRelease:
		h.Move(float64(msg.X))
		h.Up()
	default:
		return false
	}
	return true
}

// snapshot copies the handlers so they may unsubscribe while being called.
func (h *Hub) snapshot() []layout.PointerHandler {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]layout.PointerHandler, 0, len(h.order))
	for _, id := range h.order {
		out = append(out, h.handlers[id])
	}
	return out
}

func (h *Hub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.handlers, id)
	for i, v := range h.order {
		if v == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}
