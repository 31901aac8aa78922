// Package domain holds the resizable pane geometry: N adjacent panes whose
// percentage sizes are redistributed while a divider is dragged.
package domain

import "math"

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

type Pane struct {
	SizePercent float64
}

// DragSession is the anchor captured when a divider is grabbed. Every move is
// recomputed from these values.
type DragSession struct {
	Divider int
	AnchorX float64
	LeftPx  float64
	RightPx float64
	Start   []float64
}

// Engine keeps the pane split and the active drag session. It never fails:
// impossible geometry degrades to clamped values.
type Engine struct {
	panes          []Pane
	minPixels      float64
	containerWidth float64
	source         PointerSource
	session        *DragSession
	release        func()
}

// NewEngine starts Idle with the given split. sizes should sum to 100.
// source may be nil when moves are fed directly through OnDragMove.
func NewEngine(sizes []float64, minPixels float64, source PointerSource) *Engine {
	panes := make([]Pane, len(sizes))
	for i, s := range sizes {
		panes[i] = Pane{SizePercent: s}
	}
	return &Engine{panes: panes, minPixels: minPixels, source: source}
}

func (e *Engine) SetContainerWidth(width float64) {
	if width < 0 {
		width = 0
	}
	e.containerWidth = width
}

func (e *Engine) ContainerWidth() float64 { return e.containerWidth }

func (e *Engine) MinPixels() float64 { return e.minPixels }

func (e *Engine) State() State {
	if e.session != nil {
		return Dragging
	}
	return Idle
}

// Session returns a copy of the active session.
func (e *Engine) Session() (DragSession, bool) {
	if e.session == nil {
		return DragSession{}, false
	}
	s := *e.session
	s.Start = append([]float64(nil), e.session.Start...)
	return s, true
}

func (e *Engine) Sizes() []float64 {
	out := make([]float64, len(e.panes))
	for i, p := range e.panes {
		out[i] = p.SizePercent
	}
	return out
}

// Widths converts the current percentages to container units.
func (e *Engine) Widths() []float64 {
	out := make([]float64, len(e.panes))
	for i, p := range e.panes {
		out[i] = p.SizePercent / 100 * e.containerWidth
	}
	return out
}

// DividerAt reports the divider whose boundary lies within tolerance of x.
// Divider i sits between pane i and pane i+1.
func (e *Engine) DividerAt(x, tolerance float64) (int, bool) {
	edge := 0.0
	for i := 0; i < len(e.panes)-1; i++ {
		edge += e.panes[i].SizePercent / 100 * e.containerWidth
		if math.Abs(x-edge) <= tolerance {
			return i, true
		}
	}
	return 0, false
}

// BeginDrag grabs divider dividerIndex at pointerX. A session that is already
// active is replaced. Indices that name no divider are ignored.
func (e *Engine) BeginDrag(dividerIndex int, pointerX float64) {
	if dividerIndex < 0 || dividerIndex >= len(e.panes)-1 {
		return
	}
	e.releaseSubscription()

	widths := e.Widths()
	e.session = &DragSession{
		Divider: dividerIndex,
		AnchorX: pointerX,
		LeftPx:  widths[dividerIndex],
		RightPx: widths[dividerIndex+1],
		Start:   e.Sizes(),
	}
	if e.source != nil {
		e.release = e.source.Subscribe(engineHandler{e})
	}
}

// OnDragMove applies the pointer position to the active session.
func (e *Engine) OnDragMove(pointerX float64) {
	s := e.session
	if s == nil || e.containerWidth <= 0 {
		return
	}
	delta := pointerX - s.AnchorX
	left := s.LeftPx + delta
	right := s.RightPx - delta
	if left < e.minPixels {
		right -= e.minPixels - left
		left = e.minPixels
	}
	if right < e.minPixels {
		left -= e.minPixels - right
		right = e.minPixels
	}
	// A pair narrower than one minimum keeps its total width.
	if left < 0 {
		right += left
		left = 0
	}

	sizes := append([]float64(nil), s.Start...)
	sizes[s.Divider] = left / e.containerWidth * 100
	sizes[s.Divider+1] = right / e.containerWidth * 100

	if r := remainderPane(len(sizes), s.Divider); r >= 0 {
		rest := 100.0
		for i, v := range sizes {
			if i != r {
				rest -= v
			}
		}
		sizes[r] = rest
	}
	for i := range e.panes {
		e.panes[i].SizePercent = sizes[i]
	}
	if r := remainderPane(len(sizes), s.Divider); r >= 0 && sizes[r] < 0 {
		e.panes[r].SizePercent = 0
	}
}

// EndDrag clears the session and releases the pointer subscription. It is a
// no-op while Idle.
func (e *Engine) EndDrag() {
	e.releaseSubscription()
	e.session = nil
}

// Close ends any drag in progress; call it when the layout goes away.
func (e *Engine) Close() {
	e.EndDrag()
}

// Nudge moves divider by step units as a complete begin/move/end cycle.
func (e *Engine) Nudge(dividerIndex int, step float64) {
	if dividerIndex < 0 || dividerIndex >= len(e.panes)-1 {
		return
	}
	widths := e.Widths()
	edge := 0.0
	for i := 0; i <= dividerIndex; i++ {
		edge += widths[i]
	}
	prev := e.source
	e.source = nil
	e.BeginDrag(dividerIndex, edge)
	e.OnDragMove(edge + step)
	e.EndDrag()
	e.source = prev
}

func (e *Engine) releaseSubscription() {
	if e.release != nil {
		release := e.release
		e.release = nil
		release()
	}
}

// remainderPane picks the highest-index pane not adjacent to divider, or -1
// when every pane flanks it.
func remainderPane(n, divider int) int {
	for i := n - 1; i >= 0; i-- {
		if i != divider && i != divider+1 {
			return i
		}
	}
	return -1
}

type engineHandler struct{ e *Engine }

func (h engineHandler) PointerMove(x float64) { h.e.OnDragMove(x) }
func (h engineHandler) PointerUp()            { h.e.EndDrag() }
