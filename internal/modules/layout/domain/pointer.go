package domain

// PointerHandler receives pointer events while a drag is active. Only the X
// coordinate matters to the layout.
type PointerHandler interface {
	PointerMove(x float64)
	PointerUp()
}

// PointerSource hands out a subscription to global pointer move/up events.
// The returned release func detaches the handler; the engine calls it exactly
// once per subscription.
type PointerSource interface {
	Subscribe(h PointerHandler) (release func())
}
