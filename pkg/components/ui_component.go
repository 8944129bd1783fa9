package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the cursor is hovering over the UI element.
	UIHovered
	// UIHidden indicates the UI element is not drawn and ignores taps.
	UIHidden
)

// UIComponent marks an entity as a UI element and tracks its interaction state.
type UIComponent struct {
	State UIState
}

// StartButtonComponent marks the "Start Game" control.
// A tap on it while the round is idle starts a new round.
type StartButtonComponent struct {
	Label string
}
