// Package input keeps keyboard and cursor state between window callbacks and the simulation tick,
// so the tick never talks to the windowing layer directly.
package input

import "github.com/Carmen-Shannon/oxy-viewer/common"

// ToggleFlag identifies a debounced on/off feature bound to a key.
type ToggleFlag int

const (
	ToggleLight ToggleFlag = iota
	ToggleFog
	TogglePresentation

	toggleCount
)

// String returns the feature name of the toggle.
func (f ToggleFlag) String() string {
	switch f {
	case ToggleLight:
		return "light"
	case ToggleFog:
		return "fog"
	case TogglePresentation:
		return "presentation"
	default:
		return "unknown"
	}
}

// Tracker records which keys are currently held plus one "already processed" latch per toggle flag.
// Held state changes only on press/release events; the tick reads it every iteration.
type Tracker struct {
	held      [common.MaxKeyCode]bool
	processed [toggleCount]bool
}

// NewTracker creates a Tracker with no keys held and all latches clear.
//
// Returns:
//   - *Tracker: the new tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// SetHeld records a press (true) or release (false) of a key.
// Codes outside [0, common.MaxKeyCode) are ignored.
//
// Parameters:
//   - code: GLFW key code
//   - held: true on press, false on release
func (t *Tracker) SetHeld(code int, held bool) {
	if code < 0 || code >= common.MaxKeyCode {
		return
	}
	t.held[code] = held
}

// IsHeld reports whether a key is currently held. Out-of-range codes are never held.
//
// Parameters:
//   - code: GLFW key code
//
// Returns:
//   - bool: true if the key is down
func (t *Tracker) IsHeld(code int) bool {
	if code < 0 || code >= common.MaxKeyCode {
		return false
	}
	return t.held[code]
}

// TryConsumeToggle returns true exactly once per press-and-hold cycle of the key bound to flag.
// While the key is held the first call sets the latch and returns true, later calls return false.
// A call made while the key is released clears the latch. It must be called once per tick.
//
// Parameters:
//   - flag: the toggle latch to use
//   - code: the key bound to the toggle
//
// Returns:
//   - bool: true on the tick the toggle should flip
func (t *Tracker) TryConsumeToggle(flag ToggleFlag, code int) bool {
	if flag < 0 || flag >= toggleCount {
		return false
	}
	if !t.IsHeld(code) {
		t.processed[flag] = false
		return false
	}
	if t.processed[flag] {
		return false
	}
	t.processed[flag] = true
	return true
}

// Reset releases every key and clears every latch, e.g. when the window loses focus.
func (t *Tracker) Reset() {
	t.held = [common.MaxKeyCode]bool{}
	t.processed = [toggleCount]bool{}
}
