// Package lifecycle holds the active/inactive state shared by every
// persisted entity and the process-wide shutdown timeout.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks.
const DefaultTimeout = 10 * time.Second

// State is the logical-deletion marker. Records are never removed, only
// deactivated.
type State struct {
	IsActive      bool       `json:"is_active"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
}

// Active returns a live state.
func Active() State {
	return State{IsActive: true}
}

// Active reports whether the record is live.
func (s State) Active() bool {
	return s.IsActive
}

// Deactivate marks the record inactive at the given instant. It returns
// false when the record was already inactive.
func (s *State) Deactivate(at time.Time) bool {
	if !s.IsActive {
		return false
	}

	s.IsActive = false
	deactivatedAt := at
	s.DeactivatedAt = &deactivatedAt

	return true
}

// Activatable is implemented by anything embedding State.
type Activatable interface {
	Active() bool
}

// FilterActive keeps the live items, preserving order.
func FilterActive[T Activatable](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.Active() {
			out = append(out, item)
		}
	}

	return out
}
