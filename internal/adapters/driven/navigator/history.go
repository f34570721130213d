// Package navigator provides implementations of driven.Navigator.
package navigator

import (
	"sync"

	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
)

// Ensure History implements the interface.
var _ driven.Navigator = (*History)(nil)

// History records navigated routes. Driving adapters read Current to decide
// which screen to show next.
type History struct {
	mu       sync.RWMutex
	routes   []string
	onChange func(route string)
}

// NewHistory creates an empty history.
// onChange, if not nil, is called after each navigation.
func NewHistory(onChange func(route string)) *History {
	return &History{onChange: onChange}
}

// Navigate appends route to the history.
func (h *History) Navigate(route string) error {
	h.mu.Lock()
	h.routes = append(h.routes, route)
	onChange := h.onChange
	h.mu.Unlock()

	if onChange != nil {
		onChange(route)
	}
	return nil
}

// Current returns the latest route, or "" before any navigation.
func (h *History) Current() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.routes) == 0 {
		return ""
	}
	return h.routes[len(h.routes)-1]
}

// Routes returns every navigated route in order.
func (h *History) Routes() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.routes...)
}
