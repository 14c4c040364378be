// Package bench wires the three benchmarks to view lifecycle events.
package bench

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/humbench/internal/chimp"
	"github.com/verte-zerg/humbench/internal/reaction"
	"github.com/verte-zerg/humbench/internal/scores"
	"github.com/verte-zerg/humbench/internal/typing"
)

// View names a screen of the presentation layer.
type View string

// Views of the application.
const (
	ViewHome      View = "home"
	ViewReaction  View = "reaction"
	ViewChimp     View = "chimp"
	ViewTyping    View = "typing"
	ViewDashboard View = "dashboard"
)

// Views lists navigable views in menu order.
var Views = []View{ViewHome, ViewReaction, ViewChimp, ViewTyping, ViewDashboard}

// ParseView resolves a view name.
func ParseView(name string) (View, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	for _, v := range Views {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", name)
}

// Hub owns the games and the score store and translates view activation
// into game lifecycle calls.
type Hub struct {
	Scores   *scores.Store
	Reaction *reaction.Game
	Chimp    *chimp.Game
	Typing   *typing.Session
	Samples  *typing.Samples
}

// Activate starts the game behind v.
func (h *Hub) Activate(v View) {
	switch v {
	case ViewReaction:
		h.Reaction.Start()
	case ViewChimp:
		h.Chimp.StartGame()
	case ViewTyping:
		h.Typing.LoadSample(h.Samples.Current())
	}
}

// Deactivate suspends the game behind v without scoring.
func (h *Hub) Deactivate(v View) {
	switch v {
	case ViewReaction:
		h.Reaction.Stop()
	case ViewChimp:
		h.Chimp.Pause()
	}
}

// Switch deactivates from and activates to. Switching to the same view is a
// no-op.
func (h *Hub) Switch(from, to View) {
	if from == to {
		return
	}
	h.Deactivate(from)
	h.Activate(to)
}
