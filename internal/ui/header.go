package ui

import (
	"fmt"
	"time"
)

// Action identifies one of the header's quick actions.
type Action int

const (
	// ActionExportMarkdown serializes the list to markdown.
	ActionExportMarkdown Action = iota
	// ActionPasteURL adds the clipboard URL as a new item.
	ActionPasteURL
)

// Header is the stateless top bar: current date, total item count, and
// the two quick actions. It holds no state between renders — callers
// build a fresh value per frame and wire the callbacks they want fired.
type Header struct {
	TotalCount int

	// Now overrides the clock; nil means time.Now.
	Now func() time.Time

	OnExportMarkdown func()
	OnPasteURL       func()
}

// View renders the header as a single line: "Month Day", the literal
// count, and the key hints for the two actions.
func (h Header) View() string {
	return fmt.Sprintf("%s  %s  %s %d   %s  %s",
		Title.Render("Todos"),
		Muted.Render(h.date()),
		Accent.Render("Total"), h.TotalCount,
		Help.Render("[m] copy markdown"),
		Help.Render("[p] paste url"),
	)
}

// Activate fires the callback bound to the given action, exactly once.
// Nil callbacks and unknown actions are no-ops.
func (h Header) Activate(a Action) {
	switch a {
	case ActionExportMarkdown:
		if h.OnExportMarkdown != nil {
			h.OnExportMarkdown()
		}
	case ActionPasteURL:
		if h.OnPasteURL != nil {
			h.OnPasteURL()
		}
	}
}

func (h Header) date() string {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return now().Format("January 2")
}
