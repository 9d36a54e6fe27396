// Package ui holds the shared terminal look: Lip Gloss styles, themes,
// and small rendering helpers used by both the CLI and the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	Title   = lipgloss.NewStyle().Bold(true)
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	Muted   = lipgloss.NewStyle().Faint(true)
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	Selected = lipgloss.NewStyle().Bold(true).Reverse(true)
	DoneItem = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	Help     = lipgloss.NewStyle().Faint(true)

	Border = lipgloss.Color("8")

	BoxChecked   = "☑"
	BoxUnchecked = "☐"
)

// SetTheme swaps the palette. "mono" strips colors and switches to
// ASCII checkboxes for dumb terminals; "neon" brightens the accents;
// anything else keeps the classic look.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201"))
		Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
		Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
		BoxChecked, BoxUnchecked = "◼", "◻"
	case "mono":
		plain := lipgloss.NewStyle()
		Title = plain.Bold(true)
		Success, Pending, Accent, Muted, Error = plain, plain, plain, plain, plain
		Selected = plain.Reverse(true)
		DoneItem = plain.Strikethrough(true)
		Help = plain
		BoxChecked, BoxUnchecked = "[x]", "[ ]"
	}
}
