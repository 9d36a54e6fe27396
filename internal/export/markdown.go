// Package export serializes todo lists into markdown text formats.
package export

import (
	"strings"

	"github.com/avelko/todoclip/internal/model"
)

// Markdown renders items as a plain bullet list: one "- <text>" line per
// item in input order, lines joined by a single newline, no trailing
// newline. An empty list renders as the empty string.
func Markdown(items []model.Todo) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "- "+it.Text)
	}
	return strings.Join(lines, "\n")
}

// Checklist renders items as a GitHub task list, keeping completion
// state ("- [x]" for done, "- [ ]" otherwise). Same joining rules as
// Markdown.
func Checklist(items []model.Todo) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		box := "[ ]"
		if it.Done {
			box = "[x]"
		}
		lines = append(lines, "- "+box+" "+it.Text)
	}
	return strings.Join(lines, "\n")
}
