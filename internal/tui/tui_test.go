package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelko/todoclip/internal/export"
	"github.com/avelko/todoclip/internal/model"
)

type fakeClipboard struct {
	content  string
	readErr  error
	writeErr error
}

func (f *fakeClipboard) ReadAll() (string, error) { return f.content, f.readErr }
func (f *fakeClipboard) WriteAll(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.content = text
	return nil
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press drives the model through a sequence of key messages.
func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var okModel bool
		m, okModel = next.(Model)
		if !okModel {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func sampleTodos() []model.Todo {
	a := model.New("buy milk")
	b := model.New("write report")
	b.Done = true
	return []model.Todo{a, b}
}

func TestCopyMarkdownKey(t *testing.T) {
	clip := &fakeClipboard{}
	items := sampleTodos()
	m := press(t, newModel(items, clip), keyMsg("m"))

	if want := export.Markdown(items); clip.content != want {
		t.Errorf("clipboard = %q, want %q", clip.content, want)
	}
	if !strings.Contains(m.status, "copied 2 items") {
		t.Errorf("status = %q", m.status)
	}
	if m.changed {
		t.Error("copying marked the list as changed")
	}
}

func TestCopyMarkdownFailure(t *testing.T) {
	clip := &fakeClipboard{writeErr: errors.New("no display")}
	m := press(t, newModel(sampleTodos(), clip), keyMsg("m"))

	if !strings.Contains(m.status, "copy failed") {
		t.Errorf("status = %q, want copy failure", m.status)
	}
}

func TestPasteURLKey(t *testing.T) {
	clip := &fakeClipboard{content: "https://example.com/article"}
	m := press(t, newModel(sampleTodos(), clip), keyMsg("p"))

	todos := m.todos()
	if len(todos) != 3 {
		t.Fatalf("items = %d, want 3", len(todos))
	}
	if !m.changed {
		t.Error("paste did not mark the list as changed")
	}
	var found bool
	for _, it := range todos {
		if it.Text == "https://example.com/article" {
			found = true
		}
	}
	if !found {
		t.Errorf("pasted url missing from %+v", todos)
	}
}

func TestPasteRejectsNonURL(t *testing.T) {
	clip := &fakeClipboard{content: "grocery list"}
	m := press(t, newModel(sampleTodos(), clip), keyMsg("p"))

	if len(m.todos()) != 2 {
		t.Fatalf("items = %d, want 2", len(m.todos()))
	}
	if m.changed {
		t.Error("rejected paste marked the list as changed")
	}
	if !strings.Contains(m.status, "url") {
		t.Errorf("status = %q, want url complaint", m.status)
	}
}

func TestToggleKey(t *testing.T) {
	m := press(t, newModel(sampleTodos(), &fakeClipboard{}), keyMsg(" "))

	todos := m.todos()
	if !todos[0].Done {
		t.Error("space did not toggle the selected item")
	}
	if !m.changed {
		t.Error("toggle did not mark the list as changed")
	}
}

func TestDeleteAndUndo(t *testing.T) {
	items := sampleTodos()
	m := press(t, newModel(items, &fakeClipboard{}), keyMsg("d"))
	if len(m.todos()) != 1 {
		t.Fatalf("after delete: %d items, want 1", len(m.todos()))
	}

	m = press(t, m, keyMsg("u"))
	todos := m.todos()
	if len(todos) != 2 {
		t.Fatalf("after undo: %d items, want 2", len(todos))
	}
	if todos[0].Text != items[0].Text {
		t.Errorf("undo restored %q at wrong place", todos[0].Text)
	}
}

func TestInlineAdd(t *testing.T) {
	m := press(t, newModel(nil, &fakeClipboard{}),
		keyMsg("a"),
		keyMsg("call mom"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	todos := m.todos()
	if len(todos) != 1 || todos[0].Text != "call mom" {
		t.Fatalf("after inline add: %+v", todos)
	}
	if todos[0].ID == "" {
		t.Error("inline add produced an item without an id")
	}
	if !m.changed {
		t.Error("inline add did not mark the list as changed")
	}
}

func TestInlineAddRejectsEmpty(t *testing.T) {
	m := press(t, newModel(nil, &fakeClipboard{}),
		keyMsg("a"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if len(m.todos()) != 0 {
		t.Fatal("empty title was added")
	}
	if m.addErr == "" {
		t.Error("no validation error reported")
	}
	if !m.adding {
		t.Error("add mode should stay active after a validation error")
	}
}

func TestInlineEdit(t *testing.T) {
	m := newModel(sampleTodos(), &fakeClipboard{})
	m = press(t, m, keyMsg("e"))
	if !m.editing {
		t.Fatal("edit mode not active")
	}
	// Replace the prefilled text entirely.
	m.ti.SetValue("buy oat milk")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.todos()[0].Text; got != "buy oat milk" {
		t.Errorf("edited text = %q", got)
	}
	if !m.changed {
		t.Error("edit did not mark the list as changed")
	}
}

func TestHeaderCountTracksList(t *testing.T) {
	clip := &fakeClipboard{content: "https://example.com"}
	m := newModel(sampleTodos(), clip)
	if h := m.header(); h.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", h.TotalCount)
	}
	m = press(t, m, keyMsg("p"))
	if h := m.header(); h.TotalCount != 3 {
		t.Fatalf("TotalCount after paste = %d, want 3", h.TotalCount)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.Msg{keyMsg("q"), tea.KeyMsg{Type: tea.KeyEsc}} {
		_, cmd := newModel(nil, &fakeClipboard{}).Update(msg)
		if cmd == nil {
			t.Errorf("Update(%v) returned nil cmd, want tea.Quit", msg)
		}
	}
}
