// Package tui implements the interactive list view.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelko/todoclip/internal/clipboard"
	"github.com/avelko/todoclip/internal/export"
	"github.com/avelko/todoclip/internal/logging"
	"github.com/avelko/todoclip/internal/model"
	"github.com/avelko/todoclip/internal/store/jsonstore"
	"github.com/avelko/todoclip/internal/ui"
)

// listItem adapts model.Todo to bubbles/list.Item.
type listItem struct {
	todo model.Todo
}

func (i listItem) titleText() string {
	box := ui.BoxUnchecked
	if i.todo.Done {
		box = ui.BoxChecked
	}
	return fmt.Sprintf("%s %s", box, i.todo.Text)
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.titleText() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	boxStyled := ui.Muted.Render(ui.BoxUnchecked)
	textStyled := it.todo.Text
	if it.todo.Done {
		boxStyled = ui.Success.Render(ui.BoxChecked)
		textStyled = ui.DoneItem.Render(it.todo.Text)
	}

	line := fmt.Sprintf("%s %s", boxStyled, textStyled)
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Model is the Bubble Tea model for the interactive list.
type Model struct {
	list    list.Model
	clip    clipboard.Clipboard
	changed bool
	status  string // last action result, shown under the list

	width  int
	height int

	// Inline add
	adding bool            // true when inline add is active
	ti     textinput.Model // shared text input model (used for add & edit)
	addErr string          // last add validation error (shown briefly)

	// Inline edit
	editing   bool // true when inline edit is active
	editIndex int  // index of item being edited
	editErr   string

	// Undo support (single-level)
	canUndo   bool
	undoIndex int
	undoItem  *listItem
}

func newModel(items []model.Todo, clip clipboard.Clipboard) Model {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{todo: it})
	}

	l := list.New(li, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Title
	l.Styles.HelpStyle = ui.Help
	l.Styles.PaginationStyle = ui.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	// Extend help with the extra bindings
	extra := []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "copy markdown")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste url")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return extra }
	l.AdditionalFullHelpKeys = func() []key.Binding { return extra }

	m := Model{
		list:   l,
		clip:   clip,
		width:  80,
		height: 24,
	}
	// set up text input for inline add/edit
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New item title..."
	m.ti.CharLimit = 200

	m.refreshTitle()
	return m
}

// Run starts the Bubble Tea list and persists changes when quitting.
func Run(items []model.Todo, store *jsonstore.Store, clip clipboard.Clipboard, out io.Writer) error {
	p := tea.NewProgram(newModel(items, clip), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	fm, okModel := finalModel.(Model)
	if !okModel {
		return nil
	}

	// Write back list state and persist if changed
	if fm.changed {
		if err := store.Save(fm.todos()); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		ui.OK(out, "saved")
	}
	return nil
}

// header builds the top bar with the quick actions wired to this model.
func (m *Model) header() ui.Header {
	return ui.Header{
		TotalCount:       len(m.list.Items()),
		OnExportMarkdown: m.copyMarkdown,
		OnPasteURL:       m.pasteURL,
	}
}

// copyMarkdown serializes the current list and writes it to the clipboard.
func (m *Model) copyMarkdown() {
	items := m.todos()
	if err := m.clip.WriteAll(export.Markdown(items)); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("copied %d items as markdown", len(items))
	logging.L().Debug().Int("count", len(items)).Msg("copied markdown to clipboard")
}

// pasteURL adds the clipboard content as a new item if it is an
// absolute http(s) URL.
func (m *Model) pasteURL() {
	text, err := clipboard.ReadURL(m.clip)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.list.InsertItem(m.list.Index()+1, listItem{todo: model.New(text)})
	m.changed = true
	m.refreshTitle()
	m.status = "added " + text
	logging.L().Debug().Str("url", text).Msg("pasted url from clipboard")
}

func (m *Model) todos() []model.Todo {
	out := make([]model.Todo, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.todo)
		}
	}
	return out
}

// refreshTitle rebuilds the list title: header line plus done/pending
// counts.
func (m *Model) refreshTitle() {
	items := m.todos()
	dn, pn := model.Stats(items)
	m.list.Title = fmt.Sprintf("%s  %s %d  %s %d",
		m.header().View(),
		ui.Success.Render("✔"), dn,
		ui.Pending.Render("•"), pn,
	)
}

// Init, Update and View implement Bubble Tea's Model.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, okWS := msg.(tea.WindowSizeMsg); okWS {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				text := strings.TrimSpace(m.ti.Value())
				if text == "" {
					m.addErr = "Title cannot be empty"
					return m, nil
				}
				m.list.InsertItem(m.list.Index()+1, listItem{todo: model.New(text)})
				m.changed = true
				m.refreshTitle()
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				return m, nil
			case "esc":
				m.adding = false
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// edit mode
	if m.editing {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				text := strings.TrimSpace(m.ti.Value())
				if text == "" {
					m.editErr = "Title cannot be empty"
					return m, nil
				}
				if m.editIndex >= 0 && m.editIndex < len(m.list.Items()) {
					if li, okItem := m.list.Items()[m.editIndex].(listItem); okItem {
						li.todo.Text = text
						m.list.SetItem(m.editIndex, li)
						m.changed = true
					}
				}
				m.ti.SetValue("")
				m.ti.Blur()
				m.editing = false
				return m, nil
			case "esc":
				m.editing = false
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, okItem := m.list.Items()[i].(listItem); okItem {
					li.todo.Done = !li.todo.Done
					m.list.SetItem(i, li)
					m.changed = true
					m.refreshTitle()
				}
			}
			return m, nil
		case "d":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, okItem := m.list.Items()[i].(listItem); okItem {
					tmp := li
					m.undoItem = &tmp
					m.undoIndex = i
					m.canUndo = true
				}
				m.list.RemoveItem(i)
				m.changed = true
				m.refreshTitle()
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New item title..."
			m.ti.Focus()
			return m, nil
		case "e":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, okItem := m.list.Items()[i].(listItem); okItem {
					m.editing = true
					m.editErr = ""
					m.editIndex = i
					m.ti.SetValue(li.todo.Text)
					m.ti.CursorEnd()
					m.ti.Placeholder = "Edit item title..."
					m.ti.Focus()
					return m, nil
				}
			}
			return m, nil
		case "u":
			if m.canUndo && m.undoItem != nil {
				idx := m.undoIndex
				if idx < 0 {
					idx = 0
				}
				if idx > len(m.list.Items()) {
					idx = len(m.list.Items())
				}
				m.list.InsertItem(idx, *m.undoItem)
				m.changed = true
				m.refreshTitle()
				m.canUndo = false
				m.undoItem = nil
			}
			return m, nil
		case "m":
			m.header().Activate(ui.ActionExportMarkdown)
			return m, nil
		case "p":
			m.header().Activate(ui.ActionPasteURL)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	listHeight := m.height - 4
	if m.adding || m.editing {
		listHeight = m.height - 6
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()
	if m.adding || m.editing {
		title := "Add new item"
		if m.editing {
			title = "Edit item"
		}
		if m.addErr != "" && m.adding {
			title += " — " + ui.Error.Render(m.addErr)
		}
		if m.editErr != "" && m.editing {
			title += " — " + ui.Error.Render(m.editErr)
		}
		content = content + "\n" + ui.Panel([]string{title, m.ti.View()})
	}
	if m.status != "" {
		content = content + "\n" + ui.Help.Render(m.status)
	}
	return ui.Panel([]string{content})
}
