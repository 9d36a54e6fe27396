// Package cli routes subcommands to their implementations.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/avelko/todoclip/internal/clipboard"
	"github.com/avelko/todoclip/internal/export"
	"github.com/avelko/todoclip/internal/logging"
	"github.com/avelko/todoclip/internal/model"
	"github.com/avelko/todoclip/internal/store/jsonstore"
	"github.com/avelko/todoclip/internal/tui"
	"github.com/avelko/todoclip/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Plain bool // print the list instead of opening the TUI
	Group bool // group plain output by pending/done
}

// Runner bundles the collaborators every subcommand needs. Store,
// clipboard and the output writers are injected so tests never touch
// real state.
type Runner struct {
	Store *jsonstore.Store
	Clip  clipboard.Clipboard
	Out   io.Writer
	Err   io.Writer
}

func New(store *jsonstore.Store, clip clipboard.Clipboard) *Runner {
	return &Runner{Store: store, Clip: clip, Out: os.Stdout, Err: os.Stderr}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func (r *Runner) Run(args []string, opt Options) int {
	if len(args) == 0 {
		r.printHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		r.printHelp()
		return 0

	case "ls":
		return r.doList(opt)

	case "add":
		if len(a) == 0 {
			ui.Fail(r.Err, "usage: todoclip add <text...>")
			return 2
		}
		return r.doAdd(strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			ui.Fail(r.Err, "usage: todoclip done <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(r.Err, "done: not a number: "+a[0])
			return 2
		}
		return r.doToggle(n)

	case "rm":
		if len(a) != 1 {
			ui.Fail(r.Err, "usage: todoclip rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(r.Err, "rm: not a number: "+a[0])
			return 2
		}
		return r.doRemove(n)

	case "export":
		return r.doExport(formatArg(a))

	case "copy":
		return r.doCopy(formatArg(a))

	case "paste":
		return r.doPaste()
	}

	ui.Fail(r.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(r.Err)
	r.printHelp()
	return 2
}

func (r *Runner) printHelp() {
	fmt.Fprintf(r.Out, `todoclip - a tiny todo CLI with clipboard export

Usage:
  todoclip <subcommand> [args]

Subcommands:
  add <text...>      Add a new item (text can be multiple words)
  ls                 List items (interactive TUI; use -plain for a panel)
  done <index>       Toggle done for item at 1-based index
  rm <index>         Remove item at 1-based index
  export [checklist] Print the list as markdown bullets (or a task list)
  copy [checklist]   Copy the markdown to the clipboard
  paste              Add the URL currently on the clipboard as an item

Examples:
  todoclip add "Buy milk"
  todoclip ls
  todoclip done 2
  todoclip export | pbcopy
  todoclip copy checklist
`)
}

// formatArg extracts the optional serialization format argument.
func formatArg(a []string) string {
	if len(a) == 0 {
		return ""
	}
	return a[0]
}

// serialize maps a format name onto an exporter. Empty means markdown.
func serialize(items []model.Todo, format string) (string, bool) {
	switch format {
	case "", "md", "markdown":
		return export.Markdown(items), true
	case "checklist":
		return export.Checklist(items), true
	}
	return "", false
}

// -------------- subcommand impls ----------------

func (r *Runner) doList(opt Options) int {
	items, err := r.Store.Load()
	if err != nil {
		ui.Fail(r.Err, "load: "+err.Error())
		return 1
	}

	if !opt.Plain {
		// The interactive TUI saves on quit if anything changed.
		if err := tui.Run(items, r.Store, r.Clip, r.Out); err != nil {
			ui.Fail(r.Err, "tui: "+err.Error())
			return 1
		}
		return 0
	}

	dn, pn := model.Stats(items)
	lines := []string{
		ui.Header{TotalCount: len(items)}.View(),
		ui.Muted.Render(ui.ProgressBar(dn, dn+pn, 28)),
		"",
	}
	if opt.Group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "", ui.Muted.Render("Tip: add with `todoclip add \"Buy milk\"`"))
	fmt.Fprintln(r.Out, ui.Panel(lines))
	return 0
}

func (r *Runner) doAdd(text string) int {
	items, err := r.Store.Load()
	if err != nil {
		ui.Fail(r.Err, "load: "+err.Error())
		return 1
	}
	text = strings.TrimSpace(text)
	if text == "" {
		ui.Fail(r.Err, "add: empty text")
		return 2
	}
	items = append(items, model.New(text))
	if err := r.Store.Save(items); err != nil {
		ui.Fail(r.Err, "save: "+err.Error())
		return 1
	}
	logging.L().Debug().Str("text", text).Msg("added item")
	ui.OK(r.Out, "added")
	return 0
}

func (r *Runner) doToggle(userIndex int) int {
	items, err := r.Store.Load()
	if err != nil {
		ui.Fail(r.Err, "load: "+err.Error())
		return 1
	}
	if userIndex < 1 || userIndex > len(items) {
		ui.Fail(r.Err, fmt.Sprintf("index out of range: have %d, got %d", len(items), userIndex))
		fmt.Fprintln(r.Err, ui.Muted.Render("Hint: run `todoclip ls` to see valid indexes"))
		return 2
	}
	idx := userIndex - 1
	items[idx].Done = !items[idx].Done
	if err := r.Store.Save(items); err != nil {
		ui.Fail(r.Err, "save: "+err.Error())
		return 1
	}
	ui.OK(r.Out, "toggled")
	return 0
}

func (r *Runner) doRemove(userIndex int) int {
	items, err := r.Store.Load()
	if err != nil {
		ui.Fail(r.Err, "load: "+err.Error())
		return 1
	}
	if userIndex < 1 || userIndex > len(items) {
		ui.Fail(r.Err, fmt.Sprintf("index out of range: have %d, got %d", len(items), userIndex))
		fmt.Fprintln(r.Err, ui.Muted.Render("Hint: run `todoclip ls` to see valid indexes"))
		return 2
	}
	idx := userIndex - 1
	items = append(items[:idx], items[idx+1:]...)
	if err := r.Store.Save(items); err != nil {
		ui.Fail(r.Err, "save: "+err.Error())
		return 1
	}
	ui.OK(r.Out, "removed")
	return 0
}

func (r *Runner) doExport(format string) int {
	items, err := r.Store.Load()
	if err != nil {
		ui.Fail(r.Err, "load: "+err.Error())
		return 1
	}
	s, okFormat := serialize(items, format)
	if !okFormat {
		ui.Fail(r.Err, "export: unknown format: "+format)
		return 2
	}
	fmt.Fprintln(r.Out, s)
	return 0
}

func (r *Runner) doCopy(format string) int {
	items, err := r.Store.Load()
	if err != nil {
		ui.Fail(r.Err, "load: "+err.Error())
		return 1
	}
	s, okFormat := serialize(items, format)
	if !okFormat {
		ui.Fail(r.Err, "copy: unknown format: "+format)
		return 2
	}
	if err := r.Clip.WriteAll(s); err != nil {
		ui.Fail(r.Err, "copy: "+err.Error())
		return 1
	}
	logging.L().Debug().Int("count", len(items)).Msg("copied list to clipboard")
	ui.OK(r.Out, fmt.Sprintf("copied %d items", len(items)))
	return 0
}

func (r *Runner) doPaste() int {
	text, err := clipboard.ReadURL(r.Clip)
	if err != nil {
		ui.Fail(r.Err, "paste: "+err.Error())
		return 1
	}
	items, err := r.Store.Load()
	if err != nil {
		ui.Fail(r.Err, "load: "+err.Error())
		return 1
	}
	items = append(items, model.New(text))
	if err := r.Store.Save(items); err != nil {
		ui.Fail(r.Err, "save: "+err.Error())
		return 1
	}
	logging.L().Debug().Str("url", text).Msg("pasted url from clipboard")
	ui.OK(r.Out, "added "+text)
	return 0
}

// -------------- rendering helpers --------------

func flatLines(items []model.Todo) []string {
	if len(items) == 0 {
		return []string{ui.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := ui.Muted.Render(ui.BoxUnchecked)
		text := it.Text
		if len(text) > 80 {
			text = text[:77] + "..."
		}
		if it.Done {
			box = ui.Success.Render(ui.BoxChecked)
			text = ui.DoneItem.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", ui.Muted.Render(idx), box, text))
	}
	return out
}

func groupLines(items []model.Todo) []string {
	var pend, done []model.Todo
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, ui.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, ui.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
