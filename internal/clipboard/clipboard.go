// Package clipboard abstracts the system clipboard so commands can be
// exercised in tests without touching the real one.
package clipboard

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System is the real clipboard.
type System struct{}

func (System) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (System) WriteAll(text string) error { return clipboard.WriteAll(text) }

// ReadURL reads the clipboard and requires its content to be an
// absolute http(s) URL (the "current URL" copied from a browser).
func ReadURL(c Clipboard) (string, error) {
	raw, err := c.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	text := strings.TrimSpace(raw)
	u, err := url.Parse(text)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("clipboard does not contain a url: %q", text)
	}
	return text, nil
}
