// Package source provides the text providers a word-frequency run can read
// from: an inline string, a local file, a single web page, or a small crawl of
// one site.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/xhy51/wordfreq/internal/freq"
	"github.com/xhy51/wordfreq/internal/logger"
)

// DefaultText is analysed when no other source is configured.
const DefaultText = "This is my first Go program"

var (
	_ freq.Source = Literal("")
	_ freq.Source = File("")
	_ freq.Source = (*Web)(nil)
	_ freq.Source = (*Site)(nil)
)

// Literal is a fixed string of text.
type Literal string

// Text returns the literal itself.
func (l Literal) Text(context.Context) (string, error) { return string(l), nil }

// String describes the source for run history.
func (l Literal) String() string { return "text" }

// File reads text from a path. "-" reads standard input.
type File string

// Text reads the whole file.
func (f File) Text(context.Context) (string, error) {
	if f == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(string(f))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (f File) String() string {
	if f == "-" {
		return "stdin"
	}
	return "file:" + string(f)
}

// Web fetches one HTML page and extracts its visible text.
type Web struct {
	URL    string
	Client *http.Client // nil means http.DefaultClient
}

// Text downloads the page. Network failures and non-2xx responses are errors.
func (w *Web) Text(ctx context.Context) (string, error) {
	logger.Debug("fetching %s", w.URL)
	body, err := Download(ctx, w.Client, w.URL)
	if err != nil {
		return "", err
	}
	text, _ := Extract(body)
	logger.Debug("extracted %d bytes of text from %d bytes of HTML", len(text), len(body))
	return text, nil
}

func (w *Web) String() string { return w.URL }
