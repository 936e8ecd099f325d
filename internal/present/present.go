// Package present renders ranked frequency lists.
package present

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/xhy51/wordfreq/internal/freq"
)

// Presenter writes a ranked list somewhere.
type Presenter interface {
	Present(entries []freq.Entry) error
}

var (
	_ Presenter = (*Lines)(nil)
	_ Presenter = (*JSON)(nil)
	_ Presenter = (*Chart)(nil)
)

// Lines prints one "token:count" line per entry.
type Lines struct {
	W io.Writer
}

// Present writes every entry in order.
func (l *Lines) Present(entries []freq.Entry) error {
	bw := bufio.NewWriter(l.W)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s:%d\n", e.Token, e.Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// JSON prints the entries as an indented JSON array.
type JSON struct {
	W io.Writer
}

// Present encodes entries; an empty list is written as [].
func (j *JSON) Present(entries []freq.Entry) error {
	if entries == nil {
		entries = []freq.Entry{}
	}
	enc := json.NewEncoder(j.W)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
