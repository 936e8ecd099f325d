package freq

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

// internal stemmer
func stem(w string) string { return english.Stem(strings.ToLower(w), true) }

// stemAll maps every token to its stem, dropping tokens that stem to nothing.
func stemAll(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if s := stem(tok); s != "" {
			out = append(out, s)
		}
	}
	return out
}
