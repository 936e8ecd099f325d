package freq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrStopwords is returned when the stopword list cannot be loaded.
var ErrStopwords = errors.New("stopwords unavailable")

// Stopwords is a set of lowercase words excluded from the frequency table.
type Stopwords map[string]struct{}

// Contains reports whether the lowercased form of w is a stopword.
func (s Stopwords) Contains(w string) bool {
	_, ok := s[strings.ToLower(w)]
	return ok
}

// LoadStopwords reads a stopword list from path, one word per line.
// Lines are trimmed and lowercased; a blank line becomes the empty stopword.
func LoadStopwords(path string) (Stopwords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStopwords, err)
	}
	defer f.Close()

	stop, err := ReadStopwords(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStopwords, path, err)
	}
	return stop, nil
}

// ReadStopwords parses a stopword list from r.
func ReadStopwords(r io.Reader) (Stopwords, error) {
	stop := make(Stopwords)
	s := bufio.NewScanner(r)
	for s.Scan() {
		stop[strings.ToLower(strings.TrimSpace(s.Text()))] = struct{}{}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return stop, nil
}

// DefaultStopwords returns a common English stopword set.
func DefaultStopwords() Stopwords {
	ws := []string{
		"a", "an", "the", "and", "or", "but",
		"to", "in", "of", "on", "for", "with", "as", "at", "by", "from",
		"is", "are", "was", "were", "be", "been", "being",
		"this", "that", "these", "those", "it", "its", "itself",
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"they", "them", "their", "theirs", "themselves",
		"do", "does", "did", "doing",
		"have", "has", "had", "having",
		"not", "no", "nor", "only", "very", "too",
		"can", "could", "should", "would", "may", "might", "must", "will",
		"if", "then", "else", "than", "so", "because", "while", "when", "where",
		"about", "above", "below", "under", "over", "into", "out", "up", "down",
		"again", "further", "once", "here", "there",
	}
	m := make(Stopwords, len(ws))
	for _, w := range ws {
		m[w] = struct{}{}
	}
	return m
}

// Filter keeps tokens whose lowercased form is at least two characters long and
// is not a stopword. Kept tokens retain their original case.
func Filter(tokens []string, stop Stopwords) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		lw := strings.ToLower(tok)
		if utf8.RuneCountInString(lw) < 2 {
			continue
		}
		if _, bad := stop[lw]; bad {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}
