package freq

import "strings"

// Tokenize splits text on runs of whitespace. Punctuation and case are left
// untouched.
func Tokenize(text string) []string {
	return strings.Fields(text)
}
