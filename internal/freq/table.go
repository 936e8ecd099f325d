package freq

import "slices"

// Entry is a token together with its number of occurrences.
type Entry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Table maps each distinct token to its count. Tokens are compared exactly,
// so "Cat" and "cat" are different keys.
type Table struct {
	counts map[string]int
	order  []string // first-encounter order
}

// Count tallies tokens in a single pass.
func Count(tokens []string) *Table {
	t := &Table{counts: make(map[string]int)}
	for _, tok := range tokens {
		if _, seen := t.counts[tok]; !seen {
			t.order = append(t.order, tok)
		}
		t.counts[tok]++
	}
	return t
}

// Len returns the number of distinct tokens.
func (t *Table) Len() int { return len(t.order) }

// Get returns the count for tok, or 0 if it never occurred.
func (t *Table) Get(tok string) int { return t.counts[tok] }

// Total returns the sum of all counts.
func (t *Table) Total() int {
	var n int
	for _, c := range t.counts {
		n += c
	}
	return n
}

// Ranked returns the entries ordered by count descending. Entries with equal
// counts keep the order in which their tokens were first seen.
func (t *Table) Ranked() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, tok := range t.order {
		entries = append(entries, Entry{Token: tok, Count: t.counts[tok]})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Count - a.Count
	})
	return entries
}

// Top returns at most n leading entries. A non-positive n returns all of them.
func Top(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
