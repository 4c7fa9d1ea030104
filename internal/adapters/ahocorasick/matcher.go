// Package ahocorasick provides a word-search engine built on an Aho-Corasick automaton.
// It wraps the petar-dambovaliev/aho-corasick library: every distinct word is compiled
// into one automaton, and each grid line along an enabled direction is scanned once
// with overlapping matching, so cost is O(cells × directions + matches) regardless of
// how many words are searched.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// TextScanner wraps an Aho-Corasick automaton for overlapping text scanning.
// Patterns must be distinct and non-empty.
type TextScanner struct {
	automaton aho.AhoCorasick
}

// NewTextScanner builds a text scanner from the given patterns.
func NewTextScanner(patterns []string) *TextScanner {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	return &TextScanner{automaton: builder.Build(patterns)}
}

// CountInto adds one to counts[i] for every match of pattern i in content.
func (s *TextScanner) CountInto(counts []int, content string) {
	iter := s.automaton.IterOverlappingByte([]byte(content))
	for next := iter.Next(); next != nil; next = iter.Next() {
		counts[next.Pattern()]++
	}
}
