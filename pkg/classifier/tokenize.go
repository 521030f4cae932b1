package classifier

import "strings"

// UniqueWords returns the distinct whitespace-delimited words of text, in
// first-occurrence order. Duplicate words within one post collapse to a
// single entry, so repeating a word in a post never changes its weight.
func UniqueWords(text string) []string {
	fields := strings.Fields(text)

	seen := make(map[string]bool, len(fields))
	var words []string
	for _, w := range fields {
		if !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}

	return words
}
