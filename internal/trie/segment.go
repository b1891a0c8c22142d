package trie

import (
	"iter"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Segmenter splits a string into the character keys used as trie edges.
// Insert and the searches of one Trie always use the same Segmenter.
type Segmenter func(s string) iter.Seq[string]

// RuneSegmenter yields one key per Unicode code point, as the raw bytes
// that encode it. Each invalid UTF-8 byte is its own key, so it never
// collides with U+FFFD or with another invalid byte.
func RuneSegmenter(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(s) > 0 {
			_, size := utf8.DecodeRuneInString(s)
			if !yield(s[:size]) {
				return
			}
			s = s[size:]
		}
	}
}

// GraphemeSegmenter yields one key per extended grapheme cluster, so a
// base letter followed by combining marks, or a flag emoji, is a single
// edge.
func GraphemeSegmenter(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		g := uniseg.NewGraphemes(s)
		for g.Next() {
			if !yield(g.Str()) {
				return
			}
		}
	}
}
