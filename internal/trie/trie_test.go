package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrie_InsertAndSearch(t *testing.T) {
	trie := New()

	assert.False(t, trie.SearchFullWord("test"))
	trie.Insert("test")
	assert.True(t, trie.SearchFullWord("test"))

	for _, p := range []string{"t", "te", "tes", "test"} {
		assert.True(t, trie.SearchPrefix(p), "prefix %q", p)
	}

	assert.False(t, trie.SearchFullWord("nonexistent"))
	assert.False(t, trie.SearchPrefix("nonexistent"))
}

func TestTrie_Scenario(t *testing.T) {
	trie := New()
	for _, w := range []string{"hello", "world", "help"} {
		trie.Insert(w)
	}

	tests := []struct {
		name   string
		query  string
		word   bool
		prefix bool
	}{
		{name: "inserted word", query: "hello", word: true, prefix: true},
		{name: "shared prefix", query: "hel", word: false, prefix: true},
		{name: "second branch", query: "help", word: true, prefix: true},
		{name: "prefix of other root branch", query: "wor", word: false, prefix: true},
		{name: "full second word", query: "world", word: true, prefix: true},
		{name: "absent", query: "xyz", word: false, prefix: false},
		{name: "longer than inserted", query: "helloo", word: false, prefix: false},
		{name: "diverges mid word", query: "helm", word: false, prefix: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.word, trie.SearchFullWord(tt.query))
			assert.Equal(t, tt.prefix, trie.SearchPrefix(tt.query))
		})
	}
}

func TestTrie_WordThatIsPrefixOfAnother(t *testing.T) {
	trie := New()
	trie.Insert("apple")
	assert.False(t, trie.SearchFullWord("app"))

	trie.Insert("app")
	assert.True(t, trie.SearchFullWord("app"))
	assert.True(t, trie.SearchFullWord("apple"))
	assert.False(t, trie.SearchFullWord("appl"))

	node := trie.findNode("app")
	require.NotNil(t, node)
	assert.True(t, node.isEnd)
	assert.Len(t, node.children, 1)
}

func TestTrie_Idempotent(t *testing.T) {
	once := New()
	once.Insert("hello")

	twice := New()
	twice.Insert("hello")
	twice.Insert("hello")

	verifyTrieStructure(t, once.root, twice.root)
	assert.True(t, twice.SearchFullWord("hello"))
	assert.True(t, twice.SearchPrefix("hell"))
}

func TestTrie_OrderIndependent(t *testing.T) {
	a := New()
	a.Insert("hello")
	a.Insert("help")

	b := New()
	b.Insert("help")
	b.Insert("hello")

	verifyTrieStructure(t, a.root, b.root)
}

func TestTrie_EmptyWord(t *testing.T) {
	trie := New()

	assert.True(t, trie.SearchPrefix(""), "empty prefix matches an empty trie")
	assert.False(t, trie.SearchFullWord(""))

	trie.Insert("abc")
	assert.True(t, trie.SearchPrefix(""))
	assert.False(t, trie.SearchFullWord(""))

	trie.Insert("")
	assert.True(t, trie.SearchFullWord(""))
	assert.True(t, trie.root.isEnd)
	assert.Len(t, trie.root.children, 1)
}

func TestTrie_Unicode(t *testing.T) {
	trie := New()
	trie.Insert("日本語")
	trie.Insert("日本")

	assert.True(t, trie.SearchPrefix("日"))
	assert.True(t, trie.SearchFullWord("日本"))
	assert.False(t, trie.SearchFullWord("日"))
	assert.Len(t, trie.root.children, 1)
}

func TestTrie_InvalidUTF8(t *testing.T) {
	trie := New()
	trie.Insert("\xff")
	trie.Insert("a\x80b")

	assert.True(t, trie.SearchFullWord("\xff"))
	assert.True(t, trie.SearchFullWord("a\x80b"))
	assert.True(t, trie.SearchPrefix("a\x80"))

	tests := []string{"\xfe", "\uFFFD", "\x80", "a\uFFFDb", "a\x81b"}
	for _, word := range tests {
		assert.False(t, trie.SearchFullWord(word), "word %q", word)
		assert.False(t, trie.SearchPrefix(word), "prefix %q", word)
	}
}

func TestRuneSegmenter_Keys(t *testing.T) {
	var keys []string
	for k := range RuneSegmenter("h\xff\u00e9\xe6\x97") {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"h", "\xff", "\u00e9", "\xe6", "\x97"}, keys)
}

func TestTrie_Segmenters(t *testing.T) {
	const decomposed = "cafe\u0301"
	const flag = "\U0001F1E9\U0001F1EA"

	tests := []struct {
		name      string
		segmenter Segmenter
		prefix    string
		want      bool
	}{
		{name: "rune splits combining mark", segmenter: RuneSegmenter, prefix: "cafe", want: true},
		{name: "grapheme keeps combining mark", segmenter: GraphemeSegmenter, prefix: "cafe", want: false},
		{name: "rune splits flag", segmenter: RuneSegmenter, prefix: "\U0001F1E9", want: true},
		{name: "grapheme keeps flag", segmenter: GraphemeSegmenter, prefix: "\U0001F1E9", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trie := New(WithSegmenter(tt.segmenter))
			trie.Insert(decomposed)
			trie.Insert(flag)

			assert.True(t, trie.SearchFullWord(decomposed))
			assert.True(t, trie.SearchFullWord(flag))
			assert.Equal(t, tt.want, trie.SearchPrefix(tt.prefix))
		})
	}
}

func TestGraphemeSegmenter_Keys(t *testing.T) {
	var keys []string
	for k := range GraphemeSegmenter("ae\u0301b") {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "e\u0301", "b"}, keys)
}

func TestRuneSegmenter_StopsEarly(t *testing.T) {
	var keys []string
	for k := range RuneSegmenter("abcdef") {
		keys = append(keys, k)
		if len(keys) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestWithSegmenter_NilKeepsDefault(t *testing.T) {
	trie := New(WithSegmenter(nil))
	trie.Insert("go")
	assert.True(t, trie.SearchPrefix("g"))
}

func verifyTrieStructure(t *testing.T, expected, actual *Node) {
	t.Helper()

	assert.Equal(t, expected.isEnd, actual.isEnd, "isEnd mismatch")
	require.Equal(t, len(expected.children), len(actual.children), "number of children mismatch")

	for ch, expectedChild := range expected.children {
		actualChild, exists := actual.children[ch]
		if !assert.True(t, exists, "missing child with character %q", ch) {
			continue
		}
		verifyTrieStructure(t, expectedChild, actualChild)
	}
}
