package trie

// Node represents a node in the trie
type Node struct {
	// children maps the next character to the child node
	children map[string]*Node

	// isEnd marks if this node represents the end of an inserted word
	isEnd bool
}

// newNode creates a new trie node
func newNode() *Node {
	return &Node{
		children: make(map[string]*Node),
		isEnd:    false,
	}
}

// child returns the child reached by ch, or nil if there is none.
func (n *Node) child(ch string) *Node {
	return n.children[ch]
}

// Trie represents a prefix tree over a set of words. It is not safe for
// concurrent use; callers that share a Trie across goroutines must guard
// Insert with an exclusive lock.
type Trie struct {
	root    *Node
	segment Segmenter
}

// Option configures a Trie at construction time.
type Option func(*Trie)

// WithSegmenter sets how words are split into characters. The default is
// RuneSegmenter.
func WithSegmenter(s Segmenter) Option {
	return func(t *Trie) {
		if s != nil {
			t.segment = s
		}
	}
}

// New creates a new empty trie
func New(opts ...Option) *Trie {
	t := &Trie{
		root:    newNode(),
		segment: RuneSegmenter,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
