package api

import (
	"sync"

	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/trie"
)

// Store guards a trie for concurrent use. Inserts take the write lock and
// both searches share the read lock, since lookups never mutate the trie.
type Store struct {
	mu   sync.RWMutex
	trie *trie.Trie
}

// NewStore wraps t. The caller must not use t directly afterwards.
func NewStore(t *trie.Trie) *Store {
	return &Store{trie: t}
}

// Insert adds word to the underlying trie
func (s *Store) Insert(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trie.Insert(word)
}

// SearchFullWord reports whether word was inserted
func (s *Store) SearchFullWord(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.SearchFullWord(word)
}

// SearchPrefix reports whether any inserted word starts with prefix
func (s *Store) SearchPrefix(prefix string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.SearchPrefix(prefix)
}
