package trie

// Insert adds word to the trie. Inserting the same word again has no
// further effect. The empty word marks the root.
func (t *Trie) Insert(word string) {
	node := t.root
	for ch := range t.segment(word) {
		next := node.child(ch)
		if next == nil {
			next = newNode()
			node.children[ch] = next
		}
		node = next
	}
	node.isEnd = true
}

// SearchFullWord reports whether word was previously inserted.
func (t *Trie) SearchFullWord(word string) bool {
	node := t.findNode(word)
	return node != nil && node.isEnd
}

// SearchPrefix reports whether some inserted word begins with prefix.
// The empty prefix always matches.
func (t *Trie) SearchPrefix(prefix string) bool {
	return t.findNode(prefix) != nil
}

// findNode returns the node corresponding to the key, or nil if not found
func (t *Trie) findNode(key string) *Node {
	node := t.root
	for ch := range t.segment(key) {
		node = node.child(ch)
		if node == nil {
			return nil
		}
	}
	return node
}
