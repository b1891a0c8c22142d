// Package dictionary loads line-oriented word lists into a trie.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxLineSize is the longest line Load accepts.
const MaxLineSize = 64 * 1024

// ErrLineTooLong is returned when a line exceeds MaxLineSize.
var ErrLineTooLong = errors.New("dictionary line too long")

// Inserter is anything words can be inserted into.
type Inserter interface {
	Insert(word string)
}

// Load reads one word per line from r and inserts it into dst. Surrounding
// whitespace is trimmed; blank lines and lines starting with '#' are
// skipped. It returns the number of words inserted before any error.
func Load(r io.Reader, dst Inserter) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineSize)

	count := 0
	line := 0
	for scanner.Scan() {
		line++
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		dst.Insert(word)
		count++
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return count, fmt.Errorf("line %d: %w", line+1, ErrLineTooLong)
		}
		return count, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return count, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, dst Inserter) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer f.Close()

	n, err := Load(f, dst)
	if err != nil {
		return n, fmt.Errorf("dictionary %s: %w", path, err)
	}
	return n, nil
}
