// Package tries implements prefix trees over lowercase ASCII words and the
// puzzles built on them: the plain Trie (insert, search, prefix test), a word
// dictionary with '.' wildcards, root replacement, and the longest word that
// can be built one character at a time.
//
// Nodes hold a fixed 26-way child array, so every step is O(1) and a lookup
// is O(len(word)). Characters outside 'a'..'z' are rejected with ErrBadChar.
package tries

import (
	"errors"
	"fmt"
)

// ErrBadChar indicates a character outside 'a'..'z'.
var ErrBadChar = errors.New("tries: only lowercase ascii letters are supported")

type node struct {
	next [26]*node
	end  bool
}

// Trie is a prefix tree.
type Trie struct {
	root *node
	size int
}

// NewTrie returns an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: &node{}}
}

func checkWord(w string) error {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return fmt.Errorf("%w: %q at %d in %q", ErrBadChar, w[i], i, w)
		}
	}

	return nil
}

// Insert adds word to the trie.
func (t *Trie) Insert(word string) error {
	if err := checkWord(word); err != nil {
		return err
	}
	n := t.root
	for i := 0; i < len(word); i++ {
		c := word[i] - 'a'
		if n.next[c] == nil {
			n.next[c] = &node{}
		}
		n = n.next[c]
	}
	if !n.end {
		n.end = true
		t.size++
	}

	return nil
}

// walk follows s from the root and returns the node reached, or nil.
func (t *Trie) walk(s string) *node {
	n := t.root
	for i := 0; i < len(s) && n != nil; i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return nil
		}
		n = n.next[c-'a']
	}

	return n
}

// Search reports whether word was inserted.
func (t *Trie) Search(word string) bool {
	n := t.walk(word)

	return n != nil && n.end
}

// StartsWith reports whether any inserted word starts with prefix.
func (t *Trie) StartsWith(prefix string) bool {
	return t.walk(prefix) != nil
}

// Len returns the number of distinct words.
func (t *Trie) Len() int { return t.size }

// ShortestPrefix returns the shortest inserted word that is a prefix of s.
func (t *Trie) ShortestPrefix(s string) (string, bool) {
	n := t.root
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' || n.next[c-'a'] == nil {
			return "", false
		}
		n = n.next[c-'a']
		if n.end {
			return s[:i+1], true
		}
	}

	return "", false
}
