// Package trie implements the prefix tree that guides move generation.
//
// Nodes live in a single arena slice and refer to their children by index,
// through a fixed 26-slot array per node. Child lookup is therefore O(1) and
// the structure has no pointer graph to chase. A variant of the structure in
// Appel and Jacobson's paper; a trie rather than a dawg, so no minimization.
package trie

import "github.com/wlei/scrabbl/alphabet"

// NoChild marks an absent child slot.
const NoChild int32 = -1

// RootLetter is the sentinel letter of the root node.
const RootLetter rune = '*'

type node struct {
	letter   rune
	terminal bool
	children [alphabet.NumLetters]int32
}

// Trie is a prefix tree over the playable dictionary. It is built once and
// read-only afterwards; it may be shared freely between searches.
type Trie struct {
	nodes []node
}

// New creates a Trie containing only the root node.
func New() *Trie {
	t := &Trie{nodes: make([]node, 0, 256)}
	t.addNode(RootLetter)
	return t
}

func (t *Trie) addNode(letter rune) int32 {
	n := node{letter: letter}
	for i := range n.children {
		n.children[i] = NoChild
	}
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

// Eligible returns whether a word can take part in placement search: strictly
// uppercase alphabetic and longer than two letters. Shorter words may still
// be valid for cross-checks; those use an exact lookup elsewhere.
func Eligible(word string) bool {
	if len(word) <= 2 {
		return false
	}
	for _, c := range word {
		if !alphabet.IsLetter(c) {
			return false
		}
	}
	return true
}

// Insert adds all missing prefix nodes for word and marks the final node
// terminal. Ineligible words are ignored. Inserting the same word twice is a
// no-op the second time.
func (t *Trie) Insert(word string) {
	if !Eligible(word) {
		return
	}
	cur := t.Root()
	for _, c := range word {
		idx := alphabet.Val(c)
		child := t.nodes[cur].children[idx]
		if child == NoChild {
			child = t.addNode(c)
			t.nodes[cur].children[idx] = child
		}
		cur = child
	}
	t.nodes[cur].terminal = true
}

// Root returns the index of the root node.
func (t *Trie) Root() int32 {
	return 0
}

// Child returns the child of node n for the given letter index, or NoChild.
func (t *Trie) Child(n int32, letterIdx int) int32 {
	return t.nodes[n].children[letterIdx]
}

// Terminal returns whether some word ends at node n.
func (t *Trie) Terminal(n int32) bool {
	return t.nodes[n].terminal
}

// Letter returns the letter stored at node n (RootLetter for the root).
func (t *Trie) Letter(n int32) rune {
	return t.nodes[n].letter
}

// NumNodes returns the size of the node arena, including the root.
func (t *Trie) NumNodes() int {
	return len(t.nodes)
}

// HasWord descends the trie letter by letter and checks the terminal flag of
// the final node.
func (t *Trie) HasWord(word string) bool {
	if word == "" {
		return false
	}
	cur := t.Root()
	for _, c := range word {
		if !alphabet.IsLetter(c) {
			return false
		}
		cur = t.Child(cur, alphabet.Val(c))
		if cur == NoChild {
			return false
		}
	}
	return t.Terminal(cur)
}
