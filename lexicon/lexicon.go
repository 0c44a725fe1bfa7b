// Package lexicon holds the immutable context for a search: the dictionary,
// the trie built from its playable subset, and the tile point values. A
// Lexicon is constructed once and shared by reference across searches.
package lexicon

import (
	"fmt"
	"strings"

	"github.com/wlei/scrabbl/alphabet"
	"github.com/wlei/scrabbl/trie"
)

// DataError indicates malformed or missing dictionary, tile-value, or board
// input. It is surfaced at construction or load time; the search itself
// never raises it.
type DataError struct {
	msg string
}

func (e *DataError) Error() string {
	return e.msg
}

// NewDataError creates a DataError with a formatted message.
func NewDataError(format string, args ...interface{}) *DataError {
	return &DataError{msg: fmt.Sprintf(format, args...)}
}

// Lexicon is the dictionary context. The word set answers exact membership
// (used by cross-checks, including words too short for placement search);
// the trie guides the placement search itself.
type Lexicon struct {
	words map[string]struct{}
	tr    *trie.Trie
	dist  *alphabet.LetterDistribution
}

// NewLexicon builds the word set and trie from a dictionary and a tile
// distribution. Words are case-normalized to uppercase. It returns a
// DataError if the dictionary is empty or the distribution is missing a
// point value for any letter or the blank.
func NewLexicon(words []string, dist *alphabet.LetterDistribution) (*Lexicon, error) {
	if len(words) == 0 {
		return nil, NewDataError("lexicon: empty dictionary")
	}
	for i := 0; i < alphabet.NumLetters; i++ {
		if _, ok := dist.PointValues[alphabet.Letter(i)]; !ok {
			return nil, NewDataError("lexicon: missing point value for %v",
				string(alphabet.Letter(i)))
		}
	}
	if _, ok := dist.PointValues[alphabet.BlankToken]; !ok {
		return nil, NewDataError("lexicon: missing point value for the blank")
	}
	lex := &Lexicon{
		words: make(map[string]struct{}, len(words)),
		tr:    trie.New(),
		dist:  dist,
	}
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		lex.words[w] = struct{}{}
		lex.tr.Insert(w)
	}
	if len(lex.words) == 0 {
		return nil, NewDataError("lexicon: empty dictionary")
	}
	return lex, nil
}

// HasWord answers exact membership for an uppercase word, regardless of
// length.
func (lex *Lexicon) HasWord(word string) bool {
	_, ok := lex.words[word]
	return ok
}

// Trie returns the placement-search trie.
func (lex *Lexicon) Trie() *trie.Trie {
	return lex.tr
}

// Score returns the point value of a board tile (0 for blanks).
func (lex *Lexicon) Score(r rune) int {
	return lex.dist.Score(r)
}

// Distribution returns the tile distribution this lexicon was built with.
func (lex *Lexicon) Distribution() *alphabet.LetterDistribution {
	return lex.dist
}
