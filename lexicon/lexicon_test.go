package lexicon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wlei/scrabbl/alphabet"
)

func TestNewLexiconEmptyDictionary(t *testing.T) {
	_, err := NewLexicon(nil, alphabet.EnglishLetterDistribution())
	var de *DataError
	assert.True(t, errors.As(err, &de))

	_, err = NewLexicon([]string{"", "  "}, alphabet.EnglishLetterDistribution())
	assert.True(t, errors.As(err, &de))
}

func TestNewLexiconMissingPointValue(t *testing.T) {
	dist := alphabet.EnglishLetterDistribution()
	delete(dist.PointValues, 'Q')
	_, err := NewLexicon([]string{"CAT"}, dist)
	var de *DataError
	assert.True(t, errors.As(err, &de))

	dist = alphabet.EnglishLetterDistribution()
	delete(dist.PointValues, alphabet.BlankToken)
	_, err = NewLexicon([]string{"CAT"}, dist)
	assert.True(t, errors.As(err, &de))
}

func TestHasWordAnyLength(t *testing.T) {
	lex, err := NewLexicon([]string{"at", "cat", "CEDARS"},
		alphabet.EnglishLetterDistribution())
	assert.NoError(t, err)

	// Exact membership is case-normalized and length-unrestricted.
	assert.True(t, lex.HasWord("AT"))
	assert.True(t, lex.HasWord("CAT"))
	assert.True(t, lex.HasWord("CEDARS"))
	assert.False(t, lex.HasWord("DOG"))

	// The trie only carries words eligible for placement search.
	assert.False(t, lex.Trie().HasWord("AT"))
	assert.True(t, lex.Trie().HasWord("CAT"))
}

func TestScore(t *testing.T) {
	lex, err := NewLexicon([]string{"CAT"}, alphabet.EnglishLetterDistribution())
	assert.NoError(t, err)
	assert.Equal(t, 10, lex.Score('Q'))
	assert.Equal(t, 1, lex.Score('A'))
	// Blanks score nothing, whatever they stand for.
	assert.Equal(t, 0, lex.Score('q'))
	assert.Equal(t, 0, lex.Score(alphabet.EmptySquareMarker))
}
