package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wlei/scrabbl/alphabet"
	"github.com/wlei/scrabbl/lexicon"
	"github.com/wlei/scrabbl/move"
)

func testLexicon(t *testing.T, words ...string) *lexicon.Lexicon {
	t.Helper()
	lex, err := lexicon.NewLexicon(words, alphabet.EnglishLetterDistribution())
	assert.NoError(t, err)
	return lex
}

func TestMakeBoard(t *testing.T) {
	b := MakeBoard(CrosswordGameBoard)
	assert.Equal(t, 15, b.Dim())
	assert.True(t, b.IsEmpty())

	// The sentinel ring surrounds the playable grid.
	assert.True(t, b.GetSquare(0, 0).OutOfBounds())
	assert.True(t, b.GetSquare(0, 8).OutOfBounds())
	assert.True(t, b.GetSquare(16, 8).OutOfBounds())
	assert.True(t, b.GetSquare(8, 16).OutOfBounds())
	assert.False(t, b.GetSquare(1, 1).OutOfBounds())
	assert.False(t, b.GetSquare(15, 15).OutOfBounds())

	// Spot-check the bonus layout.
	assert.Equal(t, Bonus3WS, b.GetBonus(1, 1))
	assert.Equal(t, Bonus2WS, b.GetBonus(8, 8))
	assert.Equal(t, Bonus2LS, b.GetBonus(1, 4))
	assert.Equal(t, Bonus3LS, b.GetBonus(2, 6))
	assert.Equal(t, NoBonus, b.GetBonus(1, 2))
}

func TestBoardIsEmpty(t *testing.T) {
	b := MakeBoard(CrosswordGameBoard)
	assert.True(t, b.IsEmpty())
	b.SetLetter(8, 8, 'Q')
	assert.False(t, b.IsEmpty())
	b.SetLetter(8, 8, alphabet.EmptySquareMarker)
	assert.True(t, b.IsEmpty())
}

func TestBoardCopy(t *testing.T) {
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(8, "  CEDARS")
	cp := b.Copy()
	assert.True(t, b.Equals(cp))

	cp.SetLetter(8, 3, 'B')
	assert.False(t, b.Equals(cp))
	assert.Equal(t, 'C', b.GetLetter(8, 3))
}

func TestTransposeRoundTrip(t *testing.T) {
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(4, "   HELLO")
	b.SetLetter(9, 12, 'Z')

	tr := b.Transposed()
	assert.Equal(t, 'H', tr.GetLetter(4, 4))
	assert.Equal(t, 'Z', tr.GetLetter(12, 9))

	back := tr.Transposed()
	assert.True(t, b.Equals(back))
}

func TestTransposeMovesBonuses(t *testing.T) {
	// The standard layout is symmetric about the main diagonal, so use a
	// hand-built asymmetric one.
	small := MakeBoard([]string{
		"=  ",
		"'  ",
		"   ",
	})
	tr := small.Transposed()
	assert.Equal(t, Bonus3WS, tr.GetBonus(1, 1))
	assert.Equal(t, Bonus2LS, tr.GetBonus(1, 2))
	assert.Equal(t, NoBonus, tr.GetBonus(2, 1))
}

func TestCrossSetBasics(t *testing.T) {
	cs := CrossSet(0)
	assert.False(t, cs.Allowed(alphabet.Val('A')))
	cs.Set(alphabet.Val('A'))
	cs.Set(alphabet.Val('Z'))
	assert.True(t, cs.Allowed(alphabet.Val('A')))
	assert.True(t, cs.Allowed(alphabet.Val('Z')))
	assert.False(t, cs.Allowed(alphabet.Val('M')))

	cs.SetAll()
	for i := 0; i < alphabet.NumLetters; i++ {
		assert.True(t, cs.Allowed(i))
	}

	cs.Clear()
	assert.Equal(t, CrossSet(0), cs)

	assert.Equal(t, CrossSetFromString("AO"), CrossSetFromString("OA"))
}

func TestUpdateCrossSets(t *testing.T) {
	lex := testLexicon(t, "CAT", "COT", "CAB")
	b := MakeBoard(CrosswordGameBoard)
	// C above and T below the target square, in a column.
	b.SetLetter(7, 8, 'C')
	b.SetLetter(9, 8, 'T')
	b.UpdateCrossSets(lex)

	cs := b.GetSquare(8, 8).CrossSet()
	assert.Equal(t, CrossSetFromString("AO"), cs)

	// Untouched squares far from any tile keep the trivial set.
	assert.Equal(t, CrossSet(TrivialCrossSet), b.GetSquare(1, 1).CrossSet())
}

func TestUpdateCrossSetsBlank(t *testing.T) {
	lex := testLexicon(t, "AN", "ON")
	b := MakeBoard(CrosswordGameBoard)
	// A blank played as N still constrains the square above it.
	b.SetLetter(9, 8, 'n')
	b.UpdateCrossSets(lex)
	assert.Equal(t, CrossSetFromString("AO"), b.GetSquare(8, 8).CrossSet())
}

func TestUpdateCrossSetsDeadSquare(t *testing.T) {
	lex := testLexicon(t, "CAT")
	b := MakeBoard(CrosswordGameBoard)
	b.SetLetter(7, 8, 'X')
	b.SetLetter(9, 8, 'X')
	b.UpdateCrossSets(lex)
	// No letter completes X_X, so nothing is allowed here.
	assert.Equal(t, CrossSet(0), b.GetSquare(8, 8).CrossSet())
}

func TestUpdateMinWordLengths(t *testing.T) {
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(8, "       C")
	b.UpdateMinWordLengths()

	// The square right of the tile can never start an extension: a word
	// starting there would be the tail of a longer word through the tile.
	assert.Equal(t, NoAnchor, b.GetSquare(8, 9).MinWordLength())
	// Touching squares (and the tile itself) need a single connecting tile.
	assert.Equal(t, 1, b.GetSquare(7, 8).MinWordLength())
	assert.Equal(t, 1, b.GetSquare(9, 8).MinWordLength())
	assert.Equal(t, 1, b.GetSquare(8, 7).MinWordLength())
	assert.Equal(t, 1, b.GetSquare(8, 8).MinWordLength())
	// Squares further left inherit previous+1.
	assert.Equal(t, 2, b.GetSquare(8, 6).MinWordLength())
	assert.Equal(t, 3, b.GetSquare(8, 5).MinWordLength())
	assert.Equal(t, 7, b.GetSquare(8, 1).MinWordLength())
	// Rows with no tile anywhere near stay unusable.
	assert.Equal(t, NoAnchor, b.GetSquare(1, 1).MinWordLength())
	assert.Equal(t, NoAnchor, b.GetSquare(15, 15).MinWordLength())
}

func TestUpdateMinWordLengthsAdjacentRow(t *testing.T) {
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(8, "       C")
	b.UpdateMinWordLengths()

	// Row 7 sees the tile below it at col 8, so it anchors there too.
	assert.Equal(t, 1, b.GetSquare(7, 8).MinWordLength())
	assert.Equal(t, 2, b.GetSquare(7, 7).MinWordLength())
	// Right of the anchor, nothing connects.
	assert.Equal(t, NoAnchor, b.GetSquare(7, 9).MinWordLength())
}

func TestPlayMove(t *testing.T) {
	lex := testLexicon(t, "CAT", "AT")
	b := MakeBoard(CrosswordGameBoard)
	m := move.NewScoringMove([]move.PlacedTile{
		{Row: 8, Col: 7, Letter: 'C'},
		{Row: 8, Col: 8, Letter: 'A'},
		{Row: 8, Col: 9, Letter: 'T'},
	}, 10, false)
	b.PlayMove(m, lex)

	assert.Equal(t, 'C', b.GetLetter(8, 7))
	assert.Equal(t, 'A', b.GetLetter(8, 8))
	assert.Equal(t, 'T', b.GetLetter(8, 9))
	assert.False(t, b.IsEmpty())
	// Cross-checks and min lengths were refreshed as part of the play.
	assert.Equal(t, 1, b.GetSquare(7, 7).MinWordLength())
	// Above the T, only an A completes a vertical word.
	assert.Equal(t, CrossSetFromString("A"), b.GetSquare(7, 9).CrossSet())
}
