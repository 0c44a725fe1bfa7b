package board

import (
	"strings"

	"github.com/wlei/scrabbl/alphabet"
	"github.com/wlei/scrabbl/lexicon"
)

const (
	// TrivialCrossSet allows every possible letter. It is the state of a
	// square with no tiles above or below it.
	TrivialCrossSet = (1 << alphabet.NumLetters) - 1
)

// A CrossSet is a bit mask of letters that are allowed on a square. Since we
// generate moves horizontally (down moves run on a transposed board), the
// cross set of a square is derived from the tiles directly above and below
// it: a letter is in the set if the vertical word it completes is in the
// dictionary.
type CrossSet uint32

func (c CrossSet) Allowed(letterIdx int) bool {
	return c&(1<<uint32(letterIdx)) != 0
}

func (c *CrossSet) Set(letterIdx int) {
	*c = *c | (1 << uint32(letterIdx))
}

func (c *CrossSet) SetAll() {
	*c = TrivialCrossSet
}

func (c *CrossSet) Clear() {
	*c = 0
}

// CrossSetFromString builds a cross set from the given letters; test helper
// territory, mostly.
func CrossSetFromString(letters string) CrossSet {
	c := CrossSet(0)
	for _, l := range letters {
		c.Set(alphabet.Val(l))
	}
	return c
}

// aboveFragment collects the contiguous tiles directly above the square, in
// top-to-bottom order, uppercased.
func (g *GameBoard) aboveFragment(row, col int) string {
	var sb strings.Builder
	start := row - 1
	for !g.squares[start][col].IsEmpty() && !g.squares[start][col].OutOfBounds() {
		start--
	}
	for r := start + 1; r < row; r++ {
		sb.WriteRune(alphabet.Unblank(g.squares[r][col].letter))
	}
	return sb.String()
}

// belowFragment collects the contiguous tiles directly below the square, in
// top-to-bottom order, uppercased.
func (g *GameBoard) belowFragment(row, col int) string {
	var sb strings.Builder
	for r := row + 1; !g.squares[r][col].IsEmpty() && !g.squares[r][col].OutOfBounds(); r++ {
		sb.WriteRune(alphabet.Unblank(g.squares[r][col].letter))
	}
	return sb.String()
}

// UpdateCrossSets recomputes the cross-check set of every empty playable
// square. This is a full-board recomputation, done after every committed
// move; it is bounded by the board size.
func (g *GameBoard) UpdateCrossSets(lex *lexicon.Lexicon) {
	for row := 1; row <= g.Dim(); row++ {
		for col := 1; col <= g.Dim(); col++ {
			sq := g.squares[row][col]
			if !sq.IsEmpty() {
				continue
			}
			above := g.aboveFragment(row, col)
			below := g.belowFragment(row, col)
			if above == "" && below == "" {
				sq.crossSet.SetAll()
				continue
			}
			sq.crossSet.Clear()
			for i := 0; i < alphabet.NumLetters; i++ {
				word := above + string(alphabet.Letter(i)) + below
				if lex.HasWord(word) {
					sq.crossSet.Set(i)
				}
			}
		}
	}
}
