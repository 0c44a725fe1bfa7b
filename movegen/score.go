package movegen

import (
	"github.com/wlei/scrabbl/alphabet"
	"github.com/wlei/scrabbl/board"
	"github.com/wlei/scrabbl/move"
)

// BingoBonus is the flat bonus for using the whole rack in one move.
const BingoBonus = 50

// scoreAcross computes the point value of a complete across placement on the
// board as it stands before the placement is committed. Letter bonuses apply
// to the newly placed tile on them; word bonuses double or triple both the
// primary word and any cross word formed at that square, compounding when a
// placement covers several. Tiles already on the board count at face value.
func (gen *Generator) scoreAcross(placed []move.PlacedTile) int {
	if len(placed) == 0 {
		return 0
	}
	b, lex := gen.board, gen.lex

	rowPts := 0
	totalCrossPts := 0
	numDoubleWord := 0
	numTripleWord := 0

	for _, pt := range placed {
		sq := b.GetSquare(pt.Row, pt.Col)
		letterPts := lex.Score(pt.Letter) * sq.LetterMultiplier()
		rowPts += letterPts

		crossPts := 0
		if !b.GetSquare(pt.Row-1, pt.Col).IsEmpty() ||
			!b.GetSquare(pt.Row+1, pt.Col).IsEmpty() {
			// This tile extends a vertical word: its cross score is the
			// tiles above and below plus this tile's own multiplied value.
			crossPts = gen.colCrossScore(pt.Row, pt.Col) + letterPts
		}

		switch sq.Bonus() {
		case board.Bonus2WS:
			numDoubleWord++
			crossPts *= 2
		case board.Bonus3WS:
			numTripleWord++
			crossPts *= 3
		}
		totalCrossPts += crossPts
	}

	row := placed[0].Row
	// Existing tiles left of the placement.
	for col := placed[0].Col - 1; !b.GetSquare(row, col).IsEmpty(); col-- {
		rowPts += lex.Score(b.GetLetter(row, col))
	}
	// Existing tiles in the gaps between placed tiles. The placed squares
	// themselves are still empty on the board and contribute nothing here.
	for col := placed[0].Col; col <= placed[len(placed)-1].Col; col++ {
		rowPts += lex.Score(b.GetLetter(row, col))
	}
	// Existing tiles right of the placement.
	for col := placed[len(placed)-1].Col + 1; !b.GetSquare(row, col).IsEmpty(); col++ {
		rowPts += lex.Score(b.GetLetter(row, col))
	}

	for i := 0; i < numDoubleWord; i++ {
		rowPts *= 2
	}
	for i := 0; i < numTripleWord; i++ {
		rowPts *= 3
	}

	pts := rowPts + totalCrossPts
	if len(placed) >= alphabet.MaxRackTiles {
		pts += BingoBonus
	}
	return pts
}

// colCrossScore sums the point values of the contiguous tiles directly above
// and below a square, not including the square itself.
func (gen *Generator) colCrossScore(row, col int) int {
	b, lex := gen.board, gen.lex
	pts := 0
	for r := row - 1; !b.GetSquare(r, col).IsEmpty(); r-- {
		pts += lex.Score(b.GetLetter(r, col))
	}
	for r := row + 1; !b.GetSquare(r, col).IsEmpty(); r++ {
		pts += lex.Score(b.GetLetter(r, col))
	}
	return pts
}
