package board

import (
	"fmt"
	"strings"

	"github.com/wlei/scrabbl/alphabet"
)

// ToDisplayText returns the board as text with row and column headers, for
// console display.
func (g *GameBoard) ToDisplayText() string {
	var str string
	n := g.Dim()
	row := "   "
	for i := 0; i < n; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	for i := 1; i <= n; i++ {
		row := fmt.Sprintf("%2d|", i)
		for j := 1; j <= n; j++ {
			row = row + g.squares[i][j].DisplayString() + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	return "\n" + str
}

// SetRow sets a row of the board to the passed-in letters, with spaces for
// empty squares. A testing convenience; it does not update cross-checks.
func (g *GameBoard) SetRow(rowNum int, letters string) {
	for col := 1; col <= g.Dim(); col++ {
		g.SetLetter(rowNum, col, alphabet.EmptySquareMarker)
	}
	for idx, r := range letters {
		if r != ' ' {
			g.SetLetter(rowNum, idx+1, r)
		}
	}
}
