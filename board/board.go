// Package board contains the game board representation: squares with bonus
// markings and letters, the cross-check sets and minimum connecting lengths
// the move generator consults, and board transposition.
package board

import (
	"github.com/rs/zerolog/log"

	"github.com/wlei/scrabbl/alphabet"
	"github.com/wlei/scrabbl/lexicon"
	"github.com/wlei/scrabbl/move"
)

// A GameBoard is the main board structure. The playable squares occupy rows
// and columns 1 through Dim(); a one-square sentinel ring of out-of-bounds
// squares surrounds them, so neighbor accesses never need range checks.
type GameBoard struct {
	squares [][]*Square
	dim     int
}

// MakeBoard creates a board from a layout description: one string per row of
// bonus runes ('=' 3WS, '-' 2WS, '"' 3LS, '\'' 2LS, ' ' plain). All rows
// must have equal length; the board is assumed square.
func MakeBoard(layout []string) *GameBoard {
	dim := len(layout)
	squares := make([][]*Square, dim+2)
	for r := 0; r <= dim+1; r++ {
		squares[r] = make([]*Square, dim+2)
		for c := 0; c <= dim+1; c++ {
			sq := &Square{
				letter:    alphabet.EmptySquareMarker,
				bonus:     OutOfBoundsSquare,
				row:       r,
				col:       c,
				minLength: NoAnchor,
			}
			if r >= 1 && r <= dim && c >= 1 && c <= dim {
				sq.bonus = BonusSquare(layout[r-1][c-1])
				sq.crossSet.SetAll()
			}
			squares[r][c] = sq
		}
	}
	return &GameBoard{squares: squares, dim: dim}
}

// Dim is the dimension of the playable board.
func (g *GameBoard) Dim() int {
	return g.dim
}

// GetSquare returns the square at the given 1-based position. Positions 0
// and Dim()+1 are the sentinel ring.
func (g *GameBoard) GetSquare(row int, col int) *Square {
	return g.squares[row][col]
}

func (g *GameBoard) GetLetter(row int, col int) rune {
	return g.squares[row][col].letter
}

func (g *GameBoard) SetLetter(row int, col int, letter rune) {
	g.squares[row][col].letter = letter
}

func (g *GameBoard) GetBonus(row int, col int) BonusSquare {
	return g.squares[row][col].bonus
}

// IsEmpty returns whether no tile has been played anywhere on the board.
func (g *GameBoard) IsEmpty() bool {
	for row := 1; row <= g.dim; row++ {
		for col := 1; col <= g.dim; col++ {
			if !g.squares[row][col].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Update recomputes the cross-check sets and minimum connecting lengths for
// the whole board. Call after any change to the board's letters.
func (g *GameBoard) Update(lex *lexicon.Lexicon) {
	g.UpdateCrossSets(lex)
	g.UpdateMinWordLengths()
}

// Copy returns a deep copy of this board.
func (g *GameBoard) Copy() *GameBoard {
	squares := make([][]*Square, g.dim+2)
	for r := range g.squares {
		squares[r] = make([]*Square, g.dim+2)
		for c := range g.squares[r] {
			sq := &Square{}
			sq.copyFrom(g.squares[r][c])
			squares[r][c] = sq
		}
	}
	return &GameBoard{squares: squares, dim: g.dim}
}

// Transposed returns a new board with rows and columns swapped: bonus,
// letter, and position all move. Cross-checks and minimum lengths are NOT
// recomputed; callers that search the transposed board must Update it with
// their own lexicon first.
func (g *GameBoard) Transposed() *GameBoard {
	t := g.Copy()
	for r := 1; r <= g.dim; r++ {
		for c := 1; c <= g.dim; c++ {
			t.squares[r][c].copyFrom(g.squares[c][r])
			t.squares[r][c].row = r
			t.squares[r][c].col = c
		}
	}
	return t
}

// Equals checks the boards for equality of dimension, bonus layout, letters,
// and positions.
func (g *GameBoard) Equals(g2 *GameBoard) bool {
	if g.Dim() != g2.Dim() {
		log.Debug().Msgf("dims don't match: %v %v", g.Dim(), g2.Dim())
		return false
	}
	for row := range g.squares {
		for col := range g.squares[row] {
			if !g.squares[row][col].equals(g2.squares[row][col]) {
				log.Debug().Msgf("not equal, row %v col %v", row, col)
				return false
			}
		}
	}
	return true
}

// PlayMove commits a placement: it puts the tiles on the board and triggers
// the full cross-check and minimum-length recomputation.
func (g *GameBoard) PlayMove(m *move.Move, lex *lexicon.Lexicon) {
	for _, pt := range m.Placed() {
		g.squares[pt.Row][pt.Col].letter = pt.Letter
	}
	g.Update(lex)
}
