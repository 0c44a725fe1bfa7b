package board

import (
	"fmt"

	"github.com/wlei/scrabbl/alphabet"
)

// A BonusSquare is a bonus square (duh)
type BonusSquare rune

const (
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
	// NoBonus is a plain square
	NoBonus BonusSquare = ' '
	// OutOfBoundsSquare marks the sentinel ring around the playable grid.
	// Neighbor lookups land on the ring instead of needing bounds checks.
	OutOfBoundsSquare BonusSquare = 'x'
)

// NoAnchor means a square can never start a legal rightward extension.
const NoAnchor = -1

// A Square is a single square in a game board. It contains the bonus marking,
// if any, a letter, if any ('.' if empty), its own position, the cross-check
// set of the perpendicular direction, and the minimum word length needed for
// a word starting here to connect with existing tiles.
type Square struct {
	letter rune
	bonus  BonusSquare
	row    int
	col    int

	crossSet CrossSet
	// minLength is the minimum connecting length; NoAnchor if the square
	// cannot start an extension at all.
	minLength int
}

func (s Square) String() string {
	return fmt.Sprintf("<(%v,%v) (%s) (%s)>", s.row, s.col, string(s.letter),
		string(s.bonus))
}

func (s *Square) Letter() rune {
	return s.letter
}

func (s *Square) SetLetter(letter rune) {
	s.letter = letter
}

func (s *Square) Bonus() BonusSquare {
	return s.bonus
}

func (s *Square) Row() int {
	return s.row
}

func (s *Square) Col() int {
	return s.col
}

func (s *Square) IsEmpty() bool {
	return s.letter == alphabet.EmptySquareMarker
}

func (s *Square) OutOfBounds() bool {
	return s.bonus == OutOfBoundsSquare
}

// CrossSet is the set of letters that may legally be placed on this square,
// considering the perpendicular word they would complete. Only meaningful
// for empty squares.
func (s *Square) CrossSet() CrossSet {
	return s.crossSet
}

// MinWordLength returns the minimum connecting length of this square, or
// NoAnchor.
func (s *Square) MinWordLength() int {
	return s.minLength
}

func (s *Square) copyFrom(s2 *Square) {
	s.letter = s2.letter
	s.bonus = s2.bonus
	s.row = s2.row
	s.col = s2.col
	s.crossSet = s2.crossSet
	s.minLength = s2.minLength
}

func (s *Square) equals(s2 *Square) bool {
	return s.letter == s2.letter && s.bonus == s2.bonus &&
		s.row == s2.row && s.col == s2.col
}

// DisplayString shows the letter if there is one, otherwise the bonus
// marking.
func (s Square) DisplayString() string {
	if s.letter == alphabet.EmptySquareMarker {
		if s.bonus == NoBonus {
			return string(alphabet.EmptySquareMarker)
		}
		return string(s.bonus)
	}
	return string(s.letter)
}

// WordMultiplier returns 2 or 3 on a word-bonus square, 1 elsewhere.
func (s *Square) WordMultiplier() int {
	switch s.bonus {
	case Bonus2WS:
		return 2
	case Bonus3WS:
		return 3
	}
	return 1
}

// LetterMultiplier returns 2 or 3 on a letter-bonus square, 1 elsewhere.
func (s *Square) LetterMultiplier() int {
	switch s.bonus {
	case Bonus2LS:
		return 2
	case Bonus3LS:
		return 3
	}
	return 1
}
