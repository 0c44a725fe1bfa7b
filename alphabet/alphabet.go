// Package alphabet contains the letter, rack, and tile-distribution types.
// The engine works on plain runes: an uppercase letter is a regular tile, a
// lowercase letter is a blank standing in for that letter, and '.' marks an
// empty square.
package alphabet

const (
	// NumLetters is the number of distinct letters, A through Z.
	NumLetters = 26
	// BlankPosition is the index of the blank count in a rack's letter array.
	BlankPosition = NumLetters
	// MaxRackTiles is the rack capacity.
	MaxRackTiles = 7
	// BlankToken is the blank marker in user-entered rack strings.
	BlankToken = '?'
	// EmptySquareMarker represents an empty board square.
	EmptySquareMarker = '.'
)

// IsLetter returns whether r is a regular uppercase tile letter.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsBlankLetter returns whether r is a blank tile standing in for a letter.
// Blanks are kept lowercase on the board so that scoring can skip them.
func IsBlankLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// Val converts an uppercase letter to its 0-25 index. The caller must pass
// an actual letter; blanks should be unblanked first.
func Val(r rune) int {
	return int(r - 'A')
}

// Letter is the inverse of Val.
func Letter(idx int) rune {
	return rune('A' + idx)
}

// Unblank normalizes a board tile to its uppercase letter.
func Unblank(r rune) rune {
	if IsBlankLetter(r) {
		return r - 'a' + 'A'
	}
	return r
}

// Blank marks a letter as played with a blank tile.
func Blank(r rune) rune {
	if IsLetter(r) {
		return r - 'A' + 'a'
	}
	return r
}
