package alphabet

// LetterDistribution encodes the tile distribution for the relevant game:
// how many of each tile exist in a full set, and what each is worth.
type LetterDistribution struct {
	Distribution map[rune]uint8
	PointValues  map[rune]uint8
}

// EnglishLetterDistribution returns the standard English tile set.
func EnglishLetterDistribution() *LetterDistribution {
	dist := map[rune]uint8{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2,
		'I': 9, 'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2,
		'Q': 1, 'R': 6, 'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1,
		'Y': 2, 'Z': 1, BlankToken: 2,
	}
	ptValues := map[rune]uint8{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4,
		'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3,
		'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8,
		'Y': 4, 'Z': 10, BlankToken: 0,
	}
	return &LetterDistribution{Distribution: dist, PointValues: ptValues}
}

// Score returns the point value of a board tile. Blanks score zero no matter
// which letter they stand in for.
func (ld *LetterDistribution) Score(r rune) int {
	if !IsLetter(r) {
		return 0
	}
	return int(ld.PointValues[r])
}
