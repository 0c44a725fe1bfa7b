package board

// UpdateMinWordLengths recomputes the minimum connecting length of every
// playable square, per row, scanning right to left. The scanning order
// matters: a square immediately left of an occupied square can never start
// an extension (a word starting there would overlap or sit disconnected),
// squares touching a tile start a length-1 requirement, and squares further
// left inherit previous+1 from the nearest such anchor to their right. A
// square with no anchor anywhere to its right is unusable.
func (g *GameBoard) UpdateMinWordLengths() {
	for row := 1; row <= g.Dim(); row++ {
		minLength := NoAnchor
		for col := g.Dim(); col >= 1; col-- {
			sq := g.squares[row][col]
			switch {
			case !g.squares[row][col-1].IsEmpty():
				sq.minLength = NoAnchor
			case !g.squares[row-1][col].IsEmpty() ||
				!g.squares[row+1][col].IsEmpty() ||
				!g.squares[row][col+1].IsEmpty() ||
				!sq.IsEmpty():
				sq.minLength = 1
				minLength = 1
			case minLength == NoAnchor:
				sq.minLength = NoAnchor
			default:
				minLength++
				sq.minLength = minLength
			}
		}
	}
}
