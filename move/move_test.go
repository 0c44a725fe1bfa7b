package move

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBoardGameCoords(t *testing.T) {
	assert.Equal(t, "8D", ToBoardGameCoords(8, 4, false))
	assert.Equal(t, "D8", ToBoardGameCoords(8, 4, true))
	assert.Equal(t, "1A", ToBoardGameCoords(1, 1, false))
	assert.Equal(t, "O15", ToBoardGameCoords(15, 15, true))
}

func TestFromBoardGameCoords(t *testing.T) {
	row, col, vertical, ok := FromBoardGameCoords("8D")
	assert.True(t, ok)
	assert.Equal(t, 8, row)
	assert.Equal(t, 4, col)
	assert.False(t, vertical)

	row, col, vertical, ok = FromBoardGameCoords("D8")
	assert.True(t, ok)
	assert.Equal(t, 8, row)
	assert.Equal(t, 4, col)
	assert.True(t, vertical)

	_, _, _, ok = FromBoardGameCoords("8D8")
	assert.False(t, ok)
	_, _, _, ok = FromBoardGameCoords("")
	assert.False(t, ok)
}

func TestCoordsRoundTrip(t *testing.T) {
	for row := 1; row <= 15; row++ {
		for col := 1; col <= 15; col++ {
			for _, vertical := range []bool{false, true} {
				c := ToBoardGameCoords(row, col, vertical)
				r, cl, v, ok := FromBoardGameCoords(c)
				assert.True(t, ok)
				assert.Equal(t, row, r)
				assert.Equal(t, col, cl)
				assert.Equal(t, vertical, v)
			}
		}
	}
}

func TestEmptyMove(t *testing.T) {
	var m *Move
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Score())
	assert.Equal(t, 0, m.TilesPlayed())

	m = NewScoringMove(nil, 0, false)
	assert.True(t, m.Empty())
	assert.Equal(t, "(no play)", m.ShortDescription())
}

func TestTranspose(t *testing.T) {
	m := NewScoringMove([]PlacedTile{
		{Row: 3, Col: 8, Letter: 'C'},
		{Row: 4, Col: 8, Letter: 'A'},
		{Row: 5, Col: 8, Letter: 'T'},
	}, 10, true)
	m.Transpose()
	assert.False(t, m.Vertical())
	assert.Equal(t, []PlacedTile{
		{Row: 8, Col: 3, Letter: 'C'},
		{Row: 8, Col: 4, Letter: 'A'},
		{Row: 8, Col: 5, Letter: 'T'},
	}, m.Placed())
}

func TestShortDescription(t *testing.T) {
	m := NewScoringMove([]PlacedTile{
		{Row: 8, Col: 4, Letter: 'C'},
		{Row: 8, Col: 5, Letter: 'A'},
		{Row: 8, Col: 6, Letter: 'T'},
	}, 10, false)
	assert.Equal(t, "8D CAT", m.ShortDescription())

	m = NewScoringMove([]PlacedTile{
		{Row: 8, Col: 4, Letter: 'e'},
		{Row: 9, Col: 4, Letter: 'X'},
	}, 9, true)
	assert.Equal(t, "D8 eX", m.ShortDescription())
	assert.True(t, m.Placed()[0].IsBlank())
	assert.False(t, m.Placed()[1].IsBlank())
}
