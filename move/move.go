// Package move defines the placement type returned by move generation.
package move

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/wlei/scrabbl/alphabet"
)

// PlacedTile is a single newly placed tile. A lowercase letter means a blank
// was used for that letter; it scores zero.
type PlacedTile struct {
	Row    int
	Col    int
	Letter rune
}

// IsBlank returns whether this tile is a blank.
func (pt PlacedTile) IsBlank() bool {
	return alphabet.IsBlankLetter(pt.Letter)
}

// Move is a candidate or final placement: an ordered sequence of newly
// placed tiles, all in one row (or one column for a vertical move), plus the
// score computed for it. The zero Move is the "no legal move" result.
type Move struct {
	placed   []PlacedTile
	score    int
	vertical bool
}

// NewScoringMove creates a scoring *Move and returns it. The tiles slice is
// taken over by the move.
func NewScoringMove(placed []PlacedTile, score int, vertical bool) *Move {
	return &Move{placed: placed, score: score, vertical: vertical}
}

// Empty returns whether this move places no tiles, i.e. no legal move was
// found. A nil move counts as empty.
func (m *Move) Empty() bool {
	return m == nil || len(m.placed) == 0
}

// Placed returns the placed tiles, ordered by increasing primary-direction
// coordinate.
func (m *Move) Placed() []PlacedTile {
	if m == nil {
		return nil
	}
	return m.placed
}

// TilesPlayed returns the number of tiles this move places.
func (m *Move) TilesPlayed() int {
	if m == nil {
		return 0
	}
	return len(m.placed)
}

func (m *Move) Score() int {
	if m == nil {
		return 0
	}
	return m.score
}

func (m *Move) Vertical() bool {
	return m.vertical
}

// Transpose swaps the row and column of every placed tile, converting a move
// found on a transposed board back to real coordinates (and vice versa).
func (m *Move) Transpose() {
	for i := range m.placed {
		m.placed[i].Row, m.placed[i].Col = m.placed[i].Col, m.placed[i].Row
	}
	m.vertical = !m.vertical
}

// TilesString returns the placed letters in order, lowercase for blanks.
func (m *Move) TilesString() string {
	var sb strings.Builder
	for _, pt := range m.placed {
		sb.WriteRune(pt.Letter)
	}
	return sb.String()
}

// ShortDescription provides a short description, useful for logging or user
// display, like "8D CANTS" or "D8 eX".
func (m *Move) ShortDescription() string {
	if m.Empty() {
		return "(no play)"
	}
	first := m.placed[0]
	return fmt.Sprintf("%v %v",
		ToBoardGameCoords(first.Row, first.Col, m.vertical), m.TilesString())
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<action: play word: %v score: %v tp: %v vert: %v>",
		m.ShortDescription(), m.Score(), m.TilesPlayed(), m.vertical)
}

var reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
var reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)

// ToBoardGameCoords converts the row, col, and orientation of the play to a
// coordinate like 5F or G4. Rows and columns are 1-based.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col - 1))
	rowCoords := strconv.Itoa(row)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
// The boolean return is false if the coordinate doesn't parse.
func FromBoardGameCoords(c string) (row int, col int, vertical bool, ok bool) {
	vMatches := reVertical.FindStringSubmatch(c)
	if len(vMatches) == 3 {
		row, _ = strconv.Atoi(vMatches[2])
		col = int(vMatches[1][0]-'A') + 1
		return row, col, true, true
	}
	hMatches := reHorizontal.FindStringSubmatch(c)
	if len(hMatches) == 3 {
		row, _ = strconv.Atoi(hMatches[1])
		col = int(hMatches[2][0]-'A') + 1
		return row, col, false, true
	}
	return 0, 0, false, false
}
