// Package dataloaders reads the flat-file inputs: the dictionary word list,
// the tile table, the board bonus chart, and an optional game overlay of
// letters already played. Unreadable files are reported and yield empty (or
// default) structures; malformed contents are DataErrors.
package dataloaders

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/wlei/scrabbl/alphabet"
	"github.com/wlei/scrabbl/board"
	"github.com/wlei/scrabbl/lexicon"
)

// ParseWords reads a whitespace-separated word list, uppercasing every
// entry.
func ParseWords(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lo.Map(tokens, func(w string, _ int) string {
		return strings.ToUpper(w)
	}), nil
}

// LoadWords reads a word list file. On failure the returned list is empty;
// the lexicon constructor will turn that into a DataError.
func LoadWords(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Msgf("could not open %v", path)
		return nil
	}
	defer f.Close()
	words, err := ParseWords(f)
	if err != nil {
		log.Error().Err(err).Msgf("could not read %v", path)
		return nil
	}
	return words
}

// ParseTiles reads a tile table: one line per tile, "letter points count",
// with the blank's line keyed by '?'.
func ParseTiles(r io.Reader) (*alphabet.LetterDistribution, error) {
	ld := &alphabet.LetterDistribution{
		Distribution: make(map[rune]uint8),
		PointValues:  make(map[rune]uint8),
	}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 || len([]rune(fields[0])) != 1 {
			return nil, lexicon.NewDataError("tiles: malformed line %v: %q",
				lineno, line)
		}
		letter := []rune(fields[0])[0]
		if !alphabet.IsLetter(letter) && letter != alphabet.BlankToken {
			return nil, lexicon.NewDataError("tiles: bad letter on line %v: %q",
				lineno, line)
		}
		points, err1 := strconv.Atoi(fields[1])
		total, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || points < 0 || total < 0 {
			return nil, lexicon.NewDataError("tiles: malformed line %v: %q",
				lineno, line)
		}
		ld.PointValues[letter] = uint8(points)
		ld.Distribution[letter] = uint8(total)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ld, nil
}

// LoadTiles reads the tile table file. On failure the returned distribution
// is empty, which the lexicon constructor rejects with a DataError.
func LoadTiles(path string) *alphabet.LetterDistribution {
	empty := &alphabet.LetterDistribution{
		Distribution: map[rune]uint8{},
		PointValues:  map[rune]uint8{},
	}
	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Msgf("could not open %v", path)
		return empty
	}
	defer f.Close()
	ld, err := ParseTiles(f)
	if err != nil {
		log.Error().Err(err).Msgf("could not parse %v", path)
		return empty
	}
	return ld
}

// Characters of the board chart file format.
const (
	chart3WS     = 'W'
	chart2WS     = 'w'
	chart3LS     = 'L'
	chart2LS     = 'l'
	chartPlain   = '.'
	chartOutside = 'x'
)

// ParseBoardChart reads a board chart: a square of bonus characters with a
// one-character ring of 'x' around the playable area.
func ParseBoardChart(r io.Reader) (*board.GameBoard, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) < 3 {
		return nil, lexicon.NewDataError("board: chart has only %v lines", len(lines))
	}
	dim := len(lines) - 2
	layout := make([]string, 0, dim)
	for i, line := range lines {
		if len(line) != dim+2 {
			return nil, lexicon.NewDataError("board: line %v has length %v, want %v",
				i+1, len(line), dim+2)
		}
		if i == 0 || i == len(lines)-1 {
			continue
		}
		var sb strings.Builder
		for _, c := range line[1 : len(line)-1] {
			b, err := bonusForChart(c)
			if err != nil {
				return nil, err
			}
			sb.WriteRune(rune(b))
		}
		layout = append(layout, sb.String())
	}
	return board.MakeBoard(layout), nil
}

func bonusForChart(c rune) (board.BonusSquare, error) {
	switch c {
	case chart3WS:
		return board.Bonus3WS, nil
	case chart2WS:
		return board.Bonus2WS, nil
	case chart3LS:
		return board.Bonus3LS, nil
	case chart2LS:
		return board.Bonus2LS, nil
	case chartPlain:
		return board.NoBonus, nil
	}
	return 0, lexicon.NewDataError("board: unknown chart character %q", string(c))
}

// LoadBoard reads the board chart file. On failure it reports the error and
// returns the standard layout.
func LoadBoard(path string) *board.GameBoard {
	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Msgf("could not open %v; using the standard board", path)
		return board.MakeBoard(board.CrosswordGameBoard)
	}
	defer f.Close()
	b, err := ParseBoardChart(f)
	if err != nil {
		log.Error().Err(err).Msgf("could not parse %v; using the standard board", path)
		return board.MakeBoard(board.CrosswordGameBoard)
	}
	return b
}

// ParseGameOverlay reads rows of letters already on the board ('.' for an
// empty square; lowercase letters are blanks) and applies them. The overlay
// must match the board dimension; it is validated in full before any square
// is touched, so a bad overlay leaves the board as it was.
func ParseGameOverlay(r io.Reader, b *board.GameBoard) error {
	scanner := bufio.NewScanner(r)
	var rows []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			rows = append(rows, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(rows) != b.Dim() {
		return lexicon.NewDataError("game: overlay has %v rows, want %v",
			len(rows), b.Dim())
	}
	for i, line := range rows {
		if len(line) != b.Dim() {
			return lexicon.NewDataError("game: overlay does not fit a %vx%v board",
				b.Dim(), b.Dim())
		}
		for _, c := range line {
			if c != alphabet.EmptySquareMarker &&
				!alphabet.IsLetter(c) && !alphabet.IsBlankLetter(c) {
				return lexicon.NewDataError("game: bad character %q at row %v",
					string(c), i+1)
			}
		}
	}
	for i, line := range rows {
		for col, c := range line {
			if c != alphabet.EmptySquareMarker {
				b.SetLetter(i+1, col+1, c)
			}
		}
	}
	return nil
}

// LoadGame applies a game overlay file to the board. On failure the board
// is left as it was.
func LoadGame(path string, b *board.GameBoard) {
	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Msgf("could not open %v", path)
		return
	}
	defer f.Close()
	if err := ParseGameOverlay(f, b); err != nil {
		log.Error().Err(err).Msgf("could not parse %v", path)
	}
}
