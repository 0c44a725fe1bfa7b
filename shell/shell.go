// Package shell is the interactive console: it shows the board and rack,
// finds and commits best moves, and lets the user edit the game state.
package shell

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/wlei/scrabbl/alphabet"
	"github.com/wlei/scrabbl/board"
	"github.com/wlei/scrabbl/lexicon"
	"github.com/wlei/scrabbl/move"
	"github.com/wlei/scrabbl/movegen"
)

type ShellController struct {
	l *readline.Instance

	board *board.GameBoard
	rack  *alphabet.Rack
	lex   *lexicon.Lexicon

	lastMove *move.Move
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController creates a shell around the given game state. The board
// must already be annotated (see GameBoard.Update).
func NewShellController(b *board.GameBoard, rack *alphabet.Rack,
	lex *lexicon.Lexicon) *ShellController {

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mscrabbl>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, board: b, rack: rack, lex: lex}
}

func (sc *ShellController) showState() {
	showMessage(sc.board.ToDisplayText(), sc.l.Stderr())
	showMessage("RACK: "+sc.rack.String(), sc.l.Stderr())
}

func (sc *ShellController) best() {
	m, pts := movegen.BestMove(sc.board, sc.rack, sc.lex)
	sc.lastMove = m
	showMessage(fmt.Sprintf("best move: %v (%v pts)", m.ShortDescription(), pts),
		sc.l.Stderr())
	if m.Empty() {
		return
	}
	// Show what the board would look like.
	preview := sc.board.Copy()
	preview.PlayMove(m, sc.lex)
	showMessage(preview.ToDisplayText(), sc.l.Stderr())
}

func (sc *ShellController) commit() {
	if sc.lastMove.Empty() {
		showMessage("nothing to commit; find a best move first", sc.l.Stderr())
		return
	}
	sc.board.PlayMove(sc.lastMove, sc.lex)
	for _, pt := range sc.lastMove.Placed() {
		if pt.IsBlank() {
			sc.rack.Take(alphabet.BlankPosition)
		} else {
			sc.rack.Take(alphabet.Val(pt.Letter))
		}
	}
	sc.lastMove = nil
	sc.showState()
}

// parsePlay turns a coordinate like "8D" (across) or "D8" (down) plus a word
// into the tiles that word would newly place. Squares already holding the
// right letter are passed through; a conflicting square is an error.
func parsePlay(b *board.GameBoard, coord, word string) (*move.Move, error) {
	row, col, vertical, ok := move.FromBoardGameCoords(strings.ToUpper(coord))
	if !ok {
		return nil, fmt.Errorf("bad coordinate %q", coord)
	}
	var placed []move.PlacedTile
	r, c := row, col
	for _, letter := range word {
		if !alphabet.IsLetter(letter) && !alphabet.IsBlankLetter(letter) {
			return nil, fmt.Errorf("bad letter %q in %q", string(letter), word)
		}
		if r < 1 || r > b.Dim() || c < 1 || c > b.Dim() {
			return nil, fmt.Errorf("%q runs off the board", word)
		}
		sq := b.GetSquare(r, c)
		if sq.IsEmpty() {
			placed = append(placed, move.PlacedTile{Row: r, Col: c, Letter: letter})
		} else if alphabet.Unblank(sq.Letter()) != alphabet.Unblank(letter) {
			return nil, fmt.Errorf("%v already holds %v",
				move.ToBoardGameCoords(r, c, vertical), string(sq.Letter()))
		}
		if vertical {
			r++
		} else {
			c++
		}
	}
	if len(placed) == 0 {
		return nil, fmt.Errorf("%q places no new tiles", word)
	}
	return move.NewScoringMove(placed, 0, vertical), nil
}

// play handles "play 8D CAT": put a word on the board at a coordinate,
// without touching the rack.
func (sc *ShellController) play(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: play <coordinate like 8D or D8> <letters>")
	}
	m, err := parsePlay(sc.board, args[0], args[1])
	if err != nil {
		return err
	}
	sc.board.PlayMove(m, sc.lex)
	sc.lastMove = nil
	sc.showState()
	return nil
}

// setTile handles "tile L row col"; L may be '.' to clear a square.
func (sc *ShellController) setTile(args []string) error {
	if len(args) != 3 || len(args[0]) != 1 {
		return fmt.Errorf("usage: tile <letter|.> <row> <col>")
	}
	letter := rune(args[0][0])
	if !alphabet.IsLetter(letter) && !alphabet.IsBlankLetter(letter) &&
		letter != alphabet.EmptySquareMarker {
		return fmt.Errorf("bad letter %q", args[0])
	}
	row, err1 := strconv.Atoi(args[1])
	col, err2 := strconv.Atoi(args[2])
	if err1 != nil || err2 != nil ||
		row < 1 || row > sc.board.Dim() || col < 1 || col > sc.board.Dim() {
		return fmt.Errorf("row and col must be numbers between 1 and %v",
			sc.board.Dim())
	}
	sc.board.SetLetter(row, col, letter)
	sc.board.Update(sc.lex)
	sc.lastMove = nil
	sc.showState()
	return nil
}

func (sc *ShellController) setRack(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: rack <letters, ? for a blank>")
	}
	sc.rack = alphabet.RackFromString(strings.ToUpper(args[0]))
	sc.lastMove = nil
	sc.showState()
	return nil
}

func usage(w io.Writer) {
	showMessage(`Commands:
  show              display the board and rack
  best              find the best move for the current rack
  commit            play the last best move onto the board
  play <pos> <w>    put word w on the board at pos (8D across, D8 down);
                    lowercase letters for blanks
  tile <L> <r> <c>  put letter L at row r, col c (lowercase L for a blank,
                    . to clear the square)
  rack <letters>    replace the rack (up to 7 of A-Z and ?)
  help              this message
  exit              quit`, w)
}

func (sc *ShellController) standardModeSwitch(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil || len(fields) == 0 {
		return err
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "show":
		sc.showState()
	case "best":
		sc.best()
	case "commit":
		sc.commit()
	case "play":
		if err := sc.play(args); err != nil {
			showMessage(err.Error(), sc.l.Stderr())
		}
	case "tile":
		if err := sc.setTile(args); err != nil {
			showMessage(err.Error(), sc.l.Stderr())
		}
	case "rack":
		if err := sc.setRack(args); err != nil {
			showMessage(err.Error(), sc.l.Stderr())
		}
	case "help":
		usage(sc.l.Stderr())
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		showMessage("unknown command; try help", sc.l.Stderr())
	}
	return nil
}

// Loop runs the read-eval loop until exit, EOF, or interrupt.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	sc.showState()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			sig <- syscall.SIGINT
			break
		}
		if err := sc.standardModeSwitch(line); err != nil {
			log.Error().Err(err).Msg("")
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
