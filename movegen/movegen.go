// Package movegen contains the move-generating functions. It uses a variant
// of the Appel and Jacobson algorithm, simplified to work directly on a trie:
// anchored backtracking that extends placements rightward, pruning with the
// trie and with the board's cross-check sets. Down moves reduce to across
// moves on a transposed copy of the board.
package movegen

import (
	"github.com/rs/zerolog/log"

	"github.com/wlei/scrabbl/alphabet"
	"github.com/wlei/scrabbl/board"
	"github.com/wlei/scrabbl/lexicon"
	"github.com/wlei/scrabbl/move"
	"github.com/wlei/scrabbl/trie"
)

// Generator runs one across-direction search over a board. It tracks the
// single best-scoring complete placement seen so far; ties keep the first
// one found, so results are deterministic for fixed inputs.
type Generator struct {
	board *board.GameBoard
	rack  *alphabet.Rack
	lex   *lexicon.Lexicon

	curMove   []move.PlacedTile
	bestMove  []move.PlacedTile
	bestScore int
}

func newGenerator(b *board.GameBoard, rack *alphabet.Rack,
	lex *lexicon.Lexicon) *Generator {

	return &Generator{
		board:   b,
		rack:    rack,
		lex:     lex,
		curMove: make([]move.PlacedTile, 0, alphabet.MaxRackTiles),
	}
}

// BestMove finds the highest-scoring legal placement for the given rack. It
// runs the across search on the board as-is and on a transposed copy, and
// returns whichever scored higher, with across winning ties. The board's
// cross-checks and minimum lengths must be up to date (see GameBoard.Update);
// the rack is mutated during the search but restored before returning. If no
// legal move exists the returned move is empty and the score 0.
func BestMove(b *board.GameBoard, rack *alphabet.Rack,
	lex *lexicon.Lexicon) (*move.Move, int) {

	if b.IsEmpty() {
		m := bestOpeningMove(b, rack, lex)
		return m, m.Score()
	}

	across := bestAcrossMove(b, rack, lex)
	down := bestDownMove(b, rack, lex)
	log.Debug().Msgf("best across: %v; best down: %v", across, down)
	if across.Score() >= down.Score() {
		return across, across.Score()
	}
	return down, down.Score()
}

// bestAcrossMove finds the best placement whose primary direction is the
// board's row direction.
func bestAcrossMove(b *board.GameBoard, rack *alphabet.Rack,
	lex *lexicon.Lexicon) *move.Move {

	gen := newGenerator(b, rack, lex)
	gen.genAll()
	return move.NewScoringMove(gen.bestMove, gen.bestScore, false)
}

// bestDownMove transposes the board, recomputes its cross-checks and minimum
// lengths, runs the across search, and transposes the result back.
func bestDownMove(b *board.GameBoard, rack *alphabet.Rack,
	lex *lexicon.Lexicon) *move.Move {

	t := b.Transposed()
	t.Update(lex)
	m := bestAcrossMove(t, rack, lex)
	m.Transpose()
	return m
}

// bestOpeningMove handles the empty board. The only legal openers cover the
// center square and place at least two tiles, so only starts on the center
// row at or left of center are tried, each with a forced minimum length:
// its distance to the center, or 2 for the center square itself.
func bestOpeningMove(b *board.GameBoard, rack *alphabet.Rack,
	lex *lexicon.Lexicon) *move.Move {

	gen := newGenerator(b, rack, lex)
	mid := b.Dim()/2 + 1
	for col := 1; col <= mid; col++ {
		minLength := mid - col + 1
		if col == mid {
			minLength = 2
		}
		if minLength <= alphabet.MaxRackTiles {
			gen.extendRight(b.GetSquare(mid, col), lex.Trie().Root(), minLength)
		}
	}
	return move.NewScoringMove(gen.bestMove, gen.bestScore, false)
}

// genAll runs the extend procedure from every anchor: every square whose
// minimum connecting length is reachable within the rack capacity.
func (gen *Generator) genAll() {
	for row := 1; row <= gen.board.Dim(); row++ {
		for col := 1; col <= gen.board.Dim(); col++ {
			sq := gen.board.GetSquare(row, col)
			minLength := sq.MinWordLength()
			if minLength != board.NoAnchor && minLength <= alphabet.MaxRackTiles {
				gen.extendRight(sq, gen.lex.Trie().Root(), minLength)
			}
		}
	}
}

// extendRight is the recursive extension procedure. sq is the square under
// consideration, node the trie node for the prefix formed so far, and
// minLength the anchor's minimum connecting length. Rack and partial
// placement are restored identically on every return path.
func (gen *Generator) extendRight(sq *board.Square, node int32, minLength int) {
	if sq.OutOfBounds() {
		return
	}
	t := gen.lex.Trie()

	if !sq.IsEmpty() {
		// An existing tile: the word must pass through it.
		child := t.Child(node, alphabet.Val(alphabet.Unblank(sq.Letter())))
		if child != trie.NoChild {
			gen.extendRight(gen.board.GetSquare(sq.Row(), sq.Col()+1), child,
				minLength)
		}
		return
	}

	// The square is empty. A word ending just before it is complete if the
	// prefix is a word and enough tiles were placed to connect.
	if t.Terminal(node) && len(gen.curMove) >= minLength {
		score := gen.scoreAcross(gen.curMove)
		if score > gen.bestScore {
			gen.bestScore = score
			gen.bestMove = append([]move.PlacedTile(nil), gen.curMove...)
		}
	}

	next := gen.board.GetSquare(sq.Row(), sq.Col()+1)
	for i := 0; i < alphabet.NumLetters; i++ {
		child := t.Child(node, i)
		if child == trie.NoChild || !sq.CrossSet().Allowed(i) {
			continue
		}
		letter := alphabet.Letter(i)
		if gen.rack.Has(i) {
			gen.rack.Take(i)
			gen.curMove = append(gen.curMove,
				move.PlacedTile{Row: sq.Row(), Col: sq.Col(), Letter: letter})
			gen.extendRight(next, child, minLength)
			gen.curMove = gen.curMove[:len(gen.curMove)-1]
			gen.rack.Add(i)
		} else if gen.rack.HasBlank() {
			gen.rack.Take(alphabet.BlankPosition)
			gen.curMove = append(gen.curMove, move.PlacedTile{
				Row: sq.Row(), Col: sq.Col(), Letter: alphabet.Blank(letter)})
			gen.extendRight(next, child, minLength)
			gen.curMove = gen.curMove[:len(gen.curMove)-1]
			gen.rack.Add(alphabet.BlankPosition)
		}
	}
}
