package alphabet

import (
	"github.com/rs/zerolog/log"
)

// Rack is a machine-friendly representation of a user's rack.
type Rack struct {
	// LetArr is an array of tile counts indexed by letter, with the blank
	// count at BlankPosition.
	LetArr     []int
	empty      bool
	numLetters uint8
}

// NewRack creates a brand new empty rack.
func NewRack() *Rack {
	return &Rack{LetArr: make([]int, NumLetters+1), empty: true}
}

// RackFromString creates a Rack from a string such as "AENprSW" or "CEDAR?".
// Parsing is permissive: characters other than uppercase letters and the
// blank token are ignored, and anything past the rack capacity is dropped.
func RackFromString(rack string) *Rack {
	r := NewRack()
	r.setFromStr(rack)
	return r
}

func (r *Rack) setFromStr(rack string) {
	r.Clear()
	for _, c := range rack {
		if r.numLetters >= MaxRackTiles {
			break
		}
		switch {
		case IsLetter(c):
			r.LetArr[Val(c)]++
		case c == BlankToken:
			r.LetArr[BlankPosition]++
		default:
			log.Debug().Msgf("ignoring rack character: %v", string(c))
			continue
		}
		r.numLetters++
	}
	r.empty = r.numLetters == 0
}

// String returns a user-visible version of this rack, alphabetized, with
// blanks last.
func (r *Rack) String() string {
	letters := make([]rune, 0, r.numLetters)
	for i := 0; i < NumLetters; i++ {
		for j := 0; j < r.LetArr[i]; j++ {
			letters = append(letters, Letter(i))
		}
	}
	for j := 0; j < r.LetArr[BlankPosition]; j++ {
		letters = append(letters, BlankToken)
	}
	return string(letters)
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	n := &Rack{
		empty:      r.empty,
		numLetters: r.numLetters,
	}
	n.LetArr = make([]int, len(r.LetArr))
	copy(n.LetArr, r.LetArr)
	return n
}

// Clear empties the rack.
func (r *Rack) Clear() {
	for i := range r.LetArr {
		r.LetArr[i] = 0
	}
	r.empty = true
	r.numLetters = 0
}

// Take removes one tile at the given letter index. It should only be called
// if the tile is there; it doesn't check!
func (r *Rack) Take(idx int) {
	r.LetArr[idx]--
	r.numLetters--
	if r.numLetters == 0 {
		r.empty = true
	}
}

// Add returns one tile at the given letter index to the rack.
func (r *Rack) Add(idx int) {
	r.LetArr[idx]++
	r.numLetters++
	if r.empty {
		r.empty = false
	}
}

// Has returns whether the rack holds at least one tile of the given letter
// index.
func (r *Rack) Has(idx int) bool {
	return r.LetArr[idx] > 0
}

// HasBlank returns whether the rack holds at least one blank.
func (r *Rack) HasBlank() bool {
	return r.LetArr[BlankPosition] > 0
}

// NumTiles returns the current number of tiles on this rack.
func (r *Rack) NumTiles() uint8 {
	return r.numLetters
}

func (r *Rack) Empty() bool {
	return r.empty
}
