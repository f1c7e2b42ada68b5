// Package board derives what the player sees from a game state.
//
// Project is a pure function: the terminal UI and the board feed both render
// its output and never write back into the game.
package board

import (
	"fmt"

	"github.com/lox/wordle/internal/wordle"
)

// CellState is the colour class of a cell
type CellState string

const (
	CellEmpty   CellState = "empty"
	CellTyped   CellState = "typed"
	CellCorrect CellState = "correct"
	CellPresent CellState = "present"
	CellAbsent  CellState = "absent"
)

// Effect is the transition a cell plays when it is drawn
type Effect string

const (
	EffectNone  Effect = ""
	EffectPop   Effect = "pop"   // letter just typed
	EffectFlip  Effect = "flip"  // letter revealed by a submit
	EffectShake Effect = "shake" // row of a rejected submit
)

// Cell is one letter square
type Cell struct {
	Letter string    `json:"letter"`
	State  CellState `json:"state"`
	Effect Effect    `json:"effect,omitempty"`
}

// Row is one guess slot
type Row struct {
	Cells     [wordle.WordLength]Cell `json:"cells"`
	Submitted bool                    `json:"submitted"`
	Active    bool                    `json:"active"`
	Shaking   bool                    `json:"shaking"`
}

// Board is the full projection of a game state
type Board struct {
	Rows     [wordle.MaxGuesses]Row `json:"rows"`
	Status   string                 `json:"status"`
	Turn     int                    `json:"turn"`
	Ready    bool                   `json:"ready"`
	Message  string                 `json:"message,omitempty"`
	Solution string                 `json:"solution,omitempty"`

	// Letters holds the best classification seen for each guessed letter
	Letters map[string]CellState `json:"letters"`
}

// Project derives the board for state
func Project(state wordle.GameState) Board {
	b := Board{
		Status:  state.Status.String(),
		Turn:    state.Turn(),
		Ready:   state.HasSolution(),
		Letters: make(map[string]CellState),
	}

	next := state.NextSlot()
	for i := range b.Rows {
		row := &b.Rows[i]
		switch {
		case state.Guesses[i] != "":
			row.Submitted = true
			projectGuess(row, state.Guesses[i], state.Results[i])
			mergeLetters(b.Letters, state.Guesses[i], state.Results[i])
		case i == next:
			row.Active = true
			projectInput(row, state.Current)
		default:
			for j := range row.Cells {
				row.Cells[j] = Cell{State: CellEmpty}
			}
		}

		if i == state.ShakeRow {
			row.Shaking = true
			for j := range row.Cells {
				row.Cells[j].Effect = EffectShake
			}
		}
	}

	if state.Status.IsOver() {
		b.Solution = state.Solution
		b.Message = fmt.Sprintf("Game Over! The word was %s", state.Solution)
	}

	return b
}

func projectGuess(row *Row, guess string, result wordle.Result) {
	for j := range row.Cells {
		if j >= len(guess) {
			row.Cells[j] = Cell{State: CellEmpty}
			continue
		}
		row.Cells[j] = Cell{
			Letter: string(guess[j]),
			State:  stateFor(result[j]),
			Effect: EffectFlip,
		}
	}
}

func projectInput(row *Row, current string) {
	for j := range row.Cells {
		if j < len(current) {
			row.Cells[j] = Cell{Letter: string(current[j]), State: CellTyped, Effect: EffectPop}
		} else {
			row.Cells[j] = Cell{State: CellEmpty}
		}
	}
}

func stateFor(c wordle.Classification) CellState {
	switch c {
	case wordle.Correct:
		return CellCorrect
	case wordle.Present:
		return CellPresent
	default:
		return CellAbsent
	}
}

var rank = map[CellState]int{
	CellAbsent:  1,
	CellPresent: 2,
	CellCorrect: 3,
}

func mergeLetters(letters map[string]CellState, guess string, result wordle.Result) {
	for j := 0; j < len(guess) && j < wordle.WordLength; j++ {
		letter := string(guess[j])
		state := stateFor(result[j])
		if rank[state] > rank[letters[letter]] {
			letters[letter] = state
		}
	}
}
