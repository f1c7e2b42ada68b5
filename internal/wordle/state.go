package wordle

import (
	"fmt"
	"strings"
)

// Status is the lifecycle flag of a game
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsOver reports whether the status is terminal
func (s Status) IsOver() bool {
	return s == Won || s == Lost
}

// MarshalText encodes the status by name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "in-progress":
		*s = InProgress
	case "won":
		*s = Won
	case "lost":
		*s = Lost
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// MarshalText encodes the rules by name
func (r Rules) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a rules name
func (r *Rules) UnmarshalText(text []byte) error {
	rules, ok := ParseRules(string(text))
	if !ok {
		return fmt.Errorf("unknown rules %q", text)
	}
	*r = rules
	return nil
}

// NoShake is the ShakeRow value when no row is shaking
const NoShake = -1

// GameState is the complete state of one game session.
// It is a plain value: copying it yields an independent game.
type GameState struct {
	// Solution is the uppercase target word, empty until it has been fetched
	Solution string `json:"solution"`

	// Guesses holds the submitted guesses in order; "" marks an empty slot
	Guesses [MaxGuesses]string `json:"guesses"`

	// Results holds the score of each filled slot
	Results [MaxGuesses]Result `json:"results"`

	// Current is the guess being composed, 0 to WordLength uppercase letters
	Current string `json:"current"`

	Status Status `json:"status"`
	Rules  Rules  `json:"rules"`

	// ShakeRow is the row of the last rejected submit, NoShake otherwise
	ShakeRow int `json:"shakeRow"`
}

// NewGame returns a game waiting for its solution
func NewGame() GameState {
	return NewGameWithRules(RulesClassic)
}

// NewGameWithRules returns a game waiting for its solution that scores
// guesses with the given rules
func NewGameWithRules(rules Rules) GameState {
	return GameState{
		Status:   InProgress,
		Rules:    rules,
		ShakeRow: NoShake,
	}
}

// NewGameWithSolution returns a game ready to play against word
func NewGameWithSolution(word string) GameState {
	state, _ := Apply(NewGame(), SolutionReady{Word: word})
	return state
}

// HasSolution reports whether the solution is known and guesses can be scored
func (g GameState) HasSolution() bool {
	return g.Solution != ""
}

// NextSlot returns the index of the first empty slot, or -1 if the game is
// over or every slot is filled
func (g GameState) NextSlot() int {
	if g.Status.IsOver() {
		return -1
	}
	for i, guess := range g.Guesses {
		if guess == "" {
			return i
		}
	}
	return -1
}

// Turn returns the number of guesses submitted so far
func (g GameState) Turn() int {
	n := 0
	for _, guess := range g.Guesses {
		if guess == "" {
			break
		}
		n++
	}
	return n
}

// Scored returns the results of the filled slots in order
func (g GameState) Scored() []Result {
	return append([]Result(nil), g.Results[:g.Turn()]...)
}

// String returns a compact description for logging
func (g GameState) String() string {
	return fmt.Sprintf("turn=%d/%d current=%q status=%s", g.Turn(), MaxGuesses, g.Current, g.Status)
}

// Effect reports what an Apply call did
type Effect int

const (
	// EffectNone means the event was ignored
	EffectNone Effect = iota
	// EffectAppended means a letter was added to the current guess
	EffectAppended
	// EffectErased means the last letter of the current guess was removed
	EffectErased
	// EffectRejected means an incomplete guess was submitted and the row shakes
	EffectRejected
	// EffectAwaitingSolution means a complete guess was submitted before the
	// solution arrived; nothing changed
	EffectAwaitingSolution
	// EffectScored means a guess was written to its slot and the game goes on
	EffectScored
	// EffectWon means the submitted guess matched the solution
	EffectWon
	// EffectLost means the last slot was filled without a match
	EffectLost
	// EffectSolution means the solution was set
	EffectSolution
	// EffectShakeCleared means the shake signal was reset
	EffectShakeCleared
)

var effectNames = map[Effect]string{
	EffectNone:             "none",
	EffectAppended:         "appended",
	EffectErased:           "erased",
	EffectRejected:         "rejected",
	EffectAwaitingSolution: "awaiting-solution",
	EffectScored:           "scored",
	EffectWon:              "won",
	EffectLost:             "lost",
	EffectSolution:         "solution",
	EffectShakeCleared:     "shake-cleared",
}

// String returns the string representation of the effect
func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return "unknown"
}

// Changed reports whether the state was modified
func (e Effect) Changed() bool {
	return e != EffectNone && e != EffectAwaitingSolution
}

// Apply returns the state that results from ev and what happened.
// The input state is never modified.
func Apply(state GameState, ev Event) (GameState, Effect) {
	switch ev := ev.(type) {
	case SolutionReady:
		return applySolution(state, ev.Word)
	case ClearShake:
		if state.ShakeRow == NoShake {
			return state, EffectNone
		}
		state.ShakeRow = NoShake
		return state, EffectShakeCleared
	}

	if state.Status.IsOver() {
		return state, EffectNone
	}

	switch ev := ev.(type) {
	case AppendLetter:
		return appendLetter(state, ev.Letter)
	case Backspace:
		if state.Current == "" {
			return state, EffectNone
		}
		state.Current = state.Current[:len(state.Current)-1]
		return state, EffectErased
	case Submit:
		return submit(state)
	default:
		return state, EffectNone
	}
}

func applySolution(state GameState, word string) (GameState, Effect) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" || state.HasSolution() {
		return state, EffectNone
	}
	state.Solution = word
	return state, EffectSolution
}

func appendLetter(state GameState, letter rune) (GameState, Effect) {
	if len(state.Current) >= WordLength || !isLetter(letter) {
		return state, EffectNone
	}
	state.Current += strings.ToUpper(string(letter))
	return state, EffectAppended
}

func submit(state GameState) (GameState, Effect) {
	slot := state.NextSlot()
	if slot < 0 {
		return state, EffectNone
	}

	if len(state.Current) != WordLength {
		state.ShakeRow = slot
		return state, EffectRejected
	}

	if !state.HasSolution() {
		return state, EffectAwaitingSolution
	}

	guess := state.Current
	state.Guesses[slot] = guess
	state.Results[slot] = state.Rules.Score(guess, state.Solution)
	state.Current = ""
	state.ShakeRow = NoShake

	switch {
	case guess == state.Solution:
		state.Status = Won
		return state, EffectWon
	case slot == MaxGuesses-1:
		state.Status = Lost
		return state, EffectLost
	default:
		return state, EffectScored
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
