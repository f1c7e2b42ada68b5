package wordle

import (
	"fmt"
	"strings"
)

const (
	// WordLength is the number of letters in the solution and in every guess
	WordLength = 5

	// MaxGuesses is the number of guess slots on the board
	MaxGuesses = 6
)

// Classification is the score of a single letter of a submitted guess
type Classification int

const (
	Absent Classification = iota
	Present
	Correct
)

// String returns the string representation of the classification
func (c Classification) String() string {
	switch c {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// MarshalText encodes the classification by name
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a classification name
func (c *Classification) UnmarshalText(text []byte) error {
	switch string(text) {
	case "absent":
		*c = Absent
	case "present":
		*c = Present
	case "correct":
		*c = Correct
	default:
		return fmt.Errorf("unknown classification %q", text)
	}
	return nil
}

// Result holds one classification per letter position
type Result [WordLength]Classification

// String renders the result as one character per position: G, Y or -
func (r Result) String() string {
	var sb strings.Builder
	for _, c := range r {
		switch c {
		case Correct:
			sb.WriteByte('G')
		case Present:
			sb.WriteByte('Y')
		default:
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// Solved reports whether every position is Correct
func (r Result) Solved() bool {
	for _, c := range r {
		if c != Correct {
			return false
		}
	}
	return true
}

// Rules selects the scoring function used for submitted guesses
type Rules int

const (
	// RulesClassic marks misplaced letters Present on simple containment
	RulesClassic Rules = iota
	// RulesStrict limits Present marks to the letter counts of the solution
	RulesStrict
)

// ParseRules parses a rules name as used in configuration
func ParseRules(name string) (Rules, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return RulesClassic, true
	case "strict":
		return RulesStrict, true
	default:
		return RulesClassic, false
	}
}

// String returns the configuration name of the rules
func (r Rules) String() string {
	if r == RulesStrict {
		return "strict"
	}
	return "classic"
}

// Score evaluates guess against solution using these rules
func (r Rules) Score(guess, solution string) Result {
	if r == RulesStrict {
		return EvaluateStrict(guess, solution)
	}
	return Evaluate(guess, solution)
}

// Evaluate classifies each letter of guess against solution.
// A letter is Correct when it matches the solution at the same position,
// Present when the solution contains it anywhere else, and Absent otherwise.
// Repeated letters are not counted: a guess with two E's against a solution
// with one E marks both E's Present (or Correct).
func Evaluate(guess, solution string) Result {
	var result Result
	for i := 0; i < WordLength; i++ {
		if i >= len(guess) {
			break
		}
		switch {
		case i < len(solution) && guess[i] == solution[i]:
			result[i] = Correct
		case strings.IndexByte(solution, guess[i]) >= 0:
			result[i] = Present
		default:
			result[i] = Absent
		}
	}
	return result
}

// EvaluateStrict classifies guess against solution accounting for duplicate
// letters: each solution letter can justify at most one Correct or Present mark,
// with Correct positions claimed first.
func EvaluateStrict(guess, solution string) Result {
	var result Result
	var remaining [26]int

	for i := 0; i < WordLength && i < len(solution); i++ {
		if i < len(guess) && guess[i] == solution[i] {
			result[i] = Correct
			continue
		}
		if idx, ok := letterIndex(solution[i]); ok {
			remaining[idx]++
		}
	}

	for i := 0; i < WordLength && i < len(guess); i++ {
		if result[i] == Correct {
			continue
		}
		idx, ok := letterIndex(guess[i])
		if ok && remaining[idx] > 0 {
			remaining[idx]--
			result[i] = Present
		}
	}

	return result
}

func letterIndex(b byte) (int, bool) {
	if b < 'A' || b > 'Z' {
		return 0, false
	}
	return int(b - 'A'), true
}
