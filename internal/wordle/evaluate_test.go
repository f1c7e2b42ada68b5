package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		guess    string
		solution string
		want     Result
	}{
		{
			name:     "exact match",
			guess:    "CRANE",
			solution: "CRANE",
			want:     Result{Correct, Correct, Correct, Correct, Correct},
		},
		{
			name:     "no shared letters",
			guess:    "BLIMP",
			solution: "CRANE",
			want:     Result{Absent, Absent, Absent, Absent, Absent},
		},
		{
			name:     "train against crane",
			guess:    "TRAIN",
			solution: "CRANE",
			want:     Result{Absent, Correct, Correct, Absent, Present},
		},
		{
			name:     "all letters misplaced",
			guess:    "NECRA",
			solution: "CRANE",
			want:     Result{Present, Present, Present, Present, Present},
		},
		{
			name:     "duplicate guess letters all marked present",
			guess:    "EERIE",
			solution: "CRANE",
			want:     Result{Present, Present, Present, Absent, Correct},
		},
		{
			name:     "repeated letters against double letters",
			guess:    "LLAMA",
			solution: "HELLO",
			want:     Result{Present, Present, Absent, Absent, Absent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.guess, tt.solution))
		})
	}
}

// Correct iff the letters match; otherwise Present iff the solution contains
// the letter anywhere.
func TestEvaluateProperties(t *testing.T) {
	words := []string{"CRANE", "TRAIN", "EERIE", "LLAMA", "HELLO", "ABBEY", "BOBBY", "SPEED", "ZZZZZ", "APPLE"}

	for _, guess := range words {
		for _, solution := range words {
			result := Evaluate(guess, solution)
			for i := 0; i < WordLength; i++ {
				if guess[i] == solution[i] {
					assert.Equal(t, Correct, result[i], "%s vs %s at %d", guess, solution, i)
					continue
				}
				assert.NotEqual(t, Correct, result[i], "%s vs %s at %d", guess, solution, i)
				contains := false
				for j := 0; j < WordLength; j++ {
					if solution[j] == guess[i] {
						contains = true
					}
				}
				if contains {
					assert.Equal(t, Present, result[i], "%s vs %s at %d", guess, solution, i)
				} else {
					assert.Equal(t, Absent, result[i], "%s vs %s at %d", guess, solution, i)
				}
			}
		}
	}
}

func TestEvaluateStrict(t *testing.T) {
	tests := []struct {
		name     string
		guess    string
		solution string
		want     Result
	}{
		{
			name:     "correct E claims the only E",
			guess:    "EERIE",
			solution: "CRANE",
			want:     Result{Absent, Absent, Present, Absent, Correct},
		},
		{
			name:     "both copies present when solution has two",
			guess:    "LLAMA",
			solution: "HELLO",
			want:     Result{Present, Present, Absent, Absent, Absent},
		},
		{
			name:     "extra copies are absent",
			guess:    "SPEED",
			solution: "ABIDE",
			want:     Result{Absent, Absent, Present, Absent, Present},
		},
		{
			name:     "matches classic without duplicates",
			guess:    "TRAIN",
			solution: "CRANE",
			want:     Evaluate("TRAIN", "CRANE"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateStrict(tt.guess, tt.solution))
		})
	}
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "-GG-Y", Evaluate("TRAIN", "CRANE").String())
	assert.True(t, Evaluate("CRANE", "CRANE").Solved())
	assert.False(t, Evaluate("TRAIN", "CRANE").Solved())
}

func TestParseRules(t *testing.T) {
	rules, ok := ParseRules("")
	assert.True(t, ok)
	assert.Equal(t, RulesClassic, rules)

	rules, ok = ParseRules("Strict")
	assert.True(t, ok)
	assert.Equal(t, RulesStrict, rules)

	_, ok = ParseRules("hard")
	assert.False(t, ok)
}
