package main

import (
	"fmt"
	"strings"

	"github.com/lox/wordle/internal/wordle"
)

// EvaluateCmd scores one guess without playing a game
type EvaluateCmd struct {
	Guess    string `arg:"" help:"Guessed word"`
	Solution string `arg:"" help:"Solution word"`
	Strict   bool   `help:"Count repeated letters against the solution"`
}

func (c *EvaluateCmd) Run() error {
	guess, err := parseWord(c.Guess)
	if err != nil {
		return fmt.Errorf("guess: %w", err)
	}
	sol, err := parseWord(c.Solution)
	if err != nil {
		return fmt.Errorf("solution: %w", err)
	}

	rules := wordle.RulesClassic
	if c.Strict {
		rules = wordle.RulesStrict
	}
	result := rules.Score(guess, sol)

	fmt.Printf("%s  %s\n", guess, result)
	for i, class := range result {
		fmt.Printf("  %c  %s\n", guess[i], class)
	}
	return nil
}

func parseWord(word string) (string, error) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) != wordle.WordLength {
		return "", fmt.Errorf("%q must be %d letters", word, wordle.WordLength)
	}
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%q must contain only letters A-Z", word)
		}
	}
	return word, nil
}
