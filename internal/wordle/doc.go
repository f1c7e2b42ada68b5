// Package wordle implements the core rules of the word-guessing game.
//
// The main type is GameState, an explicit value holding the solution, the six
// guess slots, the guess being composed and the game status. All changes go
// through Apply, which is a pure function of the current state and an Event:
//
//	state := wordle.NewGameWithSolution("CRANE")
//	state, _ = wordle.Apply(state, wordle.AppendLetter{Letter: 't'})
//	// ...
//	state, effect := wordle.Apply(state, wordle.Submit{})
//	if effect == wordle.EffectRejected {
//	    // incomplete guess, state.ShakeRow names the row to shake
//	}
//
// # Scoring
//
// Evaluate scores a guess the simple way: a letter that is not in the right
// place is Present whenever the solution contains it at all, regardless of how
// many times it appears. EvaluateStrict applies the duplicate-aware rule and is
// selected with RulesStrict.
//
// Once a game is Won or Lost it is frozen: every further event is ignored.
package wordle
