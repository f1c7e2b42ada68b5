// Package input maps key presses to game events.
package input

import (
	"strings"

	"github.com/lox/wordle/internal/wordle"
)

// EventForKey returns the game event for a key identifier.
// "enter" submits, "backspace" erases, a single letter in either case is
// typed; any other key is ignored and ok is false.
func EventForKey(key string) (ev wordle.Event, ok bool) {
	switch strings.ToLower(key) {
	case "enter":
		return wordle.Submit{}, true
	case "backspace":
		return wordle.Backspace{}, true
	}

	if len(key) != 1 {
		return nil, false
	}
	r := rune(key[0])
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return wordle.AppendLetter{Letter: r}, true
	}
	return nil, false
}

// Controller applies key presses to a game in the order they arrive
type Controller struct {
	state wordle.GameState
}

// NewController creates a controller driving state
func NewController(state wordle.GameState) *Controller {
	return &Controller{state: state}
}

// HandleKey applies the event for key, if any, and reports its effect
func (c *Controller) HandleKey(key string) wordle.Effect {
	ev, ok := EventForKey(key)
	if !ok {
		return wordle.EffectNone
	}
	return c.Apply(ev)
}

// Apply applies an event that did not come from the keyboard
func (c *Controller) Apply(ev wordle.Event) wordle.Effect {
	var effect wordle.Effect
	c.state, effect = wordle.Apply(c.state, ev)
	return effect
}

// State returns the current game state
func (c *Controller) State() wordle.GameState {
	return c.state
}
