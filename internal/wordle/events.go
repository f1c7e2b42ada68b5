package wordle

// Event is an input to Apply
type Event interface {
	event()
}

// AppendLetter adds a letter to the current guess
type AppendLetter struct {
	Letter rune
}

// Backspace removes the last letter of the current guess
type Backspace struct{}

// Submit scores the current guess
type Submit struct{}

// SolutionReady delivers the solution word once it has been fetched
type SolutionReady struct {
	Word string
}

// ClearShake ends the shake signal of a rejected submit
type ClearShake struct{}

func (AppendLetter) event()  {}
func (Backspace) event()     {}
func (Submit) event()        {}
func (SolutionReady) event() {}
func (ClearShake) event()    {}
