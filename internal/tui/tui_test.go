package tui

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/wordle/internal/solution"
	"github.com/lox/wordle/internal/wordle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	states []wordle.GameState
}

func (r *recordingObserver) Publish(state wordle.GameState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *recordingObserver) last() wordle.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[len(r.states)-1]
}

func newTestModel(t *testing.T, provider solution.Provider, clock quartz.Clock, observer Observer) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	return NewModel(Options{
		Provider: provider,
		Logger:   logger,
		Clock:    clock,
		Observer: observer,
		TestMode: true,
	})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func typeWord(m *Model, word string) {
	for _, r := range word {
		press(m, string(r))
	}
}

func ready(t *testing.T, m *Model, word string) {
	t.Helper()
	m.Update(solutionMsg{word: word})
	require.True(t, m.State().HasSolution())
}

func TestFetchSolution(t *testing.T) {
	m := newTestModel(t, solution.StaticProvider("crane"), quartz.NewMock(t), nil)

	msg := m.fetchSolution()()

	require.IsType(t, solutionMsg{}, msg)
	m.Update(msg)
	assert.Equal(t, "CRANE", m.State().Solution)
	assert.NoError(t, m.FetchError())
}

func TestFetchFailureLeavesGamePending(t *testing.T) {
	failing := solution.ProviderFunc(func(ctx context.Context) (string, error) {
		return "", errors.New("network down")
	})
	m := newTestModel(t, failing, quartz.NewMock(t), nil)

	m.Update(m.fetchSolution()())

	require.Error(t, m.FetchError())
	assert.False(t, m.State().HasSolution())
	assert.Contains(t, m.View(), "Could not fetch a word: network down")

	typeWord(m, "CRANE")
	press(m, "enter")
	assert.Equal(t, 0, m.State().Turn(), "guesses are not scored without a solution")
	assert.Equal(t, wordle.EffectAwaitingSolution, m.Effects()[len(m.Effects())-1])
}

func TestKeysDriveGame(t *testing.T) {
	observer := &recordingObserver{}
	m := newTestModel(t, nil, quartz.NewMock(t), observer)
	ready(t, m, "CRANE")

	typeWord(m, "TRAIX")
	press(m, "backspace", "n", "1", " ", "enter")

	state := m.State()
	assert.Equal(t, "TRAIN", state.Guesses[0])
	assert.Empty(t, state.Current)
	assert.Equal(t, state, observer.last())

	typeWord(m, "crane")
	press(m, "enter")
	assert.Equal(t, wordle.Won, m.State().Status)
	assert.Contains(t, m.View(), "Game Over! The word was CRANE")

	typeWord(m, "ab")
	assert.Empty(t, m.State().Current, "board frozen after win")
}

func TestShakeClearsAfterDuration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mClock := quartz.NewMock(t)
	m := newTestModel(t, nil, mClock, nil)
	ready(t, m, "CRANE")

	typeWord(m, "AB")
	cmd := press(m, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, 0, m.State().ShakeRow)
	assert.Equal(t, "AB", m.State().Current)

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- cmd() }()

	mClock.Advance(ShakeDuration).MustWait(ctx)

	select {
	case msg := <-msgs:
		m.Update(msg)
	case <-ctx.Done():
		t.Fatal("shake timer did not fire")
	}
	assert.Equal(t, wordle.NoShake, m.State().ShakeRow)
}

func TestStaleShakeTimerIsIgnored(t *testing.T) {
	m := newTestModel(t, nil, quartz.NewMock(t), nil)
	ready(t, m, "CRANE")

	press(m, "enter")
	press(m, "enter")
	require.Equal(t, 2, m.shakeSeq)

	m.Update(clearShakeMsg{seq: 1})
	assert.Equal(t, 0, m.State().ShakeRow, "older timer does not end the newer shake")

	m.Update(clearShakeMsg{seq: 2})
	assert.Equal(t, wordle.NoShake, m.State().ShakeRow)
}

func TestLoseAfterSixGuesses(t *testing.T) {
	m := newTestModel(t, nil, quartz.NewMock(t), nil)
	ready(t, m, "CRANE")

	for _, word := range []string{"TRAIN", "BLIMP", "GHOST", "FUDGE", "WORDY", "QUICK"} {
		typeWord(m, word)
		press(m, "enter")
	}

	assert.Equal(t, wordle.Lost, m.State().Status)
	assert.Contains(t, m.View(), "Game Over! The word was CRANE")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil, quartz.NewMock(t), nil)

	_, cmd := m.Update(keyMsg("esc"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestViewWaitsForDimensions(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	m := NewModel(Options{Logger: logger, Clock: quartz.NewMock(t)})

	assert.False(t, m.IsTestMode())
	assert.Nil(t, m.Effects())
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Contains(t, m.View(), "Fetching word...")
}
