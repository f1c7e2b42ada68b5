package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/wordle/internal/board"
	"github.com/lox/wordle/internal/input"
	"github.com/lox/wordle/internal/solution"
	"github.com/lox/wordle/internal/wordle"
)

// ShakeDuration is how long a rejected row keeps shaking
const ShakeDuration = 500 * time.Millisecond

// Observer receives every game state the model settles on
type Observer interface {
	Publish(state wordle.GameState)
}

// Options configures a Model
type Options struct {
	Provider solution.Provider
	Logger   *log.Logger
	Clock    quartz.Clock
	Observer Observer
	Rules    wordle.Rules
	Theme    Theme

	// Context bounds the solution fetch
	Context context.Context

	// TestMode renders without waiting for a window size and records effects
	TestMode bool
}

// Model is the Bubble Tea model for one game
type Model struct {
	controller *input.Controller
	provider   solution.Provider
	logger     *log.Logger
	clock      quartz.Clock
	observer   Observer
	theme      Theme
	ctx        context.Context

	// UI components
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	// State
	fetchErr error
	shakeSeq int
	quitting bool

	// Dimensions
	width  int
	height int

	// Test mode
	testMode bool
	effects  []wordle.Effect
}

// solutionMsg carries the result of the solution fetch
type solutionMsg struct {
	word string
	err  error
}

// clearShakeMsg ends the shake started by the rejected submit numbered seq
type clearShakeMsg struct {
	seq int
}

// NewModel creates a model for a new game
func NewModel(opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Theme.Name == "" {
		opts.Theme = DarkTheme
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = WarningStyle

	return &Model{
		controller: input.NewController(wordle.NewGameWithRules(opts.Rules)),
		provider:   opts.Provider,
		logger:     opts.Logger.WithPrefix("tui"),
		clock:      opts.Clock,
		observer:   opts.Observer,
		theme:      opts.Theme,
		ctx:        opts.Context,
		spinner:    sp,
		help:       help.New(),
		keys:       defaultKeyMap(),
		testMode:   opts.TestMode,
	}
}

// Init starts the solution fetch
func (m *Model) Init() tea.Cmd {
	m.publish()
	return tea.Batch(m.spinner.Tick, m.fetchSolution())
}

// fetchSolution returns a command that asks the provider for the solution
func (m *Model) fetchSolution() tea.Cmd {
	provider := m.provider
	ctx := m.ctx
	return func() tea.Msg {
		if provider == nil {
			return solutionMsg{err: solution.ErrNoWords}
		}
		word, err := provider.Fetch(ctx)
		return solutionMsg{word: word, err: err}
	}
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case solutionMsg:
		if msg.err != nil {
			m.fetchErr = msg.err
			m.logger.Error("Failed to fetch solution", "error", msg.err)
			return m, nil
		}
		m.apply(wordle.SolutionReady{Word: msg.word})
		m.logger.Debug("Solution ready", "length", len(msg.word))
		return m, nil

	case clearShakeMsg:
		if msg.seq == m.shakeSeq {
			m.apply(wordle.ClearShake{})
		}
		return m, nil

	case spinner.TickMsg:
		if m.State().HasSolution() || m.fetchErr != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.handleKey(msg.String())
	}

	return m, nil
}

// handleKey feeds one key press to the game
func (m *Model) handleKey(k string) tea.Cmd {
	ev, ok := input.EventForKey(k)
	if !ok {
		return nil
	}

	effect := m.apply(ev)
	switch effect {
	case wordle.EffectRejected:
		m.logger.Debug("Incomplete guess rejected", "row", m.State().ShakeRow)
		return m.scheduleShakeClear()
	case wordle.EffectAwaitingSolution:
		m.logger.Info("Guess held back, solution not ready")
	case wordle.EffectWon, wordle.EffectLost:
		state := m.State()
		m.logger.Info("Game over", "status", state.Status, "turns", state.Turn())
	case wordle.EffectScored:
		state := m.State()
		m.logger.Debug("Guess scored", "turn", state.Turn(), "result", state.Results[state.Turn()-1])
	}
	return nil
}

// scheduleShakeClear starts the shake timer. The timer is created before the
// command runs so that a mock clock sees it immediately.
func (m *Model) scheduleShakeClear() tea.Cmd {
	m.shakeSeq++
	seq := m.shakeSeq
	fired := make(chan struct{})
	m.clock.AfterFunc(ShakeDuration, func() { close(fired) }, "tui", "shake")

	return func() tea.Msg {
		<-fired
		return clearShakeMsg{seq: seq}
	}
}

// apply runs ev through the controller and publishes any change
func (m *Model) apply(ev wordle.Event) wordle.Effect {
	effect := m.controller.Apply(ev)
	if m.testMode {
		m.effects = append(m.effects, effect)
	}
	if effect.Changed() {
		m.publish()
	}
	return effect
}

func (m *Model) publish() {
	if m.observer != nil {
		m.observer.Publish(m.State())
	}
}

// State returns the current game state
func (m *Model) State() wordle.GameState {
	return m.controller.State()
}

// FetchError returns the error of the solution fetch, if it failed
func (m *Model) FetchError() error {
	return m.fetchErr
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if !m.testMode && (m.width == 0 || m.height == 0) {
		return "Loading..."
	}

	b := board.Project(m.State())

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("Wordle Clone"))
	content.WriteString("\n\n")
	content.WriteString(m.renderBoard(b))
	content.WriteString("\n")
	content.WriteString(m.renderKeyboard(b))
	content.WriteString("\n\n")
	content.WriteString(m.renderStatus(b))
	content.WriteString("\n")
	content.WriteString(m.help.View(m.keys))

	view := content.String()
	if m.width > 0 && m.height > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// renderBoard renders the six guess rows
func (m *Model) renderBoard(b board.Board) string {
	rows := make([]string, 0, len(b.Rows))
	for _, row := range b.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			letter := cell.Letter
			if letter == "" {
				letter = " "
			}
			style := m.theme.Cell(cell.State)
			if cell.Effect == board.EffectPop {
				style = style.Underline(true)
			}
			cells = append(cells, style.Render(letter))
		}

		rendered := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if row.Shaking {
			rendered = lipgloss.NewStyle().PaddingLeft(2).Render(rendered)
		}
		rows = append(rows, rendered)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// renderKeyboard renders the letters coloured by what the guesses revealed
func (m *Model) renderKeyboard(b board.Board) string {
	lines := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			letter := string(r)
			keys = append(keys, m.theme.Key(b.Letters[letter]).Render(letter))
		}
		lines = append(lines, strings.Join(keys, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// renderStatus renders the line under the board
func (m *Model) renderStatus(b board.Board) string {
	state := m.State()
	switch {
	case state.Status == wordle.Won:
		return SuccessStyle.Render(b.Message)
	case state.Status == wordle.Lost:
		return ErrorStyle.Render(b.Message)
	case m.fetchErr != nil:
		return ErrorStyle.Render(fmt.Sprintf("Could not fetch a word: %v", m.fetchErr))
	case !b.Ready:
		return m.spinner.View() + " " + InfoStyle.Render("Fetching word...")
	default:
		return InfoStyle.Render(fmt.Sprintf("Guess %d of %d", b.Turn+1, wordle.MaxGuesses))
	}
}

// Effects returns the effects applied so far (test mode only)
func (m *Model) Effects() []wordle.Effect {
	if !m.testMode {
		return nil
	}
	// Return a copy to prevent modification
	result := make([]wordle.Effect, len(m.effects))
	copy(result, m.effects)
	return result
}

// IsTestMode returns whether the TUI is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}

// Run runs model as a full-screen program until the player quits or ctx is
// cancelled
func Run(ctx context.Context, model *Model) error {
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
