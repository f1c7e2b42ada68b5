package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/wordle/internal/board"
	"github.com/muesli/termenv"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#538D4E")).
			Bold(true).
			Padding(0, 2)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Theme holds the cell styles of one colour scheme
type Theme struct {
	Name  string
	cells map[board.CellState]lipgloss.Style
	keys  map[board.CellState]lipgloss.Style
}

func cellStyle(fg, bg, border string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Bold(true).
		Width(3).
		Align(lipgloss.Center)
}

func keyStyle(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Bold(true).
		Padding(0, 1)
}

var (
	DarkTheme = Theme{
		Name: "dark",
		cells: map[board.CellState]lipgloss.Style{
			board.CellEmpty:   cellStyle("#FAFAFA", "#121213", "#3A3A3C"),
			board.CellTyped:   cellStyle("#FAFAFA", "#121213", "#878A8C"),
			board.CellCorrect: cellStyle("#FAFAFA", "#538D4E", "#538D4E"),
			board.CellPresent: cellStyle("#FAFAFA", "#B59F3B", "#B59F3B"),
			board.CellAbsent:  cellStyle("#FAFAFA", "#3A3A3C", "#3A3A3C"),
		},
		keys: map[board.CellState]lipgloss.Style{
			board.CellEmpty:   keyStyle("#FAFAFA", "#818384"),
			board.CellCorrect: keyStyle("#FAFAFA", "#538D4E"),
			board.CellPresent: keyStyle("#FAFAFA", "#B59F3B"),
			board.CellAbsent:  keyStyle("#818384", "#3A3A3C"),
		},
	}

	LightTheme = Theme{
		Name: "light",
		cells: map[board.CellState]lipgloss.Style{
			board.CellEmpty:   cellStyle("#000000", "#FFFFFF", "#D3D6DA"),
			board.CellTyped:   cellStyle("#000000", "#FFFFFF", "#878A8C"),
			board.CellCorrect: cellStyle("#FFFFFF", "#6AAA64", "#6AAA64"),
			board.CellPresent: cellStyle("#FFFFFF", "#C9B458", "#C9B458"),
			board.CellAbsent:  cellStyle("#FFFFFF", "#787C7E", "#787C7E"),
		},
		keys: map[board.CellState]lipgloss.Style{
			board.CellEmpty:   keyStyle("#000000", "#D3D6DA"),
			board.CellCorrect: keyStyle("#FFFFFF", "#6AAA64"),
			board.CellPresent: keyStyle("#FFFFFF", "#C9B458"),
			board.CellAbsent:  keyStyle("#FFFFFF", "#787C7E"),
		},
	}
)

// ThemeByName returns the named theme, falling back to DarkTheme
func ThemeByName(name string) Theme {
	if name == LightTheme.Name {
		return LightTheme
	}
	return DarkTheme
}

// Cell returns the style of a board cell
func (t Theme) Cell(state board.CellState) lipgloss.Style {
	if s, ok := t.cells[state]; ok {
		return s
	}
	return t.cells[board.CellEmpty]
}

// Key returns the style of a keyboard hint letter
func (t Theme) Key(state board.CellState) lipgloss.Style {
	if s, ok := t.keys[state]; ok {
		return s
	}
	return t.keys[board.CellEmpty]
}

// SetupColors selects the terminal colour profile. Colour is turned off when
// noColor is set or the environment asks for it (NO_COLOR, CLICOLOR=0).
func SetupColors(noColor bool) {
	if noColor || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
