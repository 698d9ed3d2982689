package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	Pane         lipgloss.Style
	InputActive  lipgloss.Style
	Label        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Empty        lipgloss.Style
	Status       lipgloss.Style // Normal and Insert status line
	StatusEdit   lipgloss.Style
	StatusDanger lipgloss.Style // Delete confirmation
	Prompt       lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "add", "move")
}

// DefaultStyles returns the default style configuration with the default
// teal accent.
func DefaultStyles() Styles {
	return NewStyles("")
}

// NewStyles builds the style set around accent, a hex colour or ANSI
// number. An empty accent keeps the adaptive teal.
// Industrial design: grayscale with a single accent.
func NewStyles(accent string) Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders
	danger := lipgloss.AdaptiveColor{Light: "#AF3A3A", Dark: "#D75F5F"}
	edit := lipgloss.AdaptiveColor{Light: "#874F87", Dark: "#AF87AF"}

	var highlight lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	if accent != "" {
		highlight = lipgloss.Color(accent)
	}

	return Styles{
		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),

		InputActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(highlight).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight),

		Item: lipgloss.NewStyle().
			Foreground(primary),

		ItemSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		Status: lipgloss.NewStyle().
			Foreground(highlight),

		StatusEdit: lipgloss.NewStyle().
			Foreground(edit),

		StatusDanger: lipgloss.NewStyle().
			Bold(true).
			Foreground(danger),

		Prompt: lipgloss.NewStyle().
			Foreground(highlight),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
