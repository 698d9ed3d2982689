package tui

import (
	"strings"

	"github.com/nikbrunner/filetree/internal/session"
)

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "add")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Label  string // Mode label shown before the hints (e.g., "NORMAL")
	Nav    []Hint
	Edit   []Hint
	System []Hint
}

// All returns all hints flattened in display order: Nav + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// renderHints renders hints in horizontal format: "NORMAL: j/k:move i:insert".
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
	}
	line := strings.Join(parts, " ")
	if hints.Label == "" {
		return line
	}
	return hints.Label + ": " + line
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	if a.showHelp {
		return HintSet{
			System: []Hint{{Key: "?/Esc", Desc: "close"}},
		}
	}
	if a.finding {
		return HintSet{
			Label:  "FIND",
			Edit:   []Hint{{Key: "Enter", Desc: "jump"}},
			System: []Hint{{Key: "Esc", Desc: "cancel"}},
		}
	}

	switch a.session.Mode() {
	case session.ModeInsert:
		return HintSet{
			Label: "INSERT",
			Edit: []Hint{
				{Key: "type/paste", Desc: "path"},
				{Key: "Enter", Desc: "add & next"},
			},
			System: []Hint{{Key: "Esc", Desc: "done"}},
		}
	case session.ModeEdit:
		return HintSet{
			Label: "EDIT",
			Edit: []Hint{
				{Key: "Enter", Desc: "save (renames children)"},
			},
			System: []Hint{{Key: "Esc", Desc: "cancel"}},
		}
	case session.ModeDeleteConfirm:
		return HintSet{
			Label:  "CONFIRM",
			Edit:   []Hint{{Key: "d", Desc: "delete"}},
			System: []Hint{{Key: "Esc/any", Desc: "cancel"}},
		}
	default:
		return HintSet{
			Label: "NORMAL",
			Nav: []Hint{
				{Key: "j/k", Desc: "move"},
				{Key: "/", Desc: "find"},
			},
			Edit: []Hint{
				{Key: "i", Desc: "insert"},
				{Key: "e", Desc: "edit"},
				{Key: "d", Desc: "delete"},
				{Key: "c", Desc: "copy"},
			},
			System: []Hint{
				{Key: "?", Desc: "help"},
				{Key: "q", Desc: "quit"},
			},
		}
	}
}
