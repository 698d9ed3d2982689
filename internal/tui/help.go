package tui

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# filetree

Build a directory tree from slash-separated paths.

## Normal

| Key | Action |
|-----|--------|
| j / k | move down / up (wraps) |
| g / G | first / last row |
| / | find a row by fuzzy match |
| i | insert paths |
| e | edit selected path and its children |
| d | delete (press twice to confirm) |
| c | copy the tree to the clipboard |
| q | quit |

## Insert

Type or paste paths. **Enter** adds the line and keeps you in insert,
pasted lines are added one by one. **Esc** finishes.

## Edit

**Enter** saves the new path and moves every child with it.
**Esc** restores the original path and children.
`

var (
	helpMu       sync.Mutex
	helpRenderer *glamour.TermRenderer
	helpWidth    int
)

// renderHelp returns the help text rendered for the given width. Falls
// back to the raw markdown when glamour cannot render.
func renderHelp(width int) string {
	renderer := ensureHelpRenderer(width)
	if renderer == nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}

func ensureHelpRenderer(width int) *glamour.TermRenderer {
	helpMu.Lock()
	defer helpMu.Unlock()
	if helpRenderer != nil && helpWidth == width {
		return helpRenderer
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	helpRenderer = renderer
	helpWidth = width
	return helpRenderer
}
