package layout

// Config holds the fixed dimensions of the interactive screen.
type Config struct {
	// ChromeHeight is subtracted from the terminal height to get the number
	// of tree rows. Accounts for: three pane labels (3) + tree pane
	// borders (2) + info pane (3) + input pane (3) = 11
	ChromeHeight int

	// MinTreeRows is the minimum number of visible tree rows.
	MinTreeRows int

	// PanePadding is subtracted from the terminal width for row content.
	// Accounts for pane borders and horizontal padding on each side.
	PanePadding int

	// Marker is drawn before the selected row; other rows get the same
	// width of blanks.
	Marker string

	// Ellipsis marks truncated rows.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		ChromeHeight: 11,
		MinTreeRows:  3,
		PanePadding:  4,
		Marker:       ">> ",
		Ellipsis:     "...",
	}
}

// TreeRows computes how many rows of the tree fit on screen.
func TreeRows(terminalHeight int, cfg Config) int {
	rows := terminalHeight - cfg.ChromeHeight
	if rows < cfg.MinTreeRows {
		return cfg.MinTreeRows
	}
	return rows
}

// ContentWidth computes the width available inside a full-width pane.
func ContentWidth(terminalWidth int, cfg Config) int {
	width := terminalWidth - cfg.PanePadding
	if width < 1 {
		return 1
	}
	return width
}

// Window returns the half-open range [start, end) of rows to draw so that
// selected stays visible. The window only scrolls once the selection
// reaches its edge.
func Window(selected, total, visible int) (start, end int) {
	if total <= visible || visible <= 0 {
		return 0, total
	}
	if selected >= visible {
		start = selected - visible + 1
	}
	end = start + visible
	if end > total {
		end = total
		start = end - visible
	}
	return start, end
}
