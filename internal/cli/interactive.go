package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/filetree/internal/config"
	"github.com/nikbrunner/filetree/internal/logging"
	"github.com/nikbrunner/filetree/internal/model"
	"github.com/nikbrunner/filetree/internal/session"
	"github.com/nikbrunner/filetree/internal/tui"
)

// runProgram drives the bubbletea loop. Piped stdin is already consumed,
// so keys are read from the controlling terminal instead.
var runProgram = func(app tui.App, piped bool) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if piped {
		opts = append(opts, tea.WithInputTTY())
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run interactive mode: %w", err)
	}
	return nil
}

// runInteractive pre-loads any piped paths and opens the editor. A failed
// read keeps the paths read so far.
func runInteractive(streams Streams, cfg config.Config, opts *options) error {
	store := model.NewStore()
	piped := streams.In != nil && !streams.isTerminal()
	if piped {
		paths, err := readInput(streams.In, opts.inputFormat)
		if err != nil {
			logging.Error(err)
			_, _ = warningColor.Fprintf(streams.Err, "Warning: %v\n", err)
		}
		store = loadStore(paths, opts.filter)
	}

	styles := tui.NewStyles(cfg.UI.Accent)
	app := tui.NewApp(tui.AppParams{
		Session:   session.New(store),
		Styles:    &styles,
		HideHints: !cfg.UI.ShowHints,
	})
	return runProgram(app, piped)
}
