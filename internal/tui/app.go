package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/filetree/internal/search"
	"github.com/nikbrunner/filetree/internal/session"
	"github.com/nikbrunner/filetree/internal/tui/layout"
)

// App is the bubbletea model for the interactive tree editor. All tree
// state lives in the session; App only translates keys into session
// intents and draws the result.
type App struct {
	session      *session.Session
	clipboard    session.Clipboard
	keys         KeyMap
	styles       Styles
	layoutConfig layout.Config
	showHints    bool

	// Echo of the session buffer
	input textinput.Model

	// Find prompt, local to the view
	finding bool
	find    textinput.Model
	notice  string

	showHelp bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Session      *session.Session
	Clipboard    session.Clipboard // optional, uses the system clipboard if nil
	Keys         *KeyMap           // optional, uses default if nil
	Styles       *Styles           // optional, uses default if nil
	LayoutConfig *layout.Config    // optional, uses default if nil
	HideHints    bool
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	var clip session.Clipboard = SystemClipboard{}
	if params.Clipboard != nil {
		clip = params.Clipboard
	}

	sess := params.Session
	if sess == nil {
		sess = session.New(nil)
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "press i to insert paths"

	find := textinput.New()
	find.Prompt = "/"
	find.PromptStyle = styles.Prompt
	find.Placeholder = "find path"

	app := App{
		session:      sess,
		clipboard:    clip,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		showHints:    !params.HideHints,
		input:        input,
		find:         find,
		width:        80,
		height:       24,
	}
	app.syncInput()
	return app
}

// Session returns the underlying edit session.
func (a App) Session() *session.Session {
	return a.session
}

// Finding reports whether the find prompt is open.
func (a App) Finding() bool {
	return a.finding
}

// ShowingHelp reports whether the help overlay is open.
func (a App) ShowingHelp() bool {
	return a.showHelp
}

// WithDimensions returns a copy of the App sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		a.notice = ""

		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}

		switch {
		case a.showHelp:
			return a.updateHelp(msg)
		case a.finding:
			return a.updateFind(msg)
		}

		var cmd tea.Cmd
		switch a.session.Mode() {
		case session.ModeNormal:
			a, cmd = a.updateNormal(msg)
		case session.ModeDeleteConfirm:
			a.updateDeleteConfirm(msg)
		default:
			a.updateInput(msg)
		}
		return a, tea.Batch(cmd, a.syncInput())
	}

	// Cursor blink and other internal messages
	var cmd tea.Cmd
	if a.finding {
		a.find, cmd = a.find.Update(msg)
	} else {
		a.input, cmd = a.input.Update(msg)
	}
	return a, cmd
}

func (a App) updateNormal(msg tea.KeyMsg) (App, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		a.session.Next()

	case key.Matches(msg, a.keys.Up):
		a.session.Prev()

	case key.Matches(msg, a.keys.Top):
		a.session.First()

	case key.Matches(msg, a.keys.Bottom):
		a.session.Last()

	case key.Matches(msg, a.keys.Insert):
		a.session.BeginInsert()

	case key.Matches(msg, a.keys.Edit):
		a.session.EditSelected()

	case key.Matches(msg, a.keys.Delete):
		a.session.Delete()

	case key.Matches(msg, a.keys.Copy):
		a.session.Copy(a.clipboard)

	case key.Matches(msg, a.keys.Find):
		a.finding = true
		a.find.Reset()
		return a, a.find.Focus()

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
	}
	return a, nil
}

// updateDeleteConfirm confirms on a repeated delete; any other key
// cancels the pending deletion.
func (a App) updateDeleteConfirm(msg tea.KeyMsg) {
	if key.Matches(msg, a.keys.Delete) {
		a.session.Delete()
		return
	}
	a.session.Cancel()
}

// updateInput routes keys to the session buffer in Insert and Edit.
func (a App) updateInput(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, a.keys.Commit):
		a.session.CommitLine()

	case key.Matches(msg, a.keys.Cancel):
		a.session.Cancel()

	case key.Matches(msg, a.keys.Backspace):
		a.session.Backspace()

	case msg.Type == tea.KeySpace:
		a.session.AppendRune(' ')

	case msg.Type == tea.KeyRunes:
		if msg.Paste || len(msg.Runes) > 1 {
			a.session.AppendText(string(msg.Runes))
			return
		}
		for _, r := range msg.Runes {
			a.session.AppendRune(r)
		}
	}
}

func (a App) updateFind(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.closeFind()
		return a, nil

	case key.Matches(msg, a.keys.Commit):
		query := a.find.Value()
		a.closeFind()
		idx, ok := search.BestRow(a.session.Rows(), query)
		if !ok {
			a.notice = fmt.Sprintf("No match for '%s'.", query)
			return a, nil
		}
		a.session.SelectRow(idx)
		return a, nil
	}

	var cmd tea.Cmd
	a.find, cmd = a.find.Update(msg)
	return a, cmd
}

func (a *App) closeFind() {
	a.finding = false
	a.find.Blur()
	a.find.Reset()
}

func (a App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Help) || key.Matches(msg, a.keys.Cancel) || key.Matches(msg, a.keys.Quit) {
		a.showHelp = false
	}
	return a, nil
}

// syncInput mirrors the session buffer into the text input so the
// cursor lands after the last character.
func (a *App) syncInput() tea.Cmd {
	a.input.SetValue(a.session.Buffer())
	a.input.CursorEnd()
	if a.session.Mode().AcceptsInput() {
		if !a.input.Focused() {
			return a.input.Focus()
		}
		return nil
	}
	a.input.Blur()
	return nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
