// Package tui implements the interactive quote browser. It is a thin
// surface over the application core: every key maps to a state or
// coordinator call, and a periodic tick polls the published sync status.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gosyncquotes/internal/app"
	"gosyncquotes/internal/operations"
	syncpkg "gosyncquotes/internal/sync"
	"gosyncquotes/quote"
	"gosyncquotes/remote"
	"gosyncquotes/store"
)

// screen names the active view of the browser
type screen int

const (
	screenBrowse screen = iota
	screenAdd
	screenConflicts
)

// statusTickMsg drives the periodic status refresh
type statusTickMsg time.Time

// quoteAddedMsg reports the outcome of an add submitted from the form
type quoteAddedMsg struct {
	quote  quote.Quote
	result remote.PostResult
	err    error
}

// browseModel is the bubbletea browseModel for the quote browser
type browseModel struct {
	app    *app.App
	screen screen

	current  quote.Quote
	hasQuote bool
	viewErr  error

	textInput     textinput.Model
	categoryInput textinput.Model
	focusIndex    int
	formErr       error

	status syncpkg.Status
	notice string

	quitting bool
	width    int
	height   int
}

// newModel creates a new bubbletea browseModel
func newModel(a *app.App) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Enter quote text..."
	ti.Focus()
	ti.Width = 50

	ci := textinput.New()
	ci.Placeholder = "Category..."
	ci.Width = 30

	m := browseModel{
		app:           a,
		screen:        screenBrowse,
		textInput:     ti,
		categoryInput: ci,
		status:        a.Coordinator().Status(),
		width:         80,
		height:        24,
	}

	if q, err := a.State().RandomQuote(); err != nil {
		m.viewErr = err
	} else {
		m.current = q
		m.hasQuote = true
	}
	return m
}

func statusTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

// Init initializes the browseModel
func (m browseModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, statusTick())
}

// Update handles messages and updates browseModel state
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statusTickMsg:
		m.status = m.app.Coordinator().Status()
		return m, statusTick()

	case quoteAddedMsg:
		return m.handleQuoteAdded(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.screen != screenAdd {
				m.quitting = true
				return m, tea.Quit
			}

		case "esc":
			if m.screen == screenBrowse {
				m.quitting = true
				return m, tea.Quit
			}
			m.screen = screenBrowse
			m.formErr = nil
			return m, nil

		case "enter":
			if m.screen == screenAdd {
				return m.handleSubmit()
			}
			if m.screen == screenBrowse {
				return m.handleNextQuote()
			}

		case "n", " ":
			if m.screen == screenBrowse {
				return m.handleNextQuote()
			}

		case "f":
			if m.screen == screenBrowse {
				return m.handleCycleFilter()
			}

		case "a":
			if m.screen == screenBrowse {
				return m.handleOpenAdd()
			}

		case "s":
			if m.screen == screenBrowse {
				return m.handleSyncNow()
			}

		case "c":
			if m.screen == screenBrowse {
				m.screen = screenConflicts
				return m, nil
			}

		case "x":
			if m.screen == screenConflicts {
				m.app.Coordinator().ClearConflictLog()
				return m, nil
			}

		case "tab", "shift+tab", "up", "down":
			if m.screen == screenAdd {
				return m.handleFormFocus()
			}
		}
	}

	// Everything else feeds the add form while it is open
	if m.screen == screenAdd {
		return m.updateInputs(msg)
	}

	return m, nil
}

// Key handlers

func (m browseModel) handleNextQuote() (tea.Model, tea.Cmd) {
	m.notice = ""
	q, err := m.app.State().RandomQuote()
	if err != nil {
		m.viewErr = err
		m.hasQuote = false
		return m, nil
	}
	m.current = q
	m.hasQuote = true
	m.viewErr = nil
	return m, nil
}

// handleCycleFilter advances the category filter through
// all -> each category -> all, then draws from the new pool.
func (m browseModel) handleCycleFilter() (tea.Model, tea.Cmd) {
	options := []string{store.DefaultFilter}
	for _, c := range m.app.State().Categories() {
		options = append(options, c.Name)
	}

	current := m.app.State().Filter()
	next := options[0]
	for i, opt := range options {
		if opt == current {
			next = options[(i+1)%len(options)]
			break
		}
	}

	m.app.State().SetFilter(next)
	return m.handleNextQuote()
}

func (m browseModel) handleOpenAdd() (tea.Model, tea.Cmd) {
	m.screen = screenAdd
	m.formErr = nil
	m.notice = ""
	m.focusIndex = 0
	m.textInput.SetValue("")
	m.categoryInput.SetValue("")
	m.textInput.Focus()
	m.categoryInput.Blur()
	return m, textinput.Blink
}

// handleSubmit validates the form, then runs the shared add operation in
// a command so the best-effort server push never blocks the UI.
func (m browseModel) handleSubmit() (tea.Model, tea.Cmd) {
	text := m.textInput.Value()
	category := m.categoryInput.Value()
	if err := quote.Validate(text, category); err != nil {
		m.formErr = err
		return m, nil
	}

	m.screen = screenBrowse
	m.formErr = nil
	m.notice = "Adding quote..."

	state := m.app.State()
	gateway := m.app.Gateway()
	return m, func() tea.Msg {
		q, result, err := operations.AddQuote(state, gateway, text, category)
		return quoteAddedMsg{quote: q, result: result, err: err}
	}
}

func (m browseModel) handleQuoteAdded(msg quoteAddedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notice = "Add failed: " + msg.err.Error()
		return m, nil
	}

	m.current = msg.quote
	m.hasQuote = true
	m.viewErr = nil
	if msg.result.OK {
		m.notice = "Quote added and pushed to server"
	} else {
		m.notice = "Quote added locally (server push failed)"
	}
	return m, nil
}

func (m browseModel) handleSyncNow() (tea.Model, tea.Cmd) {
	m.app.Coordinator().TriggerSync()
	m.notice = "Sync requested"
	return m, nil
}

func (m browseModel) handleFormFocus() (tea.Model, tea.Cmd) {
	m.focusIndex = (m.focusIndex + 1) % 2
	if m.focusIndex == 0 {
		m.textInput.Focus()
		m.categoryInput.Blur()
	} else {
		m.textInput.Blur()
		m.categoryInput.Focus()
	}
	return m, textinput.Blink
}

func (m browseModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.textInput, cmd = m.textInput.Update(msg)
	} else {
		m.categoryInput, cmd = m.categoryInput.Update(msg)
	}
	return m, cmd
}
