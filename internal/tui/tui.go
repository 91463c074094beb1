// Package tui provides a Bubble Tea terminal user interface for the
// discography manager.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/discography-manager/internal/catalog"
	"github.com/handiism/discography-manager/internal/config"
	"github.com/handiism/discography-manager/internal/menu"
	"github.com/handiism/discography-manager/internal/model"
	"github.com/handiism/discography-manager/internal/query"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500")).
			Bold(true)
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateMenu
	StatePrompt
	StateResult
	StateError
)

// LogEntry represents a loader message shown in the UI.
type LogEntry struct {
	Message string
	Level   model.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	settings  *config.Settings
	service   *query.Service
	logs      []LogEntry
	err       error

	cursor int         // highlighted menu entry, index into menu.Options
	option menu.Option // option being answered
	found  bool        // whether the last answer found its album/song

	width  int
	height int
}

// NewModel creates a new TUI model that will load the catalog named by settings.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	vp := viewport.New(70, 15)

	return Model{
		state:     StateLoading,
		textInput: ti,
		spinner:   sp,
		viewport:  vp,
		settings:  settings,
	}
}

// Init starts loading the catalog.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCatalog())
}

// CatalogLoadedMsg is sent when the catalog has been loaded.
type CatalogLoadedMsg struct {
	Service *query.Service
	Events  []model.ProgressEvent
	Err     error
}

// loadCatalog reads the data file in the background.
func (m Model) loadCatalog() tea.Cmd {
	settings := m.settings
	return func() tea.Msg {
		var events []model.ProgressEvent
		loader := catalog.NewLoader(settings.ToLoadPolicy(), func(e model.ProgressEvent) {
			events = append(events, e)
		})

		c, err := loader.Load(settings.DataFile)
		if err != nil {
			return CatalogLoadedMsg{Events: events, Err: err}
		}
		return CatalogLoadedMsg{Service: query.NewService(c), Events: events}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-10, 5)
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case CatalogLoadedMsg:
		for _, e := range msg.Events {
			if e.Level == model.LevelVerbose && !m.settings.Verbose {
				continue
			}
			m.logs = append(m.logs, LogEntry{Message: e.Message, Level: e.Level})
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		m.service = msg.Service
		m.state = StateMenu
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StatePrompt:
			return m.updatePrompt(msg)
		case StateResult:
			return m.updateResult(msg)
		case StateError:
			if msg.String() == "q" || msg.String() == "esc" {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menu.Options)-1 {
			m.cursor++
		}
	case "enter":
		return m.choose(menu.Options[m.cursor])
	case "q", "esc":
		return m, tea.Quit
	default:
		if opt, err := menu.ParseOption(key); err == nil {
			m.cursor = int(opt) - 1
			return m.choose(opt)
		}
	}
	return m, nil
}

// choose starts the selected option: it either asks for input or shows the
// answer straight away.
func (m Model) choose(opt menu.Option) (tea.Model, tea.Cmd) {
	if opt == menu.Exit {
		return m, tea.Quit
	}

	m.option = opt
	if opt.Prompt() == "" {
		return m.answer(""), nil
	}

	m.state = StatePrompt
	m.textInput.SetValue("")
	m.textInput.Placeholder = strings.TrimSuffix(opt.Prompt(), ": ")
	return m, m.textInput.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.textInput.Blur()
		return m.answer(m.textInput.Value()), nil
	case "esc":
		m.textInput.Blur()
		m.state = StateMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "backspace":
		m.state = StateMenu
		return m, nil
	case "q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// answer runs the current option and switches to the result view.
func (m Model) answer(input string) Model {
	text, found := menu.Answer(m.service, m.option, input)
	m.found = found
	m.viewport.SetContent(text)
	m.viewport.GotoTop()
	m.state = StateResult
	return m
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ " + menu.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.settings.DataFile))
	b.WriteString("\n\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Loading catalog..."))
		b.WriteString("\n")
	case StateMenu:
		b.WriteString(m.viewMenu())
	case StatePrompt:
		b.WriteString(m.viewPrompt())
	case StateResult:
		b.WriteString(m.viewResult())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder

	if m.service != nil {
		c := m.service.Catalog()
		b.WriteString(infoStyle.Render(fmt.Sprintf("%d albums, %d songs", c.Len(), c.TrackCount())))
		b.WriteString("\n\n")
	}

	for i, opt := range menu.Options {
		line := fmt.Sprintf("%d. %s", opt, opt.Label())
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if len(m.logs) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderLogs())
	}

	return b.String()
}

func (m Model) viewPrompt() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(m.option.Label()))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSuffix(m.option.Prompt(), " "))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewResult() string {
	var b strings.Builder

	style := successStyle
	if !m.found {
		style = warningStyle
	}
	b.WriteString(style.Render(m.option.Label()))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.viewport.View()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Could not load the catalog:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n")
	}
	if len(m.logs) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderLogs())
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case model.LevelError:
			style = errorStyle
			prefix = "✗"
		case model.LevelWarning:
			style = warningStyle
			prefix = "!"
		case model.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case model.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateMenu:
		return "↑/↓: move • enter or 1-8: choose • q: quit"
	case StatePrompt:
		return "enter: search • esc: back"
	case StateResult:
		return "↑/↓: scroll • esc: back • q: quit"
	case StateError:
		return "q: quit"
	}
	return "ctrl+c: quit"
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
