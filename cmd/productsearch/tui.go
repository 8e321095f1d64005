package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/a-h/productsearch/card"
	"github.com/a-h/productsearch/client"
	"github.com/a-h/productsearch/search"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type TUICommand struct {
	APIURL   string `help:"The URL of the products API." env:"PRODUCTS_API_URL" default:"http://localhost:8000/products"`
	LogFile  string `help:"Write logs to this file. The terminal is used for the UI, so logs are discarded by default." env:"LOG_FILE" default:""`
	LogLevel string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c TUICommand) Run(ctx context.Context) (err error) {
	var w io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	log := newLogger(w, c.LogLevel)

	session := search.NewSession(log, client.New(c.APIURL))
	defer session.Close()

	p := tea.NewProgram(newModel(ctx, session), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		return err
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(card.Purple).Bold(true).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(card.Comment).Padding(0, 1)
)

const helpText = "Describe a product and press enter to search. ↑/↓ scroll, esc quits."

type model struct {
	ctx      context.Context
	session  *search.Session
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	width    int

	loading bool
	// outcome is the latest accepted search, nil before the first search.
	outcome *search.Outcome
}

func newModel(ctx context.Context, session *search.Session) model {
	ti := textinput.New()
	ti.Placeholder = "Wireless headphones with long battery life..."
	ti.Prompt = "┃ "
	ti.CharLimit = 280
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(card.Cyan)

	vp := viewport.New(80, 20)

	m := model{
		ctx:      ctx,
		session:  session,
		input:    ti,
		spinner:  sp,
		viewport: vp,
		width:    80,
	}
	m.viewport.SetContent(m.content())
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func runSearch(req search.Request) tea.Cmd {
	return func() tea.Msg {
		return req.Run()
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case search.Outcome:
		if !m.session.Accept(msg) {
			// A newer search has started.
			return m, nil
		}
		m.loading = false
		m.outcome = &msg
		m.viewport.SetContent(m.content())
		m.viewport.GotoTop()
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(m.input.Prompt) - 1
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-5, 1)
		m.viewport.SetContent(m.content())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.session.Close()
			return m, tea.Quit
		case "enter":
			req, ok := m.session.Start(m.ctx, m.input.Value())
			if !ok {
				return m, nil
			}
			m.loading = true
			m.outcome = nil
			m.viewport.SetContent("")
			return m, tea.Batch(m.spinner.Tick, runSearch(req))
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// content is what the viewport shows for the current state.
func (m model) content() string {
	if m.loading {
		return ""
	}
	if m.outcome == nil {
		return helpStyle.Render(helpText)
	}
	return renderOutcome(*m.outcome, m.width)
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Product Search"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.loading {
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Searching...")
	}
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	return sb.String()
}
