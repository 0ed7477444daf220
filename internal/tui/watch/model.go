// Package watch renders a live view of a style's visual property mappings,
// polling the service at a fixed interval.
package watch

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-cytoscape/cyrest/internal/mapping"
	"github.com/go-cytoscape/cyrest/internal/style"
)

// mappingsMsg carries one poll's result.
type mappingsMsg struct {
	docs []mapping.Document
	err  error
}

type tickMsg struct{}

// Model is the Bubbletea state for the watch view.
type Model struct {
	applier   *style.Applier
	styleName string
	interval  time.Duration
	timeout   time.Duration

	spinner  spinner.Model
	mappings []mapping.Document
	err      error
	fetched  time.Time
	loaded   bool
	quitting bool
}

// NewModel constructs a watch model polling the named style. Each poll is
// bounded by timeout; zero falls back to the refresh interval.
func NewModel(applier *style.Applier, styleName string, interval, timeout time.Duration) Model {
	if timeout <= 0 {
		timeout = interval
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle
	return Model{
		applier:   applier,
		styleName: styleName,
		interval:  interval,
		timeout:   timeout,
		spinner:   sp,
	}
}

// Init starts the spinner and the first poll.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

// Update handles Bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mappingsMsg:
		m.loaded = true
		m.fetched = time.Now()
		m.err = msg.err
		if msg.err == nil {
			m.mappings = msg.docs
		}
		return m, m.scheduleTick()
	case tickMsg:
		return m, m.fetchCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) fetchCmd() tea.Cmd {
	applier, styleName, timeout := m.applier, m.styleName, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		docs, err := applier.GetAll(ctx, styleName)
		return mappingsMsg{docs: docs, err: err}
	}
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
