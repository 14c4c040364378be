// Package tui provides the Bubble Tea benchmark interface.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/humbench/internal/bench"
	"github.com/verte-zerg/humbench/internal/clock"
)

// taskFiredMsg reports that a scheduled task's delay elapsed.
type taskFiredMsg struct {
	id uint64
}

// Model implements the Bubble Tea benchmark UI.
type Model struct {
	hub   *bench.Hub
	queue *clock.Queue
	keys  keyMap
	help  help.Model

	view     bench.View
	menuIdx  int
	cursor   int
	confirm  bool
	notice   string
	initView bench.View

	width  int
	height int
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// NewModel constructs the UI. queue must be the scheduler the hub's games use.
func NewModel(hub *bench.Hub, queue *clock.Queue, start bench.View) *Model {
	m := &Model{
		hub:      hub,
		queue:    queue,
		keys:     newKeyMap(),
		help:     help.New(),
		view:     bench.ViewHome,
		initView: start,
	}
	m.menuIdx = menuIndex(start)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.navigate(m.initView)
	return m.scheduled()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, tea.Batch(cmd, m.scheduled())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return nil
	case taskFiredMsg:
		m.queue.Fire(msg.id)
		return nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		switch m.view {
		case bench.ViewReaction:
			m.hub.Reaction.Input()
		case bench.ViewChimp:
			m.clickChimp(msg.X, msg.Y)
		}
		return nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.navigate(bench.ViewHome)
			return tea.Quit
		}
		switch m.view {
		case bench.ViewReaction:
			return m.updateReaction(msg)
		case bench.ViewChimp:
			return m.updateChimp(msg)
		case bench.ViewTyping:
			return m.updateTyping(msg)
		case bench.ViewDashboard:
			return m.updateDashboard(msg)
		default:
			return m.updateHome(msg)
		}
	}
	return nil
}

// scheduled turns newly scheduled tasks into tick commands.
func (m *Model) scheduled() tea.Cmd {
	pending := m.queue.Drain()
	if len(pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(pending))
	for _, p := range pending {
		id := p.ID
		cmds = append(cmds, tea.Tick(p.Delay, func(time.Time) tea.Msg {
			return taskFiredMsg{id: id}
		}))
	}
	return tea.Batch(cmds...)
}

// navigate switches views and fires lifecycle hooks.
func (m *Model) navigate(to bench.View) {
	m.hub.Switch(m.view, to)
	m.view = to
	m.confirm = false
	m.notice = ""
	if to == bench.ViewHome || to == bench.ViewDashboard {
		return
	}
	m.menuIdx = menuIndex(to)
}

// handleCommon processes keys shared by all game views. It reports whether
// the key was consumed.
func (m *Model) handleCommon(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.navigate(bench.ViewHome)
		return nil, true
	case key.Matches(msg, m.keys.Quit):
		m.navigate(bench.ViewHome)
		return tea.Quit, true
	}
	return nil, false
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.view {
	case bench.ViewReaction:
		body = m.viewReaction()
	case bench.ViewChimp:
		body = m.viewChimp()
	case bench.ViewTyping:
		body = m.viewTyping()
	case bench.ViewDashboard:
		body = m.viewDashboard()
	default:
		body = m.viewHome()
	}
	footer := m.help.View(m.keys.forView(m.view, m.confirm))
	if m.width == 0 || m.height == 0 {
		return body + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	bodyHeight := m.height - 1
	top := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return top + "\n" + footerLine
}

func heading(title, best string) string {
	lines := []string{titleStyle.Render(title)}
	if best != "" {
		lines = append(lines, mutedStyle.Render("Best: ")+valueStyle.Render(best))
	}
	return strings.Join(lines, "\n")
}
