package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/humbench/internal/model"
	"github.com/verte-zerg/humbench/internal/stats"
)

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Width(18).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	modalStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

func (m *Model) updateDashboard(msg tea.KeyMsg) tea.Cmd {
	if m.confirm {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.hub.Scores.Clear()
			m.confirm = false
			m.notice = "Scores cleared."
		case key.Matches(msg, m.keys.Cancel):
			m.confirm = false
		}
		return nil
	}
	if cmd, ok := m.handleCommon(msg); ok {
		return cmd
	}
	if key.Matches(msg, m.keys.Clear) {
		m.confirm = true
		m.notice = ""
	}
	return nil
}

func (m *Model) viewDashboard() string {
	bests := m.hub.Scores.Bests()
	cards := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		value, ok := bests[c]
		cards = append(cards, metricCard(c.Label(), stats.FormatBest(c, value, ok)))
	}
	var grid string
	if m.width > 0 && m.width < 60 {
		grid = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	parts := []string{titleStyle.Render("Dashboard"), "", grid}
	if m.confirm {
		parts = append(parts, "", modalStyle.Render("Clear all stored best scores? (y/n)"))
	}
	if m.notice != "" {
		parts = append(parts, "", footerStyle.Render(m.notice))
	}
	return strings.Join(parts, "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}
