package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/humbench/internal/bench"
	"github.com/verte-zerg/humbench/internal/model"
	"github.com/verte-zerg/humbench/internal/stats"
)

type menuItem struct {
	view     bench.View
	title    string
	category model.Category
}

var menuItems = []menuItem{
	{view: bench.ViewReaction, title: "Reaction Time", category: model.Reaction},
	{view: bench.ViewChimp, title: "Chimp Test", category: model.Chimp},
	{view: bench.ViewTyping, title: "Typing Speed", category: model.Typing},
	{view: bench.ViewDashboard, title: "Dashboard"},
}

var (
	activeItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
)

func menuIndex(v bench.View) int {
	for i, item := range menuItems {
		if item.view == v {
			return i
		}
	}
	return 0
}

func (m *Model) updateHome(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.menuIdx = (m.menuIdx - 1 + len(menuItems)) % len(menuItems)
	case key.Matches(msg, m.keys.Down):
		m.menuIdx = (m.menuIdx + 1) % len(menuItems)
	case key.Matches(msg, m.keys.Select):
		m.navigate(menuItems[m.menuIdx].view)
	}
	return nil
}

func (m *Model) viewHome() string {
	bests := m.hub.Scores.Bests()
	rows := make([]string, 0, len(menuItems))
	for i, item := range menuItems {
		label := item.title
		if item.category != "" {
			value, ok := bests[item.category]
			label = fmt.Sprintf("%-14s %s", item.title, stats.FormatBest(item.category, value, ok))
		}
		style := inactiveItemStyle
		if i == m.menuIdx {
			style = activeItemStyle
		}
		rows = append(rows, style.Width(32).Render(label))
	}
	return strings.Join([]string{
		titleStyle.Render("Human Benchmark"),
		mutedStyle.Render("Measure your reaction, memory, and typing."),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	}, "\n")
}
