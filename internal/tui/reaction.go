package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/humbench/internal/model"
	"github.com/verte-zerg/humbench/internal/reaction"
	"github.com/verte-zerg/humbench/internal/stats"
)

var (
	reactionBoxStyle = lipgloss.NewStyle().
				Width(44).
				Height(7).
				Align(lipgloss.Center, lipgloss.Center).
				Bold(true)
	reactionWaitStyle  = reactionBoxStyle.Background(lipgloss.Color("#B23B3B")).Foreground(lipgloss.Color("#F0F0F0"))
	reactionReadyStyle = reactionBoxStyle.Background(lipgloss.Color("#2E9E5B")).Foreground(lipgloss.Color("#F0F0F0"))
	reactionIdleStyle  = reactionBoxStyle.Background(lipgloss.Color("#2B4A6F")).Foreground(lipgloss.Color("#F0F0F0"))
)

func (m *Model) updateReaction(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.handleCommon(msg); ok {
		return cmd
	}
	switch {
	case key.Matches(msg, m.keys.React):
		m.hub.Reaction.Input()
	case key.Matches(msg, m.keys.Restart):
		m.hub.Reaction.Start()
	}
	return nil
}

func (m *Model) viewReaction() string {
	game := m.hub.Reaction
	last := game.Last()

	var box, result string
	switch game.Phase() {
	case reaction.Waiting:
		box = reactionWaitStyle.Render("Wait for green...")
	case reaction.Ready:
		box = reactionReadyStyle.Render("Click!")
	default:
		switch last.Signal {
		case model.SignalTooSoon:
			box = reactionWaitStyle.Render("Too soon!")
			result = warningStyle.Render("Too soon! Press space to try again.")
		case model.SignalScored:
			box = reactionIdleStyle.Render(fmt.Sprintf("%d ms", last.ElapsedMs))
			result = valueStyle.Render(fmt.Sprintf("%d ms", last.ElapsedMs)) + mutedStyle.Render("  press space for another round")
		default:
			box = reactionIdleStyle.Render("Press space to start")
		}
	}

	value, ok := m.hub.Scores.Best(model.Reaction)
	parts := []string{
		heading("Reaction Time", stats.FormatBest(model.Reaction, value, ok)),
		mutedStyle.Render("When the box turns green, click or press space as fast as you can."),
		"",
		box,
	}
	if result != "" {
		parts = append(parts, "", result)
	}
	return strings.Join(parts, "\n")
}
