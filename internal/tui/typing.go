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

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	overflowStyle    = incorrectStyle.Strikethrough(true)
)

func (m *Model) updateTyping(msg tea.KeyMsg) tea.Cmd {
	session := m.hub.Typing
	switch {
	case key.Matches(msg, m.keys.Back):
		m.navigate(bench.ViewHome)
		return nil
	case key.Matches(msg, m.keys.Conclude):
		session.Conclude(session.Typed())
		return nil
	case key.Matches(msg, m.keys.Next):
		session.LoadSample(m.hub.Samples.Next())
		return nil
	case key.Matches(msg, m.keys.Prev):
		session.LoadSample(m.hub.Samples.Prev())
		return nil
	case key.Matches(msg, m.keys.Reset):
		session.LoadSample(m.hub.Samples.Current())
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		session.Backspace()
	case tea.KeySpace:
		session.Type(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			session.Type(r)
		}
	}
	return nil
}

func (m *Model) viewTyping() string {
	session := m.hub.Typing
	target := []rune(session.Reference())
	input := session.TypedRunes()
	styled := buildStyledRunes(target, input, cursorPosition(session.Ended(), len(target), len(input)))
	width := m.contentWidth()
	text := lipgloss.NewStyle().Width(width).Render(wrapStyledRunes(styled, width))

	value, ok := m.hub.Scores.Best(model.Typing)
	parts := []string{
		heading("Typing Speed", stats.FormatBest(model.Typing, value, ok)),
		mutedStyle.Render(m.sampleLabel()),
		"",
		text,
		"",
		m.typingStatus(),
	}
	return strings.Join(parts, "\n")
}

// cursorPosition returns the rune index to underline, or -1 once the session
// ended or the input reached the end of the reference.
func cursorPosition(ended bool, targetLen, inputLen int) int {
	if ended || inputLen >= targetLen {
		return -1
	}
	return inputLen
}

func (m *Model) typingStatus() string {
	session := m.hub.Typing
	if !session.Ended() {
		if !session.Started() {
			return mutedStyle.Render("Start typing; the timer begins on your first keystroke.")
		}
		return mutedStyle.Render("Press enter when you are done.")
	}
	return formatTypingResult(session.Result())
}

func formatTypingResult(r model.TypingResult) string {
	return mutedStyle.Render("WPM: ") + valueStyle.Render(fmt.Sprintf("%d", r.WPM)) +
		mutedStyle.Render(" • Accuracy: ") + valueStyle.Render(fmt.Sprintf("%d%%", r.Accuracy)) +
		mutedStyle.Render(" • Time: ") + valueStyle.Render(fmt.Sprintf("%.2fs", r.ElapsedSeconds()))
}

func (m *Model) sampleLabel() string {
	samples := m.hub.Samples
	if samples.Generated() {
		return "Generated sample"
	}
	return fmt.Sprintf("Sample %d/%d", samples.Index()+1, samples.Len())
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}
