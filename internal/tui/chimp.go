package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/humbench/internal/chimp"
	"github.com/verte-zerg/humbench/internal/generator"
	"github.com/verte-zerg/humbench/internal/model"
	"github.com/verte-zerg/humbench/internal/stats"
)

const gridSide = 3

var (
	cellStyle = lipgloss.NewStyle().
			Width(5).
			Height(1).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cellLabelStyle  = cellStyle.Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cellHiddenStyle = cellStyle.Background(lipgloss.Color("#3A3A3A"))
)

func (m *Model) updateChimp(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.handleCommon(msg); ok {
		return cmd
	}
	game := m.hub.Chimp
	switch {
	case key.Matches(msg, m.keys.Cell):
		pos, err := strconv.Atoi(msg.String())
		if err == nil {
			m.cursor = pos - 1
			game.Click(pos - 1)
		}
	case key.Matches(msg, m.keys.Select):
		if game.Phase() == chimp.RoundOver {
			game.StartGame()
			return nil
		}
		game.Click(m.cursor)
	case key.Matches(msg, m.keys.Restart):
		game.StartGame()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-gridSide)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(gridSide)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= generator.GridCells {
		return
	}
	if (delta == 1 || delta == -1) && next/gridSide != m.cursor/gridSide {
		return
	}
	m.cursor = next
}

// renderGrid draws the 3x3 board.
func (m *Model) renderGrid() string {
	cells := m.hub.Chimp.Cells()
	rows := make([]string, 0, gridSide)
	for r := 0; r < gridSide; r++ {
		row := make([]string, 0, gridSide)
		for c := 0; c < gridSide; c++ {
			pos := r*gridSide + c
			row = append(row, renderCell(cells[pos], pos == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cellAt maps a terminal position to a grid cell by locating the board in
// the rendered frame.
func (m *Model) cellAt(x, y int) (int, bool) {
	frame := strings.Split(m.View(), "\n")
	firstRow := strings.Split(m.renderGrid(), "\n")[0]
	top, left := -1, 0
	for i, line := range frame {
		if idx := strings.Index(line, firstRow); idx >= 0 {
			top = i
			left = lipgloss.Width(line[:idx])
			break
		}
	}
	if top < 0 || x < left || y < top {
		return 0, false
	}
	blank := renderCell(chimp.Cell{}, false)
	col := (x - left) / lipgloss.Width(blank)
	row := (y - top) / lipgloss.Height(blank)
	if col >= gridSide || row >= gridSide {
		return 0, false
	}
	return row*gridSide + col, true
}

func (m *Model) clickChimp(x, y int) {
	pos, ok := m.cellAt(x, y)
	if !ok {
		return
	}
	m.cursor = pos
	m.hub.Chimp.Click(pos)
}

func (m *Model) viewChimp() string {
	game := m.hub.Chimp
	grid := m.renderGrid()

	var status string
	switch game.Phase() {
	case chimp.Displaying:
		status = mutedStyle.Render("Memorize the order...")
	case chimp.AwaitingInput:
		status = mutedStyle.Render(fmt.Sprintf("Select cell %d of %d", game.NextExpected()+1, len(game.Sequence())))
	case chimp.RoundOver:
		status = warningStyle.Render(fmt.Sprintf("Wrong! Score: %d", game.Last().Level)) + mutedStyle.Render("  press r to play again")
	default:
		if game.Last().Signal == model.SignalScored {
			status = valueStyle.Render(fmt.Sprintf("Level %d cleared", game.Last().Level))
		} else {
			status = mutedStyle.Render("Press r to start")
		}
	}

	value, ok := m.hub.Scores.Best(model.Chimp)
	return strings.Join([]string{
		heading("Chimp Test", stats.FormatBest(model.Chimp, value, ok)),
		mutedStyle.Render(fmt.Sprintf("Level %d", game.Level())),
		"",
		grid,
		"",
		status,
	}, "\n")
}

func renderCell(cell chimp.Cell, selected bool) string {
	style := cellStyle
	text := " "
	switch {
	case cell.Label > 0:
		style = cellLabelStyle
		text = strconv.Itoa(cell.Label)
	case cell.Hidden:
		style = cellHiddenStyle
	}
	if selected {
		style = style.BorderForeground(lipgloss.Color("#C89A3A"))
	}
	return style.Render(text)
}
