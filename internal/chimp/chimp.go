// Package chimp implements the sequence-memory benchmark on a 3x3 grid.
package chimp

import (
	"github.com/verte-zerg/humbench/internal/clock"
	"github.com/verte-zerg/humbench/internal/generator"
	"github.com/verte-zerg/humbench/internal/model"
)

// Phase is the state of the current round.
type Phase int

const (
	// Idle means no game is running or the game was paused.
	Idle Phase = iota
	// Displaying means the sequence labels are visible.
	Displaying
	// AwaitingInput means labels are hidden and clicks are accepted.
	AwaitingInput
	// RoundOver means the last round failed; the game waits for StartGame.
	RoundOver
)

func (p Phase) String() string {
	switch p {
	case Displaying:
		return "displaying"
	case AwaitingInput:
		return "awaiting-input"
	case RoundOver:
		return "round-over"
	default:
		return "idle"
	}
}

// Recorder receives round scores.
type Recorder interface {
	Record(category model.Category, value int)
}

// SequenceSource draws a sequence of unique cell positions.
type SequenceSource interface {
	Sequence(n int) []int
}

// Cell is the display state of one grid position.
type Cell struct {
	// Label is the 1-based order number, or 0 when nothing is shown.
	Label int
	// Hidden marks a covered cell during input.
	Hidden bool
}

// Game is the chimp test state machine.
type Game struct {
	cfg    model.ChimpConfig
	sched  clock.Scheduler
	seqs   SequenceSource
	scores Recorder

	level        int
	sequence     []int
	phase        Phase
	nextExpected int
	cells        [generator.GridCells]Cell
	pending      clock.Task
	last         model.ChimpResult
}

// New constructs an idle chimp game.
func New(cfg model.ChimpConfig, sched clock.Scheduler, seqs SequenceSource, scores Recorder) *Game {
	return &Game{
		cfg:    cfg,
		sched:  sched,
		seqs:   seqs,
		scores: scores,
		level:  1,
	}
}

// Level returns the level of the current round.
func (g *Game) Level() int {
	return g.level
}

// Phase returns the current round phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Sequence returns a copy of the current sequence.
func (g *Game) Sequence() []int {
	return append([]int(nil), g.sequence...)
}

// NextExpected returns the index of the next position to click.
func (g *Game) NextExpected() int {
	return g.nextExpected
}

// Cells returns the display state of every grid cell.
func (g *Game) Cells() [generator.GridCells]Cell {
	return g.cells
}

// Last returns the outcome of the most recent click.
func (g *Game) Last() model.ChimpResult {
	return g.last
}

// AcceptingInput reports whether clicks are currently evaluated.
func (g *Game) AcceptingInput() bool {
	return g.phase == AwaitingInput
}

// StartGame resets to level 1 and starts a round.
func (g *Game) StartGame() {
	g.last = model.ChimpResult{Signal: model.SignalStarted}
	g.StartRound(1)
}

// StartRound shows the sequence for level, then hides it. Levels past the
// grid size keep a full-grid sequence.
func (g *Game) StartRound(level int) {
	g.cancel()
	if level < 1 {
		level = 1
	}
	g.level = level
	g.sequence = g.seqs.Sequence(min(level, generator.GridCells))
	g.nextExpected = 0
	g.cells = [generator.GridCells]Cell{}
	for i, pos := range g.sequence {
		g.cells[pos] = Cell{Label: i + 1}
	}
	g.phase = Displaying
	g.pending = g.sched.AfterFunc(g.cfg.Reveal, g.hide)
}

func (g *Game) hide() {
	g.pending = nil
	if g.phase != Displaying {
		return
	}
	for i := range g.cells {
		g.cells[i] = Cell{Hidden: true}
	}
	g.nextExpected = 0
	g.phase = AwaitingInput
}

// Click evaluates a cell selection. Clicks outside AwaitingInput and
// out-of-range positions are ignored.
func (g *Game) Click(position int) model.ChimpResult {
	if g.phase != AwaitingInput || position < 0 || position >= generator.GridCells {
		return model.ChimpResult{Signal: model.SignalNone}
	}
	if position != g.sequence[g.nextExpected] {
		score := g.level - 1
		g.phase = RoundOver
		g.scores.Record(model.Chimp, score)
		g.last = model.ChimpResult{Signal: model.SignalFailed, Level: score}
		return g.last
	}
	g.cells[position] = Cell{Label: g.nextExpected + 1}
	g.nextExpected++
	if g.nextExpected < len(g.sequence) {
		g.last = model.ChimpResult{Signal: model.SignalCorrect, Level: g.level}
		return g.last
	}

	completed := g.level
	g.scores.Record(model.Chimp, completed)
	g.level++
	g.phase = Idle
	next := g.level
	g.pending = g.sched.AfterFunc(g.cfg.Pause, func() {
		g.pending = nil
		g.StartRound(next)
	})
	g.last = model.ChimpResult{Signal: model.SignalScored, Level: completed}
	return g.last
}

// Pause stops accepting input and clears the board. Level and recorded
// scores are unchanged.
func (g *Game) Pause() {
	g.cancel()
	g.phase = Idle
	g.nextExpected = 0
	g.cells = [generator.GridCells]Cell{}
}

func (g *Game) cancel() {
	clock.StopTask(g.pending)
	g.pending = nil
}
