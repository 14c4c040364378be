// Package reaction implements the reaction-time benchmark.
package reaction

import (
	"math"
	"time"

	"github.com/verte-zerg/humbench/internal/clock"
	"github.com/verte-zerg/humbench/internal/model"
)

// Phase is the state of a reaction round.
type Phase int

const (
	// Idle means no round is in progress.
	Idle Phase = iota
	// Waiting means the stimulus is scheduled but not shown.
	Waiting
	// Ready means the stimulus is shown and input is being timed.
	Ready
)

func (p Phase) String() string {
	switch p {
	case Waiting:
		return "waiting"
	case Ready:
		return "ready"
	default:
		return "idle"
	}
}

// Recorder receives round scores.
type Recorder interface {
	Record(category model.Category, value int)
}

// DelaySource draws the stimulus delay.
type DelaySource interface {
	Delay(lo, hi time.Duration) time.Duration
}

// Game is the reaction-time state machine.
type Game struct {
	cfg    model.ReactionConfig
	clock  clock.Clock
	sched  clock.Scheduler
	delays DelaySource
	scores Recorder

	phase   Phase
	armedAt time.Time
	pending clock.Task
	last    model.ReactionResult
}

// New constructs a reaction game in the Idle phase.
func New(cfg model.ReactionConfig, clk clock.Clock, sched clock.Scheduler, delays DelaySource, scores Recorder) *Game {
	return &Game{
		cfg:    cfg,
		clock:  clk,
		sched:  sched,
		delays: delays,
		scores: scores,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Last returns the outcome of the most recent input.
func (g *Game) Last() model.ReactionResult {
	return g.last
}

// Start begins a round: the stimulus arms after a random delay.
func (g *Game) Start() {
	g.cancel()
	g.phase = Waiting
	g.armedAt = time.Time{}
	g.last = model.ReactionResult{Signal: model.SignalStarted}
	delay := g.delays.Delay(g.cfg.MinDelay, g.cfg.MaxDelay)
	g.pending = g.sched.AfterFunc(delay, g.arm)
}

func (g *Game) arm() {
	g.pending = nil
	if g.phase != Waiting {
		return
	}
	g.phase = Ready
	g.armedAt = g.clock.Now()
}

// Input handles a click. Waiting is a false start, Ready is timed and
// recorded, Idle starts the next round.
func (g *Game) Input() model.ReactionResult {
	switch g.phase {
	case Waiting:
		g.cancel()
		g.phase = Idle
		g.last = model.ReactionResult{Signal: model.SignalTooSoon}
	case Ready:
		elapsed := elapsedMs(g.clock.Now().Sub(g.armedAt))
		g.phase = Idle
		g.scores.Record(model.Reaction, elapsed)
		g.last = model.ReactionResult{Signal: model.SignalScored, ElapsedMs: elapsed}
	default:
		g.Start()
	}
	return g.last
}

// Stop cancels any pending stimulus and returns to Idle.
func (g *Game) Stop() {
	g.cancel()
	g.phase = Idle
}

func (g *Game) cancel() {
	clock.StopTask(g.pending)
	g.pending = nil
}

func elapsedMs(d time.Duration) int {
	ms := math.Round(float64(d) / float64(time.Millisecond))
	if ms < 0 {
		return 0
	}
	return int(ms)
}
