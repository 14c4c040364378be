// Package model defines shared data structures.
package model

import "time"

// Category identifies a benchmark whose best score is tracked.
type Category string

// Benchmark categories. The string values are the persisted JSON keys.
const (
	Reaction Category = "reaction"
	Chimp    Category = "chimp"
	Typing   Category = "typing"
)

// Categories lists every category in display order.
var Categories = []Category{Reaction, Chimp, Typing}

// LowerIsBetter reports whether smaller values are better for the category.
func (c Category) LowerIsBetter() bool {
	return c == Reaction
}

// Better reports whether candidate strictly beats current under the category's rule.
func (c Category) Better(candidate, current int) bool {
	if c.LowerIsBetter() {
		return candidate < current
	}
	return candidate > current
}

// Unit returns the display unit for the category's values.
func (c Category) Unit() string {
	switch c {
	case Reaction:
		return "ms"
	case Chimp:
		return "level"
	case Typing:
		return "wpm"
	default:
		return ""
	}
}

// Label returns a human-readable category name.
func (c Category) Label() string {
	switch c {
	case Reaction:
		return "Reaction Time"
	case Chimp:
		return "Chimp Test"
	case Typing:
		return "Typing Speed"
	default:
		return string(c)
	}
}

// Signal describes the outcome of a single input event.
type Signal int

const (
	// SignalNone means the input caused no state change.
	SignalNone Signal = iota
	// SignalStarted means a new round was started.
	SignalStarted
	// SignalTooSoon means reaction input arrived before the stimulus.
	SignalTooSoon
	// SignalScored means a round finished with a recorded score.
	SignalScored
	// SignalCorrect means a chimp cell was hit in order.
	SignalCorrect
	// SignalFailed means a chimp round ended on a wrong cell.
	SignalFailed
)

// ReactionResult is the outcome of a reaction input.
type ReactionResult struct {
	Signal    Signal
	ElapsedMs int
}

// ChimpResult is the outcome of a chimp cell click.
type ChimpResult struct {
	Signal Signal
	// Level is the level completed on success or the final score on failure.
	Level int
}

// TypingResult is the outcome of a concluded typing session.
type TypingResult struct {
	WPM      int
	Accuracy int
	Elapsed  time.Duration
}

// ElapsedSeconds returns the session duration in seconds.
func (r TypingResult) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

// ReactionConfig defines reaction test timing.
type ReactionConfig struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

// ChimpConfig defines chimp test timing.
type ChimpConfig struct {
	Reveal time.Duration
	Pause  time.Duration
}

// TypingConfig defines typing sample sources.
type TypingConfig struct {
	Samples      []string
	WordListPath string
	Words        int
}

// Config bundles all benchmark settings.
type Config struct {
	Reaction ReactionConfig
	Chimp    ChimpConfig
	Typing   TypingConfig
	Seed     int64
}
