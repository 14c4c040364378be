// Package typing implements the typing-speed benchmark.
package typing

import (
	"time"

	"github.com/verte-zerg/humbench/internal/clock"
	"github.com/verte-zerg/humbench/internal/model"
	"github.com/verte-zerg/humbench/internal/stats"
)

// Recorder receives round scores.
type Recorder interface {
	Record(category model.Category, value int)
}

// Session measures typing throughput and accuracy against a reference text.
type Session struct {
	clock  clock.Clock
	scores Recorder

	reference string
	typed     []rune
	started   bool
	startedAt time.Time
	ended     bool
	result    model.TypingResult
}

// New constructs an empty session.
func New(clk clock.Clock, scores Recorder) *Session {
	return &Session{clock: clk, scores: scores}
}

// LoadSample resets the session for a new reference text.
func (s *Session) LoadSample(text string) {
	s.reference = text
	s.typed = nil
	s.started = false
	s.startedAt = time.Time{}
	s.ended = false
	s.result = model.TypingResult{}
}

// Reference returns the text being typed.
func (s *Session) Reference() string {
	return s.reference
}

// Typed returns the typed buffer.
func (s *Session) Typed() string {
	return string(s.typed)
}

// TypedRunes returns a copy of the typed buffer.
func (s *Session) TypedRunes() []rune {
	return append([]rune(nil), s.typed...)
}

// Started reports whether the first keystroke has happened.
func (s *Session) Started() bool {
	return s.started
}

// Ended reports whether the session was concluded.
func (s *Session) Ended() bool {
	return s.ended
}

// Result returns the concluded result. It is zero until Conclude runs.
func (s *Session) Result() model.TypingResult {
	return s.result
}

// Keystroke marks an input event. The first one starts the timer.
func (s *Session) Keystroke() {
	if s.ended {
		return
	}
	if !s.started {
		s.started = true
		s.startedAt = s.clock.Now()
	}
}

// Type appends r to the typed buffer.
func (s *Session) Type(r rune) {
	if s.ended {
		return
	}
	s.Keystroke()
	s.typed = append(s.typed, r)
}

// Backspace removes the last typed rune.
func (s *Session) Backspace() {
	if s.ended {
		return
	}
	s.Keystroke()
	if len(s.typed) > 0 {
		s.typed = s.typed[:len(s.typed)-1]
	}
}

// Conclude ends the session, records WPM, and returns the result. Only the
// first call has any effect; later calls return the first result.
func (s *Session) Conclude(typed string) (model.TypingResult, bool) {
	if s.ended {
		return s.result, false
	}
	s.ended = true
	var elapsed time.Duration
	if s.started {
		elapsed = s.clock.Now().Sub(s.startedAt)
	}
	s.result = model.TypingResult{
		WPM:      stats.WPM(stats.CountWords(typed), elapsed),
		Accuracy: stats.Accuracy(s.reference, typed),
		Elapsed:  elapsed,
	}
	s.scores.Record(model.Typing, s.result.WPM)
	return s.result, true
}
