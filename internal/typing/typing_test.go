package typing

import (
	"testing"
	"time"

	"github.com/verte-zerg/humbench/internal/clock"
	"github.com/verte-zerg/humbench/internal/generator"
	"github.com/verte-zerg/humbench/internal/model"
)

type recorder struct {
	values []int
}

func (r *recorder) Record(category model.Category, value int) {
	if category != model.Typing {
		panic("unexpected category " + string(category))
	}
	r.values = append(r.values, value)
}

func newTestSession() (*Session, *clock.Fake, *recorder) {
	fake := clock.NewFake(time.Unix(0, 0))
	rec := &recorder{}
	return New(fake, rec), fake, rec
}

func typeText(s *Session, text string) {
	for _, r := range text {
		s.Type(r)
	}
}

func TestConcludeComputesWPMAndAccuracy(t *testing.T) {
	s, fake, rec := newTestSession()
	s.LoadSample("abc")
	fake.Advance(5 * time.Second)
	typeText(s, "abd")
	fake.Advance(time.Second)
	res, ok := s.Conclude(s.Typed())
	if !ok {
		t.Fatalf("expected first conclude to take effect")
	}
	if res.WPM != 60 || res.Accuracy != 67 {
		t.Fatalf("expected 60 wpm and 67%%, got %+v", res)
	}
	if res.ElapsedSeconds() != 1 {
		t.Fatalf("expected timer to start at first keystroke, got %v", res.Elapsed)
	}
	if len(rec.values) != 1 || rec.values[0] != 60 {
		t.Fatalf("expected recorded 60, got %v", rec.values)
	}
}

func TestConcludeIsIdempotent(t *testing.T) {
	s, fake, rec := newTestSession()
	s.LoadSample("one two three")
	typeText(s, "one two")
	fake.Advance(6 * time.Second)
	first, _ := s.Conclude(s.Typed())
	fake.Advance(time.Minute)
	second, ok := s.Conclude("one two three four five")
	if ok {
		t.Fatalf("expected second conclude to be a no-op")
	}
	if second != first {
		t.Fatalf("expected unchanged result, got %+v vs %+v", second, first)
	}
	if len(rec.values) != 1 {
		t.Fatalf("expected a single recorded score, got %v", rec.values)
	}
}

func TestConcludeWithoutKeystrokes(t *testing.T) {
	s, fake, rec := newTestSession()
	s.LoadSample("abc")
	fake.Advance(3 * time.Second)
	res, _ := s.Conclude("")
	if res.WPM != 0 || res.Accuracy != 0 || res.Elapsed != 0 {
		t.Fatalf("expected zero result, got %+v", res)
	}
	if rec.values[0] != 0 {
		t.Fatalf("expected recorded 0, got %v", rec.values)
	}
}

func TestInputIgnoredAfterConclude(t *testing.T) {
	s, _, _ := newTestSession()
	s.LoadSample("abc")
	typeText(s, "ab")
	s.Conclude(s.Typed())
	s.Type('c')
	s.Backspace()
	if s.Typed() != "ab" {
		t.Fatalf("expected buffer frozen after conclude, got %q", s.Typed())
	}
}

func TestLoadSampleResets(t *testing.T) {
	s, fake, _ := newTestSession()
	s.LoadSample("abc")
	typeText(s, "abc")
	s.Conclude(s.Typed())
	s.LoadSample("xyz")
	if s.Ended() || s.Started() || s.Typed() != "" || s.Reference() != "xyz" {
		t.Fatalf("expected fresh session after load")
	}
	fake.Advance(time.Second)
	s.Type('x')
	fake.Advance(2 * time.Second)
	res, ok := s.Conclude(s.Typed())
	if !ok || res.Elapsed != 2*time.Second {
		t.Fatalf("expected new session timing from first keystroke, got %+v", res)
	}
}

func TestBackspace(t *testing.T) {
	s, _, _ := newTestSession()
	s.LoadSample("abc")
	s.Backspace()
	if !s.Started() {
		t.Fatalf("expected backspace to count as a keystroke")
	}
	typeText(s, "abx")
	s.Backspace()
	if s.Typed() != "ab" {
		t.Fatalf("expected ab, got %q", s.Typed())
	}
}

func TestFixedSamplesCycle(t *testing.T) {
	samples := NewFixedSamples(nil)
	if samples.Len() != len(DefaultSamples) || samples.Current() != DefaultSamples[0] {
		t.Fatalf("expected default samples")
	}
	if got := samples.Prev(); got != DefaultSamples[len(DefaultSamples)-1] {
		t.Fatalf("expected wrap to last sample, got %q", got)
	}
	if got := samples.Next(); got != DefaultSamples[0] {
		t.Fatalf("expected wrap to first sample, got %q", got)
	}
	custom := NewFixedSamples([]string{"  ", "hello world"})
	if custom.Len() != 1 || custom.Current() != "hello world" {
		t.Fatalf("expected blank samples dropped, got %d %q", custom.Len(), custom.Current())
	}
}

func TestGeneratedSamples(t *testing.T) {
	samples := NewGeneratedSamples([]string{"cat"}, 3, generator.NewSeeded(1))
	if !samples.Generated() {
		t.Fatalf("expected generated samples")
	}
	if samples.Current() != "Cat cat cat" {
		t.Fatalf("unexpected generated text: %q", samples.Current())
	}
	if samples.Next() != "Cat cat cat" {
		t.Fatalf("unexpected regenerated text")
	}
}
