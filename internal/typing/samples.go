package typing

import "strings"

// DefaultSamples are the built-in reference texts.
var DefaultSamples = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Typing quickly requires practice and a focus on accuracy.",
	"Human Benchmark provides simple tests to measure cognitive skills.",
	"Practice a little every day to improve speed and confidence.",
}

// WordSource picks words for generated samples.
type WordSource interface {
	Words(words []string, count int) []string
}

// Samples selects reference texts, either from a fixed list or generated
// from a word list.
type Samples struct {
	fixed []string
	words []string
	count int
	gen   WordSource
	index int
	text  string
}

// NewFixedSamples cycles through texts. An empty list uses DefaultSamples.
func NewFixedSamples(texts []string) *Samples {
	kept := make([]string, 0, len(texts))
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, DefaultSamples...)
	}
	s := &Samples{fixed: kept}
	s.text = kept[0]
	return s
}

// NewGeneratedSamples builds texts of count words drawn from words.
func NewGeneratedSamples(words []string, count int, gen WordSource) *Samples {
	s := &Samples{words: words, count: count, gen: gen}
	s.regenerate()
	return s
}

// Generated reports whether samples come from a word list.
func (s *Samples) Generated() bool {
	return s.gen != nil
}

// Len returns the number of fixed samples, or 0 for generated samples.
func (s *Samples) Len() int {
	return len(s.fixed)
}

// Index returns the current fixed sample index.
func (s *Samples) Index() int {
	return s.index
}

// Current returns the current sample text.
func (s *Samples) Current() string {
	return s.text
}

// Next advances to the next sample and returns it.
func (s *Samples) Next() string {
	if s.gen != nil {
		s.regenerate()
		return s.text
	}
	s.index = (s.index + 1) % len(s.fixed)
	s.text = s.fixed[s.index]
	return s.text
}

// Prev moves to the previous fixed sample. Generated samples regenerate.
func (s *Samples) Prev() string {
	if s.gen != nil {
		s.regenerate()
		return s.text
	}
	s.index = (s.index - 1 + len(s.fixed)) % len(s.fixed)
	s.text = s.fixed[s.index]
	return s.text
}

func (s *Samples) regenerate() {
	s.text = strings.Join(s.gen.Words(s.words, s.count), " ")
}
