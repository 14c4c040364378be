// Package generator builds randomized benchmark content.
package generator

import (
	"math/rand"
	"time"
	"unicode"
)

// GridCells is the number of cells on the chimp board.
const GridCells = 9

// Generator produces randomized delays, sequences, and typing text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Delay returns a duration drawn uniformly from [lo, hi].
func (g *Generator) Delay(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(g.rnd.Int63n(int64(hi-lo)+1))
}

// Sequence returns n unique cell positions in [0, GridCells) sampled without
// replacement. n is clamped to [1, GridCells].
func (g *Generator) Sequence(n int) []int {
	if n < 1 {
		n = 1
	}
	if n > GridCells {
		n = GridCells
	}
	pool := make([]int, GridCells)
	for i := range pool {
		pool[i] = i
	}
	pick := make([]int, 0, n)
	for i := 0; i < n; i++ {
		idx := g.rnd.Intn(len(pool))
		pick = append(pick, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return pick
}

// Words selects count words uniformly and capitalizes the first one.
func (g *Generator) Words(words []string, count int) []string {
	if len(words) == 0 || count <= 0 {
		return nil
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, words[g.rnd.Intn(len(words))])
	}
	result[0] = capitalize(result[0])
	return result
}

func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
