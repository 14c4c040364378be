package generator

import (
	"testing"
	"time"
)

func TestSequenceUniqueInRange(t *testing.T) {
	g := NewSeeded(42)
	for n := 1; n <= GridCells; n++ {
		for trial := 0; trial < 50; trial++ {
			seq := g.Sequence(n)
			if len(seq) != n {
				t.Fatalf("expected %d positions, got %d", n, len(seq))
			}
			seen := map[int]bool{}
			for _, pos := range seq {
				if pos < 0 || pos >= GridCells {
					t.Fatalf("position %d out of range", pos)
				}
				if seen[pos] {
					t.Fatalf("duplicate position %d in %v", pos, seq)
				}
				seen[pos] = true
			}
		}
	}
}

func TestSequenceClampsLength(t *testing.T) {
	g := NewSeeded(1)
	if got := len(g.Sequence(0)); got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
	if got := len(g.Sequence(20)); got != GridCells {
		t.Fatalf("expected clamp to %d, got %d", GridCells, got)
	}
}

func TestDelayWithinBounds(t *testing.T) {
	g := NewSeeded(7)
	lo, hi := 2*time.Second, 5*time.Second
	for i := 0; i < 1000; i++ {
		d := g.Delay(lo, hi)
		if d < lo || d > hi {
			t.Fatalf("delay %v outside [%v, %v]", d, lo, hi)
		}
	}
	if d := g.Delay(hi, lo); d != hi {
		t.Fatalf("expected lower bound when range is empty, got %v", d)
	}
}

func TestWordsCapitalizesFirst(t *testing.T) {
	g := NewSeeded(3)
	out := g.Words([]string{"alpha"}, 3)
	if len(out) != 3 {
		t.Fatalf("expected 3 words, got %d", len(out))
	}
	if out[0] != "Alpha" || out[1] != "alpha" {
		t.Fatalf("unexpected words: %v", out)
	}
	if g.Words(nil, 3) != nil {
		t.Fatalf("expected nil for empty word list")
	}
}
