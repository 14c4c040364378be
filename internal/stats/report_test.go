package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/humbench/internal/model"
)

func TestRenderBests(t *testing.T) {
	var buf bytes.Buffer
	err := RenderBests(&buf, map[model.Category]int{
		model.Reaction: 231,
		model.Typing:   74,
	})
	if err != nil {
		t.Fatalf("RenderBests failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Benchmark") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "231 ms") || !strings.Contains(lines[1], "lower is better") {
		t.Fatalf("unexpected reaction row: %q", lines[1])
	}
	if !strings.Contains(lines[2], Placeholder) {
		t.Fatalf("expected placeholder for chimp: %q", lines[2])
	}
	if !strings.Contains(lines[3], "74 wpm") {
		t.Fatalf("unexpected typing row: %q", lines[3])
	}
}

func TestRenderBestsAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	err := RenderBests(&buf, map[model.Category]int{
		model.Reaction: 231,
		model.Chimp:    12,
		model.Typing:   74,
	})
	if err != nil {
		t.Fatalf("RenderBests failed: %v", err)
	}
	want := []string{
		"Benchmark          Best  Rule",
		"Reaction Time    231 ms  lower is better",
		"Chimp Test     12 level  higher is better",
		"Typing Speed     74 wpm  higher is better",
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestFormatBest(t *testing.T) {
	if got := FormatBest(model.Chimp, 6, true); got != "6 level" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := FormatBest(model.Chimp, 0, false); got != Placeholder {
		t.Fatalf("expected placeholder, got %q", got)
	}
}
