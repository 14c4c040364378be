// Package stats contains benchmark calculations and reporting.
package stats

import (
	"math"
	"strings"
	"time"
)

// CountWords returns the number of whitespace-delimited tokens in text.
func CountWords(text string) int {
	return len(strings.Fields(strings.TrimSpace(text)))
}

// WPM computes words per minute rounded to the nearest integer.
func WPM(words int, elapsed time.Duration) int {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return int(math.Round(float64(words) / (seconds / 60)))
}

// Accuracy returns the percentage of rune positions where typed matches
// reference, over the longer of the two. Positions past either string's end
// never match.
func Accuracy(reference, typed string) int {
	ref := []rune(reference)
	got := []rune(typed)
	n := len(ref)
	if len(got) > n {
		n = len(got)
	}
	if n == 0 {
		return 0
	}
	matches := 0
	for i := 0; i < n; i++ {
		if i < len(ref) && i < len(got) && ref[i] == got[i] {
			matches++
		}
	}
	return int(math.Round(float64(matches) / float64(n) * 100))
}
