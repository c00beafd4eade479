// Package resonance detects near-equal score pairs and persists how often
// each pair has been observed across runs.
package resonance

import (
	"fmt"
	"strings"
)

// Threshold is the maximum simple-score gap at which two words resonate.
const Threshold = 5

// ScoredWord carries a word with its simple-cipher score.
type ScoredWord struct {
	Word  string `json:"word" yaml:"word"`
	Score int    `json:"score" yaml:"score"`
}

// Pair is a resonant pair of distinct words, in input order.
type Pair struct {
	A   string `json:"a" yaml:"a"`
	B   string `json:"b" yaml:"b"`
	Gap int    `json:"gap" yaml:"gap"`
}

// Key returns the memory key for the pair. See PairKey.
func (p Pair) Key() string {
	return PairKey(p.A, p.B)
}

func (p Pair) String() string {
	return fmt.Sprintf("%s & %s (gap: %d)", p.A, p.B, p.Gap)
}

// PairKey derives the deterministic memory key for two words: the words in
// lexicographic order joined by "-", so (a,b) and (b,a) share one key.
func PairKey(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + "-" + b
}

// FindPairs returns every unordered pair (i<j over input order) of distinct
// words whose score gap is within the threshold. O(n^2); inputs are CLI sized.
func FindPairs(words []ScoredWord, threshold int) []Pair {
	var pairs []Pair
	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			if words[i].Word == words[j].Word {
				continue
			}
			gap := words[i].Score - words[j].Score
			if gap < 0 {
				gap = -gap
			}
			if gap <= threshold {
				pairs = append(pairs, Pair{A: words[i].Word, B: words[j].Word, Gap: gap})
			}
		}
	}
	return pairs
}
