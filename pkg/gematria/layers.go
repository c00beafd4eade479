package gematria

import (
	"math"
	"strings"
)

var (
	leftHandKeys  = keySet("QWERTYASDFGZXCVB")
	rightHandKeys = keySet("YUIOPHJKLNM")

	// Letters commonly swapped for digits in leetspeak.
	leetLetters = keySet("IEASTBO")

	loveWords = map[string]bool{
		"Love": true, "Heart": true, "Soul": true, "Trust": true,
		"Hope": true, "Spiralborn": true, "Children Of The Beans": true,
	}

	aaveWords = map[string]bool{
		"lit": true, "fam": true, "dope": true, "vibe": true, "chill": true,
		"slay": true, "bet": true, "fire": true, "squad": true, "real": true,
	}

	// English letter frequency ranks, most common first.
	frequencyRank = map[rune]int{
		'E': 26, 'T': 25, 'A': 24, 'O': 23, 'I': 22, 'N': 21, 'S': 20,
		'R': 19, 'H': 18, 'L': 17, 'D': 16, 'C': 15, 'U': 14, 'M': 13,
		'F': 12, 'P': 11, 'G': 10, 'W': 9, 'Y': 8, 'B': 7, 'V': 6,
		'K': 5, 'X': 4, 'J': 3, 'Q': 2, 'Z': 1,
	}

	shortForms = map[string]string{
		"you": "u", "are": "r", "for": "4", "be": "b", "to": "2",
		"too": "2", "see": "c", "before": "b4", "the": "da",
	}
)

func keySet(keys string) map[rune]bool {
	m := make(map[rune]bool, len(keys))
	for _, r := range keys {
		m[r] = true
	}
	return m
}

// LeftHandQwerty sums Qwerty values over left-hand keys only.
func LeftHandQwerty(word string) int {
	return handScore(word, leftHandKeys)
}

// RightHandQwerty sums Qwerty values over right-hand keys only.
func RightHandQwerty(word string) int {
	return handScore(word, rightHandKeys)
}

func handScore(word string, hand map[rune]bool) int {
	total := 0
	for _, r := range strings.ToUpper(word) {
		if hand[r] {
			total += Qwerty.Value(r)
		}
	}
	return total
}

// AmbidextrousBalance is the right-hand score minus the left-hand score.
func AmbidextrousBalance(word string) int {
	return RightHandQwerty(word) - LeftHandQwerty(word)
}

// LoveResonance returns 1 for words in the love set, else 0.
func LoveResonance(word string) int {
	if loveWords[titleCase(word)] {
		return 1
	}
	return 0
}

// FrequentLetters scores letters by English frequency rank, E=26 down to Z=1.
func FrequentLetters(word string) int {
	total := 0
	for _, r := range strings.ToUpper(word) {
		total += frequencyRank[r]
	}
	return total
}

// LeetCode drops the letters leetspeak replaces with digits,
// then scores the remainder with the simple cipher.
func LeetCode(word string) int {
	var b strings.Builder
	for _, r := range strings.ToUpper(word) {
		if !leetLetters[r] {
			b.WriteRune(r)
		}
	}
	return Simple.Score(b.String())
}

// SimpleForms substitutes common shorthand (you -> u, for -> 4, ...)
// before applying the simple cipher. Digit substitutes score 0.
func SimpleForms(word string) int {
	w := strings.ToLower(word)
	if sub, ok := shortForms[w]; ok {
		w = sub
	}
	return Simple.Score(w)
}

// PrimeGematria returns the simple score when it is prime, else 0.
func PrimeGematria(word string) int {
	v := Simple.Score(word)
	if IsPrime(v) {
		return v
	}
	return 0
}

// Reduced collapses the simple score to a single digit by repeated digit
// sums, keeping the master numbers 11 and 22.
func Reduced(word string) int {
	v := Simple.Score(word)
	for v > 9 && v != 11 && v != 22 {
		s := 0
		for v > 0 {
			s += v % 10
			v /= 10
		}
		v = s
	}
	return v
}

// Spiral weights each letter's simple value by the cosine of its 1-based
// position times the golden angle, then scales the absolute sum.
// Non-letter characters hold their position but contribute nothing.
func Spiral(word string) float64 {
	total := 0.0
	pos := 0
	for _, r := range strings.ToUpper(word) {
		pos++
		if v := Simple.Value(r); v > 0 {
			weight := math.Cos(goldenAngle * float64(pos) * math.Pi / 180)
			total += float64(v) * weight
		}
	}
	return round2(math.Abs(total) * 4)
}

// GrokScore averages the simple, reduced, and spiral layers, with a 10%
// boost for words in the slang set.
func GrokScore(word string) float64 {
	avg := (float64(Simple.Score(word)) + float64(Reduced(word)) + Spiral(word)) / 3
	if aaveWords[strings.ToLower(word)] {
		avg *= 1.1
	}
	return round2(avg)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Layer is a named score function usable for report grouping. Integer
// layers are widened to float64 so all layers group uniformly.
type Layer struct {
	Name  string
	Score func(word string) float64
}

func intLayer(name string, fn func(string) int) Layer {
	return Layer{Name: name, Score: func(w string) float64 { return float64(fn(w)) }}
}

// Layers returns every score layer in display order, cipher layers first.
func Layers() []Layer {
	layers := make([]Layer, 0, len(Ciphers)+12)
	for _, c := range Ciphers {
		layers = append(layers, intLayer(c.Name, c.Score))
	}
	layers = append(layers,
		intLayer("Left-Hand Qwerty", LeftHandQwerty),
		intLayer("Right-Hand Qwerty", RightHandQwerty),
		intLayer("Binary Sum", BinarySum),
		intLayer("Love Resonance", LoveResonance),
		intLayer("Frequent Letters", FrequentLetters),
		intLayer("Leet Code", LeetCode),
		intLayer("Simple Forms", SimpleForms),
		intLayer("Prime Gematria", PrimeGematria),
		intLayer("Ambidextrous Balance", AmbidextrousBalance),
		intLayer("Reduced", Reduced),
		Layer{Name: "Spiral", Score: Spiral},
		Layer{Name: "Grok Score", Score: GrokScore},
	)
	return layers
}
