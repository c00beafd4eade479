// Package gematria implements the letter-value ciphers and derived score
// layers used across the dictionary, reports, and resonance detection.
package gematria

import "strings"

const (
	alphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	qwertyOrder = "QWERTYUIOPASDFGHJKLZXCVBNM"

	// jewishScale multiplies a base cipher into its "Jewish" variant.
	jewishScale = 6
)

// Cipher is an immutable letter-to-value table covering A-Z.
type Cipher struct {
	Name   string
	values map[rune]int
}

// Score sums the cipher values of the word's letters. Case and non-letter
// characters are ignored; an empty or all-symbol word scores 0.
func (c Cipher) Score(word string) int {
	total := 0
	for _, r := range strings.ToUpper(word) {
		total += c.values[r]
	}
	return total
}

// Value returns the cipher value for a single letter (0 for non-letters).
func (c Cipher) Value(r rune) int {
	return c.values[r]
}

func newCipher(name string, value func(pos int) int) Cipher {
	m := make(map[rune]int, len(alphabet))
	for i, r := range alphabet {
		m[r] = value(i)
	}
	return Cipher{Name: name, values: m}
}

func newOrderedCipher(name, order string, scale int) Cipher {
	m := make(map[rune]int, len(order))
	for i, r := range order {
		m[r] = (i + 1) * scale
	}
	return Cipher{Name: name, values: m}
}

var (
	// Simple is the sequential cipher: A=1 .. Z=26.
	Simple = newCipher("Simple", func(pos int) int { return pos + 1 })

	// Jewish is the scaled sequential cipher: A=6 .. Z=156.
	Jewish = newCipher("Jewish", func(pos int) int { return (pos + 1) * jewishScale })

	// Qwerty assigns 1..26 in physical key order, Q=1 .. M=26.
	Qwerty = newOrderedCipher("Qwerty", qwertyOrder, 1)

	// JewishQwerty is the scaled keyboard cipher, Q=6 .. M=156.
	JewishQwerty = newOrderedCipher("Jewish-Qwerty", qwertyOrder, jewishScale)

	// Ciphers lists the value-table ciphers in display order.
	Ciphers = []Cipher{Simple, Jewish, Qwerty, JewishQwerty}
)
