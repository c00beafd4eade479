package gematria

import (
	"fmt"
	"math/bits"
	"strings"
)

// BinaryString renders every raw character of the word (no filtering) as its
// 8-bit code, space separated. Display only; not used for resonance.
func BinaryString(word string) string {
	codes := make([]string, 0, len(word))
	for _, b := range []byte(word) {
		codes = append(codes, fmt.Sprintf("%08b", b))
	}
	return strings.Join(codes, " ")
}

// BinarySum counts the 1-bits across the raw characters of the word.
func BinarySum(word string) int {
	total := 0
	for _, b := range []byte(word) {
		total += bits.OnesCount8(b)
	}
	return total
}
