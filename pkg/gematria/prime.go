package gematria

import "math"

// IsPrime reports whether n is prime using trial division.
// Values below 2 are never prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i <= int(math.Sqrt(float64(n))); i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// goldenAngle is the plant-phyllotaxis angle in degrees, used by the
// spiral layer and golden-resonance check.
const goldenAngle = 137.5

// IsGoldenResonance reports whether a score lands within 5 of the golden
// angle (137 or 137.5).
func IsGoldenResonance(v float64) bool {
	return math.Abs(v-137) <= 5 || math.Abs(v-goldenAngle) <= 5
}
