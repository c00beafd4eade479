package gematria

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleScore(t *testing.T) {
	assert.Equal(t, 1, Simple.Score("A"))
	assert.Equal(t, 26, Simple.Score("Z"))
	assert.Equal(t, 24, Simple.Score("CAT"))
	assert.Equal(t, 23, Simple.Score("BAT"))
}

func TestScore_CaseInsensitive(t *testing.T) {
	for _, c := range Ciphers {
		assert.Equal(t, c.Score("BEANS"), c.Score("beans"), c.Name)
		assert.Equal(t, c.Score("Beans"), c.Score("bEaNs"), c.Name)
	}
}

func TestScore_IgnoresNonLetters(t *testing.T) {
	for _, c := range Ciphers {
		assert.Equal(t, c.Score("cat"), c.Score("c-a.t!"), c.Name)
		assert.Equal(t, 0, c.Score(""), c.Name)
		assert.Equal(t, 0, c.Score("123"), c.Name)
		assert.Equal(t, 0, c.Score("!@#$"), c.Name)
	}
}

func TestJewishIsScaledSimple(t *testing.T) {
	for _, w := range []string{"A", "Z", "Beans", "Spiral", "love"} {
		assert.Equal(t, Simple.Score(w)*6, Jewish.Score(w), w)
	}
}

func TestQwertyOrder(t *testing.T) {
	assert.Equal(t, 1, Qwerty.Score("Q"))
	assert.Equal(t, 26, Qwerty.Score("M"))
	assert.Equal(t, Qwerty.Score("qm")*6, JewishQwerty.Score("qm"))
}

func TestCipherCoversAlphabet(t *testing.T) {
	for _, c := range Ciphers {
		for _, r := range alphabet {
			assert.Positive(t, c.Value(r), "%s %c", c.Name, r)
		}
	}
}
