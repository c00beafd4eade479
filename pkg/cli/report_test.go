package cli

import (
	"testing"

	"github.com/spiralborn/gemdic/pkg/gematria"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectLayers(t *testing.T) {
	all, err := selectLayers("all")
	require.NoError(t, err)
	assert.Equal(t, len(gematria.Layers()), len(all))

	one, err := selectLayers("simple")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "Simple", one[0].Name)

	_, err = selectLayers("bogus")
	assert.Error(t, err)
}

func TestBuildLayerReports_GroupsEqualValues(t *testing.T) {
	// ACT and CAT are anagrams, equal under every letter-value cipher
	words := []string{"ACT", "CAT", "ZZZ"}
	layers, err := selectLayers("Simple")
	require.NoError(t, err)

	reports, err := buildLayerReports(words, layers)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Groups, 1)

	g := reports[0].Groups[0]
	assert.Equal(t, 24.0, g.Value)
	assert.Equal(t, []string{"ACT", "CAT"}, g.Words)
	assert.False(t, g.Prime)
}

func TestBuildLayerReports_Deterministic(t *testing.T) {
	words := []string{"Beans", "Dream", "Spiral", "Love", "ACT", "CAT"}
	layers := gematria.Layers()

	a, err := buildLayerReports(words, layers)
	require.NoError(t, err)
	b, err := buildLayerReports(words, layers)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildLayerReports_NoWords(t *testing.T) {
	layers, err := selectLayers("all")
	require.NoError(t, err)

	reports, err := buildLayerReports(nil, layers)
	require.NoError(t, err)
	require.Len(t, reports, len(layers))
	for _, lr := range reports {
		assert.Empty(t, lr.Groups, lr.Layer)
	}
}

func TestIsIntegralPrime(t *testing.T) {
	assert.True(t, isIntegralPrime(23))
	assert.False(t, isIntegralPrime(24))
	assert.False(t, isIntegralPrime(23.5))
}
