package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "Beans", NormalizeWord("  beans "))
	assert.Equal(t, "Children Of The Beans", NormalizeWord("children OF the beans"))
	assert.Equal(t, "", NormalizeWord("   "))
}

func TestAddWord_New(t *testing.T) {
	db := setupTestDB(t)

	w, err := AddWord(db, "resonance", "cli")
	require.NoError(t, err)
	assert.Equal(t, "Resonance", w.Value)
	assert.Equal(t, []string{"cli"}, w.Origins)
}

func TestAddWord_MergesOrigins(t *testing.T) {
	db := setupTestDB(t)

	_, err := AddWord(db, "resonance", "cli")
	require.NoError(t, err)
	w, err := AddWord(db, "Resonance", "import")
	require.NoError(t, err)
	assert.Equal(t, []string{"cli", "import"}, w.Origins)

	// re-adding an existing origin does not duplicate it
	w, err = AddWord(db, "resonance", "cli")
	require.NoError(t, err)
	assert.Equal(t, []string{"cli", "import"}, w.Origins)
}

func TestAddWord_Empty(t *testing.T) {
	db := setupTestDB(t)
	_, err := AddWord(db, "   ")
	assert.Error(t, err)
}

func TestAddWord_NilDB(t *testing.T) {
	_, err := AddWord(nil, "beans")
	assert.Error(t, err)
}

func TestDeleteWord(t *testing.T) {
	db := setupTestDB(t)

	_, err := AddWord(db, "ephemeral", "cli")
	require.NoError(t, err)
	require.NoError(t, DeleteWord(db, "ephemeral"))

	w, err := GetWord(db, "ephemeral")
	require.NoError(t, err)
	assert.Nil(t, w)

	// deleting again is a no-op
	assert.NoError(t, DeleteWord(db, "ephemeral"))
}

func TestGetWord_Missing(t *testing.T) {
	db := setupTestDB(t)
	w, err := GetWord(db, "no such word")
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestListWords(t *testing.T) {
	db := setupTestDB(t)

	all, err := ListWords(db, "", 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), len(starterWords))

	like, err := ListWords(db, "Beans", 10)
	require.NoError(t, err)
	require.NotEmpty(t, like)
	for _, w := range like {
		assert.Contains(t, w.Value, "Beans")
	}
}

func TestImportWords(t *testing.T) {
	db := setupTestDB(t)

	list := strings.NewReader("alpha\n\n# a comment\nbeta\n  gamma  \n")
	n, err := ImportWords(db, list, "")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	w, err := GetWord(db, "gamma")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Contains(t, w.Origins, OriginImport)
}

func TestGetDataState(t *testing.T) {
	db := setupTestDB(t)

	state, err := GetDataState(db)
	require.NoError(t, err)
	assert.Greater(t, state["words"], int64(0))
	// starter words include multi-word phrases
	assert.Greater(t, state["phrases"], int64(0))
}

func TestGetDataState_NilDB(t *testing.T) {
	_, err := GetDataState(nil)
	assert.Error(t, err)
}
