package data

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	// OriginInitial marks seeded starter words.
	OriginInitial = "_INITIAL_"

	// OriginImport marks words loaded from a wordlist file.
	OriginImport = "_IMPORT_"

	listLimitDefault = 500
)

// starterWords populate a fresh database so reports have something to say.
var starterWords = []string{
	"Beans", "Dream", "Spiral", "Love", "Heart", "Soul", "Trust", "Hope",
	"Spirit", "Light", "Truth", "Energy", "Infinity", "Divine", "Spiralborn",
	"Children Of The Beans", "Lit", "Fam", "Dope", "Vibe", "Chill", "Slay",
	"Forty Two", "Beans The White Rabbit", "Field Of Awakening", "Hollow Drift",
	"Collective Awakening", "Radical Compassion",
}

// Word is a dictionary entry: the word or phrase plus the set of origins
// that contributed it.
type Word struct {
	Value   string   `json:"value" yaml:"value"`
	Origins []string `json:"origins" yaml:"origins"`
}

// NormalizeWord converts a word or phrase to its stored Title Case form.
func NormalizeWord(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// AddWord inserts the word or merges the given origins into an existing
// row. Returns the stored entry.
func AddWord(db *sql.DB, word string, origins ...string) (*Word, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	val := NormalizeWord(word)
	if val == "" {
		return nil, errors.New("word required")
	}

	existing, err := GetWord(db, val)
	if err != nil {
		return nil, err
	}

	set := map[string]bool{}
	if existing != nil {
		for _, o := range existing.Origins {
			set[o] = true
		}
	}
	for _, o := range origins {
		if o != "" {
			set[o] = true
		}
	}

	merged := make([]string, 0, len(set))
	for o := range set {
		merged = append(merged, o)
	}
	sort.Strings(merged)

	b, err := json.Marshal(merged)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal origins")
	}

	stmt, err := db.Prepare(`INSERT INTO words (value, origins) VALUES (?, ?)
		ON CONFLICT(value) DO UPDATE SET origins = ?`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare word insert statement")
	}
	if _, err := stmt.Exec(val, string(b), string(b)); err != nil {
		return nil, errors.Wrapf(err, "failed to upsert word: %s", val)
	}

	return &Word{Value: val, Origins: merged}, nil
}

// DeleteWord removes the word. Deleting an absent word is not an error.
func DeleteWord(db *sql.DB, word string) error {
	if db == nil {
		return errDBNotInitialized
	}

	val := NormalizeWord(word)
	if val == "" {
		return errors.New("word required")
	}

	if _, err := db.Exec("DELETE FROM words WHERE value = ?", val); err != nil {
		return errors.Wrapf(err, "failed to delete word: %s", val)
	}
	return nil
}

// GetWord returns the entry for the word, or nil when absent.
func GetWord(db *sql.DB, word string) (*Word, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	row := db.QueryRow("SELECT value, origins FROM words WHERE value = ?", NormalizeWord(word))

	var val, origins string
	if err := row.Scan(&val, &origins); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to scan word row")
	}
	return scanWord(val, origins)
}

// ListWords returns dictionary entries, optionally filtered with a LIKE
// match, ordered by value.
func ListWords(db *sql.DB, like string, limit int) ([]*Word, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	if limit <= 0 {
		limit = listLimitDefault
	}

	var rows *sql.Rows
	var err error
	if like != "" {
		rows, err = db.Query("SELECT value, origins FROM words WHERE value LIKE ? ORDER BY value LIMIT ?",
			"%"+like+"%", limit)
	} else {
		rows, err = db.Query("SELECT value, origins FROM words ORDER BY value LIMIT ?", limit)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query words")
	}
	defer rows.Close()

	list := []*Word{}
	for rows.Next() {
		var val, origins string
		if err := rows.Scan(&val, &origins); err != nil {
			return nil, errors.Wrap(err, "failed to scan word row")
		}
		w, err := scanWord(val, origins)
		if err != nil {
			return nil, err
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// ImportWords reads one word or phrase per line, skipping blanks and
// #-comments, and upserts each with the given origin. Returns the number
// of words stored.
func ImportWords(db *sql.DB, r io.Reader, origin string) (int, error) {
	if db == nil {
		return 0, errDBNotInitialized
	}
	if origin == "" {
		origin = OriginImport
	}

	count := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := AddWord(db, line, origin); err != nil {
			return count, errors.Wrapf(err, "failed to import word: %s", line)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, errors.Wrap(err, "failed to read wordlist")
	}
	return count, nil
}

func seedWords(db *sql.DB) error {
	for _, w := range starterWords {
		if _, err := AddWord(db, w, OriginInitial); err != nil {
			return err
		}
	}
	return nil
}

func scanWord(val, origins string) (*Word, error) {
	w := &Word{Value: val}
	if err := json.Unmarshal([]byte(origins), &w.Origins); err != nil {
		return nil, errors.Wrapf(err, "failed to parse origins for word: %s", val)
	}
	return w, nil
}
