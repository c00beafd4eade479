package data

import (
	"database/sql"

	"github.com/pkg/errors"
)

var stateQueries = map[string]string{
	"words":   "SELECT COUNT(*) FROM words",
	"phrases": "SELECT COUNT(*) FROM words WHERE value LIKE '% %'",
}

// GetDataState returns row counts describing the current dictionary.
func GetDataState(db *sql.DB) (map[string]int64, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	state := make(map[string]int64)
	for k, q := range stateQueries {
		var count int64
		if err := db.QueryRow(q).Scan(&count); err != nil {
			if err == sql.ErrNoRows {
				state[k] = 0
				continue
			}
			return nil, errors.Wrapf(err, "error getting %s count", k)
		}
		state[k] = count
	}
	return state, nil
}
