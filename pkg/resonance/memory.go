package resonance

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

const (
	// MemoryFileName is the default memory file in the working directory.
	MemoryFileName = "memory.json"

	memoryFileMode = 0600
)

// Memory counts how many times each resonant pair key has been observed
// across runs.
type Memory map[string]int

// Load reads the memory file. A missing or unparseable file is an expected
// first-run condition and yields an empty memory, never an error.
func Load(path string) Memory {
	b, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("no readable memory file, starting empty", "path", path, "error", err)
		return Memory{}
	}

	m := Memory{}
	if err := json.Unmarshal(b, &m); err != nil {
		slog.Info("memory file unparseable, starting empty", "path", path)
		return Memory{}
	}
	return m
}

// Record increments the observation count for each pair. Pure in-memory
// step, kept apart from Load/Save so it stays testable without I/O.
func (m Memory) Record(pairs []Pair) {
	for _, p := range pairs {
		m[p.Key()]++
	}
}

// Save writes the full memory back, overwriting the file. Unlike Load,
// a failure here is surfaced: losing the counters is a real error.
func Save(path string, m Memory) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal memory")
	}
	if err := os.WriteFile(path, b, memoryFileMode); err != nil {
		return errors.Wrapf(err, "failed to write memory file: %s", path)
	}
	return nil
}
