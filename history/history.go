// Package history persists the ordered log of topics already taught so the
// generator can steer the model away from repeats.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// Record is one taught topic. Records are append-only; nothing ever edits or
// removes an entry.
type Record struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Topic string `json:"topic"`
}

// Store reads and writes the history file.
type Store struct {
	path string
	now  func() time.Time
}

func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// WithClock overrides the clock used to date appended records.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Load returns the persisted history. A missing file means a fresh start and
// an unparseable file is treated the same way; losing the log is acceptable,
// aborting the run is not.
func (s *Store) Load() []Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("history unreadable, starting fresh")
		}
		return nil
	}

	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("history corrupted, starting fresh")
		return nil
	}
	return recs
}

// Append adds a record for topic dated today and rewrites the whole file.
func (s *Store) Append(topic string, recs []Record) error {
	recs = append(recs, Record{
		Date:  s.now().Format("2006-01-02"),
		Topic: topic,
	})

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
