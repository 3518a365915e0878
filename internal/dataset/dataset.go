// Package dataset holds the player records the chat service answers from.
//
// The collection is loaded once at startup (from the scraper's JSON file or
// its Postgres mirror) and never mutated afterwards.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Unknown is displayed in place of a missing or null field.
const Unknown = "—"

// Required fields present on every record.
const (
	FieldPlayer = "player"
	FieldTeam   = "team"
)

// ErrNoRecords is returned when a source yields no usable player records.
var ErrNoRecords = errors.New("dataset has no player records")

// Record is one player's stat fields. Values are json.Number, string, bool
// or nil as decoded from the dataset file.
type Record map[string]any

// Name returns the record's player name.
func (r Record) Name() string { return stringField(r, FieldPlayer) }

// Team returns the record's team name.
func (r Record) Team() string { return stringField(r, FieldTeam) }

// Display returns the field rendered for humans, or Unknown when absent.
func (r Record) Display(field string) string {
	v, ok := r[field]
	if !ok {
		return Unknown
	}
	return Display(v)
}

func stringField(r Record, key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// Store indexes records by player name.
type Store struct {
	records map[string]Record
	names   []string
}

// New indexes records by their player field. Records without a player name
// are skipped; a repeated name replaces the earlier record but keeps its
// position.
func New(records []Record) *Store {
	s := &Store{records: make(map[string]Record, len(records))}
	for _, r := range records {
		name := r.Name()
		if name == "" {
			continue
		}
		if _, exists := s.records[name]; !exists {
			s.names = append(s.names, name)
		}
		s.records[name] = r
	}
	return s
}

// Decode reads a JSON array of player objects. Numbers are kept as
// json.Number so values render exactly as the file wrote them.
func Decode(r io.Reader) (*Store, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	s := New(records)
	if s.Len() == 0 {
		return nil, ErrNoRecords
	}
	return s, nil
}

// LoadFile reads the dataset file at path.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Get returns the record for an exact player name.
func (s *Store) Get(name string) (Record, bool) {
	r, ok := s.records[name]
	return r, ok
}

// Names returns player names in load order.
func (s *Store) Names() []string {
	return append([]string(nil), s.names...)
}

// Records returns records in load order.
func (s *Store) Records() []Record {
	out := make([]Record, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, s.records[n])
	}
	return out
}

// Len returns the number of distinct players.
func (s *Store) Len() int { return len(s.names) }

// Teams returns the distinct team names in load order.
func (s *Store) Teams() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, n := range s.names {
		t := s.records[n].Team()
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
