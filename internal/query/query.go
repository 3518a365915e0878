// Package query answers stat lookups, leaderboards and comparisons over the
// in-memory player dataset.
package query

import (
	"sort"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/fuzzy"
	"github.com/albapepper/scoracle-chat/internal/vocab"
)

// Engine runs queries against a read-only store.
type Engine struct {
	store         *dataset.Store
	vocab         *vocab.Vocabulary
	teamThreshold int
}

// New creates a query engine. Zero teamThreshold selects the default.
func New(store *dataset.Store, v *vocab.Vocabulary, teamThreshold int) *Engine {
	if teamThreshold <= 0 {
		teamThreshold = fuzzy.DefaultTeamThreshold
	}
	return &Engine{store: store, vocab: v, teamThreshold: teamThreshold}
}

// Store returns the underlying dataset.
func (e *Engine) Store() *dataset.Store { return e.store }

// --------------------------------------------------------------------------
// Player stats
// --------------------------------------------------------------------------

// Field is one stat and its display value.
type Field struct {
	Stat  string
	Value string
}

// PlayerStats is the selected fields for one player.
type PlayerStats struct {
	Player string
	Fields []Field
}

// PlayerStats returns the requested stats for each player found in the
// dataset, or every field when dumpAll is set. Unknown players are skipped;
// missing fields carry dataset.Unknown.
func (e *Engine) PlayerStats(players, stats []string, dumpAll bool) []PlayerStats {
	var out []PlayerStats
	for _, p := range players {
		rec, ok := e.store.Get(p)
		if !ok {
			continue
		}
		keys := stats
		if dumpAll {
			keys = e.FieldOrder(rec)
		}
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, Field{Stat: k, Value: rec.Display(k)})
		}
		out = append(out, PlayerStats{Player: p, Fields: fields})
	}
	return out
}

// FieldOrder lists a record's keys with vocabulary stats first in table
// order, then any other fields alphabetically.
func (e *Engine) FieldOrder(rec dataset.Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	e.vocab.Sort(keys)
	return keys
}

// --------------------------------------------------------------------------
// Leaderboard
// --------------------------------------------------------------------------

// Leader is the top player for a stat.
type Leader struct {
	Player string
	Team   string
	Value  float64
}

// Leaderboard returns the player with the highest numeric value for stat,
// optionally restricted to records whose team fuzzy-matches team.
// Non-numeric values are skipped; the first player seen wins ties.
func (e *Engine) Leaderboard(stat, team string) (Leader, bool) {
	var best Leader
	found := false
	for _, rec := range e.store.Records() {
		if team != "" && !fuzzy.TeamMatches(rec.Team(), team, e.teamThreshold) {
			continue
		}
		v, ok := dataset.Number(rec[stat])
		if !ok {
			continue
		}
		if !found || v > best.Value {
			best = Leader{Player: rec.Name(), Team: rec.Team(), Value: v}
			found = true
		}
	}
	return best, found
}

// --------------------------------------------------------------------------
// Comparison
// --------------------------------------------------------------------------

// Ranked is one player's entry in a comparison.
type Ranked struct {
	Player  string
	Display string
	Value   float64
	Numeric bool
}

// Ranking is a comparison ordered best first.
type Ranking []Ranked

// Compare ranks players by stat, highest first, with non-numeric values
// after all numeric ones. Players whose value is unknown are dropped.
func (e *Engine) Compare(players []string, stat string) Ranking {
	rows := make(Ranking, 0, len(players))
	for _, p := range players {
		display := dataset.Unknown
		if rec, ok := e.store.Get(p); ok {
			display = rec.Display(stat)
		}
		v, ok := dataset.Number(display)
		rows = append(rows, Ranked{Player: p, Display: display, Value: v, Numeric: ok})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Numeric != rows[j].Numeric {
			return rows[i].Numeric
		}
		return rows[i].Value > rows[j].Value
	})

	out := rows[:0]
	for _, r := range rows {
		if r.Display != dataset.Unknown {
			out = append(out, r)
		}
	}
	return out
}

// String renders "A (v1) > B (v2)".
func (r Ranking) String() string {
	parts := make([]string, len(r))
	for i, x := range r {
		parts[i] = x.Player + " (" + x.Display + ")"
	}
	return strings.Join(parts, " > ")
}
