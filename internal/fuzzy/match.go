package fuzzy

import (
	"sort"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/vocab"
)

// Default thresholds. Scores at or above a threshold count as a match.
const (
	DefaultPlayerLimit     = 5
	DefaultPlayerThreshold = 80
	DefaultStatThreshold   = 85
	DefaultTeamThreshold   = 85
)

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

// PlayerMatcher resolves text to known player names by token-set similarity.
type PlayerMatcher struct {
	names     []string
	limit     int
	threshold int
}

// NewPlayerMatcher creates a matcher over names. Zero limit or threshold
// selects the defaults.
func NewPlayerMatcher(names []string, limit, threshold int) *PlayerMatcher {
	if limit <= 0 {
		limit = DefaultPlayerLimit
	}
	if threshold <= 0 {
		threshold = DefaultPlayerThreshold
	}
	return &PlayerMatcher{
		names:     append([]string(nil), names...),
		limit:     limit,
		threshold: threshold,
	}
}

type scored struct {
	name  string
	score int
}

// Find returns up to limit names scoring at least the threshold against text,
// best score first. Equal scores keep the order names were given in.
func (m *PlayerMatcher) Find(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var hits []scored
	for _, name := range m.names {
		if s := TokenSetScore(text, name); s >= m.threshold {
			hits = append(hits, scored{name: name, score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > m.limit {
		hits = hits[:m.limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

// --------------------------------------------------------------------------
// Stat phrases
// --------------------------------------------------------------------------

// StatMatcher resolves text to canonical stats through the vocabulary.
type StatMatcher struct {
	vocab     *vocab.Vocabulary
	threshold int
}

// NewStatMatcher creates a matcher over v. Zero threshold selects the default.
func NewStatMatcher(v *vocab.Vocabulary, threshold int) *StatMatcher {
	if threshold <= 0 {
		threshold = DefaultStatThreshold
	}
	return &StatMatcher{vocab: v, threshold: threshold}
}

// Find returns the canonical stats whose phrases occur in text literally or
// score at least the threshold by partial similarity. Results are
// deduplicated and in vocabulary order.
func (m *StatMatcher) Find(text string) []string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, e := range m.vocab.Entries() {
		if _, dup := seen[e.Stat]; dup {
			continue
		}
		if strings.Contains(text, e.Phrase) || PartialScore(text, e.Phrase) >= m.threshold {
			seen[e.Stat] = struct{}{}
			out = append(out, e.Stat)
		}
	}
	m.vocab.Sort(out)
	return out
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

// TeamMatches reports whether team matches filter by case-insensitive
// partial similarity of at least threshold.
func TeamMatches(team, filter string, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultTeamThreshold
	}
	return PartialScore(strings.ToLower(team), strings.ToLower(filter)) >= threshold
}
