// Package vocab maps the phrases people use for football stats onto the
// canonical stat identifiers stored in the player dataset.
//
// Many phrases resolve to one canonical stat ("xg", "expected goals" →
// expected_goals). A phrase never resolves to more than one stat.
package vocab

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one phrase → canonical stat mapping.
type Entry struct {
	Phrase string
	Stat   string
}

// Vocabulary is an immutable phrase/stat index. Build it once at startup and
// pass it to the components that need it.
type Vocabulary struct {
	entries  []Entry
	byPhrase map[string]string
	byStat   map[string][]string
	rank     map[string]int
	stats    []string
}

// New builds a Vocabulary from entries. Phrases are matched case-insensitively;
// a phrase listed twice with different stats is rejected.
func New(entries []Entry) (*Vocabulary, error) {
	v := &Vocabulary{
		entries:  make([]Entry, 0, len(entries)),
		byPhrase: make(map[string]string, len(entries)),
		byStat:   make(map[string][]string),
		rank:     make(map[string]int),
	}
	for _, e := range entries {
		phrase := strings.ToLower(strings.TrimSpace(e.Phrase))
		if phrase == "" || e.Stat == "" {
			return nil, fmt.Errorf("empty vocabulary entry %q → %q", e.Phrase, e.Stat)
		}
		if prev, ok := v.byPhrase[phrase]; ok {
			if prev != e.Stat {
				return nil, fmt.Errorf("phrase %q maps to both %q and %q", phrase, prev, e.Stat)
			}
			continue
		}
		v.byPhrase[phrase] = e.Stat
		v.entries = append(v.entries, Entry{Phrase: phrase, Stat: e.Stat})
		if _, seen := v.rank[e.Stat]; !seen {
			v.rank[e.Stat] = len(v.stats)
			v.stats = append(v.stats, e.Stat)
		}
		v.byStat[e.Stat] = append(v.byStat[e.Stat], phrase)
	}
	for _, phrases := range v.byStat {
		sort.Strings(phrases)
	}
	return v, nil
}

// MustNew is New for literal tables known to be valid.
func MustNew(entries []Entry) *Vocabulary {
	v, err := New(entries)
	if err != nil {
		panic(err)
	}
	return v
}

// Default returns the built-in football vocabulary.
func Default() *Vocabulary {
	return MustNew(defaultEntries)
}

// Canonical resolves a phrase to its canonical stat.
func (v *Vocabulary) Canonical(phrase string) (string, bool) {
	stat, ok := v.byPhrase[strings.ToLower(strings.TrimSpace(phrase))]
	return stat, ok
}

// Phrases returns the known phrases for a canonical stat, sorted.
func (v *Vocabulary) Phrases(stat string) []string {
	return append([]string(nil), v.byStat[stat]...)
}

// Reverse returns a copy of the canonical stat → phrases index.
func (v *Vocabulary) Reverse() map[string][]string {
	out := make(map[string][]string, len(v.byStat))
	for stat, phrases := range v.byStat {
		out[stat] = append([]string(nil), phrases...)
	}
	return out
}

// Entries returns every phrase mapping in table order.
func (v *Vocabulary) Entries() []Entry {
	return append([]Entry(nil), v.entries...)
}

// Stats returns the canonical stats in the order they first appear in the table.
func (v *Vocabulary) Stats() []string {
	return append([]string(nil), v.stats...)
}

// Has reports whether stat is a canonical stat of this vocabulary.
func (v *Vocabulary) Has(stat string) bool {
	_, ok := v.rank[stat]
	return ok
}

// Sort orders stats by table position. Unknown stats go last, alphabetically.
func (v *Vocabulary) Sort(stats []string) {
	sort.SliceStable(stats, func(i, j int) bool {
		ri, iok := v.rank[stats[i]]
		rj, jok := v.rank[stats[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return stats[i] < stats[j]
		}
	})
}

// Len returns the number of phrases.
func (v *Vocabulary) Len() int { return len(v.entries) }
