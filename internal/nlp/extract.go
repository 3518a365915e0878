package nlp

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/fuzzy"
)

// SuperlativeMarkers signal that the user wants an extremal answer.
var SuperlativeMarkers = []string{"most", "highest", "best", "top", "leading", "leader", "highest number", "max"}

// AllStatsPhrases ask for a player's complete record.
var AllStatsPhrases = []string{"all stats", "everything", "full stats", "every stat", "show all"}

var teamPattern = regexp.MustCompile(`\b(?:for|in|at)\s+([A-Z][a-z]+(?:\s[A-Z][a-z]+)*)`)

// Result holds everything extracted from one utterance. Empty fields mean
// nothing was found; extraction itself never fails.
type Result struct {
	Players     []string
	Stats       []string
	Superlative bool
	Team        string
	AllStats    bool
}

// Extractor runs the four extractions over an utterance.
type Extractor struct {
	tagger        Tagger
	players       *fuzzy.PlayerMatcher
	stats         *fuzzy.StatMatcher
	teams         []string
	teamThreshold int
	logger        *slog.Logger
}

// NewExtractor wires an extractor. teams is the dataset's team list; a tagged
// organization only becomes a team constraint when it matches one of them.
func NewExtractor(
	tagger Tagger,
	players *fuzzy.PlayerMatcher,
	stats *fuzzy.StatMatcher,
	teams []string,
	teamThreshold int,
	logger *slog.Logger,
) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		tagger:        tagger,
		players:       players,
		stats:         stats,
		teams:         append([]string(nil), teams...),
		teamThreshold: teamThreshold,
		logger:        logger,
	}
}

// Extract analyzes text once and runs every extraction over it.
func (e *Extractor) Extract(text string) Result {
	a := e.analyze(text)
	return Result{
		Players:     e.Players(a, text),
		Stats:       e.Stats(text),
		Superlative: Superlative(text),
		Team:        e.Team(a, text),
		AllStats:    AllStatsRequested(text),
	}
}

func (e *Extractor) analyze(text string) Analysis {
	if e.tagger == nil {
		return Analysis{}
	}
	a, err := e.tagger.Analyze(text)
	if err != nil {
		e.logger.Warn("Tagging failed, falling back to full-text matching", "error", err)
		return Analysis{}
	}
	return a
}

// Players collects candidate name spans (person and organization entities,
// proper-noun runs, each word that is not a stop word, and the whole
// utterance) and resolves each against the known players. Matches are
// deduplicated in discovery order.
func (e *Extractor) Players(a Analysis, text string) []string {
	var candidates []string
	seenCand := make(map[string]struct{})
	add := func(c string) {
		c = strings.TrimSpace(c)
		if c == "" {
			return
		}
		if _, ok := seenCand[c]; ok {
			return
		}
		seenCand[c] = struct{}{}
		candidates = append(candidates, c)
	}

	for _, ent := range a.Entities {
		if ent.Kind == EntityPerson || ent.Kind == EntityOrganization {
			add(ent.Text)
		}
	}
	for _, run := range a.ProperNounRuns() {
		add(run)
	}
	for _, w := range words(text) {
		if !isStopWord(w) {
			add(w)
		}
	}
	add(text)

	var matched []string
	seen := make(map[string]struct{})
	for _, c := range candidates {
		for _, name := range e.players.Find(c) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			matched = append(matched, name)
		}
	}
	return matched
}

// Stats resolves the lowercased utterance to canonical stats. All-stats
// phrases are removed first so "all stats" is not read as a stat name.
func (e *Extractor) Stats(text string) []string {
	lower := strings.ToLower(text)
	for _, p := range AllStatsPhrases {
		lower = strings.ReplaceAll(lower, p, " ")
	}
	return e.stats.Find(lower)
}

// Team returns the first span after "for", "in" or "at" that could name a
// team, else the first organization entity that matches a known team, else
// "". Spans made only of stop words or resolving to a player are skipped.
func (e *Extractor) Team(a Analysis, text string) string {
	for _, m := range teamPattern.FindAllStringSubmatch(text, -1) {
		if e.couldBeTeam(m[1]) {
			return m[1]
		}
	}
	for _, ent := range a.Entities {
		if ent.Kind == EntityOrganization && e.couldBeTeam(ent.Text) && e.knownTeam(ent.Text) {
			return ent.Text
		}
	}
	return ""
}

func (e *Extractor) couldBeTeam(span string) bool {
	content := false
	for _, w := range words(span) {
		if !isStopWord(w) {
			content = true
			break
		}
	}
	return content && len(e.players.Find(span)) == 0
}

func (e *Extractor) knownTeam(span string) bool {
	for _, team := range e.teams {
		if fuzzy.TeamMatches(team, span, e.teamThreshold) {
			return true
		}
	}
	return false
}

// Superlative reports whether text contains a superlative marker.
func Superlative(text string) bool {
	return containsAny(strings.ToLower(text), SuperlativeMarkers)
}

// AllStatsRequested reports whether text asks for a full record dump.
func AllStatsRequested(text string) bool {
	return containsAny(strings.ToLower(text), AllStatsPhrases)
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
