package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/scoracle-chat/internal/api/respond"
	"github.com/albapepper/scoracle-chat/internal/cache"
	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/render"
)

// VocabularyStat is one canonical stat and the phrases that resolve to it.
type VocabularyStat struct {
	Stat    string   `json:"stat"`
	Label   string   `json:"label"`
	Phrases []string `json:"phrases"`
}

// VocabularyList is the full vocabulary payload.
type VocabularyList struct {
	Count int              `json:"count"`
	Stats []VocabularyStat `json:"stats"`
}

// LeaderResult is the leaderboard answer for one stat.
type LeaderResult struct {
	Stat   string  `json:"stat"`
	Label  string  `json:"label"`
	Filter string  `json:"team_filter,omitempty"`
	Player string  `json:"player"`
	Team   string  `json:"team"`
	Value  float64 `json:"value"`
	Text   string  `json:"display"`
}

// GetVocabulary returns every canonical stat with its phrases.
// @Summary Get stat vocabulary
// @Description Returns each canonical stat identifier with the phrases users can type for it, in vocabulary order.
// @Tags stats
// @Produce json
// @Success 200 {object} VocabularyList
// @Router /stats/vocabulary [get]
func (h *Handler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "vocabulary", cache.TTLVocabulary, func() (any, bool) {
		stats := h.vocab.Stats()
		out := VocabularyList{Count: len(stats), Stats: make([]VocabularyStat, len(stats))}
		for i, s := range stats {
			out.Stats[i] = VocabularyStat{Stat: s, Label: render.Pretty(s), Phrases: h.vocab.Phrases(s)}
		}
		return out, true
	}, "")
}

// GetLeader returns the top player for a stat.
// @Summary Get stat leader
// @Description Returns the player with the highest value for a stat. The stat may be a canonical identifier (expected_goals) or any vocabulary phrase (xg). Restrict to a club with the team parameter.
// @Tags stats
// @Produce json
// @Param stat path string true "Canonical stat or phrase"
// @Param team query string false "Club name (fuzzy)"
// @Success 200 {object} LeaderResult
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /leaders/{stat} [get]
func (h *Handler) GetLeader(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "stat")
	input, err := url.PathUnescape(raw)
	if err != nil {
		input = raw
	}
	stat, ok := h.resolveStat(input)
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeUnknownStat, "Unknown stat: "+input)
		return
	}
	team := strings.TrimSpace(r.URL.Query().Get("team"))

	key := "leader:" + stat + ":" + strings.ToLower(team)
	h.serveCached(w, r, key, cache.TTLLeaders, func() (any, bool) {
		leader, found := h.query.Leaderboard(stat, team)
		if !found {
			return nil, false
		}
		return LeaderResult{
			Stat:   stat,
			Label:  render.Pretty(stat),
			Filter: team,
			Player: leader.Player,
			Team:   leader.Team,
			Value:  leader.Value,
			Text:   dataset.FormatNumber(leader.Value),
		}, true
	}, "No leader found for "+stat)
}

func (h *Handler) resolveStat(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if h.vocab.Has(input) {
		return input, true
	}
	return h.vocab.Canonical(input)
}
