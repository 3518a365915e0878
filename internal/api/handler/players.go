package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/scoracle-chat/internal/api/respond"
	"github.com/albapepper/scoracle-chat/internal/cache"
	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/fuzzy"
)

// PlayerList is the autofill payload.
type PlayerList struct {
	Team    string   `json:"team,omitempty"`
	Count   int      `json:"count"`
	Players []string `json:"players"`
}

// PlayerDetail is one player's full record.
type PlayerDetail struct {
	Player  string         `json:"player"`
	Team    string         `json:"team"`
	Query   string         `json:"query"`
	Matched string         `json:"matched"` // "exact" or "fuzzy"
	Record  dataset.Record `json:"record"`
}

// ListPlayers returns known player names in dataset order.
// @Summary List players
// @Description Returns every player name in the dataset, used for frontend search/autofill. Filter by club with the team parameter.
// @Tags players
// @Produce json
// @Param team query string false "Club name (fuzzy)"
// @Success 200 {object} PlayerList
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	team := strings.TrimSpace(r.URL.Query().Get("team"))
	key := "players:" + strings.ToLower(team)

	h.serveCached(w, r, key, cache.TTLPlayers, func() (any, bool) {
		names := make([]string, 0, h.query.Store().Len())
		for _, rec := range h.query.Store().Records() {
			if team != "" && !fuzzy.TeamMatches(rec.Team(), team, h.cfg.TeamMatchThreshold) {
				continue
			}
			names = append(names, rec.Name())
		}
		return PlayerList{Team: team, Count: len(names), Players: names}, true
	}, "")
}

// GetPlayer returns the record for an exact or fuzzy-matched player name.
// @Summary Get player record
// @Description Returns every stored field for a player. The name is matched exactly first, then by token-set similarity.
// @Tags players
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} PlayerDetail
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{name} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		name = raw
	}
	name = strings.TrimSpace(name)

	resolved, how := h.resolvePlayer(name)
	if resolved == "" {
		respond.WriteError(w, http.StatusNotFound, respond.CodeNotFound, "No player matches "+name)
		return
	}

	key := "player:" + resolved + ":" + name
	h.serveCached(w, r, key, cache.TTLPlayers, func() (any, bool) {
		rec, ok := h.query.Store().Get(resolved)
		if !ok {
			return nil, false
		}
		return PlayerDetail{Player: resolved, Team: rec.Team(), Query: name, Matched: how, Record: rec}, true
	}, "No player matches "+name)
}

func (h *Handler) resolvePlayer(name string) (string, string) {
	if name == "" {
		return "", ""
	}
	if _, ok := h.query.Store().Get(name); ok {
		return name, "exact"
	}
	if hits := h.players.Find(name); len(hits) > 0 {
		return hits[0], "fuzzy"
	}
	return "", ""
}
