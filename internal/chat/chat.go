// Package chat answers one turn of the stats conversation: extract, classify,
// query, render.
//
// The engine keeps no session state. The caller carries a Context between
// turns so a follow-up like "and his assists?" resolves to the last player.
package chat

import (
	"log/slog"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/intent"
	"github.com/albapepper/scoracle-chat/internal/nlp"
	"github.com/albapepper/scoracle-chat/internal/query"
	"github.com/albapepper/scoracle-chat/internal/render"
)

// Context is the state a client round-trips between turns.
type Context struct {
	LastPlayer string `json:"last_player,omitempty"`
}

// Request is one user turn.
type Request struct {
	Query   string   `json:"query"`
	Context *Context `json:"context,omitempty"`
}

// Response is the reply plus the context for the next turn.
type Response struct {
	Response string        `json:"response"`
	Context  *Context      `json:"context,omitempty"`
	Intent   intent.Intent `json:"-"`
}

// Engine wires the pipeline stages together.
type Engine struct {
	extractor *nlp.Extractor
	query     *query.Engine
	render    *render.Renderer
	logger    *slog.Logger
}

// NewEngine creates a chat engine.
func NewEngine(ex *nlp.Extractor, q *query.Engine, r *render.Renderer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{extractor: ex, query: q, render: r, logger: logger}
}

// Query returns the engine's query layer.
func (e *Engine) Query() *query.Engine { return e.query }

// Answer runs one turn. It always produces a reply.
func (e *Engine) Answer(req Request) Response {
	text := strings.TrimSpace(req.Query)
	if text == "" {
		return Response{Response: e.render.EmptyQuery(), Context: req.Context, Intent: intent.Unknown}
	}

	ex := e.extractor.Extract(text)

	// Elliptical follow-up: a stat with no player refers to the last one.
	if len(ex.Players) == 0 && len(ex.Stats) > 0 && req.Context != nil && req.Context.LastPlayer != "" {
		ex.Players = []string{req.Context.LastPlayer}
	}

	in := intent.Classify(text, ex.Players, ex.Stats, ex.Superlative)
	e.logger.Debug("Chat turn",
		"intent", in,
		"players", ex.Players,
		"stats", ex.Stats,
		"superlative", ex.Superlative,
		"team", ex.Team,
		"all_stats", ex.AllStats)

	var reply string
	switch in {
	case intent.Help:
		reply = e.render.Help()
	case intent.Leaderboard:
		reply = e.leaderboard(ex)
	case intent.ComparePlayers:
		reply = e.compare(ex)
	case intent.GetPlayerStats:
		reply = e.playerStats(ex)
	default:
		reply = e.unknown(ex)
	}

	return Response{Response: reply, Context: nextContext(req.Context, ex.Players), Intent: in}
}

func nextContext(prev *Context, players []string) *Context {
	if len(players) > 0 {
		return &Context{LastPlayer: players[len(players)-1]}
	}
	return prev
}

// --------------------------------------------------------------------------
// Intent handlers
// --------------------------------------------------------------------------

func (e *Engine) leaderboard(ex nlp.Result) string {
	stats := rankable(ex.Stats)
	if len(stats) == 0 {
		return e.render.NeedLeaderStat()
	}
	lines := make([]string, 0, len(stats))
	for _, stat := range stats {
		leader, found := e.query.Leaderboard(stat, ex.Team)
		lines = append(lines, e.render.LeaderLine(stat, ex.Team, leader, found))
	}
	return strings.Join(lines, "\n")
}

func (e *Engine) compare(ex nlp.Result) string {
	stats := rankable(ex.Stats)
	if len(stats) == 0 {
		return e.render.NeedCompareStat()
	}
	lines := make([]string, 0, len(stats))
	for _, stat := range stats {
		lines = append(lines, e.render.CompareLine(stat, e.query.Compare(ex.Players, stat)))
	}
	return e.render.Comparison(lines)
}

// rankable drops the name fields when a numeric stat was also asked for:
// "which player has the most assists" ranks assists.
func rankable(stats []string) []string {
	out := make([]string, 0, len(stats))
	for _, s := range stats {
		if s != dataset.FieldPlayer && s != dataset.FieldTeam {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return stats
	}
	return out
}

// playerStats answers named stats when there are any, else dumps the full
// record on request, else offers a teaser.
func (e *Engine) playerStats(ex nlp.Result) string {
	switch {
	case len(ex.Stats) > 0:
		results := e.query.PlayerStats(ex.Players, ex.Stats, false)
		if len(results) == 0 {
			return e.render.PlayerNotFound(ex.Players)
		}
		lines := make([]string, len(results))
		for i, ps := range results {
			lines[i] = e.render.StatSentence(ps)
		}
		return strings.Join(lines, "\n")

	case ex.AllStats:
		results := e.query.PlayerStats(ex.Players, nil, true)
		if len(results) == 0 {
			return e.render.PlayerNotFound(ex.Players)
		}
		blocks := make([]string, len(results))
		for i, ps := range results {
			blocks[i] = e.render.FullBlock(ps)
		}
		return strings.Join(blocks, "\n\n")

	default:
		p := ex.Players[0]
		rec, ok := e.query.Store().Get(p)
		if !ok {
			return e.render.PlayerNotFound(ex.Players)
		}
		return e.render.Teaser(p, rec)
	}
}

func (e *Engine) unknown(ex nlp.Result) string {
	if len(ex.Stats) > 0 {
		return e.render.AskPlayerFor(ex.Stats)
	}
	return e.render.NotUnderstood()
}
