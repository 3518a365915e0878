// Package render turns query results into short conversational replies.
package render

import (
	"fmt"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/query"
)

var acks = []string{
	"Got it.",
	"Sure thing.",
	"Alright.",
	"Absolutely.",
	"On it.",
}

var compareOpeners = []string{
	"Here's how they stack up:",
	"Let's line them up:",
	"Side-by-side, this is what we've got:",
}

// HelpExamples are the sample questions listed by the help reply.
var HelpExamples = []string{
	"How many goals has Bukayo Saka scored?",
	"Goals scored by Saka",
	"Which player has the most assists?",
	"Who has more xG — Haaland or Salah?",
	"Show me all stats for Son",
	"Top player for progressive carries at Arsenal",
}

// teaserStats are offered when a player is named without a stat.
var teaserStats = []string{"goals", "assists", "matches_played"}

// Renderer formats replies. The picker decides between equivalent phrasings.
type Renderer struct {
	picker Picker
}

// New creates a Renderer. A nil picker means Random.
func New(p Picker) *Renderer {
	if p == nil {
		p = Random{}
	}
	return &Renderer{picker: p}
}

func (r *Renderer) pick(options []string) string {
	i := r.picker.Pick(len(options))
	if i < 0 || i >= len(options) {
		i = 0
	}
	return options[i]
}

// Pretty turns a stat identifier into words ("expected_goals" → "expected goals").
func Pretty(stat string) string {
	return strings.ReplaceAll(stat, "_", " ")
}

// NaturalJoin joins items as "a, b and c".
func NaturalJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func fieldList(fields []query.Field, sep string) string {
	bits := make([]string, len(fields))
	for i, f := range fields {
		bits[i] = Pretty(f.Stat) + ": " + f.Value
	}
	return strings.Join(bits, sep)
}

// --------------------------------------------------------------------------
// Fixed replies
// --------------------------------------------------------------------------

// EmptyQuery is the reply to a blank message.
func (r *Renderer) EmptyQuery() string {
	return "Tell me what you'd like to know — a player, a stat, a comparison… I've got you."
}

// Help lists example questions.
func (r *Renderer) Help() string {
	return "You can ask me about players, stats, comparisons, and leaders. " +
		"Try things like:\n• " + strings.Join(HelpExamples, "\n• ")
}

// NeedLeaderStat asks which stat a leaderboard is for.
func (r *Renderer) NeedLeaderStat() string {
	return "Which stat would you like the leader for? (e.g., goals, assists, xG)"
}

// NeedCompareStat asks which stat to compare on.
func (r *Renderer) NeedCompareStat() string {
	return "Which stat should I compare? (e.g., goals, assists, xG)"
}

// NotUnderstood is the reply when nothing useful was extracted.
func (r *Renderer) NotUnderstood() string {
	return "I didn't quite catch that. You can ask things like: " +
		"'How many goals has Saka scored?' or 'Which player has the most assists?'"
}

// --------------------------------------------------------------------------
// Player stats
// --------------------------------------------------------------------------

// StatSentence summarizes the selected stats for one player.
func (r *Renderer) StatSentence(ps query.PlayerStats) string {
	if len(ps.Fields) == 0 {
		return fmt.Sprintf("What would you like to know about %s?", ps.Player)
	}
	list := fieldList(ps.Fields, ", ")
	return r.pick([]string{
		fmt.Sprintf("%s currently has %s.", ps.Player, list),
		fmt.Sprintf("So far, %s has recorded %s.", ps.Player, list),
		fmt.Sprintf("In this season, %s has %s.", ps.Player, list),
	})
}

// FullBlock lists every field of a player's record as bullets.
func (r *Renderer) FullBlock(ps query.PlayerStats) string {
	lines := make([]string, len(ps.Fields))
	for i, f := range ps.Fields {
		lines[i] = "- " + Pretty(f.Stat) + ": " + f.Value
	}
	return fmt.Sprintf("📊 Full stats for %s:\n%s", ps.Player, strings.Join(lines, "\n"))
}

// Teaser prompts for a stat, showing a few headline numbers when available.
func (r *Renderer) Teaser(player string, rec dataset.Record) string {
	var teasers []string
	for _, key := range teaserStats {
		if v, ok := rec[key]; ok {
			teasers = append(teasers, Pretty(key)+": "+dataset.Display(v))
		}
	}
	if len(teasers) > 0 {
		return fmt.Sprintf("What would you like to know about %s? For example — %s.", player, strings.Join(teasers, ", "))
	}
	return fmt.Sprintf("What would you like to know about %s? (goals, assists, xG, minutes…)", player)
}

// --------------------------------------------------------------------------
// Leaderboards and comparisons
// --------------------------------------------------------------------------

// LeaderLine announces the leader for stat, optionally scoped to team.
func (r *Renderer) LeaderLine(stat, team string, leader query.Leader, found bool) string {
	pretty := Pretty(stat)
	if !found {
		if team != "" {
			return fmt.Sprintf("I couldn't find a clear leader for %s at %s.", pretty, team)
		}
		return fmt.Sprintf("I couldn't find a clear leader for %s.", pretty)
	}
	value := dataset.FormatNumber(leader.Value)
	if team != "" {
		return fmt.Sprintf("%s The %s leader for %s is %s with %s.", r.pick(acks), pretty, team, leader.Player, value)
	}
	return fmt.Sprintf("%s The %s leader is %s with %s.", r.pick(acks), pretty, leader.Player, value)
}

// CompareLine renders one stat's ranking.
func (r *Renderer) CompareLine(stat string, ranking query.Ranking) string {
	pretty := Pretty(stat)
	if len(ranking) == 0 {
		return fmt.Sprintf("I couldn't compare %s for those players.", pretty)
	}
	return fmt.Sprintf("For %s: %s.", pretty, ranking.String())
}

// Comparison prefixes ranking lines with an opener.
func (r *Renderer) Comparison(lines []string) string {
	return r.pick(compareOpeners) + "\n" + strings.Join(lines, "\n")
}

// --------------------------------------------------------------------------
// Guidance for unclassified turns
// --------------------------------------------------------------------------

// PlayerNotFound is the reply when none of the players are in the dataset.
func (r *Renderer) PlayerNotFound(players []string) string {
	return fmt.Sprintf("I couldn't find %s in this season's stats.", NaturalJoin(players))
}

// AskPlayerFor asks which player the named stats are for.
func (r *Renderer) AskPlayerFor(stats []string) string {
	pretty := make([]string, len(stats))
	for i, s := range stats {
		pretty[i] = Pretty(s)
	}
	return fmt.Sprintf("Got it — %s. Which player should I look up?", NaturalJoin(pretty))
}
