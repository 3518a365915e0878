// Package intent classifies a chat turn from what the extractor found.
package intent

import (
	"regexp"
	"strings"
)

// Intent is the closed set of things a turn can ask for.
type Intent string

const (
	GetPlayerStats Intent = "GET_PLAYER_STATS" // "how many goals has saka scored?"
	ComparePlayers Intent = "COMPARE_PLAYERS"  // "who has more assists, saka or martinelli?"
	Leaderboard    Intent = "LEADERBOARD"      // "which player has the most goals?"
	Help           Intent = "HELP"             // "what can I ask?"
	Unknown        Intent = "UNKNOWN"
)

var helpPattern = regexp.MustCompile(`\b(help|how to|what can i ask|examples|commands)\b`)

// IsHelp reports whether text asks what the bot can do.
func IsHelp(text string) bool {
	return helpPattern.MatchString(strings.ToLower(text))
}

// Classify applies the decision table in priority order. The order matters:
// a superlative with a stat is a leaderboard even when two players are named.
func Classify(text string, players, stats []string, superlative bool) Intent {
	switch {
	case IsHelp(text):
		return Help
	case superlative && len(stats) > 0:
		return Leaderboard
	case distinct(players) >= 2 && len(stats) > 0:
		return ComparePlayers
	case len(players) > 0:
		return GetPlayerStats
	default:
		return Unknown
	}
}

func distinct(xs []string) int {
	set := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		set[x] = struct{}{}
	}
	return len(set)
}
