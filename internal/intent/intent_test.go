package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		players     []string
		stats       []string
		superlative bool
		want        Intent
	}{
		{"help wins over everything", "help me compare saka and martinelli goals",
			[]string{"Bukayo Saka", "Gabriel Martinelli"}, []string{"goals"}, true, Help},
		{"what can i ask", "What can I ask?", nil, nil, false, Help},
		{"superlative with stat", "who has the most goals", nil, []string{"goals"}, true, Leaderboard},
		{"superlative beats two players", "who has the most goals saka or martinelli",
			[]string{"Bukayo Saka", "Gabriel Martinelli"}, []string{"goals"}, true, Leaderboard},
		{"superlative without stat", "who is the best", []string{"Bukayo Saka"}, nil, true, GetPlayerStats},
		{"two players and a stat", "saka or martinelli assists",
			[]string{"Bukayo Saka", "Gabriel Martinelli"}, []string{"assists"}, false, ComparePlayers},
		{"same player twice is not a comparison", "saka vs saka goals",
			[]string{"Bukayo Saka", "Bukayo Saka"}, []string{"goals"}, false, GetPlayerStats},
		{"two players no stat", "saka and martinelli",
			[]string{"Bukayo Saka", "Gabriel Martinelli"}, nil, false, GetPlayerStats},
		{"one player", "saka goals", []string{"Bukayo Saka"}, []string{"goals"}, false, GetPlayerStats},
		{"stat only", "goals", nil, []string{"goals"}, false, Unknown},
		{"nothing", "hello", nil, nil, false, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text, tt.players, tt.stats, tt.superlative))
		})
	}
}

func TestIsHelp(t *testing.T) {
	for text, want := range map[string]bool{
		"HELP":                    true,
		"how to use this":         true,
		"show me some examples":   true,
		"list commands":           true,
		"helpful stats for saka":  false,
		"how many goals for saka": false,
	} {
		assert.Equal(t, want, IsHelp(text), text)
	}
}
