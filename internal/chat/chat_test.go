package chat

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/intent"
	"github.com/albapepper/scoracle-chat/internal/nlp"
	"github.com/albapepper/scoracle-chat/internal/render"
	"github.com/albapepper/scoracle-chat/internal/vocab"
)

// stubTagger tags the listed words as person entities and proper nouns.
type stubTagger struct {
	people []string
}

func (s stubTagger) Analyze(text string) (nlp.Analysis, error) {
	var a nlp.Analysis
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, "?,.!")
		person := slices.Contains(s.people, w)
		a.Tokens = append(a.Tokens, nlp.Token{Text: w, ProperNoun: person})
		if person {
			a.Entities = append(a.Entities, nlp.Entity{Text: w, Kind: nlp.EntityPerson})
		}
	}
	return a, nil
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	store := dataset.New([]dataset.Record{
		{"player": "Bukayo Saka", "team": "Arsenal", "goals": 12, "assists": 9, "matches_played": 30, "expected_goals": 10.4},
		{"player": "Gabriel Martinelli", "team": "Arsenal", "goals": 6, "assists": 4},
		{"player": "Erling Haaland", "team": "Manchester City", "goals": 27, "assists": 5},
	})
	require.Equal(t, 3, store.Len())

	return New(store, vocab.Default(), Options{
		Tagger: stubTagger{people: []string{"Saka", "Martinelli", "Haaland"}},
		Picker: render.First{},
	}, nil)
}

func TestAnswer(t *testing.T) {
	e := newTestEngine(t)
	r := render.New(render.First{})

	tests := []struct {
		name        string
		query       string
		ctx         *Context
		want        string
		wantIntent  intent.Intent
		wantContext *Context
	}{
		{
			name:        "player stat",
			query:       "How many goals has Saka scored?",
			want:        "Bukayo Saka currently has goals: 12.",
			wantIntent:  intent.GetPlayerStats,
			wantContext: &Context{LastPlayer: "Bukayo Saka"},
		},
		{
			name:        "follow-up uses context",
			query:       "and his assists?",
			ctx:         &Context{LastPlayer: "Bukayo Saka"},
			want:        "Bukayo Saka currently has assists: 9.",
			wantIntent:  intent.GetPlayerStats,
			wantContext: &Context{LastPlayer: "Bukayo Saka"},
		},
		{
			name:        "leaderboard",
			query:       "who has the most goals?",
			want:        "Got it. The goals leader is Erling Haaland with 27.",
			wantIntent:  intent.Leaderboard,
			wantContext: nil,
		},
		{
			name:        "leaderboard scoped to team",
			query:       "Who has the most goals at Arsenal?",
			want:        "Got it. The goals leader for Arsenal is Bukayo Saka with 12.",
			wantIntent:  intent.Leaderboard,
			wantContext: nil,
		},
		{
			name:        "comparison",
			query:       "who has more assists, Saka or Martinelli?",
			want:        "Here's how they stack up:\nFor assists: Bukayo Saka (9) > Gabriel Martinelli (4).",
			wantIntent:  intent.ComparePlayers,
			wantContext: &Context{LastPlayer: "Gabriel Martinelli"},
		},
		{
			name:        "player without stat",
			query:       "Tell me about Haaland",
			want:        "What would you like to know about Erling Haaland? For example — goals: 27, assists: 5.",
			wantIntent:  intent.GetPlayerStats,
			wantContext: &Context{LastPlayer: "Erling Haaland"},
		},
		{
			name:        "two players without stat",
			query:       "Compare Saka and Haaland",
			want:        "What would you like to know about Bukayo Saka? For example — goals: 12, assists: 9, matches played: 30.",
			wantIntent:  intent.GetPlayerStats,
			wantContext: &Context{LastPlayer: "Erling Haaland"},
		},
		{
			name:        "stat without player",
			query:       "how many goals?",
			want:        "Got it — goals. Which player should I look up?",
			wantIntent:  intent.Unknown,
			wantContext: nil,
		},
		{
			name:        "stale context",
			query:       "and his goals?",
			ctx:         &Context{LastPlayer: "Mohamed Salah"},
			want:        "I couldn't find Mohamed Salah in this season's stats.",
			wantIntent:  intent.GetPlayerStats,
			wantContext: &Context{LastPlayer: "Mohamed Salah"},
		},
		{
			name:        "help",
			query:       "help",
			ctx:         &Context{LastPlayer: "Bukayo Saka"},
			want:        r.Help(),
			wantIntent:  intent.Help,
			wantContext: &Context{LastPlayer: "Bukayo Saka"},
		},
		{
			name:        "nothing recognized",
			query:       "hello there",
			want:        r.NotUnderstood(),
			wantIntent:  intent.Unknown,
			wantContext: nil,
		},
		{
			name:        "blank",
			query:       "   ",
			ctx:         &Context{LastPlayer: "Bukayo Saka"},
			want:        r.EmptyQuery(),
			wantIntent:  intent.Unknown,
			wantContext: &Context{LastPlayer: "Bukayo Saka"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Answer(Request{Query: tt.query, Context: tt.ctx})
			assert.Equal(t, tt.want, got.Response)
			assert.Equal(t, tt.wantIntent, got.Intent)
			assert.Equal(t, tt.wantContext, got.Context)
		})
	}
}

func TestAnswerAllStats(t *testing.T) {
	e := newTestEngine(t)

	got := e.Answer(Request{Query: "show me all stats for Saka"})
	assert.Equal(t, intent.GetPlayerStats, got.Intent)
	assert.True(t, strings.HasPrefix(got.Response,
		"📊 Full stats for Bukayo Saka:\n- team: Arsenal\n- player: Bukayo Saka\n- matches played: 30\n- goals: 12\n- assists: 9\n- expected goals: 10.4"),
		got.Response)
}

func TestConversation(t *testing.T) {
	e := newTestEngine(t)

	first := e.Answer(Request{Query: "How many goals has Saka scored?"})
	require.NotNil(t, first.Context)

	second := e.Answer(Request{Query: "and his assists?", Context: first.Context})
	assert.Equal(t, "Bukayo Saka currently has assists: 9.", second.Response)

	third := e.Answer(Request{Query: "who has more goals, Saka or Haaland?", Context: second.Context})
	assert.Equal(t, "Here's how they stack up:\nFor goals: Erling Haaland (27) > Bukayo Saka (12).", third.Response)
	assert.Equal(t, &Context{LastPlayer: "Erling Haaland"}, third.Context)
}

func TestAnswerSpecificStatsBeforeFullDump(t *testing.T) {
	e := newTestEngine(t)

	got := e.Answer(Request{Query: "Saka goals and everything"})
	assert.Equal(t, intent.GetPlayerStats, got.Intent)
	assert.Equal(t, "Bukayo Saka currently has goals: 12.", got.Response)
}

func TestAnswerWithDefaultTagger(t *testing.T) {
	store := dataset.New([]dataset.Record{
		{"player": "Bukayo Saka", "team": "Arsenal", "goals": 12, "assists": 9, "progressive_carries": 95},
		{"player": "Gabriel Martinelli", "team": "Arsenal", "goals": 6, "assists": 4, "progressive_carries": 70},
		{"player": "Erling Haaland", "team": "Manchester City", "goals": 27, "assists": 5, "progressive_carries": 20},
		{"player": "Mohamed Salah", "team": "Liverpool", "goals": 18, "assists": 10, "progressive_carries": 110},
		{"player": "Son Heung-min", "team": "Tottenham", "goals": 17, "assists": 6, "progressive_carries": 60},
	})
	e := New(store, vocab.Default(), Options{Picker: render.First{}}, nil)

	tests := []struct {
		query      string
		want       string
		wantIntent intent.Intent
	}{
		{"Which player has the most assists?", "Got it. The assists leader is Mohamed Salah with 10.", intent.Leaderboard},
		{"which player has the most goals?", "Got it. The goals leader is Erling Haaland with 27.", intent.Leaderboard},
		{
			"Top player for progressive carries at Arsenal",
			"Got it. The progressive carries leader for Arsenal is Bukayo Saka with 95.",
			intent.Leaderboard,
		},
		{"How many goals has Bukayo Saka scored?", "Bukayo Saka currently has goals: 12.", intent.GetPlayerStats},
		{"how many goals has saka scored?", "Bukayo Saka currently has goals: 12.", intent.GetPlayerStats},
		{"What about Salah", "What would you like to know about Mohamed Salah? For example — goals: 18, assists: 10.", intent.GetPlayerStats},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := e.Answer(Request{Query: tt.query})
			assert.Equal(t, tt.want, got.Response)
			assert.Equal(t, tt.wantIntent, got.Intent)
		})
	}

	got := e.Answer(Request{Query: "Show me all stats for Son"})
	assert.True(t, strings.HasPrefix(got.Response, "📊 Full stats for Son Heung-min:"), got.Response)
}
