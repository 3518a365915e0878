package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/vocab"
)

func newEngine(records ...dataset.Record) *Engine {
	return New(dataset.New(records), vocab.Default(), 0)
}

func TestPlayerStats(t *testing.T) {
	e := newEngine(
		dataset.Record{"player": "Bukayo Saka", "team": "Arsenal", "goals": 12, "assists": 9},
	)

	got := e.PlayerStats([]string{"Bukayo Saka", "Nobody"}, []string{"goals", "red_cards"}, false)
	require.Len(t, got, 1)
	assert.Equal(t, PlayerStats{
		Player: "Bukayo Saka",
		Fields: []Field{{Stat: "goals", Value: "12"}, {Stat: "red_cards", Value: dataset.Unknown}},
	}, got[0])

	assert.Empty(t, e.PlayerStats([]string{"Nobody"}, []string{"goals"}, false))
}

func TestPlayerStatsDumpAll(t *testing.T) {
	e := newEngine(
		dataset.Record{"player": "Bukayo Saka", "team": "Arsenal", "goals": 12, "assists": 9, "zz_extra": "x", "aa_extra": 1},
	)

	got := e.PlayerStats([]string{"Bukayo Saka"}, nil, true)
	require.Len(t, got, 1)

	var keys []string
	for _, f := range got[0].Fields {
		keys = append(keys, f.Stat)
	}
	assert.Equal(t, []string{"team", "player", "goals", "assists", "aa_extra", "zz_extra"}, keys)
}

func TestLeaderboard(t *testing.T) {
	e := newEngine(
		dataset.Record{"player": "A", "team": "Arsenal", "goals": 5},
		dataset.Record{"player": "B", "team": "Manchester City", "goals": 10},
		dataset.Record{"player": "C", "team": "Chelsea", "goals": dataset.Unknown},
		dataset.Record{"player": "D", "team": "Arsenal", "goals": "7"},
		dataset.Record{"player": "E", "team": "Chelsea"},
	)

	leader, ok := e.Leaderboard("goals", "")
	require.True(t, ok)
	assert.Equal(t, Leader{Player: "B", Team: "Manchester City", Value: 10}, leader)

	t.Run("team filter", func(t *testing.T) {
		leader, ok := e.Leaderboard("goals", "arsenal")
		require.True(t, ok)
		assert.Equal(t, "D", leader.Player)
		assert.Equal(t, 7.0, leader.Value)
	})

	t.Run("no numeric values", func(t *testing.T) {
		_, ok := e.Leaderboard("goals", "Chelsea")
		assert.False(t, ok)
		_, ok = e.Leaderboard("saves", "")
		assert.False(t, ok)
	})
}

func TestLeaderboardTieKeepsFirst(t *testing.T) {
	e := newEngine(
		dataset.Record{"player": "A", "team": "X", "assists": 9},
		dataset.Record{"player": "B", "team": "Y", "assists": 9},
	)
	leader, ok := e.Leaderboard("assists", "")
	require.True(t, ok)
	assert.Equal(t, "A", leader.Player)
}

func TestLeaderboardNegativeValues(t *testing.T) {
	e := newEngine(
		dataset.Record{"player": "A", "team": "X", "goals_minus_expected": -2.5},
		dataset.Record{"player": "B", "team": "Y", "goals_minus_expected": -0.5},
	)
	leader, ok := e.Leaderboard("goals_minus_expected", "")
	require.True(t, ok)
	assert.Equal(t, "B", leader.Player)
}

func TestCompare(t *testing.T) {
	e := newEngine(
		dataset.Record{"player": "A", "team": "X", "goals": 3},
		dataset.Record{"player": "B", "team": "Y", "goals": 7},
		dataset.Record{"player": "C", "team": "Z", "goals": "n/a"},
		dataset.Record{"player": "D", "team": "Z"},
	)

	r := e.Compare([]string{"A", "B"}, "goals")
	assert.Equal(t, "B (7) > A (3)", r.String())

	t.Run("non-numeric ranks last, unknown dropped", func(t *testing.T) {
		r := e.Compare([]string{"C", "A", "D", "Nobody", "B"}, "goals")
		assert.Equal(t, "B (7) > A (3) > C (n/a)", r.String())
	})

	t.Run("nothing known", func(t *testing.T) {
		assert.Empty(t, e.Compare([]string{"D", "Nobody"}, "goals"))
	})
}

func TestCompareStableOnEqualValues(t *testing.T) {
	e := newEngine(
		dataset.Record{"player": "A", "team": "X", "goals": 4},
		dataset.Record{"player": "B", "team": "Y", "goals": 4},
	)
	assert.Equal(t, "B (4) > A (4)", e.Compare([]string{"B", "A"}, "goals").String())
}
