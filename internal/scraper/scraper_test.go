package scraper

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-chat/internal/config"
	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/vocab"
)

func TestRun(t *testing.T) {
	srv := fixtureServer(t, map[string]string{"/shooting": "testdata/shooting.html"})
	s := New(NewClient(srv.URL, "test-agent", 0, nil), []config.Category{
		{Name: "shooting", Path: "/shooting"},
		{Name: "misc", Path: "/misc"},
	}, nil)

	records, result := s.Run(context.Background())

	assert.Equal(t, 1, result.CategoriesScraped)
	assert.Equal(t, 2, result.RowsParsed)
	assert.Equal(t, 2, result.PlayersWritten)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "scrape misc")
	assert.Equal(t, "categories=1 rows=2 players=2 errors=1", result.Summary())

	require.Len(t, records, 2)
	saka := records[0]
	assert.Equal(t, "Bukayo Saka", saka["player"])
	assert.Equal(t, "Arsenal", saka["team"])
	assert.Equal(t, "England", saka["nation"])
	assert.Equal(t, 12, saka["goals"])
	assert.Equal(t, 45.5, saka["shots_on_target_pct"])
	assert.Equal(t, 28.4, saka["full_matches_played"])
	assert.Equal(t, 0, saka["assists"])
	assert.NotContains(t, saka, "shooting_Rk")
	assert.NotContains(t, saka, "shooting_Player_URL")

	diaz := records[1]
	assert.Equal(t, "Luis Diaz", diaz["player"])
	assert.Equal(t, "Colombia", diaz["nation"])
	assert.Nil(t, diaz["goals"])
}

func TestRunStopsWhenCancelled(t *testing.T) {
	srv := fixtureServer(t, map[string]string{"/shooting": "testdata/shooting.html"})
	s := New(NewClient(srv.URL, "test-agent", 0, nil), config.ScrapeCategories, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, result := s.Run(ctx)
	assert.Empty(t, records)
	assert.Zero(t, result.CategoriesScraped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "cancelled")
}

func TestBuildThenLoadRoundTrip(t *testing.T) {
	records, errs := Build([]CategoryRows{
		{Name: "shooting", Rows: []Row{{Team: "Arsenal", Player: "Bukayo Saka", Stats: map[string]any{
			"Rk": 1, "Nation": "engENG", "Gls": 12, "90s": 28.4, "xG": 10.4,
		}}}},
		{Name: "standard_stats", Rows: []Row{{Team: "Arsenal", Player: "Bukayo Saka", Stats: map[string]any{
			"Rk": 5, "MP": 30, "Ast": 0.32, "xG": 10.4,
		}}}},
	})
	require.Empty(t, errs)

	path := filepath.Join(t.TempDir(), "out", "player_stats.json")
	require.NoError(t, WriteFile(path, records))

	store, err := dataset.LoadFile(path)
	require.NoError(t, err)
	rec, ok := store.Get("Bukayo Saka")
	require.True(t, ok)

	assert.Equal(t, "Arsenal", rec.Team())
	assert.Equal(t, "12", rec.Display("goals"))
	assert.Equal(t, "9", rec.Display("assists"))
	assert.Equal(t, "10.4", rec.Display("expected_goals"))
	assert.Equal(t, "30", rec.Display("matches_played"))
	assert.Equal(t, "England", rec.Display("nation"))
	assert.Equal(t, dataset.Unknown, rec.Display("standard_stats_xG"))
}

func TestWriteFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, WriteFile(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestEveryScrapedFieldIsAskable(t *testing.T) {
	assert.Empty(t, UnreachableFields(vocab.Default()))

	narrow := vocab.MustNew([]vocab.Entry{{Phrase: "goals", Stat: "goals"}})
	missing := UnreachableFields(narrow)
	assert.Contains(t, missing, "assists")
	assert.NotContains(t, missing, "goals")
}
