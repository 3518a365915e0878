package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-chat/internal/dataset"
)

func TestFlatten(t *testing.T) {
	records := Flatten([]CategoryRows{
		{Name: "shooting", Rows: []Row{
			{Team: "Arsenal", Player: "Bukayo Saka", Stats: map[string]any{"Player": "Bukayo Saka", "Squad": "Arsenal", "Gls": 12}},
			{Team: "Liverpool", Player: "Luis Díaz", Stats: map[string]any{"Gls": 8}},
		}},
		{Name: "misc", Rows: []Row{
			{Team: "Arsenal", Player: "Bukayo Saka", Stats: map[string]any{"Fls": 20}},
			{Team: "Chelsea", Player: "Cole Palmer", Stats: map[string]any{"Fls": 11}},
		}},
	})

	require.Len(t, records, 3)
	assert.Equal(t, dataset.Record{
		"Team": "Arsenal", "Player": "Bukayo Saka", "shooting_Gls": 12, "misc_Fls": 20,
	}, records[0])
	assert.Equal(t, "Luis Díaz", records[1]["Player"])
	assert.Equal(t, "Cole Palmer", records[2]["Player"])
}

func TestFlattenKeepsSameNameAtDifferentTeams(t *testing.T) {
	records := Flatten([]CategoryRows{{Name: "shooting", Rows: []Row{
		{Team: "Arsenal", Player: "Danny Ward", Stats: map[string]any{}},
		{Team: "Leicester City", Player: "Danny Ward", Stats: map[string]any{}},
	}}})
	assert.Len(t, records, 2)
}

func TestPrune(t *testing.T) {
	records := []dataset.Record{{"shooting_Rk": 1, "misc_Age": "24-100", "shooting_Gls": 12}}
	Prune(records)
	assert.Equal(t, dataset.Record{"shooting_Gls": 12}, records[0])
}

func TestDeriveAssists(t *testing.T) {
	records := []dataset.Record{
		{"Player": "A", "standard_stats_Ast": 0.35, "shooting_90s": 20.0},
		{"Player": "B", "standard_stats_Ast": 0.5, "shooting_90s": 5},
		{"Player": "C", "standard_stats_Ast": 0.5, "shooting_90s": 7},
		{"Player": "D"},
		{"Player": "E", "standard_stats_Ast": "n/a", "shooting_90s": 3.0},
	}

	errs := DeriveAssists(records)
	assert.Equal(t, 7, records[0]["Assists"])
	assert.Equal(t, 2, records[1]["Assists"], "half rounds to even")
	assert.Equal(t, 4, records[2]["Assists"], "half rounds to even")
	assert.Equal(t, 0, records[3]["Assists"])
	assert.Equal(t, 0, records[4]["Assists"])
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "E")
}

func TestApplyRenames(t *testing.T) {
	records := []dataset.Record{{
		"Player": "Bukayo Saka", "Team": "Arsenal", "shooting_Gls": 12, "Assists": 9,
		"keepers_Save%": 71.2, "shooting_xG": 10.4,
	}}
	ApplyRenames(records)
	assert.Equal(t, dataset.Record{
		"player": "Bukayo Saka", "team": "Arsenal", "goals": 12, "assists": 9,
		"keepers_Save%": 71.2, "expected_goals": 10.4,
	}, records[0])
}

func TestCanonicalFieldsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range CanonicalFields() {
		assert.False(t, seen[f], "duplicate canonical field %q", f)
		seen[f] = true
	}
	assert.Len(t, seen, len(Renames))
}

func TestNationName(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"engENG": "England",
		"wlsWAL": "Wales",
		"sctSCO": "Scotland",
		"nirNIR": "Northern Ireland",
		"frFRA":  "France",
		"noNOR":  "Norway",
		"ciCIV":  "Côte d'Ivoire",
		"xxXXX":  "xxXXX",
	}
	for raw, want := range tests {
		assert.Equal(t, want, NationName(raw), raw)
	}
}

func TestNormalizeNations(t *testing.T) {
	records := []dataset.Record{
		{"nation": "brBRA"},
		{"nation": ""},
		{},
	}
	NormalizeNations(records)
	assert.Equal(t, "Brazil", records[0]["nation"])
	assert.Nil(t, records[1]["nation"])
	assert.Contains(t, records[2], "nation")
	assert.Nil(t, records[2]["nation"])
}

func TestRemoveAccents(t *testing.T) {
	tests := map[string]string{
		"Luis Díaz":       "Luis Diaz",
		"Gonçalo Ramos":   "Goncalo Ramos",
		"Martin Ødegaard": "Martin Ødegaard",
		"Son Heung-min":   "Son Heung-min",
		"":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, RemoveAccents(in), in)
	}
}

func TestStripPlayerAccents(t *testing.T) {
	records := []dataset.Record{{"player": "Luis Díaz", "team": "Liverpool"}, {"team": "X"}}
	StripPlayerAccents(records)
	assert.Equal(t, "Luis Diaz", records[0]["player"])
	assert.NotContains(t, records[1], "player")
}
