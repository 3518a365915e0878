package scraper

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/albapepper/scoracle-chat/internal/dataset"
)

// CategoryRows is one fetched table's rows under its field prefix.
type CategoryRows struct {
	Name string
	Rows []Row
}

// --------------------------------------------------------------------------
// Flatten
// --------------------------------------------------------------------------

// Flatten merges category rows into one record per team/player pair. Each
// record starts with "Team" and "Player"; category stats are stored as
// "<category>_<header>". Records keep first-seen order.
func Flatten(categories []CategoryRows) []dataset.Record {
	var out []dataset.Record
	index := make(map[string]dataset.Record)
	for _, cat := range categories {
		for _, row := range cat.Rows {
			key := row.Team + "_" + row.Player
			rec, ok := index[key]
			if !ok {
				rec = dataset.Record{"Team": row.Team, "Player": row.Player}
				index[key] = rec
				out = append(out, rec)
			}
			for k, v := range row.Stats {
				if k == "Player" || k == "Squad" {
					continue
				}
				rec[cat.Name+"_"+k] = v
			}
		}
	}
	return out
}

// --------------------------------------------------------------------------
// Prune
// --------------------------------------------------------------------------

// PrunedColumns duplicate data already kept from another category, or are
// page furniture (ranks, links, match-report columns).
var PrunedColumns = []string{
	"shooting_Player_URL", "shooting_Squad_URL", "shooting_Matches", "shooting_Rk",
	"misc_Rk", "misc_Player_URL", "misc_Nation", "misc_Pos", "misc_Squad_URL", "misc_Age",
	"misc_Born", "misc_90s", "misc_Matches",
	"standard_stats_Rk", "standard_stats_Player_URL", "standard_stats_Nation", "standard_stats_Pos",
	"standard_stats_Squad_URL", "standard_stats_Age", "standard_stats_Born", "standard_stats_Matches",
	"keepers_Rk", "keepers_Player_URL", "keepers_Nation", "keepers_Pos", "keepers_Squad_URL",
	"keepers_Age", "keepers_Born", "keepers_MP", "keepers_Starts", "keepers_Min", "keepers_90s",
	"keepers_Matches", "standard_stats_90s", "standard_stats_PK", "standard_stats_PKatt",
	"standard_stats_CrdY", "standard_stats_CrdR", "standard_stats_xG", "standard_stats_npxG",
}

// Prune removes PrunedColumns from every record.
func Prune(records []dataset.Record) {
	for _, rec := range records {
		for _, col := range PrunedColumns {
			delete(rec, col)
		}
	}
}

// --------------------------------------------------------------------------
// Derived fields
// --------------------------------------------------------------------------

// DeriveAssists sets "Assists" to the per-90 assist rate times the number of
// 90-minute matches, rounded half to even. Missing inputs count as zero;
// non-numeric inputs yield zero and an error entry.
func DeriveAssists(records []dataset.Record) []string {
	var errs []string
	for _, rec := range records {
		per90, okRate := numberOrZero(rec["standard_stats_Ast"])
		nineties, okN := numberOrZero(rec["shooting_90s"])
		if !okRate || !okN {
			rec["Assists"] = 0
			errs = append(errs, fmt.Sprintf("compute Assists for %v: non-numeric input", rec["Player"]))
			continue
		}
		rec["Assists"] = int(math.RoundToEven(per90 * nineties))
	}
	return errs
}

func numberOrZero(v any) (float64, bool) {
	if v == nil {
		return 0, true
	}
	return dataset.Number(v)
}

// --------------------------------------------------------------------------
// Rename
// --------------------------------------------------------------------------

// Rename maps a flattened source field to its canonical stat identifier.
type Rename struct {
	From string
	To   string
}

// Renames is the source → canonical field table.
var Renames = []Rename{
	{"Player", "player"},
	{"Team", "team"},
	{"shooting_Pos", "position"},
	{"shooting_Age", "age"},
	{"shooting_Born", "born"},
	{"shooting_Nation", "nation"},
	{"standard_stats_MP", "matches_played"},
	{"standard_stats_Starts", "starts"},
	{"standard_stats_Min", "minutes_played"},
	{"shooting_90s", "full_matches_played"},
	{"shooting_Gls", "goals"},
	{"standard_stats_Gls", "goals_per_90"},
	{"standard_stats_G-PK", "non_penalty_goals"},
	{"Assists", "assists"},
	{"standard_stats_Ast", "assists_per_90"},
	{"standard_stats_G+A", "goal_involvements"},
	{"standard_stats_G+A-PK", "non_penalty_goal_involvements"},
	{"shooting_G-xG", "goals_minus_expected"},
	{"shooting_np:G-xG", "non_penalty_goals_minus_expected"},
	{"standard_stats_xAG", "expected_assists"},
	{"standard_stats_xG+xAG", "expected_goal_involvements"},
	{"standard_stats_npxG+xAG", "non_penalty_expected_goal_involvements"},
	{"shooting_Sh", "shots"},
	{"shooting_Sh/90", "shots_per_90"},
	{"shooting_SoT", "shots_on_target"},
	{"shooting_SoT/90", "shots_on_target_per_90"},
	{"shooting_SoT%", "shots_on_target_pct"},
	{"shooting_G/Sh", "goals_per_shot"},
	{"shooting_G/SoT", "goals_per_shot_on_target"},
	{"shooting_Dist", "average_shot_distance"},
	{"shooting_FK", "free_kicks"},
	{"shooting_PK", "penalties_scored"},
	{"shooting_PKatt", "penalty_attempts"},
	{"shooting_xG", "expected_goals"},
	{"shooting_npxG", "non_penalty_expected_goals"},
	{"shooting_npxG/Sh", "non_penalty_expected_goals_per_shot"},
	{"misc_TklW", "tackles_won"},
	{"misc_Int", "interceptions"},
	{"misc_Recov", "recoveries"},
	{"misc_Won", "duels_won"},
	{"misc_Lost", "duels_lost"},
	{"misc_Won%", "duel_win_pct"},
	{"misc_Fls", "fouls_committed"},
	{"misc_Fld", "fouled"},
	{"misc_Off", "offsides"},
	{"misc_Crs", "crosses"},
	{"misc_CrdY", "yellow_cards"},
	{"misc_2CrdY", "second_yellow_cards"},
	{"misc_CrdR", "red_cards"},
	{"misc_OG", "own_goals"},
	{"misc_PKwon", "penalties_won"},
	{"misc_PKcon", "penalties_conceded"},
	{"standard_stats_PrgC", "progressive_carries"},
	{"standard_stats_PrgP", "progressive_passes"},
	{"standard_stats_PrgR", "progressive_receives"},
	{"keepers_Saves", "saves"},
	{"keepers_SoTA", "shots_on_target_against"},
	{"keepers_GA", "goals_against"},
	{"keepers_GA90", "goals_against_per_90"},
	{"keepers_CS", "clean_sheets"},
	{"keepers_CS%", "clean_sheet_pct"},
	{"keepers_PKA", "penalties_against"},
	{"keepers_PKatt", "penalties_faced"},
	{"keepers_PKsv", "penalties_saved"},
	{"keepers_PKm", "penalties_missed"},
	{"keepers_W", "wins"},
	{"keepers_D", "draws"},
	{"keepers_L", "losses"},
}

// ApplyRenames moves each present source field to its canonical name.
func ApplyRenames(records []dataset.Record) {
	for _, rec := range records {
		for _, rn := range Renames {
			if v, ok := rec[rn.From]; ok {
				delete(rec, rn.From)
				rec[rn.To] = v
			}
		}
	}
}

// CanonicalFields lists the canonical identifiers produced by Renames.
func CanonicalFields() []string {
	out := make([]string, len(Renames))
	for i, rn := range Renames {
		out[i] = rn.To
	}
	return out
}

// --------------------------------------------------------------------------
// Nation and name normalization
// --------------------------------------------------------------------------

// homeNations are flag+code strings for the UK nations, whose two-letter
// prefixes are ambiguous.
var homeNations = map[string]string{
	"engENG": "England",
	"wlsWAL": "Wales",
	"sctSCO": "Scotland",
	"nirNIR": "Northern Ireland",
}

// nationNames maps a lowercase two-letter flag code to a country name.
var nationNames = map[string]string{
	"en": "England", "nl": "Netherlands", "fr": "France", "br": "Brazil", "es": "Spain",
	"pt": "Portugal", "de": "Germany", "dk": "Denmark", "ar": "Argentina", "wls": "Wales",
	"it": "Italy", "be": "Belgium", "sct": "Scotland", "se": "Sweden", "ie": "Republic of Ireland",
	"no": "Norway", "ci": "Côte d'Ivoire", "sn": "Senegal", "ng": "Nigeria", "ch": "Switzerland",
	"us": "United States", "nir": "Northern Ireland", "cm": "Cameroon", "jp": "Japan", "co": "Colombia",
	"ma": "Morocco", "rs": "Serbia", "cd": "Congo DR", "uy": "Uruguay", "cz": "Czech Republic",
	"mx": "Mexico", "gh": "Ghana", "hu": "Hungary", "eg": "Egypt", "ua": "Ukraine", "py": "Paraguay",
	"tr": "Türkiye", "pl": "Poland", "kr": "Korea Republic", "si": "Slovenia", "at": "Austria",
	"hr": "Croatia", "ec": "Ecuador", "mz": "Mozambique", "sk": "Slovakia", "zw": "Zimbabwe",
	"za": "South Africa", "gm": "Gambia", "nz": "New Zealand", "tn": "Tunisia", "dz": "Algeria",
	"bg": "Bulgaria", "gw": "Guinea-Bissau", "bf": "Burkina Faso", "ht": "Haiti", "pe": "Peru",
	"uz": "Uzbekistan", "gr": "Greece", "ge": "Georgia", "is": "Iceland", "il": "Israel",
	"jm": "Jamaica", "tt": "Trinidad and Tobago",
}

// NationName converts FBref's "frFRA" style nation cell to a country name.
// Unrecognized codes are returned unchanged; empty input returns "".
func NationName(raw string) string {
	if raw == "" {
		return ""
	}
	if name, ok := homeNations[raw]; ok {
		return name
	}
	code := raw
	if len(code) > 2 {
		code = code[:2]
	}
	if name, ok := nationNames[strings.ToLower(code)]; ok {
		return name
	}
	return raw
}

// NormalizeNations rewrites every record's "nation" field; records without
// one get null.
func NormalizeNations(records []dataset.Record) {
	for _, rec := range records {
		raw := ""
		if v, ok := rec["nation"]; ok && v != nil {
			raw = dataset.Display(v)
		}
		if name := NationName(raw); name != "" {
			rec["nation"] = name
		} else {
			rec["nation"] = nil
		}
	}
}

// RemoveAccents strips combining marks after canonical decomposition
// ("Ødegaard" keeps its Ø, "Díaz" becomes "Diaz").
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// StripPlayerAccents applies RemoveAccents to each record's player name.
func StripPlayerAccents(records []dataset.Record) {
	for _, rec := range records {
		if name, ok := rec[dataset.FieldPlayer].(string); ok {
			rec[dataset.FieldPlayer] = RemoveAccents(name)
		}
	}
}
