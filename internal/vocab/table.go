package vocab

// defaultEntries is grouped by stat family. Table order defines the order
// in which multiple stats are answered within one reply.
var defaultEntries = []Entry{
	// --------------------------------------------------------------------------
	// Identity
	// --------------------------------------------------------------------------
	{"team", "team"}, {"club", "team"},
	{"player", "player"}, {"name", "player"},
	{"position", "position"}, {"role", "position"},
	{"age", "age"}, {"born", "born"}, {"dob", "born"},
	{"nation", "nation"}, {"nationality", "nation"},
	{"country", "nation"}, {"plays for", "nation"}, {"represents", "nation"},
	{"represents country", "nation"}, {"national team", "nation"},
	{"which country", "nation"}, {"his nation", "nation"},

	// --------------------------------------------------------------------------
	// Appearances & minutes
	// --------------------------------------------------------------------------
	{"appearance", "matches_played"}, {"appearances", "matches_played"}, {"games", "matches_played"},
	{"matches", "matches_played"}, {"apps", "matches_played"},
	{"starts", "starts"},
	{"minutes", "minutes_played"}, {"minutes played", "minutes_played"},
	{"full matches", "full_matches_played"},

	// --------------------------------------------------------------------------
	// Goals & assists
	// --------------------------------------------------------------------------
	{"goal", "goals"}, {"goals", "goals"}, {"scored", "goals"}, {"scores", "goals"},
	{"non penalty goals", "non_penalty_goals"},
	{"goals per 90", "goals_per_90"}, {"g/90", "goals_per_90"},
	{"assist", "assists"}, {"assists", "assists"},
	{"assists per 90", "assists_per_90"}, {"a/90", "assists_per_90"},
	{"g+a", "goal_involvements"}, {"goal contributions", "goal_involvements"},
	{"non penalty g+a", "non_penalty_goal_involvements"},

	// --------------------------------------------------------------------------
	// Expected goals & assists
	// --------------------------------------------------------------------------
	{"expected goal", "expected_goals"}, {"expected goals", "expected_goals"}, {"xg", "expected_goals"},
	{"npxg", "non_penalty_expected_goals"},
	{"npxg/shot", "non_penalty_expected_goals_per_shot"},
	{"expected assist", "expected_assists"}, {"expected assists", "expected_assists"}, {"xa", "expected_assists"},
	{"xag", "expected_assists"},
	{"xg+xag", "expected_goal_involvements"},
	{"npxg+xag", "non_penalty_expected_goal_involvements"},
	{"goals minus xg", "goals_minus_expected"},
	{"non penalty goals minus xg", "non_penalty_goals_minus_expected"},

	// --------------------------------------------------------------------------
	// Shooting
	// --------------------------------------------------------------------------
	{"shot", "shots"}, {"shots", "shots"},
	{"shots per 90", "shots_per_90"},
	{"on target", "shots_on_target"}, {"shots on target", "shots_on_target"},
	{"shots on target per 90", "shots_on_target_per_90"},
	{"shot accuracy", "shots_on_target_pct"}, {"accuracy", "shots_on_target_pct"},
	{"goals per shot", "goals_per_shot"},
	{"goals per shot on target", "goals_per_shot_on_target"},
	{"distance", "average_shot_distance"}, {"avg shot distance", "average_shot_distance"},
	{"free kick", "free_kicks"}, {"free kicks", "free_kicks"},
	{"penalty", "penalties_scored"}, {"penalties", "penalties_scored"}, {"pens", "penalties_scored"},
	{"penalty attempts", "penalty_attempts"},

	// --------------------------------------------------------------------------
	// Passing & carrying
	// --------------------------------------------------------------------------
	{"progressive carries", "progressive_carries"}, {"prog carries", "progressive_carries"},
	{"progressive passes", "progressive_passes"}, {"prog passes", "progressive_passes"},
	{"progressive runs", "progressive_receives"}, {"prog runs", "progressive_receives"},
	{"cross", "crosses"}, {"crosses", "crosses"},

	// --------------------------------------------------------------------------
	// Defending
	// --------------------------------------------------------------------------
	{"tackle", "tackles_won"}, {"tackles", "tackles_won"},
	{"interception", "interceptions"}, {"interceptions", "interceptions"},
	{"recovery", "recoveries"}, {"recoveries", "recoveries"},
	{"duels won", "duels_won"}, {"duels lost", "duels_lost"},
	{"duel win%", "duel_win_pct"}, {"win%", "duel_win_pct"},

	// --------------------------------------------------------------------------
	// Discipline
	// --------------------------------------------------------------------------
	{"foul", "fouls_committed"}, {"fouls", "fouls_committed"},
	{"fouled", "fouled"},
	{"offside", "offsides"}, {"offsides", "offsides"},
	{"yellow card", "yellow_cards"}, {"yellow cards", "yellow_cards"},
	{"second yellow", "second_yellow_cards"}, {"second yellow cards", "second_yellow_cards"},
	{"red card", "red_cards"}, {"red cards", "red_cards"},
	{"own goal", "own_goals"}, {"own goals", "own_goals"},

	// --------------------------------------------------------------------------
	// Penalties won / conceded / saved
	// --------------------------------------------------------------------------
	{"penalty won", "penalties_won"}, {"penalties won", "penalties_won"},
	{"penalty conceded", "penalties_conceded"}, {"penalties conceded", "penalties_conceded"},
	{"penalties against", "penalties_against"},
	{"penalties faced", "penalties_faced"},
	{"penalties saved", "penalties_saved"},
	{"penalties missed", "penalties_missed"},

	// --------------------------------------------------------------------------
	// Goalkeeping
	// --------------------------------------------------------------------------
	{"saves", "saves"},
	{"shots on target against", "shots_on_target_against"},
	{"goals against", "goals_against"}, {"conceded", "goals_against"},
	{"goals against per 90", "goals_against_per_90"}, {"ga/90", "goals_against_per_90"},
	{"save%", "keepers_Save%"}, {"keepers save%", "keepers_Save%"},
	{"clean sheet", "clean_sheets"}, {"clean sheets", "clean_sheets"},
	{"clean sheet%", "clean_sheet_pct"},

	// --------------------------------------------------------------------------
	// Results
	// --------------------------------------------------------------------------
	{"wins", "wins"}, {"win", "wins"},
	{"draws", "draws"}, {"draw", "draws"},
	{"losses", "losses"}, {"loss", "losses"},
}
