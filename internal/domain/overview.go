package domain

// Overview aggregates leaderboard-wide statistics.
// AverageLevel is round(average experience / 1000) - kept as the original
// panel computed it, which is not the level-band formula.
type Overview struct {
	TotalPlayers    int     `json:"total_players"`
	TotalKills      int     `json:"total_kills"`
	TotalDeaths     int     `json:"total_deaths"`
	TotalGames      int     `json:"total_games"`
	TotalWins       int     `json:"total_wins"`
	TotalBedsBroken int     `json:"total_beds_broken"`
	AverageLevel    int     `json:"average_level"`
	TopPlayer       *Player `json:"top_player,omitempty"`
}

// ChartSeries is one labeled data series for the stats charts endpoint
type ChartSeries struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// ChartData feeds the public statistics charts
type ChartData struct {
	PlayerLevels   map[string]int `json:"player_levels"`
	TopPlayersExp  ChartSeries    `json:"top_players_exp"`
	TopPlayersKill ChartSeries    `json:"top_players_kills"`
}
