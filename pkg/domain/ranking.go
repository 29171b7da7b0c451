package domain

// Ranking is a player's position in an end-of-year ranking.
type Ranking struct {
	PlayerID    string `json:"player_id"`
	RankingDate string `json:"ranking_date"`
	Points      string `json:"points"`
	Rank        Stat   `json:"rank"`
	Fullname    string `json:"fullname"`
	NameFirst   string `json:"name_first"`
	NameLast    string `json:"name_last"`
	Country     string `json:"country"`
}

// RankingPage is one page of a year's rankings.
type RankingPage struct {
	Rankings      []Ranking `json:"rankings"`
	TotalRankings int       `json:"total_rankings"`
	Page          int       `json:"page"`
	Pages         int       `json:"pages"`
}
