package domain

// Sentinel is the backend's marker for a missing value.
const Sentinel = "-"

// Player is a player record in the backend's storage representation.
// Every field travels as a string; missing values are Sentinel.
type Player struct {
	PlayerID   string `json:"player_id"`
	NameFirst  string `json:"name_first"`
	NameLast   string `json:"name_last"`
	Fullname   string `json:"fullname"`
	Hand       string `json:"hand"`
	BirthDate  string `json:"birth_date"` // dd-mm-yyyy
	Country    string `json:"country"`
	Height     string `json:"height"`
	Weight     string `json:"weight"`
	ProSince   string `json:"pro_since"`
	WikidataID string `json:"wikidata_id"`
	Instagram  string `json:"instagram"`
	Facebook   string `json:"facebook"`
	XTwitter   string `json:"x_twitter"`
}

// PlayerForm is the same record in the editing form's representation.
// Dates are yyyy-mm-dd and missing numbers are 0.
type PlayerForm struct {
	PlayerID   string `json:"player_id"`
	NameFirst  string `json:"name_first"`
	NameLast   string `json:"name_last"`
	Fullname   string `json:"fullname"`
	Hand       string `json:"hand"`
	BirthDate  string `json:"birth_date"`
	Country    string `json:"country"`
	Height     int    `json:"height"`
	Weight     int    `json:"weight"`
	ProSince   int    `json:"pro_since"`
	WikidataID string `json:"wikidata_id"`
	Instagram  string `json:"instagram"`
	Facebook   string `json:"facebook"`
	XTwitter   string `json:"x_twitter"`
}

// PlayerName is the short entry returned by name searches.
type PlayerName struct {
	PlayerID string `json:"player_id"`
	Fullname string `json:"fullname"`
}

// YearRank is a player's end-of-season rank.
type YearRank struct {
	Year int  `json:"year"`
	Rank Stat `json:"rank"`
}

// Title is a tournament won by a player.
type Title struct {
	TourneyName  string `json:"tourney_name"`
	Year         string `json:"year"`
	Surface      string `json:"surface"`
	TourneyLevel string `json:"tourney_level"`
}

// PlayerDetail is a player with career statistics, as served by GET /players/{id}.
type PlayerDetail struct {
	Player
	RanksByYear       []YearRank `json:"ranks_by_year,omitempty"`
	Titles            []Title    `json:"titles,omitempty"`
	BestRanking       Stat       `json:"best_ranking"`
	TotalTitles       Stat       `json:"total_titles"`
	GrandSlams        Stat       `json:"grand_slams"`
	Masters1000       Stat       `json:"masters1000"`
	WonLost           Stat       `json:"w_l"`
	Aces              Stat       `json:"aces"`
	DoubleFaults      Stat       `json:"double_faults"`
	PointsOnFirst     Stat       `json:"points_on_first"`
	PointsOnSecond    Stat       `json:"points_on_second"`
	GamesOnServe      Stat       `json:"games_on_serve"`
	FirstIn           Stat       `json:"first_in"`
	BreakPointsFaced  Stat       `json:"bp_faced"`
	BreakPointsSavedP Stat       `json:"bp_saved_percentage"`
}

// PlayerPage is one page of the player listing.
type PlayerPage struct {
	Players      []Player `json:"players"`
	TotalPlayers int      `json:"total_players"`
	Page         int      `json:"page"`
	Pages        int      `json:"pages"`
}
