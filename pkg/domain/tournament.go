package domain

// Tournament levels as slugs accepted by the backend.
const (
	LevelGrandSlam   = "grand-slam"
	LevelMasters1000 = "masters-1000"
	LevelATPFinals   = "atp-finals"
	LevelATP500      = "atp-500"
	LevelATP250      = "atp-250"
)

// Levels is the cycle order used by views that browse tournaments.
var Levels = []string{LevelGrandSlam, LevelMasters1000, LevelATPFinals, LevelATP500, LevelATP250}

// TournamentPage lists tournament names for one level.
type TournamentPage struct {
	Tournaments      []string `json:"tournaments"`
	TotalTournaments int      `json:"total_tournaments"`
	Page             int      `json:"page"`
	Pages            int      `json:"pages"`
}

// Edition is one winner of a tournament.
type Edition struct {
	TourneyName   string `json:"tourney_name"`
	TourneyLevel  string `json:"tourney_level"`
	Year          string `json:"year"`
	WinnerID      string `json:"winner_id"`
	WinnerName    string `json:"winner_fullname"`
	WinnerCountry string `json:"winner_country"`
}

// EditionPage is one page of a tournament's winners.
type EditionPage struct {
	Winners      []Edition `json:"winners"`
	TotalWinners int       `json:"total_winners"`
	Page         int       `json:"page"`
	Pages        int       `json:"pages"`
}

// TitleHolder is a player ranked by titles won at one level.
type TitleHolder struct {
	PlayerID  string `json:"player_id"`
	NameFirst string `json:"name_first"`
	NameLast  string `json:"name_last"`
	Country   string `json:"country"`
	Fullname  string `json:"fullname"`
	Titles    int    `json:"titles"`
}

// TitleHolderPage is one page of title holders.
type TitleHolderPage struct {
	Winners      []TitleHolder `json:"winners"`
	TotalWinners int           `json:"total_winners"`
	Page         int           `json:"page"`
	Pages        int           `json:"pages"`
}
