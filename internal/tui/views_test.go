package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/naveenspark/courtside/internal/logger"
	"github.com/naveenspark/courtside/internal/normalize"
	"github.com/naveenspark/courtside/pkg/client"
	"github.com/naveenspark/courtside/pkg/domain"
)

func TestPlayersLoadedAndOpen(t *testing.T) {
	m := newPlayersModel(nil, "")
	m, _ = m.Update(playersLoadedMsg{page: &domain.PlayerPage{
		Players: []domain.Player{
			{PlayerID: "104745", Fullname: "Rafael Nadal", Country: "ESP"},
			{PlayerID: "103819", Fullname: "Roger Federer", Country: "SUI"},
		},
		TotalPlayers: 2, Page: 1, Pages: 1,
	}})
	if len(m.players) != 2 {
		t.Fatalf("players = %d, want 2", len(m.players))
	}
	if !strings.Contains(m.View(), "Roger Federer") {
		t.Error("view missing player name")
	}

	m, _ = m.Update(key("j"))
	_, cmd := m.Update(key("enter"))
	if msg := navMsg(t, cmd); msg.path != "/player/103819" {
		t.Errorf("enter navigated to %q", msg.path)
	}
}

func TestPlayersSearchNavigatesWithLastName(t *testing.T) {
	m := newPlayersModel(nil, "")
	m, _ = m.Update(key("/"))
	if !m.searching {
		t.Fatal("expected search mode after /")
	}
	for _, k := range []string{"d", "e", "l", " ", "p", "o"} {
		m, _ = m.Update(key(k))
	}
	m, cmd := m.Update(key("enter"))
	if m.searching {
		t.Error("search mode should end on enter")
	}
	if msg := navMsg(t, cmd); msg.path != "/players/del%20po" {
		t.Errorf("search navigated to %q", msg.path)
	}
}

func TestPlayersEmptySearchClearsFilter(t *testing.T) {
	m := newPlayersModel(nil, "nadal")
	m, _ = m.Update(key("/"))
	for range len("nadal") {
		m, _ = m.Update(key("backspace"))
	}
	_, cmd := m.Update(key("enter"))
	if msg := navMsg(t, cmd); msg.path != "/players" {
		t.Errorf("empty search navigated to %q, want /players", msg.path)
	}
}

func TestPlayersPagingBounds(t *testing.T) {
	m := newPlayersModel(nil, "")
	m, _ = m.Update(playersLoadedMsg{page: &domain.PlayerPage{Page: 1, Pages: 2}})

	if _, cmd := m.Update(key("p")); cmd != nil {
		t.Error("previous page on page 1 should be a no-op")
	}
	m, cmd := m.Update(key("n"))
	if cmd == nil || m.page != 2 {
		t.Errorf("next page: page = %d, cmd nil = %v", m.page, cmd == nil)
	}
	if _, cmd := m.Update(key("n")); cmd != nil {
		t.Error("next page past the last page should be a no-op")
	}
}

func TestPlayersErrorView(t *testing.T) {
	m := newPlayersModel(nil, "")
	m, _ = m.Update(playersLoadedMsg{err: errors.New("backend: HTTP 500: boom")})
	if !strings.Contains(m.View(), "error: backend: HTTP 500: boom") {
		t.Errorf("error not rendered: %q", m.View())
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", LastRankingYear},
		{"1990", 1990},
		{"1973", 1973},
		{"1972", LastRankingYear},
		{"2099", LastRankingYear},
		{"abc", LastRankingYear},
	}
	for _, tt := range tests {
		if got := parseYear(tt.in); got != tt.want {
			t.Errorf("parseYear(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRankingsYearCycling(t *testing.T) {
	m := newRankingsModel(nil, "2023")
	if _, cmd := m.Update(key("]")); cmd != nil {
		t.Error("moving past the last season should be a no-op")
	}
	m, cmd := m.Update(key("["))
	if cmd == nil || m.year != 2022 {
		t.Errorf("year = %d, want 2022", m.year)
	}

	m = newRankingsModel(nil, "1973")
	if _, cmd := m.Update(key("[")); cmd != nil {
		t.Error("moving before the first season should be a no-op")
	}
}

func TestRankingsIgnoresStaleYear(t *testing.T) {
	m := newRankingsModel(nil, "2000")
	m, _ = m.Update(key("]"))
	m, _ = m.Update(rankingsLoadedMsg{year: 2000, page: &domain.RankingPage{
		Rankings: []domain.Ranking{{PlayerID: "1", Fullname: "Stale"}},
	}})
	if len(m.rankings) != 0 {
		t.Error("results for a previous year should be dropped")
	}
	m, _ = m.Update(rankingsLoadedMsg{year: 2001, page: &domain.RankingPage{
		Rankings: []domain.Ranking{{PlayerID: "103819", Fullname: "Lleyton Hewitt", Rank: "1", Points: "4365"}},
	}})
	if !strings.Contains(m.View(), "Lleyton Hewitt") {
		t.Error("view missing ranked player")
	}
	_, cmd := m.Update(key("enter"))
	if msg := navMsg(t, cmd); msg.path != "/player/103819" {
		t.Errorf("enter navigated to %q", msg.path)
	}
}

func TestTournamentsLevelCycleWraps(t *testing.T) {
	m := newTournamentsModel(nil, nil, domain.LevelATP250)
	m, cmd := m.Update(key("tab"))
	if cmd == nil || m.slug() != domain.LevelGrandSlam {
		t.Errorf("level = %q, want %q", m.slug(), domain.LevelGrandSlam)
	}
	if got := newTournamentsModel(nil, nil, "bogus").slug(); got != domain.LevelGrandSlam {
		t.Errorf("unknown level = %q, want grand slam", got)
	}
}

func TestTournamentsWinnersPanel(t *testing.T) {
	m := newTournamentsModel(nil, nil, "")
	m, _ = m.Update(tournamentsLoadedMsg{level: domain.LevelGrandSlam, page: &domain.TournamentPage{
		Tournaments: []string{"Australian Open", "Roland Garros"},
	}})
	m, _ = m.Update(key("j"))
	m, cmd := m.Update(key("enter"))
	if cmd == nil || m.selected != "Roland Garros" {
		t.Fatalf("selected = %q", m.selected)
	}

	m, _ = m.Update(winnersLoadedMsg{tournament: "Australian Open", page: &domain.EditionPage{
		Winners: []domain.Edition{{Year: "1999", WinnerName: "Stale"}},
	}})
	if m.winners != nil {
		t.Error("winners for another tournament should be dropped")
	}
	m, _ = m.Update(winnersLoadedMsg{tournament: "Roland Garros", page: &domain.EditionPage{
		Winners: []domain.Edition{{Year: "2022", WinnerID: "104745", WinnerName: "Rafael Nadal", WinnerCountry: "ESP"}},
	}})
	view := m.View()
	if !strings.Contains(view, "Rafael Nadal") || !strings.Contains(view, "no logo found") {
		t.Errorf("winners view = %q", view)
	}

	_, cmd = m.Update(key("enter"))
	if msg := navMsg(t, cmd); msg.path != "/player/104745" {
		t.Errorf("enter navigated to %q", msg.path)
	}
	m, _ = m.Update(key("esc"))
	if m.selected != "" {
		t.Error("esc should close the winners panel")
	}
}

func TestTournamentsLogoShown(t *testing.T) {
	m := newTournamentsModel(nil, nil, "")
	m.selected = "Wimbledon"
	m, _ = m.Update(logoLoadedMsg{tournament: "Wimbledon", image: &domain.Image{URL: "https://commons.wikimedia.org/wiki/Special:FilePath/Wimbledon.svg"}})
	if !strings.Contains(m.View(), "Wimbledon.svg") {
		t.Error("logo url not rendered")
	}
}

func TestPlayerDetailAndPhoto(t *testing.T) {
	m := newPlayerModel(nil, nil, "104745")
	m, _ = m.Update(playerLoadedMsg{player: &domain.PlayerDetail{
		Player:      domain.Player{PlayerID: "104745", Fullname: "Rafael Nadal", Hand: "L", Country: "ESP"},
		BestRanking: "1",
		GrandSlams:  "22",
		Titles:      []domain.Title{{TourneyName: "Roland Garros", Year: "2022", Surface: "Clay", TourneyLevel: "G"}},
	}})
	view := m.View()
	for _, want := range []string{"Rafael Nadal", "left-handed", "22", "Roland Garros", "-"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = m.Update(photoLoadedMsg{id: "other", image: &domain.Image{URL: "https://x/other.jpg"}})
	if m.photo != nil {
		t.Error("photo for another player should be dropped")
	}
	m, _ = m.Update(photoLoadedMsg{id: "104745", image: &domain.Image{
		URL:         "https://commons.wikimedia.org/wiki/Special:FilePath/Rafael%20Nadal.jpg",
		Attribution: &domain.Attribution{Author: "Carine06", License: "CC BY-SA 2.0"},
	}})
	view = m.View()
	if !strings.Contains(view, "Rafael%20Nadal.jpg") || !strings.Contains(view, "CC BY-SA 2.0") {
		t.Errorf("photo not rendered: %q", view)
	}
}

func TestPlayerCopyPhotoURL(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	defer func() { copyToClipboard = orig }()

	m := newPlayerModel(nil, nil, "1")
	m.photo = &domain.Image{URL: "https://x/p.jpg"}
	_, cmd := m.Update(key("c"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	if msg, ok := cmd().(flashMsg); !ok || msg.err {
		t.Errorf("copy msg = %#v", msg)
	}
	if copied != "https://x/p.jpg" {
		t.Errorf("copied %q", copied)
	}
}

func TestPlayerNoPhoto(t *testing.T) {
	m := newPlayerModel(nil, nil, "1")
	m, _ = m.Update(playerLoadedMsg{player: &domain.PlayerDetail{Player: domain.Player{Fullname: "Nobody"}}})
	if !strings.Contains(m.View(), "no photo found") {
		t.Error("expected no photo message without a resolver")
	}
	if _, cmd := m.Update(key("o")); cmd != nil {
		t.Error("o without a photo should be a no-op")
	}
}

func typeInto(m formModel, text string) formModel {
	for _, r := range text {
		m, _ = m.Update(key(string(r)))
	}
	return m
}

func TestFormCreateNormalizesRecord(t *testing.T) {
	b := newFakeBackend("")
	m := newFormModel(b, normalize.New(logger.Discard()), "")

	m = typeInto(m, "104745")
	m, _ = m.Update(key("tab"))
	m = typeInto(m, "Rafael")
	m, _ = m.Update(key("tab"))
	m = typeInto(m, "Nadal")
	m, _ = m.Update(key("tab")) // full name
	m, _ = m.Update(key("tab")) // hand
	m, _ = m.Update(key("l"))
	m, _ = m.Update(key("l"))
	m, _ = m.Update(key("tab")) // birth date
	m = typeInto(m, "1986-06-03")
	m, _ = m.Update(key("tab"))
	m = typeInto(m, "esp")
	m, _ = m.Update(key("tab"))
	m = typeInto(m, "185")

	m, cmd := m.Update(key("ctrl+s"))
	if cmd == nil {
		t.Fatalf("submit rejected: %q", m.statusMsg)
	}
	m, _ = m.Update(cmd())

	if len(b.created) != 1 {
		t.Fatalf("created = %d, want 1", len(b.created))
	}
	got := b.created[0]
	want := domain.Player{
		PlayerID: "104745", NameFirst: "Rafael", NameLast: "Nadal", Fullname: "Rafael Nadal",
		Hand: "L", BirthDate: "03-06-1986", Country: "ESP", Height: "185",
		Weight: "-", ProSince: "-", WikidataID: "-", Instagram: "-", Facebook: "-", XTwitter: "-",
	}
	if got != want {
		t.Errorf("created = %+v\nwant      %+v", got, want)
	}
	if m.statusMsg != "Player created" || !m.statusOK {
		t.Errorf("status = %q", m.statusMsg)
	}
	if m.fields[fieldFirst] != "" {
		t.Error("add form should reset after saving")
	}
}

func TestFormValidation(t *testing.T) {
	tests := []struct {
		name   string
		fields map[formField]string
		want   string
	}{
		{"names required", map[formField]string{fieldID: "1"}, "first and last name are required"},
		{"id required", map[formField]string{fieldFirst: "A", fieldLast: "B"}, "player id is required"},
		{"bad date", map[formField]string{fieldID: "1", fieldFirst: "A", fieldLast: "B", fieldBirth: "03-06-1986"}, "birth date must be yyyy-mm-dd"},
		{"bad number", map[formField]string{fieldID: "1", fieldFirst: "A", fieldLast: "B", fieldHeight: "tall"}, "height (cm) must be a whole number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newFormModel(newFakeBackend(""), normalize.New(logger.Discard()), "")
			for f, v := range tt.fields {
				m.fields[f] = v
			}
			m, cmd := m.Update(key("ctrl+s"))
			if cmd != nil {
				t.Fatal("invalid form should not submit")
			}
			if m.statusMsg != tt.want {
				t.Errorf("status = %q, want %q", m.statusMsg, tt.want)
			}
		})
	}
}

func TestFormEditLoadsAndUpdates(t *testing.T) {
	b := newFakeBackend("")
	b.edit = &domain.Player{
		PlayerID: "103819", NameFirst: "Roger", NameLast: "Federer", Fullname: "Roger Federer",
		Hand: "R", BirthDate: "08-08-1981", Country: "sui", Height: "185", Weight: "-", ProSince: "1998",
		WikidataID: "Q1426", Instagram: "-", Facebook: "-", XTwitter: "-",
	}
	m := newFormModel(b, normalize.New(logger.Discard()), "103819")
	if !m.loading {
		t.Fatal("edit form should start loading")
	}
	m, _ = m.Update(m.Init()())

	if m.fields[fieldBirth] != "1981-08-08" || m.fields[fieldCountry] != "SUI" || m.fields[fieldWeight] != "" {
		t.Errorf("fields = %q", m.fields)
	}
	if m.focus == fieldID {
		t.Error("edit form should not focus the id")
	}

	m, cmd := m.Update(key("ctrl+s"))
	if cmd == nil {
		t.Fatalf("submit rejected: %q", m.statusMsg)
	}
	m.Update(cmd())

	got, ok := b.updated["103819"]
	if !ok {
		t.Fatal("expected update for 103819")
	}
	if got.BirthDate != "08-08-1981" || got.Weight != "-" || got.Country != "SUI" {
		t.Errorf("updated = %+v", got)
	}
}

func TestFormUnauthorizedSave(t *testing.T) {
	b := newFakeBackend("")
	b.saveErr = &client.HTTPError{Upstream: "backend-auth", StatusCode: 401, Message: "Token has expired"}
	m := newFormModel(b, normalize.New(logger.Discard()), "")
	m.fields[fieldID], m.fields[fieldFirst], m.fields[fieldLast] = "1", "A", "B"

	m, cmd := m.Update(key("ctrl+s"))
	_, cmd = m.Update(cmd())
	if cmd == nil {
		t.Fatal("expected unauthorized command")
	}
	if _, ok := cmd().(unauthorizedMsg); !ok {
		t.Error("401 on save should report unauthorized")
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	m := newLoginModel(newFakeBackend(""))
	m, _ = m.Update(key("tab"))
	m, cmd := m.Update(key("enter"))
	if cmd != nil {
		t.Error("empty login should not submit")
	}
	if m.statusMsg != "username and password are required" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	b := newFakeBackend("")
	b.loginErr = &client.HTTPError{StatusCode: 401, Message: "Bad username or password"}
	m := newLoginModel(b)
	m.username, m.password, m.focus = "admin", "nope", 1

	m, cmd := m.Update(key("enter"))
	m, _ = m.Update(cmd())
	if m.statusMsg != "wrong username or password" {
		t.Errorf("status = %q", m.statusMsg)
	}
	if m.password != "" {
		t.Error("password should be cleared after a failed login")
	}
	if strings.Contains(m.View(), "nope") {
		t.Error("password must not be rendered")
	}
}

func TestNewsSourcesAndFeed(t *testing.T) {
	m := newNewsModel(nil)
	m, _ = m.Update(sourcesLoadedMsg{sources: []domain.NewsSource{
		{ID: "marca", Name: "Marca", Description: "Deportes"},
		{ID: "as", Name: "AS", Description: "Diario deportivo"},
	}})
	m, _ = m.Update(key("j"))
	m, cmd := m.Update(key("enter"))
	if cmd == nil || m.source != "as" {
		t.Fatalf("source = %q", m.source)
	}
	if !strings.Contains(m.View(), "loading") {
		t.Error("expected loading while feed is fetched")
	}

	m, _ = m.Update(feedLoadedMsg{source: "marca", feed: &domain.NewsFeed{Articles: []domain.Article{{Title: "Stale"}}}})
	if m.feed != nil {
		t.Error("feed for another source should be dropped")
	}
	m, _ = m.Update(feedLoadedMsg{source: "as", feed: &domain.NewsFeed{Articles: []domain.Article{{Title: "Alcaraz gana en Madrid"}}}})
	if !strings.Contains(m.View(), "Alcaraz gana en Madrid") {
		t.Error("feed article not rendered")
	}

	m, _ = m.Update(key("esc"))
	if m.open() {
		t.Error("esc should return to the source list")
	}
}

func TestHomeHeadlines(t *testing.T) {
	m := newHomeModel(nil)
	if !strings.Contains(m.View(), "loading") {
		t.Error("expected loading before the first fetch")
	}
	m, cmd := m.Update(headlinesLoadedMsg{feed: &domain.NewsFeed{Articles: []domain.Article{
		{Title: "Sinner wins", Source: domain.ArticleSource{Name: "ESPN"}},
	}}})
	if cmd == nil {
		t.Error("expected a refresh tick after loading")
	}
	if !strings.Contains(m.View(), "Sinner wins") {
		t.Error("headline not rendered")
	}
	m, _ = m.Update(headlinesLoadedMsg{err: errors.New("news: HTTP 502: bad gateway")})
	if !strings.Contains(m.View(), "error: news: HTTP 502") {
		t.Error("error not rendered")
	}
}
