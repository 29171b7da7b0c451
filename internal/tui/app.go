package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/courtside/internal/auth"
	"github.com/naveenspark/courtside/internal/logger"
	"github.com/naveenspark/courtside/internal/normalize"
	"github.com/naveenspark/courtside/internal/router"
	"github.com/naveenspark/courtside/pkg/client"
	"github.com/naveenspark/courtside/pkg/domain"
)

// Backend is the part of the backend client the views use.
type Backend interface {
	Login(ctx context.Context, username, password string) error
	Logout() error
	IsLoggedIn() bool
	ListPlayers(ctx context.Context, page, perPage int, lastName string) (*domain.PlayerPage, error)
	GetPlayer(ctx context.Context, id string) (*domain.PlayerDetail, error)
	GetPlayerForEdit(ctx context.Context, id string) (*domain.Player, error)
	CreatePlayer(ctx context.Context, p domain.Player) (*client.Status, error)
	UpdatePlayer(ctx context.Context, id string, p domain.Player) (*client.Status, error)
	Rankings(ctx context.Context, year, page, perPage int) (*domain.RankingPage, error)
	TournamentsByLevel(ctx context.Context, level string, page, perPage int) (*domain.TournamentPage, error)
	TournamentWinners(ctx context.Context, tournament string, page, perPage int) (*domain.EditionPage, error)
}

// NewsFeed is the news proxy client.
type NewsFeed interface {
	TennisNews(ctx context.Context, sources []string) (*domain.NewsFeed, error)
	Sources(ctx context.Context) ([]domain.NewsSource, error)
}

// Images resolves player photos and tournament logos.
type Images interface {
	PlayerPhoto(ctx context.Context, wikidataID, name string) (*domain.Image, error)
	TournamentLogo(ctx context.Context, name string) (*domain.Image, error)
}

// Deps wires the application services into the views.
type Deps struct {
	Backend    Backend
	News       NewsFeed
	Images     Images
	Router     *router.Router
	Normalizer *normalize.Normalizer
	Log        *slog.Logger
	// Start is the path shown first; empty means home.
	Start string
}

// navigateMsg asks the App to resolve and show path.
type navigateMsg struct {
	path string
	back bool
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

// unauthorizedMsg reports that the backend rejected the stored token.
type unauthorizedMsg struct{}

// flashMsg shows a one-line status under the body.
type flashMsg struct {
	text string
	err  bool
}

// authFailed reports whether err is a rejected credential.
func authFailed(err error) bool {
	return client.IsStatus(err, 401) || client.IsStatus(err, 403)
}

// App is the root Bubbletea model.
type App struct {
	deps        Deps
	view        router.View
	res         router.Resolution
	history     []string
	home        homeModel
	players     playersModel
	player      playerModel
	rankings    rankingsModel
	tournaments tournamentsModel
	news        newsModel
	login       loginModel
	form        formModel
	helpOpen    bool
	flash       string
	flashErr    bool
	width       int
	height      int
	frame       int // logo shimmer animation frame
}

// NewApp creates a new TUI application showing the home view.
func NewApp(d Deps) App {
	if d.Log == nil {
		d.Log = logger.Discard()
	}
	if d.Normalizer == nil {
		d.Normalizer = normalize.New(d.Log)
	}
	return App{
		deps: d,
		view: router.ViewHome,
		res:  router.Resolution{Path: "/"},
		home: newHomeModel(d.News),
	}
}

func (a App) Init() tea.Cmd {
	if start := a.deps.Start; start != "" && start != "/" {
		return tea.Batch(shimmerTickCmd(), navigate(start))
	}
	return tea.Batch(a.home.Init(), shimmerTickCmd())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case navigateMsg:
		return a.goTo(msg.path, msg.back)

	case flashMsg:
		a.flash, a.flashErr = msg.text, msg.err
		return a, nil

	case unauthorizedMsg:
		a.deps.Log.Warn("backend rejected token", "path", a.res.Path)
		if err := a.deps.Backend.Logout(); err != nil {
			a.deps.Log.Error("tui: clear token", "error", err)
		}
		return a, navigate(auth.LoginRedirect(a.res.Path))

	case loginDoneMsg:
		if msg.err == nil {
			a.deps.Log.Info("logged in")
			a.flash, a.flashErr = "logged in", false
			return a, navigate(router.Continue(a.res))
		}

	case tea.KeyMsg:
		if a.helpOpen {
			switch msg.String() {
			case "h", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			}
			return a, nil
		}

		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.isEditing() {
			a.flash = ""
			switch msg.String() {
			case "h":
				a.helpOpen = true
				return a, nil
			case "q":
				return a, tea.Quit
			case "1":
				return a, navigate("/")
			case "2":
				return a, navigate("/players")
			case "3":
				return a, navigate("/rankings")
			case "4":
				return a, navigate("/tournaments")
			case "5":
				return a, navigate("/news")
			case "a":
				return a, navigate("/add-player")
			case "L":
				if a.deps.Backend != nil && a.deps.Backend.IsLoggedIn() {
					if err := a.deps.Backend.Logout(); err != nil {
						a.deps.Log.Error("tui: clear token", "error", err)
						a.flash, a.flashErr = "logout failed: "+err.Error(), true
						return a, nil
					}
					a.flash, a.flashErr = "logged out", false
					a.deps.Log.Info("logged out")
					return a, nil
				}
				return a, navigate("/login")
			case "esc":
				if a.consumesEsc() {
					break
				}
				return a.back()
			}
		} else if msg.String() == "esc" && !a.consumesEsc() {
			return a.back()
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case router.ViewHome:
		a.home, cmd = a.home.Update(msg)
	case router.ViewPlayers:
		a.players, cmd = a.players.Update(msg)
	case router.ViewPlayer:
		a.player, cmd = a.player.Update(msg)
	case router.ViewRankings:
		a.rankings, cmd = a.rankings.Update(msg)
	case router.ViewTournaments:
		a.tournaments, cmd = a.tournaments.Update(msg)
	case router.ViewNews:
		a.news, cmd = a.news.Update(msg)
	case router.ViewLogin:
		a.login, cmd = a.login.Update(msg)
	case router.ViewAddPlayer, router.ViewEditPlayer:
		a.form, cmd = a.form.Update(msg)
	}
	return a, cmd
}

// goTo resolves path through the router and initializes the target view.
func (a App) goTo(path string, back bool) (App, tea.Cmd) {
	res, err := a.deps.Router.Navigate(path)
	if err != nil {
		a.deps.Log.Warn("navigation failed", "path", path, "err", err)
		a.flash, a.flashErr = err.Error(), true
		return a, nil
	}
	if !back && a.res.Path != "" && a.res.Path != res.Path {
		a.history = append(a.history, a.res.Path)
	}
	a.res = res
	a.view = res.Route.View
	a.helpOpen = false

	d := a.deps
	switch a.view {
	case router.ViewHome:
		a.home = newHomeModel(d.News)
		return a, a.home.Init()
	case router.ViewPlayers:
		a.players = newPlayersModel(d.Backend, res.Params["lastname"])
		return a, a.players.Init()
	case router.ViewPlayer:
		a.player = newPlayerModel(d.Backend, d.Images, res.Params["id"])
		return a, a.player.Init()
	case router.ViewRankings:
		a.rankings = newRankingsModel(d.Backend, res.Params["year"])
		return a, a.rankings.Init()
	case router.ViewTournaments:
		a.tournaments = newTournamentsModel(d.Backend, d.Images, res.Params["level"])
		return a, a.tournaments.Init()
	case router.ViewNews:
		a.news = newNewsModel(d.News)
		return a, a.news.Init()
	case router.ViewLogin:
		a.login = newLoginModel(d.Backend)
		if res.Redirect != "" {
			a.flash, a.flashErr = "log in to continue to "+res.Redirect, false
		}
		return a, nil
	case router.ViewAddPlayer:
		a.form = newFormModel(d.Backend, d.Normalizer, "")
		return a, a.form.Init()
	case router.ViewEditPlayer:
		a.form = newFormModel(d.Backend, d.Normalizer, res.Params["id"])
		return a, a.form.Init()
	}
	return a, nil
}

// back returns to the previous path, or home when there is none.
func (a App) back() (tea.Model, tea.Cmd) {
	if len(a.history) == 0 {
		if a.view == router.ViewHome {
			return a, nil
		}
		return a, func() tea.Msg { return navigateMsg{path: "/", back: true} }
	}
	prev := a.history[len(a.history)-1]
	a.history = a.history[:len(a.history)-1]
	return a, func() tea.Msg { return navigateMsg{path: prev, back: true} }
}

func (a App) isEditing() bool {
	switch a.view {
	case router.ViewLogin, router.ViewAddPlayer, router.ViewEditPlayer:
		return true
	case router.ViewPlayers:
		return a.players.searching
	}
	return false
}

// consumesEsc reports whether the current view handles esc itself.
func (a App) consumesEsc() bool {
	switch a.view {
	case router.ViewPlayers:
		return a.players.searching
	case router.ViewTournaments:
		return a.tournaments.selected != ""
	case router.ViewNews:
		return a.news.open()
	}
	return false
}

func (a App) View() string {
	logo := renderShimmerLogo(a.frame)
	logoPad := max((a.width-lipgloss.Width(logo))/2, 0)
	header := strings.Repeat(" ", logoPad) + logo

	status := dimStyle.Render("guest")
	if a.deps.Backend != nil && a.deps.Backend.IsLoggedIn() {
		status = okStyle.Render("admin")
	}
	statusPad := max((a.width-lipgloss.Width(status))/2, 0)
	header += "\n" + strings.Repeat(" ", statusPad) + status

	type tabEntry struct {
		key  string
		name string
		v    router.View
	}
	tabs := []tabEntry{
		{"1", "Home", router.ViewHome},
		{"2", "Players", router.ViewPlayers},
		{"3", "Rankings", router.ViewRankings},
		{"4", "Tournaments", router.ViewTournaments},
		{"5", "News", router.ViewNews},
	}
	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		active := t.v == a.view || (t.v == router.ViewPlayers && a.view == router.ViewPlayer)
		var label string
		if active {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		w := lipgloss.Width(label)
		left := max((colWidth-w)/2, 0)
		right := max(colWidth-w-left, 0)
		tabBar.WriteString(strings.Repeat(" ", left) + label + strings.Repeat(" ", right))
	}

	var body, help string
	switch a.view {
	case router.ViewHome:
		body = a.home.View()
		help = helpBar("1-5", "tabs", "j/k", "nav", "enter", "read", "r", "refresh", "h", "help", "q", "quit")
	case router.ViewPlayers:
		body = a.players.View()
		if a.players.searching {
			help = helpBar("enter", "search", "esc", "cancel")
		} else {
			help = helpBar("1-5", "tabs", "j/k", "nav", "n/p", "page", "/", "last name", "enter", "open", "a", "add", "q", "quit")
		}
	case router.ViewPlayer:
		body = a.player.View()
		help = helpBar("o", "open photo", "c", "copy url", "i", "image page", "e", "edit", "esc", "back")
	case router.ViewRankings:
		body = a.rankings.View()
		help = helpBar("1-5", "tabs", "j/k", "nav", "[/]", "year", "n/p", "page", "enter", "player", "q", "quit")
	case router.ViewTournaments:
		body = a.tournaments.View()
		if a.tournaments.selected != "" {
			help = helpBar("j/k", "nav", "enter", "champion", "o", "open logo", "esc", "back")
		} else {
			help = helpBar("1-5", "tabs", "tab", "level", "j/k", "nav", "enter", "winners", "q", "quit")
		}
	case router.ViewNews:
		body = a.news.View()
		if a.news.open() {
			help = helpBar("j/k", "nav", "enter", "read", "esc", "sources")
		} else {
			help = helpBar("1-5", "tabs", "j/k", "nav", "enter", "filter", "q", "quit")
		}
	case router.ViewLogin:
		body = a.login.View()
		help = helpBar("tab", "next", "enter", "log in", "esc", "cancel")
	case router.ViewAddPlayer, router.ViewEditPlayer:
		body = a.form.View()
		help = helpBar("tab", "next", "ctrl+s", "save", "esc", "cancel")
	}

	if a.helpOpen {
		body = helpView()
		help = helpBar("esc", "close")
	}

	var flash string
	if a.flash != "" {
		if a.flashErr {
			flash = " " + errorStyle.Render(a.flash)
		} else {
			flash = " " + okStyle.Render(a.flash)
		}
	}

	// Chrome: header(2) + tabs(1) + flash(1) + help(1) = 5 lines
	chrome := 5
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, tabBar.String(), body, flash, help)
}
