package tui

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/courtside/internal/normalize"
	"github.com/naveenspark/courtside/pkg/domain"
)

type tournamentsLoadedMsg struct {
	level string
	page  *domain.TournamentPage
	err   error
}

type winnersLoadedMsg struct {
	tournament string
	page       *domain.EditionPage
	err        error
}

type logoLoadedMsg struct {
	tournament string
	image      *domain.Image
	err        error
}

type tournamentsModel struct {
	backend     Backend
	images      Images
	level       int // index into domain.Levels
	tournaments []string
	cursor      int
	loading     bool
	err         string

	// Winners panel, non-nil while open.
	selected      string
	winners       []domain.Edition
	winnersCursor int
	winnersErr    string
	logo          *domain.Image
	logoDone      bool
}

func levelIndex(slug string) int {
	for i, l := range domain.Levels {
		if l == slug {
			return i
		}
	}
	return 0
}

func newTournamentsModel(b Backend, img Images, level string) tournamentsModel {
	return tournamentsModel{backend: b, images: img, level: levelIndex(level), loading: true}
}

func (m tournamentsModel) Init() tea.Cmd {
	return m.load()
}

func (m tournamentsModel) slug() string {
	return domain.Levels[m.level]
}

func (m tournamentsModel) load() tea.Cmd {
	b, level := m.backend, m.slug()
	return func() tea.Msg {
		// Tournament names per level fit in a single large page.
		t, err := b.TournamentsByLevel(context.Background(), level, 1, 100)
		return tournamentsLoadedMsg{level: level, page: t, err: err}
	}
}

func (m tournamentsModel) openWinners(name string) tea.Cmd {
	b, img := m.backend, m.images
	slug := normalize.Slug(name)
	cmds := []tea.Cmd{func() tea.Msg {
		e, err := b.TournamentWinners(context.Background(), slug, 1, 100)
		return winnersLoadedMsg{tournament: name, page: e, err: err}
	}}
	if img != nil {
		cmds = append(cmds, func() tea.Msg {
			logo, err := img.TournamentLogo(context.Background(), name)
			return logoLoadedMsg{tournament: name, image: logo, err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (m tournamentsModel) Update(msg tea.Msg) (tournamentsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tournamentsLoadedMsg:
		if msg.level != m.slug() {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.tournaments = msg.page.Tournaments
		m.cursor = 0
		return m, nil

	case winnersLoadedMsg:
		if msg.tournament != m.selected {
			return m, nil
		}
		if msg.err != nil {
			m.winnersErr = msg.err.Error()
			m.winners = []domain.Edition{}
			return m, nil
		}
		m.winners = msg.page.Winners
		if m.winners == nil {
			m.winners = []domain.Edition{}
		}
		return m, nil

	case logoLoadedMsg:
		if msg.tournament != m.selected {
			return m, nil
		}
		m.logoDone = true
		m.logo = msg.image
		return m, nil

	case tea.KeyMsg:
		if m.selected != "" {
			return m.updateWinners(msg)
		}
		switch msg.String() {
		case "j", "down":
			m.cursor = moveCursor(m.cursor, 1, len(m.tournaments))
		case "k", "up":
			m.cursor = moveCursor(m.cursor, -1, len(m.tournaments))
		case "tab":
			m.level = (m.level + 1) % len(domain.Levels)
			return m.reload()
		case "shift+tab":
			m.level = (m.level + len(domain.Levels) - 1) % len(domain.Levels)
			return m.reload()
		case "enter":
			if m.cursor < len(m.tournaments) {
				m.selected = m.tournaments[m.cursor]
				m.winners = nil
				m.winnersErr = ""
				m.winnersCursor = 0
				m.logo = nil
				m.logoDone = m.images == nil
				return m, m.openWinners(m.selected)
			}
		}
	}
	return m, nil
}

func (m tournamentsModel) reload() (tournamentsModel, tea.Cmd) {
	m.tournaments = nil
	m.loading = true
	m.err = ""
	return m, m.load()
}

func (m tournamentsModel) updateWinners(msg tea.KeyMsg) (tournamentsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.selected = ""
		m.winners = nil
	case "j", "down":
		m.winnersCursor = moveCursor(m.winnersCursor, 1, len(m.winners))
	case "k", "up":
		m.winnersCursor = moveCursor(m.winnersCursor, -1, len(m.winners))
	case "o":
		if m.logo != nil {
			return m, openURL(m.logo.URL)
		}
	case "enter":
		if m.winnersCursor < len(m.winners) {
			return m, navigate("/player/" + url.PathEscape(m.winners[m.winnersCursor].WinnerID))
		}
	}
	return m, nil
}

func (m tournamentsModel) View() string {
	var b strings.Builder
	b.WriteString("\n " + sectionHeaderStyle.Render("TOURNAMENTS") + "  ")
	for i, l := range domain.Levels {
		if i == m.level {
			b.WriteString(accentStyle.Render(l) + " ")
		} else {
			b.WriteString(metaStyle.Render(l) + " ")
		}
	}
	b.WriteString("\n\n")

	if m.selected != "" {
		return b.String() + m.winnersView()
	}
	if m.err != "" {
		b.WriteString(" " + dimStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if len(m.tournaments) == 0 {
		b.WriteString(" " + dimStyle.Render("no tournaments at this level") + "\n")
		return b.String()
	}
	for i, t := range m.tournaments {
		b.WriteString(row(i == m.cursor, t) + "\n")
	}
	return b.String()
}

func (m tournamentsModel) winnersView() string {
	var b strings.Builder
	b.WriteString(" " + selectedStyle.Render(m.selected) + "\n")
	switch {
	case !m.logoDone:
		b.WriteString("   " + dimStyle.Render("resolving logo...") + "\n")
	case m.logo != nil:
		b.WriteString("   " + accentStyle.Render(truncStr(m.logo.URL, 100)) + "\n")
	default:
		b.WriteString("   " + dimStyle.Render("no logo found") + "\n")
	}
	b.WriteString("\n")

	if m.winnersErr != "" {
		b.WriteString(" " + dimStyle.Render("error: "+m.winnersErr) + "\n")
		return b.String()
	}
	if m.winners == nil {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if len(m.winners) == 0 {
		b.WriteString(" " + dimStyle.Render("no winners recorded") + "\n")
		return b.String()
	}
	for i, w := range m.winners {
		line := fmt.Sprintf("%-5s %-28s %s", w.Year, truncStr(w.WinnerName, 28), orDash(w.WinnerCountry))
		b.WriteString(row(i == m.winnersCursor, line) + "\n")
	}
	return b.String()
}
