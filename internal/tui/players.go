package tui

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/courtside/pkg/domain"
)

type playersLoadedMsg struct {
	page *domain.PlayerPage
	err  error
}

type playersModel struct {
	backend   Backend
	lastName  string
	page      int
	pages     int
	total     int
	players   []domain.Player
	cursor    int
	loading   bool
	err       string
	searching bool
	query     string
}

func newPlayersModel(b Backend, lastName string) playersModel {
	return playersModel{backend: b, lastName: lastName, page: 1, loading: true}
}

func (m playersModel) Init() tea.Cmd {
	return m.load()
}

func (m playersModel) load() tea.Cmd {
	b, page, last := m.backend, m.page, m.lastName
	return func() tea.Msg {
		p, err := b.ListPlayers(context.Background(), page, pageSize, last)
		return playersLoadedMsg{page: p, err: err}
	}
}

func (m playersModel) Update(msg tea.Msg) (playersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case playersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.players = msg.page.Players
		m.pages = msg.page.Pages
		m.total = msg.page.TotalPlayers
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.searching = false
				q := strings.TrimSpace(m.query)
				if q == "" {
					return m, navigate("/players")
				}
				return m, navigate("/players/" + url.PathEscape(q))
			case "esc":
				m.searching = false
				m.query = ""
			default:
				m.query = editRune(m.query, msg.String())
			}
			return m, nil
		}

		switch msg.String() {
		case "j", "down":
			m.cursor = moveCursor(m.cursor, 1, len(m.players))
		case "k", "up":
			m.cursor = moveCursor(m.cursor, -1, len(m.players))
		case "n", "right":
			if m.page < m.pages {
				m.page++
				m.loading = true
				return m, m.load()
			}
		case "p", "left":
			if m.page > 1 {
				m.page--
				m.loading = true
				return m, m.load()
			}
		case "/":
			m.searching = true
			m.query = m.lastName
		case "enter":
			if m.cursor < len(m.players) {
				return m, navigate("/player/" + url.PathEscape(m.players[m.cursor].PlayerID))
			}
		}
	}
	return m, nil
}

func (m playersModel) View() string {
	var b strings.Builder
	title := "PLAYERS"
	if m.lastName != "" {
		title += " . " + strings.ToUpper(m.lastName)
	}
	b.WriteString("\n " + sectionHeaderStyle.Render(title))
	if m.pages > 0 {
		b.WriteString("  " + metaStyle.Render(fmt.Sprintf("page %d/%d . %d players", m.page, m.pages, m.total)))
	}
	b.WriteString("\n")
	if m.searching {
		b.WriteString(" " + renderInput("last name", m.query, "type a last name", true, false) + "\n")
	} else {
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString(" " + dimStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if m.loading && len(m.players) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if len(m.players) == 0 {
		b.WriteString(" " + dimStyle.Render("no players found") + "\n")
		return b.String()
	}
	for i, p := range m.players {
		line := fmt.Sprintf("%-28s %-4s %s", truncStr(displayName(p), 28), orDash(p.Country), metaStyle.Render(orDash(p.BirthDate)))
		b.WriteString(row(i == m.cursor, line) + "\n")
	}
	return b.String()
}
