package tui

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/courtside/pkg/domain"
)

// Seasons with an end-of-year ranking.
const (
	FirstRankingYear = 1973
	LastRankingYear  = 2023
)

type rankingsLoadedMsg struct {
	year int
	page *domain.RankingPage
	err  error
}

type rankingsModel struct {
	backend  Backend
	year     int
	page     int
	pages    int
	rankings []domain.Ranking
	cursor   int
	loading  bool
	err      string
}

// parseYear reads a year path parameter, defaulting to the latest season.
func parseYear(s string) int {
	y, err := strconv.Atoi(s)
	if err != nil || y < FirstRankingYear || y > LastRankingYear {
		return LastRankingYear
	}
	return y
}

func newRankingsModel(b Backend, year string) rankingsModel {
	return rankingsModel{backend: b, year: parseYear(year), page: 1, loading: true}
}

func (m rankingsModel) Init() tea.Cmd {
	return m.load()
}

func (m rankingsModel) load() tea.Cmd {
	b, year, page := m.backend, m.year, m.page
	return func() tea.Msg {
		r, err := b.Rankings(context.Background(), year, page, pageSize)
		return rankingsLoadedMsg{year: year, page: r, err: err}
	}
}

func (m rankingsModel) Update(msg tea.Msg) (rankingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case rankingsLoadedMsg:
		if msg.year != m.year {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.rankings = msg.page.Rankings
		m.pages = msg.page.Pages
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.cursor = moveCursor(m.cursor, 1, len(m.rankings))
		case "k", "up":
			m.cursor = moveCursor(m.cursor, -1, len(m.rankings))
		case "]", "right":
			return m.setYear(m.year + 1)
		case "[", "left":
			return m.setYear(m.year - 1)
		case "n":
			if m.page < m.pages {
				m.page++
				m.loading = true
				return m, m.load()
			}
		case "p":
			if m.page > 1 {
				m.page--
				m.loading = true
				return m, m.load()
			}
		case "enter":
			if m.cursor < len(m.rankings) {
				return m, navigate("/player/" + url.PathEscape(m.rankings[m.cursor].PlayerID))
			}
		}
	}
	return m, nil
}

func (m rankingsModel) setYear(y int) (rankingsModel, tea.Cmd) {
	if y < FirstRankingYear || y > LastRankingYear {
		return m, nil
	}
	m.year = y
	m.page = 1
	m.loading = true
	return m, m.load()
}

func (m rankingsModel) View() string {
	var b strings.Builder
	b.WriteString("\n " + sectionHeaderStyle.Render("RANKINGS") + "  " +
		metaStyle.Render("< ") + accentStyle.Render(strconv.Itoa(m.year)) + metaStyle.Render(" >"))
	if m.pages > 0 {
		b.WriteString("  " + metaStyle.Render(fmt.Sprintf("page %d/%d", m.page, m.pages)))
	}
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(" " + dimStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if m.loading && len(m.rankings) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if len(m.rankings) == 0 {
		b.WriteString(" " + dimStyle.Render("no rankings for this year") + "\n")
		return b.String()
	}
	for i, r := range m.rankings {
		rank := rankStyle(r.Rank.Int()).Render(fmt.Sprintf("%4s", r.Rank.String()))
		line := fmt.Sprintf("%s  %-28s %-4s %s", rank, truncStr(r.Fullname, 28), orDash(r.Country), metaStyle.Render(orDash(r.Points)+" pts"))
		b.WriteString(row(i == m.cursor, line) + "\n")
	}
	return b.String()
}
