package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/courtside/internal/browser"
	"github.com/naveenspark/courtside/pkg/domain"
)

// headlinesPollInterval is how often the home headlines auto-refresh.
const headlinesPollInterval = 5 * time.Minute

type headlinesTickMsg time.Time

func headlinesTickCmd() tea.Cmd {
	return tea.Tick(headlinesPollInterval, func(t time.Time) tea.Msg {
		return headlinesTickMsg(t)
	})
}

type headlinesLoadedMsg struct {
	feed *domain.NewsFeed
	err  error
}

type homeModel struct {
	news     NewsFeed
	articles []domain.Article
	cursor   int
	loading  bool
	err      string
}

func newHomeModel(n NewsFeed) homeModel {
	return homeModel{news: n, loading: true}
}

func (m homeModel) Init() tea.Cmd {
	return m.load()
}

func (m homeModel) load() tea.Cmd {
	n := m.news
	return func() tea.Msg {
		feed, err := n.TennisNews(context.Background(), nil)
		return headlinesLoadedMsg{feed: feed, err: err}
	}
}

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case headlinesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.articles = msg.feed.Articles
			m.cursor = moveCursor(m.cursor, 0, len(m.articles))
			m.err = ""
		}
		return m, headlinesTickCmd()

	case headlinesTickMsg:
		return m, m.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.cursor = moveCursor(m.cursor, 1, len(m.articles))
		case "k", "up":
			m.cursor = moveCursor(m.cursor, -1, len(m.articles))
		case "r":
			m.loading = true
			return m, m.load()
		case "enter":
			if m.cursor < len(m.articles) {
				return m, openURL(m.articles[m.cursor].URL)
			}
		}
	}
	return m, nil
}

func (m homeModel) View() string {
	var b strings.Builder
	b.WriteString("\n " + sectionHeaderStyle.Render("TENNIS HEADLINES") + "\n\n")

	if m.err != "" {
		b.WriteString(" " + dimStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if m.loading && len(m.articles) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if len(m.articles) == 0 {
		b.WriteString(" " + dimStyle.Render("no headlines right now") + "\n")
		return b.String()
	}
	for i, a := range m.articles {
		b.WriteString(row(i == m.cursor, truncStr(a.Title, 90)) + "\n")
		meta := a.Source.Name
		if ts := formatTime(a.PublishedAt); ts != "" {
			meta = fmt.Sprintf("%s . %s", meta, ts)
		}
		b.WriteString("     " + metaStyle.Render(meta) + "\n")
	}
	return b.String()
}

// openURL opens url in the browser and reports failures as a flash.
func openURL(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return flashMsg{text: "open: " + err.Error(), err: true}
		}
		return nil
	}
}
