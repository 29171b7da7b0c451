package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/courtside/pkg/domain"
)

type sourcesLoadedMsg struct {
	sources []domain.NewsSource
	err     error
}

type feedLoadedMsg struct {
	source string
	feed   *domain.NewsFeed
	err    error
}

// newsModel lists the publishers available to the news proxy and shows the
// tennis feed filtered to one of them.
type newsModel struct {
	news    NewsFeed
	sources []domain.NewsSource
	cursor  int
	loading bool
	err     string

	// Filtered feed, non-nil while open.
	source     string
	feed       *domain.NewsFeed
	feedCursor int
	feedErr    string
}

func newNewsModel(n NewsFeed) newsModel {
	return newsModel{news: n, loading: true}
}

func (m newsModel) Init() tea.Cmd {
	n := m.news
	return func() tea.Msg {
		s, err := n.Sources(context.Background())
		return sourcesLoadedMsg{sources: s, err: err}
	}
}

func (m newsModel) loadFeed(source string) tea.Cmd {
	n := m.news
	return func() tea.Msg {
		f, err := n.TennisNews(context.Background(), []string{source})
		return feedLoadedMsg{source: source, feed: f, err: err}
	}
}

func (m newsModel) Update(msg tea.Msg) (newsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case sourcesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.sources = msg.sources
		return m, nil

	case feedLoadedMsg:
		if msg.source != m.source {
			return m, nil
		}
		if msg.err != nil {
			m.feedErr = msg.err.Error()
			m.feed = &domain.NewsFeed{}
			return m, nil
		}
		m.feed = msg.feed
		return m, nil

	case tea.KeyMsg:
		if m.source != "" {
			return m.updateFeed(msg)
		}
		switch msg.String() {
		case "j", "down":
			m.cursor = moveCursor(m.cursor, 1, len(m.sources))
		case "k", "up":
			m.cursor = moveCursor(m.cursor, -1, len(m.sources))
		case "enter":
			if m.cursor < len(m.sources) {
				m.source = m.sources[m.cursor].ID
				m.feed = nil
				m.feedErr = ""
				m.feedCursor = 0
				return m, m.loadFeed(m.source)
			}
		}
	}
	return m, nil
}

func (m newsModel) updateFeed(msg tea.KeyMsg) (newsModel, tea.Cmd) {
	n := 0
	if m.feed != nil {
		n = len(m.feed.Articles)
	}
	switch msg.String() {
	case "esc":
		m.source = ""
		m.feed = nil
	case "j", "down":
		m.feedCursor = moveCursor(m.feedCursor, 1, n)
	case "k", "up":
		m.feedCursor = moveCursor(m.feedCursor, -1, n)
	case "enter":
		if m.feedCursor < n {
			return m, openURL(m.feed.Articles[m.feedCursor].URL)
		}
	}
	return m, nil
}

func (m newsModel) open() bool {
	return m.source != ""
}

func (m newsModel) View() string {
	var b strings.Builder
	if m.open() {
		b.WriteString("\n " + sectionHeaderStyle.Render("NEWS . "+strings.ToUpper(m.source)) + "\n\n")
		switch {
		case m.feedErr != "":
			b.WriteString(" " + dimStyle.Render("error: "+m.feedErr) + "\n")
		case m.feed == nil:
			b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		case len(m.feed.Articles) == 0:
			b.WriteString(" " + dimStyle.Render("no tennis articles from this source") + "\n")
		default:
			for i, a := range m.feed.Articles {
				b.WriteString(row(i == m.feedCursor, truncStr(a.Title, 90)) + "\n")
				meta := formatTime(a.PublishedAt)
				if a.Author != "" {
					meta = fmt.Sprintf("%s . %s", truncStr(a.Author, 30), meta)
				}
				b.WriteString("     " + metaStyle.Render(meta) + "\n")
			}
		}
		return b.String()
	}

	b.WriteString("\n " + sectionHeaderStyle.Render("NEWS SOURCES") + "\n\n")
	if m.err != "" {
		b.WriteString(" " + dimStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if len(m.sources) == 0 {
		b.WriteString(" " + dimStyle.Render("no sources available") + "\n")
		return b.String()
	}
	for i, s := range m.sources {
		line := fmt.Sprintf("%-24s %s", truncStr(s.Name, 24), metaStyle.Render(truncStr(s.Description, 60)))
		b.WriteString(row(i == m.cursor, line) + "\n")
	}
	return b.String()
}
