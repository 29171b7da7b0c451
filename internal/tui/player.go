package tui

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/courtside/pkg/domain"
)

type playerLoadedMsg struct {
	player *domain.PlayerDetail
	err    error
}

type photoLoadedMsg struct {
	id    string
	image *domain.Image
	err   error
}

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

type playerModel struct {
	backend  Backend
	images   Images
	id       string
	player   *domain.PlayerDetail
	photo    *domain.Image
	photoErr string
	photoOK  bool // photo lookup finished
	loading  bool
	err      string
}

func newPlayerModel(b Backend, img Images, id string) playerModel {
	return playerModel{backend: b, images: img, id: id, loading: true}
}

func (m playerModel) Init() tea.Cmd {
	b, id := m.backend, m.id
	return func() tea.Msg {
		p, err := b.GetPlayer(context.Background(), id)
		return playerLoadedMsg{player: p, err: err}
	}
}

func (m playerModel) loadPhoto() tea.Cmd {
	img, id := m.images, m.id
	wikidataID, name := m.player.WikidataID, displayName(m.player.Player)
	return func() tea.Msg {
		image, err := img.PlayerPhoto(context.Background(), wikidataID, name)
		return photoLoadedMsg{id: id, image: image, err: err}
	}
}

func (m playerModel) Update(msg tea.Msg) (playerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case playerLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.player = msg.player
		if m.images == nil {
			m.photoOK = true
			return m, nil
		}
		return m, m.loadPhoto()

	case photoLoadedMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.photoOK = true
		m.photo = msg.image
		if msg.err != nil {
			m.photoErr = msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "o":
			if m.photo != nil {
				return m, openURL(m.photo.URL)
			}
		case "i":
			if m.photo != nil && m.photo.Attribution != nil {
				return m, openURL(m.photo.Attribution.FilePageURL)
			}
		case "c":
			if m.photo != nil {
				u := m.photo.URL
				return m, func() tea.Msg {
					if err := copyToClipboard(u); err != nil {
						return flashMsg{text: "copy: " + err.Error(), err: true}
					}
					return flashMsg{text: "photo url copied"}
				}
			}
		case "e":
			if m.player != nil {
				return m, navigate("/edit-player/" + url.PathEscape(m.id))
			}
		}
	}
	return m, nil
}

func (m playerModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(" " + dimStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if m.loading || m.player == nil {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	p := m.player

	b.WriteString(" " + selectedStyle.Render(displayName(p.Player)) + "  " + metaStyle.Render(orDash(p.Country)) + "\n")
	field := func(label, value string) {
		fmt.Fprintf(&b, "   %s %s\n", metaStyle.Render(fmt.Sprintf("%-14s", label)), normalStyle.Render(orDash(value)))
	}
	field("born", p.BirthDate)
	field("plays", hand(p.Hand))
	field("height", p.Height)
	field("weight", p.Weight)
	field("pro since", p.ProSince)

	b.WriteString("\n " + sectionHeaderStyle.Render("CAREER") + "\n")
	field("best ranking", p.BestRanking.String())
	field("titles", p.TotalTitles.String())
	field("grand slams", p.GrandSlams.String())
	field("masters 1000", p.Masters1000.String())
	field("won/lost", p.WonLost.String())

	b.WriteString("\n " + sectionHeaderStyle.Render("SERVE") + "\n")
	field("aces", p.Aces.String())
	field("double faults", p.DoubleFaults.String())
	field("1st in", p.FirstIn.String())
	field("1st won", p.PointsOnFirst.String())
	field("2nd won", p.PointsOnSecond.String())
	field("games won", p.GamesOnServe.String())
	field("bp faced", p.BreakPointsFaced.String())
	field("bp saved", p.BreakPointsSavedP.String())

	if len(p.Titles) > 0 {
		b.WriteString("\n " + sectionHeaderStyle.Render("TITLES") + "\n")
		for _, t := range p.Titles {
			fmt.Fprintf(&b, "   %s %s %s %s\n",
				metaStyle.Render(t.Year),
				LevelStyle(t.TourneyLevel).Render(fmt.Sprintf("%-1s", t.TourneyLevel)),
				normalStyle.Render(truncStr(t.TourneyName, 40)),
				SurfaceStyle(t.Surface).Render(t.Surface))
		}
	}

	b.WriteString("\n " + sectionHeaderStyle.Render("PHOTO") + "\n")
	switch {
	case !m.photoOK:
		b.WriteString("   " + dimStyle.Render("resolving...") + "\n")
	case m.photoErr != "":
		b.WriteString("   " + dimStyle.Render("error: "+m.photoErr) + "\n")
	case m.photo == nil:
		b.WriteString("   " + dimStyle.Render("no photo found") + "\n")
	default:
		b.WriteString("   " + accentStyle.Render(truncStr(m.photo.URL, 100)) + "\n")
		if a := m.photo.Attribution; a != nil {
			credit := a.Author
			if a.License != "" {
				credit += " . " + a.License
			}
			b.WriteString("   " + metaStyle.Render(truncStr(credit, 100)) + "\n")
		}
	}
	return b.String()
}

func hand(h string) string {
	switch strings.ToUpper(h) {
	case "R":
		return "right-handed"
	case "L":
		return "left-handed"
	}
	return h
}
