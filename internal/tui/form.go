package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/courtside/internal/normalize"
	"github.com/naveenspark/courtside/pkg/client"
	"github.com/naveenspark/courtside/pkg/domain"
)

type formField int

const (
	fieldID formField = iota
	fieldFirst
	fieldLast
	fieldFullname
	fieldHand
	fieldBirth
	fieldCountry
	fieldHeight
	fieldWeight
	fieldProSince
	fieldWikidata
	fieldInstagram
	fieldFacebook
	fieldX
	numFields
)

var fieldLabels = [numFields]string{
	"player id", "first name", "last name", "full name", "hand", "birth date",
	"country", "height (cm)", "weight (kg)", "pro since", "wikidata id",
	"instagram", "facebook", "x / twitter",
}

var fieldPlaceholders = [numFields]string{
	"", "Rafael", "Nadal", "Rafael Nadal", "h/l to cycle", "yyyy-mm-dd",
	"ESP", "185", "85", "2001", "Q10132", "", "", "",
}

var hands = []string{"", "R", "L", "U"}

type formLoadedMsg struct {
	player *domain.Player
	err    error
}

type playerSavedMsg struct {
	status *client.Status
	err    error
}

// formModel adds a player when id is empty and edits player id otherwise.
type formModel struct {
	backend   Backend
	norm      *normalize.Normalizer
	id        string
	fields    [numFields]string
	focus     formField
	loading   bool
	submitted bool
	statusMsg string
	statusOK  bool
}

func newFormModel(b Backend, n *normalize.Normalizer, id string) formModel {
	m := formModel{backend: b, norm: n, id: id, focus: fieldFirst, loading: id != ""}
	if id == "" {
		m.focus = fieldID
	}
	return m
}

func (m formModel) editing() bool {
	return m.id != ""
}

func (m formModel) Init() tea.Cmd {
	if !m.editing() {
		return nil
	}
	b, id := m.backend, m.id
	return func() tea.Msg {
		p, err := b.GetPlayerForEdit(context.Background(), id)
		return formLoadedMsg{player: p, err: err}
	}
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case formLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if authFailed(msg.err) {
				return m, func() tea.Msg { return unauthorizedMsg{} }
			}
			m.statusMsg = "load failed: " + msg.err.Error()
			return m, nil
		}
		m.fill(m.norm.IntoForm(*msg.player))
		return m, nil

	case playerSavedMsg:
		m.submitted = false
		if msg.err != nil {
			if authFailed(msg.err) {
				return m, func() tea.Msg { return unauthorizedMsg{} }
			}
			m.statusMsg = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.statusOK = true
		m.statusMsg = "saved"
		if msg.status != nil && msg.status.Message != "" {
			m.statusMsg = msg.status.Message
		}
		if !m.editing() {
			m.fields = [numFields]string{}
			m.focus = fieldID
		}
		return m, nil

	case tea.KeyMsg:
		if m.loading || m.submitted {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m formModel) updateKeys(msg tea.KeyMsg) (formModel, tea.Cmd) {
	m.statusMsg = ""
	m.statusOK = false

	switch msg.String() {
	case "ctrl+s":
		return m.submit()
	case "tab", "down", "enter":
		m.focus = m.next(1)
	case "shift+tab", "up":
		m.focus = m.next(-1)
	default:
		key := msg.String()
		if m.focus == fieldHand {
			if key == "h" || key == "l" {
				m.fields[fieldHand] = cycle(hands, m.fields[fieldHand], key == "l")
			}
			return m, nil
		}
		m.fields[m.focus] = editRune(m.fields[m.focus], key)
	}
	return m, nil
}

// next moves focus by delta, skipping the id field while editing.
func (m formModel) next(delta int) formField {
	f := m.focus
	for {
		f = (f + formField(delta) + numFields) % numFields
		if !(m.editing() && f == fieldID) {
			return f
		}
	}
}

func cycle(values []string, current string, forward bool) string {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(values)
	} else {
		idx = (idx - 1 + len(values)) % len(values)
	}
	return values[idx]
}

func (m *formModel) fill(f domain.PlayerForm) {
	num := func(v int) string {
		if v == 0 {
			return ""
		}
		return strconv.Itoa(v)
	}
	blank := func(s string) string {
		if s == domain.Sentinel {
			return ""
		}
		return s
	}
	m.fields = [numFields]string{
		fieldID:        f.PlayerID,
		fieldFirst:     blank(f.NameFirst),
		fieldLast:      blank(f.NameLast),
		fieldFullname:  blank(f.Fullname),
		fieldHand:      blank(f.Hand),
		fieldBirth:     f.BirthDate,
		fieldCountry:   blank(f.Country),
		fieldHeight:    num(f.Height),
		fieldWeight:    num(f.Weight),
		fieldProSince:  num(f.ProSince),
		fieldWikidata:  blank(f.WikidataID),
		fieldInstagram: blank(f.Instagram),
		fieldFacebook:  blank(f.Facebook),
		fieldX:         blank(f.XTwitter),
	}
}

// form validates the inputs and builds the form record.
func (m formModel) form() (domain.PlayerForm, error) {
	v := func(f formField) string { return strings.TrimSpace(m.fields[f]) }

	f := domain.PlayerForm{
		PlayerID:   v(fieldID),
		NameFirst:  v(fieldFirst),
		NameLast:   v(fieldLast),
		Fullname:   v(fieldFullname),
		Hand:       v(fieldHand),
		BirthDate:  v(fieldBirth),
		Country:    strings.ToUpper(v(fieldCountry)),
		WikidataID: v(fieldWikidata),
		Instagram:  v(fieldInstagram),
		Facebook:   v(fieldFacebook),
		XTwitter:   v(fieldX),
	}
	if f.NameFirst == "" || f.NameLast == "" {
		return f, errors.New("first and last name are required")
	}
	if !m.editing() && f.PlayerID == "" {
		return f, errors.New("player id is required")
	}
	if f.Fullname == "" {
		f.Fullname = f.NameFirst + " " + f.NameLast
	}
	if f.BirthDate != "" {
		if _, err := time.Parse("2006-01-02", f.BirthDate); err != nil {
			return f, errors.New("birth date must be yyyy-mm-dd")
		}
	}
	for _, n := range []struct {
		field formField
		dst   *int
	}{
		{fieldHeight, &f.Height},
		{fieldWeight, &f.Weight},
		{fieldProSince, &f.ProSince},
	} {
		s := v(n.field)
		if s == "" {
			continue
		}
		i, err := strconv.Atoi(s)
		if err != nil || i < 0 {
			return f, fmt.Errorf("%s must be a whole number", fieldLabels[n.field])
		}
		*n.dst = i
	}
	return f, nil
}

func (m formModel) submit() (formModel, tea.Cmd) {
	f, err := m.form()
	if err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}
	p := m.norm.IntoBackend(f)

	m.submitted = true
	b, id := m.backend, m.id
	return m, func() tea.Msg {
		var st *client.Status
		var err error
		if id == "" {
			st, err = b.CreatePlayer(context.Background(), p)
		} else {
			st, err = b.UpdatePlayer(context.Background(), id, p)
		}
		return playerSavedMsg{status: st, err: err}
	}
}

func (m formModel) View() string {
	var b strings.Builder
	title := "ADD PLAYER"
	if m.editing() {
		title = "EDIT PLAYER . " + m.id
	}
	b.WriteString("\n " + sectionHeaderStyle.Render(title) + "\n\n")
	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading..."))
		return b.String()
	}

	for i := formField(0); i < numFields; i++ {
		if m.editing() && i == fieldID {
			continue
		}
		focused := i == m.focus
		cursor := " "
		if focused {
			cursor = accentStyle.Render(">")
		}
		fmt.Fprintf(&b, "%s %s\n", cursor, renderInput(fmt.Sprintf("%-12s", fieldLabels[i]), m.fields[i], fieldPlaceholders[i], focused, false))
	}

	b.WriteString("\n")
	switch {
	case m.submitted:
		b.WriteString(" " + dimStyle.Render("saving..."))
	case m.statusMsg != "" && m.statusOK:
		b.WriteString(" " + okStyle.Render(m.statusMsg))
	case m.statusMsg != "":
		b.WriteString(" " + errorStyle.Render(m.statusMsg))
	}
	return b.String()
}
