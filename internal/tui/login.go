package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type loginDoneMsg struct {
	err error
}

type loginModel struct {
	backend   Backend
	username  string
	password  string
	focus     int // 0 username, 1 password
	submitted bool
	statusMsg string
}

func newLoginModel(b Backend) loginModel {
	return loginModel{backend: b}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitted = false
		if msg.err != nil {
			m.password = ""
			m.focus = 1
			if authFailed(msg.err) {
				m.statusMsg = "wrong username or password"
			} else {
				m.statusMsg = "login failed: " + msg.err.Error()
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitted {
			return m, nil
		}
		m.statusMsg = ""
		switch msg.String() {
		case "tab", "down", "shift+tab", "up":
			m.focus = 1 - m.focus
		case "enter":
			if m.focus == 0 {
				m.focus = 1
				return m, nil
			}
			return m.submit()
		default:
			if m.focus == 0 {
				m.username = editRune(m.username, msg.String())
			} else {
				m.password = editRune(m.password, msg.String())
			}
		}
	}
	return m, nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	user := strings.TrimSpace(m.username)
	if user == "" || m.password == "" {
		m.statusMsg = "username and password are required"
		return m, nil
	}
	m.submitted = true
	b, pass := m.backend, m.password
	return m, func() tea.Msg {
		return loginDoneMsg{err: b.Login(context.Background(), user, pass)}
	}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("\n " + sectionHeaderStyle.Render("ADMIN LOGIN") + "\n\n")
	fmt.Fprintf(&b, " %s\n", renderInput("username", m.username, "admin", m.focus == 0, false))
	fmt.Fprintf(&b, " %s\n\n", renderInput("password", m.password, "password", m.focus == 1, true))
	if m.submitted {
		b.WriteString(" " + dimStyle.Render("logging in..."))
	} else if m.statusMsg != "" {
		b.WriteString(" " + errorStyle.Render(m.statusMsg))
	}
	return b.String()
}
