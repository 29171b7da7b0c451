package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang-jwt/jwt/v5"

	"github.com/naveenspark/courtside/internal/auth"
	"github.com/naveenspark/courtside/internal/clock"
	"github.com/naveenspark/courtside/internal/logger"
	"github.com/naveenspark/courtside/internal/router"
	"github.com/naveenspark/courtside/pkg/client"
	"github.com/naveenspark/courtside/pkg/domain"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// fakeBackend records writes and serves canned reads.
type fakeBackend struct {
	store    *auth.MemoryStore
	loginTok string
	loginErr error
	logoutErr error
	saveErr  error
	edit     *domain.Player
	created  []domain.Player
	updated  map[string]domain.Player
}

func newFakeBackend(token string) *fakeBackend {
	return &fakeBackend{store: auth.NewMemoryStore(token), updated: map[string]domain.Player{}}
}

func (f *fakeBackend) Login(_ context.Context, user, pass string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	return f.store.Set(f.loginTok)
}

func (f *fakeBackend) Logout() error {
	if f.logoutErr != nil {
		return f.logoutErr
	}
	return f.store.Clear()
}
func (f *fakeBackend) IsLoggedIn() bool { return f.store.IsPresent() }

func (f *fakeBackend) ListPlayers(context.Context, int, int, string) (*domain.PlayerPage, error) {
	return &domain.PlayerPage{}, nil
}

func (f *fakeBackend) GetPlayer(context.Context, string) (*domain.PlayerDetail, error) {
	return &domain.PlayerDetail{}, nil
}

func (f *fakeBackend) GetPlayerForEdit(context.Context, string) (*domain.Player, error) {
	if f.edit == nil {
		return nil, errors.New("not found")
	}
	return f.edit, nil
}

func (f *fakeBackend) CreatePlayer(_ context.Context, p domain.Player) (*client.Status, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.created = append(f.created, p)
	return &client.Status{Status: "success", Message: "Player created"}, nil
}

func (f *fakeBackend) UpdatePlayer(_ context.Context, id string, p domain.Player) (*client.Status, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.updated[id] = p
	return &client.Status{Status: "success", Message: "Player updated"}, nil
}

func (f *fakeBackend) Rankings(context.Context, int, int, int) (*domain.RankingPage, error) {
	return &domain.RankingPage{}, nil
}

func (f *fakeBackend) TournamentsByLevel(context.Context, string, int, int) (*domain.TournamentPage, error) {
	return &domain.TournamentPage{}, nil
}

func (f *fakeBackend) TournamentWinners(context.Context, string, int, int) (*domain.EditionPage, error) {
	return &domain.EditionPage{}, nil
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": testNow.Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func newTestApp(t *testing.T, b *fakeBackend) App {
	t.Helper()
	log := logger.Discard()
	guard := auth.NewGuard(b.store, clock.NewFixed(testNow), log)
	a := NewApp(Deps{
		Backend: b,
		Router:  router.New(router.NewTable(router.Routes), guard),
		Log:     log,
	})
	a.width = 100
	a.height = 40
	return a
}

// key builds a KeyMsg for a named key or a single rune.
func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// navMsg runs cmd and returns the navigateMsg it produced.
func navMsg(t *testing.T, cmd tea.Cmd) navigateMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	raw := cmd()
	msg, ok := raw.(navigateMsg)
	if !ok {
		t.Fatalf("expected navigateMsg, got %T", raw)
	}
	return msg
}

// visit navigates the app to path and returns the resulting model.
func visit(t *testing.T, a App, path string) App {
	t.Helper()
	model, _ := a.Update(navigateMsg{path: path})
	return model.(App)
}
