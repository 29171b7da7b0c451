package auth

import (
	"errors"
	"log/slog"
	"net/url"

	"github.com/naveenspark/courtside/internal/clock"
)

// LoginPath is where denied navigations are sent.
const LoginPath = "/login"

// Reasons reported in a Decision.
const (
	ReasonPublic    = "public"
	ReasonValid     = "valid"
	ReasonNoToken   = "no_token"
	ReasonExpired   = "expired"
	ReasonMalformed = "malformed"
)

// Decision is the outcome of a single navigation check.
type Decision struct {
	Allow bool
	// Redirect is the login location carrying the requested path. Empty
	// when Allow is true.
	Redirect string
	Reason   string
}

// Guard blocks protected routes unless an unexpired token is stored.
//
// Expiry is read from the token itself without signature verification. A
// forged token with a future exp passes the guard; only the backend can
// reject it.
type Guard struct {
	store Store
	clock clock.Clock
	log   *slog.Logger
}

// NewGuard builds a Guard.
func NewGuard(store Store, clk clock.Clock, log *slog.Logger) *Guard {
	return &Guard{store: store, clock: clk, log: log}
}

// Check decides whether navigation to fullPath may proceed. Expired or
// malformed tokens are cleared from the store.
func (g *Guard) Check(requiresAuth bool, fullPath string) Decision {
	if !requiresAuth {
		return Decision{Allow: true, Reason: ReasonPublic}
	}

	token, ok := g.store.Get()
	if !ok {
		return g.deny(fullPath, ReasonNoToken)
	}

	exp, err := Expiry(token)
	switch {
	case errors.Is(err, ErrMalformedToken):
		g.clear()
		g.log.Warn("auth: rejecting token", "reason", ReasonMalformed, "path", fullPath, "error", err)
		return g.deny(fullPath, ReasonMalformed)
	case !exp.After(g.clock.Now()):
		g.clear()
		g.log.Warn("auth: rejecting token", "reason", ReasonExpired, "path", fullPath, "expired_at", exp)
		return g.deny(fullPath, ReasonExpired)
	}
	return Decision{Allow: true, Reason: ReasonValid}
}

func (g *Guard) deny(fullPath, reason string) Decision {
	return Decision{Redirect: LoginRedirect(fullPath), Reason: reason}
}

func (g *Guard) clear() {
	if err := g.store.Clear(); err != nil {
		g.log.Error("auth: clear token", "error", err)
	}
}

// LoginRedirect returns the login location that resumes at fullPath.
func LoginRedirect(fullPath string) string {
	return LoginPath + "?redirect=" + url.QueryEscape(fullPath)
}
