package router

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/naveenspark/courtside/internal/auth"
)

// ErrNoRoute is returned for paths no route matches.
var ErrNoRoute = errors.New("router: no route")

// Resolution is where a navigation ended up.
type Resolution struct {
	Route  Route
	Params Params
	Query  url.Values
	// Path is the path actually resolved, which differs from the requested
	// one when the guard redirected to the login view.
	Path string
	// Redirect is the path to resume after login; empty unless the guard
	// denied the navigation.
	Redirect string
}

// Router resolves paths through the route table and the auth guard.
type Router struct {
	table *Table
	guard *auth.Guard
}

// New creates a Router.
func New(table *Table, guard *auth.Guard) *Router {
	return &Router{table: table, guard: guard}
}

// Navigate resolves fullPath (path plus optional query). A protected route
// without a valid token resolves to the login view instead.
func (r *Router) Navigate(fullPath string) (Resolution, error) {
	u, err := url.Parse(fullPath)
	if err != nil {
		return Resolution{}, fmt.Errorf("router.Navigate: %w", err)
	}
	route, params, ok := r.table.Match(u.Path)
	if !ok {
		return Resolution{}, fmt.Errorf("router.Navigate: %w: %s", ErrNoRoute, u.Path)
	}

	d := r.guard.Check(route.RequiresAuth, fullPath)
	if d.Allow {
		return Resolution{Route: route, Params: params, Query: u.Query(), Path: u.Path}, nil
	}

	login, err := url.Parse(d.Redirect)
	if err != nil {
		return Resolution{}, fmt.Errorf("router.Navigate: %w", err)
	}
	lr, lparams, ok := r.table.Match(login.Path)
	if !ok {
		return Resolution{}, fmt.Errorf("router.Navigate: %w: %s", ErrNoRoute, login.Path)
	}
	q := login.Query()
	return Resolution{Route: lr, Params: lparams, Query: q, Path: login.Path, Redirect: q.Get("redirect")}, nil
}

// Continue returns the path to visit after a successful login on res, or "/"
// when there is nothing to resume.
func Continue(res Resolution) string {
	if res.Redirect != "" {
		return res.Redirect
	}
	if next := res.Query.Get("redirect"); next != "" {
		return next
	}
	return "/"
}
