// Package router maps application paths to views and runs the auth guard on
// every navigation.
package router

import (
	"strings"
)

// View identifies a screen.
type View string

// Views.
const (
	ViewHome        View = "home"
	ViewPlayers     View = "players"
	ViewAddPlayer   View = "add-player"
	ViewEditPlayer  View = "edit-player"
	ViewPlayer      View = "player"
	ViewRankings    View = "rankings"
	ViewTournaments View = "tournaments"
	ViewNews        View = "news"
	ViewLogin       View = "login"
)

// Route binds a path pattern to a view. Pattern segments starting with ':'
// capture a parameter; a trailing '?' makes it optional.
type Route struct {
	Pattern      string
	View         View
	RequiresAuth bool
}

// Routes is the application route table.
var Routes = []Route{
	{Pattern: "/", View: ViewHome},
	{Pattern: "/players/:lastname?", View: ViewPlayers},
	{Pattern: "/add-player", View: ViewAddPlayer, RequiresAuth: true},
	{Pattern: "/edit-player/:id", View: ViewEditPlayer, RequiresAuth: true},
	{Pattern: "/player/:id", View: ViewPlayer},
	{Pattern: "/rankings/:year?", View: ViewRankings},
	{Pattern: "/tournaments/:level?", View: ViewTournaments},
	{Pattern: "/news", View: ViewNews},
	{Pattern: "/login", View: ViewLogin},
}

// Params holds captured path parameters.
type Params map[string]string

// Table matches paths against an ordered list of routes.
type Table struct {
	routes []Route
}

// NewTable builds a table; the first matching route wins.
func NewTable(routes []Route) *Table {
	return &Table{routes: routes}
}

// Match finds the route for path (without query string).
func (t *Table) Match(path string) (Route, Params, bool) {
	segs := split(path)
	for _, r := range t.routes {
		if params, ok := match(split(r.Pattern), segs); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

// Lookup returns the route registered for view.
func (t *Table) Lookup(v View) (Route, bool) {
	for _, r := range t.routes {
		if r.View == v {
			return r, true
		}
	}
	return Route{}, false
}

func match(pattern, segs []string) (Params, bool) {
	params := Params{}
	for i, p := range pattern {
		optional := strings.HasSuffix(p, "?")
		if i >= len(segs) {
			if optional && strings.HasPrefix(p, ":") {
				continue
			}
			return nil, false
		}
		if strings.HasPrefix(p, ":") {
			params[strings.TrimSuffix(p[1:], "?")] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	if len(segs) > len(pattern) {
		return nil, false
	}
	return params, true
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
