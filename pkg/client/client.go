package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/naveenspark/courtside/pkg/domain"
)

// TokenStore is the credential store used by Login and Logout.
type TokenStore interface {
	TokenSource
	Set(token string) error
	Clear() error
	IsPresent() bool
}

// Client is the tennis backend API client. Reads go through the plain
// gateway; writes and edit lookups go through the authenticated one.
type Client struct {
	plain *Gateway
	auth  *Gateway
	store TokenStore
}

// New creates a backend client.
func New(plain, auth *Gateway, store TokenStore) *Client {
	return &Client{plain: plain, auth: auth, store: store}
}

// Status is the acknowledgement returned by mutating endpoints.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Login exchanges credentials for a token and stores it.
func (c *Client) Login(ctx context.Context, username, password string) error {
	req := map[string]string{"username": username, "password": password}
	var resp struct {
		Status
		AccessToken string `json:"access_token"`
	}
	if err := c.plain.Do(ctx, http.MethodPost, "/auth", nil, req, &resp); err != nil {
		return fmt.Errorf("client.Login: %w", err)
	}
	if resp.AccessToken == "" {
		return errors.New("client.Login: response carried no access_token")
	}
	if err := c.store.Set(resp.AccessToken); err != nil {
		return fmt.Errorf("client.Login: store token: %w", err)
	}
	return nil
}

// Logout forgets the stored token.
func (c *Client) Logout() error {
	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("client.Logout: %w", err)
	}
	return nil
}

// IsLoggedIn reports whether a token is stored. It does not check expiry.
func (c *Client) IsLoggedIn() bool {
	return c.store.IsPresent()
}

// ListPlayers returns a page of players, optionally filtered by last name.
func (c *Client) ListPlayers(ctx context.Context, page, perPage int, lastName string) (*domain.PlayerPage, error) {
	params := pageParams(page, perPage)
	if lastName != "" {
		params.Set("search_name_last", lastName)
	}

	var p domain.PlayerPage
	if err := c.plain.Get(ctx, "/players", params, &p); err != nil {
		return nil, fmt.Errorf("client.ListPlayers: %w", err)
	}
	return &p, nil
}

// SearchPlayerNames finds players whose full name matches fullname.
func (c *Client) SearchPlayerNames(ctx context.Context, fullname string) ([]domain.PlayerName, error) {
	params := url.Values{}
	params.Set("search_fullname", fullname)

	var resp struct {
		Players []domain.PlayerName `json:"players"`
	}
	if err := c.plain.Get(ctx, "/players/names", params, &resp); err != nil {
		return nil, fmt.Errorf("client.SearchPlayerNames: %w", err)
	}
	return resp.Players, nil
}

// GetPlayer fetches a player with career statistics.
func (c *Client) GetPlayer(ctx context.Context, id string) (*domain.PlayerDetail, error) {
	var resp struct {
		Player domain.PlayerDetail `json:"player"`
	}
	if err := c.plain.Get(ctx, "/players/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("client.GetPlayer: %w", err)
	}
	return &resp.Player, nil
}

// GetPlayerForEdit fetches the raw stored record of a player.
func (c *Client) GetPlayerForEdit(ctx context.Context, id string) (*domain.Player, error) {
	var resp struct {
		Player domain.Player `json:"player"`
	}
	if err := c.auth.Get(ctx, "/players/edit/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("client.GetPlayerForEdit: %w", err)
	}
	return &resp.Player, nil
}

// CreatePlayer stores a new player.
func (c *Client) CreatePlayer(ctx context.Context, p domain.Player) (*Status, error) {
	var st Status
	if err := c.auth.Do(ctx, http.MethodPost, "/players", nil, p, &st); err != nil {
		return nil, fmt.Errorf("client.CreatePlayer: %w", err)
	}
	return &st, nil
}

// UpdatePlayer replaces the stored record of player id.
func (c *Client) UpdatePlayer(ctx context.Context, id string, p domain.Player) (*Status, error) {
	var st Status
	if err := c.auth.Do(ctx, http.MethodPut, "/players/"+url.PathEscape(id), nil, p, &st); err != nil {
		return nil, fmt.Errorf("client.UpdatePlayer: %w", err)
	}
	return &st, nil
}

// DeletePlayer removes player id.
func (c *Client) DeletePlayer(ctx context.Context, id string) (*Status, error) {
	var st Status
	if err := c.auth.Do(ctx, http.MethodDelete, "/players/"+url.PathEscape(id), nil, nil, &st); err != nil {
		return nil, fmt.Errorf("client.DeletePlayer: %w", err)
	}
	return &st, nil
}

// Rankings returns a page of the end-of-year ranking for year.
func (c *Client) Rankings(ctx context.Context, year, page, perPage int) (*domain.RankingPage, error) {
	var r domain.RankingPage
	if err := c.plain.Get(ctx, "/rankings/"+strconv.Itoa(year), pageParams(page, perPage), &r); err != nil {
		return nil, fmt.Errorf("client.Rankings: %w", err)
	}
	return &r, nil
}

// TournamentsByLevel lists the tournaments of a level slug.
func (c *Client) TournamentsByLevel(ctx context.Context, level string, page, perPage int) (*domain.TournamentPage, error) {
	var t domain.TournamentPage
	if err := c.plain.Get(ctx, "/tournaments/level/"+url.PathEscape(level), pageParams(page, perPage), &t); err != nil {
		return nil, fmt.Errorf("client.TournamentsByLevel: %w", err)
	}
	return &t, nil
}

// TournamentWinners lists the winners of a tournament slug.
func (c *Client) TournamentWinners(ctx context.Context, tournament string, page, perPage int) (*domain.EditionPage, error) {
	var e domain.EditionPage
	if err := c.plain.Get(ctx, "/tournaments/winners/"+url.PathEscape(tournament), pageParams(page, perPage), &e); err != nil {
		return nil, fmt.Errorf("client.TournamentWinners: %w", err)
	}
	return &e, nil
}

// TitlesByLevel ranks players by titles won at a level slug.
func (c *Client) TitlesByLevel(ctx context.Context, level string, page, perPage int) (*domain.TitleHolderPage, error) {
	var h domain.TitleHolderPage
	if err := c.plain.Get(ctx, "/tournaments/titles/level/"+url.PathEscape(level), pageParams(page, perPage), &h); err != nil {
		return nil, fmt.Errorf("client.TitlesByLevel: %w", err)
	}
	return &h, nil
}

func pageParams(page, perPage int) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		params.Set("per_page", strconv.Itoa(perPage))
	}
	return params
}
