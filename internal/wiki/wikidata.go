package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strconv"

	"github.com/naveenspark/courtside/pkg/client"
	"github.com/naveenspark/courtside/pkg/domain"
)

// Wikidata resolves entities and their image claims.
type Wikidata struct {
	gw      *client.Gateway
	commons *Commons
	log     *slog.Logger
}

// NewWikidata creates a resolver; attribution is fetched through commons.
func NewWikidata(gw *client.Gateway, commons *Commons, log *slog.Logger) *Wikidata {
	return &Wikidata{gw: gw, commons: commons, log: log}
}

type claim struct {
	Mainsnak struct {
		Datavalue *struct {
			Value json.RawMessage `json:"value"`
		} `json:"datavalue"`
	} `json:"mainsnak"`
}

type claims map[Property][]claim

// str returns the first string value of p.
func (cs claims) str(p Property) string {
	for _, c := range cs[p] {
		if c.Mainsnak.Datavalue == nil {
			continue
		}
		var s string
		if json.Unmarshal(c.Mainsnak.Datavalue.Value, &s) == nil && s != "" {
			return s
		}
	}
	return ""
}

// entityIDs returns every item id referenced by p.
func (cs claims) entityIDs(p Property) []string {
	var ids []string
	for _, c := range cs[p] {
		if c.Mainsnak.Datavalue == nil {
			continue
		}
		var v struct {
			ID string `json:"id"`
		}
		if json.Unmarshal(c.Mainsnak.Datavalue.Value, &v) == nil && v.ID != "" {
			ids = append(ids, v.ID)
		}
	}
	return ids
}

// Image returns the P18 image of entityID with its attribution, or nil when
// the entity has none.
func (w *Wikidata) Image(ctx context.Context, entityID string) (*domain.Image, error) {
	params := url.Values{}
	params.Set("action", "wbgetclaims")
	params.Set("format", "json")
	params.Set("entity", entityID)
	params.Set("property", string(PropImage))

	var resp struct {
		Claims claims `json:"claims"`
	}
	if err := w.gw.Get(ctx, apiPath, params, &resp); err != nil {
		return nil, fmt.Errorf("wiki.Image: %w", err)
	}

	fileName := resp.Claims.str(PropImage)
	if fileName == "" {
		w.log.Debug("wiki: entity has no image", "entity", entityID)
		return nil, nil
	}
	img, err := w.commons.image(ctx, fileName)
	if err != nil {
		return nil, fmt.Errorf("wiki.Image: %w", err)
	}
	return img, nil
}

type searchHit struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Claims      claims `json:"claims"`
}

// SearchID finds the entity id of a tennis tournament called name. It
// returns "" when no candidate is tennis related.
func (w *Wikidata) SearchID(ctx context.Context, name string) (string, error) {
	params := url.Values{}
	params.Set("action", "wbsearchentities")
	params.Set("format", "json")
	params.Set("language", "en")
	params.Set("search", SearchQuery(name))
	params.Set("type", "item")
	params.Set("limit", strconv.Itoa(searchLimit))
	params.Set("props", "claims|descriptions")

	var resp struct {
		Search []searchHit `json:"search"`
	}
	if err := w.gw.Get(ctx, apiPath, params, &resp); err != nil {
		return "", fmt.Errorf("wiki.SearchID: %w", err)
	}

	for _, hit := range resp.Search {
		if isTennis(hit) {
			return hit.ID, nil
		}
	}
	w.log.Debug("wiki: no tennis entity", "name", name)
	return "", nil
}

func isTennis(hit searchHit) bool {
	for _, id := range hit.Claims.entityIDs(propInstanceOf) {
		if slices.Contains(tennisClasses, id) {
			return true
		}
	}
	return containsFold(hit.Description, sportKeyword)
}

// Logo returns the first image found on entityID following LogoProperties,
// or nil when none is set.
func (w *Wikidata) Logo(ctx context.Context, entityID string) (*domain.Image, error) {
	params := url.Values{}
	params.Set("action", "wbgetentities")
	params.Set("format", "json")
	params.Set("ids", entityID)
	params.Set("props", "claims")

	var resp struct {
		Entities map[string]struct {
			Claims claims `json:"claims"`
		} `json:"entities"`
	}
	if err := w.gw.Get(ctx, apiPath, params, &resp); err != nil {
		return nil, fmt.Errorf("wiki.Logo: %w", err)
	}

	entity := resp.Entities[entityID]
	for _, p := range LogoProperties {
		fileName := entity.Claims.str(p)
		if fileName == "" {
			continue
		}
		img, err := w.commons.image(ctx, fileName)
		if err != nil {
			return nil, fmt.Errorf("wiki.Logo: %w", err)
		}
		return img, nil
	}
	w.log.Debug("wiki: entity has no logo", "entity", entityID)
	return nil, nil
}
