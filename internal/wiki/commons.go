package wiki

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/naveenspark/courtside/pkg/client"
	"github.com/naveenspark/courtside/pkg/domain"
)

const (
	apiPath      = "/w/api.php"
	filePathPage = "/wiki/Special:FilePath/"
	filePrefix   = "File:"
	fileNS       = 6
)

// Commons queries Wikimedia Commons for images and their metadata.
type Commons struct {
	gw  *client.Gateway
	log *slog.Logger
}

// NewCommons creates a Commons resolver on gw.
func NewCommons(gw *client.Gateway, log *slog.Logger) *Commons {
	return &Commons{gw: gw, log: log}
}

// FileURL returns the canonical download URL of a Commons file.
func (c *Commons) FileURL(fileName string) string {
	return c.gw.BaseURL() + filePathPage + escapeFileName(strings.TrimPrefix(fileName, filePrefix))
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

// SearchImage finds a JPEG file matching query, skipping match-up photos
// whose title contains "vs". It returns nil when nothing suitable exists.
func (c *Commons) SearchImage(ctx context.Context, query string) (*domain.Image, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "search")
	params.Set("srsearch", query+" filetype:jpg")
	params.Set("srnamespace", strconv.Itoa(fileNS))
	params.Set("srlimit", strconv.Itoa(commonsLimit))

	var resp searchResponse
	if err := c.gw.Get(ctx, apiPath, params, &resp); err != nil {
		return nil, fmt.Errorf("wiki.SearchImage: %w", err)
	}

	for _, hit := range resp.Query.Search {
		if strings.Contains(hit.Title, excludedTitle) {
			continue
		}
		fileName := strings.TrimPrefix(hit.Title, filePrefix)
		return c.image(ctx, fileName)
	}
	c.log.Debug("wiki: no commons image", "query", query)
	return nil, nil
}

type metaValue struct {
	Value string `json:"value"`
}

type imageInfoResponse struct {
	Query struct {
		Pages map[string]struct {
			ImageInfo []struct {
				URL            string               `json:"url"`
				DescriptionURL string               `json:"descriptionurl"`
				ExtMetadata    map[string]metaValue `json:"extmetadata"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}

// Attribution fetches and cleans the metadata of fileName. It returns nil
// when Commons knows nothing about the file.
func (c *Commons) Attribution(ctx context.Context, fileName string) (*domain.Attribution, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("titles", filePrefix+strings.TrimPrefix(fileName, filePrefix))
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url|extmetadata")

	var resp imageInfoResponse
	if err := c.gw.Get(ctx, apiPath, params, &resp); err != nil {
		return nil, fmt.Errorf("wiki.Attribution: %w", err)
	}

	for _, page := range resp.Query.Pages {
		if len(page.ImageInfo) == 0 {
			continue
		}
		info := page.ImageInfo[0]
		meta := func(key string) string { return plainText(info.ExtMetadata[key].Value) }

		a := domain.Attribution{
			Title:       meta("ObjectName"),
			Author:      meta("Artist"),
			License:     meta("LicenseShortName"),
			LicenseURL:  meta("LicenseUrl"),
			Description: meta("ImageDescription"),
			FilePageURL: info.DescriptionURL,
		}
		if a.LicenseURL == "" {
			a.LicenseURL = "#"
		}
		a = CleanAttribution(a)
		return &a, nil
	}
	c.log.Debug("wiki: no attribution", "file", fileName)
	return nil, nil
}

func (c *Commons) image(ctx context.Context, fileName string) (*domain.Image, error) {
	attr, err := c.Attribution(ctx, fileName)
	if err != nil {
		return nil, err
	}
	return &domain.Image{URL: c.FileURL(fileName), FileName: fileName, Attribution: attr}, nil
}

// escapeFileName escapes a Commons file name for the Special:FilePath
// segment. Spaces become %20, not '+'.
func escapeFileName(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
