// Package ioapi implements the iNaturalist API client on top of resty.
//
// Every network call is followed by a fixed throttle delay to respect the
// API's request-rate budget; responses served from the local cache skip
// both the network and the delay.
package ioapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/inatrank/internal/iocache"
	"github.com/gnames/inatrank/pkg/config"
	"github.com/gnames/inatrank/pkg/inat"
	"github.com/go-resty/resty/v2"
)

type client struct {
	http     *resty.Client
	cache    *iocache.Cache
	throttle time.Duration
	pageSize int
}

// New creates an inat.Client. The cache may be nil, disabling response
// caching for the run.
func New(cfg *config.Config, cache *iocache.Cache) inat.Client {
	http := resty.New()
	http.SetBaseURL(cfg.API.BaseURL)
	http.SetHeader("User-Agent", "inatrank")
	http.SetHeader("Accept", "application/json")

	return &client{
		http:     http,
		cache:    cache,
		throttle: cfg.API.Throttle,
		pageSize: cfg.API.PageSize,
	}
}

func (c *client) Observations(
	ctx context.Context, params inat.SearchParams,
) (*inat.ObservationsPage, error) {
	query := searchQuery(params)
	if params.PerPage == 0 {
		query.Set("per_page", strconv.Itoa(c.pageSize))
	}

	body, err := c.get(ctx, "/observations", query)
	if err != nil {
		return nil, err
	}

	var res inat.ObservationsPage
	enc := gnfmt.GNjson{}
	if err = enc.Decode(body, &res); err != nil {
		return nil, DecodeError("/observations", err)
	}
	return &res, nil
}

func (c *client) AllObservations(
	ctx context.Context, params inat.SearchParams,
) ([]inat.Observation, error) {
	var res []inat.Observation

	params.Page = 1
	for {
		page, err := c.Observations(ctx, params)
		if err != nil {
			return nil, err
		}
		res = append(res, page.Results...)

		slog.Debug("Fetched observations page",
			"page", params.Page,
			"fetched", len(res),
			"total", page.TotalResults,
		)

		if len(page.Results) == 0 || len(res) >= page.TotalResults {
			return res, nil
		}
		params.Page++
	}
}

func (c *client) ObservationsCount(
	ctx context.Context, params inat.SearchParams,
) (int, error) {
	query := searchQuery(params)
	// only the envelope is needed
	query.Set("per_page", "0")

	body, err := c.get(ctx, "/observations", query)
	if err != nil {
		return 0, err
	}

	var res inat.CountResponse
	enc := gnfmt.GNjson{}
	if err = enc.Decode(body, &res); err != nil {
		return 0, DecodeError("/observations", err)
	}
	return res.TotalResults, nil
}

func (c *client) IdentificationsCount(
	ctx context.Context, params inat.SearchParams,
) (int, error) {
	query := url.Values{}
	if params.UserID != 0 {
		query.Set("user_id", strconv.FormatInt(params.UserID, 10))
	}
	if params.IconicTaxonID != 0 {
		query.Set("iconic_taxon_id",
			strconv.FormatInt(params.IconicTaxonID, 10))
	}
	query.Set("per_page", "0")

	body, err := c.get(ctx, "/identifications", query)
	if err != nil {
		return 0, err
	}

	var res inat.CountResponse
	enc := gnfmt.GNjson{}
	if err = enc.Decode(body, &res); err != nil {
		return 0, DecodeError("/identifications", err)
	}
	return res.TotalResults, nil
}

func (c *client) UserByID(
	ctx context.Context, userID int64,
) (*inat.User, error) {
	path := fmt.Sprintf("/users/%d", userID)

	body, err := c.get(ctx, path, url.Values{})
	if err != nil {
		return nil, err
	}

	var res inat.UserResponse
	enc := gnfmt.GNjson{}
	if err = enc.Decode(body, &res); err != nil {
		return nil, DecodeError(path, err)
	}
	if len(res.Results) == 0 {
		return nil, StatusError(path, 404)
	}
	return &res.Results[0], nil
}

// get performs a cached, throttled GET request and returns the raw body.
func (c *client) get(
	ctx context.Context, path string, query url.Values,
) ([]byte, error) {
	key := cacheKey(c.http.BaseURL, path, query)

	if c.cache != nil {
		body, hit, err := c.cache.Get(key)
		if err != nil {
			return nil, err
		}
		if hit {
			slog.Debug("HTTP cache hit", "key", key)
			return body, nil
		}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(path)
	if err != nil {
		return nil, RequestError(path, err)
	}
	if resp.IsError() {
		return nil, StatusError(path, resp.StatusCode())
	}
	body := resp.Body()

	if c.cache != nil {
		if err = c.cache.Put(key, body); err != nil {
			return nil, err
		}
	}

	if err = wait(ctx, c.throttle); err != nil {
		return nil, err
	}
	return body, nil
}

// searchQuery converts SearchParams to URL query values, skipping
// zero-valued fields.
func searchQuery(params inat.SearchParams) url.Values {
	query := url.Values{}
	if params.IconicTaxa != "" {
		query.Set("iconic_taxa", params.IconicTaxa)
	}
	if params.QualityGrade != "" {
		query.Set("quality_grade", params.QualityGrade)
	}
	if params.UserID != 0 {
		query.Set("user_id", strconv.FormatInt(params.UserID, 10))
	}
	if len(params.IDs) > 0 {
		ids := make([]string, len(params.IDs))
		for i, id := range params.IDs {
			ids[i] = strconv.FormatInt(id, 10)
		}
		query.Set("id", strings.Join(ids, ","))
	}
	if !params.ObservedSince.IsZero() {
		query.Set("d1", params.ObservedSince.Format("2006-01-02"))
	}
	if !params.UpdatedSince.IsZero() {
		query.Set("updated_since",
			params.UpdatedSince.Format(time.RFC3339))
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(params.PerPage))
	}
	return query
}

func cacheKey(baseURL, path string, query url.Values) string {
	return "GET " + baseURL + path + "?" + query.Encode()
}

// wait sleeps for the throttle delay, honoring cancellation.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
