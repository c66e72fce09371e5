// ABOUTME: Catalog client wraps the remote list and detail endpoints
// ABOUTME: Every failure leaves this package as a CatalogError with exactly one Kind

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bingefeed-api/core/domain"
	apperrors "bingefeed-api/core/errors"
	"bingefeed-api/core/interfaces"
	"bingefeed-api/core/merge"
)

const (
	// DefaultBaseURL is the public catalog endpoint
	DefaultBaseURL = "https://api.watchmode.com/v1"

	// DefaultRegion is the availability region sent with list requests
	DefaultRegion = "US"

	// PageSize is the number of titles requested per list page
	PageSize = 20

	listFields   = "id,title,plot_overview,poster,posterMedium,posterLarge,release_date,type,year"
	detailAppend = "plot_overview,poster,poster_url"
	redacted     = "REDACTED"

	operationSearch = "search"
	operationDetail = "detail"
)

// Config holds catalog connection settings
type Config struct {
	BaseURL string
	APIKey  string
	Region  string
}

// Client talks to the remote catalog through the injected HTTP transport
type Client struct {
	deps   interfaces.Dependencies
	config Config
	keys   merge.KeyGenerator
}

// NewClient creates a catalog client. A nil key generator uses the wall clock.
func NewClient(deps interfaces.Dependencies, config Config, keys merge.KeyGenerator) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.Region == "" {
		config.Region = DefaultRegion
	}
	if keys == nil {
		keys = merge.NewMonotonicKeys()
	}

	return &Client{
		deps:   deps,
		config: config,
		keys:   keys,
	}
}

// Search fetches one page of titles for a category in the given sort order
func (c *Client) Search(ctx context.Context, req interfaces.SearchRequest) (page *domain.FeedPage, err error) {
	if req.Page < 1 {
		return nil, apperrors.NewCatalogError(apperrors.KindInvalidRequest, operationSearch,
			fmt.Sprintf("page must be at least 1, got %d", req.Page), nil)
	}
	if !req.Category.IsValid() {
		return nil, apperrors.NewCatalogError(apperrors.KindInvalidRequest, operationSearch,
			fmt.Sprintf("unknown category %d", int(req.Category)), nil)
	}

	sort := req.Sort
	if sort == "" {
		sort = domain.SortPopularityDesc
	}

	query := url.Values{}
	query.Set("types", req.Category.WireType())
	query.Set("page", strconv.Itoa(req.Page))
	query.Set("limit", strconv.Itoa(PageSize))
	query.Set("sort_by", string(sort))
	query.Set("regions", c.config.Region)
	query.Set("fields", listFields)

	start := time.Now()
	defer func() {
		c.observe(operationSearch, req.Category.String(), err, time.Since(start))
	}()

	body, catalogErr := c.get(ctx, operationSearch, "/list-titles", query)
	if catalogErr != nil {
		return nil, c.fail(catalogErr)
	}

	var payload listResponse
	if decodeErr := json.Unmarshal(body, &payload); decodeErr != nil {
		return nil, c.fail(apperrors.NewCatalogError(apperrors.KindDecodeFailure, operationSearch, "malformed response body", decodeErr))
	}

	page, decodeErr := payload.toDomain()
	if decodeErr != nil {
		return nil, c.fail(apperrors.NewCatalogError(apperrors.KindDecodeFailure, operationSearch, decodeErr.Error(), nil))
	}

	for i := range page.Items {
		page.Items[i].DisplayKey = c.keys.Next(page.Items[i].ID, "")
	}

	return page, nil
}

// FetchDetail fetches the extended record of a single title
func (c *Client) FetchDetail(ctx context.Context, id int) (detail *domain.TitleDetail, err error) {
	if id <= 0 {
		return nil, apperrors.NewCatalogError(apperrors.KindInvalidRequest, operationDetail,
			fmt.Sprintf("title id must be positive, got %d", id), nil)
	}

	query := url.Values{}
	query.Set("append_to_response", detailAppend)

	start := time.Now()
	defer func() {
		c.observe(operationDetail, "", err, time.Since(start))
	}()

	body, catalogErr := c.get(ctx, operationDetail, "/title/"+strconv.Itoa(id)+"/details", query)
	if catalogErr != nil {
		return nil, c.fail(catalogErr)
	}

	var payload detailRecord
	if decodeErr := json.Unmarshal(body, &payload); decodeErr != nil {
		return nil, c.fail(apperrors.NewCatalogError(apperrors.KindDecodeFailure, operationDetail, "malformed response body", decodeErr))
	}

	detail, decodeErr := payload.toDomain()
	if decodeErr != nil {
		return nil, c.fail(apperrors.NewCatalogError(apperrors.KindDecodeFailure, operationDetail, decodeErr.Error(), nil))
	}
	detail.DisplayKey = c.keys.Next(detail.ID, "")

	return detail, nil
}

// get performs one request and returns the body of a 200 response
func (c *Client) get(ctx context.Context, operation, path string, query url.Values) ([]byte, *apperrors.CatalogError) {
	if c.deps.HTTPClient == nil {
		return nil, apperrors.NewCatalogError(apperrors.KindUnknown, operation, "HTTP client not configured", nil)
	}

	if c.deps.Logger != nil {
		c.deps.Logger.Debug("Catalog request", map[string]interface{}{
			"operation": operation,
			"url":       c.buildURL(path, query, redacted),
		})
	}

	resp, err := c.deps.HTTPClient.Get(ctx, c.buildURL(path, query, c.config.APIKey))
	if err != nil {
		return nil, classifyTransport(ctx, operation, err)
	}
	defer resp.Body().Close()

	if kind, detail, ok := classifyStatus(resp.StatusCode()); !ok {
		catalogErr := apperrors.NewCatalogError(kind, operation, detail, nil)
		catalogErr.StatusCode = resp.StatusCode()
		return nil, catalogErr
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, classifyTransport(ctx, operation, err)
	}

	return body, nil
}

func (c *Client) buildURL(path string, query url.Values, apiKey string) string {
	values := url.Values{}
	for key, v := range query {
		values[key] = v
	}
	values.Set("apiKey", apiKey)
	return c.config.BaseURL + path + "?" + values.Encode()
}

func (c *Client) observe(operation, category string, err error, duration time.Duration) {
	if c.deps.Metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = apperrors.KindOf(err).String()
	}
	c.deps.Metrics.ObserveFetch(operation, category, outcome, duration)
}

func (c *Client) fail(err *apperrors.CatalogError) error {
	if c.deps.Logger != nil {
		fields := map[string]interface{}{
			"operation": err.Operation,
			"kind":      err.Kind.String(),
			"error":     err.Error(),
		}
		if err.StatusCode != 0 {
			fields["status"] = err.StatusCode
		}
		c.deps.Logger.Warn("Catalog request failed", fields)
	}
	return err
}

// classifyStatus maps an HTTP status to a Kind. ok is true only for 200.
func classifyStatus(status int) (kind apperrors.Kind, detail string, ok bool) {
	switch {
	case status == http.StatusOK:
		return apperrors.KindUnknown, "", true
	case status == http.StatusTooManyRequests:
		return apperrors.KindRateLimited, "", false
	case status >= 400 && status <= 499:
		return apperrors.KindInvalidRequest, fmt.Sprintf("Server returned status code %d", status), false
	case status >= 500 && status <= 599:
		return apperrors.KindServerFailure, fmt.Sprintf("Server returned status code %d", status), false
	default:
		return apperrors.KindUnknown, fmt.Sprintf("Unexpected status code %d", status), false
	}
}

// classifyTransport maps a failure that produced no usable response
func classifyTransport(ctx context.Context, operation string, err error) *apperrors.CatalogError {
	err = redactURLError(err)
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return apperrors.NewCatalogError(apperrors.KindUnknown, operation, "request canceled", err)
	}
	return apperrors.NewCatalogError(apperrors.KindTransportFailure, operation, "", err)
}

// redactURLError hides the API key inside a transport error's request URL
func redactURLError(err error) error {
	urlErr, ok := err.(*url.Error)
	if !ok {
		return err
	}
	parsed, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		return &url.Error{Op: urlErr.Op, URL: redacted, Err: urlErr.Err}
	}
	query := parsed.Query()
	if query.Has("apiKey") {
		query.Set("apiKey", redacted)
		parsed.RawQuery = query.Encode()
	}
	return &url.Error{Op: urlErr.Op, URL: parsed.String(), Err: urlErr.Err}
}
