// Package client is the access layer for the remote storefront API. Listing
// and reference calls follow a fail-soft contract: network and shape failures
// are logged and absorbed into well-formed empty fallbacks, never returned to
// the caller. Listing pages must degrade, not crash.
package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/eyobt/suq-storefront/internal/catalog"
	"github.com/eyobt/suq-storefront/internal/taxonomy"
)

// Param is a single query parameter. Parameters are carried as a slice
// because their insertion order is preserved in the built URL.
type Param struct {
	Key   string
	Value string
}

// Options configures optional Client dependencies.
type Options struct {
	// HTTPClient performs the requests. Defaults to a client without a
	// timeout: a hanging request blocks its caller until the context is
	// canceled. In app wiring the transport is otelhttp-instrumented.
	HTTPClient *http.Client
}

// Client talks to the storefront API rooted at a configured base endpoint.
type Client struct {
	base string
	http *http.Client
}

// New creates a Client for the given base endpoint.
func New(base string, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: httpClient,
	}
}

// Base returns the configured API base endpoint.
func (c *Client) Base() string { return c.base }

// BuildURL concatenates the base endpoint and path, then appends each
// parameter with a non-empty value in insertion order.
func (c *Client) BuildURL(endpoint string, params ...Param) string {
	var b strings.Builder
	b.WriteString(c.base)
	b.WriteString(endpoint)

	sep := byte('?')
	for _, p := range params {
		if p.Value == "" {
			continue
		}
		b.WriteByte(sep)
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
		sep = '&'
	}
	return b.String()
}

// ProductFilter holds the optional listing filters. Zero values mean "not
// set" and are omitted from the request.
type ProductFilter struct {
	Page        int
	PageSize    int
	Category    string
	SubCategory string
	MinPrice    decimal.NullDecimal
	MaxPrice    decimal.NullDecimal
	Search      string
	// CreatedAt and Price carry sort orders ("asc"/"desc") from the sort
	// options table.
	CreatedAt string
	Price     string
}

func (f ProductFilter) params() []Param {
	return []Param{
		{Key: "page", Value: positiveInt(f.Page)},
		{Key: "pageSize", Value: positiveInt(f.PageSize)},
		{Key: "category", Value: f.Category},
		{Key: "sub_category", Value: f.SubCategory},
		{Key: "min_price", Value: nullDecimal(f.MinPrice)},
		{Key: "max_price", Value: nullDecimal(f.MaxPrice)},
		{Key: "search", Value: f.Search},
		{Key: "created_at", Value: f.CreatedAt},
		{Key: "price", Value: f.Price},
	}
}

func positiveInt(v int) string {
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func nullDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// ProductPage is the pagination envelope of the listing endpoint. Items are
// kept raw for the normalizer.
type ProductPage struct {
	Items      []json.RawMessage
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// EmptyPage is the fixed zero-result fallback envelope.
func EmptyPage() ProductPage {
	return ProductPage{
		Items:    []json.RawMessage{},
		Page:     1,
		PageSize: 8,
	}
}

// FetchProducts lists products matching the filter. On any network failure
// or structurally invalid response it returns the zero-result fallback
// envelope instead of an error.
func (c *Client) FetchProducts(ctx context.Context, filter ProductFilter) ProductPage {
	body, err := c.get(ctx, c.BuildURL("/product", filter.params()...))
	if err != nil {
		zctx.From(ctx).Warn("Fetch products failed, serving empty page", zap.Error(err))
		return EmptyPage()
	}

	page, err := decodeProductPage(body)
	if err != nil {
		zctx.From(ctx).Warn("Product listing response malformed, serving empty page", zap.Error(err))
		return EmptyPage()
	}
	return page
}

// FetchProductByID fetches a single product by id. It returns nil both when
// the product does not exist and when the response is malformed; the caller
// cannot distinguish the two.
func (c *Client) FetchProductByID(ctx context.Context, id string) *catalog.ProductDetail {
	body, err := c.get(ctx, c.BuildURL("/product/"+url.PathEscape(id)))
	if err != nil {
		zctx.From(ctx).Warn("Fetch product failed", zap.String("id", id), zap.Error(err))
		return nil
	}

	// The payload is trusted only if it carries an id field.
	var probe struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(body, &probe); err != nil || probe.ID == nil {
		zctx.From(ctx).Warn("Product detail response malformed", zap.String("id", id))
		return nil
	}

	detail := &catalog.ProductDetail{}
	if err := json.Unmarshal(body, detail); err != nil {
		zctx.From(ctx).Warn("Product detail decode failed", zap.String("id", id), zap.Error(err))
		return nil
	}
	return detail
}

// FetchCategories fetches the category reference list, empty on any failure.
func (c *Client) FetchCategories(ctx context.Context) []taxonomy.Category {
	body, err := c.get(ctx, c.BuildURL("/categories"))
	if err != nil {
		zctx.From(ctx).Warn("Fetch categories failed", zap.Error(err))
		return []taxonomy.Category{}
	}
	var out []taxonomy.Category
	if err := json.Unmarshal(body, &out); err != nil {
		zctx.From(ctx).Warn("Categories response malformed", zap.Error(err))
		return []taxonomy.Category{}
	}
	return out
}

// FetchSubCategories fetches the sub-categories of a category by its
// canonical name, empty on any failure.
func (c *Client) FetchSubCategories(ctx context.Context, categoryName string) []taxonomy.SubCategory {
	body, err := c.get(ctx, c.BuildURL("/sub-categories/category-name/"+url.PathEscape(categoryName)))
	if err != nil {
		zctx.From(ctx).Warn("Fetch sub-categories failed",
			zap.String("category", categoryName), zap.Error(err))
		return []taxonomy.SubCategory{}
	}
	var out []taxonomy.SubCategory
	if err := json.Unmarshal(body, &out); err != nil {
		zctx.From(ctx).Warn("Sub-categories response malformed",
			zap.String("category", categoryName), zap.Error(err))
		return []taxonomy.SubCategory{}
	}
	return out
}

// get performs an instrumented GET and returns the response body. Non-2xx
// statuses are errors; the fail-soft translation happens in the callers.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	return body, nil
}
