package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/Rifnaz/WLL-Product-App/models"
)

var (
	// ErrUpstreamUnavailable covers transport failures, timeouts and
	// non-success status codes from the catalog API.
	ErrUpstreamUnavailable = errors.New("catalog upstream unavailable")

	// ErrUpstreamMalformed means the upstream answered but the body did not
	// match the expected shape.
	ErrUpstreamMalformed = errors.New("catalog upstream returned malformed response")
)

// Client talks to the external product catalog API (dummyjson-shaped). Every
// call is one fresh round trip: no retries, no caching.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// productListEnvelope matches the upstream list responses: {"products": [...]}.
type productListEnvelope struct {
	Products []models.Product `json:"products"`
}

// FetchAll returns the full product list.
func (c *Client) FetchAll(ctx context.Context) ([]models.Product, error) {
	return c.fetchList(ctx, "/products")
}

// FetchByCategory returns the products of one upstream category.
func (c *Client) FetchByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return c.fetchList(ctx, "/products/category/"+url.PathEscape(category))
}

func (c *Client) fetchList(ctx context.Context, path string) ([]models.Product, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var envelope productListEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.log.Warn("catalog list response undecodable", zap.String("path", path), zap.Error(err))
		return nil, ErrUpstreamMalformed
	}
	return envelope.Products, nil
}

// FetchCategories returns the upstream category name list.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, "/products/category-list")
	if err != nil {
		return nil, err
	}

	var categories []string
	if err := json.Unmarshal(body, &categories); err != nil {
		c.log.Warn("catalog category list undecodable", zap.Error(err))
		return nil, ErrUpstreamMalformed
	}
	return categories, nil
}

// FetchByID returns a single product. Missing products surface as
// ErrUpstreamUnavailable, same as any other non-success answer; the upstream
// does not distinguish them in a way worth modeling here.
func (c *Client) FetchByID(ctx context.Context, id int) (models.Product, error) {
	body, err := c.get(ctx, fmt.Sprintf("/products/%d", id))
	if err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err := json.Unmarshal(body, &product); err != nil {
		c.log.Warn("catalog product undecodable", zap.Int("id", id), zap.Error(err))
		return models.Product{}, ErrUpstreamMalformed
	}
	return product, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("catalog request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("catalog response unreadable", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("catalog returned non-success status",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	return body, nil
}
