package catalog

import (
	"context"
	"strings"

	"github.com/Rifnaz/WLL-Product-App/models"
)

// Querier is the single entry point for product queries: it picks the
// upstream source by category and applies the title search locally.
type Querier struct {
	client *Client
}

func NewQuerier(client *Client) *Querier {
	return &Querier{client: client}
}

// QueryProducts returns all products, optionally narrowed by upstream
// category and/or a case-insensitive substring match on the title. Upstream
// failures come back as errors (ErrUpstreamUnavailable / ErrUpstreamMalformed);
// mapping them to an empty list for compatibility is the HTTP layer's call,
// not this one's.
func (q *Querier) QueryProducts(ctx context.Context, searchKey, category string) ([]models.Product, error) {
	var (
		products []models.Product
		err      error
	)
	if category != "" {
		products, err = q.client.FetchByCategory(ctx, category)
	} else {
		products, err = q.client.FetchAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	searchKey = strings.TrimSpace(searchKey)
	if searchKey == "" {
		return products, nil
	}

	needle := strings.ToLower(searchKey)
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}
