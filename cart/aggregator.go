package cart

import (
	"context"

	"github.com/Rifnaz/WLL-Product-App/catalog"
	"github.com/Rifnaz/WLL-Product-App/models"
)

// Aggregator joins persisted cart lines against a live catalog snapshot.
type Aggregator struct {
	catalog *catalog.Querier
	store   *Store
}

func NewAggregator(q *catalog.Querier, s *Store) *Aggregator {
	return &Aggregator{catalog: q, store: s}
}

// CartView returns the cart enriched with product data. Lines whose product
// is missing from the current snapshot are left out of the view; they stay in
// the store untouched. An upstream failure is returned as-is so callers can
// tell "catalog down" from "cart empty".
func (a *Aggregator) CartView(ctx context.Context) ([]models.EnrichedCartLine, error) {
	products, err := a.catalog.QueryProducts(ctx, "", "")
	if err != nil {
		return nil, err
	}

	lines, err := a.store.ListAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	view := make([]models.EnrichedCartLine, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		view = append(view, models.EnrichedCartLine{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Product:   product,
		})
	}
	return view, nil
}
