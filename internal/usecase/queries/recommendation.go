package queries

import (
	"context"
	"log/slog"
	"strings"

	"commerce-actions/internal/action"
	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/usecase/shared"
)

type RecommendationQueries interface {
	Recommend(ctx context.Context, category, customerID string) (*RecommendationsView, error)
}

type recommendationQueriesImpl struct {
	catalog RecommendationCatalog
	carts   CartReadStore
	timeout shared.AdapterTimeout
	logger  *slog.Logger
}

func NewRecommendationQueries(catalog RecommendationCatalog, carts CartReadStore, timeout shared.AdapterTimeout, logger *slog.Logger) RecommendationQueries {
	return &recommendationQueriesImpl{catalog: catalog, carts: carts, timeout: timeout, logger: logger}
}

// Recommend falls back to the default set for unknown categories. When a
// customer is given, products already in their cart are flagged; a cart
// lookup failure only drops the flags.
func (q *recommendationQueriesImpl) Recommend(ctx context.Context, category, customerID string) (*RecommendationsView, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, action.InvalidArgument("category", "is required")
	}

	recs, ok := q.catalog.Lookup(category)
	if !ok {
		recs = q.catalog.Default()
	}

	inCart := q.cartProducts(ctx, customerID)

	out := make([]RecommendationView, 0, len(recs))
	for _, r := range recs {
		_, has := inCart[r.ProductID]
		out = append(out, RecommendationView{Recommendation: r, InCart: has})
	}
	return &RecommendationsView{Category: category, Recommendations: out}, nil
}

func (q *recommendationQueriesImpl) cartProducts(ctx context.Context, customerID string) map[string]struct{} {
	id, err := customer.NewID(customerID)
	if err != nil {
		return nil
	}

	cctx, cancel := q.timeout.Bound(ctx)
	defer cancel()

	c, err := q.carts.GetCart(cctx, id)
	if err != nil {
		q.logger.WarnContext(ctx, "Cart lookup for recommendations failed",
			slog.String("customer_id", id.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	set := make(map[string]struct{}, len(c.Items))
	for _, it := range c.Items {
		set[it.ProductID] = struct{}{}
	}
	return set
}
