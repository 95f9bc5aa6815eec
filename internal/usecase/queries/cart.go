package queries

import (
	"context"

	"commerce-actions/internal/action"
	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/usecase/shared"
)

type CartQueries interface {
	AccessCart(ctx context.Context, customerID string) (*CartView, error)
}

type cartQueriesImpl struct {
	carts   CartReadStore
	timeout shared.AdapterTimeout
}

func NewCartQueries(carts CartReadStore, timeout shared.AdapterTimeout) CartQueries {
	return &cartQueriesImpl{carts: carts, timeout: timeout}
}

func (q *cartQueriesImpl) AccessCart(ctx context.Context, customerID string) (*CartView, error) {
	id, err := customer.NewID(customerID)
	if err != nil {
		return nil, action.InvalidArgument("customer_id", err.Error())
	}

	cctx, cancel := q.timeout.Bound(ctx)
	defer cancel()

	c, err := q.carts.GetCart(cctx, id)
	if err != nil {
		return nil, shared.Classify(err, action.ErrBackendUnavailable, "get cart")
	}

	view, err := NewCartView(c)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
