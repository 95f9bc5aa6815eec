package queries

import (
	"context"
	"strings"

	"commerce-actions/internal/action"
	"commerce-actions/internal/infra"
	"commerce-actions/internal/usecase/shared"
)

type InventoryQueries interface {
	CheckAvailability(ctx context.Context, productID, storeID string) (*AvailabilityView, error)
}

type inventoryQueriesImpl struct {
	stock   InventoryReadStore
	timeout shared.AdapterTimeout
}

func NewInventoryQueries(stock InventoryReadStore, timeout shared.AdapterTimeout) InventoryQueries {
	return &inventoryQueriesImpl{stock: stock, timeout: timeout}
}

// CheckAvailability treats a product with no stock record as unavailable.
func (q *inventoryQueriesImpl) CheckAvailability(ctx context.Context, productID, storeID string) (*AvailabilityView, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, action.InvalidArgument("product_id", "is required")
	}
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return nil, action.InvalidArgument("store_id", "is required")
	}

	cctx, cancel := q.timeout.Bound(ctx)
	defer cancel()

	level, err := q.stock.StockLevel(cctx, productID, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &AvailabilityView{Available: false, Quantity: 0, Store: storeID}, nil
		}
		return nil, shared.Classify(err, action.ErrBackendUnavailable, "check stock level")
	}

	return &AvailabilityView{
		Available: level.Quantity > 0,
		Quantity:  level.Quantity,
		Store:     storeID,
	}, nil
}
