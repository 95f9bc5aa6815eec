package postgres

import (
	"context"
	"log/slog"

	"commerce-actions/internal/infra"
	"commerce-actions/internal/usecase/queries"
)

const selectStockLevel = `
SELECT quantity FROM stock_levels WHERE product_id = $1 AND store_id = $2`

type Inventory struct {
	db     DBTX
	logger *slog.Logger
}

func NewInventory(db DBTX, logger *slog.Logger) *Inventory {
	return &Inventory{db: db, logger: logger}
}

func (i *Inventory) StockLevel(ctx context.Context, productID, storeID string) (*queries.StockLevel, error) {
	var qty int
	if err := i.db.QueryRow(ctx, selectStockLevel, productID, storeID).Scan(&qty); err != nil {
		return nil, wrapPgErr(i.logger, infra.KindUnavailable, "failed to query stock level", err)
	}
	return &queries.StockLevel{ProductID: productID, StoreID: storeID, Quantity: qty}, nil
}
