package memory

import (
	"context"
	"log/slog"
	"sync"

	"commerce-actions/internal/infra"
	"commerce-actions/internal/usecase/queries"
)

type stockKey struct {
	productID string
	storeID   string
}

type Inventory struct {
	mu     sync.RWMutex
	levels map[stockKey]int
	logger *slog.Logger
}

func NewInventory(logger *slog.Logger) *Inventory {
	return &Inventory{levels: make(map[stockKey]int), logger: logger}
}

func (i *Inventory) SetStock(productID, storeID string, quantity int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.levels[stockKey{productID, storeID}] = quantity
}

func (i *Inventory) StockLevel(_ context.Context, productID, storeID string) (*queries.StockLevel, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	qty, ok := i.levels[stockKey{productID, storeID}]
	if !ok {
		return nil, infra.WrapAdapterErr(i.logger, infra.KindNotFound, "stock level not found", nil)
	}
	return &queries.StockLevel{ProductID: productID, StoreID: storeID, Quantity: qty}, nil
}
