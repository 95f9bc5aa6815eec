package memory

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"commerce-actions/internal/domain/cart"
	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/infra"
)

// CartStore keeps carts in memory. A customer seen for the first time
// starts with the demo cart (one bag of soil and one of fertilizer).
type CartStore struct {
	mu       sync.Mutex
	products map[string]Product
	carts    map[customer.ID][]cart.Item
	seed     []cart.Item
	logger   *slog.Logger
}

func NewCartStore(products []Product, logger *slog.Logger) *CartStore {
	idx := make(map[string]Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return &CartStore{
		products: idx,
		carts:    make(map[customer.ID][]cart.Item),
		seed: []cart.Item{
			{ProductID: "soil-123", Name: "Standard Potting Soil", Quantity: 1},
			{ProductID: "fert-456", Name: "General Purpose Fertilizer", Quantity: 1},
		},
		logger: logger,
	}
}

func (s *CartStore) GetCart(_ context.Context, customerID customer.ID) (cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot(customerID, s.itemsLocked(customerID)), nil
}

func (s *CartStore) ApplyChanges(_ context.Context, customerID customer.ID, changes cart.ChangeSet) (cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, add := range changes.Additions() {
		if _, ok := s.products[add.ProductID]; !ok {
			return cart.Cart{}, infra.WrapAdapterErr(s.logger, infra.KindNotFound, "unknown product "+add.ProductID, nil)
		}
	}

	items := changes.Apply(s.itemsLocked(customerID), func(id string) string { return s.products[id].Name })
	s.carts[customerID] = items
	return s.snapshot(customerID, items), nil
}

func (s *CartStore) itemsLocked(customerID customer.ID) []cart.Item {
	items, ok := s.carts[customerID]
	if !ok {
		items = append([]cart.Item(nil), s.seed...)
		s.carts[customerID] = items
	}
	return items
}

func (s *CartStore) snapshot(customerID customer.ID, items []cart.Item) cart.Cart {
	out := append([]cart.Item(nil), items...)
	var subtotal float64
	for _, it := range out {
		subtotal += s.products[it.ProductID].Price * float64(it.Quantity)
	}
	return cart.Cart{
		CustomerID: customerID,
		Items:      out,
		Subtotal:   math.Round(subtotal*100) / 100,
	}
}
