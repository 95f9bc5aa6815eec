package queries

import (
	"context"

	"commerce-actions/internal/domain/appointment"
	"commerce-actions/internal/domain/cart"
	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// CartView is the cart as the assistant sees it.
type CartView struct {
	CustomerID string         `json:"customer_id"`
	Items      []CartItemView `json:"items"`
	Subtotal   float64        `json:"subtotal"`
}

type CartItemView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

func NewCartView(c cart.Cart) (CartView, error) {
	var v CartView
	if err := copier.Copy(&v, &c); err != nil {
		return CartView{}, errs.Wrap(err, "map cart view")
	}
	if v.Items == nil {
		v.Items = []CartItemView{}
	}
	return v, nil
}

// StockLevel is one product's stock at one store.
type StockLevel struct {
	ProductID string
	StoreID   string
	Quantity  int
}

type AvailabilityView struct {
	Available bool   `json:"available"`
	Quantity  int    `json:"quantity"`
	Store     string `json:"store"`
}

type Recommendation struct {
	ProductID   string `json:"product_id" yaml:"product_id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

type RecommendationView struct {
	Recommendation
	InCart bool `json:"in_cart"`
}

type RecommendationsView struct {
	Category        string               `json:"category"`
	Recommendations []RecommendationView `json:"recommendations"`
}

type AvailableTimesView struct {
	Date           string   `json:"date"`
	AvailableTimes []string `json:"available_times"`
}

type CartReadStore interface {
	GetCart(ctx context.Context, customerID customer.ID) (cart.Cart, error)
}

// InventoryReadStore returns an infra NOT_FOUND error when the product has
// never been stocked at the store.
type InventoryReadStore interface {
	StockLevel(ctx context.Context, productID, storeID string) (*StockLevel, error)
}

type BookedRangeReader interface {
	BookedRanges(ctx context.Context, date string) ([]appointment.TimeRange, error)
}

// RecommendationCatalog resolves a category case-insensitively.
type RecommendationCatalog interface {
	Lookup(category string) ([]Recommendation, bool)
	Default() []Recommendation
}
