package cart

import (
	"errors"
	"strings"

	"commerce-actions/internal/domain/customer"
)

var (
	ErrMissingProductID  = errors.New("product id is required")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrEmptyChangeSet    = errors.New("at least one item to add or remove is required")
	ErrDuplicateAddition = errors.New("product listed twice in items to add")
)

type Item struct {
	ProductID string
	Name      string
	Quantity  int
}

// Cart is owned by the cart backend; the subtotal is whatever the backend
// computed and is never recalculated here.
type Cart struct {
	CustomerID customer.ID
	Items      []Item
	Subtotal   float64
}

type Change struct {
	ProductID string
	Quantity  int
}

// ChangeSet is a proposed mutation. A removal with quantity 0 removes the
// whole line.
type ChangeSet struct {
	add    []Change
	remove []Change
}

func NewChangeSet(add, remove []Change) (ChangeSet, error) {
	if len(add) == 0 && len(remove) == 0 {
		return ChangeSet{}, ErrEmptyChangeSet
	}

	seen := make(map[string]struct{}, len(add))
	normalizedAdd := make([]Change, 0, len(add))
	for _, c := range add {
		id := strings.TrimSpace(c.ProductID)
		if id == "" {
			return ChangeSet{}, ErrMissingProductID
		}
		if c.Quantity <= 0 {
			return ChangeSet{}, ErrInvalidQuantity
		}
		if _, dup := seen[id]; dup {
			return ChangeSet{}, ErrDuplicateAddition
		}
		seen[id] = struct{}{}
		normalizedAdd = append(normalizedAdd, Change{ProductID: id, Quantity: c.Quantity})
	}

	normalizedRemove := make([]Change, 0, len(remove))
	for _, c := range remove {
		id := strings.TrimSpace(c.ProductID)
		if id == "" {
			return ChangeSet{}, ErrMissingProductID
		}
		if c.Quantity < 0 {
			return ChangeSet{}, ErrNegativeQuantity
		}
		normalizedRemove = append(normalizedRemove, Change{ProductID: id, Quantity: c.Quantity})
	}

	return ChangeSet{add: normalizedAdd, remove: normalizedRemove}, nil
}

func (s ChangeSet) Additions() []Change { return s.add }
func (s ChangeSet) Removals() []Change  { return s.remove }
func (s ChangeSet) HasAdditions() bool  { return len(s.add) > 0 }
func (s ChangeSet) HasRemovals() bool   { return len(s.remove) > 0 }

// Apply is the reference semantics for backends that keep carts as plain
// line items: removals first, then additions appended or merged in order.
func (s ChangeSet) Apply(items []Item, nameOf func(productID string) string) []Item {
	out := make([]Item, 0, len(items)+len(s.add))
	for _, it := range items {
		out = append(out, it)
	}

	for _, r := range s.remove {
		for i := range out {
			if out[i].ProductID != r.ProductID {
				continue
			}
			if r.Quantity == 0 || r.Quantity >= out[i].Quantity {
				out = append(out[:i], out[i+1:]...)
			} else {
				out[i].Quantity -= r.Quantity
			}
			break
		}
	}

	for _, a := range s.add {
		merged := false
		for i := range out {
			if out[i].ProductID == a.ProductID {
				out[i].Quantity += a.Quantity
				merged = true
				break
			}
		}
		if !merged {
			name := ""
			if nameOf != nil {
				name = nameOf(a.ProductID)
			}
			out = append(out, Item{ProductID: a.ProductID, Name: name, Quantity: a.Quantity})
		}
	}
	return out
}
