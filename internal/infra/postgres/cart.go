package postgres

import (
	"context"
	"log/slog"

	"commerce-actions/internal/domain/cart"
	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/infra"
)

const selectCart = `
SELECT ci.product_id, p.name, ci.quantity, p.price
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.customer_id = $1
ORDER BY ci.line_no`

const upsertCartItem = `
INSERT INTO cart_items (customer_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (customer_id, product_id)
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()`

const deleteCartItem = `DELETE FROM cart_items WHERE customer_id = $1 AND product_id = $2`

const decrementCartItem = `
UPDATE cart_items SET quantity = quantity - $3, updated_at = now()
WHERE customer_id = $1 AND product_id = $2 AND quantity > $3`

const deleteDepletedCartItem = `
DELETE FROM cart_items WHERE customer_id = $1 AND product_id = $2 AND quantity <= $3`

type CartStore struct {
	db     DB
	logger *slog.Logger
}

func NewCartStore(db DB, logger *slog.Logger) *CartStore {
	return &CartStore{db: db, logger: logger}
}

func (s *CartStore) GetCart(ctx context.Context, customerID customer.ID) (cart.Cart, error) {
	return s.load(ctx, s.db, customerID)
}

// ApplyChanges applies removals then additions in one transaction and
// returns the resulting cart.
func (s *CartStore) ApplyChanges(ctx context.Context, customerID customer.ID, changes cart.ChangeSet) (cart.Cart, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return cart.Cart{}, wrapPgErr(s.logger, infra.KindUnavailable, "failed to begin cart transaction", err)
	}
	defer rollback(ctx, tx, s.logger)

	for _, r := range changes.Removals() {
		if r.Quantity == 0 {
			if _, err := tx.Exec(ctx, deleteCartItem, customerID.String(), r.ProductID); err != nil {
				return cart.Cart{}, wrapPgErr(s.logger, infra.KindWriteFailed, "failed to remove cart item", err)
			}
			continue
		}
		if _, err := tx.Exec(ctx, deleteDepletedCartItem, customerID.String(), r.ProductID, r.Quantity); err != nil {
			return cart.Cart{}, wrapPgErr(s.logger, infra.KindWriteFailed, "failed to remove cart item", err)
		}
		if _, err := tx.Exec(ctx, decrementCartItem, customerID.String(), r.ProductID, r.Quantity); err != nil {
			return cart.Cart{}, wrapPgErr(s.logger, infra.KindWriteFailed, "failed to decrement cart item", err)
		}
	}

	for _, a := range changes.Additions() {
		if _, err := tx.Exec(ctx, upsertCartItem, customerID.String(), a.ProductID, a.Quantity); err != nil {
			return cart.Cart{}, wrapPgErr(s.logger, infra.KindWriteFailed, "failed to add cart item", err)
		}
	}

	updated, err := s.load(ctx, tx, customerID)
	if err != nil {
		return cart.Cart{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return cart.Cart{}, wrapPgErr(s.logger, infra.KindWriteFailed, "failed to commit cart changes", err)
	}
	return updated, nil
}

func (s *CartStore) load(ctx context.Context, db DBTX, customerID customer.ID) (cart.Cart, error) {
	rows, err := db.Query(ctx, selectCart, customerID.String())
	if err != nil {
		return cart.Cart{}, wrapPgErr(s.logger, infra.KindUnavailable, "failed to query cart", err)
	}
	defer rows.Close()

	c := cart.Cart{CustomerID: customerID, Items: []cart.Item{}}
	var cents int64
	for rows.Next() {
		var (
			it    cart.Item
			price float64
		)
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Quantity, &price); err != nil {
			return cart.Cart{}, wrapPgErr(s.logger, infra.KindUnavailable, "failed to scan cart item", err)
		}
		cents += int64(price*100+0.5) * int64(it.Quantity)
		c.Items = append(c.Items, it)
	}
	if err := rows.Err(); err != nil {
		return cart.Cart{}, wrapPgErr(s.logger, infra.KindUnavailable, "failed to read cart", err)
	}
	c.Subtotal = float64(cents) / 100
	return c, nil
}
