//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func SetStock(t *testing.T, db DBLike, productID, storeID string, quantity int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO stock_levels (product_id, store_id, quantity) VALUES ($1, $2, $3)
		ON CONFLICT (product_id, store_id) DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`,
		productID, storeID, quantity)
	require.NoError(t, err)
}

func AddCartItem(t *testing.T, db DBLike, customerID, productID string, quantity int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO cart_items (customer_id, product_id, quantity) VALUES ($1, $2, $3)",
		customerID, productID, quantity)
	require.NoError(t, err)
}

func CRMDetails(t *testing.T, db DBLike, customerID string) map[string]any {
	t.Helper()

	var raw []byte
	err := db.QueryRow(context.Background(),
		"SELECT details FROM crm_records WHERE customer_id = $1", customerID).Scan(&raw)
	require.NoError(t, err)

	var details map[string]any
	require.NoError(t, json.Unmarshal(raw, &details))
	return details
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// inserts the product catalog every test relies on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO products (id, name, price) VALUES
		    ('soil-123', 'Standard Potting Soil', 12.99),
		    ('fert-456', 'General Purpose Fertilizer', 12.99),
		    ('soil-456', 'Bloom Booster Potting Mix', 14.99),
		    ('fert-789', 'Flower Power Fertilizer', 9.99)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
