package postgres

import (
	"context"
	"log/slog"

	"commerce-actions/internal/domain/promotion"
	"commerce-actions/internal/infra"
)

const insertPromotionCode = `
INSERT INTO promotion_codes (code, customer_id, discount_type, discount_value, expires_on)
VALUES ($1, $2, $3, $4, $5::date)`

type PromotionStore struct {
	db     DBTX
	logger *slog.Logger
}

func NewPromotionStore(db DBTX, logger *slog.Logger) *PromotionStore {
	return &PromotionStore{db: db, logger: logger}
}

func (s *PromotionStore) Issue(ctx context.Context, code *promotion.Code) error {
	amount := code.Amount()
	_, err := s.db.Exec(ctx, insertPromotionCode,
		code.Code(), code.CustomerID().String(), amount.Type().String(), amount.Value(), code.ExpirationDate())
	if err != nil {
		return wrapPgErr(s.logger, infra.KindWriteFailed, "failed to insert promotion code", err)
	}
	return nil
}
