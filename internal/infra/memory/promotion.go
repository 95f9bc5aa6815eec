package memory

import (
	"context"
	"log/slog"
	"sync"

	"commerce-actions/internal/domain/promotion"
	"commerce-actions/internal/infra"
)

type PromotionStore struct {
	mu     sync.Mutex
	codes  map[string]*promotion.Code
	logger *slog.Logger
}

func NewPromotionStore(logger *slog.Logger) *PromotionStore {
	return &PromotionStore{codes: make(map[string]*promotion.Code), logger: logger}
}

func (s *PromotionStore) Issue(_ context.Context, code *promotion.Code) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.codes[code.Code()]; dup {
		return infra.WrapAdapterErr(s.logger, infra.KindDuplicateKey, "promotion code already issued", nil)
	}
	s.codes[code.Code()] = code
	return nil
}

func (s *PromotionStore) Lookup(code string) (*promotion.Code, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.codes[code]
	return c, ok
}
