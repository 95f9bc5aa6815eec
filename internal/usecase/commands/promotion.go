package commands

import (
	"context"

	"commerce-actions/internal/action"
	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/domain/discount"
	"commerce-actions/internal/domain/promotion"
	"commerce-actions/internal/pkg/clock"
	"commerce-actions/internal/pkg/errs"
	"commerce-actions/internal/usecase/shared"
)

type GeneratePromotionRequest struct {
	CustomerID     string
	DiscountValue  float64
	DiscountType   string
	ExpirationDays int
}

type PromotionCode struct {
	Status         string `json:"status"`
	Code           string `json:"code"`
	Payload        string `json:"payload"`
	ExpirationDate string `json:"expiration_date"`
}

type PromotionCommands interface {
	GeneratePromotionCode(ctx context.Context, req GeneratePromotionRequest) (*PromotionCode, error)
}

type promotionUseCaseImpl struct {
	issuer  PromotionIssuer
	clock   clock.Clock
	timeout shared.AdapterTimeout
}

func NewPromotionUseCase(issuer PromotionIssuer, clk clock.Clock, timeout shared.AdapterTimeout) PromotionCommands {
	return &promotionUseCaseImpl{issuer: issuer, clock: clk, timeout: timeout}
}

func (uc *promotionUseCaseImpl) GeneratePromotionCode(ctx context.Context, req GeneratePromotionRequest) (*PromotionCode, error) {
	id, err := customer.NewID(req.CustomerID)
	if err != nil {
		return nil, action.InvalidArgument("customer_id", err.Error())
	}
	kind, err := discount.ParseType(req.DiscountType)
	if err != nil {
		return nil, action.InvalidArgument("discount_type", err.Error())
	}
	amount, err := discount.NewAmount(kind, req.DiscountValue)
	if err != nil {
		return nil, action.InvalidArgument("discount_value", err.Error())
	}

	code, err := promotion.NewCode(id, amount, req.ExpirationDays, uc.clock.Now())
	if err != nil {
		if errs.Is(err, promotion.ErrInvalidExpiration) {
			return nil, action.InvalidArgument("expiration_days", err.Error())
		}
		return nil, errs.Wrap(err, "build promotion code")
	}

	cctx, cancel := uc.timeout.Bound(ctx)
	defer cancel()

	if err := uc.issuer.Issue(cctx, code); err != nil {
		return nil, shared.Classify(err, action.ErrBackendUnavailable, "issue promotion code")
	}

	return &PromotionCode{
		Status:         "success",
		Code:           code.Code(),
		Payload:        code.Payload(),
		ExpirationDate: code.ExpirationDate(),
	}, nil
}
