package commands

import (
	"context"
	"log/slog"

	"commerce-actions/internal/action"
	"commerce-actions/internal/domain/discount"
)

type DiscountRequest struct {
	DiscountType string
	Value        float64
	Reason       string
}

type DiscountDecision struct {
	Status string `json:"status"`
}

type DiscountCommands interface {
	ApproveDiscount(ctx context.Context, req DiscountRequest) (*DiscountDecision, error)
	RequestApproval(ctx context.Context, req DiscountRequest) (*DiscountDecision, error)
}

type discountUseCaseImpl struct {
	logger *slog.Logger
}

func NewDiscountUseCase(logger *slog.Logger) DiscountCommands {
	return &discountUseCaseImpl{logger: logger}
}

// ApproveDiscount records an agent-level approval. Only the request
// invariants are enforced here.
func (uc *discountUseCaseImpl) ApproveDiscount(ctx context.Context, req DiscountRequest) (*DiscountDecision, error) {
	dr, err := newDiscountRequest(req)
	if err != nil {
		return nil, err
	}
	uc.log(ctx, "Discount approved", dr)
	return &DiscountDecision{Status: "ok"}, nil
}

// RequestApproval escalates to a manager; the manager path currently
// approves every valid request.
func (uc *discountUseCaseImpl) RequestApproval(ctx context.Context, req DiscountRequest) (*DiscountDecision, error) {
	dr, err := newDiscountRequest(req)
	if err != nil {
		return nil, err
	}
	uc.log(ctx, "Discount approval requested", dr)
	return &DiscountDecision{Status: "approved"}, nil
}

func (uc *discountUseCaseImpl) log(ctx context.Context, msg string, dr discount.Request) {
	uc.logger.InfoContext(ctx, msg,
		slog.String("discount_type", dr.Amount().Type().String()),
		slog.Float64("value", dr.Amount().Value()),
		slog.String("reason", dr.Reason()),
	)
}

func newDiscountRequest(req DiscountRequest) (discount.Request, error) {
	dr, err := discount.NewRequest(req.DiscountType, req.Value, req.Reason)
	if err == nil {
		return dr, nil
	}
	switch err {
	case discount.ErrInvalidType:
		return discount.Request{}, action.InvalidArgument("discount_type", err.Error())
	case discount.ErrMissingReason:
		return discount.Request{}, action.InvalidArgument("reason", err.Error())
	default:
		return discount.Request{}, action.InvalidArgument("value", err.Error())
	}
}
