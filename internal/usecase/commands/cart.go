package commands

import (
	"context"

	"commerce-actions/internal/action"
	"commerce-actions/internal/domain/cart"
	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/infra"
	"commerce-actions/internal/pkg/errs"
	"commerce-actions/internal/usecase/shared"
)

type CartLine struct {
	ProductID string
	Quantity  int
}

type ModifyCartRequest struct {
	CustomerID    string
	ItemsToAdd    []CartLine
	ItemsToRemove []CartLine
}

type ModifyCartResult struct {
	Status       string
	Message      string
	ItemsAdded   bool
	ItemsRemoved bool
	Cart         cart.Cart
}

type CartCommands interface {
	ModifyCart(ctx context.Context, req ModifyCartRequest) (*ModifyCartResult, error)
}

type cartUseCaseImpl struct {
	carts   CartWriter
	timeout shared.AdapterTimeout
}

func NewCartUseCase(carts CartWriter, timeout shared.AdapterTimeout) CartCommands {
	return &cartUseCaseImpl{carts: carts, timeout: timeout}
}

func (uc *cartUseCaseImpl) ModifyCart(ctx context.Context, req ModifyCartRequest) (*ModifyCartResult, error) {
	id, err := customer.NewID(req.CustomerID)
	if err != nil {
		return nil, action.InvalidArgument("customer_id", err.Error())
	}

	changes, err := cart.NewChangeSet(toChanges(req.ItemsToAdd), toChanges(req.ItemsToRemove))
	if err != nil {
		return nil, changeSetArgumentError(err)
	}

	cctx, cancel := uc.timeout.Bound(ctx)
	defer cancel()

	updated, err := uc.carts.ApplyChanges(cctx, id, changes)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, action.InvalidArgument("items_to_add", "unknown product")
		}
		return nil, shared.Classify(err, action.ErrBackendUnavailable, "apply cart changes")
	}

	return &ModifyCartResult{
		Status:       "success",
		Message:      "Cart updated successfully.",
		ItemsAdded:   changes.HasAdditions(),
		ItemsRemoved: changes.HasRemovals(),
		Cart:         updated,
	}, nil
}

func toChanges(lines []CartLine) []cart.Change {
	out := make([]cart.Change, 0, len(lines))
	for _, l := range lines {
		out = append(out, cart.Change{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return out
}

func changeSetArgumentError(err error) error {
	switch {
	case errs.Is(err, cart.ErrEmptyChangeSet):
		return action.InvalidArgument("items_to_add", err.Error())
	case errs.Is(err, cart.ErrNegativeQuantity):
		return action.InvalidArgument("items_to_remove", err.Error())
	default:
		return action.InvalidArgument("items_to_add", err.Error())
	}
}
