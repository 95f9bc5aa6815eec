package commands

import (
	"context"

	"commerce-actions/internal/action"
	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/usecase/shared"
)

type CRMCommands interface {
	UpdateRecord(ctx context.Context, customerID string, details map[string]any) (*CRMAck, error)
}

type crmUseCaseImpl struct {
	crm     CRM
	timeout shared.AdapterTimeout
}

func NewCRMUseCase(crm CRM, timeout shared.AdapterTimeout) CRMCommands {
	return &crmUseCaseImpl{crm: crm, timeout: timeout}
}

func (uc *crmUseCaseImpl) UpdateRecord(ctx context.Context, customerID string, details map[string]any) (*CRMAck, error) {
	id, err := customer.NewID(customerID)
	if err != nil {
		return nil, action.InvalidArgument("customer_id", err.Error())
	}
	if len(details) == 0 {
		return nil, action.InvalidArgument("details", "must not be empty")
	}

	cctx, cancel := uc.timeout.Bound(ctx)
	defer cancel()

	ack, err := uc.crm.Upsert(cctx, id, details)
	if err != nil {
		return nil, shared.Classify(err, action.ErrCrmWrite, "upsert crm record")
	}
	return &ack, nil
}
