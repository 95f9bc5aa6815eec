package commands

import (
	"context"
	"fmt"
	"strings"

	"commerce-actions/internal/action"
	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/usecase/shared"
)

type SendInstructionsRequest struct {
	CustomerID     string
	Topic          string
	DeliveryMethod string
}

type InstructionsReceipt struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type InstructionCommands interface {
	SendInstructions(ctx context.Context, req SendInstructionsRequest) (*InstructionsReceipt, error)
}

type instructionUseCaseImpl struct {
	messenger Messenger
	timeout   shared.AdapterTimeout
}

func NewInstructionUseCase(messenger Messenger, timeout shared.AdapterTimeout) InstructionCommands {
	return &instructionUseCaseImpl{messenger: messenger, timeout: timeout}
}

func (uc *instructionUseCaseImpl) SendInstructions(ctx context.Context, req SendInstructionsRequest) (*InstructionsReceipt, error) {
	id, err := customer.NewID(req.CustomerID)
	if err != nil {
		return nil, action.InvalidArgument("customer_id", err.Error())
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, action.InvalidArgument("topic", "is required")
	}
	channel := Channel(strings.ToLower(strings.TrimSpace(req.DeliveryMethod)))
	if channel != ChannelEmail && channel != ChannelSMS {
		return nil, action.InvalidArgument("delivery_method", "must be one of [email, sms]")
	}

	cctx, cancel := uc.timeout.Bound(ctx)
	defer cancel()

	err = uc.messenger.Deliver(cctx, Message{
		CustomerID: id,
		Channel:    channel,
		Subject:    fmt.Sprintf("Care instructions: %s", topic),
		Body:       fmt.Sprintf("Here are the care instructions for %s you asked about.", topic),
	})
	if err != nil {
		return nil, shared.Classify(err, action.ErrBackendUnavailable, "deliver instructions")
	}

	return &InstructionsReceipt{
		Status:  "success",
		Message: fmt.Sprintf("Care instructions for %s sent via %s.", topic, channel),
	}, nil
}
