package postgres

import (
	"context"
	"log/slog"

	"commerce-actions/internal/infra"
	"commerce-actions/internal/usecase/commands"

	"github.com/google/uuid"
)

const insertOutboundMessage = `
INSERT INTO outbound_messages (id, customer_id, channel, subject, body)
VALUES ($1, $2, $3, $4, $5)`

// Outbox queues customer messages for the delivery worker that owns the
// email and SMS gateways.
type Outbox struct {
	db     DBTX
	logger *slog.Logger
}

func NewOutbox(db DBTX, logger *slog.Logger) *Outbox {
	return &Outbox{db: db, logger: logger}
}

func (o *Outbox) Deliver(ctx context.Context, msg commands.Message) error {
	_, err := o.db.Exec(ctx, insertOutboundMessage,
		uuid.New(), msg.CustomerID.String(), string(msg.Channel), msg.Subject, msg.Body)
	if err != nil {
		return wrapPgErr(o.logger, infra.KindWriteFailed, "failed to queue outbound message", err)
	}
	return nil
}
