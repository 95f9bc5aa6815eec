package memory

import (
	"context"
	"log/slog"
	"sync"

	"commerce-actions/internal/usecase/commands"
)

// Outbox records outbound customer messages and logs them. It stands in for
// an SMS or email gateway in development.
type Outbox struct {
	mu       sync.Mutex
	messages []commands.Message
	logger   *slog.Logger
}

func NewOutbox(logger *slog.Logger) *Outbox {
	return &Outbox{logger: logger}
}

func (o *Outbox) Deliver(ctx context.Context, msg commands.Message) error {
	o.mu.Lock()
	o.messages = append(o.messages, msg)
	o.mu.Unlock()

	o.logger.InfoContext(ctx, "Customer message queued",
		slog.String("customer_id", msg.CustomerID.String()),
		slog.String("channel", string(msg.Channel)),
		slog.String("subject", msg.Subject),
	)
	return nil
}

func (o *Outbox) Messages() []commands.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]commands.Message(nil), o.messages...)
}
