package mail

import (
	"context"
	"log/slog"

	"commerce-actions/internal/usecase/commands"
)

// Log writes mail to the logger instead of sending it. Used when no SMTP
// server is configured.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Send(ctx context.Context, msg commands.Email) error {
	l.logger.InfoContext(ctx, "Email (not sent, smtp disabled)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
