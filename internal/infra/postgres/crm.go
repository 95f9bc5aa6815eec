package postgres

import (
	"context"
	"log/slog"

	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/infra"
	"commerce-actions/internal/usecase/commands"
)

// New keys overwrite old ones; keys not mentioned are kept.
const upsertCRMRecord = `
INSERT INTO crm_records (customer_id, details)
VALUES ($1, $2)
ON CONFLICT (customer_id)
DO UPDATE SET details = crm_records.details || EXCLUDED.details, updated_at = now()`

type CRM struct {
	db     DBTX
	logger *slog.Logger
}

func NewCRM(db DBTX, logger *slog.Logger) *CRM {
	return &CRM{db: db, logger: logger}
}

func (c *CRM) Upsert(ctx context.Context, customerID customer.ID, details map[string]any) (commands.CRMAck, error) {
	if _, err := c.db.Exec(ctx, upsertCRMRecord, customerID.String(), details); err != nil {
		return commands.CRMAck{}, wrapPgErr(c.logger, infra.KindWriteFailed, "failed to upsert crm record", err)
	}
	return commands.CRMAck{Status: "success", Message: "CRM record updated."}, nil
}
