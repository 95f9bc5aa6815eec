package postgres

import (
	"context"
	"log/slog"

	"commerce-actions/internal/domain/appointment"
	"commerce-actions/internal/infra"
)

const insertAppointment = `
INSERT INTO appointments (id, customer_id, service_date, start_hour, end_hour, details)
VALUES ($1, $2, $3::date, $4, $5, $6)`

const selectBookedRanges = `
SELECT start_hour, end_hour FROM appointments
WHERE service_date = $1::date
ORDER BY start_hour`

type AppointmentBook struct {
	db     DBTX
	logger *slog.Logger
}

func NewAppointmentBook(db DBTX, logger *slog.Logger) *AppointmentBook {
	return &AppointmentBook{db: db, logger: logger}
}

func (b *AppointmentBook) Book(ctx context.Context, a *appointment.Appointment) error {
	r := a.TimeRange()
	_, err := b.db.Exec(ctx, insertAppointment,
		a.ID(), a.CustomerID().String(), a.Date(), r.StartHour(), r.EndHour(), a.Details())
	if err != nil {
		return wrapPgErr(b.logger, infra.KindWriteFailed, "failed to insert appointment", err)
	}
	return nil
}

func (b *AppointmentBook) BookedRanges(ctx context.Context, date string) ([]appointment.TimeRange, error) {
	rows, err := b.db.Query(ctx, selectBookedRanges, date)
	if err != nil {
		return nil, wrapPgErr(b.logger, infra.KindUnavailable, "failed to query appointments", err)
	}
	defer rows.Close()

	var out []appointment.TimeRange
	for rows.Next() {
		var start, end int
		if err := rows.Scan(&start, &end); err != nil {
			return nil, wrapPgErr(b.logger, infra.KindUnavailable, "failed to scan appointment", err)
		}
		r, err := appointment.NewTimeRange(start, end)
		if err != nil {
			b.logger.Warn("Skipping malformed appointment range", slog.Int("start", start), slog.Int("end", end))
			continue
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr(b.logger, infra.KindUnavailable, "failed to read appointments", err)
	}
	return out, nil
}
