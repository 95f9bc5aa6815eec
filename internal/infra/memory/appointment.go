package memory

import (
	"context"
	"log/slog"
	"sync"

	"commerce-actions/internal/domain/appointment"
	"commerce-actions/internal/infra"
)

type AppointmentBook struct {
	mu     sync.Mutex
	byDate map[string][]*appointment.Appointment
	logger *slog.Logger
}

func NewAppointmentBook(logger *slog.Logger) *AppointmentBook {
	return &AppointmentBook{byDate: make(map[string][]*appointment.Appointment), logger: logger}
}

func (b *AppointmentBook) Book(_ context.Context, a *appointment.Appointment) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.byDate[a.Date()] {
		if existing.TimeRange().Overlaps(a.TimeRange()) {
			return infra.WrapAdapterErr(b.logger, infra.KindDuplicateKey, "time range already booked", nil)
		}
	}
	b.byDate[a.Date()] = append(b.byDate[a.Date()], a)
	return nil
}

func (b *AppointmentBook) BookedRanges(_ context.Context, date string) ([]appointment.TimeRange, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]appointment.TimeRange, 0, len(b.byDate[date]))
	for _, a := range b.byDate[date] {
		out = append(out, a.TimeRange())
	}
	return out, nil
}
