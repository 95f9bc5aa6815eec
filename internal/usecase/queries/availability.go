package queries

import (
	"context"
	"time"

	"commerce-actions/internal/action"
	"commerce-actions/internal/domain/appointment"
	"commerce-actions/internal/domain/schedule"
	"commerce-actions/internal/usecase/shared"
)

type AppointmentQueries interface {
	ListAvailableTimes(ctx context.Context, date string) (*AvailableTimesView, error)
}

type appointmentQueriesImpl struct {
	book    BookedRangeReader
	slots   []appointment.TimeRange
	timeout shared.AdapterTimeout
}

func NewAppointmentQueries(book BookedRangeReader, timeout shared.AdapterTimeout) AppointmentQueries {
	return &appointmentQueriesImpl{book: book, slots: appointment.DefaultSlots, timeout: timeout}
}

func (q *appointmentQueriesImpl) ListAvailableTimes(ctx context.Context, date string) (*AvailableTimesView, error) {
	if _, err := time.Parse(schedule.DateLayout, date); err != nil {
		return nil, action.InvalidArgument("date", schedule.ErrInvalidDate.Error())
	}

	cctx, cancel := q.timeout.Bound(ctx)
	defer cancel()

	booked, err := q.book.BookedRanges(cctx, date)
	if err != nil {
		return nil, shared.Classify(err, action.ErrBackendUnavailable, "load booked ranges")
	}

	free := appointment.FreeSlots(q.slots, booked)
	times := make([]string, 0, len(free))
	for _, r := range free {
		times = append(times, r.String())
	}
	return &AvailableTimesView{Date: date, AvailableTimes: times}, nil
}
