package commands

import (
	"context"
	"log/slog"

	"commerce-actions/internal/action"
	"commerce-actions/internal/domain/appointment"
	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/infra"
	"commerce-actions/internal/usecase/shared"
)

const rangeTakenReason = "time range already booked"

type ScheduleAppointmentRequest struct {
	CustomerID string
	Date       string
	TimeRange  string
	Details    string
}

type AppointmentConfirmation struct {
	Status           string `json:"status"`
	AppointmentID    string `json:"appointment_id"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ConfirmationTime string `json:"confirmation_time"`
}

type AppointmentCommands interface {
	ScheduleAppointment(ctx context.Context, req ScheduleAppointmentRequest) (*AppointmentConfirmation, error)
}

type appointmentUseCaseImpl struct {
	book    AppointmentBook
	locker  Locker
	timeout shared.AdapterTimeout
	logger  *slog.Logger
}

func NewAppointmentUseCase(book AppointmentBook, locker Locker, timeout shared.AdapterTimeout, logger *slog.Logger) AppointmentCommands {
	return &appointmentUseCaseImpl{book: book, locker: locker, timeout: timeout, logger: logger}
}

func (uc *appointmentUseCaseImpl) ScheduleAppointment(ctx context.Context, req ScheduleAppointmentRequest) (*AppointmentConfirmation, error) {
	id, err := customer.NewID(req.CustomerID)
	if err != nil {
		return nil, action.InvalidArgument("customer_id", err.Error())
	}
	r, err := appointment.ParseTimeRange(req.TimeRange)
	if err != nil {
		return nil, action.InvalidArgument("time_range", err.Error())
	}
	appt, err := appointment.NewAppointment(id, req.Date, r, req.Details)
	if err != nil {
		if err == appointment.ErrMissingDetails {
			return nil, action.InvalidArgument("details", err.Error())
		}
		return nil, action.InvalidArgument("date", err.Error())
	}

	lctx, cancel := uc.timeout.Bound(ctx)
	unlock, err := uc.locker.Lock(lctx, "appointments:"+appt.Date())
	cancel()
	if err != nil {
		return nil, shared.Classify(err, action.ErrBackendUnavailable, "acquire appointment lock")
	}
	defer unlock()

	cctx, cancel := uc.timeout.Bound(ctx)
	defer cancel()

	booked, err := uc.book.BookedRanges(cctx, appt.Date())
	if err != nil {
		return nil, shared.Classify(err, action.ErrBackendUnavailable, "load booked ranges")
	}
	for _, b := range booked {
		if b.Overlaps(r) {
			return nil, action.Conflict(rangeTakenReason)
		}
	}

	if err := uc.book.Book(cctx, appt); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, action.Conflict(rangeTakenReason)
		}
		return nil, shared.Classify(err, action.ErrBackendUnavailable, "book appointment")
	}

	uc.logger.InfoContext(ctx, "Appointment booked",
		slog.String("appointment_id", appt.ID().String()),
		slog.String("customer_id", id.String()),
		slog.String("date", appt.Date()),
		slog.String("time_range", r.String()),
	)

	return &AppointmentConfirmation{
		Status:           "success",
		AppointmentID:    appt.ID().String(),
		Date:             appt.Date(),
		Time:             r.String(),
		ConfirmationTime: appt.ConfirmationTime(),
	}, nil
}
