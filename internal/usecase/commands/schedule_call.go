package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"commerce-actions/internal/action"
	"commerce-actions/internal/domain/schedule"
	"commerce-actions/internal/pkg/errs"
	"commerce-actions/internal/usecase/shared"

	"github.com/google/uuid"
)

const slotTakenReason = "slot already has a call"

// tokenNamespace scopes derived scheduling tokens.
var tokenNamespace = uuid.MustParse("6f1c7a52-3c1e-4f8e-9a57-0d4e1b2c9a11")

type ScheduleCallRequest struct {
	PhoneNumber    string
	Date           string
	StartTime      string
	EndTime        string
	CompanyEmail   string
	UserEmail      string
	IdempotencyKey string
}

type ScheduleCallResult struct {
	Status           string   `json:"status"`
	EventID          string   `json:"event_id"`
	ConferenceLink   string   `json:"conference_link"`
	Date             string   `json:"date"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	TimeZone         string   `json:"timezone"`
	Attendees        []string `json:"attendees"`
	NotificationSent bool     `json:"notification_sent"`
	Replayed         bool     `json:"replayed"`
	IdempotencyKey   string   `json:"idempotency_key"`
}

// Partial reports a booked call whose notification did not go out. A replay
// never re-notifies, so it is not partial.
func (r *ScheduleCallResult) Partial() bool {
	return !r.Replayed && !r.NotificationSent
}

type SchedulingCommands interface {
	ScheduleCall(ctx context.Context, req ScheduleCallRequest) (*ScheduleCallResult, error)
}

type schedulingUseCaseImpl struct {
	calendar Calendar
	mailer   Mailer
	locker   Locker
	loc      *time.Location
	summary  string
	timeout  shared.AdapterTimeout
	logger   *slog.Logger
}

func NewSchedulingUseCase(
	calendar Calendar,
	mailer Mailer,
	locker Locker,
	loc *time.Location,
	summary string,
	timeout shared.AdapterTimeout,
	logger *slog.Logger,
) SchedulingCommands {
	return &schedulingUseCaseImpl{
		calendar: calendar,
		mailer:   mailer,
		locker:   locker,
		loc:      loc,
		summary:  summary,
		timeout:  timeout,
		logger:   logger,
	}
}

func (uc *schedulingUseCaseImpl) ScheduleCall(ctx context.Context, req ScheduleCallRequest) (*ScheduleCallResult, error) {
	window, err := schedule.NewTimeWindow(req.Date, req.StartTime, req.EndTime, uc.loc)
	if err != nil {
		return nil, windowArgumentError(err, req.StartTime)
	}
	attendees, err := schedule.NewAttendees(req.CompanyEmail, req.UserEmail)
	if err != nil {
		if _, perr := schedule.NormalizeEmail(req.CompanyEmail); perr != nil {
			return nil, action.InvalidArgument("company_email", err.Error())
		}
		return nil, action.InvalidArgument("user_email", err.Error())
	}
	phone := strings.TrimSpace(req.PhoneNumber)
	if phone == "" {
		return nil, action.InvalidArgument("phone_number", "is required")
	}

	// Init
	if err := uc.authenticate(ctx); err != nil {
		return nil, err
	}

	token := strings.TrimSpace(req.IdempotencyKey)
	if token == "" {
		token = deriveToken(uc.calendar.CalendarID(), window, attendees[0], phone)
	}

	event, replayed, err := uc.reserve(ctx, window, attendees, phone, token)
	if err != nil {
		return nil, err
	}

	result := &ScheduleCallResult{
		Status:         "scheduled",
		EventID:        event.ID,
		ConferenceLink: event.ConferenceLink,
		Date:           window.Date(),
		StartTime:      window.StartClock(),
		EndTime:        window.EndClock(),
		TimeZone:       uc.loc.String(),
		Attendees:      []string(event.Attendees),
		Replayed:       replayed,
		IdempotencyKey: token,
	}
	if replayed {
		result.Status = "already_scheduled"
		return result, nil
	}

	// Notify
	result.NotificationSent = uc.notify(ctx, attendees[0], phone, event, window)
	return result, nil
}

func (uc *schedulingUseCaseImpl) authenticate(ctx context.Context) error {
	cctx, cancel := uc.timeout.Bound(ctx)
	defer cancel()

	if err := uc.calendar.Authenticate(cctx); err != nil {
		return shared.Classify(err, action.ErrAuth, "authenticate calendar")
	}
	return nil
}

// reserve runs CheckConflicts and CreateEvent under the per-calendar lock
// so two overlapping requests cannot both pass the conflict check.
func (uc *schedulingUseCaseImpl) reserve(
	ctx context.Context,
	window schedule.TimeWindow,
	attendees schedule.Attendees,
	phone, token string,
) (schedule.Event, bool, error) {
	lctx, cancel := uc.timeout.Bound(ctx)
	unlock, err := uc.locker.Lock(lctx, "calendar:"+uc.calendar.CalendarID())
	cancel()
	if err != nil {
		return schedule.Event{}, false, shared.Classify(err, action.ErrCalendarUnavailable, "acquire calendar lock")
	}
	defer unlock()

	existing, err := uc.findByToken(ctx, token)
	if err != nil {
		return schedule.Event{}, false, err
	}
	if existing != nil {
		uc.logger.InfoContext(ctx, "Replaying scheduled call",
			slog.String("event_id", existing.ID),
			slog.String("token", token),
		)
		return *existing, true, nil
	}

	// CheckConflicts
	events, err := uc.listEvents(ctx, window)
	if err != nil {
		return schedule.Event{}, false, err
	}
	if clash, found := schedule.FindCallConflict(events, window); found {
		uc.logger.InfoContext(ctx, "Call slot conflict",
			slog.String("window", window.String()),
			slog.String("conflicting_event_id", clash.ID),
		)
		return schedule.Event{}, false, action.Conflict(slotTakenReason)
	}

	// CreateEvent
	draft := schedule.EventDraft{
		Summary:     uc.summary,
		Description: fmt.Sprintf("Video call with %s (phone %s).", attendees[0], phone),
		Window:      window,
		Attendees:   attendees,
	}
	if err := draft.Validate(); err != nil {
		return schedule.Event{}, false, errs.Wrap(err, "build event draft")
	}

	cctx, cancel := uc.timeout.Bound(ctx)
	defer cancel()
	event, err := uc.calendar.CreateEvent(cctx, draft, token)
	if err != nil {
		return schedule.Event{}, false, shared.Classify(err, action.ErrCalendarWrite, "create calendar event")
	}
	return event, false, nil
}

func (uc *schedulingUseCaseImpl) findByToken(ctx context.Context, token string) (*schedule.Event, error) {
	cctx, cancel := uc.timeout.Bound(ctx)
	defer cancel()

	ev, err := uc.calendar.FindByToken(cctx, token)
	if err != nil {
		return nil, shared.Classify(err, action.ErrCalendarUnavailable, "look up event by token")
	}
	return ev, nil
}

func (uc *schedulingUseCaseImpl) listEvents(ctx context.Context, window schedule.TimeWindow) ([]schedule.Event, error) {
	cctx, cancel := uc.timeout.Bound(ctx)
	defer cancel()

	events, err := uc.calendar.ListEvents(cctx, window)
	if err != nil {
		return nil, shared.Classify(err, action.ErrCalendarUnavailable, "list calendar events")
	}
	return events, nil
}

// notify is best effort: the booking stands whether or not the email goes out.
func (uc *schedulingUseCaseImpl) notify(ctx context.Context, to, phone string, event schedule.Event, window schedule.TimeWindow) bool {
	cctx, cancel := uc.timeout.Bound(ctx)
	defer cancel()

	msg := Email{
		To:      to,
		Subject: fmt.Sprintf("Video call scheduled for %s %s", window.Date(), window.StartClock()),
		Body: fmt.Sprintf(
			"A video call has been scheduled.\n\nDate: %s\nTime: %s - %s (%s)\nCustomer phone: %s\nJoin: %s\n",
			window.Date(), window.StartClock(), window.EndClock(), uc.loc.String(), phone, event.ConferenceLink,
		),
	}
	if err := uc.mailer.Send(cctx, msg); err != nil {
		uc.logger.WarnContext(ctx, "Call notification failed",
			slog.String("event_id", event.ID),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

// deriveToken makes a retry with identical arguments reuse the token of the
// first attempt.
func deriveToken(calendarID string, window schedule.TimeWindow, companyEmail, phone string) string {
	key := strings.Join([]string{
		calendarID,
		window.Start().UTC().Format(time.RFC3339),
		window.End().UTC().Format(time.RFC3339),
		companyEmail,
		phone,
	}, "|")
	return uuid.NewSHA1(tokenNamespace, []byte(key)).String()
}

func windowArgumentError(err error, startTime string) error {
	switch {
	case errs.Is(err, schedule.ErrInvalidDate):
		return action.InvalidArgument("date", err.Error())
	case errs.Is(err, schedule.ErrInvalidClock):
		if _, perr := time.Parse(schedule.ClockLayout, startTime); perr != nil {
			return action.InvalidArgument("start_time", err.Error())
		}
		return action.InvalidArgument("end_time", err.Error())
	case errs.Is(err, schedule.ErrInvalidWindow):
		return action.InvalidArgument("end_time", err.Error())
	default:
		return action.InvalidArgument("date", err.Error())
	}
}
