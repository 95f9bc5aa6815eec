//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"commerce-actions/internal/action"
	"commerce-actions/internal/domain/schedule"
	"commerce-actions/internal/infra"
	"commerce-actions/internal/infra/lock"
	"commerce-actions/internal/usecase/commands"
	commandsmock "commerce-actions/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func bogota(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

type ScheduleCallTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	calendar *commandsmock.MockCalendar
	mailer   *commandsmock.MockMailer
	loc      *time.Location
	uc       commands.SchedulingCommands
}

func (s *ScheduleCallTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.calendar = commandsmock.NewMockCalendar(s.mockCtrl)
	s.mailer = commandsmock.NewMockMailer(s.mockCtrl)
	s.loc = bogota(s.T())

	s.calendar.EXPECT().CalendarID().Return("team@example.com").AnyTimes()
	s.uc = commands.NewSchedulingUseCase(s.calendar, s.mailer, lock.NewLocal(), s.loc,
		"Video call with customer", 0, discard)
}

func (s *ScheduleCallTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleCallSuite(t *testing.T) {
	suite.Run(t, new(ScheduleCallTestSuite))
}

func validCallRequest() commands.ScheduleCallRequest {
	return commands.ScheduleCallRequest{
		PhoneNumber:  "+57 300 000 0000",
		Date:         "2024-07-29",
		StartTime:    "10:00",
		EndTime:      "10:30",
		CompanyEmail: "Sales@Example.com",
	}
}

func createdEvent(draft schedule.EventDraft, token string) schedule.Event {
	return schedule.Event{
		ID:             "evt-1",
		Summary:        draft.Summary,
		Window:         draft.Window,
		Attendees:      draft.Attendees,
		ConferenceLink: "https://meet.example.com/evt-1",
		RequestToken:   token,
	}
}

func (s *ScheduleCallTestSuite) expectFreeSlot() {
	s.calendar.EXPECT().Authenticate(gomock.Any()).Return(nil)
	s.calendar.EXPECT().FindByToken(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return(nil, nil)
}

func (s *ScheduleCallTestSuite) TestScheduleCall() {
	s.Run("success: creates event and notifies the company contact", func() {
		s.expectFreeSlot()
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d schedule.EventDraft, token string) (schedule.Event, error) {
				s.Equal("2024-07-29T15:00:00Z", d.Window.Start().UTC().Format(time.RFC3339))
				s.Equal(schedule.Attendees{"sales@example.com"}, d.Attendees)
				return createdEvent(d, token), nil
			})
		s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg commands.Email) error {
				s.Equal("sales@example.com", msg.To)
				s.Contains(msg.Body, "https://meet.example.com/evt-1")
				return nil
			})

		res, err := s.uc.ScheduleCall(context.Background(), validCallRequest())

		s.Require().NoError(err)
		s.Equal("scheduled", res.Status)
		s.Equal("evt-1", res.EventID)
		s.Equal("https://meet.example.com/evt-1", res.ConferenceLink)
		s.Equal("10:00", res.StartTime)
		s.Equal("10:30", res.EndTime)
		s.Equal("America/Bogota", res.TimeZone)
		s.True(res.NotificationSent)
		s.False(res.Partial())
		s.NotEmpty(res.IdempotencyKey)
	})

	s.Run("success: user email is added as attendee", func() {
		s.expectFreeSlot()
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d schedule.EventDraft, token string) (schedule.Event, error) {
				return createdEvent(d, token), nil
			})
		s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		req := validCallRequest()
		req.UserEmail = "buyer@example.com"
		res, err := s.uc.ScheduleCall(context.Background(), req)

		s.Require().NoError(err)
		s.Equal([]string{"sales@example.com", "buyer@example.com"}, res.Attendees)
	})

	s.Run("success: event without a call does not block the slot", func() {
		s.calendar.EXPECT().Authenticate(gomock.Any()).Return(nil)
		s.calendar.EXPECT().FindByToken(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w schedule.TimeWindow) ([]schedule.Event, error) {
				return []schedule.Event{{ID: "standup", Window: w}}, nil
			})
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d schedule.EventDraft, token string) (schedule.Event, error) {
				return createdEvent(d, token), nil
			})
		s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.uc.ScheduleCall(context.Background(), validCallRequest())
		s.NoError(err)
	})

	s.Run("success: notification failure keeps the booking and reports partial", func() {
		s.expectFreeSlot()
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d schedule.EventDraft, token string) (schedule.Event, error) {
				return createdEvent(d, token), nil
			})
		s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		res, err := s.uc.ScheduleCall(context.Background(), validCallRequest())

		s.Require().NoError(err)
		s.Equal("evt-1", res.EventID)
		s.False(res.NotificationSent)
		s.True(res.Partial())
	})

	s.Run("success: existing token replays without creating or notifying", func() {
		existing := &schedule.Event{ID: "evt-9", ConferenceLink: "https://meet.example.com/evt-9", Attendees: schedule.Attendees{"sales@example.com"}}
		s.calendar.EXPECT().Authenticate(gomock.Any()).Return(nil)
		s.calendar.EXPECT().FindByToken(gomock.Any(), "retry-1").Return(existing, nil)

		req := validCallRequest()
		req.IdempotencyKey = "retry-1"
		res, err := s.uc.ScheduleCall(context.Background(), req)

		s.Require().NoError(err)
		s.Equal("already_scheduled", res.Status)
		s.Equal("evt-9", res.EventID)
		s.True(res.Replayed)
		s.False(res.Partial())
		s.Equal("retry-1", res.IdempotencyKey)
	})

	s.Run("success: identical arguments derive the same token", func() {
		var tokens []string
		for i := 0; i < 2; i++ {
			s.expectFreeSlot()
			s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, d schedule.EventDraft, token string) (schedule.Event, error) {
					tokens = append(tokens, token)
					return createdEvent(d, token), nil
				})
			s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
			_, err := s.uc.ScheduleCall(context.Background(), validCallRequest())
			s.Require().NoError(err)
		}
		s.Require().Len(tokens, 2)
		s.Equal(tokens[0], tokens[1])
	})

	s.Run("conflict: overlapping call", func() {
		s.calendar.EXPECT().Authenticate(gomock.Any()).Return(nil)
		s.calendar.EXPECT().FindByToken(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w schedule.TimeWindow) ([]schedule.Event, error) {
				return []schedule.Event{{ID: "other", Window: w, ConferenceLink: "https://meet.example.com/x"}}, nil
			})

		_, err := s.uc.ScheduleCall(context.Background(), validCallRequest())

		var conflict *action.ConflictError
		s.Require().ErrorAs(err, &conflict)
		s.Equal("slot already has a call", conflict.Reason)
	})

	s.Run("error: authentication failure", func() {
		s.calendar.EXPECT().Authenticate(gomock.Any()).
			Return(infra.WrapAdapterErr(discard, infra.KindUnauthorized, "token", errors.New("invalid_grant")))

		_, err := s.uc.ScheduleCall(context.Background(), validCallRequest())
		s.Equal(action.KindAuthError, action.KindOf(err))
	})

	s.Run("error: listing events fails", func() {
		s.calendar.EXPECT().Authenticate(gomock.Any()).Return(nil)
		s.calendar.EXPECT().FindByToken(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapAdapterErr(discard, infra.KindUnavailable, "list", errors.New("503")))

		_, err := s.uc.ScheduleCall(context.Background(), validCallRequest())
		s.Equal(action.KindCalendarUnavailable, action.KindOf(err))
	})

	s.Run("error: creating the event fails and nothing is sent", func() {
		s.expectFreeSlot()
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(schedule.Event{}, infra.WrapAdapterErr(discard, infra.KindWriteFailed, "insert", errors.New("400")))

		_, err := s.uc.ScheduleCall(context.Background(), validCallRequest())
		s.Equal(action.KindCalendarWriteError, action.KindOf(err))
	})

	s.Run("error: adapter deadline is a timeout", func() {
		s.calendar.EXPECT().Authenticate(gomock.Any()).Return(nil)
		s.calendar.EXPECT().FindByToken(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapAdapterErr(discard, infra.KindUnavailable, "get", context.DeadlineExceeded))

		_, err := s.uc.ScheduleCall(context.Background(), validCallRequest())
		s.Equal(action.KindTimeout, action.KindOf(err))
	})
}

func (s *ScheduleCallTestSuite) TestScheduleCallInvalidArguments() {
	tests := []struct {
		name   string
		mutate func(*commands.ScheduleCallRequest)
		field  string
	}{
		{name: "bad date", mutate: func(r *commands.ScheduleCallRequest) { r.Date = "2024-13-40" }, field: "date"},
		{name: "bad start time", mutate: func(r *commands.ScheduleCallRequest) { r.StartTime = "25:00" }, field: "start_time"},
		{name: "end before start", mutate: func(r *commands.ScheduleCallRequest) { r.EndTime = "09:00" }, field: "end_time"},
		{name: "end equals start", mutate: func(r *commands.ScheduleCallRequest) { r.EndTime = "10:00" }, field: "end_time"},
		{name: "bad company email", mutate: func(r *commands.ScheduleCallRequest) { r.CompanyEmail = "sales" }, field: "company_email"},
		{name: "bad user email", mutate: func(r *commands.ScheduleCallRequest) { r.UserEmail = "x@" }, field: "user_email"},
		{name: "blank phone", mutate: func(r *commands.ScheduleCallRequest) { r.PhoneNumber = "  " }, field: "phone_number"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := validCallRequest()
			tt.mutate(&req)

			_, err := s.uc.ScheduleCall(context.Background(), req)

			s.Equal(action.KindInvalidArgument, action.KindOf(err))
			var argErr *action.ArgumentError
			s.Require().ErrorAs(err, &argErr)
			s.Equal(tt.field, argErr.Field)
		})
	}
}
