package calendar

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"commerce-actions/internal/domain/schedule"
	"commerce-actions/internal/infra"
	"commerce-actions/internal/pkg/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const tokenProperty = "request_token"

// Google talks to Google Calendar with a service account. Event ids are
// derived from request tokens, so a repeated insert is rejected by the API
// and resolved to the event that already exists.
type Google struct {
	svc        *gcal.Service
	tokens     oauth2.TokenSource
	calendarID string
	loc        *time.Location
	logger     *slog.Logger
}

func NewGoogle(ctx context.Context, cfg config.CalendarConfig, logger *slog.Logger) (*Google, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	key, err := os.ReadFile(cfg.ServiceAccountFile)
	if err != nil {
		return nil, infra.WrapAdapterErr(logger, infra.KindUnauthorized, "failed to read service account file", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, key, gcal.CalendarScope)
	if err != nil {
		return nil, infra.WrapAdapterErr(logger, infra.KindUnauthorized, "failed to parse service account credentials", err)
	}

	svc, err := gcal.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, infra.WrapAdapterErr(logger, infra.KindUnavailable, "failed to create calendar service", err)
	}

	return newGoogle(svc, creds.TokenSource, cfg.CalendarID, loc, logger), nil
}

func newGoogle(svc *gcal.Service, tokens oauth2.TokenSource, calendarID string, loc *time.Location, logger *slog.Logger) *Google {
	return &Google{
		svc:        svc,
		tokens:     tokens,
		calendarID: calendarID,
		loc:        loc,
		logger:     logger,
	}
}

func (g *Google) CalendarID() string {
	return g.calendarID
}

// Authenticate makes sure a valid access token can be obtained. The token
// source caches, so this is a network call only when the token expired.
func (g *Google) Authenticate(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		_, err := g.tokens.Token()
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return infra.WrapAdapterErr(g.logger, infra.KindUnauthorized, "failed to obtain calendar access token", err)
		}
		return nil
	case <-ctx.Done():
		return infra.WrapAdapterErr(g.logger, infra.KindTimeout, "calendar authentication timed out", ctx.Err())
	}
}

func (g *Google) ListEvents(ctx context.Context, w schedule.TimeWindow) ([]schedule.Event, error) {
	var out []schedule.Event
	err := g.svc.Events.List(g.calendarID).
		TimeMin(w.Start().Format(time.RFC3339)).
		TimeMax(w.End().Format(time.RFC3339)).
		SingleEvents(true).
		ShowDeleted(false).
		Context(ctx).
		Pages(ctx, func(page *gcal.Events) error {
			for _, item := range page.Items {
				ev, ok := g.toEvent(item)
				if ok {
					out = append(out, ev)
				}
			}
			return nil
		})
	if err != nil {
		return nil, g.wrap(err, infra.KindUnavailable, "failed to list calendar events")
	}
	return out, nil
}

func (g *Google) FindByToken(ctx context.Context, token string) (*schedule.Event, error) {
	item, err := g.svc.Events.Get(g.calendarID, eventIDFor(token)).Context(ctx).Do()
	if err != nil {
		if statusOf(err) == http.StatusNotFound || statusOf(err) == http.StatusGone {
			return nil, nil
		}
		return nil, g.wrap(err, infra.KindUnavailable, "failed to get calendar event")
	}
	if item.Status == "cancelled" {
		return nil, nil
	}
	ev, ok := g.toEvent(item)
	if !ok {
		return nil, nil
	}
	return &ev, nil
}

func (g *Google) CreateEvent(ctx context.Context, draft schedule.EventDraft, token string) (schedule.Event, error) {
	attendees := make([]*gcal.EventAttendee, 0, len(draft.Attendees))
	for _, email := range draft.Attendees {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}

	item := &gcal.Event{
		Id:          eventIDFor(token),
		Summary:     draft.Summary,
		Description: draft.Description,
		Start: &gcal.EventDateTime{
			DateTime: draft.Window.Start().In(g.loc).Format(time.RFC3339),
			TimeZone: g.loc.String(),
		},
		End: &gcal.EventDateTime{
			DateTime: draft.Window.End().In(g.loc).Format(time.RFC3339),
			TimeZone: g.loc.String(),
		},
		Attendees: attendees,
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId:             token,
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
		ExtendedProperties: &gcal.EventExtendedProperties{
			Private: map[string]string{tokenProperty: token},
		},
	}

	created, err := g.svc.Events.Insert(g.calendarID, item).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		if statusOf(err) == http.StatusConflict {
			existing, ferr := g.FindByToken(ctx, token)
			if ferr == nil && existing != nil {
				return *existing, nil
			}
		}
		return schedule.Event{}, g.wrap(err, infra.KindWriteFailed, "failed to insert calendar event")
	}

	ev, ok := g.toEvent(created)
	if !ok {
		return schedule.Event{}, infra.WrapAdapterErr(g.logger, infra.KindWriteFailed, "calendar returned an event without times", nil)
	}
	return ev, nil
}

func (g *Google) toEvent(item *gcal.Event) (schedule.Event, bool) {
	w, ok := g.windowOf(item)
	if !ok {
		return schedule.Event{}, false
	}

	attendees := make(schedule.Attendees, 0, len(item.Attendees))
	for _, a := range item.Attendees {
		attendees = append(attendees, a.Email)
	}

	ev := schedule.Event{
		ID:             item.Id,
		Summary:        item.Summary,
		Window:         w,
		Attendees:      attendees,
		ConferenceLink: conferenceLink(item),
	}
	if item.ExtendedProperties != nil {
		ev.RequestToken = item.ExtendedProperties.Private[tokenProperty]
	}
	return ev, true
}

// windowOf handles timed events and all-day events (date only, end
// exclusive).
func (g *Google) windowOf(item *gcal.Event) (schedule.TimeWindow, bool) {
	if item.Start == nil || item.End == nil {
		return schedule.TimeWindow{}, false
	}
	if item.Start.DateTime != "" && item.End.DateTime != "" {
		start, err1 := time.Parse(time.RFC3339, item.Start.DateTime)
		end, err2 := time.Parse(time.RFC3339, item.End.DateTime)
		if err1 != nil || err2 != nil {
			return schedule.TimeWindow{}, false
		}
		w, err := schedule.NewWindow(start.In(g.loc), end.In(g.loc))
		return w, err == nil
	}
	start, err1 := time.ParseInLocation(schedule.DateLayout, item.Start.Date, g.loc)
	end, err2 := time.ParseInLocation(schedule.DateLayout, item.End.Date, g.loc)
	if err1 != nil || err2 != nil {
		return schedule.TimeWindow{}, false
	}
	w, err := schedule.NewWindow(start, end)
	return w, err == nil
}

// conferenceLink returns the join URL. An event whose conference is still
// being provisioned has conference data but no entry point yet; it still
// counts as a call.
func conferenceLink(item *gcal.Event) string {
	if item.HangoutLink != "" {
		return item.HangoutLink
	}
	if item.ConferenceData == nil {
		return ""
	}
	for _, ep := range item.ConferenceData.EntryPoints {
		if ep.EntryPointType == "video" && ep.Uri != "" {
			return ep.Uri
		}
	}
	return "pending:" + item.Id
}

func (g *Google) wrap(err error, fallback infra.AdapterErrorKind, msg string) error {
	switch code := statusOf(err); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return infra.WrapAdapterErr(g.logger, infra.KindUnauthorized, msg, err)
	case code >= 500 || code == http.StatusTooManyRequests:
		return infra.WrapAdapterErr(g.logger, infra.KindUnavailable, msg, err)
	default:
		return infra.WrapAdapterErr(g.logger, fallback, msg, err)
	}
}

func statusOf(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}
