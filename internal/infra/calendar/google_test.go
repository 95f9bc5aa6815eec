//go:build unit

package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	_ "time/tzdata"

	"commerce-actions/internal/domain/schedule"
	"commerce-actions/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// fakeCalendarAPI serves the few Calendar v3 endpoints the adapter uses.
type fakeCalendarAPI struct {
	mu      sync.Mutex
	events  map[string]*gcal.Event
	inserts int
	listErr int
}

func (f *fakeCalendarAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/calendars/primary/events")
	switch {
	case r.Method == http.MethodGet && path == "":
		if f.listErr != 0 {
			writeAPIError(w, f.listErr)
			return
		}
		items := make([]*gcal.Event, 0, len(f.events))
		for _, ev := range f.events {
			items = append(items, ev)
		}
		_ = json.NewEncoder(w).Encode(&gcal.Events{Items: items})
	case r.Method == http.MethodGet:
		ev, ok := f.events[strings.TrimPrefix(path, "/")]
		if !ok {
			writeAPIError(w, http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(ev)
	case r.Method == http.MethodPost:
		f.inserts++
		var ev gcal.Event
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &ev)
		if _, exists := f.events[ev.Id]; exists {
			writeAPIError(w, http.StatusConflict)
			return
		}
		ev.HangoutLink = "https://meet.google.com/abc-defg-hij"
		f.events[ev.Id] = &ev
		_ = json.NewEncoder(w).Encode(&ev)
	default:
		writeAPIError(w, http.StatusMethodNotAllowed)
	}
}

func writeAPIError(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = fmt.Fprintf(w, `{"error":{"code":%d,"message":%q}}`, code, http.StatusText(code))
}

func newTestGoogle(t *testing.T, api *fakeCalendarAPI) (*Google, *time.Location) {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	svc, err := gcal.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test"})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newGoogle(svc, tokens, "primary", loc, logger), loc
}

func testDraft(t *testing.T, loc *time.Location) schedule.EventDraft {
	t.Helper()
	w, err := schedule.NewTimeWindow("2024-07-29", "10:00", "10:30", loc)
	require.NoError(t, err)
	att, err := schedule.NewAttendees("sales@example.com", "buyer@example.com")
	require.NoError(t, err)
	return schedule.EventDraft{Summary: "Video call with customer", Window: w, Attendees: att}
}

func TestGoogle_CreateEvent(t *testing.T) {
	api := &fakeCalendarAPI{events: map[string]*gcal.Event{}}
	g, loc := newTestGoogle(t, api)
	ctx := context.Background()
	draft := testDraft(t, loc)

	first, err := g.CreateEvent(ctx, draft, "token-1")
	require.NoError(t, err)
	assert.Equal(t, eventIDFor("token-1"), first.ID)
	assert.Equal(t, "https://meet.google.com/abc-defg-hij", first.ConferenceLink)
	assert.Equal(t, "token-1", first.RequestToken)
	assert.True(t, first.Window.Start().Equal(draft.Window.Start()))

	t.Run("repeated insert resolves to the existing event", func(t *testing.T) {
		again, err := g.CreateEvent(ctx, draft, "token-1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
		assert.Equal(t, 2, api.inserts)
		assert.Len(t, api.events, 1)
	})

	t.Run("find by token", func(t *testing.T) {
		found, err := g.FindByToken(ctx, "token-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, first.ID, found.ID)

		missing, err := g.FindByToken(ctx, "token-2")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestGoogle_ListEvents(t *testing.T) {
	api := &fakeCalendarAPI{events: map[string]*gcal.Event{
		"plain": {
			Id:    "plain",
			Start: &gcal.EventDateTime{DateTime: "2024-07-29T10:00:00-05:00"},
			End:   &gcal.EventDateTime{DateTime: "2024-07-29T11:00:00-05:00"},
		},
		"pending": {
			Id:             "pending",
			Start:          &gcal.EventDateTime{DateTime: "2024-07-29T15:00:00Z"},
			End:            &gcal.EventDateTime{DateTime: "2024-07-29T16:00:00Z"},
			ConferenceData: &gcal.ConferenceData{},
		},
		"allday": {
			Id:    "allday",
			Start: &gcal.EventDateTime{Date: "2024-07-29"},
			End:   &gcal.EventDateTime{Date: "2024-07-30"},
		},
	}}
	g, loc := newTestGoogle(t, api)

	w, err := schedule.NewTimeWindow("2024-07-29", "10:00", "11:00", loc)
	require.NoError(t, err)

	events, err := g.ListEvents(context.Background(), w)
	require.NoError(t, err)
	require.Len(t, events, 3)

	byID := map[string]schedule.Event{}
	for _, ev := range events {
		byID[ev.ID] = ev
	}
	assert.False(t, byID["plain"].HasCall())
	assert.True(t, byID["pending"].HasCall(), "conference being provisioned still counts as a call")
	assert.Equal(t, 24*time.Hour, byID["allday"].Window.Duration())

	t.Run("server error maps to unavailable", func(t *testing.T) {
		api.listErr = http.StatusServiceUnavailable
		defer func() { api.listErr = 0 }()

		_, err := g.ListEvents(context.Background(), w)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})

	t.Run("forbidden maps to unauthorized", func(t *testing.T) {
		api.listErr = http.StatusForbidden
		defer func() { api.listErr = 0 }()

		_, err := g.ListEvents(context.Background(), w)
		assert.True(t, infra.IsKind(err, infra.KindUnauthorized))
	})
}

func TestGoogle_Authenticate(t *testing.T) {
	g, _ := newTestGoogle(t, &fakeCalendarAPI{events: map[string]*gcal.Event{}})
	assert.NoError(t, g.Authenticate(context.Background()))
}
