package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"commerce-actions/internal/domain/schedule"

	"github.com/google/uuid"
)

// Memory is an in-process calendar. It assigns event ids and conference
// links the way a hosted calendar would, and remembers request tokens.
type Memory struct {
	mu         sync.Mutex
	calendarID string
	events     []schedule.Event
	writeDelay time.Duration
}

func NewMemory(calendarID string) *Memory {
	return &Memory{calendarID: calendarID}
}

// WithWriteDelay delays CreateEvent responses, for exercising deadlines.
func (m *Memory) WithWriteDelay(d time.Duration) *Memory {
	m.writeDelay = d
	return m
}

func (m *Memory) CalendarID() string {
	return m.calendarID
}

func (m *Memory) Authenticate(ctx context.Context) error {
	return ctx.Err()
}

func (m *Memory) ListEvents(ctx context.Context, w schedule.TimeWindow) ([]schedule.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []schedule.Event
	for _, ev := range m.events {
		if ev.Window.Overlaps(w) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *Memory) FindByToken(ctx context.Context, token string) (*schedule.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ev := range m.events {
		if ev.RequestToken == token {
			found := ev
			return &found, nil
		}
	}
	return nil, nil
}

// CreateEvent is idempotent per token: the second insert returns the event
// created by the first. The write delay is applied after the event is stored, so a
// caller that gives up early still leaves the event behind.
func (m *Memory) CreateEvent(ctx context.Context, draft schedule.EventDraft, token string) (schedule.Event, error) {
	if err := ctx.Err(); err != nil {
		return schedule.Event{}, err
	}
	ev := m.insert(draft, token)
	if err := m.wait(ctx); err != nil {
		return schedule.Event{}, err
	}
	return ev, nil
}

func (m *Memory) insert(draft schedule.EventDraft, token string) schedule.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ev := range m.events {
		if ev.RequestToken == token {
			return ev
		}
	}

	id := eventIDFor(token)
	ev := schedule.Event{
		ID:             id,
		Summary:        draft.Summary,
		Window:         draft.Window,
		Attendees:      draft.Attendees,
		ConferenceLink: fmt.Sprintf("https://meet.example.com/%s", id[:12]),
		RequestToken:   token,
	}
	m.events = append(m.events, ev)
	return ev
}

// Put inserts an existing event, e.g. a plain meeting without a call.
func (m *Memory) Put(ev schedule.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	m.events = append(m.events, ev)
}

func (m *Memory) Events() []schedule.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]schedule.Event(nil), m.events...)
}

func (m *Memory) wait(ctx context.Context) error {
	if m.writeDelay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.writeDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
