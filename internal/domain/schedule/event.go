package schedule

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrNoAttendees   = errors.New("at least one attendee is required")
	ErrMissingWindow = errors.New("event window is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func NormalizeEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(s), nil
}

// Attendees is an ordered set of normalized addresses; the first entry is
// the organizer-side stakeholder.
type Attendees []string

func NewAttendees(primary string, others ...string) (Attendees, error) {
	seen := make(map[string]struct{}, len(others)+1)
	out := make(Attendees, 0, len(others)+1)

	for i, raw := range append([]string{primary}, others...) {
		if i > 0 && strings.TrimSpace(raw) == "" {
			continue
		}
		email, err := NormalizeEmail(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out, nil
}

// EventDraft is what the workflow asks the calendar to create. The
// conference link is never part of a draft: the calendar assigns it.
type EventDraft struct {
	Summary     string
	Description string
	Window      TimeWindow
	Attendees   Attendees
}

func (d EventDraft) Validate() error {
	if d.Window.IsZero() {
		return ErrMissingWindow
	}
	if len(d.Attendees) == 0 {
		return ErrNoAttendees
	}
	return nil
}

type Event struct {
	ID             string
	Summary        string
	Window         TimeWindow
	Attendees      Attendees
	ConferenceLink string
	RequestToken   string
}

// HasCall reports whether the event already carries a generated
// conferencing link; only such events block a new call.
func (e Event) HasCall() bool {
	return e.ConferenceLink != ""
}

// FindCallConflict returns the first existing call overlapping w.
func FindCallConflict(existing []Event, w TimeWindow) (Event, bool) {
	for _, ev := range existing {
		if ev.HasCall() && ev.Window.Overlaps(w) {
			return ev, true
		}
	}
	return Event{}, false
}
