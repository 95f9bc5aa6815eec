package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidClock    = errors.New("time must be formatted as HH:MM (24h)")
	ErrInvalidWindow   = errors.New("start time must be before end time")
	ErrMissingLocation = errors.New("timezone is required")
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// TimeWindow is a half-open interval [start, end) pinned to absolute instants.
type TimeWindow struct {
	start time.Time
	end   time.Time
	loc   *time.Location
}

// NewTimeWindow combines a calendar date and two wall-clock times in loc.
func NewTimeWindow(date, startClock, endClock string, loc *time.Location) (TimeWindow, error) {
	if loc == nil {
		return TimeWindow{}, ErrMissingLocation
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return TimeWindow{}, ErrInvalidDate
	}

	start, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+startClock, loc)
	if err != nil {
		return TimeWindow{}, ErrInvalidClock
	}
	end, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+endClock, loc)
	if err != nil {
		return TimeWindow{}, ErrInvalidClock
	}

	return NewWindow(start, end)
}

func NewWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidWindow
	}
	return TimeWindow{start: start, end: end, loc: start.Location()}, nil
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w TimeWindow) Location() *time.Location {
	if w.loc == nil {
		return time.UTC
	}
	return w.loc
}

// Overlaps compares absolute instants, so windows expressed in different
// timezones are comparable. Touching windows do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && w.end.After(other.start)
}

func (w TimeWindow) IsZero() bool {
	return w.start.IsZero() && w.end.IsZero()
}

func (w TimeWindow) Date() string {
	return w.start.In(w.Location()).Format(DateLayout)
}

func (w TimeWindow) StartClock() string {
	return w.start.In(w.Location()).Format(ClockLayout)
}

func (w TimeWindow) EndClock() string {
	return w.end.In(w.Location()).Format(ClockLayout)
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
