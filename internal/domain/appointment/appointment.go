package appointment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeRange = errors.New(`time range must look like "9-12" with hours between 0 and 24`)
	ErrMissingDetails   = errors.New("appointment details are required")
)

// TimeRange is a whole-hour service slot such as "9-12".
type TimeRange struct {
	startHour int
	endHour   int
}

func NewTimeRange(startHour, endHour int) (TimeRange, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{startHour: startHour, endHour: endHour}, nil
}

func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return TimeRange{}, ErrInvalidTimeRange
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeRange{}, ErrInvalidTimeRange
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return NewTimeRange(start, end)
}

func (r TimeRange) StartHour() int { return r.startHour }
func (r TimeRange) EndHour() int   { return r.endHour }

func (r TimeRange) String() string {
	return fmt.Sprintf("%d-%d", r.startHour, r.endHour)
}

func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.startHour < other.endHour && r.endHour > other.startHour
}

// DefaultSlots are the service slots offered on any working day.
var DefaultSlots = []TimeRange{
	{startHour: 9, endHour: 12},
	{startHour: 13, endHour: 16},
}

// FreeSlots keeps the offered slots that do not overlap a booked range.
func FreeSlots(offered, booked []TimeRange) []TimeRange {
	out := make([]TimeRange, 0, len(offered))
	for _, slot := range offered {
		taken := false
		for _, b := range booked {
			if slot.Overlaps(b) {
				taken = true
				break
			}
		}
		if !taken {
			out = append(out, slot)
		}
	}
	return out
}

type Appointment struct {
	id         uuid.UUID
	customerID customer.ID
	date       string
	timeRange  TimeRange
	details    string
}

func NewAppointment(customerID customer.ID, date string, r TimeRange, details string) (*Appointment, error) {
	if _, err := time.Parse(schedule.DateLayout, date); err != nil {
		return nil, schedule.ErrInvalidDate
	}
	details = strings.TrimSpace(details)
	if details == "" {
		return nil, ErrMissingDetails
	}
	return &Appointment{
		id:         uuid.New(),
		customerID: customerID,
		date:       date,
		timeRange:  r,
		details:    details,
	}, nil
}

func (a *Appointment) ID() uuid.UUID           { return a.id }
func (a *Appointment) CustomerID() customer.ID { return a.customerID }
func (a *Appointment) Date() string            { return a.date }
func (a *Appointment) TimeRange() TimeRange    { return a.timeRange }
func (a *Appointment) Details() string         { return a.details }

// ConfirmationTime is the "YYYY-MM-DD H:00" stamp shown to the customer.
func (a *Appointment) ConfirmationTime() string {
	return fmt.Sprintf("%s %d:00", a.date, a.timeRange.startHour)
}
