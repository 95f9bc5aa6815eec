package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"

	"commerce-actions/internal/domain/appointment"
	"commerce-actions/internal/domain/cart"
	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/domain/promotion"
	"commerce-actions/internal/domain/schedule"
)

// Calendar is the external scheduling system. FindByToken returns nil, nil
// when no event was created with the token.
type Calendar interface {
	CalendarID() string
	Authenticate(ctx context.Context) error
	ListEvents(ctx context.Context, w schedule.TimeWindow) ([]schedule.Event, error)
	FindByToken(ctx context.Context, token string) (*schedule.Event, error)
	CreateEvent(ctx context.Context, draft schedule.EventDraft, token string) (schedule.Event, error)
}

type Email struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

type CRMAck struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CRM interface {
	Upsert(ctx context.Context, customerID customer.ID, details map[string]any) (CRMAck, error)
}

type CartWriter interface {
	ApplyChanges(ctx context.Context, customerID customer.ID, changes cart.ChangeSet) (cart.Cart, error)
}

type AppointmentBook interface {
	Book(ctx context.Context, a *appointment.Appointment) error
	BookedRanges(ctx context.Context, date string) ([]appointment.TimeRange, error)
}

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

type Message struct {
	CustomerID customer.ID
	Channel    Channel
	Subject    string
	Body       string
}

type Messenger interface {
	Deliver(ctx context.Context, msg Message) error
}

type PromotionIssuer interface {
	Issue(ctx context.Context, code *promotion.Code) error
}

// Locker serializes critical sections across invocations (and replicas when
// backed by a shared store). The returned func releases the lock.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}
