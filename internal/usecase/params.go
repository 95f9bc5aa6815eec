package usecase

import (
	"time"

	"commerce-actions/internal/action"
	"commerce-actions/internal/domain/appointment"
	"commerce-actions/internal/domain/schedule"
	"commerce-actions/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// Parameter structs bound from action args. Field names match the command
// request structs so copier can map them.

type scheduleCallParams struct {
	PhoneNumber    string `json:"phone_number" validate:"required"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string `json:"end_time" validate:"required,datetime=15:04"`
	CompanyEmail   string `json:"company_email" validate:"required,email"`
	UserEmail      string `json:"user_email" validate:"omitempty,email"`
	IdempotencyKey string `json:"idempotency_key" validate:"omitempty,max=200"`
}

// Validate rejects an inverted or empty window before the workflow starts.
func (p scheduleCallParams) Validate() error {
	_, err := schedule.NewTimeWindow(p.Date, p.StartTime, p.EndTime, time.UTC)
	if errs.Is(err, schedule.ErrInvalidWindow) {
		return action.InvalidArgument("end_time", err.Error())
	}
	return nil
}

type discountParams struct {
	DiscountType string  `json:"discount_type" validate:"required"`
	Value        float64 `json:"value" validate:"gt=0"`
	Reason       string  `json:"reason" validate:"required"`
}

type crmParams struct {
	CustomerID string         `json:"customer_id" validate:"required"`
	Details    map[string]any `json:"details" validate:"required"`
}

type customerParams struct {
	CustomerID string `json:"customer_id" validate:"required"`
}

type cartLineParams struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

type modifyCartParams struct {
	CustomerID    string           `json:"customer_id" validate:"required"`
	ItemsToAdd    []cartLineParams `json:"items_to_add" validate:"dive"`
	ItemsToRemove []cartLineParams `json:"items_to_remove" validate:"dive"`
}

func (p modifyCartParams) Validate() error {
	if len(p.ItemsToAdd) == 0 && len(p.ItemsToRemove) == 0 {
		return action.InvalidArgument("items_to_add", "at least one item to add or remove is required")
	}
	for i, l := range p.ItemsToAdd {
		if l.Quantity <= 0 {
			return action.InvalidArgumentf("items_to_add", "item %d: quantity must be greater than 0", i)
		}
	}
	return nil
}

type recommendationParams struct {
	Category   string  `json:"category" validate:"required"`
	CustomerID *string `json:"customer_id"`
}

type availabilityParams struct {
	ProductID string `json:"product_id" validate:"required"`
	StoreID   string `json:"store_id" validate:"required"`
}

type appointmentParams struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeRange  string `json:"time_range" validate:"required"`
	Details    string `json:"details" validate:"required"`
}

func (p appointmentParams) Validate() error {
	if _, err := appointment.ParseTimeRange(p.TimeRange); err != nil {
		return action.InvalidArgument("time_range", err.Error())
	}
	return nil
}

type availableTimesParams struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type instructionsParams struct {
	CustomerID     string `json:"customer_id" validate:"required"`
	Topic          string `json:"topic" validate:"required"`
	DeliveryMethod string `json:"delivery_method" validate:"required,oneof=email sms"`
}

type promotionParams struct {
	CustomerID     string  `json:"customer_id" validate:"required"`
	DiscountValue  float64 `json:"discount_value" validate:"gt=0"`
	DiscountType   string  `json:"discount_type" validate:"required,oneof=percentage fixed"`
	ExpirationDays int     `json:"expiration_days" validate:"gt=0,lte=3650"`
}

// copyInto maps bound params onto the command request R.
func copyInto[R any](params any) (R, error) {
	var req R
	if err := copier.Copy(&req, params); err != nil {
		return req, errs.Wrap(err, "map action params")
	}
	return req, nil
}
