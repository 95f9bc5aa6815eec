package promotion

import (
	"fmt"
	"strings"
	"time"

	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/domain/discount"

	"github.com/google/uuid"
)

// MaxExpirationDays keeps expiration dates within a representable range.
const MaxExpirationDays = 3650

var ErrInvalidExpiration = fmt.Errorf("expiration days must be between 1 and %d", MaxExpirationDays)

const ExpirationLayout = "2006-01-02"

type Code struct {
	code       string
	customerID customer.ID
	amount     discount.Amount
	expiresOn  time.Time
}

// NewCode issues a code valid until now+expirationDays (calendar days in
// now's location).
func NewCode(customerID customer.ID, amount discount.Amount, expirationDays int, now time.Time) (*Code, error) {
	if expirationDays <= 0 || expirationDays > MaxExpirationDays {
		return nil, ErrInvalidExpiration
	}
	return &Code{
		code:       generateCode(),
		customerID: customerID,
		amount:     amount,
		expiresOn:  ExpirationDate(now, expirationDays),
	}, nil
}

func ExpirationDate(now time.Time, days int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, days)
}

func (c *Code) Code() string            { return c.code }
func (c *Code) CustomerID() customer.ID { return c.customerID }
func (c *Code) Amount() discount.Amount { return c.amount }
func (c *Code) ExpirationDate() string  { return c.expiresOn.Format(ExpirationLayout) }

// Payload is the string the caller renders as a QR code at checkout.
func (c *Code) Payload() string {
	return fmt.Sprintf("promo:%s?type=%s&value=%g&expires=%s",
		c.code, c.amount.Type(), c.amount.Value(), c.ExpirationDate())
}

func generateCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "PROMO-" + strings.ToUpper(raw[:10])
}
