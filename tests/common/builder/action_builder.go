//go:build unit || e2e

package builder

// ActionArgsBuilder produces valid argument objects for catalog actions;
// tests mutate them with testutil.Field.
type ActionArgsBuilder struct {
	customerID string
	date       string
}

func NewActionArgsBuilder() *ActionArgsBuilder {
	return &ActionArgsBuilder{
		customerID: "123",
		date:       "2024-07-29",
	}
}

func (b *ActionArgsBuilder) WithCustomer(id string) *ActionArgsBuilder {
	b.customerID = id
	return b
}

func (b *ActionArgsBuilder) WithDate(date string) *ActionArgsBuilder {
	b.date = date
	return b
}

func (b *ActionArgsBuilder) ScheduleCall(start, end string) map[string]any {
	return map[string]any{
		"phone_number":  "+57 300 000 0000",
		"date":          b.date,
		"start_time":    start,
		"end_time":      end,
		"company_email": "sales@example.com",
	}
}

func (b *ActionArgsBuilder) ModifyCart(add, remove []map[string]any) map[string]any {
	m := map[string]any{"customer_id": b.customerID}
	if add != nil {
		m["items_to_add"] = add
	}
	if remove != nil {
		m["items_to_remove"] = remove
	}
	return m
}

func (b *ActionArgsBuilder) ScheduleAppointment(timeRange string) map[string]any {
	return map[string]any{
		"customer_id": b.customerID,
		"date":        b.date,
		"time_range":  timeRange,
		"details":     "Plant 12 petunias in the front bed",
	}
}

func (b *ActionArgsBuilder) GeneratePromotionCode(value float64, kind string, days int) map[string]any {
	return map[string]any{
		"customer_id":     b.customerID,
		"discount_value":  value,
		"discount_type":   kind,
		"expiration_days": days,
	}
}

func (b *ActionArgsBuilder) SendInstructions(topic, method string) map[string]any {
	return map[string]any{
		"customer_id":     b.customerID,
		"topic":           topic,
		"delivery_method": method,
	}
}

func (b *ActionArgsBuilder) UpdateCRMRecord(details map[string]any) map[string]any {
	return map[string]any{
		"customer_id": b.customerID,
		"details":     details,
	}
}
