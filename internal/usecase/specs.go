package usecase

import "commerce-actions/internal/action"

const cartLinesSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["product_id"],
    "properties": {
      "product_id": {"type": "string", "minLength": 1},
      "quantity": {"type": "integer", "minimum": 0}
    },
    "additionalProperties": false
  }
}`

const crmDetailsSchema = `{"type": "object", "minProperties": 1}`

var customerIDParam = action.Param{
	Name: "customer_id", Type: action.TypeString, Required: true,
	Description: "Customer identifier.",
}

var discountParamList = []action.Param{
	{Name: "discount_type", Type: action.TypeString, Required: true, Enum: []string{"percentage", "flat"}},
	{Name: "value", Type: action.TypeNumber, Required: true, Description: "Greater than 0; at most 100 for percentage."},
	{Name: "reason", Type: action.TypeString, Required: true},
}

var scheduleCallSpec = action.Spec{
	Name:        "schedule_call",
	Description: "Book a video call in the shared calendar and email the company contact.",
	Params: []action.Param{
		{Name: "phone_number", Type: action.TypeString, Required: true},
		{Name: "date", Type: action.TypeString, Required: true, Description: "YYYY-MM-DD in the calendar timezone."},
		{Name: "start_time", Type: action.TypeString, Required: true, Description: "HH:MM, 24h."},
		{Name: "end_time", Type: action.TypeString, Required: true, Description: "HH:MM, 24h, after start_time."},
		{Name: "company_email", Type: action.TypeString, Required: true},
		{Name: "user_email", Type: action.TypeString},
		{Name: "idempotency_key", Type: action.TypeString, Description: "Reuse to retry safely; derived from the arguments when omitted."},
	},
	Result: action.ResultShape{
		Description: "The booked call. partial=true means the notification email was not sent.",
		Example: map[string]any{
			"status": "scheduled", "event_id": "3f2a...", "conference_link": "https://meet.google.com/abc-defg-hij",
			"date": "2024-07-29", "start_time": "10:00", "end_time": "10:30", "notification_sent": true,
		},
	},
}

var approveDiscountSpec = action.Spec{
	Name:        "approve_discount",
	Description: "Approve a discount within the assistant's own authority.",
	Params:      discountParamList,
	Result:      action.ResultShape{Description: "Approval acknowledgement.", Example: map[string]any{"status": "ok"}},
}

var requestApprovalSpec = action.Spec{
	Name:        "request_approval",
	Description: "Ask a manager to approve a discount.",
	Params:      discountParamList,
	Result:      action.ResultShape{Description: "Manager decision.", Example: map[string]any{"status": "approved"}},
}

var updateCRMRecordSpec = action.Spec{
	Name:        "update_crm_record",
	Description: "Merge details into the customer's CRM record.",
	Params: []action.Param{
		customerIDParam,
		{Name: "details", Type: action.TypeObject, Required: true, Schema: crmDetailsSchema},
	},
	Result: action.ResultShape{
		Description: "CRM acknowledgement.",
		Example:     map[string]any{"status": "success", "message": "CRM record updated."},
	},
}

var accessCartSpec = action.Spec{
	Name:        "access_cart",
	Description: "Read the customer's cart.",
	Params:      []action.Param{customerIDParam},
	Result: action.ResultShape{
		Description: "Cart items in order with the backend's subtotal.",
		Example: map[string]any{
			"customer_id": "123",
			"items": []map[string]any{
				{"product_id": "soil-123", "name": "Standard Potting Soil", "quantity": 1},
				{"product_id": "fert-456", "name": "General Purpose Fertilizer", "quantity": 1},
			},
			"subtotal": 25.98,
		},
	},
}

var modifyCartSpec = action.Spec{
	Name:        "modify_cart",
	Description: "Add and remove cart items. A removal without quantity removes the whole line.",
	Params: []action.Param{
		customerIDParam,
		{Name: "items_to_add", Type: action.TypeArray, Schema: cartLinesSchema},
		{Name: "items_to_remove", Type: action.TypeArray, Schema: cartLinesSchema},
	},
	Result: action.ResultShape{
		Description: "Which kinds of change were applied and the resulting cart.",
		Example: map[string]any{
			"status": "success", "message": "Cart updated successfully.",
			"items_added": true, "items_removed": false,
		},
	},
}

var recommendationsSpec = action.Spec{
	Name:        "get_recommendations",
	Description: "Suggest products for a plant category; unknown categories get the general set.",
	Params: []action.Param{
		{Name: "category", Type: action.TypeString, Required: true},
		{Name: "customer_id", Type: action.TypeString},
	},
	Result: action.ResultShape{
		Description: "Recommended products; in_cart marks products already in the customer's cart.",
		Example: map[string]any{
			"category": "petunias",
			"recommendations": []map[string]any{
				{"product_id": "soil-456", "name": "Bloom Booster Potting Mix", "in_cart": false},
			},
		},
	},
}

var availabilitySpec = action.Spec{
	Name:        "check_availability",
	Description: "Check a product's stock at a store.",
	Params: []action.Param{
		{Name: "product_id", Type: action.TypeString, Required: true},
		{Name: "store_id", Type: action.TypeString, Required: true},
	},
	Result: action.ResultShape{
		Description: "Stock at the store; no record means not available.",
		Example:     map[string]any{"available": true, "quantity": 10, "store": "Main Store"},
	},
}

var scheduleAppointmentSpec = action.Spec{
	Name:        "schedule_appointment",
	Description: "Book a planting service appointment.",
	Params: []action.Param{
		customerIDParam,
		{Name: "date", Type: action.TypeString, Required: true, Description: "YYYY-MM-DD."},
		{Name: "time_range", Type: action.TypeString, Required: true, Description: `Whole hours such as "9-12".`},
		{Name: "details", Type: action.TypeString, Required: true},
	},
	Result: action.ResultShape{
		Description: "Booking confirmation.",
		Example: map[string]any{
			"status": "success", "appointment_id": "5d0e...", "date": "2024-07-29",
			"time": "9-12", "confirmation_time": "2024-07-29 9:00",
		},
	},
}

var availableTimesSpec = action.Spec{
	Name:        "list_available_times",
	Description: "List the service time ranges still free on a date.",
	Params: []action.Param{
		{Name: "date", Type: action.TypeString, Required: true, Description: "YYYY-MM-DD."},
	},
	Result: action.ResultShape{
		Description: "Free ranges in order.",
		Example:     map[string]any{"date": "2024-07-29", "available_times": []string{"9-12", "13-16"}},
	},
}

var sendInstructionsSpec = action.Spec{
	Name:        "send_instructions",
	Description: "Send care instructions to the customer.",
	Params: []action.Param{
		customerIDParam,
		{Name: "topic", Type: action.TypeString, Required: true, Description: "Plant or product the instructions are about."},
		{Name: "delivery_method", Type: action.TypeString, Required: true, Enum: []string{"email", "sms"}},
	},
	Result: action.ResultShape{
		Description: "Delivery receipt.",
		Example:     map[string]any{"status": "success", "message": "Care instructions for Petunias sent via email."},
	},
}

var promotionCodeSpec = action.Spec{
	Name:        "generate_promotion_code",
	Description: "Issue a single-customer promotion code the caller can render as a QR code.",
	Params: []action.Param{
		customerIDParam,
		{Name: "discount_value", Type: action.TypeNumber, Required: true},
		{Name: "discount_type", Type: action.TypeString, Required: true, Enum: []string{"percentage", "fixed"}},
		{Name: "expiration_days", Type: action.TypeInteger, Required: true, Description: "Between 1 and 3650."},
	},
	Result: action.ResultShape{
		Description: "The code, its QR payload and the last valid day.",
		Example: map[string]any{
			"status": "success", "code": "PROMO-1A2B3C4D5E",
			"payload":         "promo:PROMO-1A2B3C4D5E?type=percentage&value=10&expires=2024-08-28",
			"expiration_date": "2024-08-28",
		},
	},
}
