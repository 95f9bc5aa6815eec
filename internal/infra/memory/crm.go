package memory

import (
	"context"
	"maps"
	"sync"

	"commerce-actions/internal/domain/customer"
	"commerce-actions/internal/usecase/commands"
)

// CRM merges details into one record per customer.
type CRM struct {
	mu      sync.Mutex
	records map[customer.ID]map[string]any
}

func NewCRM() *CRM {
	return &CRM{records: make(map[customer.ID]map[string]any)}
}

func (c *CRM) Upsert(_ context.Context, customerID customer.ID, details map[string]any) (commands.CRMAck, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.records[customerID]
	if !ok {
		rec = make(map[string]any, len(details))
		c.records[customerID] = rec
	}
	maps.Copy(rec, details)
	return commands.CRMAck{Status: "success", Message: "CRM record updated."}, nil
}

func (c *CRM) Record(customerID customer.ID) map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.records[customerID])
}
