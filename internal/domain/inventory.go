package domain

import "time"

type InventoryItem struct {
	ID            string
	Name          string
	Type          string
	Description   string
	Quantity      float64
	MinimumStock  float64
	Unit          string
	Location      string
	CostPerUnit   float64
	LastRestocked *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStock reports whether the item is at or below its reorder threshold.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinimumStock
}

// UsageRecord captures inventory consumed by a job. CostAtTime is the unit
// cost at the moment of use so later price changes don't rewrite old invoices.
type UsageRecord struct {
	ID         string
	JobID      string
	ItemID     string
	Quantity   float64
	CostAtTime float64
	UsedAt     time.Time
	CreatedAt  time.Time
}

// Cost is the line total for this usage.
func (u *UsageRecord) Cost() float64 {
	return u.Quantity * u.CostAtTime
}
