package contract

import "time"

// InvoiceLineKind distinguishes labor from parts on an invoice.
type InvoiceLineKind string

const (
	LineLabor InvoiceLineKind = "labor"
	LineParts InvoiceLineKind = "parts"
)

type InvoiceLine struct {
	Kind        InvoiceLineKind
	Description string
	Quantity    float64
	Unit        string
	UnitCost    float64
	Total       float64
}

// Invoice is the billable summary of one completed (or in-flight) job.
type Invoice struct {
	JobID        string
	JobTitle     string
	ClientName   string
	VehicleLabel string
	IssuedAt     time.Time
	Lines        []InvoiceLine
	LaborTotal   float64
	PartsTotal   float64
	Total        float64
}
