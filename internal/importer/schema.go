package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SnapshotSchema is the top-level JSON structure for a shop data import.
// Records reference each other by ref strings; real IDs are assigned during
// conversion.
type SnapshotSchema struct {
	Clients   []ClientImport    `json:"clients"`
	Employees []EmployeeImport  `json:"employees,omitempty"`
	Crews     []CrewImport      `json:"crews,omitempty"`
	Inventory []InventoryImport `json:"inventory,omitempty"`
	Templates []TemplateImport  `json:"templates,omitempty"`
	Jobs      []JobImport       `json:"jobs,omitempty"`
}

// ClientImport defines a client and the vehicles they own.
type ClientImport struct {
	Ref       string          `json:"ref"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Street    string          `json:"street,omitempty"`
	City      string          `json:"city,omitempty"`
	State     string          `json:"state,omitempty"`
	ZipCode   string          `json:"zip_code,omitempty"`
	Vehicles  []VehicleImport `json:"vehicles,omitempty"`
}

type VehicleImport struct {
	Ref          string `json:"ref"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         string `json:"year,omitempty"`
	Registration string `json:"registration,omitempty"`
}

type EmployeeImport struct {
	Ref            string   `json:"ref"`
	Name           string   `json:"name"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Specialization string   `json:"specialization,omitempty"`
	HireDate       *string  `json:"hire_date,omitempty"`
	Status         string   `json:"status,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	CostPerHour    float64  `json:"cost_per_hour,omitempty"`
}

type CrewImport struct {
	Ref         string   `json:"ref"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	MemberRefs  []string `json:"member_refs,omitempty"`
}

type InventoryImport struct {
	Ref          string  `json:"ref"`
	Name         string  `json:"name"`
	Type         string  `json:"type,omitempty"`
	Description  string  `json:"description,omitempty"`
	Quantity     float64 `json:"quantity"`
	MinimumStock float64 `json:"minimum_stock,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	Location     string  `json:"location,omitempty"`
	CostPerUnit  float64 `json:"cost_per_unit,omitempty"`
}

type TemplateImport struct {
	Ref         string       `json:"ref"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Steps       []StepImport `json:"steps,omitempty"`
}

type StepImport struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// JobImport defines a scheduled job. StartTime is RFC 3339.
type JobImport struct {
	Ref           string  `json:"ref"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	VehicleRef    string  `json:"vehicle_ref"`
	EmployeeRef   *string `json:"employee_ref,omitempty"`
	CrewRef       *string `json:"crew_ref,omitempty"`
	TemplateRef   *string `json:"template_ref,omitempty"`
	StartTime     string  `json:"start_time"`
	DurationHours float64 `json:"duration_hours"`
	Status        string  `json:"status,omitempty"`
}

// LoadSnapshotSchema reads and parses a shop snapshot JSON file.
func LoadSnapshotSchema(path string) (*SnapshotSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema SnapshotSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
