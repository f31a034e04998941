package importer

import (
	"fmt"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/domain"
)

var validEmployeeStatuses = map[string]bool{"active": true, "inactive": true}

// ValidateSnapshotSchema checks the snapshot for errors before conversion.
// Returns a slice of all validation errors found so callers can report the
// whole list instead of failing one at a time.
func ValidateSnapshotSchema(schema *SnapshotSchema) []error {
	var errs []error

	clientRefs := make(map[string]bool)
	vehicleRefs := make(map[string]bool)
	errs = append(errs, validateClients(schema.Clients, clientRefs, vehicleRefs)...)

	employeeRefs := make(map[string]bool)
	errs = append(errs, validateEmployees(schema.Employees, employeeRefs)...)

	crewRefs := make(map[string]bool)
	errs = append(errs, validateCrews(schema.Crews, employeeRefs, crewRefs)...)

	itemRefs := make(map[string]bool)
	errs = append(errs, validateInventory(schema.Inventory, itemRefs)...)

	templateRefs := make(map[string]bool)
	errs = append(errs, validateTemplates(schema.Templates, templateRefs)...)

	errs = append(errs, validateJobs(schema.Jobs, vehicleRefs, employeeRefs, crewRefs, templateRefs)...)

	return errs
}

func validateClients(clients []ClientImport, clientRefs, vehicleRefs map[string]bool) []error {
	var errs []error
	for i, c := range clients {
		where := fmt.Sprintf("clients[%d]", i)
		if c.Ref == "" {
			errs = append(errs, fmt.Errorf("%s: ref is required", where))
		} else if clientRefs[c.Ref] {
			errs = append(errs, fmt.Errorf("%s: duplicate ref %q", where, c.Ref))
		} else {
			clientRefs[c.Ref] = true
		}
		if c.FirstName == "" && c.LastName == "" {
			errs = append(errs, fmt.Errorf("%s: a name is required", where))
		}
		for j, v := range c.Vehicles {
			vwhere := fmt.Sprintf("%s.vehicles[%d]", where, j)
			if v.Ref == "" {
				errs = append(errs, fmt.Errorf("%s: ref is required", vwhere))
			} else if vehicleRefs[v.Ref] {
				errs = append(errs, fmt.Errorf("%s: duplicate ref %q", vwhere, v.Ref))
			} else {
				vehicleRefs[v.Ref] = true
			}
			if v.Make == "" || v.Model == "" {
				errs = append(errs, fmt.Errorf("%s: make and model are required", vwhere))
			}
		}
	}
	return errs
}

func validateEmployees(employees []EmployeeImport, refs map[string]bool) []error {
	var errs []error
	for i, e := range employees {
		where := fmt.Sprintf("employees[%d]", i)
		if e.Ref == "" {
			errs = append(errs, fmt.Errorf("%s: ref is required", where))
		} else if refs[e.Ref] {
			errs = append(errs, fmt.Errorf("%s: duplicate ref %q", where, e.Ref))
		} else {
			refs[e.Ref] = true
		}
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", where))
		}
		if e.Status != "" && !validEmployeeStatuses[e.Status] {
			errs = append(errs, fmt.Errorf("%s: invalid status %q", where, e.Status))
		}
		if e.CostPerHour < 0 {
			errs = append(errs, fmt.Errorf("%s: cost_per_hour cannot be negative", where))
		}
		if e.HireDate != nil {
			if _, err := time.Parse("2006-01-02", *e.HireDate); err != nil {
				errs = append(errs, fmt.Errorf("%s: invalid hire_date %q (expected YYYY-MM-DD)", where, *e.HireDate))
			}
		}
	}
	return errs
}

func validateCrews(crews []CrewImport, employeeRefs, crewRefs map[string]bool) []error {
	var errs []error
	for i, c := range crews {
		where := fmt.Sprintf("crews[%d]", i)
		if c.Ref == "" {
			errs = append(errs, fmt.Errorf("%s: ref is required", where))
		} else if crewRefs[c.Ref] {
			errs = append(errs, fmt.Errorf("%s: duplicate ref %q", where, c.Ref))
		} else {
			crewRefs[c.Ref] = true
		}
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", where))
		}
		for _, mref := range c.MemberRefs {
			if !employeeRefs[mref] {
				errs = append(errs, fmt.Errorf("%s: member_ref %q not found", where, mref))
			}
		}
	}
	return errs
}

func validateInventory(items []InventoryImport, refs map[string]bool) []error {
	var errs []error
	for i, item := range items {
		where := fmt.Sprintf("inventory[%d]", i)
		if item.Ref == "" {
			errs = append(errs, fmt.Errorf("%s: ref is required", where))
		} else if refs[item.Ref] {
			errs = append(errs, fmt.Errorf("%s: duplicate ref %q", where, item.Ref))
		} else {
			refs[item.Ref] = true
		}
		if item.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", where))
		}
		if item.Quantity < 0 {
			errs = append(errs, fmt.Errorf("%s: quantity cannot be negative", where))
		}
	}
	return errs
}

func validateTemplates(templates []TemplateImport, refs map[string]bool) []error {
	var errs []error
	for i, t := range templates {
		where := fmt.Sprintf("templates[%d]", i)
		if t.Ref == "" {
			errs = append(errs, fmt.Errorf("%s: ref is required", where))
		} else if refs[t.Ref] {
			errs = append(errs, fmt.Errorf("%s: duplicate ref %q", where, t.Ref))
		} else {
			refs[t.Ref] = true
		}
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", where))
		}
		for j, s := range t.Steps {
			if s.Title == "" {
				errs = append(errs, fmt.Errorf("%s.steps[%d]: title is required", where, j))
			}
		}
	}
	return errs
}

func validateJobs(jobs []JobImport, vehicleRefs, employeeRefs, crewRefs, templateRefs map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, j := range jobs {
		where := fmt.Sprintf("jobs[%d]", i)
		if j.Ref == "" {
			errs = append(errs, fmt.Errorf("%s: ref is required", where))
		} else if seen[j.Ref] {
			errs = append(errs, fmt.Errorf("%s: duplicate ref %q", where, j.Ref))
		} else {
			seen[j.Ref] = true
		}
		if j.Title == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", where))
		}
		if !vehicleRefs[j.VehicleRef] {
			errs = append(errs, fmt.Errorf("%s: vehicle_ref %q not found", where, j.VehicleRef))
		}
		if j.EmployeeRef != nil && j.CrewRef != nil {
			errs = append(errs, fmt.Errorf("%s: employee_ref and crew_ref are mutually exclusive", where))
		}
		if j.EmployeeRef != nil && !employeeRefs[*j.EmployeeRef] {
			errs = append(errs, fmt.Errorf("%s: employee_ref %q not found", where, *j.EmployeeRef))
		}
		if j.CrewRef != nil && !crewRefs[*j.CrewRef] {
			errs = append(errs, fmt.Errorf("%s: crew_ref %q not found", where, *j.CrewRef))
		}
		if j.TemplateRef != nil && !templateRefs[*j.TemplateRef] {
			errs = append(errs, fmt.Errorf("%s: template_ref %q not found", where, *j.TemplateRef))
		}
		if j.StartTime == "" {
			errs = append(errs, fmt.Errorf("%s: start_time is required", where))
		} else if _, err := time.Parse(time.RFC3339, j.StartTime); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid start_time %q (expected RFC 3339)", where, j.StartTime))
		}
		if j.DurationHours <= 0 {
			errs = append(errs, fmt.Errorf("%s: duration_hours must be positive", where))
		}
		if j.Status != "" && !domain.ValidJobStatuses[domain.JobStatus(j.Status)] {
			errs = append(errs, fmt.Errorf("%s: invalid status %q", where, j.Status))
		}
	}
	return errs
}
