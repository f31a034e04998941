package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

// Snapshot holds converted domain objects ready for persistence, in
// dependency order.
type Snapshot struct {
	Clients   []*domain.Client
	Vehicles  []*domain.Vehicle
	Employees []*domain.Employee
	Crews     []*domain.Crew
	// CrewMembers maps crew ID to member employee IDs.
	CrewMembers map[string][]string
	Inventory   []*domain.InventoryItem
	Templates   []*domain.ProgressTemplate
	Jobs        []*domain.Job
}

// Convert transforms a validated SnapshotSchema into domain objects. Call
// ValidateSnapshotSchema first; Convert assumes the schema is valid and only
// fails on inconsistencies validation cannot see.
func Convert(schema *SnapshotSchema) (*Snapshot, error) {
	now := time.Now().UTC()
	snap := &Snapshot{CrewMembers: make(map[string][]string)}
	refMap := make(map[string]string) // ref -> UUID

	for _, c := range schema.Clients {
		clientID := uuid.New().String()
		refMap[c.Ref] = clientID
		snap.Clients = append(snap.Clients, &domain.Client{
			ID:        clientID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
			Street:    c.Street,
			City:      c.City,
			State:     c.State,
			ZipCode:   c.ZipCode,
			CreatedAt: now,
			UpdatedAt: now,
		})
		for _, v := range c.Vehicles {
			vehicleID := uuid.New().String()
			refMap[v.Ref] = vehicleID
			snap.Vehicles = append(snap.Vehicles, &domain.Vehicle{
				ID:           vehicleID,
				ClientID:     clientID,
				Make:         v.Make,
				Model:        v.Model,
				Year:         v.Year,
				Registration: v.Registration,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
		}
	}

	for _, e := range schema.Employees {
		id := uuid.New().String()
		refMap[e.Ref] = id
		status := domain.EmployeeStatus(e.Status)
		if status == "" {
			status = domain.EmployeeActive
		}
		var hireDate *time.Time
		if e.HireDate != nil {
			t, err := time.Parse("2006-01-02", *e.HireDate)
			if err != nil {
				return nil, fmt.Errorf("parsing hire_date for %q: %w", e.Ref, err)
			}
			hireDate = &t
		}
		snap.Employees = append(snap.Employees, &domain.Employee{
			ID:             id,
			Name:           e.Name,
			Email:          e.Email,
			Phone:          e.Phone,
			Specialization: e.Specialization,
			HireDate:       hireDate,
			Status:         status,
			Certifications: e.Certifications,
			CostPerHour:    e.CostPerHour,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	for _, c := range schema.Crews {
		id := uuid.New().String()
		refMap[c.Ref] = id
		snap.Crews = append(snap.Crews, &domain.Crew{
			ID:          id,
			Name:        c.Name,
			Description: c.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		for _, mref := range c.MemberRefs {
			memberID, ok := refMap[mref]
			if !ok {
				return nil, fmt.Errorf("member_ref %q not found for crew %q", mref, c.Ref)
			}
			snap.CrewMembers[id] = append(snap.CrewMembers[id], memberID)
		}
	}

	for _, item := range schema.Inventory {
		id := uuid.New().String()
		refMap[item.Ref] = id
		unit := item.Unit
		if unit == "" {
			unit = "unit"
		}
		snap.Inventory = append(snap.Inventory, &domain.InventoryItem{
			ID:           id,
			Name:         item.Name,
			Type:         item.Type,
			Description:  item.Description,
			Quantity:     item.Quantity,
			MinimumStock: item.MinimumStock,
			Unit:         unit,
			Location:     item.Location,
			CostPerUnit:  item.CostPerUnit,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	for _, t := range schema.Templates {
		id := uuid.New().String()
		refMap[t.Ref] = id
		tmpl := &domain.ProgressTemplate{
			ID:          id,
			Name:        t.Name,
			Description: t.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		for i, s := range t.Steps {
			tmpl.Steps = append(tmpl.Steps, domain.ProgressStep{
				ID:          uuid.New().String(),
				TemplateID:  id,
				Title:       s.Title,
				Description: s.Description,
				OrderNumber: i + 1,
				CreatedAt:   now,
			})
		}
		snap.Templates = append(snap.Templates, tmpl)
	}

	for _, j := range schema.Jobs {
		id := uuid.New().String()
		refMap[j.Ref] = id

		vehicleID, ok := refMap[j.VehicleRef]
		if !ok {
			return nil, fmt.Errorf("vehicle_ref %q not found for job %q", j.VehicleRef, j.Ref)
		}
		start, err := time.Parse(time.RFC3339, j.StartTime)
		if err != nil {
			return nil, fmt.Errorf("parsing start_time for %q: %w", j.Ref, err)
		}

		status := domain.JobStatus(j.Status)
		if status == "" {
			status = domain.JobNotStarted
		}

		job := &domain.Job{
			ID:            id,
			Title:         j.Title,
			Description:   j.Description,
			VehicleID:     vehicleID,
			StartTime:     start,
			DurationHours: j.DurationHours,
			Status:        status,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if j.EmployeeRef != nil {
			eid, ok := refMap[*j.EmployeeRef]
			if !ok {
				return nil, fmt.Errorf("employee_ref %q not found for job %q", *j.EmployeeRef, j.Ref)
			}
			job.EmployeeID = &eid
		}
		if j.CrewRef != nil {
			cid, ok := refMap[*j.CrewRef]
			if !ok {
				return nil, fmt.Errorf("crew_ref %q not found for job %q", *j.CrewRef, j.Ref)
			}
			job.CrewID = &cid
		}
		if j.TemplateRef != nil {
			tid, ok := refMap[*j.TemplateRef]
			if !ok {
				return nil, fmt.Errorf("template_ref %q not found for job %q", *j.TemplateRef, j.Ref)
			}
			job.TemplateID = &tid
		}
		snap.Jobs = append(snap.Jobs, job)
	}

	return snap, nil
}
