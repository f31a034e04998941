package service

import (
	"context"
	"fmt"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/contract"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/izayahhudnut/detailerpro/internal/repository"
)

type invoiceService struct {
	jobs  repository.JobRepo
	items repository.InventoryRepo
	now   func() time.Time
}

func NewInvoiceService(jobs repository.JobRepo, items repository.InventoryRepo) InvoiceService {
	return &invoiceService{jobs: jobs, items: items, now: func() time.Time { return time.Now().UTC() }}
}

func (s *invoiceService) Generate(ctx context.Context, jobID string) (*contract.Invoice, error) {
	detail, err := s.jobs.GetDetail(ctx, jobID)
	if err != nil {
		return nil, err
	}

	inv := &contract.Invoice{
		JobID:        detail.ID,
		JobTitle:     detail.Title,
		ClientName:   detail.Client.FullName(),
		VehicleLabel: detail.Vehicle.Label(),
		IssuedAt:     s.now(),
	}

	rate, who := assigneeRate(detail)
	if rate > 0 {
		line := contract.InvoiceLine{
			Kind:        contract.LineLabor,
			Description: fmt.Sprintf("Labor (%s)", who),
			Quantity:    detail.DurationHours,
			Unit:        "hr",
			UnitCost:    rate,
			Total:       detail.DurationHours * rate,
		}
		inv.Lines = append(inv.Lines, line)
		inv.LaborTotal += line.Total
	}

	for _, u := range detail.Usage {
		desc := u.ItemID
		unit := "unit"
		if item, err := s.items.GetByID(ctx, u.ItemID); err == nil {
			desc = item.Name
			unit = item.Unit
		}
		line := contract.InvoiceLine{
			Kind:        contract.LineParts,
			Description: desc,
			Quantity:    u.Quantity,
			Unit:        unit,
			UnitCost:    u.CostAtTime,
			Total:       u.Cost(),
		}
		inv.Lines = append(inv.Lines, line)
		inv.PartsTotal += line.Total
	}

	inv.Total = inv.LaborTotal + inv.PartsTotal
	return inv, nil
}

// assigneeRate resolves the hourly billing rate for whoever the job is
// assigned to. Crews bill at the sum of their members' rates.
func assigneeRate(d *domain.JobDetail) (float64, string) {
	switch {
	case d.Employee != nil:
		return d.Employee.CostPerHour, d.Employee.Name
	case d.Crew != nil:
		return d.Crew.HourlyCost(), d.Crew.Name
	default:
		return 0, ""
	}
}
