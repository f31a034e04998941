package service

import (
	"context"
	"fmt"

	"github.com/izayahhudnut/detailerpro/internal/db"
	"github.com/izayahhudnut/detailerpro/internal/importer"
	"github.com/izayahhudnut/detailerpro/internal/repository"
)

// ImportResult summarizes what a snapshot import wrote.
type ImportResult struct {
	Clients   int
	Vehicles  int
	Employees int
	Crews     int
	Inventory int
	Templates int
	Jobs      int
}

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadSnapshotSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportFromSchema(ctx, schema)
}

func (s *importService) ImportFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*ImportResult, error) {
	if errs := importer.ValidateSnapshotSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	snap, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting snapshot: %w", err)
	}

	// All or nothing: a failure partway through leaves the database as it
	// was before the import.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		clients := repository.NewSQLiteClientRepo(tx)
		vehicles := repository.NewSQLiteVehicleRepo(tx)
		employees := repository.NewSQLiteEmployeeRepo(tx)
		crews := repository.NewSQLiteCrewRepo(tx)
		items := repository.NewSQLiteInventoryRepo(tx)
		templates := repository.NewSQLiteTemplateRepo(tx)
		jobs := repository.NewSQLiteJobRepo(tx)

		for _, c := range snap.Clients {
			if err := clients.Create(ctx, c); err != nil {
				return fmt.Errorf("creating client %q: %w", c.FullName(), err)
			}
		}
		for _, v := range snap.Vehicles {
			if err := vehicles.Create(ctx, v); err != nil {
				return fmt.Errorf("creating vehicle %q: %w", v.Label(), err)
			}
		}
		for _, e := range snap.Employees {
			if err := employees.Create(ctx, e); err != nil {
				return fmt.Errorf("creating employee %q: %w", e.Name, err)
			}
		}
		for _, c := range snap.Crews {
			if err := crews.Create(ctx, c); err != nil {
				return fmt.Errorf("creating crew %q: %w", c.Name, err)
			}
			for _, memberID := range snap.CrewMembers[c.ID] {
				if err := crews.AddMember(ctx, c.ID, memberID); err != nil {
					return fmt.Errorf("adding member to crew %q: %w", c.Name, err)
				}
			}
		}
		for _, item := range snap.Inventory {
			if err := items.Create(ctx, item); err != nil {
				return fmt.Errorf("creating inventory item %q: %w", item.Name, err)
			}
		}
		for _, tmpl := range snap.Templates {
			if err := templates.Create(ctx, tmpl); err != nil {
				return fmt.Errorf("creating template %q: %w", tmpl.Name, err)
			}
		}
		for _, j := range snap.Jobs {
			if err := jobs.Create(ctx, j); err != nil {
				return fmt.Errorf("creating job %q: %w", j.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Clients:   len(snap.Clients),
		Vehicles:  len(snap.Vehicles),
		Employees: len(snap.Employees),
		Crews:     len(snap.Crews),
		Inventory: len(snap.Inventory),
		Templates: len(snap.Templates),
		Jobs:      len(snap.Jobs),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
