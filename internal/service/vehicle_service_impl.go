package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/izayahhudnut/detailerpro/internal/repository"
)

type vehicleService struct {
	vehicles repository.VehicleRepo
	clients  repository.ClientRepo
}

func NewVehicleService(vehicles repository.VehicleRepo, clients repository.ClientRepo) VehicleService {
	return &vehicleService{vehicles: vehicles, clients: clients}
}

func (s *vehicleService) Create(ctx context.Context, v *domain.Vehicle) error {
	if strings.TrimSpace(v.Make) == "" || strings.TrimSpace(v.Model) == "" {
		return fmt.Errorf("vehicle make and model are required")
	}
	if _, err := s.clients.GetByID(ctx, v.ClientID); err != nil {
		return fmt.Errorf("resolving owner: %w", err)
	}
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	v.CreatedAt = time.Now().UTC()
	return s.vehicles.Create(ctx, v)
}

func (s *vehicleService) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicles.GetByID(ctx, id)
}

func (s *vehicleService) List(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.vehicles.List(ctx)
}

func (s *vehicleService) ListByClient(ctx context.Context, clientID string) ([]*domain.Vehicle, error) {
	return s.vehicles.ListByClient(ctx, clientID)
}

func (s *vehicleService) Update(ctx context.Context, v *domain.Vehicle) error {
	return s.vehicles.Update(ctx, v)
}

func (s *vehicleService) Delete(ctx context.Context, id string) error {
	return s.vehicles.Delete(ctx, id)
}
