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

type inventoryService struct {
	items repository.InventoryRepo
}

func NewInventoryService(items repository.InventoryRepo) InventoryService {
	return &inventoryService{items: items}
}

func (s *inventoryService) Create(ctx context.Context, i *domain.InventoryItem) error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("item name is required")
	}
	if i.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	if i.Unit == "" {
		i.Unit = "unit"
	}
	i.CreatedAt = time.Now().UTC()
	return s.items.Create(ctx, i)
}

func (s *inventoryService) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *inventoryService) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	return s.items.List(ctx)
}

func (s *inventoryService) Update(ctx context.Context, i *domain.InventoryItem) error {
	if i.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	return s.items.Update(ctx, i)
}

func (s *inventoryService) Restock(ctx context.Context, id string, quantity float64) error {
	if quantity <= 0 {
		return fmt.Errorf("restock quantity must be positive")
	}
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	item.Quantity += quantity
	now := time.Now().UTC()
	item.LastRestocked = &now
	return s.items.Update(ctx, item)
}

func (s *inventoryService) LowStock(ctx context.Context) ([]*domain.InventoryItem, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	var low []*domain.InventoryItem
	for _, item := range items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

func (s *inventoryService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}
