package service

import (
	"context"
	"strings"

	"github.com/hotross/HomeMaintenanceTracker/internal/models"
	"github.com/hotross/HomeMaintenanceTracker/internal/repository"
)

type ConsumableService struct {
	store repository.Store
}

func NewConsumableService(store repository.Store) *ConsumableService {
	return &ConsumableService{store: store}
}

type ConsumableInput struct {
	Name            string
	Description     string
	StorageLocation string
	URL             string
	Cost            float64
}

func (in *ConsumableInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return validationErr("name", "name is required")
	}
	if in.Cost < 0 {
		return validationErr("cost", "cost must not be negative")
	}
	return nil
}

func (s *ConsumableService) Create(ctx context.Context, userID, deviceID uint, in ConsumableInput) (*models.Consumable, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := ownedDevice(ctx, s.store, userID, deviceID); err != nil {
		return nil, err
	}
	consumable := &models.Consumable{
		DeviceID:        deviceID,
		Name:            in.Name,
		Description:     in.Description,
		StorageLocation: in.StorageLocation,
		URL:             in.URL,
		Cost:            in.Cost,
	}
	if err := s.store.InsertConsumable(ctx, consumable); err != nil {
		return nil, err
	}
	return consumable, nil
}

func (s *ConsumableService) ListByDevice(ctx context.Context, userID, deviceID uint) ([]models.Consumable, error) {
	if _, err := ownedDevice(ctx, s.store, userID, deviceID); err != nil {
		return nil, err
	}
	return s.store.GetConsumablesByDevice(ctx, deviceID)
}

func (s *ConsumableService) Update(ctx context.Context, userID, consumableID uint, in ConsumableInput) (*models.Consumable, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	consumable, err := ownedConsumable(ctx, s.store, userID, consumableID)
	if err != nil {
		return nil, err
	}
	consumable.Name = in.Name
	consumable.Description = in.Description
	consumable.StorageLocation = in.StorageLocation
	consumable.URL = in.URL
	consumable.Cost = in.Cost
	if err := s.store.UpdateConsumable(ctx, consumable); err != nil {
		return nil, err
	}
	return consumable, nil
}

func (s *ConsumableService) Delete(ctx context.Context, userID, consumableID uint) error {
	consumable, err := ownedConsumable(ctx, s.store, userID, consumableID)
	if err != nil {
		return err
	}
	return s.store.DeleteConsumable(ctx, consumable.ID)
}
