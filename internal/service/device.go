package service

import (
	"context"
	"strings"
	"time"

	"github.com/hotross/HomeMaintenanceTracker/internal/models"
	"github.com/hotross/HomeMaintenanceTracker/internal/repository"
)

type DeviceService struct {
	store repository.Store
}

func NewDeviceService(store repository.Store) *DeviceService {
	return &DeviceService{store: store}
}

// DeviceInput carries the caller-settable device fields. Ownership is not
// among them; a device's owner is fixed at creation.
type DeviceInput struct {
	Name                   string
	Model                  string
	Location               string
	ImageURL               string
	ManualURL              string
	ConsumablesURL         string
	ReceiptURL             string
	PurchaseDate           *time.Time
	WarrantyExpirationDate *time.Time
}

func (in *DeviceInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return validationErr("name", "name is required")
	}
	return nil
}

func (s *DeviceService) Create(ctx context.Context, userID uint, in DeviceInput) (*models.Device, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	device := &models.Device{
		UserID:                 userID,
		Name:                   in.Name,
		Model:                  in.Model,
		Location:               in.Location,
		ImageURL:               in.ImageURL,
		ManualURL:              in.ManualURL,
		ConsumablesURL:         in.ConsumablesURL,
		ReceiptURL:             in.ReceiptURL,
		PurchaseDate:           in.PurchaseDate,
		WarrantyExpirationDate: in.WarrantyExpirationDate,
	}
	if err := s.store.InsertDevice(ctx, device); err != nil {
		return nil, err
	}
	return device, nil
}

func (s *DeviceService) Get(ctx context.Context, userID, deviceID uint) (*models.Device, error) {
	return ownedDevice(ctx, s.store, userID, deviceID)
}

func (s *DeviceService) List(ctx context.Context, userID uint) ([]models.Device, error) {
	return s.store.GetDevicesByOwner(ctx, userID)
}

func (s *DeviceService) Update(ctx context.Context, userID, deviceID uint, in DeviceInput) (*models.Device, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	device, err := ownedDevice(ctx, s.store, userID, deviceID)
	if err != nil {
		return nil, err
	}
	device.Name = in.Name
	device.Model = in.Model
	device.Location = in.Location
	device.ImageURL = in.ImageURL
	device.ManualURL = in.ManualURL
	device.ConsumablesURL = in.ConsumablesURL
	device.ReceiptURL = in.ReceiptURL
	device.PurchaseDate = in.PurchaseDate
	device.WarrantyExpirationDate = in.WarrantyExpirationDate
	if err := s.store.UpdateDevice(ctx, device); err != nil {
		return nil, err
	}
	return device, nil
}

// Delete removes a device together with everything underneath it:
// consumables first, then tasks, then the device row. The three deletes
// share one transaction so no reader ever sees a device with orphaned
// children, or children without their device.
func (s *DeviceService) Delete(ctx context.Context, userID, deviceID uint) error {
	if _, err := ownedDevice(ctx, s.store, userID, deviceID); err != nil {
		return err
	}
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.DeleteConsumablesByDevice(ctx, deviceID); err != nil {
			return err
		}
		if err := tx.DeleteTasksByDevice(ctx, deviceID); err != nil {
			return err
		}
		return tx.DeleteDevice(ctx, deviceID)
	})
}
