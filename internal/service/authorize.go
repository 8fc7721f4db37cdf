package service

import (
	"context"

	"github.com/hotross/HomeMaintenanceTracker/internal/models"
	"github.com/hotross/HomeMaintenanceTracker/internal/repository"
)

// ownedDevice loads a device and checks it belongs to userID. A missing
// device and a foreign device are indistinguishable to the caller; both
// come back as ErrNotFound.
func ownedDevice(ctx context.Context, store repository.Store, userID, deviceID uint) (*models.Device, error) {
	device, err := store.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if device == nil || device.UserID != userID {
		return nil, ErrNotFound
	}
	return device, nil
}

// ownedTask resolves a task through its parent device. Fails closed: a
// task whose device is gone or foreign is treated as not found.
func ownedTask(ctx context.Context, store repository.Store, userID, taskID uint) (*models.MaintenanceTask, error) {
	task, err := store.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}
	if _, err := ownedDevice(ctx, store, userID, task.DeviceID); err != nil {
		return nil, err
	}
	return task, nil
}

// ownedConsumable resolves a consumable through its parent device. Unlike
// the device and task paths this one distinguishes a missing consumable
// (ErrNotFound) from one whose device belongs to another user
// (ErrForbidden); API clients depend on the 404/403 split.
func ownedConsumable(ctx context.Context, store repository.Store, userID, consumableID uint) (*models.Consumable, error) {
	consumable, err := store.GetConsumable(ctx, consumableID)
	if err != nil {
		return nil, err
	}
	if consumable == nil {
		return nil, ErrNotFound
	}
	device, err := store.GetDevice(ctx, consumable.DeviceID)
	if err != nil {
		return nil, err
	}
	if device == nil || device.UserID != userID {
		return nil, ErrForbidden
	}
	return consumable, nil
}
