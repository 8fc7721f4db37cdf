package service

import (
	"context"
	"time"

	"github.com/hotross/HomeMaintenanceTracker/internal/repository"
	"github.com/hotross/HomeMaintenanceTracker/internal/schedule"
)

// AccountService produces per-account rollups across all owned devices.
type AccountService struct {
	store repository.Store
	now   func() time.Time
}

func NewAccountService(store repository.Store) *AccountService {
	return &AccountService{store: store, now: time.Now}
}

type DeviceSummary struct {
	DeviceID     uint   `json:"device_id"`
	DeviceName   string `json:"device_name"`
	TaskCount    int    `json:"task_count"`
	OverdueCount int    `json:"overdue_count"`
	DueSoonCount int    `json:"due_soon_count"`
	Consumables  int    `json:"consumable_count"`
}

type Summary struct {
	TotalDevices int             `json:"total_devices"`
	TotalTasks   int             `json:"total_tasks"`
	TotalOverdue int             `json:"total_overdue"`
	TotalDueSoon int             `json:"total_due_soon"`
	Devices      []DeviceSummary `json:"devices"`
}

// Summarize walks the user's devices and counts tasks by due state. Due
// state is derived against the current clock, never read from storage.
func (s *AccountService) Summarize(ctx context.Context, userID uint) (*Summary, error) {
	devices, err := s.store.GetDevicesByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	summary := &Summary{Devices: make([]DeviceSummary, 0, len(devices))}

	for _, device := range devices {
		tasks, err := s.store.GetTasksByDevice(ctx, device.ID)
		if err != nil {
			return nil, err
		}
		consumables, err := s.store.GetConsumablesByDevice(ctx, device.ID)
		if err != nil {
			return nil, err
		}

		ds := DeviceSummary{
			DeviceID:    device.ID,
			DeviceName:  device.Name,
			TaskCount:   len(tasks),
			Consumables: len(consumables),
		}
		for _, task := range tasks {
			switch schedule.Classify(task.LastCompleted, task.IntervalDays, now) {
			case schedule.StatusOverdue:
				ds.OverdueCount++
			case schedule.StatusDueSoon:
				ds.DueSoonCount++
			}
		}

		summary.TotalTasks += ds.TaskCount
		summary.TotalOverdue += ds.OverdueCount
		summary.TotalDueSoon += ds.DueSoonCount
		summary.Devices = append(summary.Devices, ds)
	}
	summary.TotalDevices = len(devices)

	return summary, nil
}
