package service

import (
	"context"
	"strings"
	"time"

	"github.com/hotross/HomeMaintenanceTracker/internal/models"
	"github.com/hotross/HomeMaintenanceTracker/internal/repository"
)

// TaskService drives the maintenance task lifecycle. A task is either
// never completed or perpetually re-completable; there is no terminal
// state. Completion provenance (who, when, under what name) is written
// only here.
type TaskService struct {
	store repository.Store
	now   func() time.Time
}

func NewTaskService(store repository.Store) *TaskService {
	return &TaskService{store: store, now: time.Now}
}

type TaskInput struct {
	Name         string
	Description  string
	IntervalDays int
}

func (in *TaskInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return validationErr("name", "name is required")
	}
	if in.IntervalDays < 1 {
		return validationErr("interval_days", "interval must be at least 1 day")
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, userID, deviceID uint, in TaskInput) (*models.MaintenanceTask, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := ownedDevice(ctx, s.store, userID, deviceID); err != nil {
		return nil, err
	}
	task := &models.MaintenanceTask{
		DeviceID:     deviceID,
		Name:         in.Name,
		Description:  in.Description,
		IntervalDays: in.IntervalDays,
		IsCompleted:  false,
	}
	if err := s.store.InsertTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, userID, taskID uint) (*models.MaintenanceTask, error) {
	return ownedTask(ctx, s.store, userID, taskID)
}

// Update changes a task's descriptive fields and interval. It can never
// touch the completion fields; those belong to Complete alone.
func (s *TaskService) Update(ctx context.Context, userID, taskID uint, in TaskInput) (*models.MaintenanceTask, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	task, err := ownedTask(ctx, s.store, userID, taskID)
	if err != nil {
		return nil, err
	}
	task.Name = in.Name
	task.Description = in.Description
	task.IntervalDays = in.IntervalDays
	if err := s.store.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Complete marks the task done now, recording who did it. The username is
// copied into the task as a snapshot; renaming the user afterwards does
// not change what is recorded here. Repeated completions simply advance
// LastCompleted, last write wins.
func (s *TaskService) Complete(ctx context.Context, userID uint, username string, taskID uint) (*models.MaintenanceTask, error) {
	task, err := ownedTask(ctx, s.store, userID, taskID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	task.LastCompleted = &now
	task.IsCompleted = true
	task.CompletedBy = &userID
	task.CompletedByUsername = username
	if err := s.store.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID uint) error {
	task, err := ownedTask(ctx, s.store, userID, taskID)
	if err != nil {
		return err
	}
	return s.store.DeleteTask(ctx, task.ID)
}

func (s *TaskService) ListByDevice(ctx context.Context, userID, deviceID uint) ([]models.MaintenanceTask, error) {
	if _, err := ownedDevice(ctx, s.store, userID, deviceID); err != nil {
		return nil, err
	}
	return s.store.GetTasksByDevice(ctx, deviceID)
}

// ListForUser is the union of ListByDevice over every device the user
// owns. There is no separate all-tasks index to drift out of sync.
func (s *TaskService) ListForUser(ctx context.Context, userID uint) ([]models.MaintenanceTask, error) {
	devices, err := s.store.GetDevicesByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks := make([]models.MaintenanceTask, 0)
	for _, device := range devices {
		deviceTasks, err := s.store.GetTasksByDevice(ctx, device.ID)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, deviceTasks...)
	}
	return tasks, nil
}
