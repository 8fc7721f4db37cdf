package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hotross/HomeMaintenanceTracker/internal/models"
)

// Store defines the persistence operations the service layer depends on.
// Get methods return (nil, nil) when the record is absent; a non-nil error
// always means the store itself failed.
type Store interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error

	GetDevice(ctx context.Context, id uint) (*models.Device, error)
	GetDevicesByOwner(ctx context.Context, userID uint) ([]models.Device, error)
	InsertDevice(ctx context.Context, device *models.Device) error
	UpdateDevice(ctx context.Context, device *models.Device) error
	DeleteDevice(ctx context.Context, id uint) error

	GetConsumable(ctx context.Context, id uint) (*models.Consumable, error)
	GetConsumablesByDevice(ctx context.Context, deviceID uint) ([]models.Consumable, error)
	InsertConsumable(ctx context.Context, consumable *models.Consumable) error
	UpdateConsumable(ctx context.Context, consumable *models.Consumable) error
	DeleteConsumable(ctx context.Context, id uint) error
	DeleteConsumablesByDevice(ctx context.Context, deviceID uint) error

	GetTask(ctx context.Context, id uint) (*models.MaintenanceTask, error)
	GetTasksByDevice(ctx context.Context, deviceID uint) ([]models.MaintenanceTask, error)
	InsertTask(ctx context.Context, task *models.MaintenanceTask) error
	UpdateTask(ctx context.Context, task *models.MaintenanceTask) error
	DeleteTask(ctx context.Context, id uint) error
	DeleteTasksByDevice(ctx context.Context, deviceID uint) error

	// Transaction runs fn against a Store bound to a single database
	// transaction; any error rolls the whole transaction back.
	Transaction(ctx context.Context, fn func(Store) error) error
}

// gormStore implements Store using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) InsertUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *gormStore) UpdateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *gormStore) GetDevice(ctx context.Context, id uint) (*models.Device, error) {
	var device models.Device
	err := s.db.WithContext(ctx).First(&device, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (s *gormStore) GetDevicesByOwner(ctx context.Context, userID uint) ([]models.Device, error) {
	var devices []models.Device
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&devices).Error
	return devices, err
}

func (s *gormStore) InsertDevice(ctx context.Context, device *models.Device) error {
	return s.db.WithContext(ctx).Create(device).Error
}

func (s *gormStore) UpdateDevice(ctx context.Context, device *models.Device) error {
	return s.db.WithContext(ctx).Save(device).Error
}

func (s *gormStore) DeleteDevice(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Device{}, id).Error
}

func (s *gormStore) GetConsumable(ctx context.Context, id uint) (*models.Consumable, error) {
	var consumable models.Consumable
	err := s.db.WithContext(ctx).First(&consumable, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &consumable, nil
}

func (s *gormStore) GetConsumablesByDevice(ctx context.Context, deviceID uint) ([]models.Consumable, error) {
	var consumables []models.Consumable
	err := s.db.WithContext(ctx).Where("device_id = ?", deviceID).Order("id").Find(&consumables).Error
	return consumables, err
}

func (s *gormStore) InsertConsumable(ctx context.Context, consumable *models.Consumable) error {
	return s.db.WithContext(ctx).Create(consumable).Error
}

func (s *gormStore) UpdateConsumable(ctx context.Context, consumable *models.Consumable) error {
	return s.db.WithContext(ctx).Save(consumable).Error
}

func (s *gormStore) DeleteConsumable(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Consumable{}, id).Error
}

func (s *gormStore) DeleteConsumablesByDevice(ctx context.Context, deviceID uint) error {
	return s.db.WithContext(ctx).Where("device_id = ?", deviceID).Delete(&models.Consumable{}).Error
}

func (s *gormStore) GetTask(ctx context.Context, id uint) (*models.MaintenanceTask, error) {
	var task models.MaintenanceTask
	err := s.db.WithContext(ctx).First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *gormStore) GetTasksByDevice(ctx context.Context, deviceID uint) ([]models.MaintenanceTask, error) {
	var tasks []models.MaintenanceTask
	err := s.db.WithContext(ctx).Where("device_id = ?", deviceID).Order("id").Find(&tasks).Error
	return tasks, err
}

func (s *gormStore) InsertTask(ctx context.Context, task *models.MaintenanceTask) error {
	return s.db.WithContext(ctx).Create(task).Error
}

func (s *gormStore) UpdateTask(ctx context.Context, task *models.MaintenanceTask) error {
	return s.db.WithContext(ctx).Save(task).Error
}

func (s *gormStore) DeleteTask(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.MaintenanceTask{}, id).Error
}

func (s *gormStore) DeleteTasksByDevice(ctx context.Context, deviceID uint) error {
	return s.db.WithContext(ctx).Where("device_id = ?", deviceID).Delete(&models.MaintenanceTask{}).Error
}
