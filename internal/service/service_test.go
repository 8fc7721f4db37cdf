package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hotross/HomeMaintenanceTracker/internal/models"
	"github.com/hotross/HomeMaintenanceTracker/internal/repository"
)

// newTestStore opens a fresh in-memory SQLite database per test.
func newTestStore(t *testing.T) repository.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Device{},
		&models.Consumable{},
		&models.MaintenanceTask{},
	))

	return repository.NewGormStore(db)
}

func seedUser(t *testing.T, store repository.Store, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username}
	require.NoError(t, user.SetPassword("hunter22"))
	require.NoError(t, store.InsertUser(context.Background(), user))
	return user
}

func seedDevice(t *testing.T, store repository.Store, userID uint, name string) *models.Device {
	t.Helper()

	device := &models.Device{UserID: userID, Name: name}
	require.NoError(t, store.InsertDevice(context.Background(), device))
	return device
}

func seedTask(t *testing.T, store repository.Store, deviceID uint, name string, intervalDays int) *models.MaintenanceTask {
	t.Helper()

	task := &models.MaintenanceTask{DeviceID: deviceID, Name: name, IntervalDays: intervalDays}
	require.NoError(t, store.InsertTask(context.Background(), task))
	return task
}

func seedConsumable(t *testing.T, store repository.Store, deviceID uint, name string) *models.Consumable {
	t.Helper()

	consumable := &models.Consumable{DeviceID: deviceID, Name: name}
	require.NoError(t, store.InsertConsumable(context.Background(), consumable))
	return consumable
}
