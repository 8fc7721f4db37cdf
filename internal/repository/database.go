package repository

import (
	"github.com/hotross/HomeMaintenanceTracker/internal/config"
	"github.com/hotross/HomeMaintenanceTracker/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDatabase(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate
	err = db.AutoMigrate(
		&models.User{},
		&models.Device{},
		&models.Consumable{},
		&models.MaintenanceTask{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
