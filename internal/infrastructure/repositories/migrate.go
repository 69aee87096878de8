package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"wallet-manager.backend/internal/infrastructure/models"
)

// Migrate creates the schema and upserts the singleton version marker.
func Migrate(ctx context.Context, db *gorm.DB, version string) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&models.ManagerVersion{},
		&models.Wallet{},
		&models.Transaction{},
	); err != nil {
		return err
	}

	var marker models.ManagerVersion
	err := db.WithContext(ctx).First(&marker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		marker = models.ManagerVersion{Version: version, UpdatedAt: time.Now()}
		return db.WithContext(ctx).Create(&marker).Error
	}
	if err != nil {
		return err
	}

	if marker.Version != version {
		marker.Version = version
		marker.UpdatedAt = time.Now()
		return db.WithContext(ctx).Save(&marker).Error
	}
	return nil
}
