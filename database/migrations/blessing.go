package migrations

import (
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateBlessingsTable Blessing modeli için tabloyu oluşturur/günceller.
func MigrateBlessingsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating blessings table...")
	if err := db.AutoMigrate(&models.Blessing{}); err != nil {
		configslog.Log.Error("Failed to migrate blessings table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Blessings table migrated successfully")
	return nil
}
