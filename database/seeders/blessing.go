package seeders

import (
	"errors"

	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedWelcomeBlessing tebrik defteri boşsa çiftin karşılama mesajını ekler.
// Mevcut kayıt varsa hiçbir şey yapılmaz; seeder tekrar çalıştırılabilir.
func SeedWelcomeBlessing(db *gorm.DB) error {
	var existing models.Blessing
	result := db.First(&existing)
	if result.Error == nil {
		configslog.SLog.Info("Tebrik defteri boş değil, karşılama mesajı atlanıyor.")
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Tebrik defteri kontrol edilirken hata", zap.Error(result.Error))
		return result.Error
	}

	welcome := models.Blessing{
		Name:       "Gelin & Damat",
		Message:    "Bu mutlu günümüzde bizimle olduğunuz için teşekkür ederiz. Dileklerinizi buraya bırakabilirsiniz.",
		IsApproved: true,
	}
	if err := db.Create(&welcome).Error; err != nil {
		configslog.Log.Error("Karşılama mesajı oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Karşılama mesajı oluşturuldu (ID: %d).", welcome.ID)
	return nil
}
