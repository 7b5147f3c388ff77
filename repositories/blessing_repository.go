package repositories

import (
	"context"
	"errors"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PublicBlessingLimit public tebrik defterinde gösterilen en fazla kayıt sayısı.
const PublicBlessingLimit = 50

// IBlessingRepository tebrik kayıtları için veritabanı işlemleri arayüzü.
type IBlessingRepository interface {
	Create(ctx context.Context, blessing *models.Blessing) error
	FindApproved(ctx context.Context, limit int) ([]models.Blessing, error) // En yeni önce
	FindAll(ctx context.Context) ([]models.Blessing, error)                 // Filtresiz (admin)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Blessing, int64, error)
	ToggleApproval(ctx context.Context, id uint) (bool, error) // Yeni değeri döner
}

// BlessingRepository IBlessingRepository arayüzünü GORM ile uygular.
type BlessingRepository struct {
	db *gorm.DB
}

// NewBlessingRepository yeni bir BlessingRepository örneği oluşturur.
func NewBlessingRepository() IBlessingRepository {
	return &BlessingRepository{db: configs.GetDB()}
}

// NewBlessingRepositoryTx transaction'lı DB ile repository oluşturur.
func NewBlessingRepositoryTx(tx *gorm.DB) IBlessingRepository {
	return &BlessingRepository{db: tx}
}

func (r *BlessingRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir tebrik kaydı ekler.
func (r *BlessingRepository) Create(ctx context.Context, blessing *models.Blessing) error {
	if blessing == nil {
		return errors.New("geçersiz tebrik verisi")
	}
	if err := r.getDB(ctx).Create(blessing).Error; err != nil {
		configslog.Log.Error("Tebrik kaydı oluşturulamadı", zap.Error(err))
		return err
	}
	return nil
}

// FindApproved onaylı kayıtları en yeniden eskiye, limitli getirir (public defter).
func (r *BlessingRepository) FindApproved(ctx context.Context, limit int) ([]models.Blessing, error) {
	if limit <= 0 {
		limit = PublicBlessingLimit
	}
	var blessings []models.Blessing
	err := r.getDB(ctx).
		Where("is_approved = ?", true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&blessings).Error
	if err != nil {
		configslog.Log.Error("Onaylı tebrikler okunamadı", zap.Error(err))
		return nil, err
	}
	return blessings, nil
}

// FindAll tüm kayıtları filtresiz getirir (admin görünümü ve CSV dışa aktarma).
func (r *BlessingRepository) FindAll(ctx context.Context) ([]models.Blessing, error) {
	var blessings []models.Blessing
	err := r.getDB(ctx).
		Order("created_at DESC, id DESC").
		Find(&blessings).Error
	if err != nil {
		configslog.Log.Error("Tebrik kayıtları okunamadı", zap.Error(err))
		return nil, err
	}
	return blessings, nil
}

// FindAllPaginated yönetim paneli için sayfalanmış, filtresiz liste döner.
func (r *BlessingRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Blessing, int64, error) {
	db := r.getDB(ctx)

	var totalCount int64
	if err := db.Model(&models.Blessing{}).Count(&totalCount).Error; err != nil {
		configslog.Log.Error("Tebrik sayısı alınamadı", zap.Error(err))
		return nil, 0, err
	}

	var blessings []models.Blessing
	err := db.
		Order("created_at DESC, id DESC").
		Limit(params.PerPage).
		Offset(params.Offset()).
		Find(&blessings).Error
	if err != nil {
		configslog.Log.Error("Tebrik sayfası okunamadı", zap.Int("page", params.Page), zap.Error(err))
		return nil, 0, err
	}
	return blessings, totalCount, nil
}

// ToggleApproval is_approved alanını tek ifadede tersine çevirir ve yeni değeri döner.
// Tek atomik UPDATE olduğu için eşzamanlı iki admin oturumunda bayat okuma olmaz;
// çapraz yazmalarda son yazan kazanır.
func (r *BlessingRepository) ToggleApproval(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, ErrNotFound
	}

	var row struct {
		IsApproved bool
	}
	result := r.getDB(ctx).Raw(
		`UPDATE blessings
		    SET is_approved = NOT is_approved, updated_at = NOW()
		  WHERE id = ? AND deleted_at IS NULL
		  RETURNING is_approved`, id,
	).Scan(&row)

	if result.Error != nil {
		configslog.Log.Error("Tebrik onayı değiştirilemedi", zap.Uint("id", id), zap.Error(result.Error))
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, ErrNotFound
	}
	return row.IsApproved, nil
}

var _ IBlessingRepository = (*BlessingRepository)(nil)
