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

// IRSVPRepository LCV kayıtları için veritabanı işlemleri arayüzü.
// RSVP kayıtları yalnızca oluşturulur ve okunur; güncelleme/silme işlemi yoktur.
type IRSVPRepository interface {
	Create(ctx context.Context, rsvp *models.RSVP) error
	FindAll(ctx context.Context) ([]models.RSVP, error) // En yeni önce
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.RSVP, int64, error)
}

// RSVPRepository IRSVPRepository arayüzünü GORM ile uygular.
type RSVPRepository struct {
	db *gorm.DB
}

// NewRSVPRepository yeni bir RSVPRepository örneği oluşturur.
func NewRSVPRepository() IRSVPRepository {
	return &RSVPRepository{db: configs.GetDB()}
}

// NewRSVPRepositoryTx transaction'lı DB ile repository oluşturur.
func NewRSVPRepositoryTx(tx *gorm.DB) IRSVPRepository {
	return &RSVPRepository{db: tx}
}

func (r *RSVPRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir LCV kaydı ekler. ID ve CreatedAt store tarafından atanır.
func (r *RSVPRepository) Create(ctx context.Context, rsvp *models.RSVP) error {
	if rsvp == nil {
		return errors.New("geçersiz RSVP verisi")
	}
	if err := r.getDB(ctx).Create(rsvp).Error; err != nil {
		configslog.Log.Error("RSVP kaydı oluşturulamadı", zap.Error(err))
		return err
	}
	return nil
}

// FindAll tüm LCV kayıtlarını en yeniden eskiye doğru getirir.
// created_at eşitliğinde id'ye göre kırılır; sıralama deterministiktir.
func (r *RSVPRepository) FindAll(ctx context.Context) ([]models.RSVP, error) {
	var rsvps []models.RSVP
	err := r.getDB(ctx).
		Order("created_at DESC, id DESC").
		Find(&rsvps).Error
	if err != nil {
		configslog.Log.Error("RSVP kayıtları okunamadı", zap.Error(err))
		return nil, err
	}
	return rsvps, nil
}

// FindAllPaginated yönetim paneli için sayfalanmış liste + toplam sayıyı döner.
func (r *RSVPRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.RSVP, int64, error) {
	db := r.getDB(ctx)

	var totalCount int64
	if err := db.Model(&models.RSVP{}).Count(&totalCount).Error; err != nil {
		configslog.Log.Error("RSVP sayısı alınamadı", zap.Error(err))
		return nil, 0, err
	}

	var rsvps []models.RSVP
	err := db.
		Order("created_at DESC, id DESC").
		Limit(params.PerPage).
		Offset(params.Offset()).
		Find(&rsvps).Error
	if err != nil {
		configslog.Log.Error("RSVP sayfası okunamadı", zap.Int("page", params.Page), zap.Error(err))
		return nil, 0, err
	}
	return rsvps, totalCount, nil
}

var _ IRSVPRepository = (*RSVPRepository)(nil)
