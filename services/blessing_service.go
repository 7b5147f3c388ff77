package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/events"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"
	"dugun.link/repositories"

	"go.uber.org/zap"
)

// BlessingServiceError özel servis hataları
type BlessingServiceError string

func (e BlessingServiceError) Error() string { return string(e) }

const (
	ErrBlessingNameRequired    BlessingServiceError = "isim alanı zorunludur"
	ErrBlessingMessageRequired BlessingServiceError = "mesaj alanı zorunludur"
	ErrBlessingMessageTooLong  BlessingServiceError = "mesaj en fazla 500 karakter olabilir"
	ErrBlessingNotFound        BlessingServiceError = "tebrik kaydı bulunamadı"
	ErrBlessingCreationFailed  BlessingServiceError = "tebrik kaydı oluşturulamadı"
	ErrBlessingListFailed      BlessingServiceError = "tebrik kayıtları okunamadı"
	ErrBlessingToggleFailed    BlessingServiceError = "tebrik onay durumu değiştirilemedi"
)

// BlessingInput misafir formundan ya da HTTP gövdesinden gelen ham tebrik verisi.
type BlessingInput struct {
	Name    string `json:"name" form:"name"`
	Message string `json:"message" form:"message"`
}

// ValidateBlessing ham girdiyi doğrular ve taslağa dönüştürür.
// autoApprove oluşturma politikasıdır; moderasyon anahtarından bağımsız
// yapılandırılır (BLESSING_AUTO_APPROVE).
func ValidateBlessing(input BlessingInput, autoApprove bool) (*models.Blessing, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrBlessingNameRequired
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, ErrBlessingMessageRequired
	}
	// Sınır rune sayısıdır; çok baytlı karakterler tek karakter sayılır.
	if utf8.RuneCountInString(message) > models.BlessingMessageMaxLen {
		return nil, ErrBlessingMessageTooLong
	}
	return &models.Blessing{
		Name:       name,
		Message:    message,
		IsApproved: autoApprove,
	}, nil
}

// MergeBlessings snapshot listesine akıştan gelen kaydı başa ekler.
// Liste en yeni önce sıralıdır; aynı id zaten varsa (snapshot ile akışın
// yarışması) kayıt yinelenmez.
func MergeBlessings(list []models.Blessing, incoming models.Blessing) []models.Blessing {
	for _, b := range list {
		if b.ID == incoming.ID {
			return list
		}
	}
	merged := make([]models.Blessing, 0, len(list)+1)
	merged = append(merged, incoming)
	return append(merged, list...)
}

// IBlessingService tebrik işlemleri için arayüz.
type IBlessingService interface {
	SubmitBlessing(ctx context.Context, input BlessingInput) (*models.Blessing, error)
	ListApproved(ctx context.Context) ([]models.Blessing, error)
	ListAll(ctx context.Context) ([]models.Blessing, error)
	ListAllPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	ToggleApproval(ctx context.Context, id uint) (bool, error)
}

// BlessingService IBlessingService arayüzünü uygular.
type BlessingService struct {
	repo        repositories.IBlessingRepository
	publisher   events.Publisher
	autoApprove bool
}

// NewBlessingService varsayılan repository ve verilen yayıncı ile servis oluşturur.
func NewBlessingService(publisher events.Publisher) IBlessingService {
	return &BlessingService{
		repo:        repositories.NewBlessingRepository(),
		publisher:   publisher,
		autoApprove: configs.App().BlessingAutoApprove,
	}
}

// NewBlessingServiceWithDeps tüm bağımlılıkları dışarıdan alır (test/DI).
func NewBlessingServiceWithDeps(repo repositories.IBlessingRepository, publisher events.Publisher, autoApprove bool) IBlessingService {
	return &BlessingService{repo: repo, publisher: publisher, autoApprove: autoApprove}
}

// SubmitBlessing girdiyi doğrular, kaydı store'a yazar ve ekleme olayını yayınlar.
// Yayın hatası gönderimi geri almaz; kalıcılık tek garanti kaynağıdır,
// akışı kaçıran görünümler tam yeniden okuma ile tutarlılığı yakalar.
func (s *BlessingService) SubmitBlessing(ctx context.Context, input BlessingInput) (*models.Blessing, error) {
	blessing, err := ValidateBlessing(input, s.autoApprove)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, blessing); err != nil {
		return nil, ErrBlessingCreationFailed
	}

	if err := s.publisher.Publish(ctx, events.TopicBlessingCreated, blessing); err != nil {
		configslog.Log.Warn("Tebrik olayı yayınlanamadı",
			zap.Uint("id", blessing.ID),
			zap.Error(err),
		)
	}

	configslog.SLog.Infof("Tebrik kaydedildi: ID %d (%s)", blessing.ID, blessing.Name)
	return blessing, nil
}

// ListApproved public defter için onaylı kayıtları (en çok 50) döner.
func (s *BlessingService) ListApproved(ctx context.Context) ([]models.Blessing, error) {
	blessings, err := s.repo.FindApproved(ctx, repositories.PublicBlessingLimit)
	if err != nil {
		return nil, ErrBlessingListFailed
	}
	return blessings, nil
}

// ListAll admin görünümü ve CSV dışa aktarma için filtresiz listeyi döner.
func (s *BlessingService) ListAll(ctx context.Context) ([]models.Blessing, error) {
	blessings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, ErrBlessingListFailed
	}
	return blessings, nil
}

// ListAllPaginated yönetim paneli için sayfalanmış, filtresiz liste döner.
func (s *BlessingService) ListAllPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	blessings, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, ErrBlessingListFailed
	}
	return &queryparams.PaginatedResult{
		Data: blessings,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// ToggleApproval onay durumunu tersine çevirir ve yeni değeri döner.
// Hata durumunda store'daki değer değişmeden kalır; otomatik tekrar deneme yoktur.
func (s *BlessingService) ToggleApproval(ctx context.Context, id uint) (bool, error) {
	newValue, err := s.repo.ToggleApproval(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, ErrBlessingNotFound
		}
		return false, ErrBlessingToggleFailed
	}
	configslog.SLog.Infof("Tebrik onayı değiştirildi: ID %d -> %t", id, newValue)
	return newValue, nil
}

var _ IBlessingService = (*BlessingService)(nil)
