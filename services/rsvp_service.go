package services

import (
	"context"
	"strings"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"
	"dugun.link/repositories"

	"go.uber.org/zap"
)

// RSVPServiceError özel servis hataları
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPNameRequired      RSVPServiceError = "isim alanı zorunludur"
	ErrRSVPInvalidGuestCount RSVPServiceError = "misafir sayısı (guest_count) 1 veya 2 olmalıdır"
	ErrRSVPInvalidAttendance RSVPServiceError = "katılım durumu attending veya not_attending olmalıdır"
	ErrRSVPCreationFailed    RSVPServiceError = "lcv kaydı oluşturulamadı"
	ErrRSVPListFailed        RSVPServiceError = "lcv kayıtları okunamadı"
)

// RSVPInput misafir formundan ya da HTTP gövdesinden gelen ham LCV verisi.
type RSVPInput struct {
	Name       string `json:"name" form:"name"`
	GuestCount int    `json:"guest_count" form:"guest_count"`
	Attendance string `json:"attendance" form:"attendance"`
}

// ValidateRSVP ham girdiyi doğrular ve persist edilebilir taslağa dönüştürür.
// Yan etkisizdir; persist ayrı adımdır.
func ValidateRSVP(input RSVPInput) (*models.RSVP, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrRSVPNameRequired
	}
	if input.GuestCount != 1 && input.GuestCount != 2 {
		return nil, ErrRSVPInvalidGuestCount
	}
	attendance := models.Attendance(input.Attendance)
	if !attendance.Valid() {
		return nil, ErrRSVPInvalidAttendance
	}
	return &models.RSVP{
		Name:       name,
		GuestCount: input.GuestCount,
		Attendance: attendance,
	}, nil
}

// ComputeStats tam LCV kümesinden katılım özetini hesaplar.
// Saf ve O(n); girdi sırasından bağımsızdır, boş girdide tüm alanlar sıfırdır.
func ComputeStats(rsvps []models.RSVP) models.Stats {
	var stats models.Stats
	for _, r := range rsvps {
		stats.TotalResponses++
		stats.TotalGuests += r.GuestCount
		if r.Attendance == models.AttendanceAttending {
			stats.AttendingResponses++
			stats.AttendingGuests += r.GuestCount
		} else {
			stats.NotAttendingResponses++
			stats.NotAttendingGuests += r.GuestCount
		}
	}
	return stats
}

// IRSVPService LCV işlemleri için arayüz.
type IRSVPService interface {
	SubmitRSVP(ctx context.Context, input RSVPInput) (*models.RSVP, error)
	ListRSVPs(ctx context.Context) ([]models.RSVP, error)
	ListRSVPsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetStats(ctx context.Context) (models.Stats, error)
}

// RSVPService IRSVPService arayüzünü uygular.
type RSVPService struct {
	repo repositories.IRSVPRepository
}

// NewRSVPService varsayılan repository ile servis oluşturur.
func NewRSVPService() IRSVPService {
	return &RSVPService{repo: repositories.NewRSVPRepository()}
}

// NewRSVPServiceWithRepo verilen repository ile servis oluşturur (test/DI).
func NewRSVPServiceWithRepo(repo repositories.IRSVPRepository) IRSVPService {
	return &RSVPService{repo: repo}
}

// SubmitRSVP girdiyi doğrular ve kaydı store'a yazar.
// Aynı misafirden tekrar gönderim ayrı kayıt olarak kabul edilir; tekilleştirme yoktur.
func (s *RSVPService) SubmitRSVP(ctx context.Context, input RSVPInput) (*models.RSVP, error) {
	rsvp, err := ValidateRSVP(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, rsvp); err != nil {
		return nil, ErrRSVPCreationFailed
	}
	configslog.SLog.Infof("LCV kaydedildi: ID %d, %d kişi, durum: %s", rsvp.ID, rsvp.GuestCount, rsvp.Attendance)
	return rsvp, nil
}

// ListRSVPs tüm kayıtları en yeni önce döner (admin listesi ve istatistik girdisi).
func (s *RSVPService) ListRSVPs(ctx context.Context) ([]models.RSVP, error) {
	rsvps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, ErrRSVPListFailed
	}
	return rsvps, nil
}

// ListRSVPsPaginated yönetim paneli için sayfalanmış liste döner.
func (s *RSVPService) ListRSVPsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	rsvps, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, ErrRSVPListFailed
	}
	return &queryparams.PaginatedResult{
		Data: rsvps,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// GetStats tam kümeyi okuyup özeti yeniden hesaplar (panelin yenile aksiyonu).
func (s *RSVPService) GetStats(ctx context.Context) (models.Stats, error) {
	rsvps, err := s.repo.FindAll(ctx)
	if err != nil {
		configslog.Log.Error("İstatistik için RSVP kümesi okunamadı", zap.Error(err))
		return models.Stats{}, ErrRSVPListFailed
	}
	return ComputeStats(rsvps), nil
}

var _ IRSVPService = (*RSVPService)(nil)
