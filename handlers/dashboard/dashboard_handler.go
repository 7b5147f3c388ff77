package handlers

import (
	"errors"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/events"
	"dugun.link/pkg/i18n"
	"dugun.link/pkg/queryparams"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler yönetim paneli veri uç noktaları: özet, listeler,
// moderasyon ve dil ayarı.
type DashboardHandler struct {
	rsvpService     services.IRSVPService
	blessingService services.IBlessingService
	cfg             *configs.Config
}

// NewDashboardHandler varsayılan servislerle handler oluşturur.
func NewDashboardHandler(publisher events.Publisher) *DashboardHandler {
	return &DashboardHandler{
		rsvpService:     services.NewRSVPService(),
		blessingService: services.NewBlessingService(publisher),
		cfg:             configs.App(),
	}
}

// NewDashboardHandlerWithServices verilen servislerle handler oluşturur (test/DI).
func NewDashboardHandlerWithServices(rsvpService services.IRSVPService, blessingService services.IBlessingService) *DashboardHandler {
	return &DashboardHandler{
		rsvpService:     rsvpService,
		blessingService: blessingService,
		cfg:             configs.App(),
	}
}

// Index (GET /dashboard) yönetim paneli sayfasını render eder. Veriler
// sayfa içindeki betik tarafından JSON uçlarından çekilir.
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	return c.Render("dashboard/index", fiber.Map{
		"DefaultLocale": h.cfg.Locale(),
	})
}

// Summary (GET /dashboard/summary) katılım istatistiklerini döner.
// Panelin "yenile" aksiyonu bu ucu tekrar çağırır; özet her seferinde tam
// kümeden yeniden hesaplanır.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	stats, err := h.rsvpService.GetStats(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - Summary hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

// ListRSVPs (GET /dashboard/rsvps) filtresiz, sayfalanmış LCV listesi.
func (h *DashboardHandler) ListRSVPs(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}

	result, err := h.rsvpService.ListRSVPsPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListRSVPs hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// ListBlessings (GET /dashboard/blessings) filtresiz, sayfalanmış tebrik
// listesi. Public uçtan farklı olarak onaysız kayıtlar da görünür.
func (h *DashboardHandler) ListBlessings(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}

	result, err := h.blessingService.ListAllPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListBlessings hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// ToggleBlessing (POST /dashboard/blessings/:id/toggle) onay durumunu tersine
// çevirir ve store'daki yeni değeri döner. İki oturum yarışırsa son yazan
// kazanır; otomatik tekrar deneme yoktur.
func (h *DashboardHandler) ToggleBlessing(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ID"})
	}

	newValue, err := h.blessingService.ToggleApproval(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrBlessingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Dashboard - ToggleBlessing hatası", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"id": id, "is_approved": newValue})
}

type localeInput struct {
	Locale string `json:"locale" form:"locale"`
}

// SetLocale (POST /dashboard/locale) sitenin varsayılan dilini değiştirir ve
// değişikliği açık bildirim kanalı üzerinden duyurur.
func (h *DashboardHandler) SetLocale(c *fiber.Ctx) error {
	var input localeInput
	if err := c.BodyParser(&input); err != nil || input.Locale == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz dil"})
	}

	bundle := i18n.Load(input.Locale)
	if bundle.Locale != input.Locale {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "desteklenmeyen dil: " + input.Locale})
	}

	h.cfg.SetLocale(bundle.Locale)
	i18n.DefaultNotifier.Notify(bundle.Locale)
	configslog.SLog.Infof("Varsayılan dil değiştirildi: %s", bundle.Locale)
	return c.JSON(fiber.Map{"locale": bundle.Locale})
}
