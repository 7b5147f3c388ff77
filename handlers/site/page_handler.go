package handlers

import (
	"time"

	"dugun.link/configs"
	"dugun.link/pkg/i18n"

	"github.com/gofiber/fiber/v2"
)

// PageHandler sunucu tarafından render edilen davetiye sayfası.
type PageHandler struct {
	cfg *configs.Config
}

// NewPageHandler yeni bir PageHandler örneği oluşturur.
func NewPageHandler() *PageHandler {
	return &PageHandler{cfg: configs.App()}
}

// Home (GET /) davetiye sayfasını render eder.
// Dil, render anında açık parametre olarak seçilir (?lang=, yoksa varsayılan);
// paylaşılan global dil durumu yoktur. ?guest= parametresi form ön doldurması
// için şablona aktarılır.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	locale := c.Query("lang", h.cfg.Locale())
	bundle := i18n.Load(locale)

	var eventDate string
	if !h.cfg.EventDate.IsZero() {
		eventDate = h.cfg.EventDate.UTC().Format(time.RFC3339)
	}

	return c.Render("index", fiber.Map{
		"I18n":         bundle,
		"Locale":       bundle.Locale,
		"BrideName":    h.cfg.BrideName,
		"GroomName":    h.cfg.GroomName,
		"EventDate":    eventDate,
		"VenueName":    h.cfg.VenueName,
		"VenueMapURL":  h.cfg.VenueMapURL,
		"BankAccounts": h.cfg.BankAccounts,
		"GuestName":    c.Query("guest"),
	})
}
