package handlers

import (
	"errors"

	"dugun.link/configs/configslog"
	"dugun.link/events"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BlessingHandler public tebrik defteri uç noktaları için handler.
type BlessingHandler struct {
	service services.IBlessingService
}

// NewBlessingHandler yeni bir BlessingHandler örneği oluşturur.
func NewBlessingHandler(publisher events.Publisher) *BlessingHandler {
	return &BlessingHandler{service: services.NewBlessingService(publisher)}
}

// NewBlessingHandlerWithService verilen servis ile handler oluşturur (test/DI).
func NewBlessingHandlerWithService(service services.IBlessingService) *BlessingHandler {
	return &BlessingHandler{service: service}
}

// CreateBlessing (POST /blessings) misafir tebrik gönderimini işler.
func (h *BlessingHandler) CreateBlessing(c *fiber.Ctx) error {
	var input services.BlessingInput
	if err := c.BodyParser(&input); err != nil {
		configslog.Log.Warn("CreateBlessing: gövde parse edilemedi", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	blessing, err := h.service.SubmitBlessing(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, services.ErrBlessingCreationFailed) {
			configslog.Log.Error("CreateBlessing: store hatası", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tebrik mesajınız başarıyla alındı.",
		"data":    blessing,
	})
}

// ListBlessings (GET /blessings) onaylı kayıtları en yeni önce, 50 ile sınırlı döner.
func (h *BlessingHandler) ListBlessings(c *fiber.Ctx) error {
	blessings, err := h.service.ListApproved(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListBlessings hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": blessings})
}
