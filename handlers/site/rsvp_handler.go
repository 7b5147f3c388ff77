package handlers

import (
	"errors"

	"dugun.link/configs/configslog"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RSVPHandler public LCV uç noktaları için handler.
type RSVPHandler struct {
	service services.IRSVPService
}

// NewRSVPHandler yeni bir RSVPHandler örneği oluşturur.
func NewRSVPHandler() *RSVPHandler {
	return &RSVPHandler{service: services.NewRSVPService()}
}

// NewRSVPHandlerWithService verilen servis ile handler oluşturur (test/DI).
func NewRSVPHandlerWithService(service services.IRSVPService) *RSVPHandler {
	return &RSVPHandler{service: service}
}

// CreateRSVP (POST /rsvp) misafir LCV gönderimini işler.
// Doğrulama istemci tarafında da yapılsa burada bağımsız olarak tekrarlanır.
func (h *RSVPHandler) CreateRSVP(c *fiber.Ctx) error {
	var input services.RSVPInput
	if err := c.BodyParser(&input); err != nil {
		configslog.Log.Warn("CreateRSVP: gövde parse edilemedi", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	rsvp, err := h.service.SubmitRSVP(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, services.ErrRSVPCreationFailed) {
			configslog.Log.Error("CreateRSVP: store hatası", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "LCV yanıtınız başarıyla alındı.",
		"data":    rsvp,
	})
}

// ListRSVPs (GET /rsvp) tüm kayıtları en yeni önce, filtresiz döner.
func (h *RSVPHandler) ListRSVPs(c *fiber.Ctx) error {
	rsvps, err := h.service.ListRSVPs(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListRSVPs hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": rsvps})
}
