package handlers

import (
	"strconv"
	"time"

	"dugun.link/configs/configslog"
	"dugun.link/pkg/csvexport"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ExportHandler kayıt türlerinin CSV dışa aktarımı.
// Sütunlar kayıt alan adlarıdır, değerler tırnaklıdır, dosya adı tarih içerir.
type ExportHandler struct {
	rsvpService     services.IRSVPService
	blessingService services.IBlessingService
}

// NewExportHandlerWithServices verilen servislerle handler oluşturur.
func NewExportHandlerWithServices(rsvpService services.IRSVPService, blessingService services.IBlessingService) *ExportHandler {
	return &ExportHandler{rsvpService: rsvpService, blessingService: blessingService}
}

// ExportRSVPs (GET /dashboard/export/rsvps.csv) tüm LCV kayıtlarını indirir.
func (h *ExportHandler) ExportRSVPs(c *fiber.Ctx) error {
	rsvps, err := h.rsvpService.ListRSVPs(c.UserContext())
	if err != nil {
		configslog.Log.Error("ExportRSVPs hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	headers := []string{"id", "name", "guest_count", "attendance", "created_at"}
	rows := make([][]string, 0, len(rsvps))
	for _, r := range rsvps {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name,
			strconv.Itoa(r.GuestCount),
			string(r.Attendance),
			r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return sendCSV(c, csvexport.Filename("rsvps", time.Now()), csvexport.Marshal(headers, rows))
}

// ExportBlessings (GET /dashboard/export/blessings.csv) tüm tebrikleri indirir
// (onaysızlar dahil).
func (h *ExportHandler) ExportBlessings(c *fiber.Ctx) error {
	blessings, err := h.blessingService.ListAll(c.UserContext())
	if err != nil {
		configslog.Log.Error("ExportBlessings hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	headers := []string{"id", "name", "message", "is_approved", "created_at"}
	rows := make([][]string, 0, len(blessings))
	for _, b := range blessings {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(b.ID), 10),
			b.Name,
			b.Message,
			strconv.FormatBool(b.IsApproved),
			b.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return sendCSV(c, csvexport.Filename("blessings", time.Now()), csvexport.Marshal(headers, rows))
}

func sendCSV(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}
