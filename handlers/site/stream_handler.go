package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"dugun.link/configs/configslog"
	"dugun.link/events"
	"dugun.link/models"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// keepaliveInterval bağlantının ara katmanlarca kesilmemesi için yorum
// satırı gönderme aralığı.
const keepaliveInterval = 15 * time.Second

// TopicBlessingSnapshot akış açılışında gönderilen mevcut kayıtların olay adı.
const TopicBlessingSnapshot = "wedding.blessing.snapshot"

// StreamHandler tebrik defterinin canlı güncellenen SSE akışı.
type StreamHandler struct {
	hub     *events.Hub
	service services.IBlessingService
}

// NewStreamHandler yeni bir StreamHandler örneği oluşturur.
func NewStreamHandler(hub *events.Hub, service services.IBlessingService) *StreamHandler {
	return &StreamHandler{hub: hub, service: service}
}

// BlessingStream (GET /blessings/stream) SSE ile yeni tebrikleri yayınlar.
// ?snapshot=true ile önce mevcut onaylı kayıtlar gönderilir; abonelik snapshot
// okumasından ÖNCE açıldığı için arada oluşan kayıt kaçmaz, aynı kayıt her iki
// kaynaktan gelirse id üzerinden tekilleştirilir.
// İstemci bağlantıyı kapattığında abonelik eşzamanlı olarak kaldırılır.
func (h *StreamHandler) BlessingStream(c *fiber.Ctx) error {
	withSnapshot := c.QueryBool("snapshot", false)

	sub := h.hub.Subscribe()

	var snapshot []models.Blessing
	if withSnapshot {
		var err error
		snapshot, err = h.service.ListApproved(c.UserContext())
		if err != nil {
			sub.Cancel()
			configslog.Log.Error("BlessingStream: snapshot okunamadı", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer sub.Cancel()

		sent := make(map[uint]struct{})

		for _, b := range snapshot {
			data, err := json.Marshal(b)
			if err != nil {
				continue
			}
			writeSSEEvent(w, TopicBlessingSnapshot, data)
			sent[b.ID] = struct{}{}
		}
		if err := w.Flush(); err != nil {
			return
		}

		keepalive := time.NewTicker(keepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case evt, ok := <-sub.C:
				if !ok {
					return
				}
				var rec struct {
					ID uint `json:"id"`
				}
				if err := json.Unmarshal(evt.Data, &rec); err == nil {
					if _, dup := sent[rec.ID]; dup {
						continue
					}
					sent[rec.ID] = struct{}{}
				}
				writeSSEEvent(w, evt.Topic, evt.Data)
				if err := w.Flush(); err != nil {
					// İstemci ayrıldı.
					return
				}
			case <-keepalive.C:
				fmt.Fprint(w, ":keepalive\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}

func writeSSEEvent(w *bufio.Writer, topic string, data []byte) {
	fmt.Fprintf(w, "event:%s\n", topic)
	fmt.Fprintf(w, "data:%s\n\n", data)
}
