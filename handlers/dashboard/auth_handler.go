package handlers

import (
	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/middlewares"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler yönetim paneli giriş/çıkış işlemleri.
// Parola tek ve paylaşımlıdır; istemci tarafı kontrol yerine sunucu tarafı
// oturum kullanılır, ancak bu bir güvenlik sınırı olarak tasarlanmamıştır.
type AuthHandler struct {
	cfg *configs.Config
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{cfg: configs.App()}
}

type loginInput struct {
	Password string `json:"password" form:"password"`
}

// ShowLogin (GET /dashboard/login) giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return c.Render("dashboard/login", fiber.Map{
		"Title": "Yönetici Girişi",
	})
}

// Login (POST /dashboard/login) parolayı doğrular ve oturumu işaretler.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	if h.cfg.AdminPasswordHash == "" {
		configslog.SLog.Error("Yönetici parolası yapılandırılmamış (ADMIN_PASSWORD / ADMIN_PASSWORD_HASH).")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "yönetici girişi yapılandırılmamış"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "parola hatalı"})
	}

	sess, err := configs.GetSessionStore().Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "oturum başlatılamadı"})
	}
	sess.Set(middlewares.SessionAdminKey, true)
	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "oturum kaydedilemedi"})
	}

	configslog.SLog.Info("Yönetici oturumu açıldı.")
	return c.JSON(fiber.Map{"message": "giriş başarılı"})
}

// Logout (POST /dashboard/logout) oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := configs.GetSessionStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(fiber.Map{"message": "çıkış yapıldı"})
}
