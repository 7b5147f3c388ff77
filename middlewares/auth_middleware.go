package middlewares

import (
	"dugun.link/configs"

	"github.com/gofiber/fiber/v2"
)

// SessionAdminKey oturumda yönetici yetkisini işaretleyen anahtar.
const SessionAdminKey = "is_admin"

// AdminRequired /dashboard rotalarını sunucu tarafı oturum kontrolüyle korur.
// Yetkisiz JSON istekleri 401 alır; tarayıcı istekleri giriş sayfasına yönlenir.
func AdminRequired(c *fiber.Ctx) error {
	sess, err := configs.GetSessionStore().Get(c)
	if err == nil {
		if isAdmin, ok := sess.Get(SessionAdminKey).(bool); ok && isAdmin {
			return c.Next()
		}
	}

	if c.Accepts("application/json", "text/html") == "text/html" {
		return c.Redirect("/dashboard/login", fiber.StatusSeeOther)
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "yetkisiz erişim"})
}
