package routes

import (
	handlers "dugun.link/handlers/dashboard"
	"dugun.link/middlewares"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki yönetim rotalarını tanımlar.
// Giriş/çıkış hariç tüm rotalar oturum middleware'i ile korunur.
func registerDashboardRoutes(app *fiber.App, deps Deps) {
	authHandler := handlers.NewAuthHandler()
	dashboardHandler := handlers.NewDashboardHandler(deps.Publisher)
	exportHandler := handlers.NewExportHandlerWithServices(
		services.NewRSVPService(),
		services.NewBlessingService(deps.Publisher),
	)

	dashboardGroup := app.Group("/dashboard")

	// Kapı: giriş formu ve parola kontrolü (oturum gerektirmez)
	dashboardGroup.Get("/login", authHandler.ShowLogin)
	dashboardGroup.Post("/login", authHandler.Login)
	dashboardGroup.Post("/logout", authHandler.Logout)

	protected := dashboardGroup.Group("", middlewares.AdminRequired)

	protected.Get("/", dashboardHandler.Index)
	protected.Get("/summary", dashboardHandler.Summary)
	protected.Get("/rsvps", dashboardHandler.ListRSVPs)
	protected.Get("/blessings", dashboardHandler.ListBlessings)
	protected.Post("/blessings/:id/toggle", dashboardHandler.ToggleBlessing)
	protected.Post("/locale", dashboardHandler.SetLocale)

	protected.Get("/export/rsvps.csv", exportHandler.ExportRSVPs)
	protected.Get("/export/blessings.csv", exportHandler.ExportBlessings)
}
