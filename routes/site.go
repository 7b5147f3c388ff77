package routes

import (
	handlers "dugun.link/handlers/site"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
)

// registerSiteRoutes misafirlere açık sayfa ve API rotalarını tanımlar.
func registerSiteRoutes(app *fiber.App, deps Deps) {
	pageHandler := handlers.NewPageHandler()
	rsvpHandler := handlers.NewRSVPHandler()
	blessingHandler := handlers.NewBlessingHandler(deps.Publisher)
	streamHandler := handlers.NewStreamHandler(deps.Hub, services.NewBlessingService(deps.Publisher))

	// Davetiye sayfası
	app.Get("/", pageHandler.Home)

	// LCV (RSVP kanalında gerçek zamanlı abonelik yok; liste tam okuma ile tazelenir)
	app.Post("/rsvp", rsvpHandler.CreateRSVP)
	app.Get("/rsvp", rsvpHandler.ListRSVPs)

	// Tebrik defteri
	app.Post("/blessings", blessingHandler.CreateBlessing)
	app.Get("/blessings", blessingHandler.ListBlessings)
	app.Get("/blessings/stream", streamHandler.BlessingStream)
}
