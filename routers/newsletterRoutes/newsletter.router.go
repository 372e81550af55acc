package newsletterRoutes

import (
	controllers "talenta/controllers/newsletter"
	newsletterValidator "talenta/validators/newsletter"

	"github.com/gofiber/fiber/v2"
)

// SetupNewsletterRoutes sets up the newsletter routes
func SetupNewsletterRoutes(app *fiber.App) {
	app.Post("/api/newsletter", newsletterValidator.Subscribe(), controllers.Subscribe)
}
