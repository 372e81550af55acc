package universityRoutes

import (
	controllers "talenta/controllers/university"

	"github.com/gofiber/fiber/v2"
)

// SetupUniversityRoutes sets up the partner listing routes
func SetupUniversityRoutes(app *fiber.App) {
	app.Get("/api/universities", controllers.GetUniversities)
}
