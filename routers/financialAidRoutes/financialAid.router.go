package financialAidRoutes

import (
	controllers "talenta/controllers/financialAid"
	"talenta/middleware"
	financialAidValidator "talenta/validators/financialAid"

	"github.com/gofiber/fiber/v2"
)

// SetupFinancialAidRoutes sets up the financial aid routes
func SetupFinancialAidRoutes(app *fiber.App) {
	aidGroup := app.Group("/api/financial-aid", middleware.JWTMiddleware)

	aidGroup.Post("/", financialAidValidator.Apply(), controllers.ApplyForAid)
	aidGroup.Get("/", controllers.GetUserApplications)
}
