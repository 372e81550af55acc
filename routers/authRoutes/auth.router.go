package authRoutes

import (
	controllers "talenta/controllers/auth"
	"talenta/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the identity routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Get("/user", middleware.JWTMiddleware, controllers.GetCurrentUser)
}
