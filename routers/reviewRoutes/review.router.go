package reviewRoutes

import (
	controllers "talenta/controllers/review"
	"talenta/middleware"
	reviewValidator "talenta/validators/review"

	"github.com/gofiber/fiber/v2"
)

// SetupReviewRoutes sets up the review routes
func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/api/reviews")

	reviewGroup.Post("/", middleware.JWTMiddleware, reviewValidator.CreateReview(), controllers.CreateReview)
}
