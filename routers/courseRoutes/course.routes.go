package courseRoutes

import (
	courseControllers "talenta/controllers/course"
	reviewControllers "talenta/controllers/review"
	"talenta/middleware"
	courseValidator "talenta/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the catalog routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Catalog browsing is public
	courseGroup.Get("/", courseControllers.GetAllCourses)
	courseGroup.Get("/:id", courseValidator.CourseParam(), courseControllers.GetCourse)
	courseGroup.Get("/:id/reviews", courseValidator.CourseParam(), reviewControllers.GetCourseReviews)

	// Course creation requires a signed-in user
	courseGroup.Post("/", middleware.JWTMiddleware, courseValidator.CreateCourse(), courseControllers.CreateCourse)
}
