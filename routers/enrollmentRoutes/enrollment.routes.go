package enrollmentRoutes

import (
	certificateControllers "talenta/controllers/certificate"
	enrollmentControllers "talenta/controllers/enrollment"
	"talenta/middleware"
	certificateValidator "talenta/validators/certificate"
	enrollmentValidator "talenta/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up enrollment, progress and certificate routes
func SetupEnrollmentRoutes(app *fiber.App) {
	enrollGroup := app.Group("/api/enrollments", middleware.JWTMiddleware)

	enrollGroup.Post("/", enrollmentValidator.Enroll(), enrollmentControllers.EnrollInCourse)
	enrollGroup.Get("/", enrollmentControllers.GetEnrollments)
	enrollGroup.Patch("/:courseId/progress", enrollmentValidator.UpdateProgress(), enrollmentControllers.UpdateProgress)

	certGroup := app.Group("/api/certificates", middleware.JWTMiddleware)

	certGroup.Get("/", certificateControllers.GetUserCertificates)
	certGroup.Post("/", certificateValidator.Issue(), certificateControllers.IssueCertificate)
}
