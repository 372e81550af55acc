package paymentRoutes

import (
	controllers "talenta/controllers/payment"
	"talenta/middleware"
	paymentValidator "talenta/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up the checkout routes
func SetupPaymentRoutes(app *fiber.App) {
	// Intent creation is public; the client secret gates the charge
	app.Post("/api/create-payment-intent", paymentValidator.CreateIntent(), controllers.CreatePaymentIntent)

	// Payment records are user-scoped
	app.Post("/api/payments", middleware.JWTMiddleware, paymentValidator.CreatePayment(), controllers.CreatePayment)
}
