package controllers

import (
	"log"
	"talenta/middleware"
	"talenta/models"
	"talenta/storage"
	"talenta/utils"
	paymentValidator "talenta/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// CreatePaymentIntent asks the external processor for a payment
// intent and relays the client secret. Processor error text stays in
// the server log, not the response.
func CreatePaymentIntent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIntent").(*paymentValidator.CreateIntentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	clientSecret, err := utils.CreatePaymentIntent(reqData.Amount, reqData.Currency)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to create payment intent!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created successfully!", fiber.Map{
		"clientSecret": clientSecret,
	})
}

// CreatePayment persists a caller-asserted payment record. It is not
// correlated with the intent call; see the known-limitations note in
// the project docs.
func CreatePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := storage.Store.GetUser(userID)
	if err != nil || user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*paymentValidator.CreatePaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := storage.Store.GetCourse(reqData.CourseId)
	if err != nil {
		log.Printf("Error fetching course %d: %v", reqData.CourseId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	payment := models.Payment{
		UserID:           userID,
		CourseID:         reqData.CourseId,
		Amount:           reqData.Amount,
		Currency:         reqData.Currency,
		Method:           reqData.Method,
		GatewayPaymentId: reqData.GatewayPaymentId,
	}

	if err := storage.Store.CreatePayment(&payment); err != nil {
		log.Printf("Error creating payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment recorded successfully!", payment)
}
