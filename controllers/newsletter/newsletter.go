package controllers

import (
	"log"
	"talenta/middleware"
	"talenta/storage"
	"talenta/utils"
	newsletterValidator "talenta/validators/newsletter"

	"github.com/gofiber/fiber/v2"
)

// Subscribe adds an email to the newsletter. Subscribing twice is a
// no-op and still succeeds.
func Subscribe(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubscribe").(*newsletterValidator.SubscribeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	subscription, err := storage.Store.SubscribeNewsletter(reqData.Email)
	if err != nil {
		log.Printf("Error subscribing to newsletter: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe to newsletter!", nil)
	}

	utils.SendWelcomeEmail(subscription.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subscribed to newsletter successfully!", subscription)
}
