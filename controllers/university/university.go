package controllers

import (
	"log"
	"talenta/middleware"
	"talenta/storage"

	"github.com/gofiber/fiber/v2"
)

// GetUniversities lists partner universities, name ascending.
func GetUniversities(c *fiber.Ctx) error {
	universities, err := storage.Store.GetUniversities()
	if err != nil {
		log.Printf("Error fetching universities: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch universities!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Universities fetched successfully!", universities)
}
