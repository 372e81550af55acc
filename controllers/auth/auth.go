package controllers

import (
	"talenta/middleware"
	"talenta/models"
	"talenta/storage"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser returns the caller's user record, creating or
// refreshing it from the token claims. Upsert on every login keeps
// the row in step with the identity provider.
func GetCurrentUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user := models.User{
		ID:              userID,
		FirstName:       localString(c, "firstName"),
		LastName:        localString(c, "lastName"),
		ProfileImageUrl: localString(c, "profileImageUrl"),
	}
	if email := localString(c, "email"); email != "" {
		user.Email = &email
	}

	saved, err := storage.Store.UpsertUser(user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", saved)
}

func localString(c *fiber.Ctx, key string) string {
	if v, ok := c.Locals(key).(string); ok {
		return v
	}
	return ""
}
