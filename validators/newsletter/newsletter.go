package newsletterValidator

import (
	"regexp"
	"strings"
	"talenta/middleware"

	"github.com/gofiber/fiber/v2"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubscribeRequest is the validated subscribe body.
type SubscribeRequest struct {
	Email string `json:"email"`
}

func Subscribe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubscribeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if !emailRe.MatchString(reqData.Email) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"email": "A valid email address is required!",
			})
		}

		c.Locals("validatedSubscribe", reqData)
		return c.Next()
	}
}
