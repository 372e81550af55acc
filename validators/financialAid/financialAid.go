package financialAidValidator

import (
	"strings"
	"talenta/middleware"

	"github.com/gofiber/fiber/v2"
)

// ApplyRequest is the validated financial-aid application body.
type ApplyRequest struct {
	CourseId uint   `json:"courseId"`
	Reason   string `json:"reason"`
	Income   string `json:"income"`
}

func Apply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ApplyRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseId == 0 {
			errors["courseId"] = "Course ID is required!"
		}

		// Validate Reason
		if strings.TrimSpace(reqData.Reason) == "" {
			errors["reason"] = "Reason is required!"
		} else if len(strings.TrimSpace(reqData.Reason)) < 20 {
			errors["reason"] = "Please explain your situation in at least 20 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAid", reqData)
		return c.Next()
	}
}
