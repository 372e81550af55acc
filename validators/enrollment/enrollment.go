package enrollmentValidator

import (
	"strconv"
	"strings"
	"talenta/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollRequest is the validated enroll body.
type EnrollRequest struct {
	CourseId uint `json:"courseId"`
}

// ProgressRequest is the validated progress-update body.
type ProgressRequest struct {
	Progress         *float64 `json:"progress"`
	CompletedModules []int    `json:"completedModules"`
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseId == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course ID is required!",
			})
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Progress
		if reqData.Progress == nil {
			errors["progress"] = "Progress is required!"
		} else if *reqData.Progress < 0 || *reqData.Progress > 100 {
			errors["progress"] = "Progress must be between 0 and 100!"
		}

		// Validate completed module indices
		for _, idx := range reqData.CompletedModules {
			if idx < 0 {
				errors["completedModules"] = "Module indices must not be negative!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", uint(courseID))
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
