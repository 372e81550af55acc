package reviewValidator

import (
	"talenta/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateReviewRequest is the validated create-review body.
type CreateReviewRequest struct {
	CourseId uint   `json:"courseId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseId == 0 {
			errors["courseId"] = "Course ID is required!"
		}

		// Validate Rating
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
