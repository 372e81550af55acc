package certificateValidator

import (
	"talenta/middleware"

	"github.com/gofiber/fiber/v2"
)

// IssueRequest is the validated issue-certificate body.
type IssueRequest struct {
	CourseId uint `json:"courseId"`
}

func Issue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(IssueRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseId == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course ID is required!",
			})
		}

		c.Locals("validatedIssue", reqData)
		return c.Next()
	}
}
