package courseValidator

import (
	"regexp"
	"strconv"
	"strings"
	"talenta/middleware"

	"github.com/gofiber/fiber/v2"
)

var priceRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// CreateCourseRequest is the validated create-course body.
type CreateCourseRequest struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Brief       string                   `json:"brief"`
	Category    string                   `json:"category"`
	Duration    string                   `json:"duration"`
	Price       string                   `json:"price"`
	PriceEtb    string                   `json:"priceEtb"`
	ImageUrl    string                   `json:"imageUrl"`
	IsFeatured  bool                     `json:"isFeatured"`
	Modules     []map[string]interface{} `json:"modules"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		// Validate Brief
		if strings.TrimSpace(reqData.Brief) == "" {
			errors["brief"] = "Brief is required!"
		}

		// Validate Category
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}

		// Validate Duration
		if strings.TrimSpace(reqData.Duration) == "" {
			errors["duration"] = "Duration is required!"
		}

		// Validate prices (two decimal currencies, stored independently)
		if !priceRe.MatchString(reqData.Price) {
			errors["price"] = "Price must be a decimal amount, e.g. 10.00!"
		}
		if !priceRe.MatchString(reqData.PriceEtb) {
			errors["priceEtb"] = "ETB price must be a decimal amount, e.g. 550.00!"
		}

		// Validate module entries
		for _, module := range reqData.Modules {
			title, _ := module["title"].(string)
			if strings.TrimSpace(title) == "" {
				errors["modules"] = "Each module needs a title!"
				break
			}
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseParam validates the :id path parameter.
func CourseParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		// Validate CourseID is a valid integer
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
