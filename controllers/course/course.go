package controllers

import (
	"encoding/json"
	"log"
	"talenta/middleware"
	"talenta/models"
	"talenta/storage"
	courseValidator "talenta/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// GetAllCourses returns the filtered catalog, most-enrolled first.
// Public route; filters combine with AND.
func GetAllCourses(c *fiber.Ctx) error {
	search := c.Query("search")
	category := c.Query("category")
	featured := c.Query("featured") == "true"

	courses, err := storage.Store.GetCourses(search, category, featured)
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourse returns a single course or 404.
func GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := storage.Store.GetCourse(courseID)
	if err != nil {
		log.Printf("Error fetching course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func CreateCourse(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	user, err := storage.Store.GetUser(userID)
	if err != nil || user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Get validated request data
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	modules := reqData.Modules
	if modules == nil {
		modules = []map[string]interface{}{}
	}
	rawModules, err := json.Marshal(modules)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid modules payload!", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Brief:       reqData.Brief,
		Category:    reqData.Category,
		Duration:    reqData.Duration,
		Price:       reqData.Price,
		PriceEtb:    reqData.PriceEtb,
		ImageUrl:    reqData.ImageUrl,
		IsFeatured:  reqData.IsFeatured,
		Modules:     datatypes.JSON(rawModules),
	}

	if err := storage.Store.CreateCourse(&course); err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}
