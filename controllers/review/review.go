package controllers

import (
	"log"
	"talenta/middleware"
	"talenta/models"
	"talenta/storage"
	"talenta/utils"
	reviewValidator "talenta/validators/review"

	"github.com/gofiber/fiber/v2"
)

func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := storage.Store.GetUser(userID)
	if err != nil || user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*reviewValidator.CreateReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := storage.Store.GetCourse(reqData.CourseId)
	if err != nil {
		log.Printf("Error fetching course %d: %v", reqData.CourseId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create review!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	review := models.Review{
		UserID:   userID,
		CourseID: reqData.CourseId,
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}

	if err := storage.Store.CreateReview(&review); err != nil {
		log.Printf("Error creating review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create review!", nil)
	}

	go utils.RefreshCourseStats(reqData.CourseId)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created successfully!", review)
}

// GetCourseReviews is public; each review embeds its reviewer.
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	reviews, err := storage.Store.GetCourseReviews(courseID)
	if err != nil {
		log.Printf("Error fetching reviews: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}
