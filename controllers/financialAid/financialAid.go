package controllers

import (
	"log"
	"talenta/middleware"
	"talenta/models"
	"talenta/storage"
	financialAidValidator "talenta/validators/financialAid"

	"github.com/gofiber/fiber/v2"
)

func ApplyForAid(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := storage.Store.GetUser(userID)
	if err != nil || user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedAid").(*financialAidValidator.ApplyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := storage.Store.GetCourse(reqData.CourseId)
	if err != nil {
		log.Printf("Error fetching course %d: %v", reqData.CourseId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	aid := models.FinancialAid{
		UserID:   userID,
		CourseID: reqData.CourseId,
		Reason:   reqData.Reason,
		Income:   reqData.Income,
	}

	// Review happens outside this system; applications stay pending here
	if err := storage.Store.CreateFinancialAid(&aid); err != nil {
		log.Printf("Error creating financial aid application: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", aid)
}

func GetUserApplications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := storage.Store.GetUser(userID)
	if err != nil || user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	applications, err := storage.Store.GetUserFinancialAid(userID)
	if err != nil {
		log.Printf("Error fetching financial aid applications: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}
