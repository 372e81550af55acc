package controllers

import (
	"fmt"
	"log"
	"talenta/middleware"
	"talenta/storage"
	"talenta/utils"
	certificateValidator "talenta/validators/certificate"
	"time"

	"github.com/gofiber/fiber/v2"
)

// IssueCertificate issues a completion certificate. Issuance requires
// a completed enrollment; one certificate per (user, course).
func IssueCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := storage.Store.GetUser(userID)
	if err != nil || user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedIssue").(*certificateValidator.IssueRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := storage.Store.GetCourse(reqData.CourseId)
	if err != nil {
		log.Printf("Error fetching course %d: %v", reqData.CourseId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Check enrollment and completion
	enrollment, err := storage.Store.GetEnrollment(userID, reqData.CourseId)
	if err != nil {
		log.Printf("Error fetching enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}
	if enrollment == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
	}
	if enrollment.CompletedAt == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", nil)
	}

	// Check if certificate already exists
	existing, err := storage.Store.GetCertificate(userID, reqData.CourseId)
	if err != nil {
		log.Printf("Error checking certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}
	if existing != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already issued!", existing)
	}

	// Placeholder artifact path; rendering happens elsewhere
	certificateUrl := fmt.Sprintf("/certificates/%s-%d-%d.pdf", userID, reqData.CourseId, time.Now().UnixMilli())

	certificate, err := storage.Store.CreateCertificate(userID, reqData.CourseId, certificateUrl)
	if err != nil {
		log.Printf("Error creating certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	if user.Email != nil {
		utils.SendCertificateEmail(*user.Email, user.FirstName, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", certificate)
}

// GetUserCertificates gets all certificates for the current user
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := storage.Store.GetUser(userID)
	if err != nil || user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	certificates, err := storage.Store.GetUserCertificates(userID)
	if err != nil {
		log.Printf("Error fetching certificates: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", certificates)
}
