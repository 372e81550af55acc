package storage

import (
	"strings"
	"talenta/models"

	"gorm.io/gorm"
)

// Storage mediates all reads and writes against the store. Controllers
// never build queries themselves; joins and ordering live here.
// Lookups return (nil, nil) when the row is absent.
type Storage interface {
	// User operations
	GetUser(id string) (*models.User, error)
	UpsertUser(user models.User) (*models.User, error)
	UpdateUserBillingInfo(userId, customerId, subscriptionId string) (*models.User, error)

	// Course operations
	GetCourses(search, category string, featured bool) ([]models.Course, error)
	GetCourse(id uint) (*models.Course, error)
	CreateCourse(course *models.Course) error
	UpdateCourseStats(courseId uint, enrollmentCount int, rating float64) error
	CountCourseEnrollments(courseId uint) (int64, error)
	AverageCourseRating(courseId uint) (float64, error)

	// Enrollment operations
	CreateEnrollment(userId string, courseId uint) (*models.Enrollment, error)
	GetUserEnrollments(userId string) ([]models.Enrollment, error)
	GetEnrollment(userId string, courseId uint) (*models.Enrollment, error)
	UpdateEnrollmentProgress(userId string, courseId uint, progress float64, completedModules []int) error

	// Certificate operations
	CreateCertificate(userId string, courseId uint, certificateUrl string) (*models.Certificate, error)
	GetUserCertificates(userId string) ([]models.Certificate, error)
	GetCertificate(userId string, courseId uint) (*models.Certificate, error)

	// Review operations
	CreateReview(review *models.Review) error
	GetCourseReviews(courseId uint) ([]models.Review, error)

	// University operations
	GetUniversities() ([]models.University, error)

	// Financial aid operations
	CreateFinancialAid(aid *models.FinancialAid) error
	GetUserFinancialAid(userId string) ([]models.FinancialAid, error)

	// Newsletter operations
	SubscribeNewsletter(email string) (*models.Newsletter, error)

	// Payment operations
	CreatePayment(payment *models.Payment) error
	UpdatePaymentStatus(id uint, status, gatewayPaymentId string) error
}

// Store is the global storage instance, set after the database connects.
var Store Storage

// GormStore implements Storage on top of a GORM connection.
type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// IsUniqueViolation reports whether err came from a unique constraint.
// Used as the backstop for racing duplicate inserts.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
