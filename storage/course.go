package storage

import (
	"errors"
	"strings"
	"talenta/models"

	"gorm.io/gorm"
)

// GetCourses returns the full filtered catalog ordered by enrollment
// count descending. Filters combine with AND; empty filters are no-ops.
func (s *GormStore) GetCourses(search, category string, featured bool) ([]models.Course, error) {
	db := s.db.Model(&models.Course{})

	if search != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if featured {
		db = db.Where("is_featured = ?", true)
	}

	var courses []models.Course
	if err := db.Order("enrollment_count desc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStore) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.Where("id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (s *GormStore) CreateCourse(course *models.Course) error {
	return s.db.Create(course).Error
}

// UpdateCourseStats overwrites the denormalized counters with the
// caller-supplied final values.
func (s *GormStore) UpdateCourseStats(courseId uint, enrollmentCount int, rating float64) error {
	return s.db.Model(&models.Course{}).Where("id = ?", courseId).Updates(map[string]interface{}{
		"enrollment_count": enrollmentCount,
		"rating":           rating,
	}).Error
}

func (s *GormStore) CountCourseEnrollments(courseId uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Enrollment{}).Where("course_id = ?", courseId).Count(&count).Error
	return count, err
}

// AverageCourseRating returns 0 for courses with no reviews.
func (s *GormStore) AverageCourseRating(courseId uint) (float64, error) {
	var avg *float64
	err := s.db.Model(&models.Review{}).Where("course_id = ?", courseId).
		Select("AVG(rating)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
