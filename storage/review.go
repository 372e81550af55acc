package storage

import (
	"talenta/models"
	"time"
)

// CreateReview inserts unconditionally. Repeat reviews from the same
// user for the same course are allowed.
func (s *GormStore) CreateReview(review *models.Review) error {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	return s.db.Create(review).Error
}

func (s *GormStore) GetCourseReviews(courseId uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("course_id = ?", courseId).Preload("User").
		Order("created_at desc").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
