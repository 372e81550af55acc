package storage

import (
	"errors"
	"talenta/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *GormStore) CreateCertificate(userId string, courseId uint, certificateUrl string) (*models.Certificate, error) {
	certificate := models.Certificate{
		ID:             uuid.NewString(),
		UserID:         userId,
		CourseID:       courseId,
		CertificateUrl: certificateUrl,
		IssuedAt:       time.Now(),
	}
	if err := s.db.Create(&certificate).Error; err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (s *GormStore) GetUserCertificates(userId string) ([]models.Certificate, error) {
	var certificates []models.Certificate
	if err := s.db.Where("user_id = ?", userId).Preload("Course").
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}

func (s *GormStore) GetCertificate(userId string, courseId uint) (*models.Certificate, error) {
	var certificate models.Certificate
	if err := s.db.Where("user_id = ? AND course_id = ?", userId, courseId).First(&certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &certificate, nil
}
