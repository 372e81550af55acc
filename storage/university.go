package storage

import "talenta/models"

func (s *GormStore) GetUniversities() ([]models.University, error) {
	var universities []models.University
	if err := s.db.Order("name asc").Find(&universities).Error; err != nil {
		return nil, err
	}
	return universities, nil
}
