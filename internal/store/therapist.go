package store

import (
	"context"

	"github.com/sgrubb/therapy-log/internal/models"
)

// ListTherapists returns every therapist
func (s *Store) ListTherapists(ctx context.Context) ([]models.Therapist, error) {
	var therapists []models.Therapist
	if err := s.db.WithContext(ctx).Find(&therapists).Error; err != nil {
		return nil, err
	}
	return therapists, nil
}

// GetTherapist returns one therapist or gorm.ErrRecordNotFound
func (s *Store) GetTherapist(ctx context.Context, id uint) (*models.Therapist, error) {
	var therapist models.Therapist
	if err := s.db.WithContext(ctx).First(&therapist, id).Error; err != nil {
		return nil, err
	}
	return &therapist, nil
}

// CreateTherapist inserts a new therapist and fills in its generated ID
func (s *Store) CreateTherapist(ctx context.Context, therapist *models.Therapist) error {
	return s.db.WithContext(ctx).Create(therapist).Error
}

// UpdateTherapist applies a partial update to an existing therapist.
// The initial First is the fetch-or-fail: a missing id surfaces as
// gorm.ErrRecordNotFound before any write is attempted.
func (s *Store) UpdateTherapist(ctx context.Context, id uint, changes map[string]any) (*models.Therapist, error) {
	var therapist models.Therapist
	if err := s.db.WithContext(ctx).First(&therapist, id).Error; err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := s.db.WithContext(ctx).Model(&therapist).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).First(&therapist, id).Error; err != nil {
		return nil, err
	}
	return &therapist, nil
}
