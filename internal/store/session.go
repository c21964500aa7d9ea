package store

import (
	"context"

	"github.com/sgrubb/therapy-log/internal/models"
)

// ListSessions returns every session with client and therapist populated
func (s *Store) ListSessions(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Therapist").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetSession returns one session with its relations, or gorm.ErrRecordNotFound
func (s *Store) GetSession(ctx context.Context, id uint) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Therapist").
		First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// CreateSession inserts a new session. Unknown client or therapist ids
// surface as gorm.ErrForeignKeyViolated.
func (s *Store) CreateSession(ctx context.Context, session *models.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

// UpdateSession applies a partial update to an existing session
func (s *Store) UpdateSession(ctx context.Context, id uint, changes map[string]any) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := s.db.WithContext(ctx).Model(&session).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
