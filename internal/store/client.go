package store

import (
	"context"

	"github.com/sgrubb/therapy-log/internal/models"
)

// ListClients returns every client with the therapist relation populated
func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.WithContext(ctx).Preload("Therapist").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// GetClient returns one client with their therapist, or gorm.ErrRecordNotFound
func (s *Store) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).Preload("Therapist").First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// CreateClient inserts a new client. A duplicate hospital number surfaces
// as gorm.ErrDuplicatedKey, an unknown therapist as gorm.ErrForeignKeyViolated.
func (s *Store) CreateClient(ctx context.Context, client *models.Client) error {
	return s.db.WithContext(ctx).Create(client).Error
}

// UpdateClient applies a partial update to an existing client
func (s *Store) UpdateClient(ctx context.Context, id uint, changes map[string]any) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := s.db.WithContext(ctx).Model(&client).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}
