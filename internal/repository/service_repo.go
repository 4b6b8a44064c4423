package repository

import (
	"context"

	"gorm.io/gorm"

	"glambook/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.Service, error) {
	var out []domain.Service
	tx := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Model(&domain.Service{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"service_name":           s.ServiceName,
			"service_type":           s.ServiceType,
			"description":            s.Description,
			"base_price":             s.BasePrice,
			"max_people":             s.MaxPeople,
			"travel_required":        s.TravelRequired,
			"includes_bridal_shower": s.IncludesBridalShower,
		}).Error
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Service{}, id).Error
}
