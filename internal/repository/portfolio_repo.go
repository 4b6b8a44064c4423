package repository

import (
	"context"

	"gorm.io/gorm"

	"glambook/internal/domain"
)

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) Create(ctx context.Context, p *domain.PortfolioPhoto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id int64) (*domain.PortfolioPhoto, error) {
	var p domain.PortfolioPhoto
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PortfolioRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.PortfolioPhoto, error) {
	var out []domain.PortfolioPhoto
	tx := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at ASC").
		Find(&out)
	return out, tx.Error
}

func (r *PortfolioRepository) CountByArtist(ctx context.Context, artistID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.PortfolioPhoto{}).
		Where("artist_id = ?", artistID).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *PortfolioRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.PortfolioPhoto{}, id).Error
}
