package repository

import (
	"context"

	"gorm.io/gorm"

	"glambook/internal/domain"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	var p domain.Profile
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// Update writes the owner-editable fields. Role and user binding never change.
func (r *ProfileRepository) Update(ctx context.Context, p *domain.Profile) error {
	return r.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("user_id = ?", p.UserID).
		Updates(map[string]any{
			"first_name":          p.FirstName,
			"last_name":           p.LastName,
			"phone_number":        p.PhoneNumber,
			"bio":                 p.Bio,
			"location_city":       p.LocationCity,
			"location_state":      p.LocationState,
			"location_country":    p.LocationCountry,
			"work_address":        p.WorkAddress,
			"instagram_handle":    p.InstagramHandle,
			"facebook_page":       p.FacebookPage,
			"bank_name":           p.BankName,
			"account_number":      p.AccountNumber,
			"account_name":        p.AccountName,
		}).Error
}

func (r *ProfileRepository) UpdatePictureURL(ctx context.Context, userID int64, url string) error {
	return r.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("user_id = ?", userID).
		Update("profile_picture_url", url).Error
}

// ListArtists returns artist profiles, optionally filtered by city.
func (r *ProfileRepository) ListArtists(ctx context.Context, city string, limit, offset int) ([]domain.Profile, error) {
	q := r.db.WithContext(ctx).Where("user_type = ?", domain.RoleArtist)
	if city != "" {
		q = q.Where("location_city = ?", city)
	}
	var out []domain.Profile
	tx := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out)
	return out, tx.Error
}
