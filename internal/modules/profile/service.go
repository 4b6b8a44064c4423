package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"glambook/internal/domain"
)

type Service struct {
	profiles ProfileRepository
	ratings  RatingReader
}

func NewService(profiles ProfileRepository, ratings RatingReader) *Service {
	return &Service{profiles: profiles, ratings: ratings}
}

func (s *Service) GetMe(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdateMe applies the provided fields to the caller's own profile.
func (s *Service) UpdateMe(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.Profile, error) {
	p, err := s.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&p.FirstName, req.FirstName)
	apply(&p.LastName, req.LastName)
	apply(&p.PhoneNumber, req.PhoneNumber)
	apply(&p.Bio, req.Bio)
	apply(&p.LocationCity, req.LocationCity)
	apply(&p.LocationState, req.LocationState)
	apply(&p.LocationCountry, req.LocationCountry)
	apply(&p.WorkAddress, req.WorkAddress)
	apply(&p.InstagramHandle, req.InstagramHandle)
	apply(&p.FacebookPage, req.FacebookPage)
	apply(&p.BankName, req.BankName)
	apply(&p.AccountNumber, req.AccountNumber)
	apply(&p.AccountName, req.AccountName)

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetArtist is the public view with rating aggregates folded in.
func (s *Service) GetArtist(ctx context.Context, artistID int64) (*ArtistCard, error) {
	p, err := s.GetMe(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if p.UserType != domain.RoleArtist {
		return nil, ErrNotFound
	}

	card := cardFrom(p)
	s.fillRating(ctx, &card)
	return &card, nil
}

func (s *Service) BrowseArtists(ctx context.Context, city string, limit, offset int) ([]ArtistCard, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.profiles.ListArtists(ctx, city, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]ArtistCard, 0, len(rows))
	for i := range rows {
		card := cardFrom(&rows[i])
		s.fillRating(ctx, &card)
		out = append(out, card)
	}
	return out, nil
}

func (s *Service) fillRating(ctx context.Context, card *ArtistCard) {
	ratings, err := s.ratings.ListByArtist(ctx, card.UserID)
	if err != nil || len(ratings) == 0 {
		return
	}
	var sum float64
	for i := range ratings {
		sum += float64(ratings[i].Rating)
	}
	card.RatingCount = len(ratings)
	card.AverageRating = sum / float64(len(ratings))
}
