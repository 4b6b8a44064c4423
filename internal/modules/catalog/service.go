package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"glambook/internal/domain"
	"glambook/internal/pkg/validator"
)

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

func (s *Service) Create(ctx context.Context, artistID int64, req CreateServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		ArtistID:             artistID,
		ServiceName:          req.ServiceName,
		ServiceType:          req.ServiceType,
		Description:          req.Description,
		BasePrice:            req.BasePrice,
		MaxPeople:            req.MaxPeople,
		TravelRequired:       req.TravelRequired,
		IncludesBridalShower: req.IncludesBridalShower,
	}
	if fields := validator.Validate(svc); fields != nil {
		return nil, ErrValidation
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListByArtist(ctx context.Context, artistID int64) ([]domain.Service, error) {
	return s.services.ListByArtist(ctx, artistID)
}

// Update applies only the provided fields. Existing bookings keep the
// price they were created with.
func (s *Service) Update(ctx context.Context, artistID, serviceID int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.Get(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc.ArtistID != artistID {
		return nil, ErrForbidden
	}

	if req.ServiceName != nil {
		svc.ServiceName = *req.ServiceName
	}
	if req.ServiceType != nil {
		svc.ServiceType = *req.ServiceType
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.BasePrice != nil {
		svc.BasePrice = *req.BasePrice
	}
	if req.MaxPeople != nil {
		svc.MaxPeople = *req.MaxPeople
	}
	if req.TravelRequired != nil {
		svc.TravelRequired = *req.TravelRequired
	}
	if req.IncludesBridalShower != nil {
		svc.IncludesBridalShower = *req.IncludesBridalShower
	}
	if fields := validator.Validate(svc); fields != nil {
		return nil, ErrValidation
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) Delete(ctx context.Context, artistID, serviceID int64) error {
	svc, err := s.Get(ctx, serviceID)
	if err != nil {
		return err
	}
	if svc.ArtistID != artistID {
		return ErrForbidden
	}
	return s.services.Delete(ctx, serviceID)
}
