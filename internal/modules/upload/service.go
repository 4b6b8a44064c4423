package upload

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"glambook/internal/domain"
)

type Service struct {
	store     *Store
	portfolio PortfolioRepository
	profiles  ProfilePictureWriter
	log       *logrus.Logger
}

func NewService(store *Store, portfolio PortfolioRepository, profiles ProfilePictureWriter, log *logrus.Logger) *Service {
	return &Service{
		store:     store,
		portfolio: portfolio,
		profiles:  profiles,
		log:       log,
	}
}

// UploadProfilePicture stores the image and points the profile at it.
// The previous picture file is left on disk; the URL simply moves on.
func (s *Service) UploadProfilePicture(ctx context.Context, userID int64, fh *multipart.FileHeader) (string, error) {
	filePath, url, err := s.store.Save(fh)
	if err != nil {
		return "", err
	}

	if err := s.profiles.UpdatePictureURL(ctx, userID, url); err != nil {
		_ = s.store.Remove(filePath)
		return "", err
	}
	return url, nil
}

// PortfolioItemResult reports the fate of one file in a batch upload.
// A batch is not transactional: early files stay saved when a later
// one fails, and each failure names its file.
type PortfolioItemResult struct {
	FileName string                `json:"file_name"`
	Photo    *domain.PortfolioPhoto `json:"photo,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// UploadPortfolio saves up to the remaining gallery capacity, item by
// item, and reports per-file outcomes.
func (s *Service) UploadPortfolio(ctx context.Context, artistID int64, files []*multipart.FileHeader) ([]PortfolioItemResult, error) {
	count, err := s.portfolio.CountByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	remaining := domain.MaxPortfolioPhotos - int(count)
	if remaining <= 0 {
		return nil, ErrPortfolioFull
	}

	results := make([]PortfolioItemResult, 0, len(files))
	for _, fh := range files {
		res := PortfolioItemResult{FileName: fh.Filename}

		if remaining <= 0 {
			res.Error = "portfolio is full"
			results = append(results, res)
			continue
		}

		filePath, url, err := s.store.Save(fh)
		if err != nil {
			res.Error = uploadErrorMessage(err)
			results = append(results, res)
			continue
		}

		photo := &domain.PortfolioPhoto{
			ArtistID: artistID,
			FilePath: filePath,
			URL:      url,
		}
		if err := s.portfolio.Create(ctx, photo); err != nil {
			_ = s.store.Remove(filePath)
			s.log.WithError(err).Warn("failed to store portfolio photo")
			res.Error = "failed to save photo"
			results = append(results, res)
			continue
		}

		remaining--
		res.Photo = photo
		results = append(results, res)
	}
	return results, nil
}

func (s *Service) ListPortfolio(ctx context.Context, artistID int64) ([]domain.PortfolioPhoto, error) {
	return s.portfolio.ListByArtist(ctx, artistID)
}

func (s *Service) DeletePortfolioPhoto(ctx context.Context, artistID, photoID int64) error {
	photo, err := s.portfolio.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if photo.ArtistID != artistID {
		return ErrForbidden
	}

	if err := s.portfolio.Delete(ctx, photoID); err != nil {
		return err
	}
	if err := s.store.Remove(photo.FilePath); err != nil {
		// Row is gone, the orphaned file is only a disk leak.
		s.log.WithError(err).WithField("path", photo.FilePath).Warn("failed to remove photo file")
	}
	return nil
}

func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		return "file exceeds the 5 MB limit"
	case errors.Is(err, ErrBadFileType):
		return "only jpeg, png and webp images are allowed"
	default:
		return "failed to save file"
	}
}
