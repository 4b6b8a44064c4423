// Seeds a local database with two demo accounts and a small catalog so
// the API can be exercised immediately after startup.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"glambook/internal/database"
	"glambook/internal/domain"
	"glambook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.WithError(err).Fatal("failed to connect")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to migrate")
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)
	services := repository.NewServiceRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Fatal("failed to hash password")
	}

	artist := &domain.User{
		Email:         "artist@glambook.local",
		PasswordHash:  string(hash),
		Role:          domain.RoleArtist,
		EmailVerified: true,
	}
	if err := users.Create(ctx, artist); err != nil {
		log.WithError(err).Fatal("failed to create artist user")
	}
	if err := profiles.Create(ctx, &domain.Profile{
		UserID:       artist.ID,
		UserType:     domain.RoleArtist,
		FirstName:    "Ada",
		LastName:     "Eze",
		Bio:          "Bridal and editorial makeup artist.",
		LocationCity: "Lagos",
		IsVerified:   true,
	}); err != nil {
		log.WithError(err).Fatal("failed to create artist profile")
	}

	client := &domain.User{
		Email:         "client@glambook.local",
		PasswordHash:  string(hash),
		Role:          domain.RoleClient,
		EmailVerified: true,
	}
	if err := users.Create(ctx, client); err != nil {
		log.WithError(err).Fatal("failed to create client user")
	}
	if err := profiles.Create(ctx, &domain.Profile{
		UserID:    client.ID,
		UserType:  domain.RoleClient,
		FirstName: "Ngozi",
		LastName:  "Okafor",
	}); err != nil {
		log.WithError(err).Fatal("failed to create client profile")
	}

	catalog := []domain.Service{
		{
			ArtistID:    artist.ID,
			ServiceName: "Bridal glam",
			ServiceType: "bridal",
			Description: "Full bridal look with trial session.",
			BasePrice:   15000,
			MaxPeople:   1,
		},
		{
			ArtistID:       artist.ID,
			ServiceName:    "Party makeup",
			ServiceType:    "party",
			Description:    "Event-ready look, at your venue.",
			BasePrice:      8000,
			MaxPeople:      3,
			TravelRequired: true,
		},
	}
	for i := range catalog {
		if err := services.Create(ctx, &catalog[i]); err != nil {
			log.WithError(err).Fatal("failed to create service")
		}
	}

	log.WithFields(logrus.Fields{
		"artist":   artist.Email,
		"client":   client.Email,
		"services": len(catalog),
		"seeded":   time.Now().Format(time.RFC3339),
	}).Info("seed complete")
}
