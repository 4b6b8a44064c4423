// Deletes expired verification codes and stale refresh tokens. Meant to
// run from cron.
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"glambook/internal/database"
	"glambook/internal/domain"
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

	now := time.Now()

	// Revoked tokens are kept for 30 days so token-reuse incidents can
	// still be investigated.
	tokens := db.
		Where("expires_at < ?", now).
		Or("revoked_at IS NOT NULL AND created_at < ?", now.AddDate(0, 0, -30)).
		Delete(&domain.RefreshToken{})
	if tokens.Error != nil {
		log.WithError(tokens.Error).Fatal("refresh token cleanup failed")
	}

	codes := db.
		Where("expires_at < ?", now).
		Delete(&domain.EmailVerification{})
	if codes.Error != nil {
		log.WithError(codes.Error).Fatal("verification code cleanup failed")
	}

	log.WithFields(logrus.Fields{
		"refresh_tokens":     tokens.RowsAffected,
		"verification_codes": codes.RowsAffected,
	}).Info("auth cleanup completed")
}
