package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"glambook/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates all tables, including the unique indexes the
// services rely on (one rating per booking, one conversation per booking).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.EmailVerification{},
		&domain.RefreshToken{},
		&domain.Profile{},
		&domain.Service{},
		&domain.Booking{},
		&domain.Rating{},
		&domain.Conversation{},
		&domain.Message{},
		&domain.Notification{},
		&domain.PortfolioPhoto{},
		&domain.GatewayPayment{},
	)
}
