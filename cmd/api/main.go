package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"glambook/internal/config"
	"glambook/internal/database"
	"glambook/internal/middleware"
	"glambook/internal/modules/auth"
	"glambook/internal/modules/booking"
	"glambook/internal/modules/catalog"
	"glambook/internal/modules/chat"
	"glambook/internal/modules/notification"
	"glambook/internal/modules/payment"
	"glambook/internal/modules/profile"
	"glambook/internal/modules/rating"
	"glambook/internal/modules/upload"
	jwtsvc "glambook/internal/pkg/jwt"
	"glambook/internal/pkg/mailer"
	"glambook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	// repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	refreshRepo := repository.NewRefreshTokenRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	chatRepo := repository.NewChatRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// shared infrastructure
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, log)
	hub := chat.NewHub()
	defer hub.Close()

	// services
	notifService := notification.NewService(notifRepo, hub, log)
	authService := auth.NewService(userRepo, profileRepo, verificationRepo, refreshRepo, j, mail, cfg.RefreshTTL, cfg.RefreshPepper)
	profileService := profile.NewService(profileRepo, ratingRepo)
	catalogService := catalog.NewService(serviceRepo)
	bookingService := booking.NewService(bookingRepo, serviceRepo, profileRepo, ratingRepo, notifService)
	ratingService := rating.NewService(ratingRepo, bookingRepo, notifService)
	chatService := chat.NewService(chatRepo, bookingRepo, profileRepo, hub, notifService)
	paymentService := payment.NewService(paymentRepo, bookingRepo, notifService, cfg.PaymentGatewaySecret, log)
	uploadStore := upload.NewStore(cfg.UploadDir, cfg.StaticBase)
	uploadService := upload.NewService(uploadStore, portfolioRepo, profileRepo, log)

	// handlers
	authHandler := auth.NewHandler(authService)
	profileHandler := profile.NewHandler(profileService)
	catalogHandler := catalog.NewHandler(catalogService)
	bookingHandler := booking.NewHandler(bookingService)
	ratingHandler := rating.NewHandler(ratingService)
	chatHandler := chat.NewHandler(chatService, hub, log)
	notifHandler := notification.NewHandler(notifService)
	paymentHandler := payment.NewHandler(paymentService)
	uploadHandler := upload.NewHandler(uploadService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS())

	r.Static(cfg.StaticBase, cfg.UploadDir)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		profileHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		ratingHandler.RegisterPublicRoutes(v1)
		uploadHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			profileHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			ratingHandler.RegisterProtectedRoutes(protected)
			chatHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)
			paymentHandler.RegisterProtectedRoutes(protected)
			uploadHandler.RegisterProtectedRoutes(protected)
		}
	}

	log.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
