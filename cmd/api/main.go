package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kormo-app/kormo/internal/pkg/config"
	"github.com/kormo-app/kormo/internal/pkg/database"
	"github.com/kormo-app/kormo/internal/pkg/health"
	"github.com/kormo-app/kormo/internal/pkg/logger"
	"github.com/kormo-app/kormo/internal/pkg/middleware"
	natspkg "github.com/kormo-app/kormo/internal/pkg/nats"
	"github.com/kormo-app/kormo/internal/pkg/server"
	"github.com/kormo-app/kormo/internal/pkg/sms"
	authhandler "github.com/kormo-app/kormo/services/auth/handler"
	authhttp "github.com/kormo-app/kormo/services/auth/handler/http"
	authrepo "github.com/kormo-app/kormo/services/auth/repository"
	authuc "github.com/kormo-app/kormo/services/auth/usecase"
	"github.com/kormo-app/kormo/services/catalog"
	cataloghandler "github.com/kormo-app/kormo/services/catalog/handler"
	cataloghttp "github.com/kormo-app/kormo/services/catalog/handler/http"
	catalogrepo "github.com/kormo-app/kormo/services/catalog/repository"
	cataloguc "github.com/kormo-app/kormo/services/catalog/usecase"
	"github.com/kormo-app/kormo/services/payments"
	paymentgw "github.com/kormo-app/kormo/services/payments/gateway"
	paymenthandler "github.com/kormo-app/kormo/services/payments/handler"
	paymenthttp "github.com/kormo-app/kormo/services/payments/handler/http"
	paymentnats "github.com/kormo-app/kormo/services/payments/handler/nats"
	paymentrepo "github.com/kormo-app/kormo/services/payments/repository"
	paymentuc "github.com/kormo-app/kormo/services/payments/usecase"
	userhandler "github.com/kormo-app/kormo/services/users/handler"
	userhttp "github.com/kormo-app/kormo/services/users/handler/http"
	userrepo "github.com/kormo-app/kormo/services/users/repository"
	useruc "github.com/kormo-app/kormo/services/users/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(cfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()

	shutdownManager := server.NewShutdownManager(zapLogger)

	// Embedded credential store
	sqliteClient, err := database.NewSQLiteClient(cfg.SQLite)
	if err != nil {
		zapLogger.Fatal("Failed to open credential store", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error {
		return sqliteClient.Close()
	})

	// Document store
	mongoClient, err := database.NewMongoClient(cfg.Mongo)
	if err != nil {
		zapLogger.Fatal("Failed to connect to document store", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return mongoClient.Close(ctx)
	})

	usersColl := mongoClient.Collection("users")
	servicesColl := mongoClient.Collection("services")
	paymentsColl := mongoClient.Collection("payments")

	// Catalog cache, optional
	var listingCache catalog.ListingCache
	if cfg.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			zapLogger.Warn("Failed to connect to redis, listing cache disabled", logger.Err(err))
		} else {
			listingCache = catalogrepo.NewListingCache(redisClient.GetClient())
			shutdownManager.Register(func(context.Context) error {
				return redisClient.Close()
			})
		}
	}

	// Event bus, optional
	var natsClient *natspkg.Client
	if cfg.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(cfg.NATS.URL)
		if err != nil {
			zapLogger.Warn("Failed to connect to NATS, payment events disabled", logger.Err(err))
			natsClient = nil
		} else {
			shutdownManager.Register(func(context.Context) error {
				natsClient.Close()
				return nil
			})
		}
	}

	smsClient := sms.NewTwilioClient(cfg.SMS)

	// Auth service
	credRepo := authrepo.NewAuthRepo(sqliteClient.GetDB())
	profileRepo := authrepo.NewProfileRepo(usersColl)
	authUC := authuc.NewAuthUC(credRepo, profileRepo, smsClient, cfg)
	authH := authhandler.NewHandler(authhttp.NewAuthHandler(authUC), cfg)

	// Users service
	userUC := useruc.NewUserUC(userrepo.NewUserRepo(usersColl))
	userH := userhandler.NewHandler(userhttp.NewUserHandler(userUC), cfg)

	// Catalog service
	listingRepo := catalogrepo.NewListingRepo(servicesColl)
	catalogUC := cataloguc.NewCatalogUC(listingRepo, listingCache)
	catalogH := cataloghandler.NewHandler(cataloghttp.NewListingHandler(catalogUC), cfg)

	// Payments service
	stripeGW := paymentgw.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
	paymentRepo := paymentrepo.NewPaymentRepo(paymentsColl, usersColl, servicesColl)
	var publisher payments.EventPublisher
	if natsClient != nil {
		publisher = paymentgw.NewEventsGW(natsClient)
	}
	paymentUC := paymentuc.NewPaymentUC(paymentRepo, stripeGW, publisher, smsClient)
	paymentH := paymenthandler.NewHandler(paymenthttp.NewPaymentHandler(paymentUC, stripeGW), cfg)

	if natsClient != nil {
		consumer := paymentnats.NewConsumer(paymentUC, natsClient)
		if err := consumer.Start(); err != nil {
			zapLogger.Warn("Failed to start payment event consumer", logger.Err(err))
		} else {
			shutdownManager.Register(func(context.Context) error {
				consumer.Stop()
				return nil
			})
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, cfg.App.Name)
	authH.RegisterRoutes(e)
	userH.RegisterRoutes(e)
	catalogH.RegisterRoutes(e)
	paymentH.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
