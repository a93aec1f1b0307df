package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/adapter/messaging/nats"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/adapter/repository/cache"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/adapter/repository/mongodb"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/adapter/rest"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/adapter/storage/s3"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/config"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/mailer"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/usecase"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/tracer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New()
	log.Info("starting motel-service", "http_port", cfg.HTTPPort)

	tp := tracer.Init(cfg.OTLPEndpoint)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Error("tracer shutdown failed", "error", err.Error())
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Error("failed to connect to MongoDB", "error", err.Error())
		os.Exit(1)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Error("failed to ping MongoDB", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("mongo disconnect failed", "error", err.Error())
		}
	}()
	db := mongoClient.Database(cfg.MongoDatabase)
	log.Info("connected to MongoDB", "database", cfg.MongoDatabase)

	motelRepo := mongodb.NewMotelRepository(db, log)
	userRepo := mongodb.NewUserRepository(db, log)
	if err := motelRepo.EnsureIndexes(ctx); err != nil {
		log.Error("failed to ensure motel indexes", "error", err.Error())
		os.Exit(1)
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Error("failed to ensure user indexes", "error", err.Error())
		os.Exit(1)
	}

	// Redis and NATS are optional at startup: both adapters are nil-safe so
	// the service degrades to uncached, eventless operation.
	motelCache, err := cache.NewMotelCache(cfg.RedisAddress)
	if err != nil {
		log.Warn("Redis unavailable, continuing without cache", "error", err.Error())
		motelCache = nil
	}

	publisher, err := nats.NewPublisher(cfg.NATSURL)
	if err != nil {
		log.Warn("NATS unavailable, continuing without events", "error", err.Error())
		publisher = nil
	}
	defer publisher.Close()

	photoStorage, err := s3.NewPhotoStorage(
		cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL, log,
	)
	if err != nil {
		log.Error("failed to initialize photo storage", "error", err.Error())
		os.Exit(1)
	}

	statusMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)

	motelUC := usecase.NewMotelUsecase(motelRepo, userRepo, photoStorage, statusMailer, log)
	photoUC := usecase.NewPhotoUsecase(motelRepo, userRepo, photoStorage, log)
	userUC := usecase.NewUserUsecase(userRepo, log)

	e := echo.New()
	e.HideBanner = true
	rest.Register(e, cfg.JWTSecret, log,
		rest.NewMotelHandler(motelUC, photoUC, motelCache, publisher, log),
		rest.NewPhotoHandler(photoUC, motelCache, publisher, log),
		rest.NewUserHandler(userUC, log),
	)

	go func() {
		if err := e.Start(":" + cfg.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", "error", err.Error())
			os.Exit(1)
		}
	}()
	log.Info("http server listening", "port", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
	}
	log.Info("server stopped")
}
