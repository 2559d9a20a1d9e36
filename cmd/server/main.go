package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coachdata/internal/api"
	"coachdata/internal/config"
	"coachdata/internal/service"
	"coachdata/internal/storage"
	"coachdata/internal/store"
	"coachdata/internal/syncer"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.Info("Starting coachdata server...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret must be set")
	}

	// --- Local database ---
	kv, err := storage.NewSQLiteKV(cfg.LocalDB.Path)
	if err != nil {
		log.WithError(err).Fatal("could not open local database")
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.WithError(err).Error("failed to close local database")
		}
	}()
	log.WithField("path", cfg.LocalDB.Path).Info("Local database opened.")

	// --- Remote sink ---
	var sink syncer.Sink = syncer.NoopSink{}
	if cfg.Remote.Enabled {
		mongoClient, err := syncer.ConnectMongo(cfg.Remote.URI)
		if err != nil {
			log.WithError(err).Fatal("could not connect to remote mirror")
		}
		defer func() {
			if err := syncer.DisconnectMongo(mongoClient); err != nil {
				log.WithError(err).Error("failed to disconnect remote mirror")
			}
		}()
		sink = syncer.NewMongoSink(mongoClient.Database(cfg.Remote.Name))
		log.Info("Remote mirror connected.")
	} else {
		log.Info("Remote mirror disabled; running purely local.")
	}
	dispatcher := syncer.NewDispatcher(sink)

	// --- File storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize S3 storage")
	}

	// --- Store and services ---
	userStore := store.NewUserStore(kv)
	dataStore := store.New(kv, dispatcher)
	dataStore.Load(context.Background(), "")

	authService := service.NewAuthService(userStore, cfg.JWT.Secret, cfg.JWT.Expiration)
	recordService := service.NewRecordService(dataStore)
	sessionService := service.NewSessionService(dataStore)
	workoutService := service.NewWorkoutService(dataStore, recordService, sessionService)
	videoService := service.NewVideoService(dataStore, fileStorage)

	// --- HTTP surface ---
	router := gin.Default()
	api.SetupRoutes(router, cfg.JWT.Secret, dataStore, authService, workoutService, videoService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("address", cfg.Server.Address).Info("Server listening.")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("Server exiting.")
}
