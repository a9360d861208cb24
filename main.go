package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"toxiscope/api"
	"toxiscope/catalogue"
	"toxiscope/config"
	"toxiscope/fixtures"
	"toxiscope/services"
	"toxiscope/storage"
)

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openWaitlistStore(cfg, logging)
	if err != nil {
		logging.Fatal("Failed to open waitlist store", zap.Error(err))
	}

	var objects *storage.ObjectStore
	if cfg.S3Enabled() {
		client, err := storage.NewS3Client(ctx, cfg)
		if err != nil {
			logging.Fatal("Failed to create S3 client", zap.Error(err))
		}
		objects = storage.NewObjectStore(client, cfg.S3Bucket)
		logging.Info("S3 object storage enabled", zap.String("bucket", cfg.S3Bucket))
	}

	cat := catalogue.Default()
	matcher := services.NewStudyMatcher(cat, logging)

	var uploader services.Uploader
	if cfg.ScanUploadsEnabled && objects != nil {
		uploader = objects
	}

	router := api.NewRouter(api.Deps{
		Config:       cfg,
		Logger:       logging,
		Catalogue:    cat,
		Products:     services.NewProductService(fixtures.Evaluation, matcher, cfg.ProductDelay, logging),
		Search:       services.NewSearchIndex(fixtures.ProductMetadata(), fixtures.SearchIndex(), logging),
		Scanner:      services.NewScanService(fixtures.ScanProducts(), uploader, cfg.ScanDelay, logging),
		Waitlist:     services.NewWaitlistService(store, logging),
		ProductCount: len(fixtures.EvaluationIDs()),
	})
	logging.Info("Katalog geladen",
		zap.Int("studies", cat.Len()),
		zap.Int("products", len(fixtures.EvaluationIDs())),
	)

	// Setup Cron
	var cronScheduler *cron.Cron
	if cfg.BackupCron != "" && objects != nil {
		backups := services.NewBackupService(store, objects, cfg.BackupKeep, logging)
		cronScheduler = cron.New()
		if _, err := cronScheduler.AddFunc(cfg.BackupCron, func() {
			logging.Info("Running scheduled waitlist backup...")
			res, err := backups.Run(ctx)
			if err != nil {
				logging.Error("Backup job failed", zap.Error(err))
				return
			}
			logging.Info("Backup job completed",
				zap.String("key", res.Key),
				zap.Int("entries", res.Entries),
				zap.Int("removed", len(res.Removed)),
			)
		}); err != nil {
			logging.Fatal("Invalid BACKUP_CRON", zap.String("schedule", cfg.BackupCron), zap.Error(err))
		}
		cronScheduler.Start()
	}

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort), zap.String("env", cfg.AppEnv))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Failed to run server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logging.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if cronScheduler != nil {
		<-cronScheduler.Stop().Done()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Server shutdown failed", zap.Error(err))
	}
	logging.Info("Server stopped")
}

// openWaitlistStore wählt die Waitlist-Persistenz nach WAITLIST_BACKEND.
func openWaitlistStore(cfg *config.Config, logging *zap.Logger) (storage.WaitlistStore, error) {
	if cfg.WaitlistBackend == "postgres" {
		store, err := storage.NewPostgresWaitlistStore(cfg.DSN())
		if err != nil {
			return nil, err
		}
		logging.Info("Successfully connected to waitlist database.")
		return store, nil
	}
	logging.Info("Using file waitlist store", zap.String("path", cfg.WaitlistPath()))
	return storage.NewFileWaitlistStore(cfg.WaitlistPath()), nil
}
