package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"toxiscope/config"
	"toxiscope/services"
	"toxiscope/storage"
)

// Einmaliger Waitlist-Snapshot nach S3, z.B. als Kubernetes-CronJob.
func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	logging.Info("Starte Backup-Prozess...")

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Fehler beim Laden der Konfiguration", zap.Error(err))
	}
	if !cfg.S3Enabled() {
		logging.Fatal("S3_ENDPOINT, S3_BUCKET, S3_KEY und S3_SECRET müssen gesetzt sein")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var store storage.WaitlistStore
	if cfg.WaitlistBackend == "postgres" {
		store, err = storage.NewPostgresWaitlistStore(cfg.DSN())
		if err != nil {
			logging.Fatal("Fehler beim Verbinden mit der Datenbank", zap.Error(err))
		}
	} else {
		store = storage.NewFileWaitlistStore(cfg.WaitlistPath())
	}

	client, err := storage.NewS3Client(ctx, cfg)
	if err != nil {
		logging.Fatal("Fehler beim Erstellen des S3-Clients", zap.Error(err))
	}

	backups := services.NewBackupService(store, storage.NewObjectStore(client, cfg.S3Bucket), cfg.BackupKeep, logging)
	res, err := backups.Run(ctx)
	if err != nil {
		logging.Fatal("Backup fehlgeschlagen", zap.Error(err))
	}

	logging.Info("Backup-Prozess erfolgreich abgeschlossen.",
		zap.String("bucket", cfg.S3Bucket),
		zap.String("key", res.Key),
		zap.Int("entries", res.Entries),
		zap.Strings("removed", res.Removed),
	)
}
