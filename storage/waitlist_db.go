package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"toxiscope/models"
)

// DBWaitlistStore speichert die Waitlist in PostgreSQL (Tabelle waitlist_entries,
// Unique-Index auf email).
type DBWaitlistStore struct {
	db *gorm.DB
}

// OpenWaitlistDB verbindet sich über den Dialector und migriert die Tabelle.
// TranslateError bildet Unique-Verletzungen auf gorm.ErrDuplicatedKey ab.
func OpenWaitlistDB(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect waitlist db: %w", err)
	}
	return db, nil
}

// NewPostgresWaitlistStore öffnet die Datenbank per DSN und führt die Migration aus.
func NewPostgresWaitlistStore(dsn string) (*DBWaitlistStore, error) {
	db, err := OpenWaitlistDB(postgres.Open(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.WaitlistEntry{}); err != nil {
		return nil, fmt.Errorf("migrate waitlist: %w", err)
	}
	return NewDBWaitlistStore(db), nil
}

func NewDBWaitlistStore(db *gorm.DB) *DBWaitlistStore {
	return &DBWaitlistStore{db: db}
}

func (s *DBWaitlistStore) List(ctx context.Context) ([]models.WaitlistEntry, error) {
	entries := []models.WaitlistEntry{}
	if err := s.db.WithContext(ctx).Order("timestamp asc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list waitlist: %w", err)
	}
	return entries, nil
}

func (s *DBWaitlistStore) Add(ctx context.Context, entry models.WaitlistEntry) error {
	err := s.db.WithContext(ctx).Create(&entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("add waitlist entry: %w", err)
	}
	return nil
}
