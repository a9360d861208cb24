package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"toxiscope/models"
	"toxiscope/storage"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidEmail  = errors.New("invalid email address")
	// ErrDuplicateEmail ist derselbe Fehler wie storage.ErrDuplicateEmail.
	ErrDuplicateEmail = storage.ErrDuplicateEmail
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// WaitlistService validiert und speichert Waitlist-Anmeldungen.
type WaitlistService struct {
	store  storage.WaitlistStore
	logger *zap.Logger
	now    func() time.Time
}

func NewWaitlistService(store storage.WaitlistStore, logger *zap.Logger) *WaitlistService {
	return &WaitlistService{store: store, logger: logger, now: time.Now}
}

// NormalizeEmail trimmt und verkleinert eine E-Mail-Adresse.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Join trägt eine E-Mail ein.
func (s *WaitlistService) Join(ctx context.Context, email string) (models.WaitlistEntry, error) {
	if strings.TrimSpace(email) == "" {
		return models.WaitlistEntry{}, ErrEmailRequired
	}
	normalized := NormalizeEmail(email)
	if !emailPattern.MatchString(normalized) {
		return models.WaitlistEntry{}, ErrInvalidEmail
	}

	entry := models.WaitlistEntry{Email: normalized, Timestamp: s.now().UTC()}
	if err := s.store.Add(ctx, entry); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return models.WaitlistEntry{}, ErrDuplicateEmail
		}
		return models.WaitlistEntry{}, fmt.Errorf("join waitlist: %w", err)
	}

	s.logger.Info("Neue Waitlist-Anmeldung", zap.String("email_domain", emailDomain(normalized)))
	return entry, nil
}

// List liefert alle Einträge.
func (s *WaitlistService) List(ctx context.Context) ([]models.WaitlistEntry, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list waitlist: %w", err)
	}
	return entries, nil
}

func emailDomain(email string) string {
	if i := strings.LastIndexByte(email, '@'); i >= 0 {
		return email[i+1:]
	}
	return ""
}
