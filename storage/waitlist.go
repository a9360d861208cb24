package storage

import (
	"context"
	"errors"

	"toxiscope/models"
)

// ErrDuplicateEmail meldet eine bereits eingetragene E-Mail.
var ErrDuplicateEmail = errors.New("email already on waitlist")

// WaitlistStore persistiert Waitlist-Anmeldungen. E-Mails kommen bereits
// normalisiert (getrimmt, klein) an.
type WaitlistStore interface {
	List(ctx context.Context) ([]models.WaitlistEntry, error)
	Add(ctx context.Context, entry models.WaitlistEntry) error
}
