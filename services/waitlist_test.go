package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"toxiscope/models"
	"toxiscope/storage"
)

type failingStore struct{}

func (failingStore) List(context.Context) ([]models.WaitlistEntry, error) {
	return nil, errors.New("disk gone")
}

func (failingStore) Add(context.Context, models.WaitlistEntry) error {
	return errors.New("disk gone")
}

func TestWaitlistJoin(t *testing.T) {
	store := storage.NewFileWaitlistStore(filepath.Join(t.TempDir(), "waitlist.json"))
	svc := NewWaitlistService(store, zap.NewNop())
	ctx := context.Background()

	entry, err := svc.Join(ctx, "  Jane.Doe@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", entry.Email)
	assert.False(t, entry.Timestamp.IsZero())

	_, err = svc.Join(ctx, "jane.doe@example.com")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWaitlistJoinValidation(t *testing.T) {
	svc := NewWaitlistService(failingStore{}, zap.NewNop())

	tests := []struct {
		email string
		want  error
	}{
		{email: "", want: ErrEmailRequired},
		{email: "   ", want: ErrEmailRequired},
		{email: "not-an-email", want: ErrInvalidEmail},
		{email: "a@b", want: ErrInvalidEmail},
		{email: "a b@c.de", want: ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			_, err := svc.Join(context.Background(), tt.email)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWaitlistStoreFailure(t *testing.T) {
	svc := NewWaitlistService(failingStore{}, zap.NewNop())

	_, err := svc.Join(context.Background(), "a@b.de")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)

	_, err = svc.List(context.Background())
	assert.Error(t, err)
}
