package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toxiscope/models"
)

func TestFileWaitlistStoreMissingFile(t *testing.T) {
	s := NewFileWaitlistStore(filepath.Join(t.TempDir(), "data", "waitlist.json"))

	entries, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestFileWaitlistStoreAddAndDuplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "waitlist.json")
	s := NewFileWaitlistStore(path)
	ctx := context.Background()
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, s.Add(ctx, models.WaitlistEntry{Email: "a@example.com", Timestamp: ts}))
	err := s.Add(ctx, models.WaitlistEntry{Email: "A@Example.com", Timestamp: ts})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a@example.com", entries[0].Email)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"email":"a@example.com","timestamp":"2024-01-02T03:04:05Z"}]`, string(raw))
}

func TestFileWaitlistStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waitlist.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileWaitlistStore(path).List(context.Background())
	assert.Error(t, err)
}

func TestFileWaitlistStoreConcurrentAdds(t *testing.T) {
	s := NewFileWaitlistStore(filepath.Join(t.TempDir(), "waitlist.json"))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Add(ctx, models.WaitlistEntry{Email: fmt.Sprintf("u%d@example.com", i%10), Timestamp: time.Now()})
		}(i)
	}
	wg.Wait()

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}
