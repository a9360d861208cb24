package services

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"go.uber.org/zap"

	"toxiscope/storage"
)

// BackupPrefix ist der Schlüsselpräfix aller Waitlist-Snapshots im Bucket.
const BackupPrefix = "waitlist/backup-"

// BackupTarget ist der Objektspeicher für Snapshots.
type BackupTarget interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	List(ctx context.Context, prefix string) ([]storage.ObjectInfo, error)
	Delete(ctx context.Context, key string) error
}

// BackupResult fasst einen Backup-Lauf zusammen.
type BackupResult struct {
	Key     string
	Entries int
	Removed []string
}

// BackupService schreibt gzip-komprimierte JSON-Snapshots der Waitlist und
// behält nur die neuesten keep Snapshots.
type BackupService struct {
	store  storage.WaitlistStore
	target BackupTarget
	keep   int
	logger *zap.Logger
	now    func() time.Time
}

func NewBackupService(store storage.WaitlistStore, target BackupTarget, keep int, logger *zap.Logger) *BackupService {
	return &BackupService{store: store, target: target, keep: keep, logger: logger, now: time.Now}
}

// SnapshotKey liefert den Objektschlüssel für einen Snapshot zum Zeitpunkt t.
func SnapshotKey(t time.Time) string {
	return fmt.Sprintf("%s%s.json.gz", BackupPrefix, t.UTC().Format("2006-01-02T15-04-05Z"))
}

// Run erstellt einen Snapshot und rotiert alte Snapshots.
func (b *BackupService) Run(ctx context.Context) (BackupResult, error) {
	entries, err := b.store.List(ctx)
	if err != nil {
		return BackupResult{}, fmt.Errorf("backup: %w", err)
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := json.NewEncoder(gz).Encode(entries); err != nil {
		return BackupResult{}, fmt.Errorf("backup encode: %w", err)
	}
	if err := gz.Close(); err != nil {
		return BackupResult{}, fmt.Errorf("backup gzip: %w", err)
	}

	key := SnapshotKey(b.now())
	if err := b.target.Put(ctx, key, bytes.NewReader(buf.Bytes()), int64(buf.Len()), "application/gzip"); err != nil {
		return BackupResult{}, fmt.Errorf("backup upload: %w", err)
	}
	b.logger.Info("Waitlist-Backup hochgeladen",
		zap.String("key", key),
		zap.Int("entries", len(entries)),
		zap.Int("bytes", buf.Len()))

	removed, err := b.rotate(ctx)
	if err != nil {
		return BackupResult{Key: key, Entries: len(entries)}, fmt.Errorf("backup rotate: %w", err)
	}
	return BackupResult{Key: key, Entries: len(entries), Removed: removed}, nil
}

func (b *BackupService) rotate(ctx context.Context) ([]string, error) {
	objects, err := b.target.List(ctx, BackupPrefix)
	if err != nil {
		return nil, err
	}
	if b.keep <= 0 || len(objects) <= b.keep {
		b.logger.Debug("Keine Rotation nötig", zap.Int("backups", len(objects)), zap.Int("keep", b.keep))
		return nil, nil
	}

	// neueste zuerst; Schlüssel enthalten den Zeitstempel
	sort.Slice(objects, func(i, j int) bool {
		if !objects[i].LastModified.Equal(objects[j].LastModified) {
			return objects[i].LastModified.After(objects[j].LastModified)
		}
		return objects[i].Key > objects[j].Key
	})

	var removed []string
	for _, obj := range objects[b.keep:] {
		if err := b.target.Delete(ctx, obj.Key); err != nil {
			return removed, err
		}
		b.logger.Info("Altes Backup gelöscht", zap.String("key", obj.Key))
		removed = append(removed, obj.Key)
	}
	return removed, nil
}
