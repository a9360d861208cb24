package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"path"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"toxiscope/models"
)

// ErrNoFiles: Scan ohne Bilder.
var ErrNoFiles = errors.New("no files provided")

// isoMillis entspricht dem ISO-8601-Format mit Millisekunden, das der Client erwartet.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// ScanFile ist ein hochgeladenes Bild. Open darf mehrfach aufgerufen werden.
type ScanFile struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// Uploader legt Scan-Bilder in einem Objektspeicher ab.
type Uploader interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
}

// ScanService simuliert die Produkterkennung auf Fotos.
type ScanService struct {
	products []models.ScanProduct
	uploader Uploader
	delay    time.Duration
	logger   *zap.Logger

	random func() float64
	now    func() time.Time
}

// NewScanService erstellt den Service. uploader darf nil sein, dann werden
// keine Bilder gespeichert.
func NewScanService(products []models.ScanProduct, uploader Uploader, delay time.Duration, logger *zap.Logger) *ScanService {
	return &ScanService{
		products: products,
		uploader: uploader,
		delay:    delay,
		logger:   logger,
		random:   rand.Float64,
		now:      time.Now,
	}
}

// Scan "analysiert" die Bilder und liefert erkannte Produkte.
func (s *ScanService) Scan(ctx context.Context, files []ScanFile) (models.ScanResult, error) {
	if len(files) == 0 {
		return models.ScanResult{}, ErrNoFiles
	}
	if err := sleepCtx(ctx, s.delay); err != nil {
		return models.ScanResult{}, err
	}

	now := s.now().UTC()
	scanID := fmt.Sprintf("scan_%d", now.UnixMilli())
	timestamp := now.Format(isoMillis)

	if s.uploader != nil {
		s.storeFiles(ctx, scanID, files)
	}

	detected := s.detect(len(files))
	out := make([]models.DetectedProduct, 0, len(detected))
	for _, p := range detected {
		if p.ID == "" {
			p.ID = "detected_" + uuid.NewString()
		}
		out = append(out, models.DetectedProduct{ScanProduct: p, AddedAt: timestamp, ScanID: scanID})
	}

	s.logger.Info("Scan verarbeitet",
		zap.String("scan_id", scanID),
		zap.Int("files", len(files)),
		zap.Int("detected", len(out)))

	return models.ScanResult{
		Success:          true,
		DetectedProducts: out,
		ScanID:           scanID,
		Timestamp:        timestamp,
	}, nil
}

// detect wählt jedes Produkt mit Wahrscheinlichkeit min(0.7, 0.2+0.1*n). Ohne
// Treffer werden die ersten min(3, n) Produkte geliefert.
func (s *ScanService) detect(fileCount int) []models.ScanProduct {
	rate := min(0.7, 0.2+float64(fileCount)*0.1)
	var detected []models.ScanProduct
	seen := map[string]struct{}{}
	for _, p := range s.products {
		if s.random() < rate {
			if _, ok := seen[p.Name]; ok {
				continue
			}
			seen[p.Name] = struct{}{}
			detected = append(detected, p)
		}
	}
	if len(detected) == 0 && fileCount > 0 {
		n := min(3, fileCount, len(s.products))
		return append([]models.ScanProduct(nil), s.products[:n]...)
	}
	return detected
}

func (s *ScanService) storeFiles(ctx context.Context, scanID string, files []ScanFile) {
	for i, f := range files {
		key := fmt.Sprintf("scans/%s/%d-%s", scanID, i, path.Base(f.Filename))
		if err := s.storeFile(ctx, key, f); err != nil {
			s.logger.Warn("Upload des Scan-Bildes fehlgeschlagen",
				zap.String("key", key),
				zap.Error(err))
		}
	}
}

func (s *ScanService) storeFile(ctx context.Context, key string, f ScanFile) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return s.uploader.Put(ctx, key, rc, f.Size, f.ContentType)
}

// sleepCtx wartet d, bricht aber bei ctx.Done ab.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
