package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"toxiscope/fixtures"
)

type fakeUploader struct {
	mu   sync.Mutex
	keys []string
	data map[string]string
	err  error
}

func (f *fakeUploader) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	if f.err != nil {
		return f.err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.data == nil {
		f.data = map[string]string{}
	}
	f.keys = append(f.keys, key)
	f.data[key] = string(b)
	return nil
}

func memFile(name, content string) ScanFile {
	return ScanFile{
		Filename:    name,
		ContentType: "image/jpeg",
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewBufferString(content)), nil
		},
	}
}

func fixedScanService(u Uploader, rolls ...float64) *ScanService {
	s := NewScanService(fixtures.ScanProducts(), u, 0, zap.NewNop())
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 123_000_000, time.UTC) }
	i := 0
	s.random = func() float64 {
		v := rolls[i%len(rolls)]
		i++
		return v
	}
	return s
}

func TestScanNoFiles(t *testing.T) {
	_, err := fixedScanService(nil, 0).Scan(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestScanDetection(t *testing.T) {
	// 1 Datei -> Rate 0.3; Produkte 1 und 4 liegen darunter.
	s := fixedScanService(nil, 0.1, 0.9, 0.5, 0.29, 0.31)

	res, err := s.Scan(context.Background(), []ScanFile{memFile("a.jpg", "x")})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "scan_1714564800123", res.ScanID)
	assert.Equal(t, "2024-05-01T12:00:00.123Z", res.Timestamp)
	require.Len(t, res.DetectedProducts, 2)
	assert.Equal(t, "1", res.DetectedProducts[0].ID)
	assert.Equal(t, "4", res.DetectedProducts[1].ID)
	assert.Equal(t, res.ScanID, res.DetectedProducts[0].ScanID)
	assert.Equal(t, res.Timestamp, res.DetectedProducts[1].AddedAt)
}

func TestScanFallbackWhenNothingDetected(t *testing.T) {
	tests := []struct {
		files int
		want  []string
	}{
		{files: 1, want: []string{"1"}},
		{files: 2, want: []string{"1", "2"}},
		{files: 9, want: []string{"1", "2", "3"}},
	}
	for _, tt := range tests {
		s := fixedScanService(nil, 0.99)
		files := make([]ScanFile, tt.files)
		for i := range files {
			files[i] = memFile("f.jpg", "x")
		}
		res, err := s.Scan(context.Background(), files)
		require.NoError(t, err)

		var got []string
		for _, p := range res.DetectedProducts {
			got = append(got, p.ID)
		}
		assert.Equal(t, tt.want, got)
	}
}

func TestScanRateIsCapped(t *testing.T) {
	// Bei 10 Dateien wäre die Rate 1.2, gedeckelt auf 0.7.
	s := fixedScanService(nil, 0.69, 0.7)
	files := make([]ScanFile, 10)
	for i := range files {
		files[i] = memFile("f.jpg", "x")
	}
	res, err := s.Scan(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, res.DetectedProducts, 3)
	assert.Equal(t, "1", res.DetectedProducts[0].ID)
	assert.Equal(t, "3", res.DetectedProducts[1].ID)
	assert.Equal(t, "5", res.DetectedProducts[2].ID)
}

func TestScanUploadsFiles(t *testing.T) {
	u := &fakeUploader{}
	s := fixedScanService(u, 0)

	res, err := s.Scan(context.Background(), []ScanFile{memFile("kitchen/pan.jpg", "img1"), memFile("bottle.png", "img2")})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"scans/" + res.ScanID + "/0-pan.jpg",
		"scans/" + res.ScanID + "/1-bottle.png",
	}, u.keys)
	assert.Equal(t, "img2", u.data["scans/"+res.ScanID+"/1-bottle.png"])
}

func TestScanUploadFailureDoesNotFailScan(t *testing.T) {
	s := fixedScanService(&fakeUploader{err: errors.New("s3 down")}, 0)

	res, err := s.Scan(context.Background(), []ScanFile{memFile("a.jpg", "x")})
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestScanHonoursCancellation(t *testing.T) {
	s := fixedScanService(nil, 0)
	s.delay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Scan(ctx, []ScanFile{memFile("a.jpg", strings.Repeat("x", 3))})
	assert.ErrorIs(t, err, context.Canceled)
}
