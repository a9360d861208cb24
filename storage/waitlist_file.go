package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"toxiscope/models"
)

// FileWaitlistStore hält die Waitlist als JSON-Array von {email, timestamp}
// in einer Datei. Verzeichnis und Datei werden beim ersten Schreiben angelegt.
// Schreibzugriffe innerhalb des Prozesses sind über einen Mutex serialisiert.
type FileWaitlistStore struct {
	path string
	mu   sync.Mutex
}

func NewFileWaitlistStore(path string) *FileWaitlistStore {
	return &FileWaitlistStore{path: path}
}

// List liest alle Einträge; fehlt die Datei, ist die Liste leer.
func (s *FileWaitlistStore) List(_ context.Context) ([]models.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Add hängt einen Eintrag an. Gleiche E-Mail (ohne Groß-/Kleinschreibung) ergibt ErrDuplicateEmail.
func (s *FileWaitlistStore) Add(_ context.Context, entry models.WaitlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if strings.EqualFold(e.Email, entry.Email) {
			return ErrDuplicateEmail
		}
	}
	entries = append(entries, entry)
	return s.write(entries)
}

func (s *FileWaitlistStore) read() ([]models.WaitlistEntry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.WaitlistEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read waitlist: %w", err)
	}
	entries := []models.WaitlistEntry{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse waitlist %s: %w", s.path, err)
	}
	return entries, nil
}

// write schreibt über eine temporäre Datei und rename, damit Leser nie eine halbe Datei sehen.
func (s *FileWaitlistStore) write(entries []models.WaitlistEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".waitlist-*.json")
	if err != nil {
		return fmt.Errorf("write waitlist: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write waitlist: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write waitlist: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write waitlist: %w", err)
	}
	return nil
}
