package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes objects under a media directory served by the app at
// /media. Default backend for development where no bucket is configured.
type LocalStore struct {
	Dir     string
	BaseURL string // e.g. http://localhost:8081/media
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Upload(_ context.Context, objectPath string, data []byte, _ string) (string, error) {
	clean := filepath.Clean(objectPath)
	if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("storage: bad object path %q", objectPath)
	}
	full := filepath.Join(s.Dir, clean)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", clean, err)
	}
	return s.BaseURL + "/" + filepath.ToSlash(clean), nil
}
