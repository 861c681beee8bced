package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps files on disk below root and serves them under baseURL.
type LocalStorage struct {
	root    string
	baseURL string
}

func NewLocalStorage(root, baseURL string) *LocalStorage {
	return &LocalStorage{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStorage) fullPath(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid storage path %q", name)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *LocalStorage) Save(_ context.Context, name string, data []byte, _ string) error {
	p, err := s.fullPath(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Delete removes the file. Deleting a missing file is not an error.
func (s *LocalStorage) Delete(_ context.Context, name string) error {
	p, err := s.fullPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(name string) string {
	return s.baseURL + "/" + strings.TrimLeft(name, "/")
}
