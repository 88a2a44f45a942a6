package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps objects on the local filesystem under BaseDir and serves
// them through the static file route mounted at BaseURL. Keys use forward
// slashes; each path segment becomes a directory.
type LocalStore struct {
	BaseDir string
	BaseURL string
}

// NewLocalStoreFromEnv builds a LocalStore from STORAGE_PATH and
// PUBLIC_BASE_URL, with the same defaults the server uses.
func NewLocalStoreFromEnv() *LocalStore {
	baseDir := os.Getenv("STORAGE_PATH")
	if baseDir == "" {
		baseDir = "./uploads"
	}
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &LocalStore{
		BaseDir: baseDir,
		BaseURL: strings.TrimRight(baseURL, "/") + "/files",
	}
}

func (s *LocalStore) Put(ctx context.Context, key, contentType string, payload io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.BaseDir, filepath.FromSlash(cleanKey))
	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("create object directory: %w", err)
	}

	// Write to a temp file first so a failed write never leaves a truncated
	// object at the public key.
	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".put-*")
	if err != nil {
		return "", fmt.Errorf("create temp object: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close object: %w", err)
	}
	if err := ctx.Err(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("publish object: %w", err)
	}

	return s.BaseURL + "/" + cleanKey, nil
}

// sanitizeKey rejects keys that would escape the base directory.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return "", fmt.Errorf("empty object key")
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return "", fmt.Errorf("invalid object key %q", key)
		}
	}
	return key, nil
}
