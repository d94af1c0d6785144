package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage keeps built archives under a base directory on disk.
type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

func (l *LocalStorage) Save(key string, r io.Reader, metadata map[string]string) (string, error) {
	fullPath := filepath.Join(l.BasePath, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("directory could not be created: %w", err)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("file could not be created: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, r); err != nil {
		return "", fmt.Errorf("file could not be written: %w", err)
	}

	return fullPath, nil
}

func (l *LocalStorage) Open(key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(l.BasePath, key))
}

func (l *LocalStorage) Delete(key string) error {
	return os.Remove(filepath.Join(l.BasePath, key))
}

func (l *LocalStorage) Exists(key string) bool {
	_, err := os.Stat(filepath.Join(l.BasePath, key))
	return err == nil
}
