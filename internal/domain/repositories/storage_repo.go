package repositories

import "io"

// StorageStrategy is where built archives end up (local disk or S3).
type StorageStrategy interface {
	Save(key string, r io.Reader, metadata map[string]string) (string, error)
	Open(key string) (io.ReadCloser, error)
	Delete(key string) error
	Exists(key string) bool
}
