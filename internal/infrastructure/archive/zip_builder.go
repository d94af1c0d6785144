package archive

import (
	"archive/zip"
	"bytes"
	"fmt"

	"har-media-exporter/internal/domain/repositories"
)

// ZipBuilder collects named entries into an in-memory zip container.
type ZipBuilder struct {
	buf    bytes.Buffer
	writer *zip.Writer
}

func NewZipBuilder() repositories.ArchiveBuilder {
	b := &ZipBuilder{}
	b.writer = zip.NewWriter(&b.buf)
	return b
}

func (b *ZipBuilder) Add(name string, data []byte) error {
	w, err := b.writer.Create(name)
	if err != nil {
		return fmt.Errorf("archive entry %s could not be created: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("archive entry %s could not be written: %w", name, err)
	}
	return nil
}

func (b *ZipBuilder) Finalize() ([]byte, error) {
	if err := b.writer.Close(); err != nil {
		return nil, fmt.Errorf("archive could not be finalized: %w", err)
	}
	return b.buf.Bytes(), nil
}
