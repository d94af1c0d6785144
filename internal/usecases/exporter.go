package usecases

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"

	"har-media-exporter/internal/domain/dto"
	"har-media-exporter/internal/domain/entities"
	"har-media-exporter/internal/domain/repositories"
	consts "har-media-exporter/pkg/constants"
	"har-media-exporter/pkg/errors"
	"har-media-exporter/pkg/file"
	"har-media-exporter/pkg/metrics"
)

type ExportService interface {
	BuildExportName(record entities.MediaRecord, fallbackIndex int) string
	DecodeRecord(record entities.MediaRecord) ([]byte, error)
	BuildArchive(session *entities.ExtractionSession) ([]byte, *dto.ArchiveResult, error)
}

type exportService struct {
	newBuilder repositories.ArchiveBuilderFactory
	storage    repositories.StorageStrategy // nil when archives are not persisted
}

func NewExportService(newBuilder repositories.ArchiveBuilderFactory, storage repositories.StorageStrategy) ExportService {
	return &exportService{
		newBuilder: newBuilder,
		storage:    storage,
	}
}

// BuildExportName is a pure function of the record and its list position:
// sanitized display name, short content hash, extension from the MIME
// subtype. Two records with the same base name but different content get
// names differing only in the hash suffix.
func (s *exportService) BuildExportName(record entities.MediaRecord, fallbackIndex int) string {
	ext := file.ExtensionFromMime(record.MimeType)

	base := file.SanitizeBaseName(record.DisplayName)
	if base == "" {
		base = fmt.Sprintf("media_%d", fallbackIndex)
	}

	hash := file.ContentHash(record.RawContent)
	return fmt.Sprintf("%s-%s.%s", base, hash, ext)
}

// DecodeRecord turns the stored content into raw bytes as declared by the
// record's encoding.
func (s *exportService) DecodeRecord(record entities.MediaRecord) ([]byte, error) {
	if record.ContentEncoding == entities.EncodingBase64 {
		data, err := base64.StdEncoding.DecodeString(record.RawContent)
		if err != nil {
			return nil, errors.ErrDecode(err)
		}
		return data, nil
	}
	return []byte(record.RawContent), nil
}

// BuildArchive feeds named entries to the archive builder. A record whose
// content fails to decode is dropped from the container but counted, so the
// caller can surface the partial failure instead of silently shrinking the
// result set.
func (s *exportService) BuildArchive(session *entities.ExtractionSession) ([]byte, *dto.ArchiveResult, error) {
	builder := s.newBuilder()

	entryCount := 0
	decodeFailures := 0
	for i, record := range session.Records {
		data, err := s.DecodeRecord(record)
		if err != nil {
			decodeFailures++
			metrics.DecodeFailuresTotal.Inc()
			log.Printf("Record %d (%s) dropped from archive: %v", i, record.DisplayName, err)
			continue
		}
		if err := builder.Add(s.BuildExportName(record, i), data); err != nil {
			return nil, nil, errors.ErrArchive(err)
		}
		entryCount++
	}

	out, err := builder.Finalize()
	if err != nil {
		return nil, nil, errors.ErrArchive(err)
	}
	metrics.ArchiveBuildsTotal.Inc()

	result := &dto.ArchiveResult{
		Name:           consts.ArchiveName,
		Size:           len(out),
		EntryCount:     entryCount,
		DecodeFailures: decodeFailures,
	}

	if s.storage != nil {
		key := session.ID + "/" + consts.ArchiveName
		stored, err := s.storage.Save(key, bytes.NewReader(out), map[string]string{
			"source_filename": session.Filename,
		})
		if err != nil {
			return nil, nil, errors.ErrStorage(err)
		}
		result.StoredPath = stored
	}

	return out, result, nil
}
