package usecases

import (
	"path/filepath"
	"strings"
	"time"

	"har-media-exporter/internal/domain/dto"
	"har-media-exporter/internal/domain/entities"
	"har-media-exporter/internal/domain/repositories"
	"har-media-exporter/internal/har"
	"har-media-exporter/internal/infrastructure/queue"
	consts "har-media-exporter/pkg/constants"
	"har-media-exporter/pkg/errors"
	"har-media-exporter/pkg/metrics"

	"github.com/google/uuid"
)

type ExtractService interface {
	Extract(filename string, data []byte) (*dto.ExtractResponse, error)
	GetSession(sessionID string) (*dto.SessionResponse, error)
	BuildArchive(sessionID string) ([]byte, *dto.ArchiveResult, error)
	GetMediaItem(sessionID string, index int) ([]byte, string, error)
}

type extractService struct {
	repo     repositories.SessionRepository
	exporter ExportService
	pool     *queue.WorkerPool // nil disables metadata probing
	ttl      time.Duration
}

func NewExtractService(repo repositories.SessionRepository, exporter ExportService, pool *queue.WorkerPool, ttl time.Duration) ExtractService {
	return &extractService{
		repo:     repo,
		exporter: exporter,
		pool:     pool,
		ttl:      ttl,
	}
}

// Extract runs the single parse pass over a HAR capture, stores the result
// as a session and reports what was found. Decode failures are detected up
// front so the caller sees the partial-failure count immediately.
func (s *extractService) Extract(filename string, data []byte) (*dto.ExtractResponse, error) {
	if strings.ToLower(filepath.Ext(filename)) != consts.HARExtension {
		metrics.ExtractionsTotal.WithLabelValues(consts.StatusFailed).Inc()
		return nil, errors.ErrInvalidFileExtension(nil)
	}

	start := time.Now()
	records, err := har.Parse(data)
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues(consts.StatusFailed).Inc()
		return nil, err
	}

	session := &entities.ExtractionSession{
		ID:        uuid.NewString(),
		Filename:  filepath.Base(filename),
		Status:    consts.StatusCompleted,
		Records:   records,
		CreatedAt: time.Now(),
	}
	if len(records) == 0 {
		session.Status = consts.StatusNoMedia
	}

	type probe struct {
		index int
		mime  string
		data  []byte
	}
	var probes []probe
	for i, record := range records {
		decoded, err := s.exporter.DecodeRecord(record)
		if err != nil {
			session.DecodeFailures++
			continue
		}
		probes = append(probes, probe{index: i, mime: record.MimeType, data: decoded})
	}

	if err := s.repo.Save(session, s.ttl); err != nil {
		metrics.ExtractionsTotal.WithLabelValues(consts.StatusFailed).Inc()
		return nil, errors.ErrInternal(err)
	}

	// Workers write probe results back into the stored session, so the
	// response listing is built before any job is enqueued.
	media := s.toMediaDTOs(session)

	// Probe after Save so workers find the session in the repository.
	if s.pool != nil {
		for _, p := range probes {
			s.pool.AddJob(queue.Job{
				SessionID: session.ID,
				Type:      queue.JobProbeMeta,
				Index:     p.index,
				MimeType:  p.mime,
				Data:      p.data,
			})
		}
	}

	metrics.ExtractionsTotal.WithLabelValues(session.Status).Inc()
	metrics.MediaRecordsTotal.Add(float64(len(records)))
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())

	resp := &dto.ExtractResponse{
		SessionID:      session.ID,
		Filename:       session.Filename,
		Status:         session.Status,
		MediaCount:     len(records),
		DecodeFailures: session.DecodeFailures,
		Media:          media,
	}
	if session.Status == consts.StatusNoMedia {
		resp.Message = "No media found in the capture"
	}
	return resp, nil
}

func (s *extractService) GetSession(sessionID string) (*dto.SessionResponse, error) {
	session, err := s.repo.Get(sessionID)
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		SessionID:      session.ID,
		Filename:       session.Filename,
		Status:         session.Status,
		MediaCount:     len(session.Records),
		DecodeFailures: session.DecodeFailures,
		Media:          s.toMediaDTOs(session),
		CreatedAt:      session.CreatedAt,
		ExpiresAt:      session.ExpiresAt,
	}, nil
}

func (s *extractService) BuildArchive(sessionID string) ([]byte, *dto.ArchiveResult, error) {
	session, err := s.repo.Get(sessionID)
	if err != nil {
		return nil, nil, err
	}
	return s.exporter.BuildArchive(session)
}

func (s *extractService) GetMediaItem(sessionID string, index int) ([]byte, string, error) {
	session, err := s.repo.Get(sessionID)
	if err != nil {
		return nil, "", err
	}
	if index < 0 || index >= len(session.Records) {
		return nil, "", errors.ErrMediaNotFound(nil)
	}

	record := session.Records[index]
	data, err := s.exporter.DecodeRecord(record)
	if err != nil {
		return nil, "", err
	}
	return data, record.MimeType, nil
}

func (s *extractService) toMediaDTOs(session *entities.ExtractionSession) []dto.MediaItemDTO {
	items := make([]dto.MediaItemDTO, 0, len(session.Records))
	for i, record := range session.Records {
		item := dto.MediaItemDTO{
			Index:       i,
			SourceURL:   record.SourceURL,
			MimeType:    record.MimeType,
			DisplayName: record.DisplayName,
			ExportName:  s.exporter.BuildExportName(record, i),
		}
		if record.Meta != nil {
			item.Width = record.Meta.Width
			item.Height = record.Meta.Height
			item.Size = record.Meta.Size
		}
		items = append(items, item)
	}
	return items
}
