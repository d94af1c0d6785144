package repositories

import (
	"time"

	"har-media-exporter/internal/domain/entities"
)

// SessionRepository stores extraction sessions for the configured TTL.
// There is no durable persistence anywhere; expired sessions simply vanish.
type SessionRepository interface {
	Save(session *entities.ExtractionSession, ttl time.Duration) error
	Get(sessionID string) (*entities.ExtractionSession, error)
	UpdateMeta(sessionID string, index int, meta entities.MediaMeta) error
	Delete(sessionID string) error
	PurgeExpired(now time.Time) (int, error)
}
