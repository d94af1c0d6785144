package repositories

import (
	"sync"
	"time"

	"har-media-exporter/internal/domain/entities"
	"har-media-exporter/pkg/errors"
)

type InMemorySessionRepository struct {
	mu   sync.RWMutex
	data map[string]*entities.ExtractionSession
}

func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{
		data: make(map[string]*entities.ExtractionSession),
	}
}

func (r *InMemorySessionRepository) Save(session *entities.ExtractionSession, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ttl > 0 {
		session.ExpiresAt = time.Now().Add(ttl)
	}
	r.data[session.ID] = session
	return nil
}

func (r *InMemorySessionRepository) Get(sessionID string) (*entities.ExtractionSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, exists := r.data[sessionID]
	if !exists || session.Expired(time.Now()) {
		return nil, errors.ErrSessionNotFound(nil)
	}
	// Copy so callers cannot mutate the stored session.
	out := *session
	out.Records = append([]entities.MediaRecord(nil), session.Records...)
	return &out, nil
}

func (r *InMemorySessionRepository) UpdateMeta(sessionID string, index int, meta entities.MediaMeta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, exists := r.data[sessionID]
	if !exists {
		return errors.ErrSessionNotFound(nil)
	}
	if index < 0 || index >= len(session.Records) {
		return errors.ErrMediaNotFound(nil)
	}
	session.Records[index].Meta = &meta
	return nil
}

func (r *InMemorySessionRepository) Delete(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[sessionID]; !ok {
		return errors.ErrSessionNotFound(nil)
	}
	delete(r.data, sessionID)
	return nil
}

func (r *InMemorySessionRepository) PurgeExpired(now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, session := range r.data {
		if session.Expired(now) {
			delete(r.data, id)
			removed++
		}
	}
	return removed, nil
}
