package usecases

import (
	"log"
	"time"

	"har-media-exporter/internal/domain/repositories"
)

type CleanupService interface {
	CleanupExpiredSessions() error
}

type cleanupService struct {
	repo repositories.SessionRepository
}

func NewCleanupService(repo repositories.SessionRepository) CleanupService {
	return &cleanupService{repo: repo}
}

func (s *cleanupService) CleanupExpiredSessions() error {
	removed, err := s.repo.PurgeExpired(time.Now())
	if err != nil {
		return err
	}
	if removed > 0 {
		log.Printf("Removed %d expired extraction sessions", removed)
	}
	return nil
}
