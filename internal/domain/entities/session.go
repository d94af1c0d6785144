package entities

import "time"

// ExtractionSession holds the result of one HAR extraction run.
type ExtractionSession struct {
	ID             string        `json:"id"`
	Filename       string        `json:"filename"`
	Status         string        `json:"status"` // "completed", "no_media_found"
	Records        []MediaRecord `json:"records"`
	DecodeFailures int           `json:"decode_failures"`
	CreatedAt      time.Time     `json:"created_at"`
	ExpiresAt      time.Time     `json:"expires_at"`
}

func (s *ExtractionSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
