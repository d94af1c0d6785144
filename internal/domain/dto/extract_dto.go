package dto

import "time"

type MediaItemDTO struct {
	Index       int    `json:"index"`
	SourceURL   string `json:"source_url"`
	MimeType    string `json:"mime_type"`
	DisplayName string `json:"display_name"`
	ExportName  string `json:"export_name"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Size        int    `json:"size,omitempty"`
}

type ExtractResponse struct {
	SessionID      string         `json:"session_id"`
	Filename       string         `json:"filename"`
	Status         string         `json:"status"`
	MediaCount     int            `json:"media_count"`
	DecodeFailures int            `json:"decode_failures"`
	Media          []MediaItemDTO `json:"media"`
	Message        string         `json:"message,omitempty"`
}

type SessionResponse struct {
	SessionID      string         `json:"session_id"`
	Filename       string         `json:"filename"`
	Status         string         `json:"status"`
	MediaCount     int            `json:"media_count"`
	DecodeFailures int            `json:"decode_failures"`
	Media          []MediaItemDTO `json:"media"`
	CreatedAt      time.Time      `json:"created_at"`
	ExpiresAt      time.Time      `json:"expires_at"`
}

type ArchiveResult struct {
	Name           string `json:"name"`
	Size           int    `json:"size"`
	EntryCount     int    `json:"entry_count"`
	DecodeFailures int    `json:"decode_failures"`
	StoredPath     string `json:"stored_path,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
