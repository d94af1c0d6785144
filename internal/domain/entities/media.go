package entities

// ContentEncoding says how RawContent must be decoded to bytes.
type ContentEncoding string

const (
	EncodingBase64 ContentEncoding = "base64"
	EncodingUTF8   ContentEncoding = "utf8"
)

// MediaRecord is one extracted resource from a HAR capture. It is created
// once during the parse pass and immutable afterwards; RawContent is kept
// exactly as stored in the HAR entry so the derived name hash stays stable.
type MediaRecord struct {
	SourceURL       string          `json:"source_url"`
	MimeType        string          `json:"mime_type"`
	DisplayName     string          `json:"display_name"`
	ContentEncoding ContentEncoding `json:"content_encoding"`
	RawContent      string          `json:"raw_content"`
	Meta            *MediaMeta      `json:"meta,omitempty"`
}

// MediaMeta holds best-effort probed metadata. Width/Height stay zero for
// formats the probe cannot decode (svg, webp, ico).
type MediaMeta struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
	Size   int `json:"size,omitempty"` // decoded size in bytes
}
