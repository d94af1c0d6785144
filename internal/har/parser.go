package har

import (
	"encoding/json"

	"har-media-exporter/internal/domain/entities"
	"har-media-exporter/pkg/errors"
	"har-media-exporter/pkg/file"
)

// Parse walks the capture's entry list and returns one MediaRecord per
// entry whose declared MIME type is on the image allow-list and whose body
// is present. Order is first-seen order; given the same input the output is
// identical every time.
//
// Invalid JSON is the only input-validation failure. A missing or empty
// log.entries is not an error — absence of traffic is a valid capture.
func Parse(data []byte) ([]entities.MediaRecord, error) {
	var doc File
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.ErrMalformedInput(err)
	}

	records := make([]entities.MediaRecord, 0)
	for _, entry := range doc.Log.Entries {
		content := entry.Response.Content
		if content.Text == "" || !file.IsSupportedImageMime(content.MimeType) {
			continue
		}

		encoding := entities.EncodingUTF8
		if content.Encoding == "base64" {
			encoding = entities.EncodingBase64
		}

		records = append(records, entities.MediaRecord{
			SourceURL:       entry.Request.URL,
			MimeType:        content.MimeType,
			DisplayName:     file.DisplayNameFromURL(entry.Request.URL),
			ContentEncoding: encoding,
			RawContent:      content.Text, // verbatim, never re-encoded
		})
	}

	return records, nil
}
