package file

import "strings"

// ExtensionFromMime derives a file extension from the MIME subtype, dropping
// any "+"-suffixed structured-syntax suffix (image/svg+xml -> "svg").
func ExtensionFromMime(mimeType string) string {
	sub := mimeType
	if i := strings.Index(sub, "/"); i >= 0 {
		sub = sub[i+1:]
	}
	if i := strings.Index(sub, "+"); i >= 0 {
		sub = sub[:i]
	}
	return sub
}
