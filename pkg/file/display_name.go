package file

import (
	"strings"

	"har-media-exporter/pkg/constants"
)

// DisplayNameFromURL takes the final /-delimited path segment of the request
// URL, strips everything after the first "?", and falls back to the generic
// placeholder when the result is empty.
func DisplayNameFromURL(rawURL string) string {
	name := rawURL
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "?"); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return constants.PlaceholderName
	}
	return name
}
