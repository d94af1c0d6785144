package file

// Fixed allow-list of recognized image MIME types. Anything else recorded in
// a HAR entry is skipped.
var supportedImageMimes = map[string]bool{
	"image/png":                true,
	"image/jpeg":               true,
	"image/webp":               true,
	"image/svg+xml":            true,
	"image/gif":                true,
	"image/apng":               true,
	"image/bmp":                true,
	"image/x-icon":             true,
	"image/vnd.microsoft.icon": true,
}

func IsSupportedImageMime(mimeType string) bool {
	return supportedImageMimes[mimeType]
}
