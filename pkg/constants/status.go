package constants

const (
	StatusOK         = "ok"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusNoMedia    = "no_media_found"
	StatusProcessing = "processing"
)

const (
	// ArchiveName is the fixed name of the downloadable container.
	ArchiveName = "media.zip"

	// PlaceholderName is used when a request URL yields no usable filename.
	PlaceholderName = "media"

	// HARExtension is the only accepted input file extension.
	HARExtension = ".har"
)
