package queue

type JobType string

const (
	JobProbeMeta JobType = "probe_meta"
)

// Job carries one decoded media item to the probe workers.
type Job struct {
	SessionID string
	Type      JobType
	Index     int
	MimeType  string
	Data      []byte
}
