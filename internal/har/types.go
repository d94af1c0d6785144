package har

// Minimal HAR 1.2 shapes — only the fields the media selector reads.
// Everything else in a capture is ignored on purpose.

type File struct {
	Log Log `json:"log"`
}

type Log struct {
	Version string  `json:"version"`
	Entries []Entry `json:"entries"`
}

type Entry struct {
	Request  Request  `json:"request"`
	Response Response `json:"response"`
}

type Request struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

type Response struct {
	Status  int     `json:"status"`
	Content Content `json:"content"`
}

type Content struct {
	Size     int    `json:"size"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Encoding string `json:"encoding"` // "base64" when the body is base64 text
}
