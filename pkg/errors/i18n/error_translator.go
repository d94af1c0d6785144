package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed *.json
var i18nFiles embed.FS

var messages map[string]string

// Load reads the embedded message catalogue for the given locale.
func Load(locale string) error {
	filename := locale + ".json"

	data, err := i18nFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read embedded i18n file %s: %w", filename, err)
	}

	messages = make(map[string]string)
	return json.Unmarshal(data, &messages)
}

// T returns the translated message for a code, or the given fallback when
// the catalogue has no entry (or was never loaded).
func T(code, fallback string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return fallback
}
