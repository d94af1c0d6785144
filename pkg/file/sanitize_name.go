package file

import "regexp"

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeBaseName replaces every character outside [A-Za-z0-9._-] with "_".
func SanitizeBaseName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}
