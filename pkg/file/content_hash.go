package file

import "strconv"

// ContentHash computes a short djb2 hash of the raw stored content.
// It only disambiguates export names that share a base; it is not an
// integrity check, so the 6-char truncation is acceptable.
func ContentHash(raw string) string {
	h := uint32(5381)
	for i := 0; i < len(raw); i++ {
		h = h*33 + uint32(raw[i])
	}
	s := strconv.FormatUint(uint64(h), 36)
	if len(s) > 6 {
		s = s[:6]
	}
	return s
}
