package file

import "testing"

func TestContentHash_Deterministic(t *testing.T) {
	if ContentHash("iVBORw0KGgo=") != ContentHash("iVBORw0KGgo=") {
		t.Error("same input must yield same hash")
	}
}

func TestContentHash_DiffersWithContent(t *testing.T) {
	a := ContentHash("iVBORw0KGgo=")
	b := ContentHash("R0lGODlhAQABAAAAACw=")
	if a == b {
		t.Errorf("different content hashed to same value %q", a)
	}
}

func TestContentHash_ShortAndBase36(t *testing.T) {
	for _, in := range []string{"", "a", "some longer raw content string", "iVBORw0KGgo="} {
		h := ContentHash(in)
		if len(h) == 0 || len(h) > 6 {
			t.Errorf("ContentHash(%q) = %q, want 1..6 chars", in, h)
		}
		for _, c := range h {
			if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z') {
				t.Errorf("ContentHash(%q) = %q, not base36", in, h)
			}
		}
	}
}

func TestContentHash_EmptyInput(t *testing.T) {
	// djb2 seed 5381 -> base36 "45h"
	if got := ContentHash(""); got != "45h" {
		t.Errorf("ContentHash(\"\") = %q, want %q", got, "45h")
	}
}
