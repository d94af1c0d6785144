package har

import (
	"fmt"
	"testing"

	"har-media-exporter/internal/domain/entities"
	"har-media-exporter/pkg/errors"
)

func harWithEntries(entries string) []byte {
	return []byte(fmt.Sprintf(`{"log":{"version":"1.2","entries":[%s]}}`, entries))
}

func imageEntry(url, mime, text, encoding string) string {
	if encoding != "" {
		encoding = fmt.Sprintf(`,"encoding":%q`, encoding)
	}
	return fmt.Sprintf(
		`{"request":{"method":"GET","url":%q},"response":{"status":200,"content":{"mimeType":%q,"text":%q%s}}}`,
		url, mime, text, encoding,
	)
}

func TestParse_SingleBase64Image(t *testing.T) {
	data := harWithEntries(imageEntry("https://x.test/img/logo.png?v=2", "image/png", "iVBORw0KGgo=", "base64"))

	records, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if r.DisplayName != "logo.png" {
		t.Errorf("DisplayName = %q, want %q", r.DisplayName, "logo.png")
	}
	if r.ContentEncoding != entities.EncodingBase64 {
		t.Errorf("ContentEncoding = %q, want base64", r.ContentEncoding)
	}
	if r.RawContent != "iVBORw0KGgo=" {
		t.Errorf("RawContent = %q, want verbatim stored text", r.RawContent)
	}
	if r.SourceURL != "https://x.test/img/logo.png?v=2" {
		t.Errorf("SourceURL = %q", r.SourceURL)
	}
}

func TestParse_NotJSON(t *testing.T) {
	_, err := Parse([]byte("not json"))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	ee, ok := err.(*errors.ExtractError)
	if !ok || ee.Code != "malformed_input" {
		t.Errorf("got %v, want malformed_input", err)
	}
}

func TestParse_EmptyEntries(t *testing.T) {
	for name, data := range map[string][]byte{
		"zero entries": harWithEntries(""),
		"no entries":   []byte(`{"log":{"version":"1.2"}}`),
		"no log":       []byte(`{}`),
		"entries null": []byte(`{"log":{"entries":null}}`),
	} {
		records, err := Parse(data)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if len(records) != 0 {
			t.Errorf("%s: got %d records, want 0", name, len(records))
		}
	}
}

func TestParse_FiltersNonImageMimes(t *testing.T) {
	data := harWithEntries(
		imageEntry("https://x.test/index.html", "text/html", "<html></html>", "") + "," +
			imageEntry("https://x.test/app.js", "application/javascript", "var a=1", "") + "," +
			imageEntry("https://x.test/a.png", "image/png", "iVBORw0KGgo=", "base64"),
	)

	records, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].MimeType != "image/png" {
		t.Errorf("MimeType = %q, want image/png", records[0].MimeType)
	}
}

func TestParse_SkipsEmptyBody(t *testing.T) {
	data := harWithEntries(imageEntry("https://x.test/a.png", "image/png", "", ""))

	records, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0 for empty body", len(records))
	}
}

func TestParse_PreservesOrder(t *testing.T) {
	data := harWithEntries(
		imageEntry("https://x.test/first.png", "image/png", "Zmlyc3Q=", "base64") + "," +
			imageEntry("https://x.test/skip.css", "text/css", "body{}", "") + "," +
			imageEntry("https://x.test/second.gif", "image/gif", "c2Vjb25k", "base64") + "," +
			imageEntry("https://x.test/third.svg", "image/svg+xml", "<svg/>", ""),
	)

	records, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"first.png", "second.gif", "third.svg"}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, name := range want {
		if records[i].DisplayName != name {
			t.Errorf("records[%d].DisplayName = %q, want %q", i, records[i].DisplayName, name)
		}
	}
}

func TestParse_SVGTextKeptAsUTF8(t *testing.T) {
	data := harWithEntries(imageEntry("https://x.test/icon.svg", "image/svg+xml", "<svg xmlns='a'/>", ""))

	records, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].ContentEncoding != entities.EncodingUTF8 {
		t.Errorf("ContentEncoding = %q, want utf8", records[0].ContentEncoding)
	}
	if records[0].RawContent != "<svg xmlns='a'/>" {
		t.Errorf("RawContent = %q, want literal text", records[0].RawContent)
	}
}

func TestParse_AllAllowListMimes(t *testing.T) {
	mimes := []string{
		"image/png", "image/jpeg", "image/webp", "image/svg+xml",
		"image/gif", "image/apng", "image/bmp", "image/x-icon",
		"image/vnd.microsoft.icon",
	}

	var entries string
	for i, m := range mimes {
		if i > 0 {
			entries += ","
		}
		entries += imageEntry(fmt.Sprintf("https://x.test/f%d", i), m, "QUFBQQ==", "base64")
	}

	records, err := Parse(harWithEntries(entries))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != len(mimes) {
		t.Fatalf("got %d records, want %d", len(records), len(mimes))
	}
}

func TestParse_Deterministic(t *testing.T) {
	data := harWithEntries(
		imageEntry("https://x.test/a.png", "image/png", "QQ==", "base64") + "," +
			imageEntry("https://x.test/b.gif", "image/gif", "Qg==", "base64"),
	)

	first, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("record %d differs between runs", i)
		}
	}
}
