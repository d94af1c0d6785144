package usecases

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"os"
	"regexp"
	"testing"

	"har-media-exporter/internal/domain/entities"
	"har-media-exporter/internal/infrastructure/archive"
	"har-media-exporter/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.Init()
	os.Exit(m.Run())
}

func newExporter() ExportService {
	return NewExportService(archive.NewZipBuilder, nil)
}

func pngRecord(name, raw string) entities.MediaRecord {
	return entities.MediaRecord{
		SourceURL:       "https://x.test/img/" + name,
		MimeType:        "image/png",
		DisplayName:     name,
		ContentEncoding: entities.EncodingBase64,
		RawContent:      raw,
	}
}

func TestBuildExportName_Deterministic(t *testing.T) {
	exp := newExporter()
	rec := pngRecord("logo.png", "iVBORw0KGgo=")

	first := exp.BuildExportName(rec, 0)
	second := exp.BuildExportName(rec, 0)
	if first != second {
		t.Errorf("same inputs yielded %q and %q", first, second)
	}

	pattern := regexp.MustCompile(`^logo\.png-[0-9a-z]{1,6}\.png$`)
	if !pattern.MatchString(first) {
		t.Errorf("export name %q does not match logo.png-<hash6>.png", first)
	}
}

func TestBuildExportName_HashFollowsContent(t *testing.T) {
	exp := newExporter()

	a := exp.BuildExportName(pngRecord("logo.png", "iVBORw0KGgo="), 0)
	b := exp.BuildExportName(pngRecord("logo.png", "R0lGODlhAQ=="), 1)
	if a == b {
		t.Errorf("different content produced identical name %q", a)
	}
}

func TestBuildExportName_Sanitizes(t *testing.T) {
	exp := newExporter()
	rec := pngRecord("my logo (v2).png", "iVBORw0KGgo=")

	name := exp.BuildExportName(rec, 0)
	pattern := regexp.MustCompile(`^my_logo__v2_\.png-[0-9a-z]{1,6}\.png$`)
	if !pattern.MatchString(name) {
		t.Errorf("export name %q not sanitized as expected", name)
	}
}

func TestBuildExportName_FallbackIndex(t *testing.T) {
	exp := newExporter()
	rec := entities.MediaRecord{
		MimeType:        "image/gif",
		DisplayName:     "",
		ContentEncoding: entities.EncodingBase64,
		RawContent:      "R0lGODlh",
	}

	name := exp.BuildExportName(rec, 7)
	pattern := regexp.MustCompile(`^media_7-[0-9a-z]{1,6}\.gif$`)
	if !pattern.MatchString(name) {
		t.Errorf("export name %q, want media_7-<hash>.gif", name)
	}
}

func TestBuildExportName_SVGExtension(t *testing.T) {
	exp := newExporter()
	rec := entities.MediaRecord{
		MimeType:        "image/svg+xml",
		DisplayName:     "icon.svg",
		ContentEncoding: entities.EncodingUTF8,
		RawContent:      "<svg/>",
	}

	name := exp.BuildExportName(rec, 0)
	pattern := regexp.MustCompile(`^icon\.svg-[0-9a-z]{1,6}\.svg$`)
	if !pattern.MatchString(name) {
		t.Errorf("export name %q, want .svg extension without +xml suffix", name)
	}
}

func TestDecodeRecord_Base64RoundTrip(t *testing.T) {
	exp := newExporter()
	raw := "iVBORw0KGgo="

	data, err := exp.DecodeRecord(pngRecord("logo.png", raw))
	if err != nil {
		t.Fatal(err)
	}
	if base64.StdEncoding.EncodeToString(data) != raw {
		t.Error("decode then re-encode did not yield the original stored text")
	}
}

func TestDecodeRecord_UTF8(t *testing.T) {
	exp := newExporter()
	rec := entities.MediaRecord{
		MimeType:        "image/svg+xml",
		DisplayName:     "icon.svg",
		ContentEncoding: entities.EncodingUTF8,
		RawContent:      "<svg xmlns='a'/>",
	}

	data, err := exp.DecodeRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != rec.RawContent {
		t.Errorf("got %q, want literal UTF-8 bytes", data)
	}
}

func TestDecodeRecord_InvalidBase64(t *testing.T) {
	exp := newExporter()
	if _, err := exp.DecodeRecord(pngRecord("bad.png", "!!!not-base64!!!")); err == nil {
		t.Error("expected decode error for invalid base64")
	}
}

func TestBuildArchive_DuplicateBaseNames(t *testing.T) {
	exp := newExporter()
	session := &entities.ExtractionSession{
		ID: "s1",
		Records: []entities.MediaRecord{
			pngRecord("logo.png", "iVBORw0KGgo="),
			pngRecord("logo.png", "R0lGODlhAQ=="),
		},
	}

	out, result, err := exp.BuildArchive(session)
	if err != nil {
		t.Fatal(err)
	}
	if result.EntryCount != 2 {
		t.Fatalf("entry count = %d, want 2", result.EntryCount)
	}

	r, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.File) != 2 {
		t.Fatalf("archive has %d entries, want 2", len(r.File))
	}
	if r.File[0].Name == r.File[1].Name {
		t.Errorf("duplicate base names should differ in hash suffix, both are %q", r.File[0].Name)
	}
}

func TestBuildArchive_DropsUndecodableRecords(t *testing.T) {
	exp := newExporter()
	session := &entities.ExtractionSession{
		ID: "s1",
		Records: []entities.MediaRecord{
			pngRecord("good.png", "iVBORw0KGgo="),
			pngRecord("bad.png", "%%%"),
		},
	}

	out, result, err := exp.BuildArchive(session)
	if err != nil {
		t.Fatal(err)
	}
	if result.EntryCount != 1 {
		t.Errorf("entry count = %d, want 1", result.EntryCount)
	}
	if result.DecodeFailures != 1 {
		t.Errorf("decode failures = %d, want 1", result.DecodeFailures)
	}

	r, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.File) != 1 {
		t.Fatalf("archive has %d entries, want 1", len(r.File))
	}
}
