package cli

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"har-media-exporter/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.Init()
	os.Exit(m.Run())
}

const cliSampleHAR = `{"log":{"version":"1.2","entries":[
  {"request":{"method":"GET","url":"https://x.test/img/logo.png?v=2"},
   "response":{"status":200,"content":{"mimeType":"image/png","text":"iVBORw0KGgo=","encoding":"base64"}}}
]}}`

func writeCapture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestExtractCmd_WritesArchive(t *testing.T) {
	dir := t.TempDir()
	capture := writeCapture(t, dir, "capture.har", cliSampleHAR)
	output := filepath.Join(dir, "out", "media.zip")

	out, err := runCommand(t, "extract", capture, "-o", output)
	if err != nil {
		t.Fatalf("extract failed: %v\n%s", err, out)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.File) != 1 {
		t.Fatalf("archive has %d entries, want 1", len(r.File))
	}
	if !strings.HasPrefix(r.File[0].Name, "logo.png-") {
		t.Errorf("entry name = %q, want logo.png-<hash>.png", r.File[0].Name)
	}
}

func TestExtractCmd_RejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	capture := writeCapture(t, dir, "capture.json", cliSampleHAR)

	if _, err := runCommand(t, "extract", capture); err == nil {
		t.Fatal("expected error for non-.har input")
	}
}

func TestListCmd(t *testing.T) {
	dir := t.TempDir()
	capture := writeCapture(t, dir, "capture.har", cliSampleHAR)

	out, err := runCommand(t, "list", capture)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "image/png") || !strings.Contains(out, "logo.png-") {
		t.Errorf("listing missing expected columns:\n%s", out)
	}
}

func TestListCmd_NoMedia(t *testing.T) {
	dir := t.TempDir()
	capture := writeCapture(t, dir, "empty.har", `{"log":{"version":"1.2","entries":[]}}`)

	out, err := runCommand(t, "list", capture)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No media found") {
		t.Errorf("expected no-media notice, got:\n%s", out)
	}
}
