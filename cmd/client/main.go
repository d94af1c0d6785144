package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Demo client: uploads a HAR capture to a running server, prints the media
// listing and downloads the built media.zip next to the input file.

type extractResponse struct {
	SessionID      string `json:"session_id"`
	Status         string `json:"status"`
	MediaCount     int    `json:"media_count"`
	DecodeFailures int    `json:"decode_failures"`
	Media          []struct {
		Index      int    `json:"index"`
		ExportName string `json:"export_name"`
		MimeType   string `json:"mime_type"`
		SourceURL  string `json:"source_url"`
	} `json:"media"`
	Message string `json:"message"`
}

func main() {
	serverURL := flag.String("server", "http://localhost:3000", "server base URL")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: client [-server URL] <capture.har>")
	}
	harPath := flag.Arg(0)

	client := &http.Client{Timeout: 60 * time.Second}

	resp, err := uploadHAR(client, *serverURL, harPath)
	if err != nil {
		log.Fatalf("Upload failed: %v", err)
	}

	fmt.Printf("Session: %s (status=%s)\n", resp.SessionID, resp.Status)
	if resp.Status == "no_media_found" {
		fmt.Println(resp.Message)
		return
	}

	fmt.Printf("Found %d media record(s), %d decode failure(s)\n", resp.MediaCount, resp.DecodeFailures)
	for _, item := range resp.Media {
		fmt.Printf("  %2d  %-40s  %s\n", item.Index, item.ExportName, item.MimeType)
	}

	outPath := filepath.Join(filepath.Dir(harPath), "media.zip")
	if err := downloadArchive(client, *serverURL, resp.SessionID, outPath); err != nil {
		log.Fatalf("Download failed: %v", err)
	}
	fmt.Printf("Saved %s\n", outPath)
}

func uploadHAR(client *http.Client, serverURL, harPath string) (*extractResponse, error) {
	f, err := os.Open(harPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(harPath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, err
	}
	writer.Close()

	req, err := http.NewRequest(http.MethodPost, serverURL+"/api/v1/extract", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	httpResp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(httpResp.Body)
		return nil, fmt.Errorf("server returned %d: %s", httpResp.StatusCode, data)
	}

	var resp extractResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func downloadArchive(client *http.Client, serverURL, sessionID, outPath string) error {
	httpResp, err := client.Get(serverURL + "/api/v1/extract/" + sessionID + "/archive")
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(httpResp.Body)
		return fmt.Errorf("server returned %d: %s", httpResp.StatusCode, data)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, httpResp.Body)
	return err
}
