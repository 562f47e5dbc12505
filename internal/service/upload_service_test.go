package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toybox-next/internal/config"
)

// PNG 文件头，足以让 DetectContentType 识别为 image/png
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func newUploadTestService(t *testing.T) *UploadService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Upload.Dir = t.TempDir()
	cfg.Upload.MaxSize = 1024
	cfg.Upload.AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}
	return NewUploadService(cfg)
}

func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse multipart failed: %v", err)
	}
	files := req.MultipartForm.File["file"]
	if len(files) != 1 {
		t.Fatalf("expected one file header, got %d", len(files))
	}
	return files[0]
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	svc := newUploadTestService(t)
	header := buildFileHeader(t, "big.png", append(pngHeader, make([]byte, 2048)...))
	if _, err := svc.SaveFile(header, "product"); err != ErrUploadTooLarge {
		t.Fatalf("expected ErrUploadTooLarge, got %v", err)
	}
}

func TestUploadRejectsBadExtension(t *testing.T) {
	svc := newUploadTestService(t)
	header := buildFileHeader(t, "payload.exe", pngHeader)
	if _, err := svc.SaveFile(header, "product"); err != ErrUploadExtensionDenied {
		t.Fatalf("expected ErrUploadExtensionDenied, got %v", err)
	}
}

func TestUploadRejectsMismatchedContent(t *testing.T) {
	svc := newUploadTestService(t)
	header := buildFileHeader(t, "fake.png", []byte("#!/bin/sh\necho hi\n"))
	if _, err := svc.SaveFile(header, "product"); err != ErrUploadTypeDenied {
		t.Fatalf("expected ErrUploadTypeDenied, got %v", err)
	}
}

func TestUploadSavesFileAndNormalizesScene(t *testing.T) {
	svc := newUploadTestService(t)
	header := buildFileHeader(t, "toy.png", pngHeader)

	path, err := svc.SaveFile(header, "unknown-scene")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(path, "/uploads/common/") {
		t.Fatalf("expected common scene fallback, got %s", path)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Fatalf("expected .png suffix, got %s", path)
	}

	saved := filepath.Join(svc.cfg.Upload.Dir, strings.TrimPrefix(path, "/uploads/"))
	if _, err := os.Stat(saved); err != nil {
		t.Fatalf("expected saved file on disk: %v", err)
	}
}
