package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
)

func makeFileHeader(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", fileName)
	if err != nil {
		t.Fatalf("failed to build form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close form: %v", err)
	}

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("failed to parse form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["image"][0]
}

func TestNextCounterStartsAtOne(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, 1024)

	n, err := svc.nextCounter(dir, "gallery")
	if err != nil {
		t.Fatalf("nextCounter failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("empty directory should yield counter 1, got %d", n)
	}
}

func TestNextCounterSkipsPastHighest(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, 1024)

	for _, name := range []string{"gallery1.jpg", "gallery3.png", "gallery12.webp", "hero2.jpg", "galleryx.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to plant file: %v", err)
		}
	}

	n, err := svc.nextCounter(dir, "gallery")
	if err != nil {
		t.Fatalf("nextCounter failed: %v", err)
	}
	if n != 13 {
		t.Fatalf("expected counter 13 after gallery12, got %d", n)
	}

	n, err = svc.nextCounter(dir, "hero")
	if err != nil {
		t.Fatalf("nextCounter failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected counter 3 after hero2, got %d", n)
	}
}

func TestSectionImageBase(t *testing.T) {
	cases := []struct {
		section     string
		contentType string
		want        string
	}{
		{"hero", "", "hero"},
		{"hero", "general", "hero"},
		{"Visitor Info", "", "visitorinfo"},
		{"hero", "deck-2", "hero-deck2"},
		{"hero", "background", "hero-bg"},
		{"hero", "thumbnail", "hero-thu"},
		{"hero", "map", "hero-map"},
		{"", "", "image"},
	}

	for _, tc := range cases {
		if got := sectionImageBase(tc.section, tc.contentType); got != tc.want {
			t.Fatalf("sectionImageBase(%q, %q) = %q, want %q", tc.section, tc.contentType, got, tc.want)
		}
	}
}

func TestSectionFolder(t *testing.T) {
	if got := sectionFolder("Visitor Info!"); got != "visitor-info" {
		t.Fatalf("unexpected folder name: %s", got)
	}
	if got := sectionFolder("deck-2"); got != "deck-2" {
		t.Fatalf("unexpected folder name: %s", got)
	}
}

func TestSectionImageCounterPerDirectory(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, 1024)

	heroDir := filepath.Join(dir, "hero", "background")
	if err := os.MkdirAll(heroDir, 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	for _, name := range []string{"hero-bg1.jpg", "hero-bg4.png"} {
		if err := os.WriteFile(filepath.Join(heroDir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to plant file: %v", err)
		}
	}

	n, err := svc.nextCounter(heroDir, sectionImageBase("hero", "background"))
	if err != nil {
		t.Fatalf("nextCounter failed: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected counter 5 after hero-bg4, got %d", n)
	}

	galleryDir := filepath.Join(dir, "hero")
	if err := os.MkdirAll(galleryDir, 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	n, err = svc.nextCounter(galleryDir, sectionImageBase("hero", ""))
	if err != nil {
		t.Fatalf("nextCounter failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("counters are per directory, expected 1, got %d", n)
	}
}

func TestSaveSectionImageLayout(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, 1024)

	relPath, err := svc.SaveSectionImage("hero", "background", makeFileHeader(t, "photo.jpg", []byte("jpeg-bytes")))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if relPath != "hero/background/hero-bg1.jpg" {
		t.Fatalf("unexpected stored path: %s", relPath)
	}

	data, err := os.ReadFile(filepath.Join(dir, "hero", "background", "hero-bg1.jpg"))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("stored content mismatch: %s", data)
	}

	relPath, err = svc.SaveSectionImage("hero", "background", makeFileHeader(t, "other.png", []byte("png-bytes")))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if relPath != "hero/background/hero-bg2.png" {
		t.Fatalf("counter must advance within the directory: %s", relPath)
	}

	relPath, err = svc.SaveSectionImage("hero", "", makeFileHeader(t, "plain.jpg", []byte("x")))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if relPath != "hero/hero1.jpg" {
		t.Fatalf("typeless uploads belong directly under the section: %s", relPath)
	}

	relPath, err = svc.SaveSectionImage("hero", "deck-2", makeFileHeader(t, "slide.jpg", []byte("x")))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if relPath != "hero/deck-2/hero-deck21.jpg" {
		t.Fatalf("deck uploads keep their number in the base name: %s", relPath)
	}
}

func TestUploadValidateRejectsBadFiles(t *testing.T) {
	svc := NewUploadService(t.TempDir(), 10)

	if _, err := svc.validate(&multipart.FileHeader{Filename: "notes.txt", Size: 5}); !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
	if _, err := svc.validate(&multipart.FileHeader{Filename: "logo.svg", Size: 5}); !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("svg uploads must be rejected, got %v", err)
	}
	if _, err := svc.validate(&multipart.FileHeader{Filename: "big.jpg", Size: 11}); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	ext, err := svc.validate(&multipart.FileHeader{Filename: "Photo.JPG", Size: 5})
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if ext != ".jpg" {
		t.Fatalf("extension should be lowercased, got %s", ext)
	}
}

func TestPublicPath(t *testing.T) {
	svc := NewUploadService(t.TempDir(), 1024)
	if got := svc.PublicPath("hero/background/hero-bg1.jpg"); got != "/uploads/hero/background/hero-bg1.jpg" {
		t.Fatalf("unexpected public path: %s", got)
	}
}
