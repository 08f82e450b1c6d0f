package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")
var ErrFileTooLarge = errors.New("file exceeds the maximum upload size")

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	nonAlnum       = regexp.MustCompile(`[^a-z0-9]`)
	nonAlnumHyphen = regexp.MustCompile(`[^a-z0-9-]`)
	deckType       = regexp.MustCompile(`deck-(\d+)`)
)

// UploadService stores uploaded files under the public uploads directory.
type UploadService struct {
	uploadDir string
	maxSize   int64
}

func NewUploadService(uploadDir string, maxSize int64) *UploadService {
	return &UploadService{uploadDir: uploadDir, maxSize: maxSize}
}

// SaveSectionImage stores an image for a named section under
// <uploadDir>/<section>[/<content-type>]/ with sequential file names. The
// base name is the section name stripped to alphanumerics plus a content-type
// suffix, and the counter continues past the highest existing number in the
// target directory, regardless of deletions in between. The returned path is
// relative to the upload directory.
func (s *UploadService) SaveSectionImage(sectionName, contentType string, file *multipart.FileHeader) (string, error) {
	ext, err := s.validate(file)
	if err != nil {
		return "", err
	}

	folder := sectionFolder(sectionName)
	if folder == "" {
		folder = "section"
	}

	subDirs := []string{folder}
	if typeFolder := sectionFolder(contentType); typeFolder != "" {
		subDirs = append(subDirs, typeFolder)
	}

	targetDir := filepath.Join(append([]string{s.uploadDir}, subDirs...)...)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	base := sectionImageBase(sectionName, contentType)
	counter, err := s.nextCounter(targetDir, base)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%s%d%s", base, counter, ext)
	if err := s.write(file, filepath.Join(targetDir, fileName)); err != nil {
		return "", err
	}

	return path.Join(append(subDirs, fileName)...), nil
}

// SaveFile stores a general editor upload under a collision-free name.
func (s *UploadService) SaveFile(file *multipart.FileHeader) (string, error) {
	ext, err := s.validate(file)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	fileName := fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.New().String(), ext)
	if err := s.write(file, filepath.Join(s.uploadDir, fileName)); err != nil {
		return "", err
	}

	return fileName, nil
}

// PublicPath maps a stored path, relative to the upload directory, to the URL
// it is served from.
func (s *UploadService) PublicPath(relPath string) string {
	return "/uploads/" + relPath
}

// sectionFolder turns a section name or content type into a directory name.
func sectionFolder(name string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

// sectionImageBase builds the file base name: the section name stripped to
// alphanumerics, plus a content-type suffix. Deck uploads keep their number
// (deck-2 becomes -deck2), backgrounds become -bg, anything else except the
// default "general" contributes its first three characters.
func sectionImageBase(sectionName, contentType string) string {
	base := nonAlnum.ReplaceAllString(strings.ToLower(sectionName), "")
	if base == "" {
		base = "image"
	}

	cleaned := nonAlnumHyphen.ReplaceAllString(strings.ToLower(contentType), "")
	switch {
	case cleaned == "" || cleaned == "general":
	case deckType.MatchString(cleaned):
		base += "-deck" + deckType.FindStringSubmatch(cleaned)[1]
	case cleaned == "background":
		base += "-bg"
	default:
		if len(cleaned) > 3 {
			cleaned = cleaned[:3]
		}
		base += "-" + cleaned
	}

	return base
}

func (s *UploadService) validate(file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return "", ErrUnsupportedFileType
	}
	return ext, nil
}

// nextCounter scans a directory for files named <base><number>.* and returns
// one past the highest number found, starting at 1.
func (s *UploadService) nextCounter(dir, base string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to scan upload directory: %w", err)
	}

	pattern, err := regexp.Compile("^" + regexp.QuoteMeta(base) + `(\d+)\.[a-z0-9]+$`)
	if err != nil {
		return 0, err
	}

	highest := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := pattern.FindStringSubmatch(strings.ToLower(entry.Name()))
		if match == nil {
			continue
		}
		if n, err := strconv.Atoi(match[1]); err == nil && n > highest {
			highest = n
		}
	}

	return highest + 1, nil
}

func (s *UploadService) write(file *multipart.FileHeader, path string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create upload target: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to store uploaded file: %w", err)
	}
	return nil
}
