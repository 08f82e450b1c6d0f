package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"attraction-cms-backend/internal/constants"
	"attraction-cms-backend/internal/models"
	"attraction-cms-backend/internal/pagetemplates"
	"attraction-cms-backend/internal/repository"
	"attraction-cms-backend/pkg/cache"
	"attraction-cms-backend/pkg/logger"
	"attraction-cms-backend/pkg/utils"
)

// PageService manages file-backed pages: each page is a database row plus an
// HTML file under the pages directory, created by copying one of the fixed
// template skeletons.
type PageService struct {
	pageRepo    repository.PageRepository
	sectionRepo repository.PageSectionRepository
	cache       *cache.Cache
	pagesDir    string
}

func NewPageService(pageRepo repository.PageRepository, sectionRepo repository.PageSectionRepository, cacheService *cache.Cache, pagesDir string) *PageService {
	return &PageService{
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
		cache:       cacheService,
		pagesDir:    pagesDir,
	}
}

// CreateFromTemplate copies the template skeleton into the pages directory
// under the page's slug and records the page. Creation fails if either the
// slug or the target file already exists; a half-created page is rolled back.
func (s *PageService) CreateFromTemplate(req models.CreatePageRequest, actorID uint) (*models.Page, error) {
	templateType := strings.ToLower(strings.TrimSpace(req.TemplateType))
	if !constants.IsPageTemplateType(templateType) {
		return nil, ErrInvalidTemplateType
	}

	slug := utils.GenerateSlug(req.Name)
	if slug == "" {
		return nil, errors.New("page name is required")
	}

	exists, err := s.pageRepo.ExistsBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check page existence: %w", err)
	}
	if exists {
		return nil, ErrPageExists
	}

	skeleton, err := pagetemplates.Get(templateType)
	if err != nil {
		return nil, ErrInvalidTemplateType
	}

	if err := os.MkdirAll(s.pagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create pages directory: %w", err)
	}

	filePath := filepath.Join(s.pagesDir, slug+".html")
	if _, err := os.Stat(filePath); err == nil {
		return nil, ErrPageExists
	}

	if err := os.WriteFile(filePath, skeleton, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write page file: %w", err)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = strings.TrimSpace(req.Name)
	}

	page := &models.Page{
		Name:         strings.TrimSpace(req.Name),
		Slug:         slug,
		Title:        title,
		Description:  strings.TrimSpace(req.Description),
		TemplateType: templateType,
		Content:      models.JSONMap{},
		Metadata:     models.JSONMap{},
		IsPublished:  false,
		FilePath:     filePath,
		UpdatedByID:  actorID,
		LastUpdated:  time.Now().UTC(),
	}

	if err := s.pageRepo.Create(page); err != nil {
		if removeErr := os.Remove(filePath); removeErr != nil {
			logger.Error(removeErr, "Failed to remove orphaned page file", map[string]interface{}{"path": filePath})
		}
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return page, nil
}

func (s *PageService) GetBySlug(slug string) (*models.Page, error) {
	page, err := s.pageRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

// List joins each page row with stat info from its backing file. Pages whose
// file disappeared are still listed with zero stat values.
func (s *PageService) List() ([]models.PageInfo, error) {
	pages, err := s.pageRepo.GetAll()
	if err != nil {
		return nil, err
	}

	infos := make([]models.PageInfo, 0, len(pages))
	for _, page := range pages {
		info := models.PageInfo{
			Page:     page,
			FileName: filepath.Base(page.FilePath),
		}
		if stat, err := os.Stat(page.FilePath); err == nil {
			info.Size = stat.Size()
			info.LastModified = stat.ModTime()
		} else {
			logger.Warn("Page file missing", map[string]interface{}{"slug": page.Slug, "path": page.FilePath})
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// ReadHTML returns the raw backing file for a page.
func (s *PageService) ReadHTML(slug string) (*models.Page, []byte, error) {
	page, err := s.GetBySlug(slug)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(page.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrPageFileNotFound
		}
		return nil, nil, fmt.Errorf("failed to read page file: %w", err)
	}

	return page, data, nil
}

// SaveHTML overwrites the page's backing file with editor-supplied markup.
func (s *PageService) SaveHTML(slug, content string, actorID uint) (*models.Page, error) {
	page, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(page.FilePath, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("failed to save page file: %w", err)
	}

	page.UpdatedByID = actorID
	page.LastUpdated = time.Now().UTC()
	if err := s.pageRepo.Update(page); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	return page, nil
}

func (s *PageService) SetPublished(slug string, published bool, actorID uint) (*models.Page, error) {
	page, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	page.IsPublished = published
	page.UpdatedByID = actorID
	page.LastUpdated = time.Now().UTC()
	if err := s.pageRepo.Update(page); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	return page, nil
}

// Delete removes the page row, its backing file and every section block bound
// to it, so no orphaned blocks survive the page.
func (s *PageService) Delete(slug string) error {
	page, err := s.GetBySlug(slug)
	if err != nil {
		return err
	}

	if err := s.pageRepo.Delete(page.ID); err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	if err := s.sectionRepo.DeleteByPageID(page.Slug); err != nil {
		return fmt.Errorf("failed to delete sections for page %s: %w", page.Slug, err)
	}

	if err := os.Remove(page.FilePath); err != nil && !os.IsNotExist(err) {
		logger.Error(err, "Failed to remove page file", map[string]interface{}{"path": page.FilePath})
	}

	if s.cache != nil {
		if err := s.cache.InvalidatePageSections(page.Slug); err != nil {
			logger.Warn("Failed to invalidate page section cache", map[string]interface{}{"page_id": page.Slug, "error": err.Error()})
		}
	}

	return nil
}
