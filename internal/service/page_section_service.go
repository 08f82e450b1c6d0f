package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"attraction-cms-backend/internal/constants"
	"attraction-cms-backend/internal/models"
	"attraction-cms-backend/internal/repository"
	"attraction-cms-backend/pkg/cache"
	"attraction-cms-backend/pkg/logger"
)

// PageSectionService manages the ordered content blocks attached to
// individual file-backed pages.
type PageSectionService struct {
	sectionRepo repository.PageSectionRepository
	pageRepo    repository.PageRepository
	cache       *cache.Cache
}

func NewPageSectionService(sectionRepo repository.PageSectionRepository, pageRepo repository.PageRepository, cacheService *cache.Cache) *PageSectionService {
	return &PageSectionService{
		sectionRepo: sectionRepo,
		pageRepo:    pageRepo,
		cache:       cacheService,
	}
}

func (s *PageSectionService) List(pageID string) ([]models.PageSection, error) {
	if s.cache != nil {
		var cached []models.PageSection
		if err := s.cache.GetCachedPageSections(pageID, &cached); err == nil {
			return cached, nil
		}
	}

	sections, err := s.sectionRepo.GetByPageID(pageID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CachePageSections(pageID, sections); err != nil {
			logger.Warn("Failed to cache page sections", map[string]interface{}{"page_id": pageID, "error": err.Error()})
		}
	}

	return sections, nil
}

func (s *PageSectionService) ListActive(pageID string) ([]models.PageSection, error) {
	return s.sectionRepo.GetActiveByPageID(pageID)
}

// Create attaches a new block to a page. The page must exist, eliminating
// orphaned blocks pointing at deleted or never-created pages. When no order
// is supplied the block is appended after the current maximum.
func (s *PageSectionService) Create(pageID string, req models.CreatePageSectionRequest, actorID uint) (*models.PageSection, error) {
	sectionType := strings.ToLower(strings.TrimSpace(req.Type))
	if !constants.IsPageSectionType(sectionType) {
		return nil, ErrInvalidSectionType
	}

	if _, err := s.pageRepo.GetBySlug(pageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	} else {
		maxOrder, found, err := s.sectionRepo.MaxOrder(pageID)
		if err != nil {
			return nil, fmt.Errorf("failed to determine next section order: %w", err)
		}
		if found {
			order = maxOrder + 1
		}
	}

	content := req.Content
	if content == nil {
		content = models.JSONMap{}
	}
	styles := req.Styles
	if styles == nil {
		styles = models.JSONMap{}
	}

	section := &models.PageSection{
		PageID:      pageID,
		Title:       strings.TrimSpace(req.Title),
		Type:        sectionType,
		Content:     content,
		Order:       order,
		IsActive:    true,
		Styles:      styles,
		Classes:     strings.TrimSpace(req.Classes),
		UpdatedByID: actorID,
		LastUpdated: time.Now().UTC(),
	}

	if err := s.sectionRepo.Create(section); err != nil {
		return nil, fmt.Errorf("failed to create page section: %w", err)
	}

	s.invalidateCache(pageID)
	return section, nil
}

func (s *PageSectionService) GetByID(id uint) (*models.PageSection, error) {
	section, err := s.sectionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageSectionNotFound
		}
		return nil, err
	}
	return section, nil
}

// Update overwrites only the provided fields.
func (s *PageSectionService) Update(id uint, req models.UpdatePageSectionRequest, actorID uint) (*models.PageSection, error) {
	section, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		section.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		section.Content = *req.Content
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}
	if req.Order != nil {
		section.Order = *req.Order
	}
	if req.Styles != nil {
		section.Styles = *req.Styles
	}
	if req.Classes != nil {
		section.Classes = strings.TrimSpace(*req.Classes)
	}

	section.UpdatedByID = actorID
	section.LastUpdated = time.Now().UTC()

	if err := s.sectionRepo.Update(section); err != nil {
		return nil, fmt.Errorf("failed to update page section: %w", err)
	}

	s.invalidateCache(section.PageID)
	return section, nil
}

func (s *PageSectionService) Delete(id uint) error {
	section, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.sectionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete page section: %w", err)
	}

	s.invalidateCache(section.PageID)
	return nil
}

// Reorder assigns position i in the submitted sequence order i. Ids that no
// longer exist are skipped and reported.
func (s *PageSectionService) Reorder(pageID string, ids []uint, actorID uint) (models.ReorderResult, error) {
	now := time.Now().UTC()
	result, err := applyReorder(ids, func(id uint, order int) (int64, error) {
		return s.sectionRepo.UpdateOrder(id, order, actorID, now)
	})
	if err != nil {
		return models.ReorderResult{}, fmt.Errorf("failed to reorder page sections: %w", err)
	}

	s.invalidateCache(pageID)
	return result, nil
}

// DeleteForPage removes every block bound to a page; called when the page
// itself is deleted.
func (s *PageSectionService) DeleteForPage(pageID string) error {
	if err := s.sectionRepo.DeleteByPageID(pageID); err != nil {
		return fmt.Errorf("failed to delete sections for page %s: %w", pageID, err)
	}
	s.invalidateCache(pageID)
	return nil
}

func (s *PageSectionService) invalidateCache(pageID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePageSections(pageID); err != nil {
		logger.Warn("Failed to invalidate page section cache", map[string]interface{}{"page_id": pageID, "error": err.Error()})
	}
}
