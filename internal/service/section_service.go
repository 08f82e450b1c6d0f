package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"attraction-cms-backend/internal/models"
	"attraction-cms-backend/internal/repository"
	"attraction-cms-backend/pkg/cache"
	"attraction-cms-backend/pkg/logger"
	"attraction-cms-backend/pkg/utils"
)

// SectionService manages the globally-ordered content regions of the main
// site (hero, history, tickets and so on).
type SectionService struct {
	sectionRepo repository.SectionRepository
	cache       *cache.Cache
}

func NewSectionService(sectionRepo repository.SectionRepository, cacheService *cache.Cache) *SectionService {
	return &SectionService{
		sectionRepo: sectionRepo,
		cache:       cacheService,
	}
}

func (s *SectionService) Create(req models.CreateSectionRequest, actorID uint) (*models.Section, error) {
	name := utils.GenerateSlug(req.Name)
	if name == "" {
		return nil, errors.New("section name is required")
	}

	exists, err := s.sectionRepo.ExistsByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to check section existence: %w", err)
	}
	if exists {
		return nil, ErrSectionExists
	}

	icon := strings.TrimSpace(req.Icon)
	if icon == "" {
		icon = "fas fa-edit"
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	content := req.Content
	if content == nil {
		content = models.JSONMap{}
	}

	section := &models.Section{
		Name:        name,
		DisplayName: strings.TrimSpace(req.DisplayName),
		Icon:        icon,
		Order:       order,
		IsActive:    true,
		Content:     content,
		UpdatedByID: actorID,
		LastUpdated: time.Now().UTC(),
	}

	if err := s.sectionRepo.Create(section); err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}

	s.invalidateCache()
	return section, nil
}

func (s *SectionService) GetByID(id uint) (*models.Section, error) {
	section, err := s.sectionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return section, nil
}

// GetActiveByName serves the public site; inactive sections are invisible.
func (s *SectionService) GetActiveByName(name string) (*models.Section, error) {
	section, err := s.sectionRepo.GetActiveByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return section, nil
}

func (s *SectionService) GetAll() ([]models.Section, error) {
	if s.cache != nil {
		var cached []models.Section
		if err := s.cache.GetCachedSections(&cached); err == nil {
			return cached, nil
		}
	}

	sections, err := s.sectionRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheSections(sections); err != nil {
			logger.Warn("Failed to cache sections", map[string]interface{}{"error": err.Error()})
		}
	}

	return sections, nil
}

func (s *SectionService) GetActive() ([]models.Section, error) {
	return s.sectionRepo.GetActive()
}

// Update overwrites only the fields present in the request; omitted fields
// keep their prior values.
func (s *SectionService) Update(id uint, req models.UpdateSectionRequest, actorID uint) (*models.Section, error) {
	section, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		section.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.Icon != nil {
		section.Icon = strings.TrimSpace(*req.Icon)
	}
	if req.Order != nil {
		section.Order = *req.Order
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}
	if req.Content != nil {
		section.Content = *req.Content
	}

	section.UpdatedByID = actorID
	section.LastUpdated = time.Now().UTC()

	if err := s.sectionRepo.Update(section); err != nil {
		return nil, fmt.Errorf("failed to update section: %w", err)
	}

	s.invalidateCache()
	return section, nil
}

func (s *SectionService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	if err := s.sectionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}

	s.invalidateCache()
	return nil
}

// Reorder persists the submitted sequence positionally: position i becomes
// order i. Missing ids are skipped and reported, not failed.
func (s *SectionService) Reorder(ids []uint, actorID uint) (models.ReorderResult, error) {
	now := time.Now().UTC()
	result, err := applyReorder(ids, func(id uint, order int) (int64, error) {
		return s.sectionRepo.UpdateOrder(id, order, actorID, now)
	})
	if err != nil {
		return models.ReorderResult{}, fmt.Errorf("failed to reorder sections: %w", err)
	}

	s.invalidateCache()
	return result, nil
}

// AttachImage records an uploaded image in the section's content under the
// "images" key.
func (s *SectionService) AttachImage(id uint, image models.JSONMap, actorID uint) (*models.Section, error) {
	section, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if section.Content == nil {
		section.Content = models.JSONMap{}
	}

	images, _ := section.Content["images"].([]interface{})
	images = append(images, map[string]interface{}(image))
	section.Content["images"] = images

	section.UpdatedByID = actorID
	section.LastUpdated = time.Now().UTC()

	if err := s.sectionRepo.Update(section); err != nil {
		return nil, fmt.Errorf("failed to attach image to section: %w", err)
	}

	s.invalidateCache()
	return section, nil
}

func (s *SectionService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSections(); err != nil {
		logger.Warn("Failed to invalidate section cache", map[string]interface{}{"error": err.Error()})
	}
}
