package repository

import (
	"time"

	"attraction-cms-backend/internal/models"

	"gorm.io/gorm"
)

type PageSectionRepository interface {
	Create(section *models.PageSection) error
	Update(section *models.PageSection) error
	UpdateOrder(id uint, order int, actorID uint, at time.Time) (int64, error)
	Delete(id uint) error
	DeleteByPageID(pageID string) error
	GetByID(id uint) (*models.PageSection, error)
	GetByPageID(pageID string) ([]models.PageSection, error)
	GetActiveByPageID(pageID string) ([]models.PageSection, error)
	MaxOrder(pageID string) (int, bool, error)
	Count() (int64, error)
}

type pageSectionRepository struct {
	db *gorm.DB
}

func NewPageSectionRepository(db *gorm.DB) PageSectionRepository {
	return &pageSectionRepository{db: db}
}

func (r *pageSectionRepository) Create(section *models.PageSection) error {
	return r.db.Create(section).Error
}

func (r *pageSectionRepository) Update(section *models.PageSection) error {
	return r.db.Save(section).Error
}

func (r *pageSectionRepository) UpdateOrder(id uint, order int, actorID uint, at time.Time) (int64, error) {
	result := r.db.Model(&models.PageSection{}).Where("id = ?", id).Updates(map[string]interface{}{
		"order":         order,
		"updated_by_id": actorID,
		"last_updated":  at,
	})
	return result.RowsAffected, result.Error
}

func (r *pageSectionRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.PageSection{}, id).Error
}

func (r *pageSectionRepository) DeleteByPageID(pageID string) error {
	return r.db.Unscoped().Where("page_id = ?", pageID).Delete(&models.PageSection{}).Error
}

func (r *pageSectionRepository) GetByID(id uint) (*models.PageSection, error) {
	var section models.PageSection
	if err := r.db.First(&section, id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *pageSectionRepository) GetByPageID(pageID string) ([]models.PageSection, error) {
	var sections []models.PageSection
	if err := orderAscending(r.db.Where("page_id = ?", pageID)).Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *pageSectionRepository) GetActiveByPageID(pageID string) ([]models.PageSection, error) {
	var sections []models.PageSection
	if err := orderAscending(r.db.Where("page_id = ? AND is_active = ?", pageID, true)).Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// MaxOrder returns the highest order value for a page. The second result is
// false when the page has no sections yet.
func (r *pageSectionRepository) MaxOrder(pageID string) (int, bool, error) {
	var section models.PageSection
	err := r.db.Where("page_id = ?", pageID).
		Order(`"order" DESC`).Order("id DESC").
		First(&section).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, false, nil
		}
		return 0, false, err
	}
	return section.Order, true, nil
}

func (r *pageSectionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.PageSection{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
