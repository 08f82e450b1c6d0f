package repository

import (
	"time"

	"attraction-cms-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SectionRepository interface {
	Create(section *models.Section) error
	Update(section *models.Section) error
	// UpdateOrder sets the order of a single section and stamps the audit
	// fields. It reports the number of rows touched so callers can detect
	// ids that no longer exist.
	UpdateOrder(id uint, order int, actorID uint, at time.Time) (int64, error)
	Delete(id uint) error
	GetByID(id uint) (*models.Section, error)
	GetByName(name string) (*models.Section, error)
	GetActiveByName(name string) (*models.Section, error)
	GetAll() ([]models.Section, error)
	GetActive() ([]models.Section, error)
	ExistsByName(name string) (bool, error)
	Count() (int64, error)
}

type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func orderAscending(db *gorm.DB) *gorm.DB {
	// "order" is reserved in Postgres; ties broken by insertion id.
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).Order("id ASC")
}

func (r *sectionRepository) Create(section *models.Section) error {
	return r.db.Create(section).Error
}

func (r *sectionRepository) Update(section *models.Section) error {
	return r.db.Save(section).Error
}

func (r *sectionRepository) UpdateOrder(id uint, order int, actorID uint, at time.Time) (int64, error) {
	result := r.db.Model(&models.Section{}).Where("id = ?", id).Updates(map[string]interface{}{
		"order":         order,
		"updated_by_id": actorID,
		"last_updated":  at,
	})
	return result.RowsAffected, result.Error
}

func (r *sectionRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Section{}, id).Error
}

func (r *sectionRepository) GetByID(id uint) (*models.Section, error) {
	var section models.Section
	if err := r.db.First(&section, id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) GetByName(name string) (*models.Section, error) {
	var section models.Section
	if err := r.db.Where("name = ?", name).First(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) GetActiveByName(name string) (*models.Section, error) {
	var section models.Section
	if err := r.db.Where("name = ? AND is_active = ?", name, true).First(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) GetAll() ([]models.Section, error) {
	var sections []models.Section
	if err := orderAscending(r.db).Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *sectionRepository) GetActive() ([]models.Section, error) {
	var sections []models.Section
	if err := orderAscending(r.db.Where("is_active = ?", true)).Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *sectionRepository) ExistsByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Section{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sectionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Section{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
