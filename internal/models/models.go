package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:varchar(32);default:'editor'" json:"role"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Section is a globally-ordered content region of the main site (hero,
// history, tickets and so on), distinct from the per-page PageSection blocks.
type Section struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	DisplayName string  `gorm:"not null" json:"display_name"`
	Icon        string  `gorm:"default:'fas fa-edit'" json:"icon"`
	Order       int     `gorm:"default:0" json:"order"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`
	Content     JSONMap `gorm:"type:jsonb" json:"content"`

	UpdatedByID uint      `json:"updated_by"`
	LastUpdated time.Time `json:"last_updated"`
}

// Page is a standalone, file-backed page created from one of the fixed HTML
// templates. Its slug doubles as the filename base under the pages directory.
type Page struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string  `gorm:"not null" json:"name"`
	Slug         string  `gorm:"uniqueIndex;not null" json:"slug"`
	Title        string  `gorm:"not null" json:"title"`
	Description  string  `json:"description"`
	TemplateType string  `gorm:"type:varchar(32);not null" json:"template_type"`
	Content      JSONMap `gorm:"type:jsonb" json:"content"`
	Metadata     JSONMap `gorm:"type:jsonb" json:"metadata"`
	IsPublished  bool    `gorm:"default:false" json:"is_published"`
	FilePath     string  `gorm:"not null" json:"file_path"`

	UpdatedByID uint      `json:"updated_by"`
	LastUpdated time.Time `json:"last_updated"`
}

// PageSection is an ordered content block attached to a specific page.
// PageID holds the page slug, validated against the page store on create.
type PageSection struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PageID   string  `gorm:"index;not null" json:"page_id"`
	Title    string  `gorm:"not null" json:"title"`
	Type     string  `gorm:"type:varchar(32);not null;default:'text'" json:"type"`
	Content  JSONMap `gorm:"type:jsonb" json:"content"`
	Order    int     `gorm:"default:0" json:"order"`
	IsActive bool    `gorm:"default:true" json:"is_active"`
	Styles   JSONMap `gorm:"type:jsonb" json:"styles"`
	Classes  string  `gorm:"default:''" json:"classes"`

	UpdatedByID uint      `json:"updated_by"`
	LastUpdated time.Time `json:"last_updated"`
}

// JSONMap stores opaque structured content as a jsonb column.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan JSONMap")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return err
	}

	*m = decoded
	return nil
}

type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	SignupCode      string `json:"signup_code" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

type CreateSectionRequest struct {
	Name        string  `json:"name" binding:"required"`
	DisplayName string  `json:"display_name" binding:"required"`
	Icon        string  `json:"icon"`
	Order       *int    `json:"order"`
	Content     JSONMap `json:"content"`
}

type UpdateSectionRequest struct {
	DisplayName *string  `json:"display_name"`
	Icon        *string  `json:"icon"`
	Order       *int     `json:"order"`
	IsActive    *bool    `json:"is_active"`
	Content     *JSONMap `json:"content"`
}

type CreatePageRequest struct {
	Name         string `json:"name" binding:"required"`
	TemplateType string `json:"template_type" binding:"required"`
	Title        string `json:"title"`
	Description  string `json:"description"`
}

type SavePageRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreatePageSectionRequest struct {
	Title   string  `json:"title" binding:"required"`
	Type    string  `json:"type" binding:"required,sectiontype"`
	Content JSONMap `json:"content"`
	Order   *int    `json:"order"`
	Styles  JSONMap `json:"styles"`
	Classes string  `json:"classes"`
}

type UpdatePageSectionRequest struct {
	Title    *string  `json:"title"`
	Content  *JSONMap `json:"content"`
	IsActive *bool    `json:"is_active"`
	Order    *int     `json:"order"`
	Styles   *JSONMap `json:"styles"`
	Classes  *string  `json:"classes"`
}

type ReorderRequest struct {
	SectionIDs []uint `json:"section_ids" binding:"required"`
}

// ReorderResult reports how a best-effort reorder batch went: ids that do not
// exist are skipped, not failed.
type ReorderResult struct {
	Applied    int    `json:"applied"`
	SkippedIDs []uint `json:"skipped_ids,omitempty"`
}

type PreviewSectionRequest struct {
	Title   string  `json:"title"`
	Type    string  `json:"type" binding:"required,sectiontype"`
	Content JSONMap `json:"content"`
	Classes string  `json:"classes"`
}

// PageInfo joins a page row with stat info from its backing file.
type PageInfo struct {
	Page         Page      `json:"page"`
	FileName     string    `json:"file_name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}
