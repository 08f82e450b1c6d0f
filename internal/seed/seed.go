package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"attraction-cms-backend/internal/models"
	"attraction-cms-backend/internal/repository"
	"attraction-cms-backend/pkg/logger"
)

//go:embed sections.json
var sectionsJSON []byte

type seedSection struct {
	Name        string         `json:"name"`
	DisplayName string         `json:"display_name"`
	Icon        string         `json:"icon"`
	Order       int            `json:"order"`
	Content     models.JSONMap `json:"content"`
}

// Sections inserts the default site sections that are missing, matched by
// name. Existing sections are never touched, so edits survive restarts.
func Sections(repo repository.SectionRepository) error {
	var defaults []seedSection
	if err := json.Unmarshal(sectionsJSON, &defaults); err != nil {
		return fmt.Errorf("failed to parse section seed data: %w", err)
	}

	created := 0
	for _, def := range defaults {
		exists, err := repo.ExistsByName(def.Name)
		if err != nil {
			return fmt.Errorf("failed to check section %s: %w", def.Name, err)
		}
		if exists {
			continue
		}

		section := &models.Section{
			Name:        def.Name,
			DisplayName: def.DisplayName,
			Icon:        def.Icon,
			Order:       def.Order,
			IsActive:    true,
			Content:     def.Content,
			LastUpdated: time.Now().UTC(),
		}
		if err := repo.Create(section); err != nil {
			return fmt.Errorf("failed to seed section %s: %w", def.Name, err)
		}
		created++
	}

	if created > 0 {
		logger.Info("Seeded default sections", map[string]interface{}{"created": created})
	}
	return nil
}
