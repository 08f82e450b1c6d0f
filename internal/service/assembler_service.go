package service

import (
	"fmt"
	"strings"

	"attraction-cms-backend/internal/constants"
	"attraction-cms-backend/internal/models"
	"attraction-cms-backend/internal/render"
	"attraction-cms-backend/pkg/logger"
	"attraction-cms-backend/pkg/validator"
)

// AssemblerService produces the final HTML of a page by splicing its rendered
// section blocks into the backing file at the placeholder marker. Assembly is
// a read-time projection; the backing file is never rewritten with rendered
// content.
type AssemblerService struct {
	pages    *PageService
	sections *PageSectionService
	registry *render.Registry
}

func NewAssemblerService(pages *PageService, sections *PageSectionService, registry *render.Registry) *AssemblerService {
	return &AssemblerService{
		pages:    pages,
		sections: sections,
		registry: registry,
	}
}

type renderContext struct {
	viewer render.Viewer
}

func (c *renderContext) SanitizeHTML(input string) string {
	return validator.SanitizeHTML(input)
}

func (c *renderContext) Viewer() render.Viewer {
	return c.viewer
}

// Assemble renders every active block of a page in order and splices the
// result into the page HTML. A block that fails to render is replaced by an
// inline error fragment; one broken block never takes down the page.
func (s *AssemblerService) Assemble(slug string, viewer render.Viewer) (string, error) {
	page, data, err := s.pages.ReadHTML(slug)
	if err != nil {
		return "", err
	}

	blocks, err := s.sections.ListActive(page.Slug)
	if err != nil {
		return "", fmt.Errorf("failed to load sections for page %s: %w", page.Slug, err)
	}

	html := ensurePlaceholder(string(data))

	ctx := &renderContext{viewer: viewer}
	fragments := make([]string, 0, len(blocks))
	for _, block := range blocks {
		fragment, err := s.registry.Render(ctx, block)
		if err != nil {
			logger.Warn("Section render failed", map[string]interface{}{
				"page_id":    page.Slug,
				"section_id": block.ID,
				"type":       block.Type,
				"error":      err.Error(),
			})
			fragment = render.ErrorFragment(block)
		}
		fragments = append(fragments, fragment)
	}

	return strings.Replace(html, constants.SectionPlaceholder, strings.Join(fragments, "\n"), 1), nil
}

// Preview renders a single transient block without persisting anything.
func (s *AssemblerService) Preview(req models.PreviewSectionRequest, viewer render.Viewer) (string, error) {
	block := models.PageSection{
		Title:   req.Title,
		Type:    strings.ToLower(strings.TrimSpace(req.Type)),
		Content: req.Content,
		Classes: req.Classes,
	}

	ctx := &renderContext{viewer: viewer}
	fragment, err := s.registry.Render(ctx, block)
	if err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return fragment, nil
}

// ensurePlaceholder guarantees exactly one splice point: an existing marker is
// left alone, otherwise one is inserted just before the closing body tag, or
// appended when no body tag exists.
func ensurePlaceholder(html string) string {
	if strings.Contains(html, constants.SectionPlaceholder) {
		return html
	}

	if idx := strings.LastIndex(html, "</body>"); idx >= 0 {
		return html[:idx] + constants.SectionPlaceholder + "\n" + html[idx:]
	}
	return html + "\n" + constants.SectionPlaceholder
}
