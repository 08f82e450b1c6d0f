package render

import (
	"fmt"
	"html/template"
	"strings"

	"attraction-cms-backend/internal/models"
)

// RegisterGallery registers the default gallery block renderer.
func RegisterGallery(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("gallery", renderGallery)
}

func renderGallery(ctx Context, section models.PageSection) (string, error) {
	content := contentMap(section)
	images := getSlice(content, "images")
	if images == nil {
		return "", fmt.Errorf("gallery section content is missing %q", "images")
	}

	layout := strings.TrimSpace(getString(content, "layout"))
	if layout == "" {
		layout = "grid"
	}

	var sb strings.Builder
	sb.WriteString(`<div class="dynamic-section__gallery dynamic-section__gallery--` + template.HTMLEscapeString(layout) + `">`)

	for _, item := range images {
		img, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		url := strings.TrimSpace(getString(img, "url"))
		if url == "" {
			continue
		}
		alt := getString(img, "alt")
		caption := strings.TrimSpace(getString(img, "caption"))

		sb.WriteString(`<figure class="dynamic-section__gallery-item">`)
		sb.WriteString(`<img class="dynamic-section__gallery-img" src="` + template.HTMLEscapeString(url) + `" alt="` + template.HTMLEscapeString(alt) + `" />`)
		if caption != "" {
			sb.WriteString(`<figcaption class="dynamic-section__gallery-caption">` + ctx.SanitizeHTML(caption) + `</figcaption>`)
		}
		sb.WriteString(`</figure>`)
	}

	sb.WriteString(`</div>`)
	return sb.String(), nil
}
