package render

import (
	"html/template"
	"strings"

	"attraction-cms-backend/internal/models"
)

// RegisterImage registers the default image block renderer.
func RegisterImage(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("image", renderImage)
}

func renderImage(ctx Context, section models.PageSection) (string, error) {
	content := contentMap(section)
	url, err := requireString(content, "url", "image")
	if err != nil {
		return "", err
	}

	alt := getString(content, "alt")
	caption := strings.TrimSpace(getString(content, "caption"))

	var sb strings.Builder
	sb.WriteString(`<figure class="dynamic-section__image">`)
	sb.WriteString(`<img class="dynamic-section__image-img" src="` + template.HTMLEscapeString(url) + `" alt="` + template.HTMLEscapeString(alt) + `" />`)
	if caption != "" {
		sb.WriteString(`<figcaption class="dynamic-section__image-caption">` + ctx.SanitizeHTML(caption) + `</figcaption>`)
	}
	sb.WriteString(`</figure>`)

	return sb.String(), nil
}
