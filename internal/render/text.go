package render

import (
	"attraction-cms-backend/internal/models"
)

// RegisterText registers the default text block renderer.
func RegisterText(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("text", renderText)
}

func renderText(ctx Context, section models.PageSection) (string, error) {
	content := contentMap(section)
	text, err := requireString(content, "text", "text")
	if err != nil {
		return "", err
	}

	sanitized := ctx.SanitizeHTML(text)
	return `<div class="dynamic-section__text">` + sanitized + `</div>`, nil
}
