package render

import (
	"html/template"
	"strings"

	"attraction-cms-backend/internal/models"
)

// RegisterVideo registers the default video block renderer.
func RegisterVideo(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("video", renderVideo)
}

func renderVideo(ctx Context, section models.PageSection) (string, error) {
	content := contentMap(section)
	url, err := requireString(content, "url", "video")
	if err != nil {
		return "", err
	}

	poster := strings.TrimSpace(getString(content, "poster"))
	caption := strings.TrimSpace(getString(content, "caption"))

	var sb strings.Builder
	sb.WriteString(`<figure class="dynamic-section__video">`)
	sb.WriteString(`<video class="dynamic-section__video-player" controls src="` + template.HTMLEscapeString(url) + `"`)
	if poster != "" {
		sb.WriteString(` poster="` + template.HTMLEscapeString(poster) + `"`)
	}
	sb.WriteString(`></video>`)
	if caption != "" {
		sb.WriteString(`<figcaption class="dynamic-section__video-caption">` + ctx.SanitizeHTML(caption) + `</figcaption>`)
	}
	sb.WriteString(`</figure>`)

	return sb.String(), nil
}
