package render

import (
	"html/template"
	"strings"

	"attraction-cms-backend/internal/models"
)

// RegisterMap registers the default map block renderer. The block embeds an
// iframe pointing at an external map provider.
func RegisterMap(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("map", renderMap)
}

func renderMap(ctx Context, section models.PageSection) (string, error) {
	content := contentMap(section)
	embedURL, err := requireString(content, "embed_url", "map")
	if err != nil {
		return "", err
	}

	address := strings.TrimSpace(getString(content, "address"))

	var sb strings.Builder
	sb.WriteString(`<div class="dynamic-section__map">`)
	sb.WriteString(`<iframe class="dynamic-section__map-frame" src="` + template.HTMLEscapeString(embedURL) + `" loading="lazy" allowfullscreen></iframe>`)
	if address != "" {
		sb.WriteString(`<p class="dynamic-section__map-address">` + template.HTMLEscapeString(address) + `</p>`)
	}
	sb.WriteString(`</div>`)

	return sb.String(), nil
}
