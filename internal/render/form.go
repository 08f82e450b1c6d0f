package render

import (
	"fmt"
	"html/template"
	"strings"

	"attraction-cms-backend/internal/models"
)

// RegisterForm registers the default form block renderer.
func RegisterForm(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("form", renderForm)
}

func renderForm(ctx Context, section models.PageSection) (string, error) {
	content := contentMap(section)
	action, err := requireString(content, "action", "form")
	if err != nil {
		return "", err
	}

	method := strings.ToLower(strings.TrimSpace(getString(content, "method")))
	if method != "get" {
		method = "post"
	}

	submitLabel := strings.TrimSpace(getString(content, "submit_label"))
	if submitLabel == "" {
		submitLabel = "Submit"
	}

	var sb strings.Builder
	sb.WriteString(`<form class="dynamic-section__form" action="` + template.HTMLEscapeString(action) + `" method="` + method + `">`)

	for _, item := range getSlice(content, "fields") {
		field, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		name := strings.TrimSpace(getString(field, "name"))
		if name == "" {
			continue
		}
		label := getString(field, "label")
		fieldType := strings.TrimSpace(getString(field, "type"))
		if fieldType == "" {
			fieldType = "text"
		}

		fieldID := fmt.Sprintf("field-%d-%s", section.ID, name)
		sb.WriteString(`<div class="dynamic-section__form-field">`)
		if label != "" {
			sb.WriteString(`<label for="` + template.HTMLEscapeString(fieldID) + `">` + template.HTMLEscapeString(label) + `</label>`)
		}
		if fieldType == "textarea" {
			sb.WriteString(`<textarea id="` + template.HTMLEscapeString(fieldID) + `" name="` + template.HTMLEscapeString(name) + `"></textarea>`)
		} else {
			sb.WriteString(`<input id="` + template.HTMLEscapeString(fieldID) + `" type="` + template.HTMLEscapeString(fieldType) + `" name="` + template.HTMLEscapeString(name) + `" />`)
		}
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`<button type="submit" class="dynamic-section__form-submit">` + template.HTMLEscapeString(submitLabel) + `</button>`)
	sb.WriteString(`</form>`)

	return sb.String(), nil
}
