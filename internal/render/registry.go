package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"attraction-cms-backend/internal/models"
)

// Context exposes the capabilities renderers need. The viewer is the acting
// user, available for conditional presentation such as edit affordances.
type Context interface {
	// SanitizeHTML cleans potentially unsafe markup before rendering.
	SanitizeHTML(input string) string
	Viewer() Viewer
}

type Viewer struct {
	ID   uint
	Name string
	Role string
}

// Renderer produces an HTML fragment for one content block. A non-nil error
// means the block's content cannot be rendered by its template; callers
// decide whether that is isolated (page assembly) or surfaced (preview).
type Renderer func(ctx Context, section models.PageSection) (string, error)

// Registry maps normalised block types to renderers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// NewDefaultRegistry returns a registry with every built-in block renderer
// registered.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterText(reg)
	RegisterImage(reg)
	RegisterGallery(reg)
	RegisterVideo(reg)
	RegisterForm(reg)
	RegisterMap(reg)
	return reg
}

func (r *Registry) Register(sectionType string, renderer Renderer) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}

	sectionType = strings.TrimSpace(strings.ToLower(sectionType))
	if sectionType == "" {
		return fmt.Errorf("section type is empty")
	}
	if renderer == nil {
		return fmt.Errorf("renderer is nil for type %s", sectionType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.renderers == nil {
		r.renderers = make(map[string]Renderer)
	}
	r.renderers[sectionType] = renderer
	return nil
}

func (r *Registry) MustRegister(sectionType string, renderer Renderer) {
	if err := r.Register(sectionType, renderer); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(sectionType string) (Renderer, bool) {
	if r == nil {
		return nil, false
	}

	sectionType = strings.TrimSpace(strings.ToLower(sectionType))

	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[sectionType]
	return renderer, ok
}

// Render dispatches a block to its registered renderer. Unknown and custom
// types fall back to a generic fragment so every block stays representable.
func (r *Registry) Render(ctx Context, section models.PageSection) (string, error) {
	renderer, ok := r.Get(section.Type)
	if !ok {
		return renderFallback(ctx, section)
	}

	html, err := renderer(ctx, section)
	if err != nil {
		return "", err
	}
	return wrapFragment(section, html), nil
}

// renderFallback emits the section title plus its serialized content.
func renderFallback(ctx Context, section models.PageSection) (string, error) {
	serialized, err := json.Marshal(map[string]interface{}(section.Content))
	if err != nil {
		return "", fmt.Errorf("failed to serialize section content: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`<div class="dynamic-section__fallback">`)
	sb.WriteString(template.HTMLEscapeString(string(serialized)))
	sb.WriteString(`</div>`)

	return wrapFragment(section, sb.String()), nil
}

// wrapFragment surrounds rendered block content with the common section
// envelope carrying the block id, type modifier and editor-assigned classes.
func wrapFragment(section models.PageSection, inner string) string {
	sectionType := strings.TrimSpace(strings.ToLower(section.Type))
	if sectionType == "" {
		sectionType = "custom"
	}

	classes := []string{"dynamic-section", "dynamic-section--" + sectionType}
	if extra := strings.TrimSpace(section.Classes); extra != "" {
		classes = append(classes, extra)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<section data-section-id="%d" class="%s"`, section.ID, template.HTMLEscapeString(strings.Join(classes, " "))))
	if style := inlineStyles(section.Styles); style != "" {
		sb.WriteString(` style="` + template.HTMLEscapeString(style) + `"`)
	}
	sb.WriteString(`>`)

	if title := strings.TrimSpace(section.Title); title != "" {
		sb.WriteString(`<h2 class="dynamic-section__title">` + template.HTMLEscapeString(title) + `</h2>`)
	}

	sb.WriteString(inner)
	sb.WriteString(`</section>`)
	return sb.String()
}

// ErrorFragment is the degraded stand-in for a block whose renderer failed
// during page assembly.
func ErrorFragment(section models.PageSection) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<div data-section-id="%d" class="section-error">`, section.ID))
	sb.WriteString(`<h2>` + template.HTMLEscapeString(section.Title) + `</h2>`)
	sb.WriteString(`<div>Error rendering section</div>`)
	sb.WriteString(`</div>`)
	return sb.String()
}
