package render

import (
	"strings"
	"testing"

	"attraction-cms-backend/internal/models"

	"github.com/microcosm-cc/bluemonday"
)

type testContext struct {
	viewer Viewer
}

func (c *testContext) SanitizeHTML(input string) string {
	return bluemonday.UGCPolicy().Sanitize(input)
}

func (c *testContext) Viewer() Viewer {
	return c.viewer
}

func TestRenderTextBlock(t *testing.T) {
	reg := NewDefaultRegistry()
	section := models.PageSection{
		ID:    7,
		Type:  "text",
		Title: "About",
		Content: models.JSONMap{
			"text": "<p>The tallest tower in the world.</p>",
		},
	}

	html, err := reg.Render(&testContext{}, section)
	if err != nil {
		t.Fatalf("expected text block to render, got error: %v", err)
	}
	if !strings.Contains(html, `data-section-id="7"`) {
		t.Fatalf("fragment missing section id: %s", html)
	}
	if !strings.Contains(html, "The tallest tower in the world.") {
		t.Fatalf("fragment missing content: %s", html)
	}
	if !strings.Contains(html, `dynamic-section--text`) {
		t.Fatalf("fragment missing type modifier class: %s", html)
	}
}

func TestRenderTextBlockStripsScript(t *testing.T) {
	reg := NewDefaultRegistry()
	section := models.PageSection{
		ID:      1,
		Type:    "text",
		Content: models.JSONMap{"text": `<script>alert(1)</script><p>safe</p>`},
	}

	html, err := reg.Render(&testContext{}, section)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("script tag survived sanitizing: %s", html)
	}
	if !strings.Contains(html, "safe") {
		t.Fatalf("safe content was dropped: %s", html)
	}
}

func TestRenderMissingRequiredFieldFails(t *testing.T) {
	reg := NewDefaultRegistry()

	cases := []models.PageSection{
		{ID: 1, Type: "text", Content: models.JSONMap{}},
		{ID: 2, Type: "image", Content: models.JSONMap{"alt": "no url"}},
		{ID: 3, Type: "video", Content: models.JSONMap{}},
		{ID: 4, Type: "map", Content: models.JSONMap{"address": "somewhere"}},
		{ID: 5, Type: "gallery", Content: models.JSONMap{}},
		{ID: 6, Type: "form", Content: models.JSONMap{}},
	}

	for _, section := range cases {
		if _, err := reg.Render(&testContext{}, section); err == nil {
			t.Fatalf("expected render error for %s block with empty content", section.Type)
		}
	}
}

func TestRenderUnknownTypeFallsBack(t *testing.T) {
	reg := NewDefaultRegistry()
	section := models.PageSection{
		ID:      9,
		Type:    "custom",
		Title:   "Widget",
		Content: models.JSONMap{"anything": "goes"},
	}

	html, err := reg.Render(&testContext{}, section)
	if err != nil {
		t.Fatalf("fallback must not fail: %v", err)
	}
	if !strings.Contains(html, "Widget") {
		t.Fatalf("fallback missing title: %s", html)
	}
	if !strings.Contains(html, "anything") {
		t.Fatalf("fallback missing serialized content: %s", html)
	}
}

func TestRenderGalleryBlock(t *testing.T) {
	reg := NewDefaultRegistry()
	section := models.PageSection{
		ID:   3,
		Type: "gallery",
		Content: models.JSONMap{
			"layout": "carousel",
			"images": []interface{}{
				map[string]interface{}{"url": "/uploads/gallery/one.jpg", "alt": "One"},
				map[string]interface{}{"url": "/uploads/gallery/two.jpg", "caption": "Second"},
			},
		},
	}

	html, err := reg.Render(&testContext{}, section)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(html, "<figure") != 2 {
		t.Fatalf("expected 2 gallery items, got: %s", html)
	}
	if !strings.Contains(html, "dynamic-section__gallery--carousel") {
		t.Fatalf("layout modifier missing: %s", html)
	}
}

func TestWrapFragmentAppliesStylesAndClasses(t *testing.T) {
	reg := NewDefaultRegistry()
	section := models.PageSection{
		ID:      4,
		Type:    "text",
		Classes: "hero-wide",
		Styles:  models.JSONMap{"background-color": "#fff", "padding": "2rem"},
		Content: models.JSONMap{"text": "hello"},
	}

	html, err := reg.Render(&testContext{}, section)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "hero-wide") {
		t.Fatalf("custom class missing: %s", html)
	}
	if !strings.Contains(html, "background-color: #fff; padding: 2rem") {
		t.Fatalf("inline styles missing or unordered: %s", html)
	}
}

func TestErrorFragment(t *testing.T) {
	section := models.PageSection{ID: 12, Title: "Broken <b>block</b>"}
	fragment := ErrorFragment(section)

	if !strings.Contains(fragment, `data-section-id="12"`) {
		t.Fatalf("error fragment missing id: %s", fragment)
	}
	if !strings.Contains(fragment, "section-error") {
		t.Fatalf("error fragment missing class: %s", fragment)
	}
	if strings.Contains(fragment, "<b>") {
		t.Fatalf("error fragment title not escaped: %s", fragment)
	}
}
