package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"attraction-cms-backend/internal/constants"
	"attraction-cms-backend/internal/models"
)

func newPageFixture(t *testing.T) (*PageService, *fakePageRepo, *fakePageSectionRepo, string) {
	t.Helper()
	pageRepo := newFakePageRepo()
	sectionRepo := newFakePageSectionRepo()
	dir := t.TempDir()
	return NewPageService(pageRepo, sectionRepo, nil, dir), pageRepo, sectionRepo, dir
}

func TestPageCreateFromTemplate(t *testing.T) {
	svc, _, _, dir := newPageFixture(t)

	page, err := svc.CreateFromTemplate(models.CreatePageRequest{
		Name:         "Burj Khalifa",
		TemplateType: "attraction",
		Description:  "The tallest tower",
	}, 1)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if page.Slug != "burj-khalifa" {
		t.Fatalf("expected slug burj-khalifa, got %s", page.Slug)
	}
	if page.Title != "Burj Khalifa" {
		t.Fatalf("title should default to the name, got %s", page.Title)
	}
	if page.IsPublished {
		t.Fatal("new pages must start unpublished")
	}

	data, err := os.ReadFile(filepath.Join(dir, "burj-khalifa.html"))
	if err != nil {
		t.Fatalf("backing file not written: %v", err)
	}
	if !strings.Contains(string(data), constants.SectionPlaceholder) {
		t.Fatal("template skeleton must carry the section placeholder")
	}
}

func TestPageCreateRejectsDuplicateSlug(t *testing.T) {
	svc, _, _, _ := newPageFixture(t)

	if _, err := svc.CreateFromTemplate(models.CreatePageRequest{Name: "Dubai Fountain", TemplateType: "attraction"}, 1); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateFromTemplate(models.CreatePageRequest{Name: "Dubai Fountain!", TemplateType: "event"}, 1); !errors.Is(err, ErrPageExists) {
		t.Fatalf("expected ErrPageExists, got %v", err)
	}
}

func TestPageCreateRejectsUnknownTemplate(t *testing.T) {
	svc, _, _, _ := newPageFixture(t)

	if _, err := svc.CreateFromTemplate(models.CreatePageRequest{Name: "X", TemplateType: "spaceship"}, 1); !errors.Is(err, ErrInvalidTemplateType) {
		t.Fatalf("expected ErrInvalidTemplateType, got %v", err)
	}
}

func TestPageCreateRejectsExistingFile(t *testing.T) {
	svc, _, _, dir := newPageFixture(t)

	if err := os.WriteFile(filepath.Join(dir, "old-page.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatalf("failed to plant file: %v", err)
	}
	if _, err := svc.CreateFromTemplate(models.CreatePageRequest{Name: "Old Page", TemplateType: "attraction"}, 1); !errors.Is(err, ErrPageExists) {
		t.Fatalf("a pre-existing file must block creation, got %v", err)
	}
}

func TestPageSaveHTMLRoundTrips(t *testing.T) {
	svc, _, _, _ := newPageFixture(t)

	if _, err := svc.CreateFromTemplate(models.CreatePageRequest{Name: "Aquarium", TemplateType: "attraction"}, 1); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	markup := "<html><body><h1>Custom</h1></body></html>"
	if _, err := svc.SaveHTML("aquarium", markup, 2); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	page, data, err := svc.ReadHTML("aquarium")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != markup {
		t.Fatalf("file content mismatch: %s", data)
	}
	if page.UpdatedByID != 2 {
		t.Fatalf("save must stamp the acting user, got %d", page.UpdatedByID)
	}
}

func TestPageReadHTMLMissingFile(t *testing.T) {
	svc, _, _, dir := newPageFixture(t)

	if _, err := svc.CreateFromTemplate(models.CreatePageRequest{Name: "Ghost", TemplateType: "attraction"}, 1); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "ghost.html")); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}

	if _, _, err := svc.ReadHTML("ghost"); !errors.Is(err, ErrPageFileNotFound) {
		t.Fatalf("expected ErrPageFileNotFound, got %v", err)
	}
}

func TestPageDeleteRemovesFileAndSections(t *testing.T) {
	svc, _, sectionRepo, dir := newPageFixture(t)

	if _, err := svc.CreateFromTemplate(models.CreatePageRequest{Name: "Doomed", TemplateType: "attraction"}, 1); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := sectionRepo.Create(&models.PageSection{PageID: "doomed", Title: "Intro", Type: "text", IsActive: true}); err != nil {
		t.Fatalf("failed to seed section: %v", err)
	}

	if err := svc.Delete("doomed"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.GetBySlug("doomed"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "doomed.html")); !os.IsNotExist(err) {
		t.Fatal("backing file must be removed with the page")
	}
	remaining, _ := sectionRepo.GetByPageID("doomed")
	if len(remaining) != 0 {
		t.Fatalf("page sections must be cascaded, %d left", len(remaining))
	}
}

func TestPagePublishToggle(t *testing.T) {
	svc, _, _, _ := newPageFixture(t)

	if _, err := svc.CreateFromTemplate(models.CreatePageRequest{Name: "Toggle", TemplateType: "hotel"}, 1); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	page, err := svc.SetPublished("toggle", true, 1)
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if !page.IsPublished {
		t.Fatal("page should be published")
	}

	page, err = svc.SetPublished("toggle", false, 1)
	if err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	if page.IsPublished {
		t.Fatal("page should be unpublished")
	}
}
