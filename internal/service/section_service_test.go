package service

import (
	"errors"
	"testing"

	"attraction-cms-backend/internal/models"
)

func TestSectionCreateSlugifiesName(t *testing.T) {
	svc := NewSectionService(newFakeSectionRepo(), nil)

	section, err := svc.Create(models.CreateSectionRequest{Name: "Visitor Info!", DisplayName: "Visitor Info"}, 1)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if section.Name != "visitor-info" {
		t.Fatalf("expected slugified name visitor-info, got %s", section.Name)
	}
	if section.Icon != "fas fa-edit" {
		t.Fatalf("expected default icon, got %s", section.Icon)
	}
	if !section.IsActive {
		t.Fatal("new sections must start active")
	}
}

func TestSectionCreateRejectsDuplicateName(t *testing.T) {
	svc := NewSectionService(newFakeSectionRepo(), nil)

	if _, err := svc.Create(models.CreateSectionRequest{Name: "Hero", DisplayName: "Hero"}, 1); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(models.CreateSectionRequest{Name: "hero", DisplayName: "Hero Again"}, 1); !errors.Is(err, ErrSectionExists) {
		t.Fatalf("expected ErrSectionExists, got %v", err)
	}
}

func TestSectionReorder(t *testing.T) {
	repo := newFakeSectionRepo()
	svc := NewSectionService(repo, nil)

	hero, _ := svc.Create(models.CreateSectionRequest{Name: "hero", DisplayName: "Hero"}, 1)
	about, _ := svc.Create(models.CreateSectionRequest{Name: "about", DisplayName: "About"}, 1)
	faq, _ := svc.Create(models.CreateSectionRequest{Name: "faq", DisplayName: "FAQ"}, 1)

	result, err := svc.Reorder([]uint{faq.ID, hero.ID, about.ID}, 7)
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	if result.Applied != 3 || len(result.SkippedIDs) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	sections, _ := svc.GetAll()
	want := []string{"faq", "hero", "about"}
	for i, name := range want {
		if sections[i].Name != name {
			t.Fatalf("position %d: want %s, got %s", i, name, sections[i].Name)
		}
		if sections[i].UpdatedByID != 7 {
			t.Fatalf("reorder must stamp the acting user, got %d", sections[i].UpdatedByID)
		}
	}
}

func TestSectionUpdateKeepsOmittedFields(t *testing.T) {
	svc := NewSectionService(newFakeSectionRepo(), nil)

	created, _ := svc.Create(models.CreateSectionRequest{
		Name:        "tickets",
		DisplayName: "Tickets",
		Content:     models.JSONMap{"heading": "Tickets"},
	}, 1)

	inactive := false
	updated, err := svc.Update(created.ID, models.UpdateSectionRequest{IsActive: &inactive}, 2)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.IsActive {
		t.Fatal("section should be inactive")
	}
	if updated.DisplayName != "Tickets" || updated.Content["heading"] != "Tickets" {
		t.Fatalf("omitted fields changed: %+v", updated)
	}

	if _, err := svc.GetActiveByName("tickets"); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("inactive section must be invisible by name, got %v", err)
	}
}

func TestSectionAttachImage(t *testing.T) {
	svc := NewSectionService(newFakeSectionRepo(), nil)

	created, _ := svc.Create(models.CreateSectionRequest{Name: "gallery", DisplayName: "Gallery"}, 1)

	section, err := svc.AttachImage(created.ID, models.JSONMap{"url": "/uploads/gallery1.jpg"}, 1)
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	section, err = svc.AttachImage(section.ID, models.JSONMap{"url": "/uploads/gallery2.jpg"}, 1)
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	images, ok := section.Content["images"].([]interface{})
	if !ok || len(images) != 2 {
		t.Fatalf("expected 2 attached images, got %v", section.Content["images"])
	}
}
