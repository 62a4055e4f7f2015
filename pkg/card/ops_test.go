package card

import (
	"errors"
	"testing"
)

func TestAddSectionDefaults(t *testing.T) {
	cfg := Default()
	before := len(cfg.Sections)

	index := cfg.AddSection()
	if index != before {
		t.Fatalf("expected new section at index %d, got %d", before, index)
	}

	section := cfg.Sections[index]
	if section.ID == "" {
		t.Fatalf("expected generated section id")
	}
	if section.Layout != LayoutTallLeft {
		t.Fatalf("expected default layout %q, got %q", LayoutTallLeft, section.Layout)
	}
	if section.CatAnimation != AnimationNone {
		t.Fatalf("expected default animation %q, got %q", AnimationNone, section.CatAnimation)
	}
	if len(section.Images) != 0 {
		t.Fatalf("expected empty images, got %d", len(section.Images))
	}
}

func TestAddSectionIDsAreUnique(t *testing.T) {
	cfg := Default()
	seen := map[string]bool{}
	for _, section := range cfg.Sections {
		seen[section.ID] = true
	}
	for i := 0; i < 50; i++ {
		index := cfg.AddSection()
		id := cfg.Sections[index].ID
		if seen[id] {
			t.Fatalf("duplicate section id %q", id)
		}
		seen[id] = true
	}
}

func TestDeleteSectionPreservesOrder(t *testing.T) {
	cfg := Config{
		Intro: Intro{Title: "hi"},
		Sections: []Section{
			{ID: "a"}, {ID: "b"}, {ID: "c"},
		},
	}

	if err := cfg.DeleteSection(1); err != nil {
		t.Fatalf("delete section: %v", err)
	}
	if cfg.Sections[0].ID != "a" || cfg.Sections[1].ID != "c" {
		t.Fatalf("unexpected order after delete: %q, %q", cfg.Sections[0].ID, cfg.Sections[1].ID)
	}
}

func TestDeleteSectionRejectsLastRemaining(t *testing.T) {
	cfg := Config{
		Intro:    Intro{Title: "hi"},
		Sections: []Section{{ID: "a"}, {ID: "b"}},
	}

	if err := cfg.DeleteSection(0); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := cfg.DeleteSection(0); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	err := cfg.DeleteSection(0)
	if !errors.Is(err, ErrLastSection) {
		t.Fatalf("expected ErrLastSection, got %v", err)
	}
	if len(cfg.Sections) != 1 || cfg.Sections[0].ID != "b" {
		t.Fatalf("expected surviving section %q intact, got %+v", "b", cfg.Sections)
	}
}

func TestAddAndDeleteImage(t *testing.T) {
	cfg := Config{
		Intro:    Intro{Title: "hi"},
		Sections: []Section{{ID: "a", Images: []Image{{Src: "one.jpg"}}}},
	}

	index, err := cfg.AddImage(0)
	if err != nil {
		t.Fatalf("add image: %v", err)
	}
	if index != 1 {
		t.Fatalf("expected image index 1, got %d", index)
	}

	if err := cfg.DeleteImage(0, 0); err != nil {
		t.Fatalf("delete image: %v", err)
	}
	if len(cfg.Sections[0].Images) != 1 || cfg.Sections[0].Images[0].Src != "" {
		t.Fatalf("expected the empty image to survive, got %+v", cfg.Sections[0].Images)
	}

	if _, err := cfg.AddImage(5); err == nil {
		t.Fatalf("expected error for out-of-range section")
	}
	if err := cfg.DeleteImage(0, 9); err == nil {
		t.Fatalf("expected error for out-of-range image")
	}
}

func TestCloneIsDeep(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()

	clone.Sections[0].Title = "changed"
	clone.Sections[0].Images[0].Src = "changed.jpg"

	if cfg.Sections[0].Title == "changed" {
		t.Fatalf("clone shares section storage with the original")
	}
	if cfg.Sections[0].Images[0].Src == "changed.jpg" {
		t.Fatalf("clone shares image storage with the original")
	}
}
