package card

import (
	"strings"
	"testing"
)

func TestSetFieldIntroAndAudio(t *testing.T) {
	cfg := Default()

	if err := cfg.SetField("intro.title", "Season's Greetings"); err != nil {
		t.Fatalf("set intro.title: %v", err)
	}
	if cfg.Intro.Title != "Season's Greetings" {
		t.Fatalf("intro.title not applied: %q", cfg.Intro.Title)
	}

	if err := cfg.SetField("audio.volume", "0.75"); err != nil {
		t.Fatalf("set audio.volume: %v", err)
	}
	if cfg.Audio.Volume != 0.75 {
		t.Fatalf("audio.volume not applied: %v", cfg.Audio.Volume)
	}

	if err := cfg.SetField("audio.volume", "loud"); err == nil {
		t.Fatalf("expected error for non-numeric volume")
	}
}

func TestSetFieldClearsWithEmptyValue(t *testing.T) {
	cfg := Default()

	if err := cfg.SetField("sections.0.body", ""); err != nil {
		t.Fatalf("clear sections.0.body: %v", err)
	}
	if cfg.Sections[0].Body != "" {
		t.Fatalf("expected cleared body, got %q", cfg.Sections[0].Body)
	}
}

func TestSetFieldImageAddressing(t *testing.T) {
	cfg := Default()

	if err := cfg.SetField("sections.1.images.2.rotation", "cw-2"); err != nil {
		t.Fatalf("set rotation: %v", err)
	}
	if cfg.Sections[1].Images[2].Rotation != RotationCW2 {
		t.Fatalf("rotation not applied: %q", cfg.Sections[1].Images[2].Rotation)
	}

	if err := cfg.SetField("sections.1.images.2.span", "tall"); err != nil {
		t.Fatalf("set span: %v", err)
	}
	if cfg.Sections[1].Images[2].Span != SpanTall {
		t.Fatalf("span not applied: %q", cfg.Sections[1].Images[2].Span)
	}
}

func TestSetFieldAppendsAtListEnd(t *testing.T) {
	cfg := Config{
		Intro:    Intro{Title: "hi"},
		Sections: []Section{{ID: "a", Images: []Image{}}},
	}

	// Index equal to the current length creates the missing element.
	if err := cfg.SetField("sections.0.images.0.src", "new.jpg"); err != nil {
		t.Fatalf("append image via path: %v", err)
	}
	if len(cfg.Sections[0].Images) != 1 || cfg.Sections[0].Images[0].Src != "new.jpg" {
		t.Fatalf("expected appended image, got %+v", cfg.Sections[0].Images)
	}

	if err := cfg.SetField("sections.1.title", "Second"); err != nil {
		t.Fatalf("append section via path: %v", err)
	}
	if len(cfg.Sections) != 2 || cfg.Sections[1].Title != "Second" {
		t.Fatalf("expected appended section, got %+v", cfg.Sections)
	}
	if cfg.Sections[1].ID == "" {
		t.Fatalf("appended section should get a generated id")
	}
}

func TestSetFieldRejectsSparseIndexes(t *testing.T) {
	cfg := Default()

	err := cfg.SetField("sections.9.title", "nope")
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out-of-range error, got %v", err)
	}

	err = cfg.SetField("sections.0.images.9.src", "nope.jpg")
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
}

func TestSetFieldUnknownPaths(t *testing.T) {
	cfg := Default()

	cases := []string{
		"",
		"0.intro",
		"banner.title",
		"intro.unknown",
		"sections.title",
		"sections.0",
		"sections.0.images.0.unknown",
	}
	for _, path := range cases {
		if err := cfg.SetField(path, "x"); err == nil {
			t.Fatalf("expected error for path %q", path)
		}
	}
}
