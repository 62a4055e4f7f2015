package cardgen_test

import (
	"context"
	"strings"
	"testing"

	cardgen "github.com/goliatone/go-cardgen"
	"github.com/google/go-cmp/cmp"
)

func TestRenderHTMLDefaultConfig(t *testing.T) {
	html, err := cardgen.RenderHTML(context.Background(), cardgen.Default(),
		cardgen.WithDocument(true),
		cardgen.WithAssetBase("/static"),
	)
	if err != nil {
		t.Fatalf("RenderHTML() error: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Fatalf("expected a full document:\n%.200s", out)
	}
	if !strings.Contains(out, `id="intro-overlay"`) {
		t.Fatalf("intro overlay missing:\n%.200s", out)
	}
	if !strings.Contains(out, `href="/static/`) {
		t.Fatalf("asset base not applied:\n%.200s", out)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	cfg := cardgen.Default()

	data, err := cardgen.Export(cfg)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	back, err := cardgen.Import(data)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if diff := cmp.Diff(cfg.Clone(), back); diff != "" {
		t.Fatalf("round trip mismatch (-exported +imported):\n%s", diff)
	}
}

func TestNewRegistryHasBuiltins(t *testing.T) {
	registry, err := cardgen.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	names := registry.Names()
	if diff := cmp.Diff([]string{"builderform", "cardhtml"}, names); diff != "" {
		t.Fatalf("names mismatch (-expected +got):\n%s", diff)
	}
	if _, err := registry.Get("cardhtml"); err != nil {
		t.Fatalf("Get(cardhtml) error: %v", err)
	}
}
