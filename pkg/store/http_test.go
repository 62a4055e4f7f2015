package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cardgen/pkg/card"
)

func newTestServer(t *testing.T, options ...ServiceOption) *httptest.Server {
	t.Helper()
	handler := NewHandler(NewService(NewMemoryBackend(), options...))
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func postCard(t *testing.T, server *httptest.Server, body []byte) *http.Response {
	t.Helper()
	resp, err := http.Post(server.URL+CardPath, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	return payload.Error
}

func TestHandlerSaveAndLoad(t *testing.T) {
	server := newTestServer(t)

	data, err := card.Export(testCard())
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	resp := postCard(t, server, data)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST status = %d", resp.StatusCode)
	}
	var saved struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if len(saved.ID) != IDLength {
		t.Fatalf("id %q has length %d", saved.ID, len(saved.ID))
	}

	get, err := http.Get(server.URL + CardPath + "?id=" + saved.ID)
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer get.Body.Close()
	if get.StatusCode != http.StatusOK {
		t.Fatalf("GET status = %d", get.StatusCode)
	}
	var loaded card.Config
	if err := json.NewDecoder(get.Body).Decode(&loaded); err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if loaded.Intro.Title != "Season's Greetings" {
		t.Fatalf("loaded title = %q", loaded.Intro.Title)
	}
}

func TestHandlerSaveInvalidConfig(t *testing.T) {
	server := newTestServer(t)

	resp := postCard(t, server, []byte(`{"sections": []}`))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", resp.StatusCode)
	}
}

func TestHandlerSaveEmptyBody(t *testing.T) {
	server := newTestServer(t)

	resp := postCard(t, server, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", resp.StatusCode)
	}
	if got := decodeError(t, resp); got != "Missing config" {
		t.Fatalf("error = %q", got)
	}
}

func TestHandlerSaveTooLarge(t *testing.T) {
	server := newTestServer(t, WithMaxBytes(256))

	cfg := testCard()
	cfg.Sections[0].Body = strings.Repeat("x", 512)
	data, err := card.Export(cfg)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	resp := postCard(t, server, data)
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, expected 413", resp.StatusCode)
	}
	if got := decodeError(t, resp); got != "Card too large" {
		t.Fatalf("error = %q", got)
	}
}

func TestHandlerLoadMissingID(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + CardPath)
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", resp.StatusCode)
	}
	if got := decodeError(t, resp); got != "Missing id" {
		t.Fatalf("error = %q", got)
	}
}

func TestHandlerLoadUnknownID(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + CardPath + "?id=zzzzzzzz")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, expected 404", resp.StatusCode)
	}
	if got := decodeError(t, resp); got != "Card not found" {
		t.Fatalf("error = %q", got)
	}
}

func TestHandlerMethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, server.URL+CardPath, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, expected 405", resp.StatusCode)
	}
}

func TestHandlerPreflight(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+CardPath, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, expected 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("CORS origin = %q", got)
	}
}

func TestClientRoundTrip(t *testing.T) {
	server := newTestServer(t)
	client := NewClient(server.URL)
	ctx := context.Background()

	id, err := client.Save(ctx, testCard())
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := client.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(testCard().Clone(), loaded); diff != "" {
		t.Fatalf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestClientLoadNotFound(t *testing.T) {
	server := newTestServer(t)
	client := NewClient(server.URL)

	if _, err := client.Load(context.Background(), "zzzzzzzz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, expected ErrNotFound", err)
	}
}

func TestClientSaveTooLarge(t *testing.T) {
	server := newTestServer(t, WithMaxBytes(256))
	client := NewClient(server.URL)

	cfg := testCard()
	cfg.Sections[0].Body = strings.Repeat("x", 512)

	if _, err := client.Save(context.Background(), cfg); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("error = %v, expected ErrTooLarge", err)
	}
}
