package store

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-cardgen/pkg/card"
)

// CardPath is the route the handler serves.
const CardPath = "/api/card"

// Handler exposes the persistence service over HTTP: POST saves a config
// body and returns its id, GET retrieves a config by id. Responses carry
// permissive CORS headers so the builder can run from any origin.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHandlerLogger routes request diagnostics to the given logger.
func WithHandlerLogger(logger *zap.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler builds the HTTP surface over a service.
func NewHandler(service *Service, options ...HandlerOption) *Handler {
	h := &Handler{service: service, logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
	case http.MethodPost:
		h.save(w, r)
	case http.MethodGet:
		h.load(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxCardBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read request body")
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "Missing config")
		return
	}
	if len(body) > MaxCardBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "Card too large")
		return
	}

	cfg, err := card.Import(body)
	if err != nil {
		h.logger.Warn("rejecting invalid card", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid card config")
		return
	}

	id, err := h.service.Save(r.Context(), cfg)
	if err != nil {
		if errors.Is(err, ErrTooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Card too large")
			return
		}
		h.logger.Error("save failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not save card")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing id")
		return
	}

	cfg, err := h.service.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "Card not found")
			return
		}
		h.logger.Error("load failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not load card")
		return
	}

	data, err := card.Export(cfg)
	if err != nil {
		h.logger.Error("export failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not load card")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
