// Package store persists shared cards under short opaque ids. Cards live for
// a fixed window and disappear on their own; the package offers the service
// core, storage backends, the HTTP surface and the matching client.
package store

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-cardgen/pkg/card"
)

const (
	// IDLength is the length of generated card ids.
	IDLength = 8
	// TTL is how long a shared card stays retrievable.
	TTL = 90 * 24 * time.Hour
	// MaxCardBytes is the largest serialized config the service accepts.
	MaxCardBytes = 10 << 20
)

var (
	// ErrNotFound means no live card exists under the id.
	ErrNotFound = errors.New("store: card not found")
	// ErrTooLarge means the serialized config exceeds MaxCardBytes.
	ErrTooLarge = errors.New("store: card too large")
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewID generates a short lowercase-alphanumeric card id.
func NewID() (string, error) {
	buf := make([]byte, IDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("store: generate id: %w", err)
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(buf), nil
}

// Backend is the raw keyed-blob layer beneath the service. Implementations
// must treat expired rows as absent.
type Backend interface {
	Put(ctx context.Context, id string, data []byte, expiresAt time.Time) error
	Get(ctx context.Context, id string) ([]byte, error)
}

// Service validates, sizes and times card persistence over a Backend.
type Service struct {
	backend Backend
	logger  *zap.Logger
	ttl     time.Duration
	max     int
	now     func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger routes service diagnostics to the given logger.
func WithLogger(logger *zap.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTTL overrides the retention window.
func WithTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithMaxBytes overrides the size ceiling.
func WithMaxBytes(max int) ServiceOption {
	return func(s *Service) {
		if max > 0 {
			s.max = max
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService builds a persistence service over the backend.
func NewService(backend Backend, options ...ServiceOption) *Service {
	s := &Service{
		backend: backend,
		logger:  zap.NewNop(),
		ttl:     TTL,
		max:     MaxCardBytes,
		now:     time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Save validates and stores one card, returning its fresh id. Invalid
// configs and oversized documents are refused.
func (s *Service) Save(ctx context.Context, cfg card.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	data, err := card.Export(cfg)
	if err != nil {
		return "", err
	}
	if len(data) > s.max {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, len(data), s.max)
	}

	id, err := NewID()
	if err != nil {
		return "", err
	}
	expiresAt := s.now().Add(s.ttl)
	if err := s.backend.Put(ctx, id, data, expiresAt); err != nil {
		return "", fmt.Errorf("store: save card: %w", err)
	}

	s.logger.Info("card saved",
		zap.String("id", id),
		zap.Int("bytes", len(data)),
		zap.Time("expires_at", expiresAt))
	return id, nil
}

// Load retrieves a live card by id. Expired and unknown ids both come back
// as ErrNotFound; the document is validated before it is returned.
func (s *Service) Load(ctx context.Context, id string) (card.Config, error) {
	data, err := s.backend.Get(ctx, id)
	if err != nil {
		return card.Config{}, err
	}
	cfg, err := card.Import(data)
	if err != nil {
		return card.Config{}, fmt.Errorf("store: stored card is corrupt: %w", err)
	}
	return cfg, nil
}
