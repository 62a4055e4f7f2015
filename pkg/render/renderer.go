package render

import (
	"context"

	"github.com/goliatone/go-cardgen/pkg/card"
)

// Renderer converts a card config into a byte representation (a full HTML
// page, a body fragment, a form column, etc.). Implementations must be pure
// with respect to the config: the same input and options always produce the
// same output.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, cfg card.Config, options Options) ([]byte, error)
}
