package cardhtml

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ornamentPolicyOnce sync.Once
	ornamentPolicy     *bluemonday.Policy
)

// sanitizeOrnament reduces authored intro decoration to a safe inline SVG
// subset. Anything outside the allow list is stripped, so a hostile ornament
// degrades to empty rather than active markup.
func sanitizeOrnament(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(ornamentSanitizer().Sanitize(trimmed))
}

func ornamentSanitizer() *bluemonday.Policy {
	ornamentPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("svg", "g", "path", "circle", "rect", "line", "polyline", "polygon", "ellipse", "title")

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin",
			"aria-hidden", "role", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class",
			).OnElements(el)
		}
		policy.AllowAttrs("id").OnElements("g")

		ornamentPolicy = policy
	})
	return ornamentPolicy
}
