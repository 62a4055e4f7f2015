package cardhtml

import (
	"strings"

	"github.com/goliatone/go-cardgen/pkg/card"
)

// AutoSpan resolves the spanning treatment a layout grants to the image at a
// 0-based position, independent of anything authored on the image itself:
//
//	hero-top    position 0 spans both columns
//	hero-bottom position 2 spans both columns
//	tall-left   position 0 spans both rows
//	tall-right  position 2 spans both rows
//
// Every other layout grants nothing.
func AutoSpan(layout card.Layout, index int) card.Span {
	switch layout {
	case card.LayoutHeroTop:
		if index == 0 {
			return card.SpanHero
		}
	case card.LayoutHeroBottom:
		if index == 2 {
			return card.SpanHero
		}
	case card.LayoutTallLeft:
		if index == 0 {
			return card.SpanTall
		}
	case card.LayoutTallRight:
		if index == 2 {
			return card.SpanTall
		}
	}
	return ""
}

// wrapperClasses assembles the class list for one scrapbook photo wrapper.
// The automatic span and any explicit span are additive markers: an explicit
// span never removes what the layout granted.
func wrapperClasses(layout card.Layout, index int, img card.Image) string {
	classes := []string{string(ClassPhotoWrapper)}
	auto := AutoSpan(layout, index)
	if auto != "" {
		classes = append(classes, string(auto))
	}
	if img.Span != "" && img.Span != auto {
		classes = append(classes, string(img.Span))
	}
	return strings.Join(classes, " ")
}

// photoClasses assembles the class list for the photo element itself.
func photoClasses(img card.Image) string {
	classes := []string{string(ClassScrapbookPhoto)}
	if img.Rotation != "" {
		classes = append(classes, "rotate-"+string(img.Rotation))
	}
	return strings.Join(classes, " ")
}

// layoutClass maps a layout id to its scrapbook container class. Unrecognized
// layouts degrade to no special layout class.
func layoutClass(layout card.Layout) string {
	if layout == "" || !card.KnownLayout(layout) {
		return ""
	}
	return "layout-" + string(layout)
}
