// Package template defines the renderer-agnostic template seam. Renderers
// depend on TemplateRenderer so the engine can be swapped or stubbed in tests.
package template
