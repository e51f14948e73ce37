package api

import (
	"github.com/microcosm-cc/bluemonday"
)

// newPreviewPolicy allows the inline formats of rendered notes plus the class
// attributes used by bullet and checkbox markers.
func newPreviewPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// keep class attributes on marker spans for styling
	p.AllowAttrs("class").OnElements("span")
	return p
}

// renderPreview renders markup with the engine and sanitizes the result once more
// before it leaves the service.
func (s *Service) renderPreview(markup string) string {
	return s.policy.Sanitize(s.engine.RenderPreview(markup))
}
