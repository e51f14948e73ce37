package notetext

// Engine converts note markup into editable blocks and rendered previews.
//
// An Engine carries no mutable state: the only field is the injected URLGuard,
// so a single Engine can be shared by any number of goroutines.
type Engine struct {
	guard URLGuard
}

// Option configures an Engine created by New.
type Option func(e *Engine)

// WithURLGuard replaces the default DenyListGuard. Passing nil makes the Engine
// fall back to an inline check which rejects only "javascript:" and "data:".
func WithURLGuard(g URLGuard) Option {
	return func(e *Engine) {
		e.guard = g
	}
}

// New creates an Engine guarded by DenyListGuard unless configured otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{guard: DenyListGuard{}}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) sanitizeURL(candidate string) string {
	if e.guard == nil {
		return denyScriptAndData(candidate, FallbackURL)
	}
	return e.guard.SanitizeURL(candidate, FallbackURL)
}

// defaultEngine backs the package-level helpers. It is never modified after init.
var defaultEngine = New()

// FormatInline formats a single line with the default Engine.
func FormatInline(raw string) string {
	return defaultEngine.FormatInline(raw)
}

// ParseForEditor parses markup with the default Engine.
func ParseForEditor(markup string) []Block {
	return defaultEngine.ParseForEditor(markup)
}

// RenderPreview renders markup with the default Engine.
func RenderPreview(markup string) string {
	return defaultEngine.RenderPreview(markup)
}
