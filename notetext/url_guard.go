package notetext

import (
	"net/url"
	"slices"
	"strings"
)

// FallbackURL is the link target used when a candidate target is rejected.
const FallbackURL = "#"

// URLGuard validates a candidate hyperlink target. SanitizeURL returns either the
// candidate itself or the provided fallback when the candidate is not allowed.
//
// Implementations must be side-effect free and non-blocking, since they are
// called during inline formatting.
type URLGuard interface {
	SanitizeURL(candidate, fallback string) string
}

// DefaultDeniedSchemes lists the schemes rejected by a zero-value DenyListGuard.
var DefaultDeniedSchemes = []string{"javascript", "data", "vbscript", "file"}

// DenyListGuard rejects link targets with a denied scheme and targets which have
// no scheme and are not relative either, e.g. "example.com/page".
//
// Relative targets are the ones starting with "/", "./", "../", "#" or "?".
type DenyListGuard struct {
	// Schemes overrides DefaultDeniedSchemes when not empty. Values are
	// compared case-insensitively and without the trailing ':'.
	Schemes []string
}

func (g DenyListGuard) SanitizeURL(candidate, fallback string) string {
	c := strings.TrimSpace(candidate)
	if c == "" {
		return fallback
	}

	if isRelativeURL(c) {
		return c
	}

	scheme, ok := urlScheme(c)
	if !ok {
		return fallback
	}

	denied := g.Schemes
	if len(denied) == 0 {
		denied = DefaultDeniedSchemes
	}

	if slices.ContainsFunc(denied, func(s string) bool {
		return strings.EqualFold(strings.TrimSuffix(s, ":"), scheme)
	}) {
		return fallback
	}

	return c
}

var relativePrefixes = []string{"/", "./", "../", "#", "?"}

func isRelativeURL(s string) bool {
	for _, p := range relativePrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// urlScheme extracts the lowercase scheme of s. Whitespace and control characters
// are dropped first, since browsers ignore them inside a scheme ("java\tscript:").
func urlScheme(s string) (scheme string, ok bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r <= ' ' || r == 0x7f {
			return -1
		}
		return r
	}, s)

	u, err := url.Parse(cleaned)
	if err != nil || u.Scheme == "" {
		return "", false
	}

	return strings.ToLower(u.Scheme), true
}

// denyScriptAndData is the inline check used when an Engine has no URLGuard.
// It only rejects "javascript:" and "data:" targets.
func denyScriptAndData(candidate, fallback string) string {
	c := strings.TrimSpace(candidate)
	if c == "" {
		return fallback
	}

	scheme, ok := urlScheme(c)
	if ok && (scheme == "javascript" || scheme == "data") {
		return fallback
	}

	return c
}
