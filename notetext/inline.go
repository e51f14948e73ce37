package notetext

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Inline patterns. All of them are non-greedy and are applied left-to-right
// without overlapping. The (?s) flag lets the preview renderer match spans that
// cross line breaks, editor lines never contain one.
var (
	linkPattern       = regexp.MustCompile(`\[([^\]]+?)\]\(([^)\s]+?)\)`)
	codePattern       = regexp.MustCompile("`([^`]+?)`")
	strikePattern     = regexp.MustCompile(`(?s)~~(.+?)~~`)
	underlinePattern  = regexp.MustCompile(`(?s)__(.+?)__`)
	boldPattern       = regexp.MustCompile(`(?s)\*\*(.+?)\*\*`)
	boldSinglePattern = regexp.MustCompile(`\*([^*]+?)\*`)
	italicPattern     = regexp.MustCompile(`_([^_]+?)_`)
)

// shieldMark delimits placeholders of shielded fragments. It is stripped from the
// input, so it can never come from the user.
const shieldMark = "\x00"

// FormatInline turns one line of raw markup into rendered inline HTML.
//
// Passes run in a fixed order: escape, link, inline code, strikethrough,
// underline, bold ("**"), bold ("*"), italic ("_"). A later pass can wrap the
// output of an earlier one, e.g. "**[a](b)**" is a bold link, but it never
// matches delimiters inside a link target or inside a code span: both are
// shielded until all passes are done.
//
// Unbalanced delimiters are left as literal characters.
func (e *Engine) FormatInline(raw string) string {
	if raw == "" {
		return ""
	}

	var sh shield

	s := Escape(strings.ReplaceAll(raw, shieldMark, ""))

	s = linkPattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := linkPattern.FindStringSubmatch(m)
		target := e.sanitizeURL(html.UnescapeString(sub[2]))
		return sh.stash(`<a href="`+Escape(target)+`">`) + sub[1] + "</a>"
	})

	s = codePattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := codePattern.FindStringSubmatch(m)
		return sh.stash("<code>" + sub[1] + "</code>")
	})

	s = strikePattern.ReplaceAllString(s, "<s>${1}</s>")
	s = underlinePattern.ReplaceAllString(s, "<u>${1}</u>")
	s = boldPattern.ReplaceAllString(s, "<strong>${1}</strong>")
	s = replaceGuarded(s, boldSinglePattern, '*', "<strong>", "</strong>")
	s = replaceGuarded(s, italicPattern, '_', "<em>", "</em>")

	return sh.restore(s)
}

// replaceGuarded wraps the first capture group of every match of re into
// open/close, skipping matches whose opening delimiter follows another delim byte
// or whose closing delimiter is followed by one.
//
// Skipped matches are retried one byte further, so in "**a*" the inner "*a*" is
// rejected and the text is left untouched.
func replaceGuarded(s string, re *regexp.Regexp, delim byte, open, close string) string {
	var b strings.Builder

	// last is the end of the text already copied into b,
	// from is where the next search starts.
	last, from := 0, 0

	for from < len(s) {
		loc := re.FindStringSubmatchIndex(s[from:])
		if loc == nil {
			break
		}

		start, end := from+loc[0], from+loc[1]

		if (start > 0 && s[start-1] == delim) || (end < len(s) && s[end] == delim) {
			from = start + 1
			continue
		}

		b.WriteString(s[last:start])
		b.WriteString(open)
		b.WriteString(s[from+loc[2] : from+loc[3]])
		b.WriteString(close)

		last, from = end, end
	}

	if last == 0 {
		return s
	}

	b.WriteString(s[last:])
	return b.String()
}

// shield keeps already rendered fragments away from later substitution passes.
type shield struct {
	fragments []string
}

// stash stores the fragment and returns its placeholder.
func (sh *shield) stash(fragment string) string {
	sh.fragments = append(sh.fragments, fragment)
	return shieldMark + strconv.Itoa(len(sh.fragments)-1) + shieldMark
}

// restore puts all stashed fragments back. Fragments are restored newest first,
// because a code span may contain the placeholder of a link stashed before it.
func (sh *shield) restore(s string) string {
	for i := len(sh.fragments) - 1; i >= 0; i-- {
		placeholder := shieldMark + strconv.Itoa(i) + shieldMark
		s = strings.Replace(s, placeholder, sh.fragments[i], 1)
	}
	return s
}
