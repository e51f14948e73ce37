package notetext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatInline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "plain text", "plain text"},
		{"escaped", "a < b & c", "a &lt; b &amp; c"},
		{"bold_double", "**bold**", "<strong>bold</strong>"},
		{"bold_single", "*bold*", "<strong>bold</strong>"},
		{"italic", "_it_", "<em>it</em>"},
		{"underline", "__under__", "<u>under</u>"},
		{"strikethrough", "~~gone~~", "<s>gone</s>"},
		{"code", "`x := 1`", "<code>x := 1</code>"},
		{"code_is_not_formatted", "`a*b*c`", "<code>a*b*c</code>"},
		{"link", "[site](https://example.com)", `<a href="https://example.com">site</a>`},
		{"link_relative", "[note](/notes/1)", `<a href="/notes/1">note</a>`},
		{"link_javascript", "[x](javascript:alert)", `<a href="#">x</a>`},
		{"link_data", "[x](data:text/html)", `<a href="#">x</a>`},
		{"link_scheme_less", "[x](example.com)", `<a href="#">x</a>`},
		{"link_href_not_formatted", "[a](https://x.com/a_b_c)", `<a href="https://x.com/a_b_c">a</a>`},
		{"link_query_escaped_once", "[q](https://x.com?a=1&b=2)", `<a href="https://x.com?a=1&amp;b=2">q</a>`},
		{"link_label_formatted", "[**a**](/b)", `<a href="/b"><strong>a</strong></a>`},
		{"bold_link", "**[a](/b)**", `<strong><a href="/b">a</a></strong>`},
		{"bold_code", "**`c`**", "<strong><code>c</code></strong>"},
		{
			"nested_bold_italic",
			"The **bold _italic_ text** here",
			"The <strong>bold <em>italic</em> text</strong> here",
		},
		{"underline_and_italic", "__a__ _b_", "<u>a</u> <em>b</em>"},
		{"stray_asterisk", "5 * 3", "5 * 3"},
		{"stray_double_asterisk", "**a*", "**a*"},
		{"unclosed_underline", "__a", "__a"},
		{"single_tilde", "~a~", "~a~"},
		{"nul_stripped", "a\x00b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatInline(tt.input))
		})
	}
}

// Overlapping single delimiters pair up left to right: the first two asterisks
// wrap "a", the last two wrap "c".
func TestFormatInline_AmbiguousSingleAsterisks(t *testing.T) {
	require.Equal(t, "<strong>a</strong>b<strong>c</strong>", FormatInline("*a*b*c*"))
}

// The double pass takes "**" from the left of each side, the leftover single
// "*" pair then wraps the result once more.
func TestFormatInline_TripleAsterisks(t *testing.T) {
	require.Equal(t, "<strong><strong>d</strong></strong>", FormatInline("***d***"))
}

type constGuard string

func (g constGuard) SanitizeURL(_, _ string) string {
	return string(g)
}

func TestFormatInline_CustomGuard(t *testing.T) {
	e := New(WithURLGuard(constGuard("https://safe.example")))

	require.Equal(t,
		`<a href="https://safe.example">x</a>`,
		e.FormatInline("[x](https://anything.example)"),
	)
}

func TestFormatInline_NilGuardFallsBackToInlineCheck(t *testing.T) {
	e := New(WithURLGuard(nil))

	require.Equal(t, `<a href="#">x</a>`, e.FormatInline("[x](javascript:alert)"))
	require.Equal(t, `<a href="#">x</a>`, e.FormatInline("[x](data:text/plain)"))
	require.Equal(t, `<a href="vbscript:x">x</a>`, e.FormatInline("[x](vbscript:x)"))
}

func TestReplaceGuarded(t *testing.T) {
	// no match keeps the original string
	require.Equal(t, "a*b", replaceGuarded("a*b", boldSinglePattern, '*', "<b>", "</b>"))

	// matches touching another delimiter are skipped, the next one is taken
	require.Equal(t,
		"*x**y<b>z</b>w*",
		replaceGuarded("*x**y*z*w*", boldSinglePattern, '*', "<b>", "</b>"),
	)
}

func TestShield(t *testing.T) {
	var sh shield

	link := sh.stash(`<a href="/x">`)
	code := sh.stash("<code>" + link + "y</a></code>")

	require.Equal(t, `p <code><a href="/x">y</a></code>`, sh.restore("p "+code))
}
