package notetext

import (
	"regexp"
	"strings"
)

// FormatState lists the formats active at a cursor or selection.
// An empty Color means no color tag applies.
type FormatState struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Underline     bool   `json:"underline"`
	Strikethrough bool   `json:"strikethrough"`
	Color         string `json:"color"`
	JustifyCenter bool   `json:"justify_center"`
	JustifyRight  bool   `json:"justify_right"`
}

// Line prefixes which justify the whole line.
const (
	JustifyCenterPrefix = "-:-"
	JustifyRightPrefix  = "--:"
)

var colorTag = regexp.MustCompile(`\[!color:([^\]]+)\]`)

// DetectActiveFormats reports which formats apply at the selection
// [start, end) of markup. Offsets are rune indices, start == end is a cursor.
//
// For a cursor the window grows outward to the nearest delimiter character on
// each side, skipping plain text, and every matching pair marks its format; for a
// range only the characters directly around the selection are tested. Both
// stop at the first level which does not form a pair.
//
// Offsets outside the text are clamped and reversed offsets are swapped, so any
// input produces a FormatState.
func DetectActiveFormats(markup string, start, end int) FormatState {
	var st FormatState

	if markup == "" {
		return st
	}

	rs := []rune(markup)
	start, end = clampSelection(len(rs), start, end)

	if start == end {
		detectAtCursor(rs, start, &st)
	} else {
		detectInRange(rs, start, end, &st)
	}

	lineStart := lineStartOf(rs, start)

	if tags := colorTag.FindAllStringSubmatch(string(rs[lineStart:start]), -1); len(tags) > 0 {
		st.Color = tags[len(tags)-1][1]
	}

	line := strings.TrimSpace(string(rs[lineStart:lineEndOf(rs, start)]))

	switch {
	case strings.HasPrefix(line, JustifyCenterPrefix):
		st.JustifyCenter = true
	case strings.HasPrefix(line, JustifyRightPrefix):
		st.JustifyRight = true
	}

	return st
}

func detectAtCursor(rs []rune, pos int, st *FormatState) {
	l, r := pos-1, pos

	for {
		for l >= 0 && !isBoundary(rs[l]) {
			l--
		}
		for r < len(rs) && !isBoundary(rs[r]) {
			r++
		}

		if l < 0 || r >= len(rs) {
			return
		}

		width, ok := markPair(rs, l, r, st)
		if !ok {
			return
		}

		l, r = l-width, r+width
	}
}

func detectInRange(rs []rune, start, end int, st *FormatState) {
	l, r := start-1, end

	for l >= 0 && r < len(rs) {
		width, ok := markPair(rs, l, r, st)
		if !ok {
			return
		}

		l, r = l-width, r+width
	}
}

// markPair tests whether rs[l] and rs[r] form a delimiter pair and marks the
// format it stands for. A pair is doubled when the same character continues on
// both sides, e.g. "__" around "__x__". It returns how many characters the pair
// occupies on each side.
//
// Doubled and single '*' both mean bold, '^' in any width means italic.
func markPair(rs []rune, l, r int, st *FormatState) (width int, ok bool) {
	c := rs[l]
	if c != rs[r] || !isBoundary(c) || c == '\n' {
		return 0, false
	}

	double := l > 0 && rs[l-1] == c && r+1 < len(rs) && rs[r+1] == c

	switch {
	case c == '*':
		st.Bold = true
	case c == '^':
		st.Italic = true
	case c == '_' && double:
		st.Underline = true
	case c == '_':
		st.Italic = true
	case c == '~' && double:
		st.Strikethrough = true
	default:
		return 0, false
	}

	if double {
		return 2, true
	}

	return 1, true
}

func isBoundary(r rune) bool {
	switch r {
	case '*', '^', '_', '~', '\n':
		return true
	}
	return false
}

func clampSelection(n, start, end int) (int, int) {
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)

	if start > end {
		start, end = end, start
	}

	return start, end
}

func lineStartOf(rs []rune, pos int) int {
	for pos > 0 && rs[pos-1] != '\n' {
		pos--
	}
	return pos
}

func lineEndOf(rs []rune, pos int) int {
	for pos < len(rs) && rs[pos] != '\n' {
		pos++
	}
	return pos
}
