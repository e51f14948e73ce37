package notetext

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Issue defines types of problems found in note markup. None of them is fatal:
// every issue describes text which the engine silently degrades.
type Issue int

const (
	// IssueUnclosedDelimiter means a format delimiter has no partner on its line
	// and stays a literal character.
	IssueUnclosedDelimiter Issue = iota

	// IssueLoneTableRow means a table row line has no neighbouring row. The editor
	// drops such lines from the block tree.
	IssueLoneTableRow

	// IssueRejectedLink means the URL guard refused a link target, the link
	// points to FallbackURL instead.
	IssueRejectedLink

	// IssueWarningsTruncated occurs when there are too many Warnings recorded.
	IssueWarningsTruncated
)

var issueNames = [...]string{
	IssueUnclosedDelimiter: "unclosed_delimiter",
	IssueLoneTableRow:      "lone_table_row",
	IssueRejectedLink:      "rejected_link",
	IssueWarningsTruncated: "warnings_truncated",
}

func (i Issue) String() string {
	if i < 0 || int(i) >= len(issueNames) {
		return "unknown"
	}
	return issueNames[i]
}

func (i Issue) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Warning describes a problem found by Diagnose.
type Warning struct {
	Issue Issue `json:"issue"`

	// Line is 1-based, Column is the 0-based rune index within the line.
	Line   int `json:"line"`
	Column int `json:"column"`

	Description string `json:"description"`
}

// MaxWarnings caps the result of Diagnose. The last slot is reserved for the
// truncation marker.
const MaxWarnings = 100

// warnings collects Warnings up to a capacity. After the overflow the rest is
// only counted and a single IssueWarningsTruncated entry is added.
type warnings struct {
	list       []Warning
	max        int
	overflowed bool
	dropped    int
}

func (w *warnings) add(item Warning) {
	if w.overflowed {
		w.dropped++
		return
	}

	if len(w.list) < max(w.max-1, 0) {
		w.list = append(w.list, item)
		return
	}

	w.overflowed = true
	w.dropped = 1
	w.list = append(w.list, Warning{
		Issue:       IssueWarningsTruncated,
		Line:        item.Line,
		Column:      item.Column,
		Description: "too many warnings; further warnings suppressed",
	})
}

// doubleDelimiters are checked for balance on every line. Single "*" and "_"
// are too common in plain text to be reported.
var doubleDelimiters = []string{delimBold, delimStrike, delimUnderline}

// Diagnose reports markup which the engine renders differently from what the
// author probably meant. It never changes the text.
func (e *Engine) Diagnose(markup string) []Warning {
	w := warnings{max: MaxWarnings}
	if markup == "" {
		return []Warning{}
	}

	lines := splitLines(markup)

	for i, line := range lines {
		lineNo := i + 1

		if isTableRow(line) {
			prevRow := i > 0 && isTableRow(lines[i-1])
			nextRow := i+1 < len(lines) && isTableRow(lines[i+1])
			if !prevRow && !nextRow {
				w.add(Warning{
					Issue:       IssueLoneTableRow,
					Line:        lineNo,
					Column:      0,
					Description: "a table needs at least a header and a separator row; this line is dropped by the editor",
				})
			}
			// cells are kept as raw text, formats are not checked
			continue
		}

		e.diagnoseLinks(&w, lineNo, line)
		diagnoseDelimiters(&w, lineNo, line)
	}

	if w.list == nil {
		return []Warning{}
	}
	return w.list
}

func (e *Engine) diagnoseLinks(w *warnings, lineNo int, line string) {
	for _, m := range linkPattern.FindAllStringSubmatchIndex(line, -1) {
		target := line[m[4]:m[5]]
		if target == FallbackURL || e.sanitizeURL(target) != FallbackURL {
			continue
		}

		w.add(Warning{
			Issue:       IssueRejectedLink,
			Line:        lineNo,
			Column:      utf8.RuneCountInString(line[:m[4]]),
			Description: fmt.Sprintf("link target %q is not allowed and is replaced with %q", target, FallbackURL),
		})
	}
}

func diagnoseDelimiters(w *warnings, lineNo int, line string) {
	// code spans are literal, blank them out keeping byte offsets intact
	masked := codePattern.ReplaceAllStringFunc(line, func(span string) string {
		return strings.Repeat(" ", len(span))
	})

	if idx := strings.Index(masked, delimCode); idx >= 0 {
		w.add(unclosedWarning(lineNo, line, idx, delimCode))
		masked = strings.ReplaceAll(masked, delimCode, " ")
	}

	for _, d := range doubleDelimiters {
		if strings.Count(masked, d)%2 == 0 {
			continue
		}
		w.add(unclosedWarning(lineNo, line, strings.LastIndex(masked, d), d))
	}
}

func unclosedWarning(lineNo int, line string, byteIdx int, delim string) Warning {
	return Warning{
		Issue:       IssueUnclosedDelimiter,
		Line:        lineNo,
		Column:      utf8.RuneCountInString(line[:byteIdx]),
		Description: fmt.Sprintf("%q has no closing partner and is shown as is", delim),
	}
}

// Diagnose checks markup with the default Engine.
func Diagnose(markup string) []Warning {
	return defaultEngine.Diagnose(markup)
}
