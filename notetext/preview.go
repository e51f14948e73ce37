package notetext

import (
	"regexp"
	"strings"
)

// Inert markers the preview puts in place of list syntax.
const (
	CheckedMarker   = `<span class="note-checkbox checked">&#9745;</span> `
	UncheckedMarker = `<span class="note-checkbox">&#9744;</span> `
	BulletMarker    = `<span class="bullet-dot">&bull;</span> `
)

// PreviewLineBreak joins preview lines.
const PreviewLineBreak = "<br>"

var (
	previewCheckbox = regexp.MustCompile(`^( *)- \[([ xX])\] `)
	previewBullet   = regexp.MustCompile(`^( *)- `)
)

// RenderPreview produces read-only HTML from markup without building a block tree.
//
// Inline formatting runs once over the whole text, so spans may cross lines.
// Then leading checkbox and bullet markers are replaced with inert markers.
// Tables are not parsed here and render as literal text.
func (e *Engine) RenderPreview(markup string) string {
	if markup == "" {
		return ""
	}

	formatted := e.FormatInline(strings.ReplaceAll(markup, "\r\n", "\n"))
	lines := strings.Split(formatted, "\n")

	for i, line := range lines {
		if m := previewCheckbox.FindStringSubmatch(line); m != nil {
			marker := UncheckedMarker
			if m[2] != " " {
				marker = CheckedMarker
			}
			lines[i] = m[1] + marker + line[len(m[0]):]
			continue
		}

		if m := previewBullet.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + BulletMarker + line[len(m[0]):]
		}
	}

	return strings.Join(lines, PreviewLineBreak)
}
