package notetext

import (
	"regexp"
	"strings"
)

var (
	checkboxLine = regexp.MustCompile(`^- \[([ xX])\](?: (.*))?$`)
	bulletLine   = regexp.MustCompile(`^( *)- (.*)$`)
	numberedLine = regexp.MustCompile(`^( *)(\d+)\. (.*)$`)
)

// ParseForEditor splits markup into the ordered sequence of blocks shown by an
// editable surface.
//
// Lines are matched in this order: table group, checkbox, bullet, numbered list
// item, paragraph. A table needs at least two consecutive rows; the second one is
// the separator and is discarded. A single row-like line has no table to belong to
// and is dropped from the output.
//
// Empty markup yields an empty, non-nil slice.
func (e *Engine) ParseForEditor(markup string) []Block {
	if markup == "" {
		return []Block{}
	}

	lines := splitLines(markup)
	blocks := make([]Block, 0, len(lines))

	for i := 0; i < len(lines); {
		if isTableRow(lines[i]) {
			j := i + 1
			for j < len(lines) && isTableRow(lines[j]) {
				j++
			}

			if j-i >= 2 {
				blocks = append(blocks, tableBlock(lines[i:j]))
			}

			i = j
			continue
		}

		blocks = append(blocks, e.parseLine(lines[i]))
		i++
	}

	return blocks
}

func (e *Engine) parseLine(line string) Block {
	if m := checkboxLine.FindStringSubmatch(line); m != nil {
		return Block{
			Kind:    KindCheckbox,
			Checked: m[1] != " ",
			Content: e.FormatInline(m[2]),
		}
	}

	if m := bulletLine.FindStringSubmatch(line); m != nil {
		return Block{
			Kind:    KindBullet,
			Indent:  len(m[1]) / 2,
			Content: e.FormatInline(m[2]),
		}
	}

	if m := numberedLine.FindStringSubmatch(line); m != nil {
		return Block{
			Kind:    KindNumbered,
			Indent:  len(m[1]) / 2,
			Number:  m[2],
			Content: e.FormatInline(m[3]),
		}
	}

	if strings.TrimSpace(line) == "" {
		return Block{Kind: KindParagraph, Content: EmptyLine}
	}

	return Block{Kind: KindParagraph, Content: e.FormatInline(line)}
}

// isTableRow reports if the trimmed line starts and ends with '|'.
// A lone "|" does not count.
func isTableRow(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) >= 2 && t[0] == '|' && t[len(t)-1] == '|'
}

// tableBlock builds a table from a group of at least two row lines.
func tableBlock(group []string) Block {
	b := Block{
		Kind:   KindTable,
		Header: parseCells(group[0]),
	}

	for _, line := range group[2:] {
		b.Rows = append(b.Rows, parseCells(line))
	}

	return b
}

// parseCells splits a table row on '|' and trims every cell. The empty artifacts
// produced by the leading and trailing '|' are discarded.
func parseCells(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), "|")

	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}

	if n := len(parts); n > 0 && strings.TrimSpace(parts[n-1]) == "" {
		parts = parts[:n-1]
	}

	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}

	return cells
}

// splitLines splits markup on '\n', treating "\r\n" as a single break.
func splitLines(markup string) []string {
	return strings.Split(strings.ReplaceAll(markup, "\r\n", "\n"), "\n")
}
