package notetext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markup delimiters emitted for rendered inline elements.
const (
	delimBold      = "**"
	delimItalic    = "_"
	delimUnderline = "__"
	delimStrike    = "~~"
	delimCode      = "`"
)

const (
	bulletDotClass = ".bullet-dot"
	bulletDot      = "•"
)

// minSeparatorLen is the minimal dash run of a table separator cell.
const minSeparatorLen = 3

// Serialize walks the block tree and reconstructs markup text. It is the inverse of
// ParseForEditor: indentation is emitted as two spaces per level, list numbers are
// copied verbatim and the table separator row is regenerated.
//
// Blocks are joined with '\n' and trailing whitespace of the result is trimmed.
func Serialize(tree []Block) string {
	lines := make([]string, len(tree))

	for i, b := range tree {
		lines[i] = serializeBlock(b)
	}

	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace)
}

func serializeBlock(b Block) string {
	switch b.Kind {
	case KindBullet:
		return indentation(b.Indent) + "- " + stripBulletDot(InlineMarkdown(b.Content))

	case KindNumbered:
		number := b.Number
		if number == "" {
			number = "1"
		}
		return indentation(b.Indent) + number + ". " + InlineMarkdown(b.Content)

	case KindCheckbox:
		mark := "[ ]"
		if b.Checked {
			mark = "[x]"
		}
		return "- " + mark + " " + InlineMarkdown(b.Content)

	case KindTable:
		return serializeTable(b)

	default:
		return InlineMarkdown(b.Content)
	}
}

// stripBulletDot removes a leading "• " left by editors which render the bullet
// as text instead of a styled element.
func stripBulletDot(s string) string {
	rest, ok := strings.CutPrefix(s, bulletDot)
	if !ok {
		return s
	}
	return strings.TrimPrefix(rest, " ")
}

func indentation(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat("  ", level)
}

func serializeTable(b Block) string {
	lines := make([]string, 0, len(b.Rows)+2)
	lines = append(lines, tableRow(b.Header))

	separator := make([]string, len(b.Header))
	for i, cell := range b.Header {
		separator[i] = strings.Repeat("-", max(minSeparatorLen, utf8.RuneCountInString(cell)))
	}
	lines = append(lines, tableRow(separator))

	for _, row := range b.Rows {
		lines = append(lines, tableRow(row))
	}

	return strings.Join(lines, "\n")
}

func tableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// InlineMarkdown converts rendered inline HTML back into markup.
//
// Elements with the "bullet-dot" class are visual artifacts and are removed
// before the walk, together with the space following them. Unknown elements
// contribute their children only. Line breaks contribute nothing because the
// enclosing block already encodes the break.
func InlineMarkdown(content string) string {
	if content == "" {
		return ""
	}

	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

	nodes, err := html.ParseFragment(strings.NewReader(content), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		// the reader never fails, keep the text visible anyway
		return html.UnescapeString(content)
	}

	for _, n := range nodes {
		root.AppendChild(n)
	}

	goquery.NewDocumentFromNode(root).Find(bulletDotClass).Each(func(_ int, dot *goquery.Selection) {
		// the marker is followed by a separating space
		if next := dot.Nodes[0].NextSibling; next != nil && next.Type == html.TextNode {
			next.Data = strings.TrimPrefix(next.Data, " ")
		}
	}).Remove()

	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		writeMarkdown(&b, c)
	}

	return b.String()
}

// writeMarkdown maps the node kind to its delimiter pair and recurses into the
// node's children.
func writeMarkdown(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Strong, atom.B:
		wrapChildren(b, n, delimBold, delimBold)
	case atom.Em, atom.I:
		wrapChildren(b, n, delimItalic, delimItalic)
	case atom.U:
		wrapChildren(b, n, delimUnderline, delimUnderline)
	case atom.S, atom.Strike, atom.Del:
		wrapChildren(b, n, delimStrike, delimStrike)
	case atom.Code:
		wrapChildren(b, n, delimCode, delimCode)
	case atom.A:
		href := FallbackURL
		for _, attr := range n.Attr {
			if attr.Key == "href" && attr.Namespace == "" && attr.Val != "" {
				href = attr.Val
			}
		}
		wrapChildren(b, n, "[", "]("+href+")")
	case atom.Br:
	default:
		wrapChildren(b, n, "", "")
	}
}

func wrapChildren(b *strings.Builder, n *html.Node, open, close string) {
	b.WriteString(open)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeMarkdown(b, c)
	}
	b.WriteString(close)
}
