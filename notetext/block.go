package notetext

// Kind defines the type of a Block, e.g. "paragraph" or "table".
type Kind string

const (
	KindParagraph Kind = "paragraph"
	KindBullet    Kind = "bullet"
	KindNumbered  Kind = "numbered"
	KindCheckbox  Kind = "checkbox"
	KindTable     Kind = "table"
)

// Valid reports whether k is one of the known block kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindParagraph, KindBullet, KindNumbered, KindCheckbox, KindTable:
		return true
	}
	return false
}

// EmptyLine is the Content of a Paragraph produced from a blank line.
// It keeps vertical spacing alive through a parse/serialize round trip.
const EmptyLine = "<br>"

// Block is one structural unit of the editable tree. Which fields are meaningful
// depends on Kind:
//
//   - KindParagraph: Content.
//   - KindBullet:    Content, Indent.
//   - KindNumbered:  Content, Number, Indent.
//   - KindCheckbox:  Content, Checked.
//   - KindTable:     Header, Rows.
//
// Content is rendered inline HTML as produced by Engine.FormatInline, or edited
// by the user in the host editor. Table cells are kept as raw markup text.
type Block struct {
	Kind    Kind   `json:"kind"`
	Content string `json:"content,omitempty"`

	// Indent is the nesting level, two leading spaces per level.
	Indent int `json:"indent,omitempty"`

	// Number is the literal list token, e.g. "7" in "7. item". Non-sequential
	// numbering is preserved as is.
	Number string `json:"number,omitempty"`

	Checked bool `json:"checked,omitempty"`

	Header []string   `json:"header,omitempty"`
	Rows   [][]string `json:"rows,omitempty"`
}
