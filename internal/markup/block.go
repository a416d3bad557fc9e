package markup

import "fmt"

// Kind tags the variant held by a Block.
type Kind uint8

const (
	KindParagraph Kind = iota
	KindHeading
	KindListItem
	KindBlank
	KindCode
)

var kindNames = [...]string{
	KindParagraph: "paragraph",
	KindHeading:   "heading",
	KindListItem:  "list_item",
	KindBlank:     "blank",
	KindCode:      "code",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText encodes the kind by name so JSON stays readable.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("markup: unknown block kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("markup: unknown block kind %q", text)
}

// Block is one classified unit of post content.
//
// Level is set for headings (1-3). Ordered is set for list items that came
// from a numbered marker. For code blocks Text holds the raw body and
// Unterminated reports that the input ended before a closing fence.
type Block struct {
	Kind         Kind   `json:"kind"`
	Level        int    `json:"level,omitempty"`
	Text         string `json:"text,omitempty"`
	Language     string `json:"language,omitempty"`
	Ordered      bool   `json:"ordered,omitempty"`
	Unterminated bool   `json:"unterminated,omitempty"`
}

func Heading(level int, text string) Block {
	return Block{Kind: KindHeading, Level: level, Text: text}
}

func ListItem(text string) Block {
	return Block{Kind: KindListItem, Text: text}
}

func OrderedItem(text string) Block {
	return Block{Kind: KindListItem, Text: text, Ordered: true}
}

func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

func Blank() Block {
	return Block{Kind: KindBlank}
}

func Code(language, source string) Block {
	return Block{Kind: KindCode, Language: language, Text: source}
}

// LanguageOr returns the code block language, or fallback when the fence
// carried no tag.
func (b Block) LanguageOr(fallback string) string {
	if b.Language == "" {
		return fallback
	}
	return b.Language
}
