package markup

import (
	"iter"
	"slices"
	"strings"
)

// Render lazily converts post content into display blocks. It is a pure
// function of content: ranging over the result twice yields the same blocks.
func Render(content string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		var (
			inFence  bool
			language string
			body     string
		)
		for tok := range Tokens(content) {
			switch tok.Kind {
			case TokenFenceOpen:
				inFence = true
				language = tok.Language
				body = ""
			case TokenFenceClose:
				inFence = false
				block := Code(language, body)
				block.Unterminated = tok.Implicit
				if !yield(block) {
					return
				}
			case TokenText:
				if inFence {
					body += tok.Text
					continue
				}
				for line := range strings.Lines(tok.Text) {
					if !yield(classifyLine(strings.TrimSuffix(line, "\n"))) {
						return
					}
				}
			}
		}
	}
}

// Collect renders content into a slice.
func Collect(content string) []Block {
	return slices.Collect(Render(content))
}

// classifyLine checks the longest heading marker first so "### x" is never
// taken for a level-1 heading.
func classifyLine(line string) Block {
	switch {
	case strings.HasPrefix(line, "### "):
		return Heading(3, line[4:])
	case strings.HasPrefix(line, "## "):
		return Heading(2, line[3:])
	case strings.HasPrefix(line, "# "):
		return Heading(1, line[2:])
	case strings.HasPrefix(line, "- "):
		return ListItem(line[2:])
	}
	if n := orderedMarkerLen(line); n > 0 {
		return OrderedItem(line[n:])
	}
	if strings.TrimSpace(line) == "" {
		return Blank()
	}
	return Paragraph(line)
}

// orderedMarkerLen returns the length of a leading "<digits>. " marker, or 0.
func orderedMarkerLen(line string) int {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || !strings.HasPrefix(line[i:], ". ") {
		return 0
	}
	return i + 2
}

// PlainText joins the textual content of every block, code included, with
// single spaces. Useful for word counts.
func PlainText(content string) string {
	var parts []string
	for block := range Render(content) {
		if text := strings.TrimSpace(block.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
