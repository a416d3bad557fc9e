package markup

import (
	"iter"
	"strings"
)

// TokenKind identifies what a Token carries.
type TokenKind uint8

const (
	// TokenText is a run of source text, either prose or a fence body.
	TokenText TokenKind = iota
	// TokenFenceOpen starts a fenced code block.
	TokenFenceOpen
	// TokenFenceClose ends the most recent fenced code block.
	TokenFenceClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenFenceOpen:
		return "fence-open"
	case TokenFenceClose:
		return "fence-close"
	default:
		return "unknown"
	}
}

// Token is one unit emitted by the fence tokenizer.
type Token struct {
	Kind TokenKind
	// Text is set for TokenText.
	Text string
	// Language is set for TokenFenceOpen; empty when the fence has no tag.
	Language string
	// Implicit marks a TokenFenceClose synthesised at end of input.
	Implicit bool
}

const fenceMarker = "```"

type scanState uint8

const (
	stateText scanState = iota
	stateOpen
	stateCode
	stateClose
	stateImplicitClose
	stateDone
)

// tokenizer is a two-mode scanner: outside a fence it looks for the next
// valid opener, inside a fence for the next closing marker.
type tokenizer struct {
	src       string
	pos       int
	state     scanState
	language  string
	bodyStart int
}

func newTokenizer(content string) *tokenizer {
	return &tokenizer{src: strings.ReplaceAll(content, "\r\n", "\n")}
}

// next returns the following token, or false once the input is exhausted.
func (t *tokenizer) next() (Token, bool) {
	for {
		switch t.state {
		case stateText:
			if t.pos >= len(t.src) {
				t.state = stateDone
				continue
			}
			open, language, bodyStart := findOpener(t.src, t.pos)
			if open < 0 {
				text := t.src[t.pos:]
				t.pos = len(t.src)
				t.state = stateDone
				return Token{Kind: TokenText, Text: text}, true
			}
			t.language = language
			t.bodyStart = bodyStart
			t.state = stateOpen
			if open > t.pos {
				text := t.src[t.pos:open]
				t.pos = open
				return Token{Kind: TokenText, Text: text}, true
			}

		case stateOpen:
			t.pos = t.bodyStart
			t.state = stateCode
			return Token{Kind: TokenFenceOpen, Language: t.language}, true

		case stateCode:
			end := strings.Index(t.src[t.pos:], fenceMarker)
			if end < 0 {
				body := t.src[t.pos:]
				t.pos = len(t.src)
				t.state = stateImplicitClose
				if body != "" {
					return Token{Kind: TokenText, Text: body}, true
				}
				continue
			}
			body := t.src[t.pos : t.pos+end]
			t.pos += end + len(fenceMarker)
			// the newline ending the closing fence line belongs to the fence
			if t.pos < len(t.src) && t.src[t.pos] == '\n' {
				t.pos++
			}
			t.state = stateClose
			if body != "" {
				return Token{Kind: TokenText, Text: body}, true
			}

		case stateClose:
			t.state = stateText
			return Token{Kind: TokenFenceClose}, true

		case stateImplicitClose:
			t.state = stateDone
			return Token{Kind: TokenFenceClose, Implicit: true}, true

		default:
			return Token{}, false
		}
	}
}

// findOpener locates the first valid opening fence at or after from: three
// backticks, an optional run of word characters, then a newline. It returns
// the marker offset, the language tag and the offset where the body starts,
// or -1 when there is none.
func findOpener(src string, from int) (int, string, int) {
	for from < len(src) {
		idx := strings.Index(src[from:], fenceMarker)
		if idx < 0 {
			return -1, "", 0
		}
		open := from + idx
		end := open + len(fenceMarker)
		for end < len(src) && isWordByte(src[end]) {
			end++
		}
		if end < len(src) && src[end] == '\n' {
			return open, src[open+len(fenceMarker) : end], end + 1
		}
		from = open + 1
	}
	return -1, "", 0
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// Tokens lazily scans content into text and fence tokens. An opening fence
// with no closing marker is closed implicitly at end of input.
func Tokens(content string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		t := newTokenizer(content)
		for {
			tok, ok := t.next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}
