package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/lox/tokens"
)

type Kind uint8

const (
	KindLex Kind = iota + 1
	KindParse
	KindRuntime
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "lexical"
	case KindParse:
		return "parse"
	case KindRuntime:
		return "runtime"
	}
	return "unknown"
}

// Error is a diagnostic anchored to a source span.
type Error struct {
	Kind    Kind
	Span    tokens.Span
	Message string
}

var _ error = new(Error)

func (e *Error) Error() string {
	return fmt.Sprintf("%s error at %s: %s", e.Kind, e.Span, e.Message)
}

func New(kind Kind, span tokens.Span, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	}
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Report receives errors at the moment they are detected.
type Report func(err *Error)

// Render formats the error with the offending source line and a caret under the span start.
func (e *Error) Render(name string, source string) string {
	line, col := e.Span.Position(source)

	var sb strings.Builder
	if name != "" {
		fmt.Fprintf(&sb, "[%s] %s at %s:%d:%d\n", e.Kind, e.Message, name, line, col)
	} else {
		fmt.Fprintf(&sb, "[%s] %s at %d:%d\n", e.Kind, e.Message, line, col)
	}

	lines := strings.Split(source, "\n")
	idx := line - 1
	if idx < 0 || idx >= len(lines) {
		return sb.String()
	}
	text := strings.TrimSuffix(lines[idx], "\r")
	sb.WriteString(text)
	sb.WriteString("\n")

	for i, r := range []rune(text) {
		if i >= col-1 {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
	}
	sb.WriteString("^")
	if n := len([]rune(e.Span.Text(source))); n > 1 && !strings.Contains(e.Span.Text(source), "\n") {
		sb.WriteString(strings.Repeat("~", n-1))
	}
	sb.WriteString("\n")

	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
