package tokens

import (
	"fmt"
	"unicode/utf8"
)

// Span is a half-open byte range [Start, End) into the source buffer.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) Text(source string) string {
	return source[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Position returns the 1-based line and column (in runes) of the span start.
func (s Span) Position(source string) (line int, col int) {
	line, col = 1, 1
	offset := min(s.Start, len(source))
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(source[i:])
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i += size
	}
	return
}
