package fracture

import "strings"

// lineBuffer assembles output one line at a time. Padding is written
// optimistically during alignment, so endLine trims whatever ends up
// trailing before committing the line.
type lineBuffer struct {
	done strings.Builder
	line []byte
}

func (b *lineBuffer) add(s string) *lineBuffer {
	b.line = append(b.line, s...)
	return b
}

func (b *lineBuffer) spaces(n int) *lineBuffer {
	for i := 0; i < n; i++ {
		b.line = append(b.line, ' ')
	}
	return b
}

func (b *lineBuffer) endLine(eol string) *lineBuffer {
	end := len(b.line)
	for end > 0 && (b.line[end-1] == ' ' || b.line[end-1] == '\t') {
		end--
	}
	b.done.Write(b.line[:end])
	b.done.WriteString(eol)
	b.line = b.line[:0]
	return b
}

// flush commits any pending text as-is, without the trailing-space trim.
// Minified output ends mid-line, so the trim would be wrong there.
func (b *lineBuffer) flush() {
	b.done.Write(b.line)
	b.line = b.line[:0]
}

func (b *lineBuffer) String() string {
	return b.done.String()
}

func (b *lineBuffer) reset() {
	b.done.Reset()
	b.line = b.line[:0]
}
