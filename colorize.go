package fracture

import "strings"

// Colorize walks already-formatted JSON text and wraps each token in the
// palette's style. The input is assumed well-formed (our own output), so the
// walk is purely lexical. Comments are styled too, both // and /* */ forms.
func Colorize(src string, palette ColorPalette) string {
	var sb strings.Builder
	sb.Grow(len(src) + len(src)/2)

	type stackFrame struct {
		kind      byte
		expectKey bool
	}
	stack := make([]stackFrame, 0, 8)

	for i := 0; i < len(src); {
		ch := src[i]
		switch ch {
		case '{':
			stack = append(stack, stackFrame{kind: '{', expectKey: true})
			sb.WriteString(palette.Brackets.Render("{"))
			i++
		case '[':
			stack = append(stack, stackFrame{kind: '['})
			sb.WriteString(palette.Brackets.Render("["))
			i++
		case '}':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			sb.WriteString(palette.Brackets.Render("}"))
			i++
			if len(stack) > 0 && stack[len(stack)-1].kind == '{' {
				stack[len(stack)-1].expectKey = false
			}
		case ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			sb.WriteString(palette.Brackets.Render("]"))
			i++
		case ':':
			sb.WriteString(palette.Punctuation.Render(":"))
			if len(stack) > 0 && stack[len(stack)-1].kind == '{' {
				stack[len(stack)-1].expectKey = false
			}
			i++
		case ',':
			sb.WriteString(palette.Punctuation.Render(","))
			if len(stack) > 0 && stack[len(stack)-1].kind == '{' {
				stack[len(stack)-1].expectKey = true
			}
			i++
		case '"':
			start := i
			i++
			for i < len(src) {
				if src[i] == '\\' && i+1 < len(src) {
					i += 2
					continue
				}
				if src[i] == '"' {
					i++
					break
				}
				i++
			}
			segment := src[start:i]
			isKey := len(stack) > 0 && stack[len(stack)-1].kind == '{' && stack[len(stack)-1].expectKey
			if isKey {
				sb.WriteString(palette.Key.Render(segment))
				stack[len(stack)-1].expectKey = false
			} else {
				sb.WriteString(palette.String.Render(segment))
			}
		case '/':
			start := i
			if i+1 < len(src) && src[i+1] == '/' {
				for i < len(src) && src[i] != '\n' {
					i++
				}
				sb.WriteString(palette.Comment.Render(src[start:i]))
				continue
			}
			if i+1 < len(src) && src[i+1] == '*' {
				i += 2
				for i < len(src) {
					if src[i] == '/' && src[i-1] == '*' {
						i++
						break
					}
					i++
				}
				// Style line by line so indentation stays unstyled.
				for lineIdx, line := range strings.Split(src[start:i], "\n") {
					if lineIdx > 0 {
						sb.WriteByte('\n')
					}
					sb.WriteString(palette.Comment.Render(line))
				}
				continue
			}
			sb.WriteByte(ch)
			i++
		default:
			if (ch >= '0' && ch <= '9') || ch == '-' {
				start := i
				i++
				for i < len(src) {
					c := src[i]
					if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
						i++
					} else {
						break
					}
				}
				sb.WriteString(palette.Number.Render(src[start:i]))
				continue
			}
			if strings.HasPrefix(src[i:], "true") {
				sb.WriteString(palette.True.Render("true"))
				i += 4
				continue
			}
			if strings.HasPrefix(src[i:], "false") {
				sb.WriteString(palette.False.Render("false"))
				i += 5
				continue
			}
			if strings.HasPrefix(src[i:], "null") {
				sb.WriteString(palette.Null.Render("null"))
				i += 4
				continue
			}
			sb.WriteByte(ch)
			i++
		}
	}
	return sb.String()
}
