package engine

import (
	"fmt"
	"strings"
)

// renderTemplate substitutes {key} placeholders in tmpl with property
// values. "{{" and "}}" escape literal braces.
//
// A placeholder referencing a property absent from the bag is an error -
// the caller turns it into an ActionError - rather than silently inserting
// empty text. A lone unmatched brace is likewise an error.
func renderTemplate(tmpl string, props Properties) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		switch tmpl[i] {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated placeholder in template %q", tmpl)
			}
			key := tmpl[i+1 : i+1+end]
			value, ok := props[key]
			if !ok {
				return "", fmt.Errorf("template references undefined property %q", key)
			}
			b.WriteString(value)
			i += end + 2
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("single %q in template %q", "}", tmpl)
		default:
			b.WriteByte(tmpl[i])
			i++
		}
	}
	return b.String(), nil
}
